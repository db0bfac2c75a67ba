package order

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/taskwise/backend/domain"
)

func TestNormalizeKeepsThenAppends(t *testing.T) {
	got := Normalize([]string{"b", "a", "gone"}, []string{"a", "b", "c"})
	want := []string{"b", "a", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Normalize = %v, want %v", got, want)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	all := []string{"a", "b", "c", "d"}
	once := Normalize([]string{"d", "b"}, all)
	twice := Normalize(once, all)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("normalize not idempotent: %v vs %v", once, twice)
	}
}

func TestNormalizeEmptyTracked(t *testing.T) {
	got := Normalize(nil, []string{"a", "b"})
	if !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("Normalize(nil) = %v", got)
	}
	if got := Normalize([]string{"a"}, nil); len(got) != 0 {
		t.Errorf("Normalize against empty set = %v", got)
	}
}

func TestNormalizeDropsDuplicates(t *testing.T) {
	got := Normalize([]string{"a", "a", "b"}, []string{"a", "b"})
	if !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("Normalize with duplicate tracked ID = %v", got)
	}
}

func TestReorderVisibleSubsetMerge(t *testing.T) {
	// custom order [A,B,C]; visible subset [A,C]; drag C before A
	got := ReorderVisible([]string{"A", "B", "C"}, []string{"A", "C"}, 1, 0)
	want := []string{"C", "B", "A"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ReorderVisible = %v, want %v", got, want)
	}
}

func TestReorderVisibleFullList(t *testing.T) {
	got := ReorderVisible([]string{"A", "B", "C", "D"}, []string{"A", "B", "C", "D"}, 0, 2)
	want := []string{"B", "C", "A", "D"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ReorderVisible = %v, want %v", got, want)
	}
}

func TestReorderVisiblePreservesOutsiders(t *testing.T) {
	global := []string{"x", "A", "y", "B", "z", "C"}
	got := ReorderVisible(global, []string{"A", "B", "C"}, 2, 0)

	// outsiders keep their exact positions
	if got[0] != "x" || got[2] != "y" || got[4] != "z" {
		t.Errorf("outsider positions disturbed: %v", got)
	}
	// subset slots carry the new relative order C,A,B
	want := []string{"x", "C", "y", "A", "z", "B"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ReorderVisible = %v, want %v", got, want)
	}
}

func TestReorderVisibleNoLossNoDuplication(t *testing.T) {
	global := []string{"a", "b", "c", "d", "e"}
	got := ReorderVisible(global, []string{"b", "d"}, 0, 1)

	if len(got) != len(global) {
		t.Fatalf("length changed: %v", got)
	}
	seen := make(map[string]int)
	for _, id := range got {
		seen[id]++
	}
	for _, id := range global {
		if seen[id] != 1 {
			t.Errorf("id %q appears %d times in %v", id, seen[id], got)
		}
	}
}

func TestReorderVisibleUntrackedFallback(t *testing.T) {
	// "new" was just created and is not yet in the tracked global order
	got := ReorderVisible([]string{"A", "B"}, []string{"A", "new"}, 1, 0)
	want := []string{"B", "new", "A"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("fallback merge = %v, want %v", got, want)
	}
}

func TestReorderVisibleClampsPositions(t *testing.T) {
	got := ReorderVisible([]string{"A", "B", "C"}, []string{"A", "B", "C"}, 0, 99)
	want := []string{"B", "C", "A"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("clamped reorder = %v, want %v", got, want)
	}

	got = ReorderVisible([]string{"A", "B", "C"}, []string{"A", "B", "C"}, 2, -5)
	want = []string{"C", "A", "B"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("negative newPos reorder = %v, want %v", got, want)
	}
}

type fakeOrderRepo struct {
	stored  []string
	listErr error
	writes  []string
	fail    bool
}

func (f *fakeOrderRepo) ListOrder(ctx context.Context, ownerID string) ([]string, error) {
	return f.stored, f.listErr
}

func (f *fakeOrderRepo) UpdateTaskOrder(ctx context.Context, taskID string, index int, ownerID string) error {
	if f.fail {
		return errors.New("store unavailable")
	}
	f.writes = append(f.writes, taskID)
	return nil
}

type fakeBuffer struct {
	entries []string
}

func (f *fakeBuffer) BufferOrderWrite(ctx context.Context, ownerID, taskID string, index int) error {
	f.entries = append(f.entries, taskID)
	return nil
}

func TestServiceRejectsComputedModes(t *testing.T) {
	svc := New(&fakeOrderRepo{}, nil, nil)

	for _, mode := range []domain.SortMode{domain.SortName, domain.SortCreated, domain.SortDueDate} {
		_, err := svc.Reorder(context.Background(), "u1", mode, []string{"A", "B"}, []string{"A", "B"}, 0, 1)
		if !domain.IsDomainError(err, domain.ErrCodeConflict) {
			t.Errorf("mode %s: got %v, want conflict error", mode, err)
		}
	}
}

func TestServiceReorderPersistsAscending(t *testing.T) {
	repo := &fakeOrderRepo{}
	svc := New(repo, nil, nil)

	merged, err := svc.Reorder(context.Background(), "u1", domain.SortCustom, []string{"A", "B", "C"}, []string{"A", "C"}, 1, 0)
	if err != nil {
		t.Fatalf("reorder: %v", err)
	}
	if !reflect.DeepEqual(merged, []string{"C", "B", "A"}) {
		t.Errorf("merged = %v", merged)
	}
	if !reflect.DeepEqual(repo.writes, []string{"C", "B", "A"}) {
		t.Errorf("writes = %v, want one per task ascending", repo.writes)
	}
}

func TestServiceSwallowsPersistenceFailure(t *testing.T) {
	repo := &fakeOrderRepo{fail: true}
	buf := &fakeBuffer{}
	svc := New(repo, buf, nil)

	merged, err := svc.Reorder(context.Background(), "u1", domain.SortCustom, []string{"A", "B"}, []string{"A", "B"}, 0, 1)
	if err != nil {
		t.Fatalf("persistence failure must not surface: %v", err)
	}
	if !reflect.DeepEqual(merged, []string{"B", "A"}) {
		t.Errorf("merged = %v", merged)
	}
	if len(buf.entries) != 2 {
		t.Errorf("failed writes buffered = %d, want 2", len(buf.entries))
	}
}

func TestServiceLoadFallsBackOnReadError(t *testing.T) {
	repo := &fakeOrderRepo{listErr: errors.New("down")}
	svc := New(repo, nil, nil)

	got := svc.Load(context.Background(), "u1", []string{"a", "b"})
	if !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("Load fallback = %v", got)
	}
}
