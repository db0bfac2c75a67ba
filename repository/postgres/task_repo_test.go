package postgres

import "testing"

func TestLimitArgZeroMeansNoLimit(t *testing.T) {
	if got := limitArg(0); got != nil {
		t.Errorf("limitArg(0) = %v, want nil", got)
	}
	if got := limitArg(-1); got != nil {
		t.Errorf("limitArg(-1) = %v, want nil", got)
	}
}

func TestLimitArgKeepsRequestedLimit(t *testing.T) {
	if got := limitArg(25); got != 25 {
		t.Errorf("limitArg(25) = %v, want 25", got)
	}
	if got := limitArg(5000); got != 5000 {
		t.Errorf("limitArg(5000) = %v, want 5000", got)
	}
}
