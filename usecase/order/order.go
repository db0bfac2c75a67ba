// Package order maintains the per-owner total order over task IDs and merges
// reorderings performed on a filtered subset back into the full order.
package order

// Normalize reconciles a tracked order list against the set of task IDs that
// actually exist: IDs still present keep their relative order, vanished IDs
// are dropped, and never-before-seen IDs are appended at the tail in their
// incoming order. Idempotent.
func Normalize(ownerOrder []string, allTaskIDs []string) []string {
	exists := make(map[string]bool, len(allTaskIDs))
	for _, id := range allTaskIDs {
		exists[id] = true
	}

	normalized := make([]string, 0, len(allTaskIDs))
	seen := make(map[string]bool, len(allTaskIDs))
	for _, id := range ownerOrder {
		if exists[id] && !seen[id] {
			normalized = append(normalized, id)
			seen[id] = true
		}
	}
	for _, id := range allTaskIDs {
		if !seen[id] {
			normalized = append(normalized, id)
			seen[id] = true
		}
	}
	return normalized
}

// ReorderVisible merges a drag within a filtered subset into the global
// order. The dragged item is visibleIDs[oldPos]; newPos is its requested
// position within the subset. Every task ID present in globalOrder before
// the call is present exactly once after it, and the relative order of IDs
// outside the subset is never disturbed.
func ReorderVisible(globalOrder, visibleIDs []string, oldPos, newPos int) []string {
	if len(visibleIDs) == 0 {
		return append([]string(nil), globalOrder...)
	}

	oldPos = clamp(oldPos, len(visibleIDs))
	dragged := visibleIDs[oldPos]

	// new relative order for exactly the visible subset
	subset := make([]string, 0, len(visibleIDs))
	subset = append(subset, visibleIDs[:oldPos]...)
	subset = append(subset, visibleIDs[oldPos+1:]...)
	newPos = clamp(newPos, len(visibleIDs))
	subset = append(subset[:newPos], append([]string{dragged}, subset[newPos:]...)...)

	inSubset := make(map[string]bool, len(subset))
	for _, id := range subset {
		inSubset[id] = true
	}

	// slots currently occupied by subset members in the global order
	slots := make([]int, 0, len(subset))
	for i, id := range globalOrder {
		if inSubset[id] {
			slots = append(slots, i)
		}
	}

	if len(slots) == len(subset) {
		// the common case: overwrite the reserved slots in place
		merged := append([]string(nil), globalOrder...)
		for i, slot := range slots {
			merged[slot] = subset[i]
		}
		return merged
	}

	// subset members missing from the tracked order (e.g. right after
	// creation): untracked-preserving fallback
	merged := make([]string, 0, len(globalOrder)+len(subset))
	for _, id := range globalOrder {
		if !inSubset[id] {
			merged = append(merged, id)
		}
	}
	return append(merged, subset...)
}

func clamp(pos, length int) int {
	if pos < 0 {
		return 0
	}
	if pos > length-1 {
		return length - 1
	}
	return pos
}
