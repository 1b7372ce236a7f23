package rules

// Select scans table for the first rule matching snap under cmp, using
// the traversal discipline transcription names, starting from cursor
// (meaningful only for Continuable — Resettable always starts at 0).
//
// It returns the matched index and true, or (-1, false) if nothing
// matched. It never mutates cursor itself: advancing a vertex's
// RuleCursor after a successful dispatch is the engine's job — the
// cursor only moves after the operation has been applied.
func Select(table []Rule, cursor int, snap Snapshot, cmp CountCompare, transcription Transcription) (int, bool) {
	n := len(table)
	if n == 0 {
		return -1, false
	}

	start := 0
	if transcription == Continuable {
		start = cursor % n
		if start < 0 {
			start = 0
		}
	}

	if idx, ok := scan(table, start, n, snap, cmp); ok {
		return idx, true
	}
	if transcription == Continuable && start > 0 {
		if idx, ok := scan(table, 0, start, snap, cmp); ok {
			return idx, true
		}
	}

	return -1, false
}

// scan checks table[lo:hi] in order, returning the first matching index.
func scan(table []Rule, lo, hi int, snap Snapshot, cmp CountCompare) (int, bool) {
	for i := lo; i < hi; i++ {
		if Matches(snap, table[i], cmp) {
			return i, true
		}
	}

	return -1, false
}

// NextCursor computes the continuable traversal's next RuleCursor value
// after a dispatched match at matchedIndex: advance to (matchedIndex+1)
// mod max(1, len(table)). With an empty table this divides by 1, i.e.
// the cursor never moves — preserved intentionally, see DESIGN.md's
// open-question notes.
func NextCursor(matchedIndex int, tableLen int) int {
	mod := tableLen
	if mod < 1 {
		mod = 1
	}

	return (matchedIndex + 1) % mod
}
