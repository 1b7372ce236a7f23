package rules

// Matches reports whether rule applies to snap under the given compare
// mode. A disabled rule never matches, regardless of its
// condition. Matching reads only snap's fields — never anything live —
// which is what makes rule evaluation snapshot-isolated.
func Matches(snap Snapshot, rule Rule, cmp CountCompare) bool {
	if !rule.Enabled {
		return false
	}
	c := rule.Condition
	if c.Current != snap.State {
		return false
	}
	if c.Prior != anyPrior && c.Prior != snap.PriorState {
		return false
	}
	if !MatchInt(snap.Degree, c.ConnGE, c.ConnLE, cmp) {
		return false
	}
	if !MatchInt(snap.ParentsCount, c.ParentsGE, c.ParentsLE, cmp) {
		return false
	}

	return true
}

// MatchInt implements the numeric predicate shared by the degree and
// parents-count checks:
//
//   - both bounds negative ⇒ unconstrained, always true.
//   - CompareExact with ge >= 0 ⇒ val must equal ge; le is ignored.
//   - otherwise (CompareRange, or CompareExact with ge < 0) ⇒ two-sided
//     bound check, skipping whichever side is negative.
func MatchInt(val, ge, le int, mode CountCompare) bool {
	if ge < 0 && le < 0 {
		return true
	}
	if mode == CompareExact && ge >= 0 {
		return val == ge
	}
	if ge >= 0 && val < ge {
		return false
	}
	if le >= 0 && val > le {
		return false
	}

	return true
}
