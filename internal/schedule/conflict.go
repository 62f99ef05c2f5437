package schedule

// Overlaps reports whether two half-open minute intervals [aStart, aEnd) and
// [bStart, bEnd) overlap. Touching endpoints do not overlap: a session ending
// at 10:00 is compatible with one starting at 10:00.
func Overlaps(aStart, aEnd, bStart, bEnd Minutes) bool {
	return aStart < bEnd && bStart < aEnd
}

// HasConflict reports whether a candidate day/time block collides with any
// existing session: the day sets must intersect and the time intervals must
// overlap. A candidate with no usable days or an inverted time range cannot
// be checked, and is reported as non-conflicting — with dirty catalog data
// it is better to show a course than to hide it wrongly.
func HasConflict(existing []Session, days DaySet, start, end Minutes) bool {
	if days.Empty() || end <= start {
		return false
	}
	for _, s := range existing {
		if s.Days.Intersects(days) && Overlaps(start, end, s.Start, s.End) {
			return true
		}
	}
	return false
}
