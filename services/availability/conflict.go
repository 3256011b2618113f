package availability

// Overlaps reports whether two half-open minute intervals [aStart, aEnd)
// and [bStart, bEnd) intersect. Touching endpoints do not overlap, so a
// candidate starting exactly when another booking ends is allowed. Every
// time comparison in the engine goes through this predicate.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && aEnd > bStart
}

// overlapsAnyBooking reports whether [start, end) intersects any of the
// given intervals. Callers pass bookings already filtered to blocking
// statuses.
func overlapsAny(start, end int, busy []busyInterval) bool {
	for _, b := range busy {
		if Overlaps(start, end, b.start, b.end) {
			return true
		}
	}
	return false
}

type busyInterval struct {
	start int
	end   int
}
