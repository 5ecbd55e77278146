package scheduling

import (
	"time"

	"telecare/models"
)

// FilterOverlaps removes candidates whose half-open consultation interval
// [c, c+duration) intersects any booked appointment's interval. All
// comparison happens on UTC instants; no timezone logic here.
//
// Candidate and booked counts are both small for a single day, so the
// quadratic scan is fine.
func FilterOverlaps(candidates []time.Time, booked []models.Appointment, durationMinutes int) []time.Time {
	if len(candidates) == 0 || len(booked) == 0 {
		return candidates
	}

	duration := time.Duration(durationMinutes) * time.Minute
	out := candidates[:0]
	for _, c := range candidates {
		blocked := false
		for _, b := range booked {
			if b.Overlaps(c, c.Add(duration)) {
				blocked = true
				break
			}
		}
		if !blocked {
			out = append(out, c)
		}
	}
	return out
}

// FilterFuture retains only candidates strictly after now. now is passed
// in by the caller so the stage stays deterministic.
func FilterFuture(candidates []time.Time, now time.Time) []time.Time {
	out := candidates[:0]
	for _, c := range candidates {
		if c.After(now) {
			out = append(out, c)
		}
	}
	return out
}
