package models

import (
	"fmt"
	"strconv"
	"time"
)

// TimeOfDay is a wall-clock time with no date or zone attached.
type TimeOfDay struct {
	Hour   int `bson:"hour" json:"hour"`
	Minute int `bson:"minute" json:"minute"`
}

// Validate checks the wall-clock bounds.
func (t TimeOfDay) Validate() error {
	if t.Hour < 0 || t.Hour > 23 {
		return fmt.Errorf("hour out of range: %d", t.Hour)
	}
	if t.Minute < 0 || t.Minute > 59 {
		return fmt.Errorf("minute out of range: %d", t.Minute)
	}
	return nil
}

// Minutes returns minutes from midnight (e.g., 540 for 9:00 AM).
func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

// Before reports whether t is strictly earlier in the day than other.
func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.Minutes() < other.Minutes()
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// SlotTemplate is one contiguous bookable window on a weekday,
// expressed in the provider's local time. Start must strictly precede
// End within the same day; overnight wraparound is not supported.
type SlotTemplate struct {
	Start TimeOfDay `bson:"start" json:"start"`
	End   TimeOfDay `bson:"end" json:"end"`
}

// Validate rejects malformed or inverted windows.
func (s SlotTemplate) Validate() error {
	if err := s.Start.Validate(); err != nil {
		return fmt.Errorf("invalid start: %w", err)
	}
	if err := s.End.Validate(); err != nil {
		return fmt.Errorf("invalid end: %w", err)
	}
	if !s.Start.Before(s.End) {
		return fmt.Errorf("start %s must precede end %s", s.Start, s.End)
	}
	return nil
}

// WeeklyAvailability maps a weekday index ("0"=Sunday .. "6"=Saturday)
// to the ordered slot templates for that day. Keys are decimal strings
// because that is how the provider documents store them.
type WeeklyAvailability map[string][]SlotTemplate

// TemplatesFor returns the templates for the given weekday, nil when the
// provider has none for that day.
func (w WeeklyAvailability) TemplatesFor(day time.Weekday) []SlotTemplate {
	if w == nil {
		return nil
	}
	return w[strconv.Itoa(int(day))]
}

// Validate checks every key and template in the map.
func (w WeeklyAvailability) Validate() error {
	for key, templates := range w {
		idx, err := strconv.Atoi(key)
		if err != nil || idx < 0 || idx > 6 {
			return fmt.Errorf("invalid weekday key %q", key)
		}
		for i, tpl := range templates {
			if err := tpl.Validate(); err != nil {
				return fmt.Errorf("weekday %s template %d: %w", key, i, err)
			}
		}
	}
	return nil
}

// SchedulingProfile is the immutable snapshot the scheduling engine reads
// for a single computation.
type SchedulingProfile struct {
	WeeklyAvailability          WeeklyAvailability `bson:"weeklyAvailability" json:"weeklyAvailability"`
	Timezone                    string             `bson:"timezone" json:"timezone"` // IANA zone, e.g. "America/Chicago"
	ConsultationDurationMinutes int                `bson:"consultationDurationMinutes" json:"consultationDurationMinutes"`
}
