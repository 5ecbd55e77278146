package scheduling

import (
	"sort"
	"time"

	"telecare/models"
)

// ResolveDayCandidates selects the slot templates that apply to the
// requested date's weekday and expands each one, concatenating results in
// template order. An empty result means the provider simply has nothing
// to offer that day.
//
// The weekday is taken from the caller-intended calendar date, never from
// a UTC reinterpretation of some instant: a request at 9pm US-Central is
// already the next day in UTC, and using the UTC weekday would read the
// wrong row of the weekly availability map.
func ResolveDayCandidates(profile models.SchedulingProfile, date time.Time, loc *time.Location, policy TrailingSlotPolicy) []time.Time {
	templates := profile.WeeklyAvailability.TemplatesFor(date.Weekday())
	if len(templates) == 0 {
		return nil
	}

	var candidates []time.Time
	for _, tpl := range templates {
		candidates = append(candidates, ExpandTemplate(date, tpl, loc, profile.ConsultationDurationMinutes, policy)...)
	}
	return normalizeCandidates(candidates)
}

// normalizeCandidates sorts and deduplicates so the pipeline invariant
// (strictly increasing, unique) holds even when a provider configured
// overlapping templates for one day.
func normalizeCandidates(candidates []time.Time) []time.Time {
	if len(candidates) < 2 {
		return candidates
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Before(candidates[j])
	})
	out := candidates[:1]
	for _, c := range candidates[1:] {
		if c.After(out[len(out)-1]) {
			out = append(out, c)
		}
	}
	return out
}
