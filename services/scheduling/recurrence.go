package scheduling

import (
	"time"

	"telecare/models"
)

// TrailingSlotPolicy decides what happens to a trailing slot whose
// computed end would pass the template's end when the window is not
// evenly divisible by the interval.
type TrailingSlotPolicy int

const (
	// TrailingSlotFit drops any slot that would not finish inside the
	// template window. Default.
	TrailingSlotFit TrailingSlotPolicy = iota
	// TrailingSlotOverrun keeps every slot that starts inside the window,
	// even if its end runs past the template's end.
	TrailingSlotOverrun
)

// TrailingPolicyFromString maps the config value to a policy, defaulting
// to TrailingSlotFit for anything unrecognized.
func TrailingPolicyFromString(s string) TrailingSlotPolicy {
	if s == "overrun" {
		return TrailingSlotOverrun
	}
	return TrailingSlotFit
}

// ExpandTemplate turns one slot template for a single calendar day into
// the ordered sequence of candidate UTC start instants.
//
// Only the year/month/day of date are used; the template's wall-clock
// times are anchored to that day in loc. Each stepped wall-clock instant
// is converted to UTC individually, so a window spanning a DST transition
// gets the correct offset at every step. A local time that does not exist
// (spring-forward gap) normalizes onto the same absolute instant as its
// neighbor; such duplicates are skipped to keep the sequence strictly
// increasing.
//
// Returns nil when the template is inverted or intervalMinutes is not
// positive; the caller treats that as a configuration error.
func ExpandTemplate(date time.Time, tpl models.SlotTemplate, loc *time.Location, intervalMinutes int, policy TrailingSlotPolicy) []time.Time {
	if intervalMinutes <= 0 || !tpl.Start.Before(tpl.End) {
		return nil
	}

	year, month, day := date.Date()
	endMinutes := tpl.End.Minutes()

	var out []time.Time
	for cur := tpl.Start.Minutes(); cur < endMinutes; cur += intervalMinutes {
		if policy == TrailingSlotFit && cur+intervalMinutes > endMinutes {
			break
		}
		local := time.Date(year, month, day, cur/60, cur%60, 0, 0, loc)
		instant := local.UTC()
		if len(out) > 0 && !instant.After(out[len(out)-1]) {
			continue
		}
		out = append(out, instant)
	}
	return out
}
