package scheduling

import (
	"testing"
	"time"

	"telecare/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chicagoProfile(duration int) models.SchedulingProfile {
	return models.SchedulingProfile{
		Timezone:                    "America/Chicago",
		ConsultationDurationMinutes: duration,
		WeeklyAvailability: models.WeeklyAvailability{
			// Monday only.
			"1": {{
				Start: models.TimeOfDay{Hour: 9, Minute: 0},
				End:   models.TimeOfDay{Hour: 17, Minute: 0},
			}},
		},
	}
}

func TestResolveDayCandidatesWeekdayLookup(t *testing.T) {
	chicago := mustZone(t, "America/Chicago")
	profile := chicagoProfile(30)

	// 2024-01-15 is a Monday: candidates expected.
	monday := ResolveDayCandidates(profile, day(2024, time.January, 15), chicago, TrailingSlotFit)
	require.NotEmpty(t, monday)
	assert.Equal(t, time.Date(2024, 1, 15, 15, 0, 0, 0, time.UTC), monday[0])

	// 2024-01-16 is a Tuesday: no templates, nothing to offer.
	tuesday := ResolveDayCandidates(profile, day(2024, time.January, 16), chicago, TrailingSlotFit)
	assert.Empty(t, tuesday)
}

func TestResolveDayCandidatesWeekdayFromCalendarDate(t *testing.T) {
	// The weekday must come from the caller-intended calendar date. A
	// Sunday-only provider asked about Sunday 2024-01-14 gets slots even
	// though 9pm Chicago that day is already Monday in UTC.
	chicago := mustZone(t, "America/Chicago")
	profile := models.SchedulingProfile{
		Timezone:                    "America/Chicago",
		ConsultationDurationMinutes: 60,
		WeeklyAvailability: models.WeeklyAvailability{
			"0": {{
				Start: models.TimeOfDay{Hour: 20, Minute: 0},
				End:   models.TimeOfDay{Hour: 23, Minute: 0},
			}},
		},
	}

	got := ResolveDayCandidates(profile, day(2024, time.January, 14), chicago, TrailingSlotFit)
	require.Len(t, got, 3)
	// 20:00 CST Sunday is 02:00Z Monday.
	assert.Equal(t, time.Date(2024, 1, 15, 2, 0, 0, 0, time.UTC), got[0])
}

func TestResolveDayCandidatesMultipleTemplates(t *testing.T) {
	profile := models.SchedulingProfile{
		Timezone:                    "UTC",
		ConsultationDurationMinutes: 30,
		WeeklyAvailability: models.WeeklyAvailability{
			// Afternoon listed before morning: output must still be sorted.
			"1": {
				{Start: models.TimeOfDay{Hour: 14, Minute: 0}, End: models.TimeOfDay{Hour: 15, Minute: 0}},
				{Start: models.TimeOfDay{Hour: 9, Minute: 0}, End: models.TimeOfDay{Hour: 10, Minute: 0}},
			},
		},
	}

	got := ResolveDayCandidates(profile, day(2024, time.January, 15), time.UTC, TrailingSlotFit)
	require.Len(t, got, 4)
	for i := 1; i < len(got); i++ {
		assert.True(t, got[i].After(got[i-1]))
	}
}

func TestResolveDayCandidatesOverlappingTemplatesDeduped(t *testing.T) {
	profile := models.SchedulingProfile{
		Timezone:                    "UTC",
		ConsultationDurationMinutes: 30,
		WeeklyAvailability: models.WeeklyAvailability{
			"1": {
				{Start: models.TimeOfDay{Hour: 9, Minute: 0}, End: models.TimeOfDay{Hour: 11, Minute: 0}},
				{Start: models.TimeOfDay{Hour: 10, Minute: 0}, End: models.TimeOfDay{Hour: 12, Minute: 0}},
			},
		},
	}

	got := ResolveDayCandidates(profile, day(2024, time.January, 15), time.UTC, TrailingSlotFit)
	seen := map[time.Time]bool{}
	for _, c := range got {
		assert.False(t, seen[c], "duplicate candidate %v", c)
		seen[c] = true
	}
	// 09:00..11:30 at half-hour steps.
	require.Len(t, got, 6)
}

func TestResolveDayCandidatesNilAvailability(t *testing.T) {
	profile := models.SchedulingProfile{
		Timezone:                    "UTC",
		ConsultationDurationMinutes: 30,
	}
	assert.Empty(t, ResolveDayCandidates(profile, day(2024, time.January, 15), time.UTC, TrailingSlotFit))
}
