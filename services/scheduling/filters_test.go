package scheduling

import (
	"testing"
	"time"

	"telecare/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func utc(h, m int) time.Time {
	return time.Date(2024, 1, 15, h, m, 0, 0, time.UTC)
}

func halfHourCandidates(from, to time.Time) []time.Time {
	var out []time.Time
	for c := from; c.Before(to); c = c.Add(30 * time.Minute) {
		out = append(out, c)
	}
	return out
}

func TestFilterOverlapsRemovesBookedSlot(t *testing.T) {
	candidates := halfHourCandidates(utc(15, 0), utc(23, 0))
	booked := []models.Appointment{
		{StartTime: utc(15, 0), DurationMinutes: 30, Status: models.AppointmentConfirmed},
	}

	got := FilterOverlaps(candidates, booked, 30)

	assert.NotContains(t, got, utc(15, 0))
	assert.Contains(t, got, utc(15, 30))
	assert.Len(t, got, len(halfHourCandidates(utc(15, 0), utc(23, 0)))-1)
}

func TestFilterOverlapsHalfOpenBoundaries(t *testing.T) {
	booked := []models.Appointment{
		{StartTime: utc(16, 0), DurationMinutes: 60},
	}
	candidates := []time.Time{
		utc(15, 0),  // ends 15:30, clear
		utc(15, 30), // ends exactly at booked start: no collision
		utc(16, 0),  // inside
		utc(16, 30), // inside
		utc(17, 0),  // starts exactly at booked end: no collision
	}

	got := FilterOverlaps(candidates, booked, 30)
	assert.Equal(t, []time.Time{utc(15, 0), utc(15, 30), utc(17, 0)}, got)
}

func TestFilterOverlapsLongBookingBlocksManySlots(t *testing.T) {
	// A 2-hour booked block removes every candidate it straddles.
	booked := []models.Appointment{
		{StartTime: utc(16, 0), DurationMinutes: 120},
	}
	candidates := halfHourCandidates(utc(15, 0), utc(19, 0))

	got := FilterOverlaps(candidates, booked, 30)
	assert.Equal(t, []time.Time{utc(15, 0), utc(15, 30), utc(18, 0), utc(18, 30)}, got)
}

func TestFilterOverlapsCandidateDurationCounts(t *testing.T) {
	// The candidate's own duration matters: a 60-minute consultation at
	// 15:30 reaches into a 16:00 booking even though its start is clear.
	booked := []models.Appointment{
		{StartTime: utc(16, 0), DurationMinutes: 30},
	}

	got := FilterOverlaps([]time.Time{utc(15, 30)}, booked, 60)
	assert.Empty(t, got)

	got = FilterOverlaps([]time.Time{utc(15, 30)}, booked, 30)
	assert.Equal(t, []time.Time{utc(15, 30)}, got)
}

func TestFilterOverlapsNoBookings(t *testing.T) {
	candidates := halfHourCandidates(utc(15, 0), utc(17, 0))
	got := FilterOverlaps(candidates, nil, 30)
	assert.Equal(t, candidates, got)
}

func TestFilterFutureStrict(t *testing.T) {
	now := utc(16, 0)
	candidates := []time.Time{utc(15, 0), utc(15, 30), utc(16, 0), utc(16, 30), utc(17, 0)}

	got := FilterFuture(candidates, now)

	// Strictly later than now: 16:00 itself is excluded.
	require.Equal(t, []time.Time{utc(16, 30), utc(17, 0)}, got)
}

func TestFilterFutureAllPast(t *testing.T) {
	now := utc(23, 59)
	got := FilterFuture(halfHourCandidates(utc(15, 0), utc(17, 0)), now)
	assert.Empty(t, got)
}
