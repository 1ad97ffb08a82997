// Package domain contains the core data types and validation rules for the
// trip planner. This package has zero transport or storage dependencies and is
// imported by every other internal package (repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Trip is the aggregate root: a planned journey to a destination within a date
// range. Participants, activities, and links all belong to a trip.
type Trip struct {
	ID          uuid.UUID `json:"id"`
	Destination string    `json:"destination"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	IsConfirmed bool      `json:"is_confirmed"`
	CreatedAt   time.Time `json:"created_at"`
}

// Days returns every calendar day covered by the trip, from the start date to
// the end date inclusive, as midnight timestamps in the trip's own location.
// A trip that starts and ends on the same date yields a single day.
func (t Trip) Days() []time.Time {
	first := DateOf(t.StartsAt)
	last := DateOf(t.EndsAt)

	var days []time.Time
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// Covers reports whether ts falls inside the trip's date range.
// Both boundaries are inclusive.
func (t Trip) Covers(ts time.Time) bool {
	return !ts.Before(t.StartsAt) && !ts.After(t.EndsAt)
}

// DateOf truncates a timestamp to its calendar date, preserving the location.
func DateOf(ts time.Time) time.Time {
	y, m, d := ts.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, ts.Location())
}

// SameDate reports whether two timestamps fall on the same calendar day.
func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
