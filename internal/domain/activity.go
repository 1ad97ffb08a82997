package domain

import (
	"time"

	"github.com/google/uuid"
)

// Activity is a titled, timestamped event scoped to a trip. Its timestamp must
// fall inside the trip's date range at creation time; activities are immutable
// afterwards.
type Activity struct {
	ID        uuid.UUID `json:"id"`
	TripID    uuid.UUID `json:"trip_id"`
	Title     string    `json:"title"`
	OccursAt  time.Time `json:"occurs_at"`
	CreatedAt time.Time `json:"created_at"`
}

// ActivityDay is one calendar day of a trip with the activities scheduled on
// it, in ascending time order. Days with no activities carry an empty slice so
// clients can render the full trip span without gaps.
type ActivityDay struct {
	Date       time.Time  `json:"date"`
	Activities []Activity `json:"activities"`
}
