package domain

import (
	"time"

	"github.com/google/uuid"
)

// Link is an arbitrary titled URL reference attached to a trip, such as a
// booking page or an Airbnb listing. Links are immutable once created.
type Link struct {
	ID        uuid.UUID `json:"id"`
	TripID    uuid.UUID `json:"trip_id"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}
