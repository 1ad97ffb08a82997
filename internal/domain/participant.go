package domain

import (
	"time"

	"github.com/google/uuid"
)

// Participant is a person attached to a trip. Exactly one participant per trip
// is the owner; the owner is confirmed from the moment the trip is created.
// Invited guests start unconfirmed and their name stays empty until they
// confirm through their invitation link.
type Participant struct {
	ID          uuid.UUID `json:"id"`
	TripID      uuid.UUID `json:"trip_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	IsOwner     bool      `json:"is_owner"`
	IsConfirmed bool      `json:"is_confirmed"`
	CreatedAt   time.Time `json:"created_at"`
}

// ConfirmOutcome tags the result of a confirmation transition so the transport
// layer can decide how to present a repeat call (ack vs redirect).
type ConfirmOutcome int

const (
	// Confirmed means this call performed the transition.
	Confirmed ConfirmOutcome = iota
	// AlreadyConfirmed means the entity was confirmed before this call;
	// nothing was changed and no notifications were sent.
	AlreadyConfirmed
)
