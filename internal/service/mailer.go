package service

import (
	"context"

	"github.com/voyageplanner/backend/internal/domain"
)

// Mailer is the notification gateway the services depend on. Defining the
// interface here (in the consumer package) lets service tests inject a mock
// and keeps the SMTP implementation swappable.
//
// Delivery is best-effort: services log a Mailer failure and still report the
// triggering operation as successful, because the state mutation has already
// been committed by the time a message is sent.
type Mailer interface {
	// SendTripCreated notifies the trip owner that the trip was created and
	// needs to be confirmed.
	SendTripCreated(ctx context.Context, trip domain.Trip, owner domain.Participant) error

	// SendParticipantConfirmation asks a guest to confirm their presence.
	// The message carries a confirmation link built from the participant ID.
	SendParticipantConfirmation(ctx context.Context, trip domain.Trip, participant domain.Participant) error
}
