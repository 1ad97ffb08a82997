// Package service contains the business logic for the trip planner API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here — services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/voyageplanner/backend/internal/domain"
	"github.com/voyageplanner/backend/internal/repo"
)

// CreateTripInput carries everything needed to create a trip together with
// its initial participants.
type CreateTripInput struct {
	Destination  string
	StartsAt     time.Time
	EndsAt       time.Time
	OwnerName    string
	OwnerEmail   string
	InviteEmails []string
}

// TripService implements business logic for Trip operations.
// It holds the participant repo as well because confirming a trip fans out
// confirmation requests to every invited guest.
type TripService struct {
	trips        repo.TripRepo
	participants repo.ParticipantRepo
	mailer       Mailer
	logger       *slog.Logger

	// now is swappable for tests of the past-start rule.
	now func() time.Time
}

// NewTripService constructs a TripService backed by the provided repos and
// notification gateway.
func NewTripService(trips repo.TripRepo, participants repo.ParticipantRepo, mailer Mailer, logger *slog.Logger) *TripService {
	return &TripService{
		trips:        trips,
		participants: participants,
		mailer:       mailer,
		logger:       logger,
		now:          time.Now,
	}
}

// WithClock replaces the service's clock. Intended for tests.
func (s *TripService) WithClock(now func() time.Time) *TripService {
	s.now = now
	return s
}

// Create validates the input, atomically persists the trip with its owner and
// invited participants, and sends the owner a confirmation request.
// All validation happens before any write; a trip is never partially created.
func (s *TripService) Create(ctx context.Context, in CreateTripInput) (domain.Trip, error) {
	if err := domain.ValidateDestination(in.Destination); err != nil {
		return domain.Trip{}, err
	}
	if in.StartsAt.Before(s.now()) {
		return domain.Trip{}, fmt.Errorf("%w: starts_at must not be in the past", domain.ErrValidation)
	}
	if err := domain.ValidateDateRange(in.StartsAt, in.EndsAt); err != nil {
		return domain.Trip{}, err
	}
	if err := domain.ValidateEmail(in.OwnerEmail); err != nil {
		return domain.Trip{}, fmt.Errorf("owner_email: %w", err)
	}
	for _, email := range in.InviteEmails {
		if err := domain.ValidateEmail(email); err != nil {
			return domain.Trip{}, fmt.Errorf("emails_to_invite: %w", err)
		}
	}

	trip := domain.Trip{
		Destination: in.Destination,
		StartsAt:    in.StartsAt,
		EndsAt:      in.EndsAt,
	}
	owner := domain.Participant{
		Name:        in.OwnerName,
		Email:       in.OwnerEmail,
		IsOwner:     true,
		IsConfirmed: true,
	}

	created, err := s.trips.CreateWithParticipants(ctx, trip, owner, in.InviteEmails)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}

	// Best-effort: the trip is already committed, so a mail failure must not
	// fail the request. It is logged for operators instead.
	if err := s.mailer.SendTripCreated(ctx, created, owner); err != nil {
		s.logger.ErrorContext(ctx, "trip creation mail failed",
			"trip_id", created.ID, "owner_email", owner.Email, "error", err)
	}

	return created, nil
}

// GetByID returns a single trip by ID.
// Returns domain.ErrNotFound if no trip with that ID exists.
func (s *TripService) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	trip, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	return trip, nil
}

// Update overwrites a trip's destination and date range after re-validating
// them. Existing activities are not re-checked against the new range; an
// activity created under the old dates may end up outside the new ones.
func (s *TripService) Update(ctx context.Context, id uuid.UUID, destination string, startsAt, endsAt time.Time) (domain.Trip, error) {
	if err := domain.ValidateDestination(destination); err != nil {
		return domain.Trip{}, err
	}
	if err := domain.ValidateDateRange(startsAt, endsAt); err != nil {
		return domain.Trip{}, err
	}

	updated, err := s.trips.Update(ctx, domain.Trip{
		ID:          id,
		Destination: destination,
		StartsAt:    startsAt,
		EndsAt:      endsAt,
	})
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	return updated, nil
}

// Confirm marks the trip confirmed and asks every invited guest to confirm
// their presence. Calling it on an already-confirmed trip is a no-op: it
// reports AlreadyConfirmed and sends nothing.
func (s *TripService) Confirm(ctx context.Context, id uuid.UUID) (domain.ConfirmOutcome, error) {
	changed, err := s.trips.Confirm(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("service.TripService.Confirm: %w", err)
	}
	if !changed {
		return domain.AlreadyConfirmed, nil
	}

	trip, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("service.TripService.Confirm: %w", err)
	}
	participants, err := s.participants.ListByTrip(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("service.TripService.Confirm: %w", err)
	}

	for _, p := range participants {
		if p.IsOwner {
			continue
		}
		if err := s.mailer.SendParticipantConfirmation(ctx, trip, p); err != nil {
			s.logger.ErrorContext(ctx, "participant confirmation mail failed",
				"trip_id", trip.ID, "participant_id", p.ID, "error", err)
		}
	}

	return domain.Confirmed, nil
}
