package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/voyageplanner/backend/internal/domain"
	"github.com/voyageplanner/backend/internal/repo"
)

// ParticipantService implements the invitation and confirmation workflow.
// It holds the trip repo as well because invitations and email lookups are
// scoped to an existing trip.
type ParticipantService struct {
	trips        repo.TripRepo
	participants repo.ParticipantRepo
	mailer       Mailer
	logger       *slog.Logger
}

// NewParticipantService constructs a ParticipantService backed by the provided
// repos and notification gateway.
func NewParticipantService(trips repo.TripRepo, participants repo.ParticipantRepo, mailer Mailer, logger *slog.Logger) *ParticipantService {
	return &ParticipantService{
		trips:        trips,
		participants: participants,
		mailer:       mailer,
		logger:       logger,
	}
}

// Invite creates an unconfirmed participant on an existing trip and mails them
// a confirmation request. Duplicate addresses are allowed: each invite is its
// own participant row with its own confirmation link.
func (s *ParticipantService) Invite(ctx context.Context, tripID uuid.UUID, email string) (domain.Participant, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("service.ParticipantService.Invite: %w", err)
	}
	if err := domain.ValidateEmail(email); err != nil {
		return domain.Participant{}, err
	}

	created, err := s.participants.Create(ctx, domain.Participant{
		TripID: tripID,
		Email:  email,
	})
	if err != nil {
		return domain.Participant{}, fmt.Errorf("service.ParticipantService.Invite: %w", err)
	}

	// Best-effort: the invite row is committed; a mail failure is logged and
	// the request still succeeds.
	if err := s.mailer.SendParticipantConfirmation(ctx, trip, created); err != nil {
		s.logger.ErrorContext(ctx, "invite mail failed",
			"trip_id", trip.ID, "participant_id", created.ID, "error", err)
	}

	return created, nil
}

// Confirm transitions a participant from invited to confirmed, storing the
// supplied name. The transition happens at most once: a repeat call reports
// AlreadyConfirmed without touching the stored name or email, and two
// concurrent first calls resolve to exactly one Confirmed outcome.
//
// The email argument is accepted for symmetry with the client form but never
// overwrites the address the invitation was sent to.
func (s *ParticipantService) Confirm(ctx context.Context, id uuid.UUID, name, email string) (domain.Participant, domain.ConfirmOutcome, error) {
	_ = email

	changed, err := s.participants.Confirm(ctx, id, name)
	if err != nil {
		return domain.Participant{}, 0, fmt.Errorf("service.ParticipantService.Confirm: %w", err)
	}

	p, err := s.participants.GetByID(ctx, id)
	if err != nil {
		return domain.Participant{}, 0, fmt.Errorf("service.ParticipantService.Confirm: %w", err)
	}

	if !changed {
		return p, domain.AlreadyConfirmed, nil
	}
	return p, domain.Confirmed, nil
}

// GetByID returns a single participant by ID.
// Returns domain.ErrNotFound if no participant with that ID exists.
func (s *ParticipantService) GetByID(ctx context.Context, id uuid.UUID) (domain.Participant, error) {
	p, err := s.participants.GetByID(ctx, id)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("service.ParticipantService.GetByID: %w", err)
	}
	return p, nil
}

// FindByEmail returns the zero-or-one participants of a trip matching an email
// address. An empty result is not an error, but the trip itself must exist.
func (s *ParticipantService) FindByEmail(ctx context.Context, tripID uuid.UUID, email string) ([]domain.Participant, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return nil, fmt.Errorf("service.ParticipantService.FindByEmail: %w", err)
	}

	participants, err := s.participants.FindByEmail(ctx, tripID, email)
	if err != nil {
		return nil, fmt.Errorf("service.ParticipantService.FindByEmail: %w", err)
	}
	if participants == nil {
		return []domain.Participant{}, nil
	}
	return participants, nil
}

// ListByTrip returns all participants of an existing trip.
// Always returns a non-nil slice so callers can safely range over it.
func (s *ParticipantService) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return nil, fmt.Errorf("service.ParticipantService.ListByTrip: %w", err)
	}

	participants, err := s.participants.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ParticipantService.ListByTrip: %w", err)
	}
	if participants == nil {
		return []domain.Participant{}, nil
	}
	return participants, nil
}
