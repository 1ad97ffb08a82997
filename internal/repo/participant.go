package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/voyageplanner/backend/internal/domain"
)

// ParticipantRepo defines the persistence operations for Participants.
type ParticipantRepo interface {
	// Create inserts a new participant and returns the persisted record.
	// Used for invitations; trip-creation participants are inserted by
	// TripRepo.CreateWithParticipants inside the trip transaction.
	Create(ctx context.Context, p domain.Participant) (domain.Participant, error)

	// GetByID retrieves a single participant by its UUID primary key.
	// Returns domain.ErrNotFound if no participant with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Participant, error)

	// ListByTrip returns all participants of a trip, oldest first.
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error)

	// FindByEmail returns the participants of a trip with the given email
	// address, oldest first. An empty slice is not an error: a trip may have
	// no participant with that address.
	FindByEmail(ctx context.Context, tripID uuid.UUID, email string) ([]domain.Participant, error)

	// Confirm sets is_confirmed and stores the supplied name if the
	// participant is still unconfirmed. Returns (true, nil) when this call
	// performed the transition, (false, nil) when the participant was already
	// confirmed (name and email untouched), and domain.ErrNotFound if the
	// participant does not exist. The conditional UPDATE guarantees that two
	// concurrent first-confirmations apply the transition exactly once.
	Confirm(ctx context.Context, id uuid.UUID, name string) (bool, error)
}

// pgParticipantRepo is the Postgres implementation of ParticipantRepo.
type pgParticipantRepo struct {
	db db
}

// NewParticipantRepo constructs a ParticipantRepo backed by the provided db connection.
func NewParticipantRepo(db db) ParticipantRepo {
	return &pgParticipantRepo{db: db}
}

// Create inserts a new participant row and returns the full persisted record.
func (r *pgParticipantRepo) Create(ctx context.Context, p domain.Participant) (domain.Participant, error) {
	const q = `
		INSERT INTO participants (trip_id, name, email, is_owner, is_confirmed)
		VALUES (@trip_id, @name, @email, @is_owner, @is_confirmed)
		RETURNING id, trip_id, name, email, is_owner, is_confirmed, created_at`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{
		"trip_id":      p.TripID,
		"name":         p.Name,
		"email":        p.Email,
		"is_owner":     p.IsOwner,
		"is_confirmed": p.IsConfirmed,
	})
	result, err := scanParticipant(row)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("repo.ParticipantRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves a participant by primary key.
func (r *pgParticipantRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Participant, error) {
	const q = `
		SELECT id, trip_id, name, email, is_owner, is_confirmed, created_at
		FROM participants
		WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanParticipant(row)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("repo.ParticipantRepo.GetByID: %w", err)
	}
	return result, nil
}

// ListByTrip returns all participants of a trip ordered by creation time.
func (r *pgParticipantRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error) {
	const q = `
		SELECT id, trip_id, name, email, is_owner, is_confirmed, created_at
		FROM participants
		WHERE trip_id = @trip_id
		ORDER BY created_at, id`

	return r.queryParticipants(ctx, "ListByTrip", q, pgx.NamedArgs{"trip_id": tripID})
}

// FindByEmail returns the trip's participants matching an email address.
func (r *pgParticipantRepo) FindByEmail(ctx context.Context, tripID uuid.UUID, email string) ([]domain.Participant, error) {
	const q = `
		SELECT id, trip_id, name, email, is_owner, is_confirmed, created_at
		FROM participants
		WHERE trip_id = @trip_id AND email = @email
		ORDER BY created_at, id`

	return r.queryParticipants(ctx, "FindByEmail", q, pgx.NamedArgs{"trip_id": tripID, "email": email})
}

// Confirm performs a conditional confirmation, filling in the name.
func (r *pgParticipantRepo) Confirm(ctx context.Context, id uuid.UUID, name string) (bool, error) {
	const q = `
		UPDATE participants
		SET is_confirmed = true,
		    name         = @name
		WHERE id = @id AND is_confirmed = false`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id, "name": name})
	if err != nil {
		return false, fmt.Errorf("repo.ParticipantRepo.Confirm: %w", err)
	}
	if tag.RowsAffected() == 1 {
		return true, nil
	}

	// No row changed: already confirmed, or the participant does not exist.
	if _, err := r.GetByID(ctx, id); err != nil {
		return false, fmt.Errorf("repo.ParticipantRepo.Confirm: %w", err)
	}
	return false, nil
}

// queryParticipants runs a multi-row participant query and scans the results.
func (r *pgParticipantRepo) queryParticipants(ctx context.Context, op, q string, args pgx.NamedArgs) ([]domain.Participant, error) {
	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, fmt.Errorf("repo.ParticipantRepo.%s: %w", op, err)
	}
	defer rows.Close()

	participants := []domain.Participant{}
	for rows.Next() {
		p, err := scanParticipant(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ParticipantRepo.%s: scan: %w", op, err)
		}
		participants = append(participants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ParticipantRepo.%s: rows: %w", op, err)
	}
	return participants, nil
}

// scanParticipant maps a single database row into a domain.Participant.
func scanParticipant(s scanner) (domain.Participant, error) {
	var (
		p      domain.Participant
		id     pgtype.UUID
		tripID pgtype.UUID
	)

	err := s.Scan(&id, &tripID, &p.Name, &p.Email, &p.IsOwner, &p.IsConfirmed, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Participant{}, domain.ErrNotFound
		}
		return domain.Participant{}, err
	}

	p.ID = uuid.UUID(id.Bytes)
	p.TripID = uuid.UUID(tripID.Bytes)
	return p, nil
}
