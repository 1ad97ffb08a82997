// Package repo contains all database access logic for the trip planner API.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here — only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/voyageplanner/backend/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, *pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup. Begin on a pgx.Tx opens a
// savepoint, so the atomic-write paths work under test transactions too.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// TripRepo defines the persistence operations for Trips.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the service to be unit-tested with a mock.
type TripRepo interface {
	// CreateWithParticipants inserts a trip, its confirmed owner participant,
	// and one unconfirmed participant per invite email as a single atomic unit.
	// Either all rows are created or none are.
	CreateWithParticipants(ctx context.Context, trip domain.Trip, owner domain.Participant, inviteEmails []string) (domain.Trip, error)

	// GetByID retrieves a single trip by its UUID primary key.
	// Returns domain.ErrNotFound if no trip with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)

	// Update overwrites destination, starts_at, and ends_at of an existing
	// trip and returns the updated record. Returns domain.ErrNotFound if no
	// trip with that ID exists.
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// Confirm flips is_confirmed to true if it is still false. Returns
	// (true, nil) when this call performed the transition, (false, nil) when
	// the trip was already confirmed, and domain.ErrNotFound if the trip does
	// not exist. The conditional UPDATE makes concurrent first-confirmations
	// race-safe: exactly one caller observes true.
	Confirm(ctx context.Context, id uuid.UUID) (bool, error)
}

// pgTripRepo is the Postgres implementation of TripRepo.
type pgTripRepo struct {
	db db
}

// NewTripRepo constructs a TripRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewTripRepo(db db) TripRepo {
	return &pgTripRepo{db: db}
}

// CreateWithParticipants inserts the trip and all its initial participant rows
// inside one transaction.
func (r *pgTripRepo) CreateWithParticipants(ctx context.Context, trip domain.Trip, owner domain.Participant, inviteEmails []string) (domain.Trip, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.CreateWithParticipants: begin: %w", err)
	}
	defer tx.Rollback(ctx)

	const insertTrip = `
		INSERT INTO trips (destination, starts_at, ends_at)
		VALUES (@destination, @starts_at, @ends_at)
		RETURNING id, destination, starts_at, ends_at, is_confirmed, created_at`

	row := tx.QueryRow(ctx, insertTrip, pgx.NamedArgs{
		"destination": trip.Destination,
		"starts_at":   trip.StartsAt,
		"ends_at":     trip.EndsAt,
	})
	created, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.CreateWithParticipants: insert trip: %w", err)
	}

	const insertParticipant = `
		INSERT INTO participants (trip_id, name, email, is_owner, is_confirmed)
		VALUES (@trip_id, @name, @email, @is_owner, @is_confirmed)`

	// The owner row is confirmed from the start.
	_, err = tx.Exec(ctx, insertParticipant, pgx.NamedArgs{
		"trip_id":      created.ID,
		"name":         owner.Name,
		"email":        owner.Email,
		"is_owner":     true,
		"is_confirmed": true,
	})
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.CreateWithParticipants: insert owner: %w", err)
	}

	for _, email := range inviteEmails {
		_, err = tx.Exec(ctx, insertParticipant, pgx.NamedArgs{
			"trip_id":      created.ID,
			"name":         "",
			"email":        email,
			"is_owner":     false,
			"is_confirmed": false,
		})
		if err != nil {
			return domain.Trip{}, fmt.Errorf("repo.TripRepo.CreateWithParticipants: insert invitee: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.CreateWithParticipants: commit: %w", err)
	}
	return created, nil
}

// GetByID retrieves a trip by primary key.
func (r *pgTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	const q = `
		SELECT id, destination, starts_at, ends_at, is_confirmed, created_at
		FROM trips
		WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", err)
	}
	return result, nil
}

// Update overwrites destination and dates of a trip and returns the updated record.
func (r *pgTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	const q = `
		UPDATE trips
		SET destination = @destination,
		    starts_at   = @starts_at,
		    ends_at     = @ends_at
		WHERE id = @id
		RETURNING id, destination, starts_at, ends_at, is_confirmed, created_at`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{
		"id":          trip.ID,
		"destination": trip.Destination,
		"starts_at":   trip.StartsAt,
		"ends_at":     trip.EndsAt,
	})
	result, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Update: %w", err)
	}
	return result, nil
}

// Confirm performs a conditional flip of is_confirmed.
func (r *pgTripRepo) Confirm(ctx context.Context, id uuid.UUID) (bool, error) {
	const q = `
		UPDATE trips
		SET is_confirmed = true
		WHERE id = @id AND is_confirmed = false`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return false, fmt.Errorf("repo.TripRepo.Confirm: %w", err)
	}
	if tag.RowsAffected() == 1 {
		return true, nil
	}

	// No row changed: either the trip is already confirmed or it does not exist.
	if _, err := r.GetByID(ctx, id); err != nil {
		return false, fmt.Errorf("repo.TripRepo.Confirm: %w", err)
	}
	return false, nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing the scan helpers
// to be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanTrip maps a single database row into a domain.Trip.
func scanTrip(s scanner) (domain.Trip, error) {
	var (
		t  domain.Trip
		id pgtype.UUID
	)

	err := s.Scan(&id, &t.Destination, &t.StartsAt, &t.EndsAt, &t.IsConfirmed, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Trip{}, domain.ErrNotFound
		}
		return domain.Trip{}, err
	}

	t.ID = uuid.UUID(id.Bytes)
	return t, nil
}
