package repo_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voyageplanner/backend/internal/domain"
	"github.com/voyageplanner/backend/internal/repo"
)

// createTrip inserts a trip with only its owner and returns it, for tests that
// need a trip to hang participants off.
func createTrip(t *testing.T, tx pgx.Tx) domain.Trip {
	t.Helper()
	trip, err := repo.NewTripRepo(tx).CreateWithParticipants(context.Background(), tripFixture(), ownerFixture(), nil)
	require.NoError(t, err)
	return trip
}

// ---- Create ----

func TestParticipantRepo_Create(t *testing.T) {
	tx := newTestTx(t)
	participants := repo.NewParticipantRepo(tx)
	trip := createTrip(t, tx)
	ctx := context.Background()

	got, err := participants.Create(ctx, domain.Participant{
		TripID: trip.ID,
		Email:  "guest@example.com",
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.Equal(t, trip.ID, got.TripID)
	assert.Equal(t, "guest@example.com", got.Email)
	assert.Empty(t, got.Name)
	assert.False(t, got.IsOwner)
	assert.False(t, got.IsConfirmed)
	assert.False(t, got.CreatedAt.IsZero())
}

// ---- GetByID ----

func TestParticipantRepo_GetByID(t *testing.T) {
	tx := newTestTx(t)
	participants := repo.NewParticipantRepo(tx)
	trip := createTrip(t, tx)
	ctx := context.Background()

	created, err := participants.Create(ctx, domain.Participant{TripID: trip.ID, Email: "guest@example.com"})
	require.NoError(t, err)

	got, err := participants.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "guest@example.com", got.Email)
}

func TestParticipantRepo_GetByID_NotFound(t *testing.T) {
	tx := newTestTx(t)
	participants := repo.NewParticipantRepo(tx)

	_, err := participants.GetByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ---- ListByTrip ----

func TestParticipantRepo_ListByTrip(t *testing.T) {
	tx := newTestTx(t)
	participants := repo.NewParticipantRepo(tx)
	trip := createTrip(t, tx)
	ctx := context.Background()

	_, err := participants.Create(ctx, domain.Participant{TripID: trip.ID, Email: "first@example.com"})
	require.NoError(t, err)
	_, err = participants.Create(ctx, domain.Participant{TripID: trip.ID, Email: "second@example.com"})
	require.NoError(t, err)

	all, err := participants.ListByTrip(ctx, trip.ID)
	require.NoError(t, err)
	require.Len(t, all, 3, "owner plus two guests")

	emails := make([]string, 0, len(all))
	for _, p := range all {
		emails = append(emails, p.Email)
	}
	assert.ElementsMatch(t, []string{"grace@example.com", "first@example.com", "second@example.com"}, emails)
}

func TestParticipantRepo_ListByTrip_Empty(t *testing.T) {
	tx := newTestTx(t)
	participants := repo.NewParticipantRepo(tx)

	all, err := participants.ListByTrip(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.NotNil(t, all, "should be an empty slice, not nil")
	assert.Empty(t, all)
}

// ---- FindByEmail ----

func TestParticipantRepo_FindByEmail(t *testing.T) {
	tx := newTestTx(t)
	participants := repo.NewParticipantRepo(tx)
	trip := createTrip(t, tx)
	ctx := context.Background()

	_, err := participants.Create(ctx, domain.Participant{TripID: trip.ID, Email: "guest@example.com"})
	require.NoError(t, err)
	_, err = participants.Create(ctx, domain.Participant{TripID: trip.ID, Email: "other@example.com"})
	require.NoError(t, err)

	matches, err := participants.FindByEmail(ctx, trip.ID, "guest@example.com")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "guest@example.com", matches[0].Email)
}

func TestParticipantRepo_FindByEmail_NoMatch(t *testing.T) {
	tx := newTestTx(t)
	participants := repo.NewParticipantRepo(tx)
	trip := createTrip(t, tx)

	matches, err := participants.FindByEmail(context.Background(), trip.ID, "nobody@example.com")
	require.NoError(t, err)
	assert.NotNil(t, matches)
	assert.Empty(t, matches)
}

func TestParticipantRepo_FindByEmail_ScopedToTrip(t *testing.T) {
	tx := newTestTx(t)
	participants := repo.NewParticipantRepo(tx)
	ctx := context.Background()

	tripA := createTrip(t, tx)
	tripB, err := repo.NewTripRepo(tx).CreateWithParticipants(ctx, tripFixture(), ownerFixture(), nil)
	require.NoError(t, err)

	_, err = participants.Create(ctx, domain.Participant{TripID: tripA.ID, Email: "guest@example.com"})
	require.NoError(t, err)

	matches, err := participants.FindByEmail(ctx, tripB.ID, "guest@example.com")
	require.NoError(t, err)
	assert.Empty(t, matches, "matches from other trips must not leak")
}

// ---- Confirm ----

func TestParticipantRepo_Confirm(t *testing.T) {
	tx := newTestTx(t)
	participants := repo.NewParticipantRepo(tx)
	trip := createTrip(t, tx)
	ctx := context.Background()

	created, err := participants.Create(ctx, domain.Participant{TripID: trip.ID, Email: "guest@example.com"})
	require.NoError(t, err)

	changed, err := participants.Confirm(ctx, created.ID, "Guest Name")
	require.NoError(t, err)
	assert.True(t, changed)

	got, err := participants.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, got.IsConfirmed)
	assert.Equal(t, "Guest Name", got.Name)
	assert.Equal(t, "guest@example.com", got.Email, "email must not change on confirm")
}

func TestParticipantRepo_Confirm_AlreadyConfirmed(t *testing.T) {
	tx := newTestTx(t)
	participants := repo.NewParticipantRepo(tx)
	trip := createTrip(t, tx)
	ctx := context.Background()

	created, err := participants.Create(ctx, domain.Participant{TripID: trip.ID, Email: "guest@example.com"})
	require.NoError(t, err)

	changed, err := participants.Confirm(ctx, created.ID, "First Name")
	require.NoError(t, err)
	require.True(t, changed)

	// Repeat call must not touch the stored name.
	changed, err = participants.Confirm(ctx, created.ID, "Second Name")
	require.NoError(t, err)
	assert.False(t, changed)

	got, err := participants.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "First Name", got.Name)
}

func TestParticipantRepo_Confirm_NotFound(t *testing.T) {
	tx := newTestTx(t)
	participants := repo.NewParticipantRepo(tx)

	_, err := participants.Confirm(context.Background(), uuid.New(), "Nobody")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
