package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voyageplanner/backend/internal/domain"
	"github.com/voyageplanner/backend/internal/repo"
)

func TestActivityRepo_Create(t *testing.T) {
	tx := newTestTx(t)
	activities := repo.NewActivityRepo(tx)
	trip := createTrip(t, tx)
	ctx := context.Background()

	occursAt := trip.StartsAt.Add(3 * time.Hour)
	got, err := activities.Create(ctx, domain.Activity{
		TripID:   trip.ID,
		Title:    "City walking tour",
		OccursAt: occursAt,
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.Equal(t, trip.ID, got.TripID)
	assert.Equal(t, "City walking tour", got.Title)
	assert.True(t, got.OccursAt.Equal(occursAt))
	assert.False(t, got.CreatedAt.IsZero())
}

func TestActivityRepo_ListByTrip_OrderedBySchedule(t *testing.T) {
	tx := newTestTx(t)
	activities := repo.NewActivityRepo(tx)
	trip := createTrip(t, tx)
	ctx := context.Background()

	// Insert out of schedule order; listing must sort by occurs_at.
	later := trip.StartsAt.Add(30 * time.Hour)
	earlier := trip.StartsAt.Add(2 * time.Hour)

	_, err := activities.Create(ctx, domain.Activity{TripID: trip.ID, Title: "Dinner", OccursAt: later})
	require.NoError(t, err)
	_, err = activities.Create(ctx, domain.Activity{TripID: trip.ID, Title: "Breakfast", OccursAt: earlier})
	require.NoError(t, err)

	all, err := activities.ListByTrip(ctx, trip.ID)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Breakfast", all[0].Title)
	assert.Equal(t, "Dinner", all[1].Title)
}

func TestActivityRepo_ListByTrip_Empty(t *testing.T) {
	tx := newTestTx(t)
	activities := repo.NewActivityRepo(tx)

	all, err := activities.ListByTrip(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.NotNil(t, all, "should be an empty slice, not nil")
	assert.Empty(t, all)
}
