package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voyageplanner/backend/internal/domain"
	"github.com/voyageplanner/backend/internal/repo"
	"github.com/voyageplanner/backend/internal/service"
)

// mockActivityRepo is a hand-written test double for repo.ActivityRepo.
type mockActivityRepo struct {
	create     func(ctx context.Context, a domain.Activity) (domain.Activity, error)
	listByTrip func(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error)
}

func (m *mockActivityRepo) Create(ctx context.Context, a domain.Activity) (domain.Activity, error) {
	return m.create(ctx, a)
}
func (m *mockActivityRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error) {
	return m.listByTrip(ctx, tripID)
}

// compile-time check: mockActivityRepo must satisfy repo.ActivityRepo.
var _ repo.ActivityRepo = (*mockActivityRepo)(nil)

// ---- helpers ---------------------------------------------------------------

// marchTrip is a three-day trip: 2025-03-10 through 2025-03-12.
func marchTrip(id uuid.UUID) domain.Trip {
	return domain.Trip{
		ID:          id,
		Destination: "Gramado",
		StartsAt:    time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		EndsAt:      time.Date(2025, 3, 12, 23, 59, 59, 0, time.UTC),
	}
}

func marchTripRepo() *mockTripRepo {
	return &mockTripRepo{
		getByID: func(_ context.Context, id uuid.UUID) (domain.Trip, error) {
			return marchTrip(id), nil
		},
	}
}

func echoActivityRepo() *mockActivityRepo {
	return &mockActivityRepo{
		create: func(_ context.Context, a domain.Activity) (domain.Activity, error) {
			a.ID = uuid.New()
			return a, nil
		},
	}
}

// ---- Create ----------------------------------------------------------------

func TestActivityService_Create_OK(t *testing.T) {
	svc := service.NewActivityService(marchTripRepo(), echoActivityRepo())

	got, err := svc.Create(context.Background(), uuid.New(), "City walking tour",
		time.Date(2025, 3, 11, 14, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.Equal(t, "City walking tour", got.Title)
}

func TestActivityService_Create_TripNotFound(t *testing.T) {
	svc := service.NewActivityService(missingTripRepo(), echoActivityRepo())

	_, err := svc.Create(context.Background(), uuid.New(), "City walking tour",
		time.Date(2025, 3, 11, 14, 0, 0, 0, time.UTC))

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestActivityService_Create_ShortTitle(t *testing.T) {
	svc := service.NewActivityService(marchTripRepo(), echoActivityRepo())

	_, err := svc.Create(context.Background(), uuid.New(), "Ski",
		time.Date(2025, 3, 11, 14, 0, 0, 0, time.UTC))

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestActivityService_Create_BeforeTripStart(t *testing.T) {
	svc := service.NewActivityService(marchTripRepo(), echoActivityRepo())

	_, err := svc.Create(context.Background(), uuid.New(), "Early breakfast",
		time.Date(2025, 3, 9, 8, 0, 0, 0, time.UTC))

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestActivityService_Create_AfterTripEnd(t *testing.T) {
	svc := service.NewActivityService(marchTripRepo(), echoActivityRepo())

	_, err := svc.Create(context.Background(), uuid.New(), "Late party",
		time.Date(2025, 3, 13, 0, 0, 0, 0, time.UTC))

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestActivityService_Create_ExactBoundaries(t *testing.T) {
	trip := marchTrip(uuid.New())
	svc := service.NewActivityService(marchTripRepo(), echoActivityRepo())

	// Both range boundaries are valid scheduling times.
	_, err := svc.Create(context.Background(), trip.ID, "Arrival dinner", trip.StartsAt)
	assert.NoError(t, err)

	_, err = svc.Create(context.Background(), trip.ID, "Farewell drinks", trip.EndsAt)
	assert.NoError(t, err)
}

// ---- ListByTrip ------------------------------------------------------------

func TestActivityService_ListByTrip_BucketPerTripDay(t *testing.T) {
	activities := &mockActivityRepo{
		listByTrip: func(_ context.Context, _ uuid.UUID) ([]domain.Activity, error) {
			return nil, nil
		},
	}
	svc := service.NewActivityService(marchTripRepo(), activities)

	got, err := svc.ListByTrip(context.Background(), uuid.New())

	require.NoError(t, err)
	// Three trip days → three buckets, all empty but present.
	require.Len(t, got, 3)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), got[0].Date)
	assert.Equal(t, time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC), got[1].Date)
	assert.Equal(t, time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC), got[2].Date)
	for _, bucket := range got {
		assert.NotNil(t, bucket.Activities)
		assert.Empty(t, bucket.Activities)
	}
}

func TestActivityService_ListByTrip_ActivitiesLandInTheirDay(t *testing.T) {
	tripID := uuid.New()
	morning := domain.Activity{
		ID:       uuid.New(),
		TripID:   tripID,
		Title:    "Morning hike",
		OccursAt: time.Date(2025, 3, 11, 9, 0, 0, 0, time.UTC),
	}
	afternoon := domain.Activity{
		ID:       uuid.New(),
		TripID:   tripID,
		Title:    "Museum visit",
		OccursAt: time.Date(2025, 3, 11, 14, 0, 0, 0, time.UTC),
	}
	lastDay := domain.Activity{
		ID:       uuid.New(),
		TripID:   tripID,
		Title:    "Farewell drinks",
		OccursAt: time.Date(2025, 3, 12, 20, 0, 0, 0, time.UTC),
	}
	activities := &mockActivityRepo{
		listByTrip: func(_ context.Context, _ uuid.UUID) ([]domain.Activity, error) {
			// Repo returns ascending occurs_at order.
			return []domain.Activity{morning, afternoon, lastDay}, nil
		},
	}
	svc := service.NewActivityService(marchTripRepo(), activities)

	got, err := svc.ListByTrip(context.Background(), tripID)

	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Empty(t, got[0].Activities)

	// 2025-03-11 holds both of its activities, morning first.
	require.Len(t, got[1].Activities, 2)
	assert.Equal(t, morning.ID, got[1].Activities[0].ID)
	assert.Equal(t, afternoon.ID, got[1].Activities[1].ID)

	require.Len(t, got[2].Activities, 1)
	assert.Equal(t, lastDay.ID, got[2].Activities[0].ID)
}

func TestActivityService_ListByTrip_SingleDayTrip(t *testing.T) {
	start := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	trips := &mockTripRepo{
		getByID: func(_ context.Context, id uuid.UUID) (domain.Trip, error) {
			return domain.Trip{ID: id, StartsAt: start, EndsAt: start.Add(12 * time.Hour)}, nil
		},
	}
	activities := &mockActivityRepo{
		listByTrip: func(_ context.Context, _ uuid.UUID) ([]domain.Activity, error) {
			return nil, nil
		},
	}
	svc := service.NewActivityService(trips, activities)

	got, err := svc.ListByTrip(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestActivityService_ListByTrip_TripNotFound(t *testing.T) {
	svc := service.NewActivityService(missingTripRepo(), &mockActivityRepo{})

	_, err := svc.ListByTrip(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
