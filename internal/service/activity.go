package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/voyageplanner/backend/internal/domain"
	"github.com/voyageplanner/backend/internal/repo"
)

// ActivityService implements business logic for Activity operations.
// It holds the trip repo because activities are constrained to their trip's
// date range at creation time.
type ActivityService struct {
	trips      repo.TripRepo
	activities repo.ActivityRepo
}

// NewActivityService constructs an ActivityService backed by the provided repos.
func NewActivityService(trips repo.TripRepo, activities repo.ActivityRepo) *ActivityService {
	return &ActivityService{trips: trips, activities: activities}
}

// Create validates the activity against the trip's current date range and
// persists it. Both range boundaries are valid scheduling times. The check is
// made once, here: a later trip reschedule does not revisit existing activities.
func (s *ActivityService) Create(ctx context.Context, tripID uuid.UUID, title string, occursAt time.Time) (domain.Activity, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}
	if err := domain.ValidateTitle(title); err != nil {
		return domain.Activity{}, err
	}
	if !trip.Covers(occursAt) {
		return domain.Activity{}, fmt.Errorf("%w: invalid activity date", domain.ErrValidation)
	}

	created, err := s.activities.Create(ctx, domain.Activity{
		TripID:   tripID,
		Title:    title,
		OccursAt: occursAt,
	})
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}
	return created, nil
}

// ListByTrip returns the trip's schedule as one bucket per calendar day, from
// the start date to the end date inclusive. Days without activities are still
// present with an empty list, so clients can render the full trip span.
// Activities inside each bucket keep the repo's ascending time order.
func (s *ActivityService) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.ActivityDay, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ActivityService.ListByTrip: %w", err)
	}
	activities, err := s.activities.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ActivityService.ListByTrip: %w", err)
	}

	days := trip.Days()
	buckets := make([]domain.ActivityDay, len(days))
	for i, day := range days {
		buckets[i] = domain.ActivityDay{Date: day, Activities: []domain.Activity{}}
	}

	for _, a := range activities {
		for i := range buckets {
			if domain.SameDate(a.OccursAt, buckets[i].Date) {
				buckets[i].Activities = append(buckets[i].Activities, a)
				break
			}
		}
	}

	return buckets, nil
}
