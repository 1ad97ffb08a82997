package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/voyageplanner/backend/internal/domain"
	"github.com/voyageplanner/backend/internal/repo"
)

// LinkService implements business logic for Link operations.
type LinkService struct {
	trips repo.TripRepo
	links repo.LinkRepo
}

// NewLinkService constructs a LinkService backed by the provided repos.
func NewLinkService(trips repo.TripRepo, links repo.LinkRepo) *LinkService {
	return &LinkService{trips: trips, links: links}
}

// Create verifies the parent trip exists, validates the URL, and persists the
// link. The title carries no constraint beyond what the transport requires.
func (s *LinkService) Create(ctx context.Context, tripID uuid.UUID, title, url string) (domain.Link, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return domain.Link{}, fmt.Errorf("service.LinkService.Create: %w", err)
	}
	if err := domain.ValidateURL(url); err != nil {
		return domain.Link{}, err
	}

	created, err := s.links.Create(ctx, domain.Link{
		TripID: tripID,
		Title:  title,
		URL:    url,
	})
	if err != nil {
		return domain.Link{}, fmt.Errorf("service.LinkService.Create: %w", err)
	}
	return created, nil
}

// ListByTrip returns all links of an existing trip.
// Always returns a non-nil slice so callers can safely range over it.
func (s *LinkService) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Link, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return nil, fmt.Errorf("service.LinkService.ListByTrip: %w", err)
	}

	links, err := s.links.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.LinkService.ListByTrip: %w", err)
	}
	if links == nil {
		return []domain.Link{}, nil
	}
	return links, nil
}
