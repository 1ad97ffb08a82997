// Package handler implements the HTTP transport for the trip planner API.
// Handlers decode and validate request payloads, call the service layer, and
// map domain errors onto HTTP status codes. Methods are split into
// domain-specific files (trip.go, participant.go, etc.) but all share the same
// Server struct so they can access its dependencies.
package handler

import (
	"context"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/voyageplanner/backend/internal/domain"
	"github.com/voyageplanner/backend/internal/service"
)

// TripServicer defines the trip operations the HTTP layer depends on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type TripServicer interface {
	Create(ctx context.Context, in service.CreateTripInput) (domain.Trip, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	Update(ctx context.Context, id uuid.UUID, destination string, startsAt, endsAt time.Time) (domain.Trip, error)
	Confirm(ctx context.Context, id uuid.UUID) (domain.ConfirmOutcome, error)
}

// ParticipantServicer defines the participant operations the HTTP layer depends on.
type ParticipantServicer interface {
	Invite(ctx context.Context, tripID uuid.UUID, email string) (domain.Participant, error)
	Confirm(ctx context.Context, id uuid.UUID, name, email string) (domain.Participant, domain.ConfirmOutcome, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Participant, error)
	FindByEmail(ctx context.Context, tripID uuid.UUID, email string) ([]domain.Participant, error)
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error)
}

// ActivityServicer defines the activity operations the HTTP layer depends on.
type ActivityServicer interface {
	Create(ctx context.Context, tripID uuid.UUID, title string, occursAt time.Time) (domain.Activity, error)
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.ActivityDay, error)
}

// LinkServicer defines the link operations the HTTP layer depends on.
type LinkServicer interface {
	Create(ctx context.Context, tripID uuid.UUID, title, url string) (domain.Link, error)
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Link, error)
}

// Server implements the HTTP handlers for all API endpoints.
// Methods are in domain-specific files but all operate on this struct.
type Server struct {
	trips        TripServicer
	participants ParticipantServicer
	activities   ActivityServicer
	links        LinkServicer

	validate *validator.Validate

	// frontEndURL is where confirmation endpoints redirect after handling,
	// mirroring the deep-link flow of the mobile client.
	frontEndURL string
}

// NewServer constructs the Server with all its dependencies.
func NewServer(trips TripServicer, participants ParticipantServicer, activities ActivityServicer, links LinkServicer, frontEndURL string) *Server {
	return &Server{
		trips:        trips,
		participants: participants,
		activities:   activities,
		links:        links,
		validate:     validator.New(validator.WithRequiredStructEnabled()),
		frontEndURL:  frontEndURL,
	}
}

// Routes returns the router with every API endpoint registered.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)

	r.Route("/trips", func(r chi.Router) {
		r.Post("/", s.CreateTrip)
		r.Route("/{tripId}", func(r chi.Router) {
			r.Get("/", s.GetTrip)
			r.Put("/", s.UpdateTrip)
			r.Get("/confirm", s.ConfirmTrip)
			r.Post("/invites", s.InviteParticipant)
			r.Get("/participants", s.ListParticipants)
			r.Get("/participants/{email}", s.GetParticipantByEmail)
			r.Post("/activities", s.CreateActivity)
			r.Get("/activities", s.ListActivities)
			r.Post("/links", s.CreateLink)
			r.Get("/links", s.ListLinks)
		})
	})

	r.Route("/participants/{participantId}", func(r chi.Router) {
		r.Get("/", s.GetParticipant)
		r.Patch("/confirm", s.ConfirmParticipant)
	})

	return r
}

// tripRedirectURL builds the front-end trip page URL confirmation endpoints
// redirect to.
func (s *Server) tripRedirectURL(tripID uuid.UUID) string {
	return s.frontEndURL + "/trips/" + tripID.String()
}
