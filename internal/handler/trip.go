package handler

import (
	"net/http"
	"time"

	"github.com/voyageplanner/backend/internal/domain"
	"github.com/voyageplanner/backend/internal/service"
)

// createTripRequest is the payload for POST /trips.
// The field names match the original client contract.
type createTripRequest struct {
	Destination    string    `json:"destination" validate:"required,min=4"`
	StartsAt       time.Time `json:"starts_at" validate:"required"`
	EndsAt         time.Time `json:"ends_at" validate:"required"`
	OwnerName      string    `json:"owner_name" validate:"required"`
	OwnerEmail     string    `json:"owner_email" validate:"required,email"`
	EmailsToInvite []string  `json:"emails_to_invite" validate:"omitempty,dive,email"`
}

// updateTripRequest is the payload for PUT /trips/{tripId}.
type updateTripRequest struct {
	Destination string    `json:"destination" validate:"required,min=4"`
	StartsAt    time.Time `json:"starts_at" validate:"required"`
	EndsAt      time.Time `json:"ends_at" validate:"required"`
}

// tripResponse is the client-facing projection of a trip.
type tripResponse struct {
	ID          string    `json:"id"`
	Destination string    `json:"destination"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	IsConfirmed bool      `json:"is_confirmed"`
}

func tripToResponse(t domain.Trip) tripResponse {
	return tripResponse{
		ID:          t.ID.String(),
		Destination: t.Destination,
		StartsAt:    t.StartsAt,
		EndsAt:      t.EndsAt,
		IsConfirmed: t.IsConfirmed,
	}
}

// CreateTrip handles POST /trips.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var req createTripRequest
	if !s.decodeValid(w, r, &req) {
		return
	}

	trip, err := s.trips.Create(r.Context(), service.CreateTripInput{
		Destination:  req.Destination,
		StartsAt:     req.StartsAt,
		EndsAt:       req.EndsAt,
		OwnerName:    req.OwnerName,
		OwnerEmail:   req.OwnerEmail,
		InviteEmails: req.EmailsToInvite,
	})
	if err != nil {
		respondError(w, r, "trip not found", err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"tripId": trip.ID.String()})
}

// GetTrip handles GET /trips/{tripId}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	tripID, ok := urlParamUUID(w, r, "tripId")
	if !ok {
		return
	}

	trip, err := s.trips.GetByID(r.Context(), tripID)
	if err != nil {
		respondError(w, r, "trip not found", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]tripResponse{"trip": tripToResponse(trip)})
}

// UpdateTrip handles PUT /trips/{tripId}.
func (s *Server) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	tripID, ok := urlParamUUID(w, r, "tripId")
	if !ok {
		return
	}
	var req updateTripRequest
	if !s.decodeValid(w, r, &req) {
		return
	}

	_, err := s.trips.Update(r.Context(), tripID, req.Destination, req.StartsAt, req.EndsAt)
	if err != nil {
		respondError(w, r, "trip not found", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ConfirmTrip handles GET /trips/{tripId}/confirm.
// Both outcomes redirect to the front-end trip page; a repeat call simply
// skips the guest notifications.
func (s *Server) ConfirmTrip(w http.ResponseWriter, r *http.Request) {
	tripID, ok := urlParamUUID(w, r, "tripId")
	if !ok {
		return
	}

	if _, err := s.trips.Confirm(r.Context(), tripID); err != nil {
		respondError(w, r, "trip not found", err)
		return
	}

	http.Redirect(w, r, s.tripRedirectURL(tripID), http.StatusFound)
}
