package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/voyageplanner/backend/internal/domain"
)

// inviteRequest is the payload for POST /trips/{tripId}/invites.
type inviteRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// confirmParticipantRequest is the payload for PATCH /participants/{participantId}/confirm.
// The email the guest types into the form is accepted but never replaces the
// invited address.
type confirmParticipantRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

// participantResponse is the client-facing projection of a participant.
// is_owner is deliberately absent: the client never needs it and the original
// contract does not expose it.
type participantResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	IsConfirmed bool   `json:"is_confirmed"`
}

func participantToResponse(p domain.Participant) participantResponse {
	return participantResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Email:       p.Email,
		IsConfirmed: p.IsConfirmed,
	}
}

func participantsToResponse(ps []domain.Participant) []participantResponse {
	out := make([]participantResponse, len(ps))
	for i, p := range ps {
		out[i] = participantToResponse(p)
	}
	return out
}

// InviteParticipant handles POST /trips/{tripId}/invites.
func (s *Server) InviteParticipant(w http.ResponseWriter, r *http.Request) {
	tripID, ok := urlParamUUID(w, r, "tripId")
	if !ok {
		return
	}
	var req inviteRequest
	if !s.decodeValid(w, r, &req) {
		return
	}

	participant, err := s.participants.Invite(r.Context(), tripID, req.Email)
	if err != nil {
		respondError(w, r, "trip not found", err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"participantId": participant.ID.String()})
}

// ConfirmParticipant handles PATCH /participants/{participantId}/confirm.
// A first confirmation answers 204; a repeat call redirects to the front-end
// trip page so the client lands where an already-confirmed guest belongs.
func (s *Server) ConfirmParticipant(w http.ResponseWriter, r *http.Request) {
	participantID, ok := urlParamUUID(w, r, "participantId")
	if !ok {
		return
	}
	var req confirmParticipantRequest
	if !s.decodeValid(w, r, &req) {
		return
	}

	participant, outcome, err := s.participants.Confirm(r.Context(), participantID, req.Name, req.Email)
	if err != nil {
		respondError(w, r, "participant not found", err)
		return
	}

	if outcome == domain.AlreadyConfirmed {
		http.Redirect(w, r, s.tripRedirectURL(participant.TripID), http.StatusFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetParticipant handles GET /participants/{participantId}.
func (s *Server) GetParticipant(w http.ResponseWriter, r *http.Request) {
	participantID, ok := urlParamUUID(w, r, "participantId")
	if !ok {
		return
	}

	participant, err := s.participants.GetByID(r.Context(), participantID)
	if err != nil {
		respondError(w, r, "participant not found", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]participantResponse{
		"participant": participantToResponse(participant),
	})
}

// GetParticipantByEmail handles GET /trips/{tripId}/participants/{email}.
// The result carries zero or one participants; an unknown address on an
// existing trip is an empty list, not an error.
func (s *Server) GetParticipantByEmail(w http.ResponseWriter, r *http.Request) {
	tripID, ok := urlParamUUID(w, r, "tripId")
	if !ok {
		return
	}
	email := chi.URLParam(r, "email")

	participants, err := s.participants.FindByEmail(r.Context(), tripID, email)
	if err != nil {
		respondError(w, r, "trip not found", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string][]participantResponse{
		"participants": participantsToResponse(participants),
	})
}

// ListParticipants handles GET /trips/{tripId}/participants.
func (s *Server) ListParticipants(w http.ResponseWriter, r *http.Request) {
	tripID, ok := urlParamUUID(w, r, "tripId")
	if !ok {
		return
	}

	participants, err := s.participants.ListByTrip(r.Context(), tripID)
	if err != nil {
		respondError(w, r, "trip not found", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string][]participantResponse{
		"participants": participantsToResponse(participants),
	})
}
