package handler

import (
	"net/http"
	"time"
)

// createActivityRequest is the payload for POST /trips/{tripId}/activities.
type createActivityRequest struct {
	Title    string    `json:"title" validate:"required,min=4"`
	OccursAt time.Time `json:"occurs_at" validate:"required"`
}

// activityResponse is the client-facing projection of an activity.
type activityResponse struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	OccursAt time.Time `json:"occurs_at"`
}

// activityDayResponse is one calendar day of the trip schedule.
type activityDayResponse struct {
	Date       time.Time          `json:"date"`
	Activities []activityResponse `json:"activities"`
}

// CreateActivity handles POST /trips/{tripId}/activities.
func (s *Server) CreateActivity(w http.ResponseWriter, r *http.Request) {
	tripID, ok := urlParamUUID(w, r, "tripId")
	if !ok {
		return
	}
	var req createActivityRequest
	if !s.decodeValid(w, r, &req) {
		return
	}

	activity, err := s.activities.Create(r.Context(), tripID, req.Title, req.OccursAt)
	if err != nil {
		respondError(w, r, "trip not found", err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"activityId": activity.ID.String()})
}

// ListActivities handles GET /trips/{tripId}/activities.
// The response carries one entry per trip day, in order, including days with
// no scheduled activities.
func (s *Server) ListActivities(w http.ResponseWriter, r *http.Request) {
	tripID, ok := urlParamUUID(w, r, "tripId")
	if !ok {
		return
	}

	days, err := s.activities.ListByTrip(r.Context(), tripID)
	if err != nil {
		respondError(w, r, "trip not found", err)
		return
	}

	out := make([]activityDayResponse, len(days))
	for i, day := range days {
		out[i] = activityDayResponse{
			Date:       day.Date,
			Activities: make([]activityResponse, len(day.Activities)),
		}
		for j, a := range day.Activities {
			out[i].Activities[j] = activityResponse{
				ID:       a.ID.String(),
				Title:    a.Title,
				OccursAt: a.OccursAt,
			}
		}
	}

	writeJSON(w, http.StatusOK, map[string][]activityDayResponse{"activities": out})
}
