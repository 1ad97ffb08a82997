package handler

import (
	"net/http"

	"github.com/voyageplanner/backend/internal/domain"
)

// createLinkRequest is the payload for POST /trips/{tripId}/links.
// URL format is checked by the service; the transport only requires presence.
type createLinkRequest struct {
	Title string `json:"title" validate:"required"`
	URL   string `json:"url" validate:"required"`
}

// linkResponse is the client-facing projection of a link.
type linkResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

func linkToResponse(l domain.Link) linkResponse {
	return linkResponse{ID: l.ID.String(), Title: l.Title, URL: l.URL}
}

// CreateLink handles POST /trips/{tripId}/links.
func (s *Server) CreateLink(w http.ResponseWriter, r *http.Request) {
	tripID, ok := urlParamUUID(w, r, "tripId")
	if !ok {
		return
	}
	var req createLinkRequest
	if !s.decodeValid(w, r, &req) {
		return
	}

	link, err := s.links.Create(r.Context(), tripID, req.Title, req.URL)
	if err != nil {
		respondError(w, r, "trip not found", err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"linkId": link.ID.String()})
}

// ListLinks handles GET /trips/{tripId}/links.
func (s *Server) ListLinks(w http.ResponseWriter, r *http.Request) {
	tripID, ok := urlParamUUID(w, r, "tripId")
	if !ok {
		return
	}

	links, err := s.links.ListByTrip(r.Context(), tripID)
	if err != nil {
		respondError(w, r, "trip not found", err)
		return
	}

	out := make([]linkResponse, len(links))
	for i, l := range links {
		out[i] = linkToResponse(l)
	}
	writeJSON(w, http.StatusOK, map[string][]linkResponse{"links": out})
}
