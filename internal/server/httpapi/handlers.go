package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/eventplanner/internal/common"
	"github.com/dmitrijs2005/eventplanner/internal/server/models"
	"github.com/dmitrijs2005/eventplanner/internal/server/services"
)

func decodeJSONStrict(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// --- Health ---

func (s *HTTPServer) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func (s *HTTPServer) handleReadyz(w http.ResponseWriter, r *http.Request) {
	if err := s.db.PingContext(r.Context()); err != nil {
		writeDetail(w, http.StatusServiceUnavailable, "database not reachable")
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ready"}`))
}

// --- Auth ---

func (s *HTTPServer) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSONStrict(r, &req); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid json")
		return
	}

	s.logger.Info(r.Context(), "Registration request", "email", req.Email)

	token, err := s.users.Signup(r.Context(), req.Email, req.Password)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, tokenResponse{AccessToken: token, TokenType: common.TokenType})
}

func (s *HTTPServer) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSONStrict(r, &req); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid json")
		return
	}

	token, err := s.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			writeDetail(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{AccessToken: token, TokenType: common.TokenType})
}

// --- Events ---

func (s *HTTPServer) handleCreateEvent(w http.ResponseWriter, r *http.Request) {
	var req createEventRequest
	if err := decodeJSONStrict(r, &req); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid json")
		return
	}

	params := &services.CreateEventParams{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Location:    req.Location,
	}

	event, err := s.events.Create(r.Context(), userIDFrom(r.Context()), params)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, eventResponse{Event: toEventJSON(event), Message: "Event created successfully"})
}

func (s *HTTPServer) handleOrganized(w http.ResponseWriter, r *http.Request) {
	events, err := s.events.ListOrganized(r.Context(), userIDFrom(r.Context()))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, eventsResponse{Events: toEventsJSON(events)})
}

func (s *HTTPServer) handleInvited(w http.ResponseWriter, r *http.Request) {
	events, err := s.events.ListInvited(r.Context(), userIDFrom(r.Context()))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, eventsResponse{Events: toEventsJSON(events)})
}

func (s *HTTPServer) handleGetEvent(w http.ResponseWriter, r *http.Request) {
	event, err := s.events.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, eventResponse{Event: toEventJSON(event)})
}

func (s *HTTPServer) handleDeleteEvent(w http.ResponseWriter, r *http.Request) {
	if err := s.events.Delete(r.Context(), r.PathValue("id"), userIDFrom(r.Context())); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Event deleted successfully"})
}

func (s *HTTPServer) handleInvite(w http.ResponseWriter, r *http.Request) {
	var req inviteRequest
	if err := decodeJSONStrict(r, &req); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid json")
		return
	}

	event, err := s.events.Invite(r.Context(), r.PathValue("id"), userIDFrom(r.Context()), req.Email)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, eventResponse{Event: toEventJSON(event), Message: "User invited successfully"})
}

func (s *HTTPServer) handleJoin(w http.ResponseWriter, r *http.Request) {
	event, err := s.events.Join(r.Context(), r.PathValue("id"), userIDFrom(r.Context()))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, eventResponse{Event: toEventJSON(event), Message: "Joined event successfully"})
}

func (s *HTTPServer) handleRespond(w http.ResponseWriter, r *http.Request) {
	var req respondRequest
	if err := decodeJSONStrict(r, &req); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid json")
		return
	}

	event, err := s.events.UpdateResponse(r.Context(), r.PathValue("id"), userIDFrom(r.Context()), models.ResponseStatus(req.Status))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, eventResponse{Event: toEventJSON(event), Message: "Response updated successfully"})
}

func (s *HTTPServer) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := decodeJSONStrict(r, &req); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid json")
		return
	}

	filter := &models.SearchFilter{
		Keyword:   req.Keyword,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Role:      models.ParticipantRole(req.Role),
	}

	events, err := s.events.Search(r.Context(), userIDFrom(r.Context()), filter)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, eventsResponse{Events: toEventsJSON(events)})
}
