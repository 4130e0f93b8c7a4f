package httpapi

import (
	"time"

	"github.com/dmitrijs2005/eventplanner/internal/server/models"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type createEventRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`
}

type inviteRequest struct {
	Email string `json:"email"`
}

type respondRequest struct {
	Status string `json:"status"`
}

type searchRequest struct {
	Keyword   string     `json:"keyword"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
	Role      string     `json:"role"`
}

type participantJSON struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	Status string `json:"status,omitempty"`
	Email  string `json:"email,omitempty"`
}

// eventJSON carries the event id twice, as "id" and "_id". Older clients
// read one, newer ones the other; the server always emits both.
type eventJSON struct {
	ID           string            `json:"id"`
	LegacyID     string            `json:"_id"`
	Title        string            `json:"title"`
	Description  string            `json:"description"`
	Date         string            `json:"date"`
	Location     string            `json:"location"`
	OrganizerID  string            `json:"organizer_id"`
	Participants []participantJSON `json:"participants"`
}

type eventResponse struct {
	Event   eventJSON `json:"event"`
	Message string    `json:"message,omitempty"`
}

type eventsResponse struct {
	Events []eventJSON `json:"events"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type detailResponse struct {
	Detail string `json:"detail"`
}

func toEventJSON(e *models.Event) eventJSON {
	participants := make([]participantJSON, 0, len(e.Participants))
	for _, p := range e.Participants {
		participants = append(participants, participantJSON{
			UserID: p.UserID,
			Role:   string(p.Role),
			Status: string(p.Status),
			Email:  p.Email,
		})
	}
	return eventJSON{
		ID:           e.ID,
		LegacyID:     e.ID,
		Title:        e.Title,
		Description:  e.Description,
		Date:         e.Date.Format(time.RFC3339),
		Location:     e.Location,
		OrganizerID:  e.OrganizerID,
		Participants: participants,
	}
}

func toEventsJSON(events []*models.Event) []eventJSON {
	out := make([]eventJSON, 0, len(events))
	for _, e := range events {
		out = append(out, toEventJSON(e))
	}
	return out
}
