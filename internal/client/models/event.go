// Package models holds the client-side view of server payloads. Event
// decoding is strict: unknown fields and id-less payloads are rejected, so
// a partially filled record never reaches the rest of the client.
package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"
)

const (
	RoleOrganizer = "organizer"
	RoleAttendee  = "attendee"
)

const (
	StatusGoing    = "Going"
	StatusMaybe    = "Maybe"
	StatusNotGoing = "Not Going"
)

// ErrNoEventID is returned when a payload carries neither "id" nor "_id".
var ErrNoEventID = errors.New("event payload has no id field")

type Participant struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	Status string `json:"status,omitempty"`
	Email  string `json:"email,omitempty"`
}

// Event is the normalized client record. ID is canonical; the wire-level
// "id"/"_id" duplication is resolved during decoding and reproduced during
// encoding.
type Event struct {
	ID           string
	Title        string
	Description  string
	Date         time.Time
	Location     string
	OrganizerID  string
	Participants []Participant
}

type eventWire struct {
	ID           string        `json:"id"`
	LegacyID     string        `json:"_id"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	Date         string        `json:"date"`
	Location     string        `json:"location"`
	OrganizerID  string        `json:"organizer_id"`
	Participants []Participant `json:"participants"`
}

// UnmarshalJSON decodes an event payload strictly and normalizes it.
// Either id field alone yields the same record; when both are present the
// "id" field wins. Participants default to an empty list.
func (e *Event) UnmarshalJSON(data []byte) error {
	var w eventWire

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&w); err != nil {
		return err
	}

	id := w.ID
	if id == "" {
		id = w.LegacyID
	}
	if id == "" {
		return ErrNoEventID
	}

	var date time.Time
	if w.Date != "" {
		parsed, err := time.Parse(time.RFC3339, w.Date)
		if err != nil {
			return err
		}
		date = parsed
	}

	participants := w.Participants
	if participants == nil {
		participants = []Participant{}
	}

	*e = Event{
		ID:           id,
		Title:        w.Title,
		Description:  w.Description,
		Date:         date,
		Location:     w.Location,
		OrganizerID:  w.OrganizerID,
		Participants: participants,
	}
	return nil
}

// MarshalJSON emits both "id" and "_id", matching the server payload shape.
func (e Event) MarshalJSON() ([]byte, error) {
	w := eventWire{
		ID:           e.ID,
		LegacyID:     e.ID,
		Title:        e.Title,
		Description:  e.Description,
		Location:     e.Location,
		OrganizerID:  e.OrganizerID,
		Participants: e.Participants,
	}
	if !e.Date.IsZero() {
		w.Date = e.Date.Format(time.RFC3339)
	}
	if w.Participants == nil {
		w.Participants = []Participant{}
	}
	return json.Marshal(w)
}
