package models

import "time"

// ParticipantRole describes a user's role within a single event.
// Roles are immutable once assigned; there is no promotion path from
// attendee to organizer.
type ParticipantRole string

const (
	RoleOrganizer ParticipantRole = "organizer"
	RoleAttendee  ParticipantRole = "attendee"
)

// Valid reports whether r is one of the known roles.
func (r ParticipantRole) Valid() bool {
	return r == RoleOrganizer || r == RoleAttendee
}

// ResponseStatus is a participant's stated intention. The zero value means
// the participant has not responded yet.
type ResponseStatus string

const (
	StatusUnset    ResponseStatus = ""
	StatusGoing    ResponseStatus = "Going"
	StatusMaybe    ResponseStatus = "Maybe"
	StatusNotGoing ResponseStatus = "Not Going"
)

// Valid reports whether s is one of the three settable statuses.
// The unset status is not a settable value.
func (s ResponseStatus) Valid() bool {
	return s == StatusGoing || s == StatusMaybe || s == StatusNotGoing
}

// Participant is one user's membership in an event. At most one Participant
// exists per (event, user) pair; the database enforces this.
type Participant struct {
	UserID string
	Role   ParticipantRole
	Status ResponseStatus
	Email  string
}

// Event is an event record. The organizer is always present in Participants
// with RoleOrganizer; the list is ordered by join time.
type Event struct {
	ID           string
	Title        string
	Description  string
	Date         time.Time
	Location     string
	OrganizerID  string
	Participants []Participant
	CreatedAt    time.Time
}

// Participant returns the participant entry for userID, if any.
func (e *Event) Participant(userID string) (*Participant, bool) {
	for i := range e.Participants {
		if e.Participants[i].UserID == userID {
			return &e.Participants[i], true
		}
	}
	return nil, false
}

// SearchFilter carries the optional search criteria. A zero field means
// "no constraint on that dimension". Role restricts results to events where
// the searching user holds that role.
type SearchFilter struct {
	Keyword   string
	StartDate *time.Time
	EndDate   *time.Time
	Role      ParticipantRole
}
