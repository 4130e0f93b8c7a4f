// Package participation derives a user's relationship to an event from the
// event record alone. The facts drive the CLI's display and pre-flight
// checks; the server remains the authority and re-checks every mutation.
package participation

import "github.com/dmitrijs2005/eventplanner/internal/client/models"

// Facts describes what a given user can see and do on one event.
type Facts struct {
	IsOrganizer   bool
	IsParticipant bool
	CanJoin       bool
	Status        string
}

// Derive computes the facts for userID on event. Facts are recomputed from
// each server response, never carried over from a previous state.
func Derive(event *models.Event, userID string) Facts {
	f := Facts{
		IsOrganizer: event.OrganizerID == userID,
	}

	for _, p := range event.Participants {
		if p.UserID == userID {
			f.IsParticipant = true
			f.Status = p.Status
			break
		}
	}

	// The organizer can never join, even when the record omits their
	// participant entry.
	f.CanJoin = !f.IsParticipant && !f.IsOrganizer
	return f
}

// CanInvite reports whether userID may invite others. Organizer-only.
func CanInvite(event *models.Event, userID string) bool {
	return event.OrganizerID == userID
}

// CanDelete reports whether userID may delete the event. Organizer-only.
func CanDelete(event *models.Event, userID string) bool {
	return event.OrganizerID == userID
}
