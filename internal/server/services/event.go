// EventService implements the event participation and authorization rules:
// who may invite, join, respond, and delete, and how participant state
// evolves. The repositories only store state; every rule lives here.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/eventplanner/internal/common"
	"github.com/dmitrijs2005/eventplanner/internal/dbx"
	"github.com/dmitrijs2005/eventplanner/internal/server/models"
	"github.com/dmitrijs2005/eventplanner/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

type EventService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewEventService(db *sql.DB, m repomanager.RepositoryManager) *EventService {
	return &EventService{db: db, repomanager: m}
}

// CreateEventParams carries the caller-supplied fields of a new event.
type CreateEventParams struct {
	Title       string
	Description string
	Date        time.Time
	Location    string
}

// Create stores a new event with userID as organizer. The organizer is
// always added to the participants list with the organizer role and no
// response status, in the same transaction as the event itself.
func (s *EventService) Create(ctx context.Context, userID string, params *CreateEventParams) (*models.Event, error) {
	if params.Title == "" {
		return nil, fmt.Errorf("%w: title is required", common.ErrorValidation)
	}
	if params.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", common.ErrorValidation)
	}

	event := &models.Event{
		ID:          uuid.NewString(),
		Title:       params.Title,
		Description: params.Description,
		Date:        params.Date,
		Location:    params.Location,
		OrganizerID: userID,
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Events(tx)
		if err := repo.Create(ctx, event); err != nil {
			return err
		}
		organizer := &models.Participant{UserID: userID, Role: models.RoleOrganizer}
		return repo.AddParticipant(ctx, event.ID, organizer)
	})
	if err != nil {
		return nil, fmt.Errorf("error creating event: %w", err)
	}

	return s.Get(ctx, event.ID)
}

// Get returns a single event by id. A syntactically invalid id is treated
// the same as an unknown one.
func (s *EventService) Get(ctx context.Context, eventID string) (*models.Event, error) {
	if err := validateEventID(eventID); err != nil {
		return nil, err
	}
	return s.repomanager.Events(s.db).GetByID(ctx, eventID)
}

// ListOrganized returns the events where userID is the organizer.
func (s *EventService) ListOrganized(ctx context.Context, userID string) ([]*models.Event, error) {
	return s.repomanager.Events(s.db).ListByOrganizer(ctx, userID)
}

// ListInvited returns the events where userID appears in the participants
// list, whatever the role.
func (s *EventService) ListInvited(ctx context.Context, userID string) ([]*models.Event, error) {
	return s.repomanager.Events(s.db).ListByParticipant(ctx, userID)
}

// Delete removes an event. Only the organizer may delete; everyone else
// gets a permission error and the event is left untouched.
func (s *EventService) Delete(ctx context.Context, eventID string, userID string) error {
	event, err := s.Get(ctx, eventID)
	if err != nil {
		return err
	}
	if event.OrganizerID != userID {
		return fmt.Errorf("%w: only the organizer can delete an event", common.ErrorPermissionDenied)
	}
	return s.repomanager.Events(s.db).Delete(ctx, eventID)
}

// Invite adds the user registered under email to the event as an attendee
// with no response status. Only the organizer may invite; unknown emails
// and duplicate invitations are validation errors.
func (s *EventService) Invite(ctx context.Context, eventID string, userID string, email string) (*models.Event, error) {
	event, err := s.Get(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.OrganizerID != userID {
		return nil, fmt.Errorf("%w: only organizers can invite users", common.ErrorPermissionDenied)
	}

	invitee, err := s.repomanager.Users(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, fmt.Errorf("%w: no user with email %s", common.ErrorValidation, email)
		}
		return nil, common.ErrorInternal
	}

	if _, ok := event.Participant(invitee.ID); ok {
		return nil, fmt.Errorf("%w: user already invited", common.ErrorValidation)
	}

	attendee := &models.Participant{UserID: invitee.ID, Role: models.RoleAttendee}
	if err := s.repomanager.Events(s.db).AddParticipant(ctx, eventID, attendee); err != nil {
		return nil, err
	}

	return s.Get(ctx, eventID)
}

// Join adds userID to the event as an attendee with no response status.
// Joining an event the user already participates in is a no-op that
// returns the event unchanged.
func (s *EventService) Join(ctx context.Context, eventID string, userID string) (*models.Event, error) {
	event, err := s.Get(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if _, ok := event.Participant(userID); ok {
		return event, nil
	}

	attendee := &models.Participant{UserID: userID, Role: models.RoleAttendee}
	if err := s.repomanager.Events(s.db).AddParticipant(ctx, eventID, attendee); err != nil {
		return nil, err
	}

	return s.Get(ctx, eventID)
}

// UpdateResponse replaces the caller's response status on the event.
// The role never changes and repeating the same status is harmless.
// Callers who are not participants get a not-found error.
func (s *EventService) UpdateResponse(ctx context.Context, eventID string, userID string, status models.ResponseStatus) (*models.Event, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: status must be one of %q, %q, %q",
			common.ErrorValidation, models.StatusGoing, models.StatusMaybe, models.StatusNotGoing)
	}
	if err := validateEventID(eventID); err != nil {
		return nil, err
	}

	if err := s.repomanager.Events(s.db).UpdateParticipantStatus(ctx, eventID, userID, status); err != nil {
		return nil, err
	}

	return s.Get(ctx, eventID)
}

// Search returns the events matching the filter, ordered by date.
func (s *EventService) Search(ctx context.Context, userID string, filter *models.SearchFilter) ([]*models.Event, error) {
	if filter.Role != "" && !filter.Role.Valid() {
		return nil, fmt.Errorf("%w: role must be %q or %q",
			common.ErrorValidation, models.RoleOrganizer, models.RoleAttendee)
	}
	return s.repomanager.Events(s.db).Search(ctx, userID, filter)
}

// validateEventID rejects ids that cannot be event identifiers, so malformed
// input surfaces as not-found instead of a database error.
func validateEventID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return common.ErrorNotFound
	}
	return nil
}
