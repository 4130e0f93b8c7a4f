// Package client implements the HTTP client of the event planner API. It
// attaches the session's bearer token, performs single-shot requests (no
// retries) and maps responses onto the shared sentinel errors.
package client

import (
	"context"
	"time"

	"github.com/dmitrijs2005/eventplanner/internal/client/models"
)

// CreateEventParams carries the fields of a new event.
type CreateEventParams struct {
	Title       string
	Description string
	Date        time.Time
	Location    string
}

// SearchFilter carries the optional search criteria. A zero field means no
// constraint on that dimension.
type SearchFilter struct {
	Keyword   string
	StartDate *time.Time
	EndDate   *time.Time
	Role      string
}

type Client interface {
	Signup(ctx context.Context, email string, password string) error
	Login(ctx context.Context, email string, password string) error
	CreateEvent(ctx context.Context, params *CreateEventParams) (*models.Event, error)
	Organized(ctx context.Context) ([]models.Event, error)
	Invited(ctx context.Context) ([]models.Event, error)
	GetEvent(ctx context.Context, eventID string) (*models.Event, error)
	DeleteEvent(ctx context.Context, eventID string) error
	Invite(ctx context.Context, eventID string, email string) (*models.Event, error)
	Join(ctx context.Context, eventID string) (*models.Event, error)
	Respond(ctx context.Context, eventID string, status string) (*models.Event, error)
	Search(ctx context.Context, filter *SearchFilter) ([]models.Event, error)
}
