package events

import (
	"context"

	"github.com/dmitrijs2005/eventplanner/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, event *models.Event) error
	GetByID(ctx context.Context, id string) (*models.Event, error)
	ListByOrganizer(ctx context.Context, userID string) ([]*models.Event, error)
	ListByParticipant(ctx context.Context, userID string) ([]*models.Event, error)
	Delete(ctx context.Context, id string) error
	AddParticipant(ctx context.Context, eventID string, p *models.Participant) error
	UpdateParticipantStatus(ctx context.Context, eventID, userID string, status models.ResponseStatus) error
	Search(ctx context.Context, userID string, f *models.SearchFilter) ([]*models.Event, error)
}
