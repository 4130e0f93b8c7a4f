package events

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/eventplanner/internal/common"
	"github.com/dmitrijs2005/eventplanner/internal/dbx"
	"github.com/dmitrijs2005/eventplanner/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const eventColumns = `id, title, description, date, location, organizer_id, created_at`

func (r *PostgresRepository) Create(ctx context.Context, event *models.Event) error {

	query :=
		`INSERT INTO events (id, title, description, date, location, organizer_id)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		event.ID, event.Title, event.Description, event.Date, event.Location, event.OrganizerID).
		Scan(&event.CreatedAt)

	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	event := &models.Event{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&event.ID, &event.Title, &event.Description, &event.Date,
		&event.Location, &event.OrganizerID, &event.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	if err := r.loadParticipants(ctx, event); err != nil {
		return nil, err
	}

	return event, nil
}

func (r *PostgresRepository) ListByOrganizer(ctx context.Context, userID string) ([]*models.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events
		 WHERE organizer_id = $1
		 ORDER BY date`

	return r.queryEvents(ctx, query, userID)
}

func (r *PostgresRepository) ListByParticipant(ctx context.Context, userID string) ([]*models.Event, error) {
	query := `SELECT e.id, e.title, e.description, e.date, e.location, e.organizer_id, e.created_at
		 FROM events e
		 JOIN event_participants p ON p.event_id = e.id
		 WHERE p.user_id = $1
		 ORDER BY e.date`

	return r.queryEvents(ctx, query, userID)
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}

	return nil
}

func (r *PostgresRepository) AddParticipant(ctx context.Context, eventID string, p *models.Participant) error {
	query :=
		`INSERT INTO event_participants (event_id, user_id, role, status)
		 VALUES ($1, $2, $3, NULLIF($4, ''))
		 `

	_, err := r.db.ExecContext(ctx, query, eventID, p.UserID, string(p.Role), string(p.Status))
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) UpdateParticipantStatus(ctx context.Context, eventID, userID string, status models.ResponseStatus) error {
	query :=
		`UPDATE event_participants SET status = $3
		 WHERE event_id = $1 AND user_id = $2
		 `

	res, err := r.db.ExecContext(ctx, query, eventID, userID, string(status))
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}

	return nil
}

// Search builds the filter clause dynamically; absent criteria add no
// condition. The role filter matches the searching user's own role.
func (r *PostgresRepository) Search(ctx context.Context, userID string, f *models.SearchFilter) ([]*models.Event, error) {

	query := `SELECT ` + eventColumns + ` FROM events`
	cond := ""
	args := []any{}

	addCond := func(c string) {
		if cond == "" {
			cond = " WHERE " + c
		} else {
			cond += " AND " + c
		}
	}

	if f.Keyword != "" {
		args = append(args, "%"+f.Keyword+"%")
		n := len(args)
		addCond(fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d)", n, n))
	}
	if f.StartDate != nil {
		args = append(args, *f.StartDate)
		addCond(fmt.Sprintf("date >= $%d", len(args)))
	}
	if f.EndDate != nil {
		args = append(args, *f.EndDate)
		addCond(fmt.Sprintf("date <= $%d", len(args)))
	}
	if f.Role != "" {
		args = append(args, userID, string(f.Role))
		addCond(fmt.Sprintf(
			"EXISTS (SELECT 1 FROM event_participants p WHERE p.event_id = events.id AND p.user_id = $%d AND p.role = $%d)",
			len(args)-1, len(args)))
	}

	query += cond + " ORDER BY date"

	return r.queryEvents(ctx, query, args...)
}

func (r *PostgresRepository) queryEvents(ctx context.Context, query string, args ...any) ([]*models.Event, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	events := []*models.Event{}
	for rows.Next() {
		event := &models.Event{}
		if err := rows.Scan(
			&event.ID, &event.Title, &event.Description, &event.Date,
			&event.Location, &event.OrganizerID, &event.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	for _, event := range events {
		if err := r.loadParticipants(ctx, event); err != nil {
			return nil, err
		}
	}

	return events, nil
}

// loadParticipants fills event.Participants in join order, with each
// participant's email joined in from the users table.
func (r *PostgresRepository) loadParticipants(ctx context.Context, event *models.Event) error {
	query :=
		`SELECT p.user_id, p.role, COALESCE(p.status, ''), COALESCE(u.email, '')
		 FROM event_participants p
		 LEFT JOIN users u ON u.id = p.user_id
		 WHERE p.event_id = $1
		 ORDER BY p.joined_at
		 `

	rows, err := r.db.QueryContext(ctx, query, event.ID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	event.Participants = []models.Participant{}
	for rows.Next() {
		p := models.Participant{}
		if err := rows.Scan(&p.UserID, &p.Role, &p.Status, &p.Email); err != nil {
			return fmt.Errorf("db error: %w", err)
		}
		event.Participants = append(event.Participants, p)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
