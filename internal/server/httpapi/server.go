// Package httpapi is the HTTP/JSON transport of the event planner. It
// translates requests into service calls and service errors into the
// {"detail": ...} error payloads the API contract promises.
package httpapi

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/eventplanner/internal/logging"
	"github.com/dmitrijs2005/eventplanner/internal/server/models"
	"github.com/dmitrijs2005/eventplanner/internal/server/services"
)

// UserService is the slice of the user service the transport needs.
type UserService interface {
	Signup(ctx context.Context, email string, password string) (string, error)
	Login(ctx context.Context, email string, password string) (string, error)
}

// EventService is the slice of the event service the transport needs.
type EventService interface {
	Create(ctx context.Context, userID string, params *services.CreateEventParams) (*models.Event, error)
	Get(ctx context.Context, eventID string) (*models.Event, error)
	ListOrganized(ctx context.Context, userID string) ([]*models.Event, error)
	ListInvited(ctx context.Context, userID string) ([]*models.Event, error)
	Delete(ctx context.Context, eventID string, userID string) error
	Invite(ctx context.Context, eventID string, userID string, email string) (*models.Event, error)
	Join(ctx context.Context, eventID string, userID string) (*models.Event, error)
	UpdateResponse(ctx context.Context, eventID string, userID string, status models.ResponseStatus) (*models.Event, error)
	Search(ctx context.Context, userID string, filter *models.SearchFilter) ([]*models.Event, error)
}

type HTTPServer struct {
	address   string
	logger    logging.Logger
	users     UserService
	events    EventService
	jwtSecret []byte
	db        *sql.DB
}

func NewHTTPServer(a string, l logging.Logger, us UserService, es EventService, secretKey string, db *sql.DB) *HTTPServer {
	return &HTTPServer{
		address:   a,
		logger:    l.With("module", "http_server"),
		users:     us,
		events:    es,
		jwtSecret: []byte(secretKey),
		db:        db,
	}
}

// Router wires all routes. Event routes sit behind the bearer-token
// middleware; auth and health routes do not.
func (s *HTTPServer) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", s.handleHealthz)
	mux.HandleFunc("GET /readyz", s.handleReadyz)

	mux.HandleFunc("POST /api/auth/signup", s.handleSignup)
	mux.HandleFunc("POST /api/auth/login", s.handleLogin)

	protected := func(h http.HandlerFunc) http.Handler {
		return s.withAuth(h)
	}

	mux.Handle("POST /api/events/{$}", protected(s.handleCreateEvent))
	mux.Handle("GET /api/events/organized", protected(s.handleOrganized))
	mux.Handle("GET /api/events/invited", protected(s.handleInvited))
	mux.Handle("POST /api/events/search", protected(s.handleSearch))
	mux.Handle("GET /api/events/{id}", protected(s.handleGetEvent))
	mux.Handle("DELETE /api/events/{id}", protected(s.handleDeleteEvent))
	mux.Handle("POST /api/events/{id}/invite", protected(s.handleInvite))
	mux.Handle("POST /api/events/{id}/join", protected(s.handleJoin))
	mux.Handle("PUT /api/events/{id}/response", protected(s.handleRespond))

	return s.withMetrics(mux)
}

// Run serves the API until ctx is cancelled, then shuts down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {

	srv := &http.Server{Addr: s.address, Handler: s.Router()}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
