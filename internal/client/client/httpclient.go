package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/eventplanner/internal/client/models"
	"github.com/dmitrijs2005/eventplanner/internal/client/session"
	"github.com/dmitrijs2005/eventplanner/internal/common"
)

type HTTPClient struct {
	baseURL string
	http    *http.Client
	session *session.Session
}

func NewHTTPClient(baseURL string, timeout time.Duration, s *session.Session) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		session: s,
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type detailResponse struct {
	Detail string `json:"detail"`
}

type eventResponse struct {
	Event   models.Event `json:"event"`
	Message string       `json:"message"`
}

type eventsResponse struct {
	Events []models.Event `json:"events"`
}

// do performs a single request. Authenticated calls fail locally with
// ErrorAuthMissing before anything goes on the wire when no token is held.
func (c *HTTPClient) do(ctx context.Context, method string, path string, body any, authed bool, out any) error {

	if authed && !c.session.Authenticated() {
		return common.ErrorAuthMissing
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+c.session.Token())
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrorTransport, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrorTransport, err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			return nil
		}
		return json.Unmarshal(data, out)
	}

	return c.mapError(resp.StatusCode, data)
}

// mapError translates an error response into a sentinel error. Validation
// errors keep the server-provided detail so the UI can show it.
func (c *HTTPClient) mapError(statusCode int, body []byte) error {
	switch {
	case statusCode == http.StatusUnauthorized:
		return common.ErrorUnauthorized
	case statusCode == http.StatusForbidden:
		return common.ErrorPermissionDenied
	case statusCode == http.StatusNotFound:
		return common.ErrorNotFound
	case statusCode >= 400 && statusCode < 500:
		var d detailResponse
		if err := json.Unmarshal(body, &d); err == nil && d.Detail != "" {
			return fmt.Errorf("%w: %s", common.ErrorValidation, d.Detail)
		}
		return common.ErrorValidation
	default:
		return fmt.Errorf("unexpected status %d", statusCode)
	}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c *HTTPClient) authenticate(ctx context.Context, path string, email string, password string) error {
	var resp tokenResponse
	if err := c.do(ctx, http.MethodPost, path, credentialsRequest{Email: email, Password: password}, false, &resp); err != nil {
		return err
	}
	c.session.SetToken(resp.AccessToken)
	return nil
}

func (c *HTTPClient) Signup(ctx context.Context, email string, password string) error {
	return c.authenticate(ctx, "/api/auth/signup", email, password)
}

func (c *HTTPClient) Login(ctx context.Context, email string, password string) error {
	return c.authenticate(ctx, "/api/auth/login", email, password)
}

type createEventRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Location    string `json:"location"`
}

func (c *HTTPClient) CreateEvent(ctx context.Context, params *CreateEventParams) (*models.Event, error) {
	req := createEventRequest{
		Title:       params.Title,
		Description: params.Description,
		Date:        params.Date.Format(time.RFC3339),
		Location:    params.Location,
	}

	var resp eventResponse
	if err := c.do(ctx, http.MethodPost, "/api/events/", req, true, &resp); err != nil {
		return nil, err
	}
	return &resp.Event, nil
}

func (c *HTTPClient) Organized(ctx context.Context) ([]models.Event, error) {
	var resp eventsResponse
	if err := c.do(ctx, http.MethodGet, "/api/events/organized", nil, true, &resp); err != nil {
		return nil, err
	}
	return resp.Events, nil
}

func (c *HTTPClient) Invited(ctx context.Context) ([]models.Event, error) {
	var resp eventsResponse
	if err := c.do(ctx, http.MethodGet, "/api/events/invited", nil, true, &resp); err != nil {
		return nil, err
	}
	return resp.Events, nil
}

func (c *HTTPClient) GetEvent(ctx context.Context, eventID string) (*models.Event, error) {
	var resp eventResponse
	if err := c.do(ctx, http.MethodGet, "/api/events/"+eventID, nil, true, &resp); err != nil {
		return nil, err
	}
	return &resp.Event, nil
}

func (c *HTTPClient) DeleteEvent(ctx context.Context, eventID string) error {
	return c.do(ctx, http.MethodDelete, "/api/events/"+eventID, nil, true, nil)
}

type inviteRequest struct {
	Email string `json:"email"`
}

func (c *HTTPClient) Invite(ctx context.Context, eventID string, email string) (*models.Event, error) {
	var resp eventResponse
	if err := c.do(ctx, http.MethodPost, "/api/events/"+eventID+"/invite", inviteRequest{Email: email}, true, &resp); err != nil {
		return nil, err
	}
	return &resp.Event, nil
}

func (c *HTTPClient) Join(ctx context.Context, eventID string) (*models.Event, error) {
	var resp eventResponse
	if err := c.do(ctx, http.MethodPost, "/api/events/"+eventID+"/join", struct{}{}, true, &resp); err != nil {
		return nil, err
	}
	return &resp.Event, nil
}

type respondRequest struct {
	Status string `json:"status"`
}

func (c *HTTPClient) Respond(ctx context.Context, eventID string, status string) (*models.Event, error) {
	var resp eventResponse
	if err := c.do(ctx, http.MethodPut, "/api/events/"+eventID+"/response", respondRequest{Status: status}, true, &resp); err != nil {
		return nil, err
	}
	return &resp.Event, nil
}

type searchRequest struct {
	Keyword   string `json:"keyword,omitempty"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
	Role      string `json:"role,omitempty"`
}

func (c *HTTPClient) Search(ctx context.Context, filter *SearchFilter) ([]models.Event, error) {
	req := searchRequest{Keyword: filter.Keyword, Role: filter.Role}
	if filter.StartDate != nil {
		req.StartDate = filter.StartDate.Format(time.RFC3339)
	}
	if filter.EndDate != nil {
		req.EndDate = filter.EndDate.Format(time.RFC3339)
	}

	var resp eventsResponse
	if err := c.do(ctx, http.MethodPost, "/api/events/search", req, true, &resp); err != nil {
		return nil, err
	}
	return resp.Events, nil
}
