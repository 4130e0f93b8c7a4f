package cli

import (
	"bufio"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/eventplanner/internal/client/client"
	"github.com/dmitrijs2005/eventplanner/internal/client/config"
	"github.com/dmitrijs2005/eventplanner/internal/client/models"
	"github.com/dmitrijs2005/eventplanner/internal/client/session"
	"github.com/dmitrijs2005/eventplanner/internal/common"
	"github.com/dmitrijs2005/eventplanner/internal/server/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testToken(t *testing.T, userID string) string {
	t.Helper()
	token, err := auth.GenerateToken(userID, []byte("secret"), time.Hour)
	require.NoError(t, err)
	return token
}

type fakeClient struct {
	event  *models.Event
	events []models.Event
	err    error

	signupEmail  string
	loginEmail   string
	gotEventID   string
	gotEmail     string
	gotStatus    string
	gotParams    *client.CreateEventParams
	gotFilter    *client.SearchFilter
	deletedID    string
	tokenOnLogin string
	session      *session.Session
}

func (f *fakeClient) Signup(ctx context.Context, email, password string) error {
	f.signupEmail = email
	if f.err == nil && f.session != nil {
		f.session.SetToken(f.tokenOnLogin)
	}
	return f.err
}

func (f *fakeClient) Login(ctx context.Context, email, password string) error {
	f.loginEmail = email
	if f.err == nil && f.session != nil {
		f.session.SetToken(f.tokenOnLogin)
	}
	return f.err
}

func (f *fakeClient) CreateEvent(ctx context.Context, params *client.CreateEventParams) (*models.Event, error) {
	f.gotParams = params
	return f.event, f.err
}

func (f *fakeClient) Organized(ctx context.Context) ([]models.Event, error) { return f.events, f.err }
func (f *fakeClient) Invited(ctx context.Context) ([]models.Event, error)  { return f.events, f.err }

func (f *fakeClient) GetEvent(ctx context.Context, eventID string) (*models.Event, error) {
	f.gotEventID = eventID
	return f.event, f.err
}

func (f *fakeClient) DeleteEvent(ctx context.Context, eventID string) error {
	f.deletedID = eventID
	return f.err
}

func (f *fakeClient) Invite(ctx context.Context, eventID, email string) (*models.Event, error) {
	f.gotEventID = eventID
	f.gotEmail = email
	return f.event, f.err
}

func (f *fakeClient) Join(ctx context.Context, eventID string) (*models.Event, error) {
	f.gotEventID = eventID
	return f.event, f.err
}

func (f *fakeClient) Respond(ctx context.Context, eventID, status string) (*models.Event, error) {
	f.gotEventID = eventID
	f.gotStatus = status
	return f.event, f.err
}

func (f *fakeClient) Search(ctx context.Context, filter *client.SearchFilter) ([]models.Event, error) {
	f.gotFilter = filter
	return f.events, f.err
}

func newTestApp(t *testing.T, fc *fakeClient) *App {
	t.Helper()
	s := session.New()
	fc.session = s
	cfg := &config.Config{}
	cfg.LoadDefaults()
	return &App{config: cfg, client: fc, session: s, reader: bufio.NewReader(strings.NewReader(""))}
}

// stubInputs replaces the prompt seams so each call pops the next answer.
func stubInputs(t *testing.T, answers ...string) {
	t.Helper()
	origText, origPassword := getSimpleText, getPassword
	t.Cleanup(func() { getSimpleText, getPassword = origText, origPassword })

	i := 0
	next := func() string {
		if i >= len(answers) {
			return ""
		}
		v := answers[i]
		i++
		return v
	}
	getSimpleText = func(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
		return next(), nil
	}
	getPassword = func(w io.Writer) (string, error) {
		return next(), nil
	}
}

func sampleEvent() *models.Event {
	return &models.Event{
		ID:          "e1",
		Title:       "Standup",
		Date:        time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
		OrganizerID: "org-1",
		Participants: []models.Participant{
			{UserID: "org-1", Role: models.RoleOrganizer},
		},
	}
}

func TestRegisterAndLogout(t *testing.T) {
	token := testToken(t, "u1")
	fc := &fakeClient{tokenOnLogin: token}
	app := newTestApp(t, fc)
	stubInputs(t, "a@b.com", "pw")

	require.NoError(t, app.Register(context.Background()))
	assert.Equal(t, "a@b.com", fc.signupEmail)
	assert.True(t, app.isLoggedIn())

	require.NoError(t, app.Logout(context.Background()))
	assert.False(t, app.isLoggedIn())
}

func TestLogin_Failure(t *testing.T) {
	fc := &fakeClient{err: common.ErrorUnauthorized}
	app := newTestApp(t, fc)
	stubInputs(t, "a@b.com", "bad")

	err := app.Login(context.Background())
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
	assert.False(t, app.isLoggedIn())
}

func TestCreate(t *testing.T) {
	fc := &fakeClient{event: sampleEvent()}
	app := newTestApp(t, fc)
	stubInputs(t, "Standup", "daily", "2025-06-01 09:00", "Room 1")

	require.NoError(t, app.Create(context.Background()))
	require.NotNil(t, fc.gotParams)
	assert.Equal(t, "Standup", fc.gotParams.Title)
	assert.Equal(t, time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC), fc.gotParams.Date)
}

func TestCreate_BadDate(t *testing.T) {
	fc := &fakeClient{}
	app := newTestApp(t, fc)
	stubInputs(t, "Standup", "daily", "tomorrowish", "Room 1")

	err := app.Create(context.Background())
	assert.Error(t, err)
	assert.Nil(t, fc.gotParams, "nothing must be sent when the date does not parse")
}

func TestRespond(t *testing.T) {
	fc := &fakeClient{event: sampleEvent()}
	app := newTestApp(t, fc)
	stubInputs(t, "Going")

	require.NoError(t, app.Respond(context.Background(), "e1"))
	assert.Equal(t, "e1", fc.gotEventID)
	assert.Equal(t, "Going", fc.gotStatus)
}

func TestDelete(t *testing.T) {
	fc := &fakeClient{}
	app := newTestApp(t, fc)

	require.NoError(t, app.Delete(context.Background(), "e1"))
	assert.Equal(t, "e1", fc.deletedID)
}

func TestAuthRejection_ClearsSession(t *testing.T) {
	fc := &fakeClient{err: common.ErrorUnauthorized}
	app := newTestApp(t, fc)
	app.session.SetToken(testToken(t, "u1"))
	require.True(t, app.isLoggedIn())

	err := app.Organized(context.Background())
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
	assert.False(t, app.isLoggedIn(), "an auth-rejected call must drop the stored token")
}

func TestSearch_BuildsFilter(t *testing.T) {
	fc := &fakeClient{events: []models.Event{}}
	app := newTestApp(t, fc)
	stubInputs(t, "standup", "2025-06-01", "", "organizer")

	require.NoError(t, app.Search(context.Background()))
	require.NotNil(t, fc.gotFilter)
	assert.Equal(t, "standup", fc.gotFilter.Keyword)
	assert.Equal(t, "organizer", fc.gotFilter.Role)
	require.NotNil(t, fc.gotFilter.StartDate)
	assert.Nil(t, fc.gotFilter.EndDate)
}
