package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/danceapp/events-api/internal/api/middleware"
	"github.com/danceapp/events-api/internal/domain"
	"github.com/danceapp/events-api/internal/filter"
)

const testUserID = "user-1"

type envelope struct {
	Status  string            `json:"status"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Errors  map[string]string `json:"errors"`
}

// newRouter returns an engine whose requests are already authenticated as testUserID.
func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(ctx *gin.Context) {
		ctx.Set(middleware.UserIDKey, testUserID)
		ctx.Next()
	})
	return r
}

func serve(t *testing.T, r *gin.Engine, method, target string, body any) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "dance-app/1.0")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w.Code, env
}

type fakeEventService struct {
	event      domain.EventDetails
	events     []domain.Event
	booking    domain.BookingDetails
	err        error
	lastParams filter.EventParams
}

func (f *fakeEventService) GetEvent(_ context.Context, id string) (domain.EventDetails, error) {
	return f.event, f.err
}

func (f *fakeEventService) FilterEvents(_ context.Context, params filter.EventParams) ([]domain.Event, error) {
	f.lastParams = params
	return f.events, f.err
}

func (f *fakeEventService) GetBookingDetails(_ context.Context, eventID string) (domain.BookingDetails, error) {
	return f.booking, f.err
}

type fakeFavouriteService struct {
	favs        []domain.FavouriteEvent
	fav         domain.FavouriteEvent
	err         error
	lastUserID  string
	lastEventID string
	lastParams  filter.EventParams
}

func (f *fakeFavouriteService) ListFavourites(_ context.Context, userID string, params filter.EventParams) ([]domain.FavouriteEvent, error) {
	f.lastUserID, f.lastParams = userID, params
	return f.favs, f.err
}

func (f *fakeFavouriteService) AddFavourite(_ context.Context, userID, eventID string) (domain.FavouriteEvent, error) {
	f.lastUserID, f.lastEventID = userID, eventID
	return f.fav, f.err
}

func (f *fakeFavouriteService) RemoveFavourite(_ context.Context, id, userID string) error {
	f.lastUserID = userID
	return f.err
}

type fakeAuthService struct {
	user   domain.User
	err    error
	signed *domain.User
}

func (f *fakeAuthService) Signup(_ context.Context, user domain.User) (domain.User, error) {
	f.signed = &user
	if f.err != nil {
		return domain.User{}, f.err
	}
	user.UUID = "new-user"
	return user, nil
}

func (f *fakeAuthService) Login(_ context.Context, email, password string) (domain.User, error) {
	return f.user, f.err
}
