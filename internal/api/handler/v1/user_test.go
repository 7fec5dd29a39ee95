package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danceapp/events-api/internal/domain"
	"github.com/danceapp/events-api/internal/service"
)

type fakeUserService struct {
	user     domain.User
	err      error
	upd      domain.UserUpdate
	token    string
	uploaded []byte
}

func (f *fakeUserService) GetUser(_ context.Context, id string) (domain.User, error) {
	return f.user, f.err
}

func (f *fakeUserService) UpdateProfile(_ context.Context, id string, upd domain.UserUpdate) (domain.User, error) {
	f.upd = upd
	return f.user, f.err
}

func (f *fakeUserService) UpdateFCMToken(_ context.Context, id, token string) error {
	f.token = token
	return f.err
}

func (f *fakeUserService) UploadProfilePicture(_ context.Context, id, filename string, data io.Reader) (domain.User, error) {
	if f.err != nil {
		return domain.User{}, f.err
	}
	b, err := io.ReadAll(data)
	if err != nil {
		return domain.User{}, err
	}
	f.uploaded = b
	return f.user, nil
}

func newUserRouter(svc *fakeUserService) *gin.Engine {
	h := NewUserHandler(svc, 1<<20)
	r := newRouter()
	r.GET("/user/me", h.HandleGetMe)
	r.PATCH("/user/update", h.HandleUpdateMe)
	r.PATCH("/user/fcm-token", h.HandleUpdateFCMToken)
	r.POST("/user/profile-picture", h.HandleUploadProfilePicture)
	return r
}

func TestHandleGetMe(t *testing.T) {
	t.Run("deleted user", func(t *testing.T) {
		code, _ := serve(t, newUserRouter(&fakeUserService{err: service.ErrUserNotFound}), http.MethodGet, "/user/me", nil)
		assert.Equal(t, http.StatusUnauthorized, code)
	})

	t.Run("found", func(t *testing.T) {
		svc := &fakeUserService{user: domain.User{UUID: testUserID, Email: "a@b.co", FCMToken: "secret"}}
		code, env := serve(t, newUserRouter(svc), http.MethodGet, "/user/me", nil)
		require.Equal(t, http.StatusOK, code)

		var data map[string]any
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, "a@b.co", data["email"])
		assert.NotContains(t, data, "fcm_token")
	})
}

func TestHandleUpdateMe(t *testing.T) {
	t.Run("empty update", func(t *testing.T) {
		code, _ := serve(t, newUserRouter(&fakeUserService{}), http.MethodPatch, "/user/update", map[string]string{})
		assert.Equal(t, http.StatusBadRequest, code)
	})

	t.Run("partial update", func(t *testing.T) {
		svc := &fakeUserService{}
		code, env := serve(t, newUserRouter(svc), http.MethodPatch, "/user/update", map[string]string{"first_name": "Lia"})
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, "Profile Updated Successfully", env.Message)
		require.NotNil(t, svc.upd.FirstName)
		assert.Equal(t, "Lia", *svc.upd.FirstName)
		assert.Nil(t, svc.upd.Password)
	})
}

func TestHandleUpdateFCMToken(t *testing.T) {
	code, env := serve(t, newUserRouter(&fakeUserService{}), http.MethodPatch, "/user/fcm-token", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, env.Errors, "fcm_token")

	svc := &fakeUserService{}
	code, _ = serve(t, newUserRouter(svc), http.MethodPatch, "/user/fcm-token", map[string]string{"fcm_token": "tok"})
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "tok", svc.token)
}

func TestHandleUploadProfilePicture(t *testing.T) {
	upload := func(t *testing.T, svc *fakeUserService, field string) (int, envelope) {
		t.Helper()

		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		part, err := mw.CreateFormFile(field, "me.png")
		require.NoError(t, err)
		_, err = part.Write([]byte("png-bytes"))
		require.NoError(t, err)
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, "/user/profile-picture", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		w := httptest.NewRecorder()
		newUserRouter(svc).ServeHTTP(w, req)

		var env envelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		return w.Code, env
	}

	t.Run("missing file", func(t *testing.T) {
		code, env := upload(t, &fakeUserService{}, "photo")
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Contains(t, env.Errors, "image")
	})

	t.Run("rejected type", func(t *testing.T) {
		code, env := upload(t, &fakeUserService{err: service.ErrInvalidImageType}, "image")
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Contains(t, env.Errors, "image")
	})

	t.Run("stored", func(t *testing.T) {
		svc := &fakeUserService{user: domain.User{UUID: testUserID, ProfileURL: "/static/profiles/x.png"}}
		code, env := upload(t, svc, "image")
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, []byte("png-bytes"), svc.uploaded)

		var data map[string]any
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, "/static/profiles/x.png", data["profile_url"])
	})
}
