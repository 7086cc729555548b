package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"minimalist-art-gallery/app/server/constants"
	"minimalist-art-gallery/app/server/models"
	"minimalist-art-gallery/app/server/password"
	"minimalist-art-gallery/app/server/sessions"
	"minimalist-art-gallery/app/server/storage"
)

type testApp struct {
	app   *App
	e     *echo.Echo
	store storage.Storage
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Artwork{}))

	sessionStore := sessions.NewMemoryStore(time.Hour)
	t.Cleanup(sessionStore.Close)

	store := storage.NewGormStorage(db)
	app := NewApp(zap.NewNop(), store, sessions.NewManager(sessionStore, constants.SessionTTL, false), t.TempDir())

	e := echo.New()
	app.RegisterRoutes(e)

	return &testApp{app: app, e: e, store: store}
}

// createUser seeds a user row directly, bypassing the register endpoint.
func (ta *testApp) createUser(t *testing.T, username, plaintext string, isAdmin bool) *models.User {
	t.Helper()

	passwordHash, err := password.Hash(plaintext)
	require.NoError(t, err)

	user := models.User{Username: username, Password: passwordHash, IsAdmin: isAdmin}
	require.NoError(t, ta.store.CreateUser(context.Background(), &user))
	return &user
}

func (ta *testApp) request(t *testing.T, method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	ta.e.ServeHTTP(rec, req)
	return rec
}

// login authenticates through the endpoint and returns the session cookie.
func (ta *testApp) login(t *testing.T, username, plaintext string) *http.Cookie {
	t.Helper()

	rec := ta.request(t, http.MethodPost, "/auth/login", `{"username":"`+username+`","password":"`+plaintext+`"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	return sessionCookie(t, rec)
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()

	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == constants.SessionCookieName {
			return cookie
		}
	}
	t.Fatal("no session cookie in response")
	return nil
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	return decoded
}
