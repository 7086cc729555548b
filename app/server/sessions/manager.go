package sessions

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"minimalist-art-gallery/app/server/constants"
)

// Manager issues, resolves and destroys the session cookie against a Store.
type Manager struct {
	store  Store
	ttl    time.Duration
	secure bool
}

func NewManager(store Store, ttl time.Duration, secure bool) *Manager {
	return &Manager{
		store:  store,
		ttl:    ttl,
		secure: secure,
	}
}

// Issue binds a fresh opaque session id to the user and sets the cookie.
func (m *Manager) Issue(c echo.Context, userID uint) error {
	sid := uuid.NewString()
	if err := m.store.Set(c.Request().Context(), sid, userID, m.ttl); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	c.SetCookie(m.newCookie(sid, int(m.ttl.Seconds())))
	return nil
}

// UserID resolves the request's session cookie to a user id. Returns
// ErrNoSession when there is no cookie or the session is unknown/expired.
func (m *Manager) UserID(c echo.Context) (uint, error) {
	cookie, err := c.Cookie(constants.SessionCookieName)
	if err != nil {
		// only http.ErrNoCookie is possible here
		return 0, ErrNoSession
	}

	return m.store.Get(c.Request().Context(), cookie.Value)
}

// Destroy drops the server-side session, if any, and expires the cookie.
func (m *Manager) Destroy(c echo.Context) error {
	cookie, err := c.Cookie(constants.SessionCookieName)
	if err != nil {
		return nil
	}

	if err := m.store.Delete(c.Request().Context(), cookie.Value); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	c.SetCookie(m.newCookie("", -1))
	return nil
}

func (m *Manager) newCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   maxAge,
	}
}
