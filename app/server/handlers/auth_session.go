package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"minimalist-art-gallery/app/server/models"
	"minimalist-art-gallery/app/server/sessions"
)

// currentUser resolves the request's session cookie to its user row.
func (a *App) currentUser(c echo.Context) (*models.User, error, int) {
	userID, err := a.sessions.UserID(c)
	if err != nil {
		if errors.Is(err, sessions.ErrNoSession) {
			return nil, fmt.Errorf("no active session"), http.StatusUnauthorized
		}
		return nil, fmt.Errorf("resolve session: %w", err), http.StatusInternalServerError
	}

	user, err := a.store.GetUser(c.Request().Context(), userID)
	if err != nil {
		return nil, fmt.Errorf("load session user: %w", err), http.StatusInternalServerError
	}
	if user == nil {
		// the session outlived its user row
		return nil, fmt.Errorf("session user %d not found", userID), http.StatusUnauthorized
	}

	return user, nil, http.StatusOK
}

// authAdmin requires an authenticated admin. Missing session and missing
// admin role both resolve to 401, on purpose: the two cases are not
// distinguished towards the client.
func (a *App) authAdmin(c echo.Context) (*models.User, error, int) {
	user, err, statusCode := a.currentUser(c)
	if err != nil {
		return nil, err, statusCode
	}

	if !user.IsAdmin {
		return nil, fmt.Errorf("requires admin role"), http.StatusUnauthorized
	}

	return user, nil, http.StatusOK
}
