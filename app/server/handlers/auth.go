package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"minimalist-art-gallery/app/server/models"
	"minimalist-art-gallery/app/server/password"
	"minimalist-art-gallery/app/server/storage"
	"minimalist-art-gallery/app/server/types"
)

func (a *App) AuthRegister(c echo.Context) error {
	rctx := c.Request().Context()

	// bind request body
	var req types.Credentials
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind json body", zap.Error(err))
		return a.erMsg(c, http.StatusBadRequest, "Invalid input")
	}
	if req.Username == "" || req.Password == "" {
		return a.erMsg(c, http.StatusBadRequest, "Invalid input")
	}

	// duplicate usernames fail before anything is written
	existing, err := a.store.GetUserByUsername(rctx, req.Username)
	if err != nil {
		a.l.Error("failed to look up username", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}
	if existing != nil {
		return a.erMsg(c, http.StatusBadRequest, "Username already exists")
	}

	// hash password
	passwordHash, err := password.Hash(req.Password)
	if err != nil {
		a.l.Error("failed to hash password", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	// create user; registration never grants the admin role
	user := models.User{
		Username: req.Username,
		Password: passwordHash,
	}
	if err := a.store.CreateUser(rctx, &user); err != nil {
		if errors.Is(err, storage.ErrUsernameTaken) {
			// lost the race against a concurrent registration
			return a.erMsg(c, http.StatusBadRequest, "Username already exists")
		}
		a.l.Error("failed to create user", zap.String("username", req.Username), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	// establish the session
	if err := a.sessions.Issue(c, user.ID); err != nil {
		a.l.Error("failed to establish session", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusCreated, &user)
}

func (a *App) AuthLogin(c echo.Context) error {
	rctx := c.Request().Context()

	// bind request body
	var req types.Credentials
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind json body", zap.Error(err))
		return a.erMsg(c, http.StatusBadRequest, "Invalid input")
	}

	user, err := a.store.GetUserByUsername(rctx, req.Username)
	if err != nil {
		a.l.Error("failed to look up username", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	// same response for an unknown user and a wrong password
	if user == nil || !password.Verify(req.Password, user.Password) {
		return a.er(c, http.StatusUnauthorized)
	}

	// establish the session
	if err := a.sessions.Issue(c, user.ID); err != nil {
		a.l.Error("failed to establish session", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, user)
}

// AuthLogout ends the session unconditionally: requests without one still get
// a 200.
func (a *App) AuthLogout(c echo.Context) error {
	if err := a.sessions.Destroy(c); err != nil {
		a.l.Error("failed to destroy session", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.NoContent(http.StatusOK)
}

// AuthMe answers 401 with an empty body when anonymous; that is a signal, not
// an error.
func (a *App) AuthMe(c echo.Context) error {
	user, err, statusCode := a.currentUser(c)
	if err != nil {
		if statusCode == http.StatusInternalServerError {
			a.l.Error("failed to resolve current user", zap.Error(err))
		}
		return c.NoContent(statusCode)
	}

	return c.JSON(http.StatusOK, user)
}
