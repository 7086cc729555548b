package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"minimalist-art-gallery/app/server/types"
)

func (a *App) er(c echo.Context, statusCode int) error {
	return a.erMsg(c, statusCode, http.StatusText(statusCode))
}

func (a *App) erMsg(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, &types.ErrorMessage{
		Message: message,
	})
}
