package handlers

import (
	"github.com/labstack/echo/v4"

	"minimalist-art-gallery/app/server/constants"
)

// RegisterRoutes binds every endpoint onto the echo instance, plus static
// serving of the upload directory.
func (a *App) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", a.HealthCheck)

	e.POST("/auth/register", a.AuthRegister)
	e.POST("/auth/login", a.AuthLogin)
	e.POST("/auth/logout", a.AuthLogout)
	e.GET("/auth/me", a.AuthMe)

	e.GET("/artworks", a.ArtworkList)
	e.POST("/artworks", a.ArtworkCreate)
	e.PUT("/artworks/:id", a.ArtworkUpdate)
	e.DELETE("/artworks/:id", a.ArtworkDelete)

	e.POST("/api/upload", a.Upload)
	e.Static(constants.UploadPublicPrefix, a.uploadDir)
}
