package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"minimalist-art-gallery/app/server/models"
	"minimalist-art-gallery/app/server/storage"
	"minimalist-art-gallery/app/server/types"
)

// ArtworkList is public.
func (a *App) ArtworkList(c echo.Context) error {
	artworks, err := a.store.GetArtworks(c.Request().Context())
	if err != nil {
		a.l.Error("failed to list artworks", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, artworks)
}

func (a *App) ArtworkCreate(c echo.Context) error {
	// authenticate first: mutations are 401 regardless of body validity
	if _, err, statusCode := a.authAdmin(c); err != nil {
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()

	// bind request body
	var req types.ArtworkCreate
	if err := c.Bind(&req); err != nil {
		return a.erMsg(c, http.StatusBadRequest, "Invalid input")
	}
	if req.Title == "" || req.Artist == "" || req.Price == nil || req.ImageURL == "" {
		return a.erMsg(c, http.StatusBadRequest, "Invalid input")
	}

	artwork := models.Artwork{
		Title:       req.Title,
		Artist:      req.Artist,
		Price:       *req.Price,
		ImageURL:    req.ImageURL,
		Description: req.Description,
		Year:        req.Year,
		Medium:      req.Medium,
	}
	if err := a.store.CreateArtwork(rctx, &artwork); err != nil {
		a.l.Error("failed to create artwork", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusCreated, &artwork)
}

func (a *App) ArtworkUpdate(c echo.Context) error {
	if _, err, statusCode := a.authAdmin(c); err != nil {
		return a.er(c, statusCode)
	}

	id, err := parseID(c.Param("id"))
	if err != nil {
		return a.erMsg(c, http.StatusBadRequest, "Invalid input")
	}

	// bind request body; any subset of fields is acceptable
	var req types.ArtworkUpdate
	if err := c.Bind(&req); err != nil {
		return a.erMsg(c, http.StatusBadRequest, "Invalid input")
	}

	artwork, err := a.store.UpdateArtwork(c.Request().Context(), id, &req)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return a.erMsg(c, http.StatusNotFound, "Artwork not found")
		}
		a.l.Error("failed to update artwork", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, artwork)
}

func (a *App) ArtworkDelete(c echo.Context) error {
	if _, err, statusCode := a.authAdmin(c); err != nil {
		return a.er(c, statusCode)
	}

	id, err := parseID(c.Param("id"))
	if err != nil {
		return a.erMsg(c, http.StatusBadRequest, "Invalid input")
	}

	if err := a.store.DeleteArtwork(c.Request().Context(), id); err != nil {
		a.l.Error("failed to delete artwork", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.NoContent(http.StatusNoContent)
}
