package handlers

import (
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"minimalist-art-gallery/app/server/constants"
	"minimalist-art-gallery/app/server/types"
)

// Upload stores a single multipart file under a collision-resistant name and
// returns the public path it is served from.
func (a *App) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile(constants.UploadFieldName)
	if err != nil {
		return a.erMsg(c, http.StatusBadRequest, "No file uploaded")
	}

	src, err := fileHeader.Open()
	if err != nil {
		a.l.Error("failed to open uploaded file", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}
	defer src.Close()

	// TODO: enforce a content-type allowlist and a size cap before writing
	name := fmt.Sprintf("%d-%d%s", time.Now().UnixMilli(), rand.Int64N(1_000_000_000), filepath.Ext(fileHeader.Filename))

	dst, err := os.Create(filepath.Join(a.uploadDir, name))
	if err != nil {
		a.l.Error("failed to create upload file", zap.String("name", name), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		a.l.Error("failed to write upload file", zap.String("name", name), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, &types.UploadResponse{
		URL: constants.UploadPublicPrefix + "/" + name,
	})
}
