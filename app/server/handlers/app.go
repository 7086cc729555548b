package handlers

import (
	"go.uber.org/zap"

	"minimalist-art-gallery/app/server/sessions"
	"minimalist-art-gallery/app/server/storage"
)

type App struct {
	l         *zap.Logger       // logging
	store     storage.Storage   // persistence
	sessions  *sessions.Manager // cookie sessions
	uploadDir string            // where uploaded images land
}

func NewApp(l *zap.Logger, store storage.Storage, sessionManager *sessions.Manager, uploadDir string) *App {
	return &App{
		l:         l,
		store:     store,
		sessions:  sessionManager,
		uploadDir: uploadDir,
	}
}
