package main

import (
	"fmt"
	"log"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"minimalist-art-gallery/app/server/constants"
	"minimalist-art-gallery/app/server/handlers"
	"minimalist-art-gallery/app/server/inits"
	"minimalist-art-gallery/app/server/sessions"
	"minimalist-art-gallery/app/server/storage"
)

func main() {
	// load configuration
	cfg, err := inits.Config()
	if err != nil {
		log.Fatal(fmt.Errorf("error loading config: %w", err))
	}

	// set up logging
	l, err := inits.Logger(!cfg.System.IsProd)
	if err != nil {
		log.Fatal(fmt.Errorf("error initializing logger: %w", err))
	}

	l.Debug("logger initialized")

	// database connection
	db, err := inits.DB(cfg.System.DBConnectionString)
	if err != nil {
		l.Fatal("error initializing DB connection", zap.Error(err))
	}

	// session store: Redis when configured, process memory otherwise
	var sessionStore sessions.Store
	if cfg.System.RedisConnectionString != "" {
		rdb, err := inits.Redis(cfg.System.RedisConnectionString)
		if err != nil {
			l.Fatal("error initializing Redis connection", zap.Error(err))
		}
		sessionStore = sessions.NewRedisStore(rdb)
	} else {
		l.Warn("REDIS_CONN not set, sessions will not survive a restart")
		sessionStore = sessions.NewMemoryStore(constants.SessionSweepInterval)
	}
	sessionManager := sessions.NewManager(sessionStore, constants.SessionTTL, cfg.System.IsProd)

	// upload directory must exist before the first request
	if err := os.MkdirAll(cfg.System.UploadDir, 0o755); err != nil {
		l.Fatal("error creating upload directory", zap.Error(err))
	}

	// prepare the handler app
	handlerApp := handlers.NewApp(l, storage.NewGormStorage(db), sessionManager, cfg.System.UploadDir)

	// prepare the echo server
	e := echo.New()
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			l.Info("request",
				zap.String("URI", v.URI),
				zap.Int("status", v.Status),
			)

			return nil
		},
	}))
	e.Use(middleware.Recover())

	// bind routes
	handlerApp.RegisterRoutes(e)

	// serve
	if err := e.Start(cfg.System.Listen); err != nil {
		l.Fatal("shutting down the server", zap.Error(err))
	}
}
