package web

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"youtopia.dev/youtopia/cmd/web/handlers/api/ai_api"
	"youtopia.dev/youtopia/cmd/web/handlers/api/cron_api"
	"youtopia.dev/youtopia/cmd/web/handlers/api/library_api"
	"youtopia.dev/youtopia/cmd/web/handlers/api/notification_api"
	"youtopia.dev/youtopia/cmd/web/handlers/api/playlist_api"
	"youtopia.dev/youtopia/cmd/web/handlers/api/progress_api"
	"youtopia.dev/youtopia/cmd/web/handlers/api/video_api"
	"youtopia.dev/youtopia/internal/config"
	"youtopia.dev/youtopia/internal/db"
	"youtopia.dev/youtopia/internal/library"
	"youtopia.dev/youtopia/internal/transcript"
)

type Webserver struct {
	*echo.Echo
	dbc        *db.DatabaseConnection
	ingestor   *library.Ingestor
	syncer     *library.Syncer
	transcript *transcript.Client
	conf       config.Config
}

func NewWebserver(conf config.Config, dbc *db.DatabaseConnection, catalog library.Catalog) (*Webserver, error) {
	webserver := &Webserver{
		Echo:       echo.New(),
		dbc:        dbc,
		ingestor:   library.NewIngestor(dbc, catalog),
		syncer:     library.NewSyncer(dbc, catalog),
		transcript: transcript.NewClient(conf.AIServiceURL),
		conf:       conf,
	}

	webserver.registerRoutes()
	webserver.setupMiddleware()

	return webserver, nil
}

func (s *Webserver) setupMiddleware() {
	s.HideBanner = true
	s.HidePort = true
	s.Use(middleware.BodyLimit("2M"))
	s.Use(middleware.Recover())
	s.Use(middleware.RequestID())
	s.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
	}))
	s.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogMethod:    true,
		LogStatus:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  false,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"remote_ip", v.RemoteIP,
				"request_id", v.RequestID,
			}
			if v.Error != nil {
				fields = append(fields, "error", v.Error)
			}
			slog.Info("request", fields...)
			return nil
		},
	}))
}

func (s *Webserver) registerRoutes() {
	userID := s.conf.DefaultUserID

	apiGroup := s.Group("/api")

	apiGroup.POST("/add-url", library_api.HandleAddURL(s.ingestor))
	apiGroup.GET("/videos", library_api.HandleIndex(s.dbc, userID))
	apiGroup.POST("/library/batch-delete", library_api.HandleBatchDelete(s.dbc, userID))

	apiGroup.GET("/videos/:id", video_api.HandleGet(s.dbc))
	apiGroup.DELETE("/videos/:id", video_api.HandleDelete(s.dbc, userID))

	apiGroup.GET("/playlists/:id", playlist_api.HandleGet(s.dbc))
	apiGroup.DELETE("/playlists/:id", playlist_api.HandleDelete(s.dbc))

	apiGroup.GET("/progress/:videoId", progress_api.HandleGet(s.dbc, userID))
	apiGroup.POST("/progress", progress_api.HandleSave(s.dbc, userID))

	apiGroup.GET("/notifications", notification_api.HandleIndex(s.dbc, userID))

	apiGroup.POST("/cron/sync-playlists", cron_api.HandleSyncPlaylists(s.syncer, s.conf.CronSecret, userID))

	apiGroup.POST("/ai/transcript", ai_api.HandleTranscript(s.transcript))
}
