package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	handlers "github.com/de-tools/wellness-atlas/pkg/handlers/report"
	wellnessmiddleware "github.com/de-tools/wellness-atlas/pkg/server/middleware"
	"github.com/de-tools/wellness-atlas/pkg/services/report"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

const defaultShutdownTimeout = 10 * time.Second

type WebAPI struct {
	logger          *zerolog.Logger
	server          *http.Server
	shutdownTimeout time.Duration
}

type Dependencies struct {
	Controller report.Controller
	Profiles   handlers.ProfileLister
	Location   *time.Location
	Logger     zerolog.Logger
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

func ConfigureRouter(config Config) http.Handler {
	deps := config.Dependencies
	reportHandler := handlers.NewHandler(deps.Controller, deps.Profiles, deps.Location)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(wellnessmiddleware.Logger(&deps.Logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/profiles", reportHandler.ListProfiles)
		r.Route("/users/{user}", func(r chi.Router) {
			r.Get("/statistics", reportHandler.GetStatistics)
			r.Get("/report", reportHandler.GetReport)
			r.Get("/report.html", reportHandler.GetReportHTML)
			r.Get("/export.csv", reportHandler.GetExportCSV)
			r.Get("/summary.txt", reportHandler.GetSummary)
		})
	})

	return router
}

func NewWebAPI(config Config) *WebAPI {
	timeout := config.ShutdownTimeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}
	logger := config.Dependencies.Logger
	return &WebAPI{
		logger:          &logger,
		shutdownTimeout: timeout,
		server: &http.Server{
			Addr:              config.Addr,
			Handler:           ConfigureRouter(config),
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		ctx, cancel := context.WithTimeout(context.Background(), w.shutdownTimeout)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}
		return err
	}
}
