package rest

import (
	"context"
	"net/http"
	"property-showcase/internal/core/port"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type ServerConfig struct {
	Port           string
	AllowedOrigins []string
}

type Server struct {
	httpServer *http.Server
	logger     port.LoggerPort
}

func NewServer(cfg ServerConfig,
	sessionHandlers *SessionHandler,
	propertyHandlers *PropertyHandler,
	filterHandlers *FilterHandler,
	contactHandlers *ContactHandler,
	baseLogger port.LoggerPort) *Server {

	r := chi.NewRouter()

	r.Use(
		LoggerMiddleware(baseLogger),
		middleware.Recoverer,
		cors.Handler(cors.Options{
			AllowedOrigins: cfg.AllowedOrigins,
			AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", traceHeader},
			ExposedHeaders: []string{traceHeader},
			MaxAge:         300,
		}),
	)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/filters/options", filterHandlers.GetFilterOptions)

		r.Post("/sessions", sessionHandlers.OpenSession)
		r.Route("/sessions/{sessionID}", func(r chi.Router) {
			r.Delete("/", sessionHandlers.CloseSession)

			// экран списка
			r.Get("/properties", propertyHandlers.ListFiltered)
			r.Get("/properties/all", propertyHandlers.ListAll)

			// экран фильтров
			r.Get("/filters", filterHandlers.GetFilters)
			r.Patch("/filters", filterHandlers.PatchFilters)
			r.Delete("/filters", filterHandlers.ResetFilters)
			r.Post("/filters/types/{type}", filterHandlers.ToggleType)

			// детальный экран
			r.Get("/selection", propertyHandlers.Current)
			r.Put("/selection/{propertyID}", propertyHandlers.Select)
			r.Delete("/selection", propertyHandlers.ClearSelection)

			r.Post("/contact/open", contactHandlers.Open)
			r.Post("/contact", contactHandlers.Submit)
			r.Delete("/contact", contactHandlers.Cancel)
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: baseLogger,
	}
}

// Handler отдает роутер, например для httptest
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) Start() error {
	s.logger.Info("Starting REST server", port.Fields{"address": s.httpServer.Addr})
	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST server...", nil)
	return s.httpServer.Shutdown(ctx)
}
