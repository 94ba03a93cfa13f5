package server

import (
	"context"
	"net/http"
	"time"

	"github.com/Heidric/contact-intake/internal/config"
	"github.com/Heidric/contact-intake/internal/logger"
	"github.com/Heidric/contact-intake/internal/model"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

var log zerolog.Logger

type FormValidator interface {
	ValidateContact(candidate map[string]any) (*model.ContactSubmission, error)
}

type Contact interface {
	Submit(ctx context.Context, sub *model.ContactSubmission) (*model.ContactReceipt, error)
}

type Server struct {
	srv          *http.Server
	validator    FormValidator
	contact      Contact
	maxBodyBytes int64
}

func NewServer(cfg *config.Config, validator FormValidator, contact Contact) *Server {
	log = *logger.Log
	log = log.With().Str("name", "http").Logger()

	r := chi.NewRouter()

	s := &Server{
		srv:          &http.Server{Addr: cfg.ServerAddress, Handler: r},
		validator:    validator,
		contact:      contact,
		maxBodyBytes: cfg.MaxBodyBytes,
	}

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logger.Middleware)
	r.Use(middleware.Recoverer)
	r.Use(metricsMiddleware)

	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.CORSAllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
			MaxAge:         300,
		}))
	}

	r.Get(`/api/v1/health`, healthHandler)
	r.With(s.validateContact).Post(`/api/v1/contact`, s.contactHandler)
	r.Method(http.MethodGet, `/metrics`, promhttp.Handler())

	r.HandleFunc(`/*`, notFoundHandler)

	return s
}

func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

func (s *Server) Run(ctx context.Context, runner *errgroup.Group) {
	logger.Log.Info().Str("addr", s.srv.Addr).Msg("Http server started.")

	runner.Go(func() error {
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
}

func (s *Server) Shutdown(ctx context.Context) error {
	logger.Log.Info().Msg("Http server stopped.")

	nctx, stop := context.WithTimeout(context.WithoutCancel(ctx), time.Second*10)
	defer stop()

	return s.srv.Shutdown(nctx)
}
