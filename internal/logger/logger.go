package logger

import (
	"io"
	"net/http"
	"os"
	"time"

	"github.com/Heidric/contact-intake/pkg/log"
	"github.com/go-chi/chi/middleware"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Log is the process-wide logger. Packages derive a named child from it in
// their constructors. It is usable before Initialize is called.
var Log = newLogger(os.Stdout, zerolog.InfoLevel)

type Service struct {
	logger *zerolog.Logger
}

func Initialize(cfg *log.Config) (*Service, error) {
	if cfg == nil {
		return nil, errors.New("invalid passed options pointer")
	}
	cfg.SetDefault()

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return nil, errors.Wrapf(err, "parse level %q", cfg.Level)
	}

	var w io.Writer = os.Stdout
	if cfg.Pretty {
		w = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}

	Log = newLogger(w, level)

	return &Service{logger: Log}, nil
}

func (s *Service) Zerolog() *zerolog.Logger {
	return s.logger
}

func newLogger(w io.Writer, level zerolog.Level) *zerolog.Logger {
	l := zerolog.New(w).Level(level).With().Timestamp().Logger()
	return &l
}

// Middleware logs one line per request and puts a request-scoped logger into
// the request context.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		l := Log.With().
			Str("requestId", middleware.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Logger()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r.WithContext(l.WithContext(r.Context())))

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		l.Info().
			Int("status", status).
			Int("bytes", ww.BytesWritten()).
			Dur("duration", time.Since(start)).
			Str("remoteAddr", r.RemoteAddr).
			Msg("request")
	})
}
