package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var zlog = zerolog.New(os.Stdout).With().Timestamp().Logger()

// InitStructured initializes the structured zerolog logger
func InitStructured(env string) {
	initWithWriter(env, nil)
}

func initWithWriter(env string, out io.Writer) {
	var w io.Writer

	switch {
	case out != nil:
		w = out
	case env == "development" || env == "dev" || env == "local":
		// Pretty console output for development
		w = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	default:
		// JSON output for production (machine-readable)
		w = os.Stdout
	}

	zlog = zerolog.New(w).With().
		Timestamp().
		Str("service", "boardflab-backend").
		Logger()

	zerolog.TimeFieldFormat = time.RFC3339
}

// SetOutput JSON 로그를 out으로 보냄 (테스트용)
func SetOutput(out io.Writer) {
	initWithWriter("production", out)
}

// GetLogger returns the global zerolog logger
func GetLogger() *zerolog.Logger {
	return &zlog
}

// WithRequestID returns a logger with request_id field
func WithRequestID(requestID string) zerolog.Logger {
	return zlog.With().Str("request_id", requestID).Logger()
}
