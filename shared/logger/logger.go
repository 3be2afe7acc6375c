package logger

import (
	"io"
	"net/http"
	"os"
	"time"

	"rentdesk/config"
	"rentdesk/shared/constant"
	"rentdesk/shared/timezone"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultLevel applies when the configured level cannot be parsed.
const DefaultLevel = zerolog.InfoLevel

// Init points the global logger at stdout and applies the configured level. Development
// gets the console writer, every other environment writes JSON lines.
func Init(cfg *config.Config) {
	InitTo(os.Stdout, cfg)
}

// InitTo is Init with an explicit destination.
func InitTo(out io.Writer, cfg *config.Config) {
	zone := timezone.Init(cfg.App.Timezone)

	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.TimestampFunc = timezone.Now

	if cfg.Server.Env == constant.ServerEnvDevelopment {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: constant.TimeFormatSecond}
	}

	ctx := zerolog.New(out).With().Timestamp()
	if cfg.App.Name != "" {
		ctx = ctx.Str("app", cfg.App.Name)
	}

	log.Logger = ctx.Logger()

	level := ParseLevel(cfg.Server.LogLevel)
	zerolog.SetGlobalLevel(level)

	log.Debug().Str("level", level.String()).Str("env", cfg.Server.Env).Str("timezone", zone.String()).Msg("Logger initialized")
}

// ParseLevel maps a configured level name to a zerolog level, falling back to DefaultLevel.
func ParseLevel(name string) zerolog.Level {
	level, err := zerolog.ParseLevel(name)
	if err != nil || name == "" {
		return DefaultLevel
	}

	return level
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

// Access writes one access log line for a served request.
func Access(request *http.Request, status int, elapsed time.Duration) {
	event := log.Info()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}

	event.
		Str("method", request.Method).
		Str("path", request.URL.Path).
		Int("status", status).
		Dur("elapsed", elapsed).
		Msg("request served")
}
