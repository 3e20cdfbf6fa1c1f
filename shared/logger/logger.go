package logger

import (
	"context"
	"deportur/config"
	"deportur/shared/constant"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func InitLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}

	log.Logger = log.Output(output)
	log.Trace().Msg("Zerolog initialized.")
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

// SetLogLevel applies the configured level. Production writes plain JSON lines.
func SetLogLevel(config *config.Config) {
	level, err := zerolog.ParseLevel(config.Server.LogLevel)
	if err != nil {
		level = zerolog.TraceLevel
		log.Trace().Str("loglevel", level.String()).Msg("Environment has no log level set up, using default.")
	} else {
		log.Trace().Str("loglevel", level.String()).Msg("Desired log level detected.")
	}

	if config.Server.Env == constant.ServerEnvProduction {
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	}

	zerolog.SetGlobalLevel(level)
}

// FromContext returns the global logger enriched with the request, session and user
// carried by ctx.
func FromContext(ctx context.Context) *zerolog.Logger {
	logCtx := log.Logger.With()

	fields := map[string]constant.ContextKey{
		"request_id": constant.ContextKeyRequestID,
		"session_id": constant.ContextKeySessionID,
		"user_id":    constant.ContextKeyUserID,
	}

	for field, key := range fields {
		if value, ok := ctx.Value(key).(string); ok && value != constant.Empty {
			logCtx = logCtx.Str(field, value)
		}
	}

	logger := logCtx.Logger()

	return &logger
}
