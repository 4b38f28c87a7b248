package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config represents the logger configs.
type Config struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

var log zerolog.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// InitGlobalLogger replaces the default logger with one built from config.
func InitGlobalLogger(cfg *Config) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var out = os.Stdout
	logger := zerolog.New(out)
	if cfg.Pretty {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339})
	}

	log = logger.Level(level).With().Timestamp().Logger()
}

func Debug(msg string, args ...any) {
	log.Debug().Fields(args).Msg(msg)
}

func Info(msg string, args ...any) {
	log.Info().Fields(args).Msg(msg)
}

func Warn(msg string, args ...any) {
	log.Warn().Fields(args).Msg(msg)
}

func Error(msg string, args ...any) {
	log.Error().Fields(args).Msg(msg)
}
