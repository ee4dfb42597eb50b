package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/arborcroft/dpgraph/config"
	"github.com/arborcroft/dpgraph/privacy"
)

func newLogger(level string) zerolog.Logger {
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	l := zerolog.New(out).With().Timestamp().Logger()

	switch level {
	case "debug":
		l = l.Level(zerolog.DebugLevel)
	case "warn":
		l = l.Level(zerolog.WarnLevel)
	case "error":
		l = l.Level(zerolog.ErrorLevel)
	default:
		l = l.Level(zerolog.InfoLevel)
	}
	return l
}

// loadPrivacyDefinition reads --config if given, falling back to the
// engine's built-in conservative defaults.
func loadPrivacyDefinition() (privacy.PrivacyDefinition, error) {
	if cfgFile == "" {
		return privacy.DefaultDefinition(), nil
	}
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return privacy.PrivacyDefinition{}, err
	}
	return cfg.PrivacyDefinition()
}
