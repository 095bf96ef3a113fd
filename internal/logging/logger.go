// Package logging builds the application logger. Production gets JSON output,
// anything else gets the human-readable development encoder.
package logging

import (
	"os"

	"go.uber.org/zap"
)

// New returns a configured SugaredLogger. The APP_ENV environment variable
// selects the encoder; construction failures fall back to a no-op logger
// rather than aborting startup.
func New() *zap.SugaredLogger {
	var logger *zap.Logger
	var err error

	if os.Getenv("APP_ENV") == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return logger.Sugar()
}
