// Package logging builds the process-wide zap logger.
package logging

import (
	"go.uber.org/zap"
)

// Logger is the global logger instance
var Logger *zap.Logger

// Setup builds Logger with a development config when debug is set and a
// production config otherwise, tags it with the application name and
// version, and installs it as zap's global logger. On failure Logger falls
// back to zap's example logger and the error is returned.
func Setup(debug bool, appName, appVersion string) error {
	var err error
	var cfg zap.Config

	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	cfg.InitialFields = map[string]interface{}{
		"appName":    appName,
		"appVersion": appVersion,
	}

	Logger, err = cfg.Build()
	if err != nil {
		Logger = zap.NewExample()
		return err
	}

	zap.ReplaceGlobals(Logger)
	return nil
}
