// Package logger configures the process-wide logrus logger.
package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"gstinvoice/internal/config"
)

// Setup applies cfg to the standard logrus logger and returns it.
// Format "json" emits one JSON object per line; anything else uses the text
// formatter with full timestamps. An unknown level falls back to info.
func Setup(cfg *config.LogConfig) *logrus.Logger {
	log := logrus.StandardLogger()
	log.SetOutput(os.Stdout)

	if strings.EqualFold(cfg.Format, "json") {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	return log
}

// LogError logs err with the component and operation that produced it.
func LogError(component, op string, data any, err error) {
	fields := logrus.Fields{
		"component": component,
		"op":        op,
	}
	if data != nil {
		fields["data"] = data
	}
	logrus.WithFields(fields).Error(err.Error())
}
