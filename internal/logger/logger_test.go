package logger_test

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"gstinvoice/internal/config"
	"gstinvoice/internal/logger"
)

func TestSetup_JSON(t *testing.T) {
	log := logger.Setup(&config.LogConfig{Level: "warn", Format: "json"})

	assert.Equal(t, logrus.WarnLevel, log.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, log.Formatter)
}

func TestSetup_UnknownLevelFallsBackToInfo(t *testing.T) {
	log := logger.Setup(&config.LogConfig{Level: "chatty", Format: "console"})

	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, log.Formatter)
}
