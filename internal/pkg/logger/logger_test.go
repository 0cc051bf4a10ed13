package logger

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestInitPrefixesAppName(t *testing.T) {
	var buf bytes.Buffer
	InitWithOutput("ems", "debug", &buf)

	Log.Info("hello")

	assert.Contains(t, buf.String(), "[ems] hello")
	assert.Equal(t, logrus.DebugLevel, Log.GetLevel())
}

func TestInitFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	InitWithOutput("ems", "loud", &buf)

	assert.Equal(t, logrus.InfoLevel, Log.GetLevel())
	assert.Contains(t, buf.String(), "Invalid LOG_LEVEL")
}

func TestInitDoesNotStackHooks(t *testing.T) {
	var buf bytes.Buffer
	InitWithOutput("ems", "info", &buf)
	InitWithOutput("ems", "info", &buf)

	Log.Info("once")

	assert.Contains(t, buf.String(), "[ems] once")
	assert.NotContains(t, buf.String(), "[ems] [ems] once")
}
