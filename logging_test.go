package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerRejectsUnknownLevel(t *testing.T) {
	_, _, err := newLogger(&Options{LogLevel: "loud"}, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestNewLoggerConsole(t *testing.T) {
	var buf bytes.Buffer
	logger, logFile, err := newLogger(&Options{LogLevel: "warn"}, &buf)
	require.NoError(t, err)
	assert.Nil(t, logFile)

	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"message":"shown"`)
}

func TestNewLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.log")
	var buf bytes.Buffer

	logger, logFile, err := newLogger(&Options{LogLevel: "info", LogFile: path}, &buf)
	require.NoError(t, err)
	require.NotNil(t, logFile)

	logger.Info().Msg("to both")
	require.NoError(t, logFile.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to both")
	assert.Contains(t, buf.String(), "to both")
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := newLogger(&Options{LogLevel: "info"}, &buf)
	require.NoError(t, err)

	prev := log.Logger
	log.Logger = logger
	t.Cleanup(func() { log.Logger = prev })

	r := gin.New()
	r.Use(requestLogger())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.GET("/static/app.css", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(requestIDHeader, "req-1")
	r.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	assert.Contains(t, out, `"request_id":"req-1"`)
	assert.Contains(t, out, `"path":"/ping"`)
	assert.Contains(t, out, `"status":204`)

	buf.Reset()
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/static/app.css", nil))
	assert.Empty(t, buf.String(), "asset requests log at debug")
}
