package main

import (
	"io"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

const requestIDHeader = "X-Request-ID"

// newLogger builds the process logger. When opts.LogFile is set the returned
// lumberjack.Logger must be closed by the caller.
func newLogger(opts *Options, console io.Writer) (zerolog.Logger, *lumberjack.Logger, error) {
	level, err := zerolog.ParseLevel(opts.LogLevel)
	if err != nil {
		return zerolog.Nop(), nil, errors.Wrapf(err, "invalid log level %q", opts.LogLevel)
	}
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if opts.LogFile == "" {
		return zerolog.New(console).Level(level).With().Timestamp().Logger(), nil, nil
	}

	logFile := &lumberjack.Logger{
		Filename:   opts.LogFile,
		MaxSize:    10, // MB
		MaxBackups: 5,
		MaxAge:     30, // days
		Compress:   true,
	}
	out := zerolog.MultiLevelWriter(logFile, console)
	return zerolog.New(out).Level(level).With().Timestamp().Logger(), logFile, nil
}

// requestLogger tags every request with an ID and logs it once handled.
// Asset requests are logged at debug level only.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Writer.Header().Set(requestIDHeader, requestID)

		logger := log.With().Str("request_id", requestID).Logger()
		c.Request = c.Request.WithContext(logger.WithContext(c.Request.Context()))

		start := time.Now()
		c.Next()

		event := logger.Info()
		if strings.HasPrefix(c.Request.URL.Path, "/static/") {
			event = logger.Debug()
		}
		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("Request handled")
	}
}
