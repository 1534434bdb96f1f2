// Package logging builds the zap loggers used by staffbook binaries and the
// HTTP request logger middleware.
package logging

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/louisbranch/staffbook/internal/platform/telemetry"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a JSON production logger named after service. Debug lowers the
// level to debug.
func New(service string, debug bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if debug {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger.Named(service), nil
}

// RequestLogger logs one line per request with method, path, status, bytes,
// latency, and request id.
func RequestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			recorder := telemetry.NewResponseRecorder(w)
			next.ServeHTTP(recorder, r)

			requestID := strings.TrimSpace(r.Header.Get("X-Request-ID"))
			if requestID == "" {
				requestID = "-"
			}
			logger.Info("http request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", recorder.Status()),
				zap.Int("bytes", recorder.BytesWritten()),
				zap.Duration("latency", time.Since(start)),
				zap.String("request_id", requestID),
			)
		})
	}
}
