package repositories

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"jira-cli/internal/logger"
)

// loggingTransport traces every request at debug level
type loggingTransport struct {
	next http.RoundTripper
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.next.RoundTrip(req)

	log := logger.GetLogger()
	if err != nil {
		log.Debug("jira request failed",
			zap.String("method", req.Method),
			zap.String("url", req.URL.String()),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err))
		return nil, err
	}

	log.Debug("jira request",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)))
	return resp, nil
}
