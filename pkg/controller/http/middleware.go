package http

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/oncall-override/pkg/domain/model"
	"github.com/secmon-lab/oncall-override/pkg/utils/apperr"
	"github.com/secmon-lab/oncall-override/pkg/utils/metrics"
	"golang.org/x/time/rate"
)

// maxSignatureAge is how far a request timestamp may be from now
const maxSignatureAge = 5 * time.Minute

// LoggingMiddleware creates a chi-compatible logging middleware
func LoggingMiddleware(ctx context.Context) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := middleware.GetReqID(r.Context())
			logger := ctxlog.From(ctx).With("requestID", requestID)

			reqCtx := ctxlog.With(r.Context(), logger)
			reqCtx = model.WithRequestContext(reqCtx, &model.RequestContext{RequestID: requestID})
			r = r.WithContext(reqCtx)

			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info("HTTP request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
			)
		})
	}
}

// MetricsMiddleware records request counts and latency per route pattern
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		metrics.HTTPRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

// RateLimitMiddleware rejects requests beyond the token bucket with 429
func RateLimitMiddleware(requestsPerSecond float64, burst int) func(http.Handler) http.Handler {
	limiter := rate.NewLimiter(rate.Limit(requestsPerSecond), burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				ctxlog.From(r.Context()).Warn("Rate limit exceeded", "path", r.URL.Path)
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("Retry-After", "1")
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = w.Write([]byte(`{"error":"Rate limit exceeded"}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// SlackSignatureMiddleware verifies Slack request signatures and restores
// the body for downstream handlers
func SlackSignatureMiddleware(signingSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			body, err := io.ReadAll(r.Body)
			if err != nil {
				apperr.HandleHTTP(ctx, w, goerr.Wrap(err, "failed to read request body", goerr.T(model.ErrTagBadRequest)))
				return
			}
			if err := r.Body.Close(); err != nil {
				ctxlog.From(ctx).Warn("Failed to close request body", "error", err)
			}

			timestamp := r.Header.Get("X-Slack-Request-Timestamp")
			signature := r.Header.Get("X-Slack-Signature")

			if err := verifySlackSignature(signingSecret, timestamp, signature, body, time.Now()); err != nil {
				apperr.HandleHTTP(ctx, w, goerr.Wrap(err, "slack signature verification failed",
					goerr.T(model.ErrTagAuthFailure)))
				return
			}

			r.Body = io.NopCloser(bytes.NewBuffer(body))
			next.ServeHTTP(w, r)
		})
	}
}

// verifySlackSignature checks the v0 HMAC-SHA256 signature of a Slack request
func verifySlackSignature(signingSecret, timestamp, signature string, body []byte, now time.Time) error {
	if signingSecret == "" {
		return goerr.New("signing secret is not configured")
	}
	if timestamp == "" {
		return goerr.New("missing timestamp header")
	}
	if signature == "" {
		return goerr.New("missing signature header")
	}

	ts, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return goerr.Wrap(err, "invalid timestamp", goerr.V("timestamp", timestamp))
	}

	age := now.Unix() - ts
	if age < 0 {
		age = -age
	}
	if age > int64(maxSignatureAge.Seconds()) {
		return goerr.New("timestamp too old", goerr.V("timestamp", timestamp))
	}

	baseString := fmt.Sprintf("v0:%s:%s", timestamp, string(body))
	mac := hmac.New(sha256.New, []byte(signingSecret))
	mac.Write([]byte(baseString))
	expectedSignature := "v0=" + hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(signature), []byte(expectedSignature)) {
		return goerr.New("signature mismatch")
	}

	return nil
}
