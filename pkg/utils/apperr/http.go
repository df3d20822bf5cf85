package apperr

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/oncall-override/pkg/domain/model"
)

// StatusCode maps an error to the HTTP status it should produce
func StatusCode(err error) int {
	switch {
	case goerr.HasTag(err, model.ErrTagAuthFailure):
		return http.StatusUnauthorized
	case goerr.HasTag(err, model.ErrTagBadRequest),
		goerr.HasTag(err, model.ErrTagInvalidDuration),
		errors.Is(err, model.ErrUnknownInteraction):
		return http.StatusBadRequest
	case goerr.HasTag(err, model.ErrTagConfigurationMissing):
		return http.StatusServiceUnavailable
	case goerr.HasTag(err, model.ErrTagUpstream):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// HandleHTTP writes err as a JSON error response. 5xx errors are also
// reported through Handle; 4xx are logged at warn level.
func HandleHTTP(ctx context.Context, w http.ResponseWriter, err error) {
	if err == nil {
		return
	}

	status := StatusCode(err)
	if status >= http.StatusInternalServerError {
		Handle(ctx, err)
	} else {
		ctxlog.From(ctx).Warn("HTTP request rejected", "status", status, "error", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if encErr := json.NewEncoder(w).Encode(map[string]string{
		"error": http.StatusText(status),
	}); encErr != nil {
		ctxlog.From(ctx).Error("Failed to encode error response", "error", encErr)
	}
}
