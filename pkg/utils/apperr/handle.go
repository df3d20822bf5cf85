package apperr

import (
	"context"
	"errors"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/oncall-override/pkg/domain/model"
)

// Handle logs an error that nobody else will see and reports it to Sentry
// when a client is configured.
func Handle(ctx context.Context, err error) {
	if err == nil {
		return
	}

	logger := ctxlog.From(ctx)
	logger.Error("application error", "error", err)

	hub := sentry.CurrentHub().Clone()
	if hub.Client() == nil {
		return
	}
	hub.WithScope(func(scope *sentry.Scope) {
		if reqCtx, ok := model.GetRequestContext(ctx); ok {
			scope.SetUser(sentry.User{ID: reqCtx.SlackUserID.String()})
			scope.SetTag("channel_id", reqCtx.ChannelID.String())
			scope.SetTag("request_id", reqCtx.RequestID)
		}
		var ge *goerr.Error
		if errors.As(err, &ge) && len(ge.Values()) > 0 {
			scope.SetContext("error_values", sentry.Context(ge.Values()))
		}
		hub.CaptureException(err)
	})
}
