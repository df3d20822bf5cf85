package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/oncall-override/pkg/domain/interfaces"
	"github.com/secmon-lab/oncall-override/pkg/domain/model"
	"github.com/secmon-lab/oncall-override/pkg/domain/types"
	"github.com/secmon-lab/oncall-override/pkg/utils/metrics"
)

// notifyFailure tells the requester that something went wrong. It tries an
// ephemeral message in the origin channel, then a DM, and finally gives up
// after logging.
func notifyFailure(ctx context.Context, messenger interfaces.Messenger, channelID types.ChannelID, userID types.SlackUserID, text string) {
	logger := ctxlog.From(ctx)

	ephemeralErr := messenger.PostEphemeral(ctx, channelID, userID, text)
	if ephemeralErr == nil {
		metrics.NotificationFallbacks.WithLabelValues("ephemeral").Inc()
		return
	}

	dmErr := messenger.PostDirectMessage(ctx, userID, text)
	if dmErr == nil {
		metrics.NotificationFallbacks.WithLabelValues("direct_message").Inc()
		logger.Info("Failure notification delivered by DM", "userID", userID, "ephemeralError", ephemeralErr)
		return
	}

	metrics.NotificationFallbacks.WithLabelValues("log_only").Inc()
	logger.Error("Could not notify user about failure",
		"userID", userID,
		"channelID", channelID,
		"message", text,
		"ephemeralError", ephemeralErr,
		"dmError", dmErr,
	)
}

// userMessage converts an error into text that is safe to show in chat
func userMessage(err error) string {
	switch {
	case errors.Is(err, model.ErrNonPositiveDuration):
		return "Duration must be a positive number"
	case errors.Is(err, model.ErrDurationTooLong):
		return "Duration exceeds the allowed maximum"
	case errors.Is(err, model.ErrInvalidDurationFormat):
		return "Invalid format. Use: 30m, 2h, or 1d"
	case goerr.HasTag(err, model.ErrTagConfigurationMissing):
		return "The bot is missing Rootly configuration. Please contact an administrator."
	}

	if goerr.HasTag(err, model.ErrTagUpstream) {
		return fmt.Sprintf("Rootly API error: %s", err.Error())
	}
	return err.Error()
}

// isUserError reports whether err was caused by user input rather than by
// the service or its dependencies
func isUserError(err error) bool {
	return goerr.HasTag(err, model.ErrTagInvalidDuration) ||
		goerr.HasTag(err, model.ErrTagUserNotFound) ||
		goerr.HasTag(err, model.ErrTagBadRequest)
}
