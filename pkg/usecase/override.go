package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/oncall-override/pkg/domain/interfaces"
	"github.com/secmon-lab/oncall-override/pkg/domain/model"
	"github.com/secmon-lab/oncall-override/pkg/domain/types"
	slackblocks "github.com/secmon-lab/oncall-override/pkg/service/slack"
	"github.com/secmon-lab/oncall-override/pkg/utils/apperr"
	"github.com/secmon-lab/oncall-override/pkg/utils/metrics"
)

// Override request sources, used as a metrics label
const (
	SourceCommand = "command"
	SourceModal   = "modal"
)

// OverrideConfig holds deployment settings of the override flow
type OverrideConfig struct {
	ScheduleID types.ScheduleID
	// NotifyChannelID receives success announcements. The origin channel is used when empty.
	NotifyChannelID types.ChannelID
	Policy          *model.Policy
}

// OverrideUseCase resolves the target user, creates the override in
// Rootly and announces the result in Slack
type OverrideUseCase struct {
	directory    interfaces.Directory
	messenger    interfaces.Messenger
	config       OverrideConfig
	blockBuilder *slackblocks.BlockBuilder
	now          func() time.Time
}

// OverrideOption configures OverrideUseCase
type OverrideOption func(*OverrideUseCase)

// WithOverrideClock replaces the clock used as the start of the window
func WithOverrideClock(now func() time.Time) OverrideOption {
	return func(o *OverrideUseCase) {
		o.now = now
	}
}

// NewOverrideUseCase creates a new override usecase
func NewOverrideUseCase(directory interfaces.Directory, messenger interfaces.Messenger, config OverrideConfig, opts ...OverrideOption) *OverrideUseCase {
	o := &OverrideUseCase{
		directory:    directory,
		messenger:    messenger,
		config:       config,
		blockBuilder: slackblocks.NewBlockBuilder(),
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Process creates the override and notifies Slack about the outcome. It
// never fails: errors are reported to the requester and logged.
func (o *OverrideUseCase) Process(ctx context.Context, req *model.OverrideRequest, source string) {
	logger := ctxlog.From(ctx)

	override, err := o.CreateOverride(ctx, req)
	if err != nil {
		metrics.OverridesTotal.WithLabelValues(source, metrics.OutcomeFailed).Inc()
		if isUserError(err) {
			logger.Info("Override request rejected", "error", err, "requester", req.RequestingUserID)
		} else {
			apperr.Handle(ctx, err)
		}
		notifyFailure(ctx, o.messenger, req.ChannelID, req.RequestingUserID,
			o.blockBuilder.BuildOverrideFailedText(userMessage(err)))
		return
	}
	metrics.OverridesTotal.WithLabelValues(source, metrics.OutcomeSucceeded).Inc()

	channelID := o.config.NotifyChannelID
	if channelID == "" {
		channelID = req.ChannelID
	}

	text := o.blockBuilder.BuildOverrideCreatedText(override, req.RequestingUserID)
	if err := o.messenger.PostMessage(ctx, channelID, text); err != nil {
		apperr.Handle(ctx, goerr.Wrap(err, "failed to announce override",
			goerr.V("override_id", override.ID),
			goerr.V("channel_id", channelID)))
		notifyFailure(ctx, o.messenger, req.ChannelID, req.RequestingUserID,
			fmt.Sprintf("%s\n(The override was created, but the announcement to <#%s> failed.)", text, channelID))
	}
}

// CreateOverride resolves the target, computes the window starting now
// and creates the override shift
func (o *OverrideUseCase) CreateOverride(ctx context.Context, req *model.OverrideRequest) (*model.Override, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	duration, err := model.ParseDuration(req.Duration)
	if err != nil {
		return nil, err
	}

	start := o.now()
	if err := o.config.Policy.CheckDuration(duration, start); err != nil {
		return nil, err
	}

	window, err := model.NewTimeWindow(start, duration)
	if err != nil {
		return nil, err
	}

	if o.config.ScheduleID == "" {
		return nil, goerr.New("Rootly schedule ID is not configured", goerr.T(model.ErrTagConfigurationMissing))
	}

	user, err := o.resolveUser(ctx, req.Target)
	if err != nil {
		return nil, err
	}

	id, err := o.directory.CreateOverride(ctx, user.ID, o.config.ScheduleID, window.Start, window.End)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create override",
			goerr.V("user_id", user.ID),
			goerr.V("duration", duration.String()))
	}

	ctxlog.From(ctx).Info("Override created",
		"overrideID", id,
		"userID", user.ID,
		"start", window.Start,
		"end", window.End,
		"requester", req.RequestingUserID,
	)

	return &model.Override{
		ID:         id,
		ScheduleID: o.config.ScheduleID,
		User:       user,
		Duration:   duration,
		Window:     *window,
	}, nil
}

func (o *OverrideUseCase) resolveUser(ctx context.Context, target model.OverrideTarget) (*model.DirectoryUser, error) {
	if target.DirectoryUserID != "" {
		return o.resolveDirectoryUser(ctx, target.DirectoryUserID), nil
	}
	return o.resolveSlackUser(ctx, target.SlackUserID)
}

// resolveSlackUser maps a Slack user to Rootly through the profile email
func (o *OverrideUseCase) resolveSlackUser(ctx context.Context, userID types.SlackUserID) (*model.DirectoryUser, error) {
	profile := o.messenger.GetUserProfile(ctx, userID)
	if profile == nil {
		return nil, goerr.New(fmt.Sprintf("Could not read the email address of <@%s> from Slack", userID),
			goerr.V("slack_user_id", userID),
			goerr.T(model.ErrTagUserNotFound))
	}

	user, err := o.directory.FindUserByEmail(ctx, profile.Email)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to look up Rootly user",
			goerr.V("slack_user_id", userID))
	}
	if user == nil {
		return nil, goerr.New(fmt.Sprintf("No Rootly user found with email %s", profile.Email),
			goerr.V("slack_user_id", userID),
			goerr.V("email", profile.Email),
			goerr.T(model.ErrTagUserNotFound))
	}
	return user, nil
}

// resolveDirectoryUser looks up the display name of a user picked in the
// modal. The ID itself is trusted, so lookup failures only degrade the name.
func (o *OverrideUseCase) resolveDirectoryUser(ctx context.Context, id types.DirectoryUserID) *model.DirectoryUser {
	users, err := o.directory.ListUsers(ctx)
	if err != nil {
		ctxlog.From(ctx).Warn("Failed to load directory for user name", "error", err, "userID", id)
		return &model.DirectoryUser{ID: id, Name: id.String()}
	}
	if user := model.FindDirectoryUser(users, id); user != nil {
		return user
	}
	return &model.DirectoryUser{ID: id, Name: id.String()}
}
