package slack

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/oncall-override/pkg/domain/interfaces"
	"github.com/secmon-lab/oncall-override/pkg/domain/model"
	"github.com/secmon-lab/oncall-override/pkg/domain/types"
	"github.com/slack-go/slack"
)

// Service provides Slack messaging capabilities
type Service struct {
	client interfaces.SlackClient
}

var _ interfaces.Messenger = (*Service)(nil)

// New creates a new Slack service
func New(token string, options ...slack.Option) *Service {
	return &Service{
		client: slack.New(token, options...),
	}
}

// NewWithClient creates a Slack service on top of an existing client
func NewWithClient(client interfaces.SlackClient) *Service {
	return &Service{
		client: client,
	}
}

// GetUserProfile looks up a user's email and display name. Lookup failures
// are logged and reported as nil.
func (s *Service) GetUserProfile(ctx context.Context, userID types.SlackUserID) *interfaces.SlackProfile {
	logger := ctxlog.From(ctx)

	user, err := s.client.GetUserInfoContext(ctx, userID.String())
	if err != nil {
		logger.Warn("Failed to fetch Slack user info", "error", err, "userID", userID)
		return nil
	}
	if user == nil || user.Profile.Email == "" {
		logger.Warn("Slack user has no email in profile", "userID", userID)
		return nil
	}

	name := user.Profile.DisplayName
	if name == "" {
		name = user.RealName
	}
	if name == "" {
		name = "Unknown"
	}

	return &interfaces.SlackProfile{
		Email: user.Profile.Email,
		Name:  name,
	}
}

// PostMessage sends a message to a Slack channel
func (s *Service) PostMessage(ctx context.Context, channelID types.ChannelID, text string) error {
	if _, _, err := s.client.PostMessageContext(ctx, channelID.String(), slack.MsgOptionText(text, false)); err != nil {
		ctxlog.From(ctx).Error("Failed to post Slack message", "error", err, "channelID", channelID)
		return goerr.Wrap(err, "failed to post message to Slack",
			goerr.V("channel_id", channelID),
			goerr.T(model.ErrTagUpstream))
	}
	return nil
}

// PostEphemeral sends a message visible only to the specified user
func (s *Service) PostEphemeral(ctx context.Context, channelID types.ChannelID, userID types.SlackUserID, text string) error {
	if _, err := s.client.PostEphemeralContext(ctx, channelID.String(), userID.String(), slack.MsgOptionText(text, false)); err != nil {
		ctxlog.From(ctx).Error("Failed to post ephemeral Slack message", "error", err,
			"channelID", channelID,
			"userID", userID,
		)
		return goerr.Wrap(err, "failed to post ephemeral message",
			goerr.V("channel_id", channelID),
			goerr.V("user_id", userID),
			goerr.T(model.ErrTagUpstream))
	}
	return nil
}

// PostDirectMessage opens a DM with the user and posts the text there
func (s *Service) PostDirectMessage(ctx context.Context, userID types.SlackUserID, text string) error {
	logger := ctxlog.From(ctx)

	channel, _, _, err := s.client.OpenConversationContext(ctx, &slack.OpenConversationParameters{
		Users: []string{userID.String()},
	})
	if err != nil {
		logger.Error("Failed to open DM channel", "error", err, "userID", userID)
		return goerr.Wrap(err, "failed to open conversation",
			goerr.V("user_id", userID),
			goerr.T(model.ErrTagUpstream))
	}
	if channel == nil || channel.ID == "" {
		logger.Error("Slack returned no DM channel", "userID", userID)
		return goerr.New("failed to open DM channel",
			goerr.V("user_id", userID),
			goerr.T(model.ErrTagUpstream))
	}

	if _, _, err := s.client.PostMessageContext(ctx, channel.ID, slack.MsgOptionText(text, false)); err != nil {
		logger.Error("Failed to send direct message", "error", err, "userID", userID)
		return goerr.Wrap(err, "failed to send direct message",
			goerr.V("user_id", userID),
			goerr.T(model.ErrTagUpstream))
	}
	return nil
}

// OpenModal opens a modal view for the given trigger
func (s *Service) OpenModal(ctx context.Context, triggerID types.TriggerID, view slack.ModalViewRequest) error {
	if triggerID == "" {
		return goerr.New("trigger ID is required", goerr.T(model.ErrTagBadRequest))
	}

	if _, err := s.client.OpenViewContext(ctx, triggerID.String(), view); err != nil {
		ctxlog.From(ctx).Error("Failed to open Slack modal", "error", err, "callbackID", view.CallbackID)
		return goerr.Wrap(err, "failed to open modal",
			goerr.V("callback_id", view.CallbackID),
			goerr.T(model.ErrTagUpstream))
	}
	return nil
}
