package interfaces

//go:generate moq -out mocks/slack_client_mock.go -pkg mocks . SlackClient
//go:generate moq -out mocks/messenger_mock.go -pkg mocks . Messenger

import (
	"context"

	"github.com/secmon-lab/oncall-override/pkg/domain/types"
	"github.com/slack-go/slack"
)

// SlackClient is the subset of *slack.Client this service calls
type SlackClient interface {
	GetUserInfoContext(ctx context.Context, user string) (*slack.User, error)
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
	PostEphemeralContext(ctx context.Context, channelID, userID string, options ...slack.MsgOption) (string, error)
	OpenConversationContext(ctx context.Context, params *slack.OpenConversationParameters) (*slack.Channel, bool, bool, error)
	OpenViewContext(ctx context.Context, triggerID string, view slack.ModalViewRequest) (*slack.ViewResponse, error)
}

// SlackProfile is the part of a Slack profile used to resolve a user in Rootly
type SlackProfile struct {
	Email string
	Name  string
}

// Messenger sends notifications and modals to Slack
type Messenger interface {
	// GetUserProfile returns nil when the profile or its email is unavailable
	GetUserProfile(ctx context.Context, userID types.SlackUserID) *SlackProfile
	PostMessage(ctx context.Context, channelID types.ChannelID, text string) error
	PostEphemeral(ctx context.Context, channelID types.ChannelID, userID types.SlackUserID, text string) error
	PostDirectMessage(ctx context.Context, userID types.SlackUserID, text string) error
	OpenModal(ctx context.Context, triggerID types.TriggerID, view slack.ModalViewRequest) error
}
