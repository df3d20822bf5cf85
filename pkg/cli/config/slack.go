package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/oncall-override/pkg/domain/types"
	slackSvc "github.com/secmon-lab/oncall-override/pkg/service/slack"
	"github.com/urfave/cli/v3"
)

// Slack holds Slack configuration
type Slack struct {
	SigningSecret   string `masq:"secret"`
	BotToken        string `masq:"secret"`
	NotifyChannelID string
}

// Flags returns CLI flags for Slack configuration
func (s *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-signing-secret",
			Usage:       "Slack signing secret for request verification",
			Category:    "Slack",
			Sources:     cli.EnvVars("OVERRIDE_SLACK_SIGNING_SECRET", "SLACK_SIGNING_SECRET"),
			Destination: &s.SigningSecret,
		},
		&cli.StringFlag{
			Name:        "slack-bot-token",
			Usage:       "Slack bot token for API access",
			Category:    "Slack",
			Sources:     cli.EnvVars("OVERRIDE_SLACK_BOT_TOKEN", "SLACK_BOT_TOKEN"),
			Destination: &s.BotToken,
		},
		&cli.StringFlag{
			Name:        "slack-notify-channel",
			Usage:       "Channel ID that receives override announcements (defaults to the channel the request came from)",
			Category:    "Slack",
			Sources:     cli.EnvVars("OVERRIDE_SLACK_NOTIFY_CHANNEL", "OVERRIDE_CHANNEL_ID"),
			Destination: &s.NotifyChannelID,
		},
	}
}

// Validate validates the Slack configuration. The signing secret is not
// required here: requests are rejected with 401 while it is unset.
func (s *Slack) Validate() error {
	if s.BotToken == "" {
		return goerr.New("Slack bot token is required. Please provide OVERRIDE_SLACK_BOT_TOKEN")
	}
	return nil
}

// Configure creates the Slack messaging service
func (s *Slack) Configure() *slackSvc.Service {
	return slackSvc.New(s.BotToken)
}

// NotifyChannel returns the configured announcement channel
func (s *Slack) NotifyChannel() types.ChannelID {
	return types.ChannelID(s.NotifyChannelID)
}

// LogValue returns structured log value
func (s Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("has_signing_secret", s.SigningSecret != ""),
		slog.Bool("has_bot_token", s.BotToken != ""),
		slog.String("notify_channel", s.NotifyChannelID),
	)
}
