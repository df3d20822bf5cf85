package interfaces

//go:generate moq -out mocks/slack_interaction_mock.go -pkg mocks . SlackInteraction

import (
	"context"

	"github.com/secmon-lab/oncall-override/pkg/domain/model"
)

// SlackInteraction handles decoded Slack commands and interactions
type SlackInteraction interface {
	HandleCommand(ctx context.Context, cmd *model.SlashCommand) error
	// HandleViewSubmission returns field errors to show in the modal, or
	// nil when the submission was accepted
	HandleViewSubmission(ctx context.Context, sub *model.ViewSubmission) model.FieldErrors
	HandleViewClosed(ctx context.Context, closed *model.ViewClosed)
	LoadOptions(ctx context.Context, suggestion *model.BlockSuggestion) []model.SelectOption
}
