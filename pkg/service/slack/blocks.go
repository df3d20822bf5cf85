package slack

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/oncall-override/pkg/domain/model"
	"github.com/secmon-lab/oncall-override/pkg/domain/types"
	"github.com/slack-go/slack"
)

// BlockBuilder provides methods to build Slack views and message texts
type BlockBuilder struct{}

// NewBlockBuilder creates a new BlockBuilder instance
func NewBlockBuilder() *BlockBuilder {
	return &BlockBuilder{}
}

// formatSlackDate renders a Slack date token that each client shows in its
// own timezone, with an RFC 3339 fallback for clients that cannot.
func formatSlackDate(t time.Time) string {
	return fmt.Sprintf("<!date^%d^{time} on {date_short}|%s>", t.Unix(), t.UTC().Format(time.RFC3339))
}

// BuildOverrideModal builds the modal used to pick a user and duration.
// When initial is set the user select is pre-populated with it.
func (b *BlockBuilder) BuildOverrideModal(metadata model.ModalMetadata, initial *model.SelectOption, now time.Time) (slack.ModalViewRequest, error) {
	raw, err := json.Marshal(metadata)
	if err != nil {
		return slack.ModalViewRequest{}, goerr.Wrap(err, "failed to marshal modal metadata")
	}

	introBlock := slack.NewSectionBlock(
		slack.NewTextBlockObject(
			slack.MarkdownType,
			"Take over the on-call shift starting now. Pick who should be on call and for how long.",
			false,
			false,
		),
		nil,
		nil,
	)

	nowBlock := slack.NewContextBlock(
		"",
		slack.NewTextBlockObject(
			slack.MarkdownType,
			fmt.Sprintf("Current time: %s", formatSlackDate(now)),
			false,
			false,
		),
	)

	userSelect := slack.NewOptionsSelectBlockElement(
		slack.OptTypeExternal,
		slack.NewTextBlockObject(slack.PlainTextType, "Search Rootly users", false, false),
		model.UserSelectActionID,
	)
	minQueryLength := 0
	userSelect.MinQueryLength = &minQueryLength
	if initial != nil {
		userSelect.InitialOption = slack.NewOptionBlockObject(
			initial.Value,
			slack.NewTextBlockObject(slack.PlainTextType, initial.Label, false, false),
			nil,
		)
	}

	userBlock := slack.NewInputBlock(
		model.UserBlockID,
		slack.NewTextBlockObject(slack.PlainTextType, "On-call user", false, false),
		nil,
		userSelect,
	)

	durationBlock := slack.NewInputBlock(
		model.DurationBlockID,
		slack.NewTextBlockObject(slack.PlainTextType, "Duration", false, false),
		slack.NewTextBlockObject(slack.PlainTextType, "Use format: 30m (minutes), 2h (hours), or 1d (days)", false, false),
		slack.NewPlainTextInputBlockElement(
			slack.NewTextBlockObject(slack.PlainTextType, "e.g. 2h", false, false),
			model.DurationInputActionID,
		),
	)

	return slack.ModalViewRequest{
		Type:            slack.ViewType("modal"),
		Title:           slack.NewTextBlockObject(slack.PlainTextType, "On-call Override", false, false),
		Submit:          slack.NewTextBlockObject(slack.PlainTextType, "Create", false, false),
		Close:           slack.NewTextBlockObject(slack.PlainTextType, "Cancel", false, false),
		CallbackID:      model.OverrideModalCallbackID,
		PrivateMetadata: string(raw),
		Blocks: slack.Blocks{
			BlockSet: []slack.Block{
				introBlock,
				nowBlock,
				userBlock,
				durationBlock,
			},
		},
	}, nil
}

// ParseModalMetadata decodes the private_metadata set by BuildOverrideModal
func ParseModalMetadata(raw string) (model.ModalMetadata, error) {
	var metadata model.ModalMetadata
	if raw == "" {
		return metadata, goerr.New("modal metadata is empty", goerr.T(model.ErrTagBadRequest))
	}
	if err := json.Unmarshal([]byte(raw), &metadata); err != nil {
		return metadata, goerr.Wrap(err, "failed to decode modal metadata",
			goerr.V("metadata", raw),
			goerr.T(model.ErrTagBadRequest))
	}
	return metadata, nil
}

// BuildOverrideCreatedText formats the announcement of a created override
func (b *BlockBuilder) BuildOverrideCreatedText(override *model.Override, requester types.SlackUserID) string {
	return fmt.Sprintf("✅ On-call override created for *%s* (%s)\n⏰ Start: %s\n⏰ End: %s\nRequested by <@%s>",
		override.User.Name,
		override.Duration.String(),
		formatSlackDate(override.Window.Start),
		formatSlackDate(override.Window.End),
		requester,
	)
}

// BuildOverrideFailedText formats the message sent when an override could not be created
func (b *BlockBuilder) BuildOverrideFailedText(reason string) string {
	return fmt.Sprintf("❌ Error creating override: %s", reason)
}

// BuildModalFailedText formats the message sent when the modal could not be opened
func (b *BlockBuilder) BuildModalFailedText(reason string) string {
	return fmt.Sprintf("❌ Could not open modal: %s", reason)
}
