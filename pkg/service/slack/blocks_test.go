package slack_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/oncall-override/pkg/domain/model"
	slackSvc "github.com/secmon-lab/oncall-override/pkg/service/slack"
	"github.com/slack-go/slack"
)

func findInputBlock(t *testing.T, view slack.ModalViewRequest, blockID string) *slack.InputBlock {
	t.Helper()
	for _, block := range view.Blocks.BlockSet {
		if input, ok := block.(*slack.InputBlock); ok && input.BlockID == blockID {
			return input
		}
	}
	t.Fatalf("input block %s not found", blockID)
	return nil
}

func TestBuildOverrideModal(t *testing.T) {
	builder := slackSvc.NewBlockBuilder()
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	metadata := model.ModalMetadata{
		ChannelID:        "C001",
		RequestingUserID: "U123",
		ResponseURL:      "https://hooks.slack.com/commands/x",
	}

	t.Run("Without initial user", func(t *testing.T) {
		view, err := builder.BuildOverrideModal(metadata, nil, now)
		gt.NoError(t, err).Required()

		gt.Equal(t, model.OverrideModalCallbackID, view.CallbackID)
		gt.Equal(t, slack.ViewType("modal"), view.Type)

		userBlock := findInputBlock(t, view, model.UserBlockID)
		sel, ok := userBlock.Element.(*slack.SelectBlockElement)
		gt.True(t, ok)
		gt.Equal(t, slack.OptTypeExternal, sel.Type)
		gt.Equal(t, model.UserSelectActionID, sel.ActionID)
		gt.NotNil(t, sel.MinQueryLength)
		gt.Equal(t, 0, *sel.MinQueryLength)
		gt.Nil(t, sel.InitialOption)

		durationBlock := findInputBlock(t, view, model.DurationBlockID)
		gt.NotNil(t, durationBlock.Hint)
		gt.S(t, durationBlock.Hint.Text).Contains("30m")

		var decoded model.ModalMetadata
		gt.NoError(t, json.Unmarshal([]byte(view.PrivateMetadata), &decoded))
		gt.Equal(t, metadata, decoded)
	})

	t.Run("With initial user", func(t *testing.T) {
		initial := &model.SelectOption{Label: "Alice (alice@example.com)", Value: "42"}
		view, err := builder.BuildOverrideModal(metadata, initial, now)
		gt.NoError(t, err).Required()

		sel := findInputBlock(t, view, model.UserBlockID).Element.(*slack.SelectBlockElement)
		gt.NotNil(t, sel.InitialOption)
		gt.Equal(t, "42", sel.InitialOption.Value)
		gt.Equal(t, "Alice (alice@example.com)", sel.InitialOption.Text.Text)
	})
}

func TestParseModalMetadata(t *testing.T) {
	t.Run("Round trip", func(t *testing.T) {
		builder := slackSvc.NewBlockBuilder()
		metadata := model.ModalMetadata{ChannelID: "C001", RequestingUserID: "U123"}
		view, err := builder.BuildOverrideModal(metadata, nil, time.Now())
		gt.NoError(t, err).Required()

		parsed, err := slackSvc.ParseModalMetadata(view.PrivateMetadata)
		gt.NoError(t, err)
		gt.Equal(t, metadata, parsed)
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := slackSvc.ParseModalMetadata("")
		gt.Error(t, err)
	})

	t.Run("Broken JSON", func(t *testing.T) {
		_, err := slackSvc.ParseModalMetadata("{not json")
		gt.Error(t, err)
	})
}

func TestBuildOverrideCreatedText(t *testing.T) {
	builder := slackSvc.NewBlockBuilder()
	start := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	override := &model.Override{
		ID:       "shift-1",
		User:     &model.DirectoryUser{ID: "42", Name: "Alice", Email: "alice@example.com"},
		Duration: model.Duration{Amount: 2, Unit: model.DurationUnitHour},
		Window:   model.TimeWindow{Start: start, End: start.Add(2 * time.Hour)},
	}

	text := builder.BuildOverrideCreatedText(override, "U999")
	gt.True(t, strings.HasPrefix(text, "✅ On-call override created for *Alice* (2h)"))
	gt.S(t, text).Contains("<!date^1709283600^{time} on {date_short}|2024-03-01T09:00:00Z>")
	gt.S(t, text).Contains("<!date^1709290800^")
	gt.S(t, text).Contains("Requested by <@U999>")
}

func TestFailureTexts(t *testing.T) {
	builder := slackSvc.NewBlockBuilder()
	gt.Equal(t, "❌ Error creating override: boom", builder.BuildOverrideFailedText("boom"))
	gt.Equal(t, "❌ Could not open modal: boom", builder.BuildModalFailedText("boom"))
}
