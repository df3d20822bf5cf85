package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/oncall-override/pkg/domain/interfaces"
	"github.com/secmon-lab/oncall-override/pkg/domain/interfaces/mocks"
	"github.com/secmon-lab/oncall-override/pkg/domain/model"
	"github.com/secmon-lab/oncall-override/pkg/domain/types"
	"github.com/secmon-lab/oncall-override/pkg/usecase"
	"github.com/slack-go/slack"
)

// syncQueue runs submitted tasks immediately so tests can observe effects
func syncQueue() *mocks.TaskQueueMock {
	return &mocks.TaskQueueMock{
		SubmitFunc: func(ctx context.Context, name string, fn interfaces.TaskFunc) {
			_ = fn(ctx)
		},
		SubmitAfterFunc: func(ctx context.Context, name string, delay time.Duration, fn interfaces.TaskFunc) {},
	}
}

type interactionFixture struct {
	dir   *mocks.DirectoryMock
	msg   *mocks.MessengerMock
	queue *mocks.TaskQueueMock
	uc    *usecase.SlackInteraction
}

func newInteractionFixture(policy *model.Policy) *interactionFixture {
	f := &interactionFixture{
		dir:   newDirectoryMock(),
		msg:   newMessengerMock(),
		queue: syncQueue(),
	}
	overrideUC := newOverrideUseCase(f.dir, f.msg, usecase.OverrideConfig{Policy: policy})
	f.uc = usecase.NewSlackInteraction(overrideUC, f.dir, f.msg, f.queue, policy)
	return f
}

func TestHandleCommand(t *testing.T) {
	t.Run("Direct override end to end", func(t *testing.T) {
		f := newInteractionFixture(nil)

		err := f.uc.HandleCommand(context.Background(), &model.SlashCommand{
			Command:   "/grab-oncall",
			Text:      "1h <@UALICE|alice>",
			UserID:    "UREQ",
			ChannelID: "C001",
			TriggerID: "T-1",
		})
		gt.NoError(t, err)

		gt.Equal(t, "direct-override", f.queue.SubmitCalls()[0].Name)
		gt.Equal(t, 0, len(f.msg.OpenModalCalls()))

		calls := f.dir.CreateOverrideCalls()
		gt.Equal(t, 1, len(calls))
		gt.Equal(t, "42", calls[0].UserID.String())
		gt.Equal(t, time.Hour, calls[0].End.Sub(calls[0].Start))
		gt.Equal(t, 1, len(f.msg.PostMessageCalls()))
	})

	t.Run("Empty text opens modal with requester preselected", func(t *testing.T) {
		f := newInteractionFixture(nil)

		err := f.uc.HandleCommand(context.Background(), &model.SlashCommand{
			Command:     "/grab-oncall",
			Text:        "",
			UserID:      "UALICE",
			ChannelID:   "C001",
			TriggerID:   "T-1",
			ResponseURL: "https://hooks.slack.com/commands/x",
		})
		gt.NoError(t, err)

		calls := f.msg.OpenModalCalls()
		gt.Equal(t, 1, len(calls))
		gt.Equal(t, types.TriggerID("T-1"), calls[0].TriggerID)
		gt.Equal(t, model.OverrideModalCallbackID, calls[0].View.CallbackID)
		gt.S(t, calls[0].View.PrivateMetadata).Contains(`"channel_id":"C001"`)

		var initial *slack.OptionBlockObject
		for _, block := range calls[0].View.Blocks.BlockSet {
			if input, ok := block.(*slack.InputBlock); ok && input.BlockID == model.UserBlockID {
				initial = input.Element.(*slack.SelectBlockElement).InitialOption
			}
		}
		gt.NotNil(t, initial)
		gt.Equal(t, "42", initial.Value)
		gt.Equal(t, 0, len(f.dir.CreateOverrideCalls()))
	})

	t.Run("Unparseable text opens modal", func(t *testing.T) {
		f := newInteractionFixture(nil)

		err := f.uc.HandleCommand(context.Background(), &model.SlashCommand{
			Command:   "/grab-oncall",
			Text:      "please help",
			UserID:    "UREQ",
			ChannelID: "C001",
			TriggerID: "T-1",
		})
		gt.NoError(t, err)
		gt.Equal(t, 1, len(f.msg.OpenModalCalls()))
	})

	t.Run("Modal open failure notifies requester", func(t *testing.T) {
		f := newInteractionFixture(nil)
		f.msg.OpenModalFunc = func(ctx context.Context, triggerID types.TriggerID, view slack.ModalViewRequest) error {
			return errors.New("expired_trigger_id")
		}

		err := f.uc.HandleCommand(context.Background(), &model.SlashCommand{
			Command:   "/grab-oncall",
			UserID:    "UREQ",
			ChannelID: "C001",
			TriggerID: "T-1",
		})
		gt.NoError(t, err)

		calls := f.msg.PostEphemeralCalls()
		gt.Equal(t, 1, len(calls))
		gt.S(t, calls[0].Text).Contains("❌ Could not open modal:")
	})

	t.Run("Unknown command", func(t *testing.T) {
		f := newInteractionFixture(nil)

		err := f.uc.HandleCommand(context.Background(), &model.SlashCommand{
			Command: "/other",
			UserID:  "UREQ",
		})
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, model.ErrTagBadRequest))
		gt.Equal(t, 0, len(f.queue.SubmitCalls()))
	})

	t.Run("Custom command from policy", func(t *testing.T) {
		f := newInteractionFixture(&model.Policy{Command: "/oncall", MaxOptions: 100})

		err := f.uc.HandleCommand(context.Background(), &model.SlashCommand{
			Command:   "/oncall",
			UserID:    "UREQ",
			ChannelID: "C001",
			TriggerID: "T-1",
		})
		gt.NoError(t, err)
		gt.Equal(t, 1, len(f.queue.SubmitCalls()))
	})
}

func TestHandleViewSubmission(t *testing.T) {
	metadata := model.ModalMetadata{ChannelID: "C001", RequestingUserID: "UREQ"}

	t.Run("Both fields invalid", func(t *testing.T) {
		f := newInteractionFixture(nil)

		errs := f.uc.HandleViewSubmission(context.Background(), &model.ViewSubmission{
			UserID:         "UREQ",
			CallbackID:     model.OverrideModalCallbackID,
			Metadata:       metadata,
			SelectedUserID: "",
			Duration:       "abc",
		})
		gt.Equal(t, 2, len(errs))
		gt.Equal(t, "Please select a valid Rootly user", errs[model.UserBlockID])
		gt.Equal(t, "Invalid format. Use: 30m, 2h, or 1d", errs[model.DurationBlockID])
		gt.Equal(t, 0, len(f.queue.SubmitCalls()))
	})

	t.Run("No user and empty duration", func(t *testing.T) {
		f := newInteractionFixture(nil)

		errs := f.uc.HandleViewSubmission(context.Background(), &model.ViewSubmission{
			UserID:         "UREQ",
			CallbackID:     model.OverrideModalCallbackID,
			Metadata:       metadata,
			SelectedUserID: "",
			Duration:       "",
		})
		gt.Equal(t, 2, len(errs))
		gt.Equal(t, "Please select a valid Rootly user", errs[model.UserBlockID])
		gt.Equal(t, "Please enter a duration", errs[model.DurationBlockID])
		gt.Equal(t, 0, len(f.queue.SubmitCalls()))
	})

	testCases := []struct {
		name     string
		userID   string
		duration string
		block    string
		expected string
	}{
		{"Error sentinel rejected", model.ErrorOptionValue, "1h", model.UserBlockID, "Please select a valid Rootly user"},
		{"Empty duration", "42", "   ", model.DurationBlockID, "Please enter a duration"},
		{"Zero duration", "42", "0h", model.DurationBlockID, "Duration must be a positive number"},
		{"Unknown unit", "42", "1w", model.DurationBlockID, "Invalid format. Use: 30m, 2h, or 1d"},
		{"Amount beyond range", "42", "307445735m", model.DurationBlockID, "Duration exceeds the allowed maximum"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newInteractionFixture(nil)

			errs := f.uc.HandleViewSubmission(context.Background(), &model.ViewSubmission{
				UserID:         "UREQ",
				CallbackID:     model.OverrideModalCallbackID,
				Metadata:       metadata,
				SelectedUserID: tc.userID,
				Duration:       tc.duration,
			})
			gt.Equal(t, 1, len(errs))
			gt.Equal(t, tc.expected, errs[tc.block])
		})
	}

	t.Run("Policy maximum shown inline", func(t *testing.T) {
		f := newInteractionFixture(&model.Policy{Command: "/grab-oncall", MaxDuration: "1d", MaxOptions: 100})

		errs := f.uc.HandleViewSubmission(context.Background(), &model.ViewSubmission{
			CallbackID:     model.OverrideModalCallbackID,
			Metadata:       metadata,
			SelectedUserID: "42",
			Duration:       "2d",
		})
		gt.Equal(t, "Duration must not exceed 1d", errs[model.DurationBlockID])
	})

	t.Run("Valid submission creates override", func(t *testing.T) {
		f := newInteractionFixture(nil)

		errs := f.uc.HandleViewSubmission(context.Background(), &model.ViewSubmission{
			UserID:         "USUB",
			CallbackID:     model.OverrideModalCallbackID,
			Metadata:       metadata,
			SelectedUserID: "43",
			Duration:       " 30m ",
		})
		gt.Equal(t, 0, len(errs))

		calls := f.dir.CreateOverrideCalls()
		gt.Equal(t, 1, len(calls))
		gt.Equal(t, "43", calls[0].UserID.String())
		gt.Equal(t, 30*time.Minute, calls[0].End.Sub(calls[0].Start))

		posted := f.msg.PostMessageCalls()
		gt.Equal(t, 1, len(posted))
		gt.Equal(t, types.ChannelID("C001"), posted[0].ChannelID)
		gt.S(t, posted[0].Text).Contains("*Bob* (30m)")
		gt.S(t, posted[0].Text).Contains("<@UREQ>")
	})
}

func TestHandleViewClosed(t *testing.T) {
	f := newInteractionFixture(nil)
	f.uc.HandleViewClosed(context.Background(), &model.ViewClosed{UserID: "UREQ", CallbackID: model.OverrideModalCallbackID})

	gt.Equal(t, 1, len(f.queue.SubmitCalls()))
	gt.Equal(t, 0, len(f.dir.CreateOverrideCalls()))
	gt.Equal(t, 0, len(f.msg.PostMessageCalls()))
}

func TestLoadOptions(t *testing.T) {
	t.Run("Filters case-insensitively", func(t *testing.T) {
		f := newInteractionFixture(nil)

		options := f.uc.LoadOptions(context.Background(), &model.BlockSuggestion{
			ActionID: model.UserSelectActionID,
			Query:    "BOB",
		})
		gt.Equal(t, 1, len(options))
		gt.Equal(t, "Bob (bob@example.com)", options[0].Label)
		gt.Equal(t, "43", options[0].Value)
	})

	t.Run("Empty query returns everyone", func(t *testing.T) {
		f := newInteractionFixture(nil)

		options := f.uc.LoadOptions(context.Background(), &model.BlockSuggestion{ActionID: model.UserSelectActionID})
		gt.Equal(t, 2, len(options))
	})

	t.Run("Capped at max options", func(t *testing.T) {
		f := newInteractionFixture(nil)
		f.dir.ListUsersFunc = func(ctx context.Context) ([]*model.DirectoryUser, error) {
			users := make([]*model.DirectoryUser, 150)
			for i := range users {
				users[i] = &model.DirectoryUser{
					ID:    types.DirectoryUserID(fmt.Sprint(i)),
					Name:  fmt.Sprintf("User %d", i),
					Email: fmt.Sprintf("user%d@example.com", i),
				}
			}
			return users, nil
		}

		options := f.uc.LoadOptions(context.Background(), &model.BlockSuggestion{ActionID: model.UserSelectActionID})
		gt.Equal(t, 100, len(options))
	})

	t.Run("Directory failure yields error option", func(t *testing.T) {
		f := newInteractionFixture(nil)
		f.dir.ListUsersFunc = func(ctx context.Context) ([]*model.DirectoryUser, error) {
			return nil, errors.New("rootly down")
		}

		options := f.uc.LoadOptions(context.Background(), &model.BlockSuggestion{ActionID: model.UserSelectActionID})
		gt.Equal(t, 1, len(options))
		gt.Equal(t, "Error loading users - please try again", options[0].Label)
		gt.Equal(t, model.ErrorOptionValue, options[0].Value)
	})
}
