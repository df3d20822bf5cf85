package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/oncall-override/pkg/domain/interfaces"
	"github.com/secmon-lab/oncall-override/pkg/domain/model"
	"github.com/secmon-lab/oncall-override/pkg/domain/types"
	slackblocks "github.com/secmon-lab/oncall-override/pkg/service/slack"
)

// Validation messages shown inline in the override modal
const (
	msgSelectUser       = "Please select a valid Rootly user"
	msgEnterDuration    = "Please enter a duration"
	msgInvalidFormat    = "Invalid format. Use: 30m, 2h, or 1d"
	msgPositiveDuration = "Duration must be a positive number"
	msgDurationTooLong  = "Duration exceeds the allowed maximum"
	msgErrorOption      = "Error loading users - please try again"
)

// SlackInteraction implements interfaces.SlackInteraction
type SlackInteraction struct {
	overrideUC   *OverrideUseCase
	directory    interfaces.Directory
	messenger    interfaces.Messenger
	queue        interfaces.TaskQueue
	policy       *model.Policy
	blockBuilder *slackblocks.BlockBuilder
	now          func() time.Time
}

var _ interfaces.SlackInteraction = (*SlackInteraction)(nil)

// NewSlackInteraction creates a new SlackInteraction instance
func NewSlackInteraction(overrideUC *OverrideUseCase, directory interfaces.Directory, messenger interfaces.Messenger, queue interfaces.TaskQueue, policy *model.Policy) *SlackInteraction {
	if policy == nil {
		policy = model.DefaultPolicy()
	}
	return &SlackInteraction{
		overrideUC:   overrideUC,
		directory:    directory,
		messenger:    messenger,
		queue:        queue,
		policy:       policy,
		blockBuilder: slackblocks.NewBlockBuilder(),
		now:          time.Now,
	}
}

// HandleCommand handles the slash command. "<duration> <@user>" creates the
// override directly, anything else opens the modal. Both run in background.
func (s *SlackInteraction) HandleCommand(ctx context.Context, cmd *model.SlashCommand) error {
	logger := ctxlog.From(ctx)

	if cmd.Command != s.policy.Command {
		return goerr.New("unknown slash command",
			goerr.V("command", cmd.Command),
			goerr.V("expected", s.policy.Command),
			goerr.T(model.ErrTagBadRequest))
	}

	if direct, ok := model.ParseDirectOverride(cmd.Text); ok {
		logger.Info("Direct override requested",
			"requester", cmd.UserID,
			"target", direct.UserID,
			"duration", direct.Duration,
		)
		req := &model.OverrideRequest{
			Target:           model.OverrideTarget{SlackUserID: direct.UserID},
			Duration:         direct.Duration,
			RequestingUserID: cmd.UserID,
			ChannelID:        cmd.ChannelID,
		}
		s.queue.Submit(ctx, "direct-override", func(ctx context.Context) error {
			s.overrideUC.Process(ctx, req, SourceCommand)
			return nil
		})
		return nil
	}

	logger.Info("Opening override modal", "requester", cmd.UserID, "text", cmd.Text)
	s.queue.Submit(ctx, "open-modal", func(ctx context.Context) error {
		s.openModal(ctx, cmd)
		return nil
	})
	return nil
}

func (s *SlackInteraction) openModal(ctx context.Context, cmd *model.SlashCommand) {
	metadata := model.ModalMetadata{
		ChannelID:        cmd.ChannelID,
		RequestingUserID: cmd.UserID,
		ResponseURL:      cmd.ResponseURL,
	}

	view, err := s.blockBuilder.BuildOverrideModal(metadata, s.requesterOption(ctx, cmd.UserID), s.now())
	if err == nil {
		err = s.messenger.OpenModal(ctx, cmd.TriggerID, view)
	}
	if err != nil {
		ctxlog.From(ctx).Error("Failed to open override modal", "error", err, "requester", cmd.UserID)
		notifyFailure(ctx, s.messenger, cmd.ChannelID, cmd.UserID, s.blockBuilder.BuildModalFailedText(userMessage(err)))
	}
}

// requesterOption finds the requester in Rootly so the modal can pre-select
// them. Any failure just leaves the select empty.
func (s *SlackInteraction) requesterOption(ctx context.Context, userID types.SlackUserID) *model.SelectOption {
	profile := s.messenger.GetUserProfile(ctx, userID)
	if profile == nil {
		return nil
	}

	user, err := s.directory.FindUserByEmail(ctx, profile.Email)
	if err != nil {
		ctxlog.From(ctx).Info("Could not pre-populate current user", "error", err, "userID", userID)
		return nil
	}
	if user == nil {
		return nil
	}

	option := model.NewSelectOption(user)
	return &option
}

// HandleViewSubmission validates the modal. Field errors are returned for
// inline display; otherwise the override is created in background.
func (s *SlackInteraction) HandleViewSubmission(ctx context.Context, sub *model.ViewSubmission) model.FieldErrors {
	logger := ctxlog.From(ctx)

	if sub.CallbackID != model.OverrideModalCallbackID {
		logger.Warn("Ignoring submission of unknown view", "callbackID", sub.CallbackID)
		return nil
	}

	fieldErrors := s.validateSubmission(sub)
	if len(fieldErrors) > 0 {
		logger.Info("Override modal submission rejected", "errors", fieldErrors, "userID", sub.UserID)
		return fieldErrors
	}

	requester := sub.Metadata.RequestingUserID
	if requester == "" {
		requester = sub.UserID
	}
	req := &model.OverrideRequest{
		Target:           model.OverrideTarget{DirectoryUserID: types.DirectoryUserID(sub.SelectedUserID)},
		Duration:         strings.TrimSpace(sub.Duration),
		RequestingUserID: requester,
		ChannelID:        sub.Metadata.ChannelID,
	}

	s.queue.Submit(ctx, "modal-override", func(ctx context.Context) error {
		s.overrideUC.Process(ctx, req, SourceModal)
		return nil
	})
	return nil
}

func (s *SlackInteraction) validateSubmission(sub *model.ViewSubmission) model.FieldErrors {
	fieldErrors := model.FieldErrors{}

	if sub.SelectedUserID == "" || sub.SelectedUserID == model.ErrorOptionValue {
		fieldErrors[model.UserBlockID] = msgSelectUser
	}

	if msg := s.validateDuration(sub.Duration); msg != "" {
		fieldErrors[model.DurationBlockID] = msg
	}

	return fieldErrors
}

func (s *SlackInteraction) validateDuration(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return msgEnterDuration
	}

	duration, err := model.ParseDuration(raw)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrNonPositiveDuration):
			return msgPositiveDuration
		case errors.Is(err, model.ErrDurationTooLong):
			return msgDurationTooLong
		}
		return msgInvalidFormat
	}

	if err := s.policy.CheckDuration(duration, s.now()); err != nil {
		return fmt.Sprintf("Duration must not exceed %s", s.policy.MaxDuration)
	}
	return ""
}

// HandleViewClosed records that the modal was cancelled
func (s *SlackInteraction) HandleViewClosed(ctx context.Context, closed *model.ViewClosed) {
	s.queue.Submit(ctx, "modal-cancelled", func(ctx context.Context) error {
		ctxlog.From(ctx).Info("Override modal cancelled",
			"userID", closed.UserID,
			"callbackID", closed.CallbackID,
		)
		return nil
	})
}

// LoadOptions returns directory users matching the query for the external
// select. When the directory cannot be loaded a single error option is
// returned so the menu explains itself.
func (s *SlackInteraction) LoadOptions(ctx context.Context, suggestion *model.BlockSuggestion) []model.SelectOption {
	logger := ctxlog.From(ctx)

	if suggestion.ActionID != model.UserSelectActionID {
		logger.Warn("Options requested for unknown action", "actionID", suggestion.ActionID)
		return []model.SelectOption{}
	}

	users, err := s.directory.ListUsers(ctx)
	if err != nil {
		logger.Error("Failed to load directory users for options", "error", err)
		return []model.SelectOption{{Label: msgErrorOption, Value: model.ErrorOptionValue}}
	}

	options := make([]model.SelectOption, 0, min(len(users), s.policy.MaxOptions))
	for _, u := range users {
		if !u.Matches(suggestion.Query) {
			continue
		}
		options = append(options, model.NewSelectOption(u))
		if len(options) >= s.policy.MaxOptions {
			break
		}
	}

	logger.Debug("Loaded user options", "query", suggestion.Query, "count", len(options))
	return options
}
