package slack

import (
	"context"
	"encoding/json"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/oncall-override/pkg/domain/model"
	"github.com/secmon-lab/oncall-override/pkg/domain/types"
	slackblocks "github.com/secmon-lab/oncall-override/pkg/service/slack"
	"github.com/slack-go/slack"
)

// DecodeInteraction decodes an interactivity payload into one of the
// interaction types the service handles
func DecodeInteraction(payload []byte) (model.Interaction, error) {
	var callback slack.InteractionCallback
	if err := json.Unmarshal(payload, &callback); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal interaction payload", goerr.T(model.ErrTagBadRequest))
	}

	userID := types.SlackUserID(callback.User.ID)

	switch callback.Type {
	case slack.InteractionTypeViewSubmission:
		sub := &model.ViewSubmission{
			UserID:     userID,
			CallbackID: callback.View.CallbackID,
		}
		// Only the override modal carries ModalMetadata
		if sub.CallbackID != model.OverrideModalCallbackID {
			return sub, nil
		}
		metadata, err := slackblocks.ParseModalMetadata(callback.View.PrivateMetadata)
		if err != nil {
			return nil, err
		}
		sub.Metadata = metadata
		if callback.View.State != nil {
			values := callback.View.State.Values
			if action, ok := values[model.UserBlockID][model.UserSelectActionID]; ok {
				sub.SelectedUserID = action.SelectedOption.Value
			}
			if action, ok := values[model.DurationBlockID][model.DurationInputActionID]; ok {
				sub.Duration = action.Value
			}
		}
		return sub, nil

	case slack.InteractionTypeViewClosed:
		return &model.ViewClosed{
			UserID:     userID,
			CallbackID: callback.View.CallbackID,
		}, nil

	case slack.InteractionTypeBlockSuggestion:
		return &model.BlockSuggestion{
			UserID:   userID,
			ActionID: callback.ActionID,
			Query:    callback.Value,
		}, nil

	default:
		return nil, goerr.Wrap(model.ErrUnknownInteraction, "unsupported interaction type",
			goerr.V("type", callback.Type),
			goerr.T(model.ErrTagBadRequest))
	}
}

// withRequester records who triggered the request for logs and error reports
func withRequester(ctx context.Context, userID types.SlackUserID, channelID types.ChannelID) context.Context {
	reqCtx, ok := model.GetRequestContext(ctx)
	if !ok {
		return model.WithRequestContext(ctx, &model.RequestContext{SlackUserID: userID, ChannelID: channelID})
	}
	updated := *reqCtx
	updated.SlackUserID = userID
	if channelID != "" {
		updated.ChannelID = channelID
	}
	return model.WithRequestContext(ctx, &updated)
}
