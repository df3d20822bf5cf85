package slack

import (
	"encoding/json"
	"net/http"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/oncall-override/pkg/domain/interfaces"
	"github.com/secmon-lab/oncall-override/pkg/domain/model"
	"github.com/secmon-lab/oncall-override/pkg/domain/types"
	"github.com/secmon-lab/oncall-override/pkg/utils/apperr"
	"github.com/slack-go/slack"
)

// Handler handles Slack webhook endpoints. Signatures are verified by
// middleware before requests reach it.
type Handler struct {
	interactionUC interfaces.SlackInteraction
}

// NewHandler creates a new Slack handler
func NewHandler(interactionUC interfaces.SlackInteraction) *Handler {
	return &Handler{
		interactionUC: interactionUC,
	}
}

// HandleCommand handles slash command webhooks
func (h *Handler) HandleCommand(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	parsed, err := slack.SlashCommandParse(r)
	if err != nil {
		apperr.HandleHTTP(ctx, w, goerr.Wrap(err, "failed to parse slash command", goerr.T(model.ErrTagBadRequest)))
		return
	}

	cmd := &model.SlashCommand{
		Command:     parsed.Command,
		Text:        parsed.Text,
		UserID:      types.SlackUserID(parsed.UserID),
		ChannelID:   types.ChannelID(parsed.ChannelID),
		TriggerID:   types.TriggerID(parsed.TriggerID),
		ResponseURL: parsed.ResponseURL,
	}
	ctx = withRequester(ctx, cmd.UserID, cmd.ChannelID)

	ctxlog.From(ctx).Debug("Slash command received",
		"command", cmd.Command,
		"userID", cmd.UserID,
		"channelID", cmd.ChannelID,
	)

	if err := h.interactionUC.HandleCommand(ctx, cmd); err != nil {
		apperr.HandleHTTP(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// HandleInteraction handles interactivity webhooks: view submissions,
// closed views and external select option requests
func (h *Handler) HandleInteraction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		apperr.HandleHTTP(ctx, w, goerr.Wrap(err, "failed to parse form", goerr.T(model.ErrTagBadRequest)))
		return
	}

	payload := r.FormValue("payload")
	if payload == "" {
		apperr.HandleHTTP(ctx, w, goerr.New("payload not found", goerr.T(model.ErrTagBadRequest)))
		return
	}

	interaction, err := DecodeInteraction([]byte(payload))
	if err != nil {
		apperr.HandleHTTP(ctx, w, err)
		return
	}

	switch v := interaction.(type) {
	case *model.ViewSubmission:
		ctx = withRequester(ctx, v.UserID, v.Metadata.ChannelID)
		fieldErrors := h.interactionUC.HandleViewSubmission(ctx, v)
		if len(fieldErrors) > 0 {
			writeJSON(w, r, slack.NewErrorsViewSubmissionResponse(fieldErrors))
			return
		}
		w.WriteHeader(http.StatusOK)

	case *model.ViewClosed:
		ctx = withRequester(ctx, v.UserID, "")
		h.interactionUC.HandleViewClosed(ctx, v)
		w.WriteHeader(http.StatusOK)

	case *model.BlockSuggestion:
		options := h.interactionUC.LoadOptions(ctx, v)
		writeJSON(w, r, newOptionsResponse(options))

	default:
		apperr.HandleHTTP(ctx, w, goerr.Wrap(model.ErrUnknownInteraction, "unhandled interaction",
			goerr.V("kind", interaction.Kind())))
	}
}

// optionsResponse is the body Slack expects for block_suggestion requests
type optionsResponse struct {
	Options []*slack.OptionBlockObject `json:"options"`
}

func newOptionsResponse(options []model.SelectOption) *optionsResponse {
	resp := &optionsResponse{Options: make([]*slack.OptionBlockObject, 0, len(options))}
	for _, opt := range options {
		resp.Options = append(resp.Options, slack.NewOptionBlockObject(
			opt.Value,
			slack.NewTextBlockObject(slack.PlainTextType, opt.Label, false, false),
			nil,
		))
	}
	return resp
}

func writeJSON(w http.ResponseWriter, r *http.Request, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode response", "error", err)
	}
}
