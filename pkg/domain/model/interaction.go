package model

import (
	"github.com/secmon-lab/oncall-override/pkg/domain/types"
)

// InteractionKind is the Slack interaction payload type
type InteractionKind string

const (
	InteractionKindViewSubmission  InteractionKind = "view_submission"
	InteractionKindViewClosed      InteractionKind = "view_closed"
	InteractionKindBlockSuggestion InteractionKind = "block_suggestion"
)

// Interaction is one of ViewSubmission, ViewClosed or BlockSuggestion.
// Values are produced by the controller after decoding the payload once.
type Interaction interface {
	Kind() InteractionKind
	isInteraction()
}

// ModalMetadata is carried through the modal's private_metadata
type ModalMetadata struct {
	ChannelID        types.ChannelID   `json:"channel_id"`
	RequestingUserID types.SlackUserID `json:"requesting_user_id"`
	ResponseURL      string            `json:"response_url,omitempty"`
}

// ViewSubmission is a submitted override modal
type ViewSubmission struct {
	UserID         types.SlackUserID
	CallbackID     string
	Metadata       ModalMetadata
	SelectedUserID string
	Duration       string
}

// ViewClosed is a cancelled override modal
type ViewClosed struct {
	UserID     types.SlackUserID
	CallbackID string
}

// BlockSuggestion is a request for external select options
type BlockSuggestion struct {
	UserID   types.SlackUserID
	ActionID string
	Query    string
}

func (ViewSubmission) Kind() InteractionKind  { return InteractionKindViewSubmission }
func (ViewClosed) Kind() InteractionKind      { return InteractionKindViewClosed }
func (BlockSuggestion) Kind() InteractionKind { return InteractionKindBlockSuggestion }

func (ViewSubmission) isInteraction()  {}
func (ViewClosed) isInteraction()      {}
func (BlockSuggestion) isInteraction() {}

// Block and action IDs of the override modal
const (
	OverrideModalCallbackID = "oncall_override_modal_submit"
	UserBlockID             = "user_block"
	UserSelectActionID      = "user_select"
	DurationBlockID         = "duration_block"
	DurationInputActionID   = "duration_input"
)

// FieldErrors maps modal block IDs to validation messages
type FieldErrors map[string]string
