package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/oncall-override/pkg/domain/types"
)

// OverrideTarget identifies who should take the on-call shift. Exactly one
// of the fields is set: a Slack mention from a command, or a Rootly user
// picked in the modal.
type OverrideTarget struct {
	SlackUserID     types.SlackUserID
	DirectoryUserID types.DirectoryUserID
}

// OverrideRequest is a request to create an override shift
type OverrideRequest struct {
	Target           OverrideTarget
	Duration         string
	RequestingUserID types.SlackUserID
	ChannelID        types.ChannelID
}

// Validate checks that the request can be processed
func (r *OverrideRequest) Validate() error {
	if (r.Target.SlackUserID == "") == (r.Target.DirectoryUserID == "") {
		return goerr.New("exactly one override target is required",
			goerr.V("slack_user_id", r.Target.SlackUserID),
			goerr.V("directory_user_id", r.Target.DirectoryUserID),
			goerr.T(ErrTagBadRequest))
	}
	if r.RequestingUserID == "" {
		return goerr.New("requesting user is required", goerr.T(ErrTagBadRequest))
	}
	if r.ChannelID == "" {
		return goerr.New("channel is required", goerr.T(ErrTagBadRequest))
	}
	return nil
}

// Override is a created override shift
type Override struct {
	ID         types.OverrideID
	ScheduleID types.ScheduleID
	User       *DirectoryUser
	Duration   Duration
	Window     TimeWindow
}
