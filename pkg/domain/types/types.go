package types

import (
	"github.com/google/uuid"
)

// SlackUserID represents a Slack user identifier
type SlackUserID string

// String returns the string representation
func (id SlackUserID) String() string {
	return string(id)
}

// ChannelID represents a Slack channel identifier
type ChannelID string

// String returns the string representation
func (id ChannelID) String() string {
	return string(id)
}

// TriggerID represents a Slack trigger identifier used to open a modal
type TriggerID string

// String returns the string representation
func (id TriggerID) String() string {
	return string(id)
}

// DirectoryUserID represents a Rootly user identifier
type DirectoryUserID string

// String returns the string representation
func (id DirectoryUserID) String() string {
	return string(id)
}

// ScheduleID represents a Rootly schedule identifier
type ScheduleID string

// String returns the string representation
func (id ScheduleID) String() string {
	return string(id)
}

// OverrideID represents an override shift identifier returned by Rootly
type OverrideID string

// String returns the string representation
func (id OverrideID) String() string {
	return string(id)
}

// TaskID represents a background task identifier
type TaskID string

// String returns the string representation
func (id TaskID) String() string {
	return string(id)
}

// NewTaskID creates a new TaskID
func NewTaskID() TaskID {
	return TaskID(uuid.New().String())
}
