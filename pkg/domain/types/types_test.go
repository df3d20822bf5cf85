package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/oncall-override/pkg/domain/types"
)

func TestNewTaskID(t *testing.T) {
	a := types.NewTaskID()
	b := types.NewTaskID()

	gt.NotEqual(t, a, b)
	gt.Equal(t, 36, len(a.String()))
}

func TestIDString(t *testing.T) {
	tests := []struct {
		name     string
		value    interface{ String() string }
		expected string
	}{
		{"slack user", types.SlackUserID("U123"), "U123"},
		{"channel", types.ChannelID("C123"), "C123"},
		{"directory user", types.DirectoryUserID("42"), "42"},
		{"schedule", types.ScheduleID("sched-1"), "sched-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.value.String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}
