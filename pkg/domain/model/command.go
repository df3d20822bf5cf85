package model

import (
	"regexp"
	"strings"

	"github.com/secmon-lab/oncall-override/pkg/domain/types"
)

// SlashCommand is a decoded Slack slash command invocation
type SlashCommand struct {
	Command     string
	Text        string
	UserID      types.SlackUserID
	ChannelID   types.ChannelID
	TriggerID   types.TriggerID
	ResponseURL string
}

// DirectOverride is the parsed "<duration> <@mention>" form of command text
type DirectOverride struct {
	Duration string
	UserID   types.SlackUserID
}

var directOverridePattern = regexp.MustCompile(`^(\S+)\s+<@([A-Za-z0-9]+)(?:\|[^>]*)?>$`)

// ParseDirectOverride returns the duration and mentioned user when the text
// has the "<duration> <@mention>" shape. The duration itself is validated
// later, so "0m <@U1>" still parses here.
func ParseDirectOverride(text string) (*DirectOverride, bool) {
	m := directOverridePattern.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return nil, false
	}
	return &DirectOverride{
		Duration: m[1],
		UserID:   types.SlackUserID(m[2]),
	}, true
}
