package model

import (
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
)

const (
	DefaultCommand    = "/grab-oncall"
	DefaultMaxOptions = 100
)

// Policy holds operator-tunable behavior loaded from an optional YAML file
type Policy struct {
	Command     string `yaml:"command"`
	MaxDuration string `yaml:"max_duration,omitempty"`
	MaxOptions  int    `yaml:"max_options,omitempty"`
}

// DefaultPolicy returns the policy used when no file is given
func DefaultPolicy() *Policy {
	return &Policy{
		Command:    DefaultCommand,
		MaxOptions: DefaultMaxOptions,
	}
}

// Validate validates the policy and fills defaults for zero values
func (p *Policy) Validate() error {
	if p.Command == "" {
		p.Command = DefaultCommand
	}
	if !strings.HasPrefix(p.Command, "/") {
		return goerr.New("command must start with '/'", goerr.V("command", p.Command))
	}

	if p.MaxOptions == 0 {
		p.MaxOptions = DefaultMaxOptions
	}
	// Slack rejects more than 100 options in one response
	if p.MaxOptions < 0 || p.MaxOptions > 100 {
		return goerr.New("max_options must be between 1 and 100", goerr.V("max_options", p.MaxOptions))
	}

	if p.MaxDuration != "" {
		if _, err := ParseDuration(p.MaxDuration); err != nil {
			return goerr.Wrap(err, "invalid max_duration", goerr.V("max_duration", p.MaxDuration))
		}
	}

	return nil
}

// CheckDuration returns ErrDurationTooLong when a window of length d
// starting at start would end after the configured maximum.
func (p *Policy) CheckDuration(d Duration, start time.Time) error {
	if p == nil || p.MaxDuration == "" {
		return nil
	}
	limit, err := ParseDuration(p.MaxDuration)
	if err != nil {
		return goerr.Wrap(err, "invalid max_duration in policy")
	}
	if d.EndFrom(start).After(limit.EndFrom(start)) {
		return goerr.Wrap(ErrDurationTooLong, "override is too long",
			goerr.V("duration", d.String()),
			goerr.V("max_duration", limit.String()),
			goerr.T(ErrTagInvalidDuration))
	}
	return nil
}
