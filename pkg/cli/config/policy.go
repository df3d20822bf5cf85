package config

import (
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/oncall-override/pkg/domain/model"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Policy holds the path of the optional policy file
type Policy struct {
	Path string
}

// Flags returns CLI flags for Policy configuration
func (p *Policy) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "policy",
			Usage:       "Path to a YAML policy file (command name, max_duration, max_options)",
			Category:    "Policy",
			Sources:     cli.EnvVars("OVERRIDE_POLICY"),
			Destination: &p.Path,
		},
	}
}

// Configure loads the policy file, or returns the default policy when no
// path is given
func (p *Policy) Configure() (*model.Policy, error) {
	if p.Path == "" {
		return model.DefaultPolicy(), nil
	}
	return LoadPolicyFromFile(p.Path)
}

// LogValue returns structured log value
func (p Policy) LogValue() slog.Value {
	return slog.GroupValue(slog.String("path", p.Path))
}

// LoadPolicyFromFile loads a policy from YAML file
func LoadPolicyFromFile(path string) (*model.Policy, error) {
	if path == "" {
		return nil, goerr.New("policy file path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "policy file not found",
				goerr.V("path", path))
		}
		return nil, goerr.Wrap(err, "failed to read policy file",
			goerr.V("path", path))
	}

	var policy model.Policy
	if err := yaml.Unmarshal(data, &policy); err != nil {
		return nil, goerr.Wrap(err, "failed to parse YAML policy",
			goerr.V("path", path))
	}

	if err := policy.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid policy",
			goerr.V("path", path))
	}

	return &policy, nil
}
