package config

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/oncall-override/pkg/domain/types"
	"github.com/secmon-lab/oncall-override/pkg/service/rootly"
	"github.com/urfave/cli/v3"
)

// Rootly holds Rootly API configuration
type Rootly struct {
	APIKey     string `masq:"secret"`
	BaseURL    string
	ScheduleID string
	RateLimit  float64
	RateBurst  int
	Timeout    time.Duration
}

// Flags returns CLI flags for Rootly configuration
func (r *Rootly) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "rootly-api-key",
			Usage:       "Rootly API key",
			Category:    "Rootly",
			Sources:     cli.EnvVars("OVERRIDE_ROOTLY_API_KEY", "ROOTLY_API_KEY"),
			Destination: &r.APIKey,
		},
		&cli.StringFlag{
			Name:        "rootly-base-url",
			Usage:       "Rootly API base URL",
			Category:    "Rootly",
			Value:       rootly.DefaultBaseURL,
			Sources:     cli.EnvVars("OVERRIDE_ROOTLY_BASE_URL"),
			Destination: &r.BaseURL,
		},
		&cli.StringFlag{
			Name:        "rootly-schedule-id",
			Usage:       "Rootly schedule that receives override shifts",
			Category:    "Rootly",
			Sources:     cli.EnvVars("OVERRIDE_ROOTLY_SCHEDULE_ID", "ROOTLY_SCHEDULE_ID"),
			Destination: &r.ScheduleID,
		},
		&cli.FloatFlag{
			Name:        "rootly-rate-limit",
			Usage:       "Maximum Rootly API requests per second",
			Category:    "Rootly",
			Value:       5,
			Sources:     cli.EnvVars("OVERRIDE_ROOTLY_RATE_LIMIT"),
			Destination: &r.RateLimit,
		},
		&cli.IntFlag{
			Name:        "rootly-rate-burst",
			Usage:       "Burst size of the Rootly API rate limiter",
			Category:    "Rootly",
			Value:       5,
			Sources:     cli.EnvVars("OVERRIDE_ROOTLY_RATE_BURST"),
			Destination: &r.RateBurst,
		},
		&cli.DurationFlag{
			Name:        "rootly-timeout",
			Usage:       "Timeout of a single Rootly API request",
			Category:    "Rootly",
			Value:       30 * time.Second,
			Sources:     cli.EnvVars("OVERRIDE_ROOTLY_TIMEOUT"),
			Destination: &r.Timeout,
		},
	}
}

// Validate validates the Rootly configuration. A missing API key or
// schedule ID is reported to the requester when an override is attempted,
// so only the shape of the remaining values is checked here.
func (r *Rootly) Validate() error {
	if r.BaseURL == "" {
		return goerr.New("Rootly base URL is required")
	}
	if r.RateLimit <= 0 || r.RateBurst <= 0 {
		return goerr.New("Rootly rate limit and burst must be positive",
			goerr.V("rate_limit", r.RateLimit),
			goerr.V("rate_burst", r.RateBurst))
	}
	return nil
}

// Configure creates the Rootly client
func (r *Rootly) Configure() *rootly.Client {
	opts := []rootly.Option{
		rootly.WithBaseURL(r.BaseURL),
		rootly.WithRateLimit(r.RateLimit, r.RateBurst),
	}
	if r.Timeout > 0 {
		opts = append(opts, rootly.WithHTTPClient(&http.Client{Timeout: r.Timeout}))
	}
	return rootly.New(r.APIKey, opts...)
}

// Schedule returns the configured schedule ID
func (r *Rootly) Schedule() types.ScheduleID {
	return types.ScheduleID(r.ScheduleID)
}

// LogValue returns structured log value
func (r Rootly) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("has_api_key", r.APIKey != ""),
		slog.String("base_url", r.BaseURL),
		slog.String("schedule_id", r.ScheduleID),
		slog.Float64("rate_limit", r.RateLimit),
		slog.Int("rate_burst", r.RateBurst),
		slog.Duration("timeout", r.Timeout),
	)
}
