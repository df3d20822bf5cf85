package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Server holds server configuration
type Server struct {
	Addr      string
	RateLimit float64
	RateBurst int
}

// Flags returns CLI flags for Server configuration
func (s *Server) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Server address",
			Category:    "Server",
			Value:       "localhost:8080",
			Sources:     cli.EnvVars("OVERRIDE_ADDR"),
			Destination: &s.Addr,
		},
		&cli.FloatFlag{
			Name:        "rate-limit",
			Usage:       "Requests per second accepted on the Slack webhook routes",
			Category:    "Server",
			Value:       20,
			Sources:     cli.EnvVars("OVERRIDE_RATE_LIMIT"),
			Destination: &s.RateLimit,
		},
		&cli.IntFlag{
			Name:        "rate-burst",
			Usage:       "Burst size of the webhook rate limiter",
			Category:    "Server",
			Value:       40,
			Sources:     cli.EnvVars("OVERRIDE_RATE_BURST"),
			Destination: &s.RateBurst,
		},
	}
}

// Validate validates the server configuration
func (s *Server) Validate() error {
	if s.Addr == "" {
		return goerr.New("server address is required")
	}
	if s.RateLimit <= 0 || s.RateBurst <= 0 {
		return goerr.New("rate limit and burst must be positive",
			goerr.V("rate_limit", s.RateLimit),
			goerr.V("rate_burst", s.RateBurst))
	}
	return nil
}

// LogValue returns structured log value
func (s Server) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("addr", s.Addr),
		slog.Float64("rate_limit", s.RateLimit),
		slog.Int("rate_burst", s.RateBurst),
	)
}
