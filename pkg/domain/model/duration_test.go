package model_test

import (
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/oncall-override/pkg/domain/model"
)

func TestParseDuration(t *testing.T) {
	now := time.Date(2026, 3, 7, 12, 0, 0, 0, time.UTC)

	t.Run("valid durations", func(t *testing.T) {
		tests := []struct {
			input    string
			expected time.Duration
		}{
			{"30m", 30 * time.Minute},
			{"2h", 2 * time.Hour},
			{"1d", 24 * time.Hour},
			{" 45m ", 45 * time.Minute},
		}

		for _, tt := range tests {
			t.Run(tt.input, func(t *testing.T) {
				d, err := model.ParseDuration(tt.input)
				gt.NoError(t, err).Required()

				w, err := model.NewTimeWindow(now, d)
				gt.NoError(t, err).Required()
				gt.Equal(t, w.Start, now)
				gt.Equal(t, w.Length(), tt.expected)
			})
		}
	})

	t.Run("invalid durations", func(t *testing.T) {
		for _, input := range []string{"0m", "-5h", "abc", "5x", "", "1.5h", "h", "99999999999999999999m"} {
			t.Run(input, func(t *testing.T) {
				_, err := model.ParseDuration(input)
				gt.Error(t, err)
				gt.True(t, goerr.HasTag(err, model.ErrTagInvalidDuration))
			})
		}
	})

	t.Run("zero amount is reported as non-positive", func(t *testing.T) {
		_, err := model.ParseDuration("0m")
		gt.True(t, errors.Is(err, model.ErrNonPositiveDuration))
	})

	t.Run("bad format is reported as format error", func(t *testing.T) {
		_, err := model.ParseDuration("5x")
		gt.True(t, errors.Is(err, model.ErrInvalidDurationFormat))
	})

	t.Run("amounts beyond the representable window are rejected", func(t *testing.T) {
		for _, input := range []string{"307445735m", "153722868m", "5124096h", "2562048h", "106752d", "99999999999999999999m"} {
			t.Run(input, func(t *testing.T) {
				_, err := model.ParseDuration(input)
				gt.Error(t, err)
				gt.True(t, goerr.HasTag(err, model.ErrTagInvalidDuration))
				gt.True(t, errors.Is(err, model.ErrDurationTooLong))
			})
		}
	})

	t.Run("largest amounts keep end equal to start plus amount", func(t *testing.T) {
		tests := []struct {
			input    string
			expected time.Duration
		}{
			{"153722867m", 153722867 * time.Minute},
			{"2562047h", 2562047 * time.Hour},
		}
		for _, tt := range tests {
			t.Run(tt.input, func(t *testing.T) {
				d, err := model.ParseDuration(tt.input)
				gt.NoError(t, err).Required()

				w, err := model.NewTimeWindow(now, d)
				gt.NoError(t, err).Required()
				gt.Equal(t, w.End, now.Add(tt.expected))
			})
		}

		d, err := model.ParseDuration("106751d")
		gt.NoError(t, err).Required()
		w, err := model.NewTimeWindow(now, d)
		gt.NoError(t, err).Required()
		gt.Equal(t, w.End, now.AddDate(0, 0, 106751))
	})

	t.Run("string form", func(t *testing.T) {
		d, err := model.ParseDuration("2h")
		gt.NoError(t, err)
		gt.Equal(t, d.String(), "2h")
	})
}

func TestTimeWindowDaysAreCalendarDays(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("timezone database not available")
	}
	// DST starts on 2026-03-08 in New York
	start := time.Date(2026, 3, 7, 12, 0, 0, 0, loc)
	d, err := model.ParseDuration("1d")
	gt.NoError(t, err).Required()

	w, err := model.NewTimeWindow(start, d)
	gt.NoError(t, err).Required()
	gt.Equal(t, w.End.Hour(), 12)
	gt.Equal(t, w.End.Day(), 8)
}
