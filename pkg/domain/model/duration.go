package model

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
)

// DurationUnit is the unit suffix of a duration string
type DurationUnit string

const (
	DurationUnitMinute DurationUnit = "m"
	DurationUnitHour   DurationUnit = "h"
	DurationUnitDay    DurationUnit = "d"
)

var durationPattern = regexp.MustCompile(`^(\d+)([mhd])$`)

// maxAmount keeps the window length within a time.Duration for every unit
var maxAmount = map[DurationUnit]int{
	DurationUnitMinute: int(math.MaxInt64 / int64(time.Minute)),
	DurationUnitHour:   int(math.MaxInt64 / int64(time.Hour)),
	DurationUnitDay:    int(math.MaxInt64 / int64(24*time.Hour)),
}

// Duration is a parsed override length such as "30m", "2h" or "1d"
type Duration struct {
	Amount int
	Unit   DurationUnit
}

// ParseDuration parses a duration string. Surrounding whitespace is ignored.
func ParseDuration(s string) (Duration, error) {
	trimmed := strings.TrimSpace(s)
	m := durationPattern.FindStringSubmatch(trimmed)
	if m == nil {
		return Duration{}, goerr.Wrap(ErrInvalidDurationFormat, "failed to parse duration",
			goerr.V("duration", s),
			goerr.T(ErrTagInvalidDuration))
	}

	amount, err := strconv.Atoi(m[1])
	if err != nil {
		return Duration{}, goerr.Wrap(ErrDurationTooLong, "duration amount out of range",
			goerr.V("duration", s),
			goerr.T(ErrTagInvalidDuration))
	}
	if amount <= 0 {
		return Duration{}, goerr.Wrap(ErrNonPositiveDuration, "failed to parse duration",
			goerr.V("duration", s),
			goerr.T(ErrTagInvalidDuration))
	}

	unit := DurationUnit(m[2])
	if amount > maxAmount[unit] {
		return Duration{}, goerr.Wrap(ErrDurationTooLong, "duration amount out of range",
			goerr.V("duration", s),
			goerr.V("max_amount", maxAmount[unit]),
			goerr.T(ErrTagInvalidDuration))
	}

	return Duration{Amount: amount, Unit: unit}, nil
}

// String returns the canonical form, e.g. "2h"
func (d Duration) String() string {
	return fmt.Sprintf("%d%s", d.Amount, d.Unit)
}

// EndFrom returns the end of a window of this length starting at start.
// Days are calendar days.
func (d Duration) EndFrom(start time.Time) time.Time {
	switch d.Unit {
	case DurationUnitMinute:
		return start.Add(time.Duration(d.Amount) * time.Minute)
	case DurationUnitHour:
		return start.Add(time.Duration(d.Amount) * time.Hour)
	case DurationUnitDay:
		return start.AddDate(0, 0, d.Amount)
	default:
		return start
	}
}

// TimeWindow is the period an override covers
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

// NewTimeWindow computes the window [start, start+d)
func NewTimeWindow(start time.Time, d Duration) (*TimeWindow, error) {
	w := &TimeWindow{Start: start, End: d.EndFrom(start)}
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return w, nil
}

// Validate checks that the window ends after it starts
func (w *TimeWindow) Validate() error {
	if !w.End.After(w.Start) {
		return goerr.New("window end must be after start",
			goerr.V("start", w.Start),
			goerr.V("end", w.End),
			goerr.T(ErrTagInvalidDuration))
	}
	return nil
}

// Length returns the wall-clock length of the window
func (w *TimeWindow) Length() time.Duration {
	return w.End.Sub(w.Start)
}
