// Package timeutil provides utility functions for reading times typed by
// users
package timeutil

import (
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"

	"github.com/panasi/panasi/internal/apperr"
)

var (
	errEmptyTime = &apperr.Error{
		Message: "no time given",
	}

	errUnparsableTime = &apperr.Error{
		Message: "could not understand the time %q",
	}

	errFutureTime = &apperr.Error{
		Message: "the time %q is in the future",
	}
)

// FromStr parses an absolute or relative time such as "10 minutes ago",
// "10分前" or "08:30" against now. Times after now are rejected.
func FromStr(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errEmptyTime
	}

	cfg := &dateparser.Configuration{
		CurrentTime: now,
	}

	dt, err := dateparser.Parse(cfg, s)
	if err != nil {
		return time.Time{}, errUnparsableTime.Fmt(s).Wrap(err)
	}

	if dt.Time.After(now) {
		return time.Time{}, errFutureTime.Fmt(s)
	}

	return dt.Time, nil
}
