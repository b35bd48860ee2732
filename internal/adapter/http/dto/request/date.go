package request

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidDate = errors.New("invalid date")

const dateLayout = "2006-01-02"

// ParseDate accepts a calendar date (2006-01-02) or an RFC 3339 timestamp.
// An empty value gives the zero time.
func ParseDate(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(dateLayout, v); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, ErrInvalidDate
}
