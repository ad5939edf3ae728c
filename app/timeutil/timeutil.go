// Package timeutil parses episode timestamps and formats feed dates.
//
// Episode publication dates are written in one of three shapes, matched in
// this order:
//
//	2022-06-09 12:34:56 Europe/Berlin   (wall clock in a named IANA zone)
//	2022-06-09 12:34:56                 (wall clock, UTC)
//	2022-06-09                          (midnight, UTC)
package timeutil

import (
	"fmt"
	"math"
	"regexp"
	"time"
)

const (
	layoutDate     = "2006-01-02"
	layoutDateTime = "2006-01-02 15:04:05"
)

// Matches the zoned shape only; the zone part is everything after the second
// space and must look like an IANA identifier (e.g. "Europe/Berlin", "UTC").
var zonedPattern = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}) ([A-Za-z][A-Za-z0-9_+\-/]*)$`)

// ParseError reports a timestamp that matches none of the accepted shapes,
// has out-of-range components, or names an unknown zone.
type ParseError struct {
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("unparseable timestamp %q: %v", e.Text, e.Err)
	}
	return fmt.Sprintf("unparseable timestamp %q", e.Text)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse converts timestamp text into an absolute instant. The whole string
// must match one of the accepted shapes; trailing garbage is rejected.
func Parse(text string) (time.Time, error) {
	if m := zonedPattern.FindStringSubmatch(text); m != nil {
		loc, err := time.LoadLocation(m[2])
		if err != nil {
			return time.Time{}, &ParseError{Text: text, Err: err}
		}
		t, err := time.ParseInLocation(layoutDateTime, m[1], loc)
		if err != nil {
			return time.Time{}, &ParseError{Text: text, Err: err}
		}
		return t, nil
	}

	if t, err := time.ParseInLocation(layoutDateTime, text, time.UTC); err == nil {
		return t, nil
	}

	if t, err := time.ParseInLocation(layoutDate, text, time.UTC); err == nil {
		return t, nil
	}

	return time.Time{}, &ParseError{Text: text}
}

// FormatRFC822 renders an instant as an RFC 822/2822 date string for the
// feed's pubDate elements, e.g. "Thu, 09 Jun 2022 12:34:56 +0200".
func FormatRFC822(t time.Time) string {
	return t.Format(time.RFC1123Z)
}

// FormatDuration renders a duration in seconds as M:SS under one hour and
// H:MM:SS otherwise. Hours are unpadded. Input is rounded to the nearest
// whole second first.
func FormatDuration(seconds float64) string {
	total := int(math.Round(seconds))
	h := total / 3600
	m := total % 3600 / 60
	s := total % 60
	if h == 0 {
		return fmt.Sprintf("%d:%02d", m, s)
	}
	return fmt.Sprintf("%d:%02d:%02d", h, m, s)
}
