// Package calendar normalizes dates to local-calendar day keys and does the
// day arithmetic the rest of the app is built on. Keys are always formatted
// in the caller's location, never UTC, so a session logged at 23:30 stays on
// the day it happened.
package calendar

import (
	"fmt"
	"time"
)

// Key is a calendar date in the user's local timezone, formatted YYYY-MM-DD.
type Key string

const keyLayout = "2006-01-02"

// KeyOf formats t as a day key in t's own location.
func KeyOf(t time.Time) Key {
	return Key(t.Format(keyLayout))
}

// Parse returns midnight of the key's date in loc.
func Parse(k Key, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(keyLayout, string(k), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse day key %q: %w", k, err)
	}
	return t, nil
}

// MustParse is Parse for keys produced by this package.
func MustParse(k Key, loc *time.Location) time.Time {
	t, err := Parse(k, loc)
	if err != nil {
		panic(err)
	}
	return t
}

// WeekStart returns the Monday on or before k.
func WeekStart(k Key, loc *time.Location) (Key, error) {
	t, err := Parse(k, loc)
	if err != nil {
		return "", err
	}
	diff := (int(t.Weekday()) + 6) % 7
	return KeyOf(t.AddDate(0, 0, -diff)), nil
}

// AddDays shifts k by n calendar days, handling month and year rollover.
func AddDays(k Key, n int, loc *time.Location) (Key, error) {
	t, err := Parse(k, loc)
	if err != nil {
		return "", err
	}
	return KeyOf(t.AddDate(0, 0, n)), nil
}

// MinutesSinceMidnight is the wall-clock minute of day for t.
func MinutesSinceMidnight(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
