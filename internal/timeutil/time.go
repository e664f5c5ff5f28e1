// Package timeutil converts between the store's date-time representation and
// the unix epoch seconds the Hugin network and API speak.
package timeutil

import (
	"strconv"
	"time"
)

// UnixToDateTime parses a raw unix-seconds query value into a UTC time.
// Anything that is not a finite integer (missing, garbage, overflow) yields
// nil, which downstream filters read as "no constraint".
func UnixToDateTime(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	seconds, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	t := time.Unix(seconds, 0).UTC()
	return &t
}

// DateTimeToUnix converts a stored date-time into unix epoch seconds.
func DateTimeToUnix(t time.Time) int64 {
	return t.Unix()
}
