// Package chromium reads the artifact stores of Chromium-family browser
// profiles: the History and Cookies SQLite databases and the Bookmarks JSON
// document.
package chromium

import (
	"strconv"
	"strings"
	"time"
)

// epochDelta is the offset in seconds between the Chromium epoch
// (1601-01-01T00:00:00Z) and the Unix epoch. Chromium stores timestamps as
// microseconds since the earlier epoch.
const epochDelta = 11644473600

const timeLayout = "2006-01-02 15:04:05"

// Timestamp is the result of converting a raw Chromium timestamp field: either
// a calendar time, or the original value when it could not be interpreted.
// Unconvertible values are carried through unchanged rather than failing the
// row they belong to.
type Timestamp struct {
	t   time.Time
	raw string
	ok  bool
}

// Convert interprets raw as microseconds since the Chromium epoch. Values
// that are not integers, or that land outside years 1..9999, produce a
// pass-through Timestamp holding the raw value.
func Convert(raw string) Timestamp {
	micros, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return Timestamp{raw: raw}
	}

	// Chromium offsets exceed the nanosecond range of time.Duration, so the
	// conversion splits into whole seconds plus a microsecond remainder.
	// time.Unix normalizes a negative remainder.
	t := time.Unix(micros/1e6-epochDelta, (micros%1e6)*1000).UTC()
	if t.Year() < 1 || t.Year() > 9999 {
		return Timestamp{raw: raw}
	}
	return Timestamp{t: t, raw: raw, ok: true}
}

// Converted reports whether the raw value was interpreted as a calendar time.
func (ts Timestamp) Converted() bool {
	return ts.ok
}

// Time returns the converted calendar time; valid only when Converted.
func (ts Timestamp) Time() time.Time {
	return ts.t
}

// String renders the converted time as "YYYY-MM-DD HH:MM:SS" in UTC,
// truncated to whole seconds, or the original raw value when conversion
// failed.
func (ts Timestamp) String() string {
	if !ts.ok {
		return ts.raw
	}
	return ts.t.Format(timeLayout)
}
