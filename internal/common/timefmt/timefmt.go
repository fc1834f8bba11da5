// Package timefmt renders and parses the "YYYY-MM-DD HH:mm:ss" timestamps
// shown to admins, in the service's configured time zone.
package timefmt

import (
	"fmt"
	"sync/atomic"
	"time"
)

// Layout is the Go layout for YYYY-MM-DD HH:mm:ss
const Layout = "2006-01-02 15:04:05"

var location atomic.Pointer[time.Location]

func init() {
	location.Store(time.Local)
}

// SetLocation changes the zone used by Format and Parse
func SetLocation(loc *time.Location) {
	if loc == nil {
		loc = time.Local
	}
	location.Store(loc)
}

// Location returns the configured zone
func Location() *time.Location {
	return location.Load()
}

// Format renders t in the configured zone. The zero time renders as "".
func Format(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(Location()).Format(Layout)
}

// FormatPtr is Format for optional timestamps
func FormatPtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return Format(*t)
}

// Parse reads s as a wall-clock time in the configured zone
func Parse(s string) (time.Time, error) {
	t, err := time.ParseInLocation(Layout, s, Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid datetime %q, expected YYYY-MM-DD HH:mm:ss", s)
	}
	return t, nil
}
