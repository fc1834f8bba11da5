package utils

import (
	"fmt"
	"time"
)

// ParseDuration extends time.ParseDuration with whole days ("7d") and
// weeks ("2w").
func ParseDuration(s string) (time.Duration, error) {
	if d, err := time.ParseDuration(s); err == nil {
		return d, nil
	}

	var n int
	var unit rune
	if c, err := fmt.Sscanf(s, "%d%c", &n, &unit); err == nil && c == 2 && fmt.Sprintf("%d%c", n, unit) == s {
		switch unit {
		case 'd':
			return time.Duration(n) * 24 * time.Hour, nil
		case 'w':
			return time.Duration(n) * 7 * 24 * time.Hour, nil
		}
	}

	return 0, fmt.Errorf("invalid duration: %s", s)
}
