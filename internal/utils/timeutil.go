package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// MinutesToTime renders a minute-of-day as a zero-padded "HH:MM" string.
func MinutesToTime(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// TimeToMinutes parses a 24-hour "HH:MM" string into minutes-of-day.
// Exact inverse of MinutesToTime for values in [0, 1439].
func TimeToMinutes(value string) (int, error) {
	parts := strings.SplitN(strings.TrimSpace(value), ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q: want HH:MM", value)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hours in %q: %w", value, err)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid minutes in %q: %w", value, err)
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("time %q out of range", value)
	}
	return hours*60 + minutes, nil
}
