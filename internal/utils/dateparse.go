package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/ramanasai/habitcal/internal/habit"
)

var relativeDays = regexp.MustCompile(`^(\d+)\s+(day|days|week|weeks)\s+ago$`)

// ParseDay resolves a calendar day relative to now. It accepts "today",
// "yesterday", "N days ago", "N weeks ago" and a few absolute layouts. The
// result is midnight in now's location.
func ParseDay(input string, now time.Time) (time.Time, error) {
	input = strings.TrimSpace(strings.ToLower(input))
	if input == "" {
		return time.Time{}, fmt.Errorf("empty date input")
	}
	today := habit.Midnight(now)

	switch input {
	case "today":
		return today, nil
	case "yesterday":
		return today.AddDate(0, 0, -1), nil
	}

	if m := relativeDays.FindStringSubmatch(input); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return time.Time{}, fmt.Errorf("unable to parse date: %s", input)
		}
		if strings.HasPrefix(m[2], "week") {
			n *= 7
		}
		return today.AddDate(0, 0, -n), nil
	}

	formats := []string{
		habit.DateLayout,
		"2006/01/02",
		"Jan 2, 2006",
		"2 Jan 2006",
		"January 2, 2006",
	}
	for _, format := range formats {
		if t, err := time.ParseInLocation(format, input, now.Location()); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse date: %s", input)
}
