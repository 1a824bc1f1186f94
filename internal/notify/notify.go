package notify

import (
	"fmt"
	"strings"

	"github.com/gen2brain/beeep"
	"github.com/ramanasai/habitcal/internal/habit"
)

// Notifier shows a desktop notification.
type Notifier interface {
	Notify(title, message string) error
}

// Desktop delivers notifications through the OS notification center.
type Desktop struct{}

func (Desktop) Notify(title, message string) error {
	return beeep.Notify(title, message, "")
}

// Discard drops every notification.
type Discard struct{}

func (Discard) Notify(string, string) error { return nil }

// FormatGenerated describes a freshly generated day.
func FormatGenerated(date string, rec habit.DayRecord) (string, string) {
	title := "Habits logged for " + date
	var done []string
	for _, name := range rec.Names() {
		if rec[name] {
			done = append(done, name)
		}
	}
	if len(done) == 0 {
		return title, fmt.Sprintf("0 of %d habits completed.", len(rec))
	}
	msg := fmt.Sprintf("%d of %d habits completed: %s", len(done), len(rec), strings.Join(done, ", "))
	return title, msg
}
