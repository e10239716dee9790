package notify

import (
	"github.com/gen2brain/beeep"
)

func Info(title, message string) error {
	return beeep.Notify(title, message, "")
}

func Done(message string) error {
	return beeep.Alert("crux", message, "")
}

// FormatDailyPrompt is the body of the daily reminder.
func FormatDailyPrompt() (string, string) {
	return "Climbing routine", "Time for today's routine."
}
