// Package notification sends desktop notifications through beeep, which
// picks the platform mechanism (D-Bus or notify-send on Linux, AppleScript
// on macOS, toast on Windows).
package notification

import (
	"fmt"

	"github.com/gen2brain/beeep"
	"github.com/zhubert/enigmavision/internal/logger"
)

// AppName is the notification title.
const AppName = "Enigma Vision"

// notifier is beeep.Notify outside tests.
var notifier = beeep.Notify

// SetNotifier replaces the notification backend. Tests use it to avoid
// sending real notifications.
func SetNotifier(fn func(title, message string, icon any) error) {
	notifier = fn
}

// ResetNotifier restores the beeep backend.
func ResetNotifier() {
	notifier = beeep.Notify
}

// Send shows a desktop notification.
func Send(title, message string) error {
	log := logger.ComponentLogger("Notification")
	log.Debug("sending notification", "title", title, "message", message)
	if err := notifier(title, message, ""); err != nil {
		log.Warn("failed to send notification", "error", err)
		return err
	}
	return nil
}

// CiphertextCopied announces that n characters of ciphertext are on the
// clipboard.
func CiphertextCopied(n int) error {
	noun := "characters"
	if n == 1 {
		noun = "character"
	}
	return Send(AppName, fmt.Sprintf("Copied %d %s of ciphertext", n, noun))
}
