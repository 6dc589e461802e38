package notification

import "smartslot/models"

// Notifier receives the user-facing notices the core emits. Rendering is
// the surrounding UI's concern; emitting must never block on it.
type Notifier interface {
	Notify(level models.NoticeLevel, message string) models.Notice
}
