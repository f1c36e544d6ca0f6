package core

import "time"

type (
	// Notification is a short operational event pushed to an external
	// channel (catalog loaded, personal schedule imported, ...).
	Notification struct {
		Event   string
		Message string
		Fields  map[string]string
		At      time.Time
	}

	// NotificationService is any service that can push notifications.
	NotificationService interface {
		// SendNotifications sends notifications concurrently; failures are
		// logged, never propagated.
		SendNotifications(notifications ...*Notification)
	}
)
