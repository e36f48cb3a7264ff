// internal/models/notification.go
package models

import "time"

// Notification is a transient user-facing message. Entries expire on
// their own timer unless dismissed earlier.
type Notification struct {
	ID        string           `json:"id"`
	Message   string           `json:"message"`
	Type      NotificationType `json:"type"`
	CreatedAt time.Time        `json:"created_at"`
}
