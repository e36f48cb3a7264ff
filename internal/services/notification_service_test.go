// internal/services/notification_service_test.go
package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shahalmix/shahalmix-backend/internal/models"
)

func TestNotificationService_ActiveKeepsCreationOrder(t *testing.T) {
	svc := NewNotificationService(time.Minute)
	defer svc.Close()

	first := svc.Notify("first", models.NotificationTypeSuccess)
	second := svc.Notify("second", models.NotificationTypeInfo)

	active := svc.Active()
	require.Len(t, active, 2)
	assert.Equal(t, first.ID, active[0].ID)
	assert.Equal(t, second.ID, active[1].ID)
}

func TestNotificationService_EntriesExpire(t *testing.T) {
	svc := NewNotificationService(20 * time.Millisecond)
	defer svc.Close()

	svc.Notify("short lived", models.NotificationTypeSuccess)

	assert.Eventually(t, func() bool {
		return len(svc.Active()) == 0
	}, time.Second, 5*time.Millisecond)
}

func TestNotificationService_DismissCancelsExpiry(t *testing.T) {
	svc := NewNotificationService(30 * time.Millisecond)
	defer svc.Close()

	entry := svc.Notify("dismiss me", models.NotificationTypeError)

	assert.True(t, svc.Dismiss(entry.ID))
	assert.Empty(t, svc.Active())

	// The timer firing later must not panic or resurrect anything
	time.Sleep(60 * time.Millisecond)
	assert.Empty(t, svc.Active())
}

func TestNotificationService_DismissUnknownID(t *testing.T) {
	svc := NewNotificationService(time.Minute)
	defer svc.Close()

	assert.False(t, svc.Dismiss("no-such-id"))

	entry := svc.Notify("once", models.NotificationTypeInfo)
	assert.True(t, svc.Dismiss(entry.ID))
	assert.False(t, svc.Dismiss(entry.ID))
}
