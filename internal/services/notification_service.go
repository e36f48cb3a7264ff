// internal/services/notification_service.go
package services

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/shahalmix/shahalmix-backend/internal/models"
)

// NotificationService keeps the transient user-facing messages. Every
// entry gets its own expiry timer; dismissal cancels the timer, and a
// timer firing after dismissal finds nothing to remove.
type NotificationService struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]models.Notification
	order   []string
	timers  map[string]*time.Timer
}

func NewNotificationService(ttl time.Duration) *NotificationService {
	return &NotificationService{
		ttl:     ttl,
		entries: make(map[string]models.Notification),
		timers:  make(map[string]*time.Timer),
	}
}

func (s *NotificationService) Notify(message string, kind models.NotificationType) models.Notification {
	entry := models.Notification{
		ID:        uuid.NewString(),
		Message:   message,
		Type:      kind,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[entry.ID] = entry
	s.order = append(s.order, entry.ID)
	s.timers[entry.ID] = time.AfterFunc(s.ttl, func() {
		s.expire(entry.ID)
	})
	return entry
}

// Dismiss removes a notification immediately. Returns false when the id
// is unknown (already expired or never existed).
func (s *NotificationService) Dismiss(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[id]; !ok {
		return false
	}
	if timer, ok := s.timers[id]; ok {
		timer.Stop()
	}
	s.remove(id)
	return true
}

// Active returns the live notifications in creation order.
func (s *NotificationService) Active() []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	active := make([]models.Notification, 0, len(s.order))
	for _, id := range s.order {
		if entry, ok := s.entries[id]; ok {
			active = append(active, entry)
		}
	}
	return active
}

func (s *NotificationService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, timer := range s.timers {
		timer.Stop()
		delete(s.timers, id)
	}
	s.entries = make(map[string]models.Notification)
	s.order = nil
}

// expire runs on the per-entry timer. A dismissed id is simply absent.
func (s *NotificationService) expire(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[id]; !ok {
		return
	}
	s.remove(id)
}

// remove assumes the mutex is held.
func (s *NotificationService) remove(id string) {
	delete(s.entries, id)
	delete(s.timers, id)
	for i, entryID := range s.order {
		if entryID == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}
