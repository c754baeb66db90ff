// Package notify fans out user-facing notifications (toasts) to subscribers.
package notify

import (
	"sync"
	"time"

	"director/server/internal/model"

	"github.com/google/uuid"
)

type Hub struct {
	mu   sync.RWMutex
	subs map[string]chan model.Notification
	now  func() time.Time
}

func NewHub() *Hub {
	return &Hub{
		subs: map[string]chan model.Notification{},
		now:  time.Now,
	}
}

func (h *Hub) Subscribe(buf int) (string, <-chan model.Notification, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	subID := uuid.NewString()
	ch := make(chan model.Notification, buf)
	h.subs[subID] = ch

	unsubscribe := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		c, ok := h.subs[subID]
		if !ok {
			return
		}
		delete(h.subs, subID)
		close(c)
	}
	return subID, ch, unsubscribe
}

func (h *Hub) Publish(n model.Notification) {
	if n.TS.IsZero() {
		n.TS = h.now()
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, ch := range h.subs {
		select {
		case ch <- n:
		default:
			// slow subscriber, drop
		}
	}
}

func (h *Hub) Success(title, description string) {
	h.Publish(model.Notification{Level: model.NotifySuccess, Title: title, Description: description})
}

func (h *Hub) Error(title, description string) {
	h.Publish(model.Notification{Level: model.NotifyError, Title: title, Description: description})
}
