package stores

import (
	"sync"
	"time"

	"github.com/dmitrijs2005/storefront/internal/client/models"
)

// DefaultNotificationTTL is how long a notification stays visible,
// measured from the most recent Show call.
const DefaultNotificationTTL = 3 * time.Second

// MuteSource reports whether notifications should be shown at all.
// The session store satisfies it.
type MuteSource interface {
	NotificationsEnabled() bool
}

// Notifier owns the single transient notification. A new Show replaces the
// current notification and restarts the expiry window; the superseded timer
// is invalidated by generation so it can never clear a notification it is
// no longer responsible for.
type Notifier struct {
	source MuteSource
	ttl    time.Duration

	mu      sync.Mutex
	current *models.Notification
	timer   *time.Timer
	gen     uint64
}

func NewNotifier(source MuteSource, ttl time.Duration) *Notifier {
	if ttl <= 0 {
		ttl = DefaultNotificationTTL
	}
	return &Notifier{source: source, ttl: ttl}
}

// Show displays a notification for the full display duration. A no-op while
// notifications are disabled.
func (n *Notifier) Show(message string, kind models.NotificationKind) {
	if !n.source.NotificationsEnabled() {
		return
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	n.gen++
	gen := n.gen

	if n.timer != nil {
		n.timer.Stop()
	}
	n.current = &models.Notification{Message: message, Kind: kind}
	n.timer = time.AfterFunc(n.ttl, func() { n.expire(gen) })
}

// Current returns a copy of the visible notification, or nil.
func (n *Notifier) Current() *models.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current == nil {
		return nil
	}
	notification := *n.current
	return &notification
}

// Close cancels the live timer. Must be called on teardown so a late expiry
// cannot fire after the consumer is gone.
func (n *Notifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.gen++
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
	n.current = nil
}

func (n *Notifier) expire(gen uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()

	// a newer Show supersedes this timer
	if gen != n.gen {
		return
	}
	n.current = nil
	n.timer = nil
}
