package stores

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/storefront/internal/client/models"
)

type stubMuteSource struct {
	enabled bool
}

func (s *stubMuteSource) NotificationsEnabled() bool { return s.enabled }

func TestShow_DisplaysNotification(t *testing.T) {
	n := NewNotifier(&stubMuteSource{enabled: true}, time.Hour)
	t.Cleanup(n.Close)

	n.Show("Login successful!", models.NotificationSuccess)

	got := n.Current()
	require.NotNil(t, got)
	assert.Equal(t, "Login successful!", got.Message)
	assert.Equal(t, models.NotificationSuccess, got.Kind)
}

func TestShow_WhileMuted_IsNoOp(t *testing.T) {
	n := NewNotifier(&stubMuteSource{enabled: false}, time.Hour)
	t.Cleanup(n.Close)

	n.Show("x", models.NotificationSuccess)

	require.Nil(t, n.Current())
}

func TestShow_SupersedesAndRestartsExpiry(t *testing.T) {
	const ttl = 80 * time.Millisecond
	n := NewNotifier(&stubMuteSource{enabled: true}, ttl)
	t.Cleanup(n.Close)

	n.Show("x", models.NotificationSuccess)
	time.Sleep(ttl / 2)
	n.Show("y", models.NotificationError)

	// only the second notification is visible
	got := n.Current()
	require.NotNil(t, got)
	assert.Equal(t, "y", got.Message)
	assert.Equal(t, models.NotificationError, got.Kind)

	// the first timer must not clear the replacement
	time.Sleep(ttl * 3 / 4)
	got = n.Current()
	require.NotNil(t, got, "expiry must be measured from the second Show, not the first")
	assert.Equal(t, "y", got.Message)

	// a full window after the second Show it is gone
	require.Eventually(t, func() bool { return n.Current() == nil },
		2*ttl, 5*time.Millisecond)
}

func TestShow_ExpiresAfterTTL(t *testing.T) {
	n := NewNotifier(&stubMuteSource{enabled: true}, 40*time.Millisecond)
	t.Cleanup(n.Close)

	n.Show("bye", models.NotificationSuccess)
	require.NotNil(t, n.Current())

	require.Eventually(t, func() bool { return n.Current() == nil },
		time.Second, 5*time.Millisecond)
}

func TestClose_CancelsLiveTimer(t *testing.T) {
	n := NewNotifier(&stubMuteSource{enabled: true}, time.Hour)

	n.Show("x", models.NotificationSuccess)
	n.Close()

	require.Nil(t, n.Current())

	// showing after close still works
	n.Show("again", models.NotificationSuccess)
	require.NotNil(t, n.Current())
	n.Close()
}

func TestNewNotifier_DefaultTTL(t *testing.T) {
	n := NewNotifier(&stubMuteSource{enabled: true}, 0)
	t.Cleanup(n.Close)

	assert.Equal(t, DefaultNotificationTTL, n.ttl)
}
