package events

import (
	"testing"

	"portfolio-web/internal/session/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishReachesAllSubscribers(t *testing.T) {
	b := NewBroadcaster()
	ch1, cancel1 := b.Subscribe()
	defer cancel1()
	ch2, cancel2 := b.Subscribe()
	defer cancel2()

	b.Publish(Event{Authenticated: true, User: &domain.User{ID: 1}})

	e1 := <-ch1
	e2 := <-ch2
	assert.True(t, e1.Authenticated)
	assert.True(t, e2.Authenticated)
}

func TestSlowSubscriberSeesLatestEvent(t *testing.T) {
	b := NewBroadcaster()
	ch, cancel := b.Subscribe()
	defer cancel()

	// Nobody is reading; the second publish replaces the first.
	b.Publish(Event{Authenticated: true, User: &domain.User{ID: 1}})
	b.Publish(Event{Authenticated: false})

	e := <-ch
	assert.False(t, e.Authenticated)

	select {
	case _, ok := <-ch:
		require.False(t, ok, "no second event expected")
	default:
	}
}

func TestCancelClosesChannel(t *testing.T) {
	b := NewBroadcaster()
	ch, cancel := b.Subscribe()

	cancel()
	_, ok := <-ch
	assert.False(t, ok)

	// Publishing after cancel must not panic.
	b.Publish(Event{Authenticated: true})

	// Cancel is idempotent.
	cancel()
}
