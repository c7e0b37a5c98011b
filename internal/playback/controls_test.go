package playback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestControls_StartsInline(t *testing.T) {
	c := NewControls()
	assert.False(t, c.Fullscreen())
}

func TestControls_MutatorsAreIdempotent(t *testing.T) {
	c := NewControls()

	notifications := 0
	unsub := c.Subscribe(func() { notifications++ })
	defer unsub()

	c.EnterFullscreen()
	c.EnterFullscreen()
	require.True(t, c.Fullscreen())
	assert.Equal(t, 1, notifications)

	c.ExitFullscreen()
	c.ExitFullscreen()
	require.False(t, c.Fullscreen())
	assert.Equal(t, 2, notifications)
}

func TestControls_NotifiesAfterStateUpdate(t *testing.T) {
	c := NewControls()

	var seen []bool
	unsub := c.Subscribe(func() { seen = append(seen, c.Fullscreen()) })
	defer unsub()

	c.EnterFullscreen()
	c.ExitFullscreen()

	assert.Equal(t, []bool{true, false}, seen)
}

func TestControls_NotifiesInRegistrationOrder(t *testing.T) {
	c := NewControls()

	var order []int
	c.Subscribe(func() { order = append(order, 1) })
	c.Subscribe(func() { order = append(order, 2) })
	c.Subscribe(func() { order = append(order, 3) })

	c.EnterFullscreen()

	assert.Equal(t, []int{1, 2, 3}, order)
}

func TestControls_UnsubscribeStopsNotifications(t *testing.T) {
	c := NewControls()

	notifications := 0
	unsub := c.Subscribe(func() { notifications++ })

	c.EnterFullscreen()
	unsub()
	unsub() // safe to call twice
	c.ExitFullscreen()

	assert.Equal(t, 1, notifications)
}

func TestControls_Toggle(t *testing.T) {
	c := NewControls()

	c.Toggle()
	assert.True(t, c.Fullscreen())
	c.Toggle()
	assert.False(t, c.Fullscreen())
}
