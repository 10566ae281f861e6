package apiusage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTTLCacheRoundTrip(t *testing.T) {
	c := NewTTLCache(time.Minute)

	c.Put("venues_1", []string{"a", "b"})

	got, ok := c.Get("venues_1")
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestTTLCacheMissAfterExpiry(t *testing.T) {
	c := NewTTLCache(30 * time.Millisecond)

	c.Put("k", "v")
	_, ok := c.Get("k")
	require.True(t, ok, "entry should be live within the TTL window")

	time.Sleep(60 * time.Millisecond)

	_, ok = c.Get("k")
	assert.False(t, ok, "entry should expire after the TTL elapses")
}

func TestTTLCacheOverwrite(t *testing.T) {
	c := NewTTLCache(time.Minute)

	c.Put("k", "first")
	c.Put("k", "second")

	got, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, "second", got)
}

func TestTTLCacheSweepExpired(t *testing.T) {
	c := NewTTLCache(20 * time.Millisecond)

	c.Put("a", 1)
	c.Put("b", 2)
	time.Sleep(50 * time.Millisecond)
	c.Put("c", 3)

	c.SweepExpired()

	assert.Equal(t, 1, c.ItemCount())
	_, ok := c.Get("c")
	assert.True(t, ok)
}

func TestTTLCacheDefaultTTL(t *testing.T) {
	c := NewTTLCache(0)
	assert.Equal(t, DefaultCacheTTL, c.TTL())
}
