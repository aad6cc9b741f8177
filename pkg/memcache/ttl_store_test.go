package memcache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStoreSetGet(t *testing.T) {
	s := NewStore[string]()

	_, ok := s.Get("missing")
	assert.False(t, ok)

	s.Set("k", "v", time.Minute)
	v, ok := s.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "v", v)
}

func TestStoreOverwrite(t *testing.T) {
	s := NewStore[int]()
	s.Set("k", 1, time.Minute)
	s.Set("k", 2, time.Minute)

	v, ok := s.Get("k")
	assert.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestStoreExpiry(t *testing.T) {
	s := NewStore[string]()
	s.Set("k", "v", 5*time.Millisecond)

	time.Sleep(20 * time.Millisecond)

	_, ok := s.Get("k")
	assert.False(t, ok)
}
