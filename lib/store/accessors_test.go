package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypedAccessors(t *testing.T) {
	s, _ := memStore(t)
	require.NoError(t, s.SetAll(map[string]any{
		"name":    "demo",
		"port":    8080,
		"ratio":   0.5,
		"enabled": true,
		"timeout": "30s",
		"tags":    []any{"a", "b"},
		"extra":   map[string]any{"k": "v"},
	}))

	name, err := s.GetString("name")
	require.NoError(t, err)
	assert.Equal(t, "demo", name)

	port, err := s.GetInt("port")
	require.NoError(t, err)
	assert.Equal(t, 8080, port)

	ratio, err := s.GetFloat64("ratio")
	require.NoError(t, err)
	assert.Equal(t, 0.5, ratio)

	enabled, err := s.GetBool("enabled")
	require.NoError(t, err)
	assert.True(t, enabled)

	timeout, err := s.GetDuration("timeout")
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, timeout)

	tags, err := s.GetStringSlice("tags")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, tags)

	extra, err := s.GetStringMap("extra")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"k": "v"}, extra)
}

// TestTypedAccessorsMissingKey verifies zero values for absent keys.
func TestTypedAccessorsMissingKey(t *testing.T) {
	s, _ := memStore(t)

	name, err := s.GetString("missing")
	require.NoError(t, err)
	assert.Empty(t, name)

	port, err := s.GetInt("missing")
	require.NoError(t, err)
	assert.Zero(t, port)
}
