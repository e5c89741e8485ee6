package store

import (
	"time"

	"github.com/spf13/cast"
)

// Typed accessors. Each one materializes fresh state like Get and
// coerces the value with spf13/cast; a missing key yields the zero
// value.

// GetString returns the value at key coerced to a string.
func (s *Store) GetString(key string) (string, error) {
	v, err := s.Get(key)
	return cast.ToString(v), err
}

// GetBool returns the value at key coerced to a bool.
func (s *Store) GetBool(key string) (bool, error) {
	v, err := s.Get(key)
	return cast.ToBool(v), err
}

// GetInt returns the value at key coerced to an int.
func (s *Store) GetInt(key string) (int, error) {
	v, err := s.Get(key)
	return cast.ToInt(v), err
}

// GetFloat64 returns the value at key coerced to a float64.
func (s *Store) GetFloat64(key string) (float64, error) {
	v, err := s.Get(key)
	return cast.ToFloat64(v), err
}

// GetDuration returns the value at key coerced to a time.Duration.
// String values use time.ParseDuration syntax.
func (s *Store) GetDuration(key string) (time.Duration, error) {
	v, err := s.Get(key)
	return cast.ToDuration(v), err
}

// GetStringSlice returns the value at key coerced to a []string.
func (s *Store) GetStringSlice(key string) ([]string, error) {
	v, err := s.Get(key)
	return cast.ToStringSlice(v), err
}

// GetStringMap returns the value at key coerced to a map[string]any.
func (s *Store) GetStringMap(key string) (map[string]any, error) {
	v, err := s.Get(key)
	return cast.ToStringMap(v), err
}
