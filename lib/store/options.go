package store

import (
	"github.com/spf13/afero"

	"github.com/confstore/confstore/lib/confpath"
)

type settings struct {
	defaults    map[string]any
	pathOpts    confpath.Options
	keepCorrupt bool
	fs          afero.Fs
}

// Option customizes Store construction.
type Option func(*settings)

// WithDefaults supplies values merged underneath the persisted document
// on every materialization. Persisted values win over defaults for
// identical top-level keys.
func WithDefaults(defaults map[string]any) Option {
	return func(s *settings) {
		s.defaults = defaults
	}
}

// WithConfigPath overrides namespace-based path resolution with an
// explicit file path. Combined with WithGlobalConfigPath, a relative
// path is joined under the global config root.
func WithConfigPath(path string) Option {
	return func(s *settings) {
		s.pathOpts.ConfigPath = path
	}
}

// WithGlobalConfigPath resolves against the system-wide config root
// instead of the per-user one.
func WithGlobalConfigPath() Option {
	return func(s *settings) {
		s.pathOpts.GlobalConfigPath = true
	}
}

// WithKeepCorrupt disables the default recovery behavior for malformed
// on-disk JSON. Instead of truncating the file and continuing with an
// empty document, every state-materializing call returns the parse
// error and the file is left untouched.
func WithKeepCorrupt() Option {
	return func(s *settings) {
		s.keepCorrupt = true
	}
}

// WithFs replaces the OS filesystem, mainly for tests
// (afero.NewMemMapFs).
func WithFs(fs afero.Fs) Option {
	return func(s *settings) {
		if fs != nil {
			s.fs = fs
		}
	}
}

// New creates a Store for namespace. No I/O happens here: the path is
// computed once and the config file is only created by the first
// mutating operation.
func New(namespace string, opts ...Option) *Store {
	cfg := settings{fs: afero.NewOsFs()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Store{
		path:        confpath.Resolve(namespace, cfg.pathOpts),
		defaults:    cfg.defaults,
		keepCorrupt: cfg.keepCorrupt,
		fs:          cfg.fs,
	}
}
