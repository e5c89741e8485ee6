package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/samber/oops"
	"github.com/spf13/afero"

	"github.com/confstore/confstore/lib/util/logger"
)

var log = logger.GetLogger()

// Store is a file-backed JSON key-value store. The zero value is not
// usable; construct with New.
type Store struct {
	path        string
	defaults    map[string]any
	keepCorrupt bool
	fs          afero.Fs
}

// Path returns the resolved absolute file path backing the store. The
// path is fixed at construction and does not imply the file exists.
func (s *Store) Path() string {
	return s.path
}

// Get resolves a dot-separated key against the current document and
// returns the value, or nil if any segment is absent. A stored JSON
// null also comes back as nil; use Has to tell the two apart.
func (s *Store) Get(key string) (any, error) {
	doc, err := s.materialize()
	if err != nil {
		return nil, err
	}
	v, _ := getPath(doc, key)
	return v, nil
}

// Has reports whether a dot-separated key resolves to a value in the
// current document. A stored null counts as present.
func (s *Store) Has(key string) (bool, error) {
	doc, err := s.materialize()
	if err != nil {
		return false, err
	}
	_, ok := getPath(doc, key)
	return ok, nil
}

// All returns the full document with defaults merged in.
func (s *Store) All() (map[string]any, error) {
	return s.materialize()
}

// Size returns the number of top-level keys in the document.
func (s *Store) Size() (int, error) {
	doc, err := s.materialize()
	if err != nil {
		return 0, err
	}
	return len(doc), nil
}

// Set assigns value at a dot-separated key, creating intermediate
// objects as needed, and rewrites the whole document. A non-object
// intermediate already present on the path is replaced by a fresh
// object.
func (s *Store) Set(key string, value any) error {
	doc, err := s.materialize()
	if err != nil {
		return err
	}
	setPath(doc, key, value)
	return s.write(doc)
}

// SetAll shallow-merges values into the document root and rewrites it.
// Nested maps in values replace pre-existing values at the same key
// wholesale, they are not deep-merged.
func (s *Store) SetAll(values map[string]any) error {
	doc, err := s.materialize()
	if err != nil {
		return err
	}
	for k, v := range values {
		doc[k] = v
	}
	return s.write(doc)
}

// Delete removes a dot-separated key and rewrites the document.
// Deleting an intermediate key removes its whole subtree. Deleting an
// absent key is not an error but still rewrites the file.
func (s *Store) Delete(key string) error {
	doc, err := s.materialize()
	if err != nil {
		return err
	}
	deletePath(doc, key)
	return s.write(doc)
}

// Clear empties the store, defaults included, and persists the empty
// document.
func (s *Store) Clear() error {
	return s.write(map[string]any{})
}

// materialize produces the current document: on-disk state (absent or
// blank file reads as empty), corruption policy applied, defaults
// merged underneath. Called fresh on every operation so external edits
// are always observed.
func (s *Store) materialize() (map[string]any, error) {
	doc, err := s.readDocument()
	if err != nil {
		return nil, err
	}
	for k, v := range s.defaults {
		if _, ok := doc[k]; !ok {
			doc[k] = cloneValue(v)
		}
	}
	return doc, nil
}

func (s *Store) readDocument() (map[string]any, error) {
	raw, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]any{}, nil
		}
		return nil, oops.Wrapf(err, "reading config file %s", s.path)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return map[string]any{}, nil
	}
	doc := map[string]any{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		if s.keepCorrupt {
			return nil, oops.Wrapf(err, "parsing config file %s", s.path)
		}
		log.WithError(err).WithField("path", s.path).Warn("clearing invalid config file")
		if werr := afero.WriteFile(s.fs, s.path, nil, 0o600); werr != nil {
			return nil, oops.Wrapf(werr, "truncating invalid config file %s", s.path)
		}
		return map[string]any{}, nil
	}
	return doc, nil
}

// write serializes doc and replaces the file, creating parent
// directories on first use. Full-document rewrite, not a patch.
func (s *Store) write(doc map[string]any) error {
	raw, err := json.MarshalIndent(doc, "", "\t")
	if err != nil {
		return oops.Wrapf(err, "serializing config document")
	}
	if dir := filepath.Dir(s.path); dir != "" {
		if err := s.fs.MkdirAll(dir, 0o755); err != nil {
			return oops.Wrapf(err, "creating config directory %s", dir)
		}
	}
	if err := afero.WriteFile(s.fs, s.path, raw, 0o600); err != nil {
		return oops.Wrapf(err, "writing config file %s", s.path)
	}
	log.WithField("path", s.path).Debug("config file written")
	return nil
}

// cloneValue deep-copies maps and slices so merged defaults are never
// aliased into a document the caller will mutate.
func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = cloneValue(e)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}
