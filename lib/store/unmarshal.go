package store

import (
	"github.com/go-viper/mapstructure/v2"
	"github.com/samber/oops"
)

// Unmarshal decodes the value at a dot-separated key into target, which
// must be a pointer. An empty key decodes the whole document. Field
// names follow `json` struct tags.
func (s *Store) Unmarshal(key string, target any) error {
	var src any
	if key == "" {
		doc, err := s.All()
		if err != nil {
			return err
		}
		src = doc
	} else {
		v, err := s.Get(key)
		if err != nil {
			return err
		}
		src = v
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "json",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return oops.Wrapf(err, "building decoder")
	}
	if err := dec.Decode(src); err != nil {
		return oops.Wrapf(err, "decoding %q into %T", key, target)
	}
	return nil
}
