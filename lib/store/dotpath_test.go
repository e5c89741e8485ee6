package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetPath(t *testing.T) {
	doc := map[string]any{
		"top": "level",
		"a":   map[string]any{"b": map[string]any{"c": 1}},
		"x.y": "literal dot key",
		"nul": nil,
	}

	v, ok := getPath(doc, "top")
	assert.True(t, ok)
	assert.Equal(t, "level", v)

	v, ok = getPath(doc, "a.b.c")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok = getPath(doc, "a.b.missing")
	assert.False(t, ok)

	_, ok = getPath(doc, "a.b.c.deeper")
	assert.False(t, ok, "cannot descend through a scalar")

	// Dots always denote nesting: the literal "x.y" key is not
	// addressable.
	_, ok = getPath(doc, "x.y")
	assert.False(t, ok)

	v, ok = getPath(doc, "nul")
	assert.True(t, ok, "a stored null is present")
	assert.Nil(t, v)
}

func TestSetPath(t *testing.T) {
	doc := map[string]any{}
	setPath(doc, "a.b.c", "deep")
	assert.Equal(t, map[string]any{
		"a": map[string]any{"b": map[string]any{"c": "deep"}},
	}, doc)

	// A scalar intermediate is replaced by a fresh object.
	doc = map[string]any{"a": "scalar"}
	setPath(doc, "a.b", 1)
	assert.Equal(t, map[string]any{"a": map[string]any{"b": 1}}, doc)

	// Siblings survive.
	setPath(doc, "a.c", 2)
	assert.Equal(t, map[string]any{"a": map[string]any{"b": 1, "c": 2}}, doc)
}

func TestDeletePath(t *testing.T) {
	doc := map[string]any{
		"a": map[string]any{"b": 1, "c": 2},
	}
	deletePath(doc, "a.b")
	assert.Equal(t, map[string]any{"a": map[string]any{"c": 2}}, doc)

	// Missing paths and scalar intermediates are no-ops.
	deletePath(doc, "a.c.d")
	deletePath(doc, "zz.yy")
	assert.Equal(t, map[string]any{"a": map[string]any{"c": 2}}, doc)

	// Deleting an intermediate drops the subtree.
	deletePath(doc, "a")
	assert.Empty(t, doc)
}
