package store

import "strings"

// Dot-path helpers over a JSON document. Dots always denote nesting;
// keys containing literal dots are not addressable.

func getPath(doc map[string]any, key string) (any, bool) {
	cur := any(doc)
	for _, seg := range strings.Split(key, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[seg]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

func setPath(doc map[string]any, key string, value any) {
	segs := strings.Split(key, ".")
	m := doc
	for _, seg := range segs[:len(segs)-1] {
		next, ok := m[seg].(map[string]any)
		if !ok {
			next = map[string]any{}
			m[seg] = next
		}
		m = next
	}
	m[segs[len(segs)-1]] = value
}

func deletePath(doc map[string]any, key string) {
	segs := strings.Split(key, ".")
	m := doc
	for _, seg := range segs[:len(segs)-1] {
		next, ok := m[seg].(map[string]any)
		if !ok {
			return
		}
		m = next
	}
	delete(m, segs[len(segs)-1])
}
