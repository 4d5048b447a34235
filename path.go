package dotpath

import (
	"errors"
	"fmt"
	"strings"
)

// ErrPathUnset is returned by Get when a path cannot be resolved and no
// fallback was supplied.
var ErrPathUnset = errors.New("path not set")

// Get resolves a dotted path against root and returns the value found,
// which may be of any node kind. An empty path returns root itself.
//
// At most one fallback may be supplied. If resolution stops short (a
// non-Mapping value on the way down, or the final key absent) the fallback
// is returned, even an explicit nil one. Without a fallback an unresolved
// path is an error wrapping ErrPathUnset that carries the full path.
//
// Get never mutates root.
func Get(root map[string]any, path string, fallback ...any) (any, error) {
	if path == "" {
		return root, nil
	}

	current := any(root)
	for _, segment := range strings.Split(path, ".") {
		m, ok := asMapping(current)
		if !ok {
			return unresolved(path, fallback)
		}
		value, exists := m[segment]
		if !exists {
			return unresolved(path, fallback)
		}
		current = value
	}

	return current, nil
}

func unresolved(path string, fallback []any) (any, error) {
	if len(fallback) > 0 {
		return fallback[0], nil
	}
	return nil, fmt.Errorf("%w: %s", ErrPathUnset, path)
}

// setter installs the final path segment into its parent Mapping. Push and
// Concat plug sequence-aware terminals into the shared descent.
type setter func(target map[string]any, key string)

// Set assigns value at the dotted path, mutating root. Intermediate
// Mappings are created for every non-final segment whose current value is
// not already a Mapping; whatever was there before is overwritten.
func Set(root map[string]any, path string, value any) {
	assign(root, path, func(target map[string]any, key string) {
		target[key] = value
	})
}

// assign walks and creates the intermediate Mappings of path, then hands
// the final segment to fn. All terminal variants share this descent.
func assign(root map[string]any, path string, fn setter) {
	segments := strings.Split(path, ".")
	current := root

	for _, segment := range segments[:len(segments)-1] {
		next, ok := asMapping(current[segment])
		if !ok {
			next = make(map[string]any)
			current[segment] = next
		}
		current = next
	}

	fn(current, segments[len(segments)-1])
}

// Push appends value as a single element of the Sequence at path. An
// absent or nil target starts a fresh Sequence; an existing Scalar or
// Mapping is promoted into a one-element Sequence first. A Sequence value
// is appended as one nested element, not spliced.
func Push(root map[string]any, path string, value any) {
	assign(root, path, func(target map[string]any, key string) {
		target[key] = append(sequenceAt(target, key), value)
	})
}

// Concat splices value's elements onto the Sequence at path, creating or
// promoting the target the same way Push does. A non-Sequence value is
// wrapped as one element first, so relative to Push one level of nesting
// is flattened.
func Concat(root map[string]any, path string, value any) {
	assign(root, path, func(target map[string]any, key string) {
		target[key] = append(sequenceAt(target, key), toSequence(value)...)
	})
}

// sequenceAt returns the Sequence currently at key, promoting an existing
// Scalar or Mapping into a one-element Sequence. Absent and nil both start
// empty.
func sequenceAt(target map[string]any, key string) []any {
	existing := target[key]
	if existing == nil {
		return nil
	}
	if seq, ok := asSequence(existing); ok {
		return seq
	}
	return []any{existing}
}

// Unset removes the value at path, reporting whether anything was removed.
// It never creates intermediate structure.
func Unset(root map[string]any, path string) bool {
	if path == "" {
		return false
	}

	segments := strings.Split(path, ".")
	current := root
	for _, segment := range segments[:len(segments)-1] {
		next, ok := asMapping(current[segment])
		if !ok {
			return false
		}
		current = next
	}

	key := segments[len(segments)-1]
	if _, exists := current[key]; !exists {
		return false
	}
	delete(current, key)
	return true
}
