package dotpath

import (
	"fmt"
	"strconv"
)

// Tree wraps one owned root Mapping and re-exposes the package operations
// as chainable methods. Mutating methods return the Tree itself; Get and
// the typed accessors return the resolved value. An error raised mid-chain
// (only Augment can raise one) is recorded and surfaced by Err.
type Tree struct {
	root map[string]any
	err  error
}

// NewTree wraps root. A nil root starts a fresh empty Mapping.
func NewTree(root map[string]any) *Tree {
	if root == nil {
		root = make(map[string]any)
	}
	return &Tree{root: root}
}

// Root returns the underlying Mapping. Mutations through the Tree remain
// visible to any caller still holding this map.
func (t *Tree) Root() map[string]any { return t.root }

// Err returns the first error recorded by a chained call, or nil.
func (t *Tree) Err() error { return t.err }

// Get resolves a dotted path against the wrapped root.
func (t *Tree) Get(path string, fallback ...any) (any, error) {
	return Get(t.root, path, fallback...)
}

// Set assigns value at path and returns the Tree for chaining.
func (t *Tree) Set(path string, value any) *Tree {
	Set(t.root, path, value)
	return t
}

// Push appends value to the Sequence at path and returns the Tree.
func (t *Tree) Push(path string, value any) *Tree {
	Push(t.root, path, value)
	return t
}

// Concat splices value onto the Sequence at path and returns the Tree.
func (t *Tree) Concat(path string, value any) *Tree {
	Concat(t.root, path, value)
	return t
}

// Unset removes the value at path and returns the Tree.
func (t *Tree) Unset(path string) *Tree {
	Unset(t.root, path)
	return t
}

// Normalize expands dotted keys throughout the wrapped root.
func (t *Tree) Normalize() *Tree {
	Normalize(t.root)
	return t
}

// Augment deep-merges the given trees into the wrapped root. A failed
// merge is recorded for Err; the chain itself keeps going.
func (t *Tree) Augment(others ...any) *Tree {
	if _, err := Augment(t.root, others...); err != nil && t.err == nil {
		t.err = err
	}
	return t
}

// String resolves path and returns the value as a string, converting
// common scalar types.
func (t *Tree) String(path string) (string, error) {
	val, err := t.Get(path)
	if err != nil {
		return "", err
	}
	if val == nil {
		return "", nil
	}

	switch v := val.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	case fmt.Stringer:
		return v.String(), nil
	case bool:
		return strconv.FormatBool(v), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	default:
		return "", fmt.Errorf("cannot convert type %T to string for path %s", val, path)
	}
}

// Int64 resolves path and returns the value as an int64, converting
// numeric types and parsable strings. Floats are truncated.
func (t *Tree) Int64(path string) (int64, error) {
	val, err := t.Get(path)
	if err != nil {
		return 0, err
	}

	switch v := val.(type) {
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	case float64:
		return int64(v), nil
	case string:
		i, err := strconv.ParseInt(v, 0, 64)
		if err != nil {
			return 0, fmt.Errorf("cannot convert string %q to int64 for path %s: %w", v, path, err)
		}
		return i, nil
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	default:
		return 0, fmt.Errorf("cannot convert type %T to int64 for path %s", val, path)
	}
}

// Bool resolves path and returns the value as a bool. Numbers read as
// non-zero, strings go through strconv.ParseBool.
func (t *Tree) Bool(path string) (bool, error) {
	val, err := t.Get(path)
	if err != nil {
		return false, err
	}

	switch v := val.(type) {
	case bool:
		return v, nil
	case int:
		return v != 0, nil
	case int64:
		return v != 0, nil
	case float64:
		return v != 0, nil
	case string:
		b, err := strconv.ParseBool(v)
		if err != nil {
			return false, fmt.Errorf("cannot convert string %q to bool for path %s: %w", v, path, err)
		}
		return b, nil
	default:
		return false, fmt.Errorf("cannot convert type %T to bool for path %s", val, path)
	}
}

// Float64 resolves path and returns the value as a float64, converting
// integer types and parsable strings.
func (t *Tree) Float64(path string) (float64, error) {
	val, err := t.Get(path)
	if err != nil {
		return 0, err
	}

	switch v := val.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, fmt.Errorf("cannot convert string %q to float64 for path %s: %w", v, path, err)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("cannot convert type %T to float64 for path %s", val, path)
	}
}
