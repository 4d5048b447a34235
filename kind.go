package dotpath

// Kind classifies a tree node as one of the three shapes the package
// distinguishes. Everything that is not a Mapping or a Sequence is an
// opaque Scalar leaf.
type Kind int

const (
	KindScalar Kind = iota
	KindMapping
	KindSequence
)

// KindOf is the single classification point for tree nodes; all path,
// normalize and merge logic routes its type checks through here.
func KindOf(v any) Kind {
	switch v.(type) {
	case map[string]any:
		return KindMapping
	case []any:
		return KindSequence
	default:
		return KindScalar
	}
}

// traversable reports whether v can be descended into (Mapping or
// Sequence). A nil value is never traversable.
func traversable(v any) bool {
	return KindOf(v) != KindScalar
}

// asMapping returns v as a usable Mapping. A typed-nil map is rejected so
// callers never write into a nil map.
func asMapping(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	if !ok || m == nil {
		return nil, false
	}
	return m, true
}

// asSequence returns v as a Sequence. Unlike asMapping a nil slice is
// fine, it just appends like an empty one.
func asSequence(v any) ([]any, bool) {
	s, ok := v.([]any)
	return s, ok
}

// toSequence coerces v into a Sequence, wrapping a non-Sequence value as a
// single element.
func toSequence(v any) []any {
	if s, ok := asSequence(v); ok {
		return s
	}
	return []any{v}
}
