package dotpath

import "errors"

// ErrIncompatibleMerge is returned by Augment when a later operand is a
// bare Sequence, which would turn the Mapping root into a Sequence.
var ErrIncompatibleMerge = errors.New("attempt to augment an object and an array")

// Augment deep-merges every tree in rest into first, left to right, and
// returns first, which is mutated in place. At every level:
//   - two Mappings merge recursively, key by key
//   - a Sequence on either side concatenates, left operand's elements
//     first, with a non-Sequence side wrapped as a single element
//   - anything else from the later operand wins, including an explicit
//     nil, which overwrites rather than merges even when both sides are
//     traversable
//
// Later operands are read-only, but sub-trees of theirs that are
// installed wholesale end up shared by reference into the result, not
// copied. Only Mapping roots can be augmented: a bare Sequence operand at
// the top level fails with ErrIncompatibleMerge and no result.
func Augment(first map[string]any, rest ...any) (map[string]any, error) {
	for _, other := range rest {
		if KindOf(other) == KindSequence {
			return nil, ErrIncompatibleMerge
		}
		merge(first, other)
	}
	return first, nil
}

// merge is the recursive two-operand step behind Augment. It mutates and
// returns a; b is never written to.
func merge(a, b any) any {
	if KindOf(a) == KindSequence || KindOf(b) == KindSequence {
		left, right := toSequence(a), toSequence(b)
		joined := make([]any, 0, len(left)+len(right))
		joined = append(joined, left...)
		return append(joined, right...)
	}

	am, aok := asMapping(a)
	bm, bok := asMapping(b)
	if !aok || !bok {
		// A scalar operand has nothing to fold; the left side survives.
		return a
	}

	for key, bv := range bm {
		// Explicit nil always overwrites, it never recurses, even when
		// the left side is traversable. Absent left values land in the
		// overwrite branch the same way.
		if bv != nil && traversable(am[key]) && traversable(bv) {
			am[key] = merge(am[key], bv)
		} else {
			am[key] = bv
		}
	}
	return am
}
