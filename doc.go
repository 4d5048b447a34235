// Package dotpath manipulates nested map[string]any trees through
// dot-delimited paths, and deep-merges such trees with sequence
// concatenation instead of overwrite.
//
// A tree is built from three node shapes: a Mapping (map[string]any), a
// Sequence ([]any), or a Scalar (anything else, treated as an opaque
// leaf). A path such as "server.http.port" addresses one nested key per
// dot-separated segment.
//
// Features:
//   - Get resolves a dotted path, with an optional fallback value
//   - Set, Push and Concat write through a path, creating intermediate
//     Mappings on the way down
//   - Normalize expands flat dotted keys ("b.c.d") into nested Mappings,
//     in place, anywhere in the tree
//   - Flatten produces the inverse dotted-path view of a tree
//   - Augment deep-merges trees: Mappings merge recursively, Sequences
//     concatenate, later scalars win
//   - Tree re-exposes the same operations as chainable methods over one
//     wrapped root
//
// Quick Start:
//
//	conf := map[string]any{"server.port": 8000, "tags": []any{"a"}}
//	dotpath.Normalize(conf)
//
//	port, _ := dotpath.Get(conf, "server.port") // 8000
//	dotpath.Push(conf, "tags", "b")             // tags == ["a", "b"]
//
//	merged, err := dotpath.Augment(conf, override)
//
// Ownership and Concurrency:
// Every mutating operation writes the caller's root in place; nothing is
// copied behind the caller's back, and sub-trees of later Augment operands
// may end up shared by reference into the result. The package holds no
// state of its own and performs no locking, so concurrent use of one tree
// from multiple goroutines requires external synchronization.
package dotpath
