package dotpath

import "strings"

// Normalize rewrites, in place, every key containing a dot into the
// equivalent nested Mapping structure: {"b.c.d": 2} becomes
// {"b": {"c": {"d": 2}}}. Child Mappings are normalized before their
// parent key is re-spread, so dotted keys at any depth are expanded.
//
// Re-assignment goes through Set, so a dotted key that overlaps a sibling
// merges into the sibling's already-created Mappings instead of
// overwriting them. After normalization no Mapping key anywhere in the
// tree contains a dot. Normalize is idempotent.
func Normalize(root map[string]any) {
	keys := make([]string, 0, len(root))
	for key := range root {
		keys = append(keys, key)
	}

	for _, key := range keys {
		value := root[key]
		if child, ok := asMapping(value); ok {
			Normalize(child)
		}
		Set(root, key, value)
		if strings.Contains(key, ".") {
			delete(root, key)
		}
	}
}

// Flatten returns a new flat Mapping keyed by the dotted path of every
// leaf in root. Mappings are descended into; Sequences and Scalars are
// leaves. Flatten does not mutate root.
func Flatten(root map[string]any) map[string]any {
	flat := make(map[string]any)
	flattenInto(flat, root, "")
	return flat
}

func flattenInto(flat, nested map[string]any, prefix string) {
	for key, value := range nested {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}

		if child, ok := asMapping(value); ok {
			flattenInto(flat, child, path)
			continue
		}
		flat[path] = value
	}
}
