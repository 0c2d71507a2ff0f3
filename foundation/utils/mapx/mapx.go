// File: mapx.go
// Title: Map Lookup Utilities
// Description: Non-mutating lookups with defaults, typed access to
//              decoded configuration maps and dotted path navigation.
// Author: paisley
// Version: v0.2.0
// Created: 2026-03-04
// Modified: 2026-09-25
//
// Change History:
// - 2026-03-04 v0.1.0: Initial implementation
// - 2026-09-25 v0.2.0: GetOrDefault no longer writes the default back

package mapx

import (
	"fmt"
	"sort"
	"strings"
)

// GetOrDefault returns m[key], or def when the key is absent. The map is
// never modified. A nil map yields def.
func GetOrDefault[K comparable, V any](m map[K]V, key K, def V) V {
	if v, ok := m[key]; ok {
		return v
	}
	return def
}

// Lookup returns m[key] and whether it was present
func Lookup[K comparable, V any](m map[K]V, key K) (V, bool) {
	v, ok := m[key]
	return v, ok
}

// GetAs returns m[key] asserted to T. It reports false when the key is
// missing or holds a value of another type.
func GetAs[T any](m map[string]interface{}, key string) (T, bool) {
	var zero T
	raw, ok := m[key]
	if !ok {
		return zero, false
	}
	v, ok := raw.(T)
	if !ok {
		return zero, false
	}
	return v, true
}

// GetString returns the value at key rendered as a string. Strings are
// returned unchanged, other values go through fmt.
func GetString(m map[string]interface{}, key string) (string, bool) {
	raw, ok := m[key]
	if !ok || raw == nil {
		return "", false
	}
	switch v := raw.(type) {
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	default:
		return fmt.Sprint(v), true
	}
}

// Of builds a map from alternating key/value arguments. A trailing key
// without a value is ignored.
//
//	m := mapx.Of("era", "民國", "year", 113)
func Of(pairs ...interface{}) map[string]interface{} {
	m := make(map[string]interface{}, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		m[fmt.Sprint(pairs[i])] = pairs[i+1]
	}
	return m
}

// Path walks nested maps along a dotted key such as "display.date_pattern".
// Both map[string]interface{} and map[interface{}]interface{} levels are
// followed.
func Path(m map[string]interface{}, path string) (interface{}, bool) {
	if m == nil || path == "" {
		return nil, false
	}
	var current interface{} = m
	for _, part := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]interface{}:
			v, ok := node[part]
			if !ok {
				return nil, false
			}
			current = v
		case map[interface{}]interface{}:
			v, ok := node[part]
			if !ok {
				return nil, false
			}
			current = v
		default:
			return nil, false
		}
	}
	return current, true
}

// SetPath stores value at a dotted path, creating intermediate maps.
// An intermediate value that is not a map is replaced.
func SetPath(m map[string]interface{}, path string, value interface{}) {
	parts := strings.Split(path, ".")
	current := m
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]interface{})
		if !ok {
			next = make(map[string]interface{})
			current[part] = next
		}
		current = next
	}
	current[parts[len(parts)-1]] = value
}

// DeepMerge returns a new map with override laid over base. Nested maps
// are merged key by key; any other value in override wins.
func DeepMerge(base, override map[string]interface{}) map[string]interface{} {
	result := Clone(base)
	for k, v := range override {
		if sub, ok := v.(map[string]interface{}); ok {
			if existing, ok := result[k].(map[string]interface{}); ok {
				result[k] = DeepMerge(existing, sub)
				continue
			}
			result[k] = Clone(sub)
			continue
		}
		result[k] = v
	}
	return result
}

// Clone deep-copies nested map[string]interface{} levels. Slices and
// other values are shared.
func Clone(m map[string]interface{}) map[string]interface{} {
	result := make(map[string]interface{}, len(m))
	for k, v := range m {
		if sub, ok := v.(map[string]interface{}); ok {
			result[k] = Clone(sub)
			continue
		}
		result[k] = v
	}
	return result
}

// SortedKeys returns the keys of m in ascending order
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
