package x_radix

import (
	"reflect"
)

//---------------------
// Utilities
//---------------------

// commonPrefixLen returns length of common prefix.
func commonPrefixLen(s1, s2 []byte) int {
	limit := min(len(s1), len(s2))
	var i int
	for ; i < limit; i++ {
		if s1[i] != s2[i] {
			break
		}
	}
	return i
}

// copyBytes returns an exact-capacity copy of src, nil when empty.
func copyBytes(src []byte) []byte {
	if len(src) == 0 {
		return nil
	}
	dst := make([]byte, len(src))
	copy(dst, src)
	return dst
}

// isAbsent reports whether v is the nil value of a nil-able kind. Such values
// are reserved for placeholder nodes.
func isAbsent[V any](v V) bool {
	rv := reflect.ValueOf(&v).Elem()
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan,
		reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// boundKey keeps the last limit bytes of key, the bytes nearest the node.
func boundKey(key []byte, limit int) []byte {
	if len(key) > limit {
		return key[len(key)-limit:]
	}
	return key
}
