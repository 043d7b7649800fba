package domain

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Canonicalize renders a value as a canonical string suitable for
// fingerprinting: map keys and struct fields are sorted by name, slices keep
// their order, and function-valued, nil, and unexported fields are dropped.
// Types that keep semantic state in unexported fields (Section) expose it
// through the canonicaler hook so presence and value still participate.
// The result is insensitive to declaration order of object fields but
// sensitive to every semantic input.
func Canonicalize(v any) string {
	var b strings.Builder
	writeCanonical(&b, reflect.ValueOf(v))
	return b.String()
}

// FingerprintOf hashes the canonical rendering of v into the fixed-length
// digest format used throughout the engine.
func FingerprintOf(v any) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(Canonicalize(v)))
}

// canonicaler is implemented by types whose semantic content lives in
// unexported fields and must still participate in fingerprints.
type canonicaler interface {
	canonical() (declared bool, v any)
}

func writeCanonical(b *strings.Builder, v reflect.Value) {
	if !v.IsValid() {
		b.WriteString("null")
		return
	}

	if v.CanInterface() {
		if c, ok := v.Interface().(canonicaler); ok {
			declared, inner := c.canonical()
			if !declared {
				b.WriteString("absent")
				return
			}
			writeCanonical(b, reflect.ValueOf(inner))
			return
		}
	}

	switch v.Kind() {
	case reflect.Interface, reflect.Pointer:
		if v.IsNil() {
			b.WriteString("null")
			return
		}
		writeCanonical(b, v.Elem())

	case reflect.String:
		fmt.Fprintf(b, "%q", v.String())

	case reflect.Bool:
		fmt.Fprintf(b, "%t", v.Bool())

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		fmt.Fprintf(b, "%d", v.Int())

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		fmt.Fprintf(b, "%d", v.Uint())

	case reflect.Float32, reflect.Float64:
		fmt.Fprintf(b, "%g", v.Float())

	case reflect.Slice, reflect.Array:
		b.WriteByte('[')
		for i := 0; i < v.Len(); i++ {
			if i > 0 {
				b.WriteByte(',')
			}
			writeCanonical(b, v.Index(i))
		}
		b.WriteByte(']')

	case reflect.Map:
		keys := make([]string, 0, v.Len())
		byKey := make(map[string]reflect.Value, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			k := fmt.Sprintf("%v", iter.Key().Interface())
			keys = append(keys, k)
			byKey[k] = iter.Value()
		}
		sort.Strings(keys)
		b.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				b.WriteByte(',')
			}
			fmt.Fprintf(b, "%q:", k)
			writeCanonical(b, byKey[k])
		}
		b.WriteByte('}')

	case reflect.Struct:
		t := v.Type()
		type field struct {
			name  string
			value reflect.Value
		}
		fields := make([]field, 0, t.NumField())
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			fv := v.Field(i)
			if dropCanonical(fv) {
				continue
			}
			fields = append(fields, field{name: f.Name, value: fv})
		}
		sort.Slice(fields, func(i, j int) bool { return fields[i].name < fields[j].name })
		b.WriteByte('{')
		for i, f := range fields {
			if i > 0 {
				b.WriteByte(',')
			}
			fmt.Fprintf(b, "%q:", f.name)
			writeCanonical(b, f.value)
		}
		b.WriteByte('}')

	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		// Non-data kinds never participate in a fingerprint.
		b.WriteString("null")

	default:
		fmt.Fprintf(b, "%q", fmt.Sprintf("%v", v.Interface()))
	}
}

// dropCanonical reports whether a struct field is omitted from the canonical
// rendering entirely (as opposed to rendering as null).
func dropCanonical(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return true
	case reflect.Interface:
		// A nil interface drops too, so attaching a resolution callback
		// never shifts the fingerprint relative to a plain declaration.
		if v.IsNil() {
			return true
		}
		return dropCanonical(v.Elem())
	default:
		return false
	}
}
