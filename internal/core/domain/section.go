package domain

import "gopkg.in/yaml.v3"

// Section is a presence-aware optional used by platform override blocks. It
// distinguishes three states a plain pointer cannot express:
//
//   - absent:   the key never appeared in the override (inherit from root)
//   - cleared:  the key appeared with a null/empty value (explicitly reset)
//   - set:      the key appeared with a value (replace the root's section)
//
// yaml.v3 only invokes UnmarshalYAML for keys that are present in the
// document, which gives the "declared at all" semantics for free: a Section
// whose unmarshal hook never ran stays absent.
type Section[T any] struct {
	declared bool
	value    *T
}

// SetSection constructs a declared Section holding the given value. A nil
// value constructs an explicit reset.
func SetSection[T any](v *T) Section[T] {
	return Section[T]{declared: true, value: v}
}

// Declared reports whether the override declared this key at all,
// independent of its value.
func (s Section[T]) Declared() bool {
	return s.declared
}

// Value returns the declared value, which is nil for an explicit reset.
func (s Section[T]) Value() *T {
	return s.value
}

// Apply resolves the presence-aware replace rule against the root's value:
// a declared section wins verbatim (including clearing), an absent section
// inherits.
func (s Section[T]) Apply(root *T) *T {
	if s.declared {
		return s.value
	}
	return root
}

// canonical exposes the section's presence state and value to the canonical
// walker, which cannot see unexported fields on its own. All three states
// render distinctly: absent, cleared (declared with nil), and set.
func (s Section[T]) canonical() (declared bool, v any) {
	return s.declared, s.value
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Section[T]) UnmarshalYAML(node *yaml.Node) error {
	s.declared = true
	if node.Tag == "!!null" {
		s.value = nil
		return nil
	}
	var v T
	if err := node.Decode(&v); err != nil {
		return err
	}
	s.value = &v
	return nil
}
