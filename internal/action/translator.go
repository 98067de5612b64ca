// Package action translates raw key events into semantic, per-screen actions.
//
// A Translator is built once from a table of (key -> action) pairs and is
// immutable afterwards. Several keys may map to the same action. Mapping the
// same key twice on one Builder keeps the last mapping; the overwritten pairs
// are reported by Builder.Overrides so callers can surface the conflict.
package action

import (
	"fmt"
	"sort"

	"github.com/vovakirdan/cargobug/internal/core"
)

// Kind is the edge of a translated event.
type Kind int

const (
	// Other means the event carried no mapped action.
	Other Kind = iota
	// Press is a press edge of a mapped key.
	Press
	// Release is a release edge of a mapped key.
	Release
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case Press:
		return "Press"
	case Release:
		return "Release"
	default:
		return "Other"
	}
}

// Translated is the result of translating one raw event.
// Action is the zero value when Kind is Other.
type Translated[A comparable] struct {
	Kind   Kind
	Action A
}

// Binding is one key -> action pair.
type Binding[A comparable] struct {
	Key    core.Key
	Action A
}

// Builder accumulates key mappings for a Translator.
type Builder[A comparable] struct {
	mapping   map[core.Key]A
	overrides []Binding[A]
}

// NewBuilder returns an empty builder.
func NewBuilder[A comparable]() *Builder[A] {
	return &Builder[A]{mapping: make(map[core.Key]A)}
}

// Map binds key to a. A second mapping for the same key replaces the first;
// the replaced pair is recorded in Overrides.
func (b *Builder[A]) Map(key core.Key, a A) *Builder[A] {
	if prev, ok := b.mapping[key]; ok && prev != a {
		b.overrides = append(b.overrides, Binding[A]{Key: key, Action: prev})
	}
	b.mapping[key] = a
	return b
}

// MapAll binds every key in keys to a.
func (b *Builder[A]) MapAll(a A, keys ...core.Key) *Builder[A] {
	for _, k := range keys {
		b.Map(k, a)
	}
	return b
}

// Overrides returns the mappings that were replaced by a later Map call.
func (b *Builder[A]) Overrides() []Binding[A] {
	return append([]Binding[A](nil), b.overrides...)
}

// Build returns an immutable translator holding a copy of the current table.
func (b *Builder[A]) Build() *Translator[A] {
	mapping := make(map[core.Key]A, len(b.mapping))
	for k, a := range b.mapping {
		mapping[k] = a
	}
	return &Translator[A]{mapping: mapping}
}

// Translator maps raw key events to actions. It is safe to share between
// goroutines because it is never mutated after Build.
type Translator[A comparable] struct {
	mapping map[core.Key]A
}

// Translate converts ev into a Press or Release of the mapped action.
// Unmapped keys and events without an edge translate to Other.
func (t *Translator[A]) Translate(ev core.KeyEvent) Translated[A] {
	a, ok := t.mapping[ev.Key]
	if !ok {
		return Translated[A]{Kind: Other}
	}

	switch ev.State {
	case core.KeyPressed:
		return Translated[A]{Kind: Press, Action: a}
	case core.KeyReleased:
		return Translated[A]{Kind: Release, Action: a}
	default:
		return Translated[A]{Kind: Other}
	}
}

// Lookup returns the action bound to key.
func (t *Translator[A]) Lookup(key core.Key) (A, bool) {
	a, ok := t.mapping[key]
	return a, ok
}

// Len returns the number of bound keys.
func (t *Translator[A]) Len() int {
	return len(t.mapping)
}

// Bindings returns the table sorted by key.
func (t *Translator[A]) Bindings() []Binding[A] {
	out := make([]Binding[A], 0, len(t.mapping))
	for k, a := range t.mapping {
		out = append(out, Binding[A]{Key: k, Action: a})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// FromNames builds a Builder from a configuration table of action name ->
// key names. parse resolves an action name; unknown action or key names are
// reported as errors.
func FromNames[A comparable](bindings map[string][]string, parse func(string) (A, error)) (*Builder[A], error) {
	// Sort action names so overrides are reported deterministically.
	names := make([]string, 0, len(bindings))
	for name := range bindings {
		names = append(names, name)
	}
	sort.Strings(names)

	b := NewBuilder[A]()
	for _, name := range names {
		a, err := parse(name)
		if err != nil {
			return nil, fmt.Errorf("action: binding %q: %w", name, err)
		}
		for _, keyName := range bindings[name] {
			k, err := core.ParseKey(keyName)
			if err != nil {
				return nil, fmt.Errorf("action: binding %q: %w", name, err)
			}
			b.Map(k, a)
		}
	}
	return b, nil
}
