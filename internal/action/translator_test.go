package action

import (
	"fmt"
	"testing"

	"github.com/vovakirdan/cargobug/internal/core"
)

type testAction int

const (
	actUp testAction = iota + 1
	actDown
)

func parseTestAction(name string) (testAction, error) {
	switch name {
	case "up":
		return actUp, nil
	case "down":
		return actDown, nil
	}
	return 0, fmt.Errorf("unknown action %q", name)
}

func newTestTranslator() *Translator[testAction] {
	return NewBuilder[testAction]().
		Map(core.KeyUp, actUp).
		Map(core.KeyW, actUp).
		Map(core.KeyDown, actDown).
		Build()
}

func TestTranslate(t *testing.T) {
	tr := newTestTranslator()

	tests := []struct {
		name     string
		ev       core.KeyEvent
		expected Translated[testAction]
	}{
		{"press mapped", core.Press(core.KeyUp), Translated[testAction]{Kind: Press, Action: actUp}},
		{"press alias", core.Press(core.KeyW), Translated[testAction]{Kind: Press, Action: actUp}},
		{"release mapped", core.Release(core.KeyDown), Translated[testAction]{Kind: Release, Action: actDown}},
		{"press unmapped", core.Press(core.KeySpace), Translated[testAction]{Kind: Other}},
		{"release unmapped", core.Release(core.KeyQ), Translated[testAction]{Kind: Other}},
		{"no edge", core.KeyEvent{Key: core.KeyUp}, Translated[testAction]{Kind: Other}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tr.Translate(tc.ev); got != tc.expected {
				t.Errorf("Translate(%v) = %+v, expected %+v", tc.ev, got, tc.expected)
			}
		})
	}
}

func TestBuilderLastWriteWins(t *testing.T) {
	b := NewBuilder[testAction]().
		Map(core.KeyS, actUp).
		Map(core.KeyS, actDown)

	tr := b.Build()
	if a, ok := tr.Lookup(core.KeyS); !ok || a != actDown {
		t.Errorf("Lookup(s) = %v, %v; expected the later mapping", a, ok)
	}

	overrides := b.Overrides()
	if len(overrides) != 1 || overrides[0].Key != core.KeyS || overrides[0].Action != actUp {
		t.Errorf("Overrides() = %+v, expected the replaced up mapping", overrides)
	}

	// Re-mapping to the same action is not a conflict.
	b2 := NewBuilder[testAction]().Map(core.KeyS, actUp).Map(core.KeyS, actUp)
	if len(b2.Overrides()) != 0 {
		t.Errorf("identical re-mapping should not be reported, got %+v", b2.Overrides())
	}
}

func TestTranslatorIsImmutable(t *testing.T) {
	b := NewBuilder[testAction]().Map(core.KeyUp, actUp)
	tr := b.Build()

	b.Map(core.KeyDown, actDown)
	if tr.Len() != 1 {
		t.Errorf("Len() = %d after mutating builder, expected 1", tr.Len())
	}
	if got := tr.Translate(core.Press(core.KeyDown)); got.Kind != Other {
		t.Errorf("translator picked up a mapping added after Build: %+v", got)
	}
}

func TestBindingsSorted(t *testing.T) {
	bindings := newTestTranslator().Bindings()
	if len(bindings) != 3 {
		t.Fatalf("Bindings() returned %d entries, expected 3", len(bindings))
	}
	for i := 1; i < len(bindings); i++ {
		if bindings[i-1].Key >= bindings[i].Key {
			t.Errorf("Bindings() not sorted: %v before %v", bindings[i-1].Key, bindings[i].Key)
		}
	}
}

func TestFromNames(t *testing.T) {
	b, err := FromNames(map[string][]string{
		"up":   {"up", "w"},
		"down": {"down", "s"},
	}, parseTestAction)
	if err != nil {
		t.Fatalf("FromNames error: %v", err)
	}

	tr := b.Build()
	if got := tr.Translate(core.Press(core.KeyS)); got.Action != actDown {
		t.Errorf("Translate(press s) = %+v, expected down", got)
	}

	if _, err := FromNames(map[string][]string{"jump": {"space"}}, parseTestAction); err == nil {
		t.Error("FromNames should reject unknown action names")
	}
	if _, err := FromNames(map[string][]string{"up": {"hyper"}}, parseTestAction); err == nil {
		t.Error("FromNames should reject unknown key names")
	}
}
