// Package replay drives the game loop headlessly from YAML scripts of key
// presses, updates and renders. Scripts make the screen flow reproducible
// without a window or terminal.
package replay

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/cargobug/internal/core"
)

// DefaultDT is the update step used when a script does not set one.
const DefaultDT = 1.0 / 60

// Size is a window size in a script.
type Size struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Script is a replay file.
type Script struct {
	Name   string  `yaml:"name"`
	Window Size    `yaml:"window"`
	DT     float64 `yaml:"dt"`
	Steps  []Step  `yaml:"steps"`
}

// Step is one script instruction. Exactly one field must be set.
type Step struct {
	Press   string  `yaml:"press,omitempty"`
	Release string  `yaml:"release,omitempty"`
	Tap     string  `yaml:"tap,omitempty"`    // Press then release
	Update  int     `yaml:"update,omitempty"` // Number of update ticks
	Render  bool    `yaml:"render,omitempty"`
	Resize  *Size   `yaml:"resize,omitempty"`
	Close   bool    `yaml:"close,omitempty"`
	DT      float64 `yaml:"dt,omitempty"` // Overrides the script dt for Update
}

// Parse decodes and validates a script. Missing window size and dt fall
// back to winDefault and DefaultDT.
func Parse(data []byte, winDefault core.WindowInfo) (*Script, error) {
	var s Script
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("replay: parse: %w", err)
	}

	if s.Window.Width == 0 && s.Window.Height == 0 {
		s.Window = Size{Width: winDefault.Width, Height: winDefault.Height}
	}
	if s.DT == 0 {
		s.DT = DefaultDT
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadFile reads and parses a script file.
func LoadFile(path string, winDefault core.WindowInfo) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("replay: read %s: %w", path, err)
	}
	s, err := Parse(data, winDefault)
	if err != nil {
		return nil, err
	}
	if s.Name == "" {
		s.Name = path
	}
	return s, nil
}

// Validate reports every malformed step at once.
func (s *Script) Validate() error {
	var errs []error
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", s.Window.Width, s.Window.Height))
	}
	if s.DT < 0 {
		errs = append(errs, fmt.Errorf("dt must not be negative, got %v", s.DT))
	}
	for i, st := range s.Steps {
		if err := st.validate(); err != nil {
			errs = append(errs, fmt.Errorf("step %d: %w", i+1, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("replay: invalid script: %w", errors.Join(errs...))
	}
	return nil
}

func (st Step) validate() error {
	set := 0
	for _, key := range []string{st.Press, st.Release, st.Tap} {
		if key == "" {
			continue
		}
		set++
		if _, err := core.ParseKey(key); err != nil {
			return err
		}
	}
	if st.Update != 0 {
		set++
		if st.Update < 0 {
			return fmt.Errorf("update count must be positive, got %d", st.Update)
		}
	}
	if st.Render {
		set++
	}
	if st.Resize != nil {
		set++
		if st.Resize.Width <= 0 || st.Resize.Height <= 0 {
			return fmt.Errorf("resize must be positive, got %dx%d", st.Resize.Width, st.Resize.Height)
		}
	}
	if st.Close {
		set++
	}
	if st.DT < 0 {
		return fmt.Errorf("dt must not be negative, got %v", st.DT)
	}

	switch set {
	case 1:
		return nil
	case 0:
		return errors.New("empty step")
	default:
		return errors.New("step sets more than one instruction")
	}
}

// Events expands the script into loop events. Every render event carries
// the current window size as its frame and a running frame counter.
func (s *Script) Events() []core.Event {
	win := core.WindowInfo{Width: s.Window.Width, Height: s.Window.Height}
	var (
		out    []core.Event
		frames uint64
	)

	for _, st := range s.Steps {
		switch {
		case st.Press != "":
			out = append(out, core.InputEvent{Key: core.Press(mustKey(st.Press))})
		case st.Release != "":
			out = append(out, core.InputEvent{Key: core.Release(mustKey(st.Release))})
		case st.Tap != "":
			k := mustKey(st.Tap)
			out = append(out, core.InputEvent{Key: core.Press(k)}, core.InputEvent{Key: core.Release(k)})
		case st.Update > 0:
			dt := s.DT
			if st.DT > 0 {
				dt = st.DT
			}
			for i := 0; i < st.Update; i++ {
				out = append(out, core.UpdateEvent{DT: dt, Window: win})
			}
		case st.Render:
			out = append(out, core.RenderEvent{Frame: core.Frame{
				Width:  float64(win.Width),
				Height: float64(win.Height),
				Ticks:  frames,
			}})
			frames++
		case st.Resize != nil:
			win = core.WindowInfo{Width: st.Resize.Width, Height: st.Resize.Height}
			out = append(out, core.ResizeEvent{Window: win})
		case st.Close:
			out = append(out, core.CloseEvent{})
		}
	}
	return out
}

// mustKey parses a key name already checked by Validate.
func mustKey(name string) core.Key {
	k, err := core.ParseKey(name)
	if err != nil {
		panic(fmt.Sprintf("replay: unvalidated key %q", name))
	}
	return k
}
