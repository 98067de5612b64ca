// Package registry maps screen keys to screen factories and runs the
// single-active-screen state machine on top of that table.
// Screens register themselves in init() functions, allowing the loop to
// instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/cargobug/internal/screen"
)

// Factory builds one screen variant.
type Factory struct {
	// Name is a human-readable label for help and log output.
	Name string

	// New is the key-only constructor. Required.
	New func(env screen.Env) (screen.Screen, error)

	// WithArgs is the argument-taking constructor. Nil means the variant
	// rejects transitions that carry arguments.
	WithArgs func(env screen.Env, args screen.Args) (screen.Screen, error)
}

// Info describes a registered screen.
type Info struct {
	Key      screen.Key
	Name     string
	TakeArgs bool
}

// Registry is a table of screen factories keyed by screen key.
type Registry struct {
	mu        sync.RWMutex
	factories map[screen.Key]Factory
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{factories: make(map[screen.Key]Factory)}
}

// Register adds a factory for key.
// Panics if the key is already registered or the factory has no New func.
func (r *Registry) Register(key screen.Key, f Factory) {
	if f.New == nil {
		panic(fmt.Sprintf("registry: screen %s has no constructor", key))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[key]; exists {
		panic(fmt.Sprintf("registry: screen %s already registered", key))
	}
	if f.Name == "" {
		f.Name = key.String()
	}
	r.factories[key] = f
}

// Lookup returns the factory for key.
func (r *Registry) Lookup(key screen.Key) (Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.factories[key]
	return f, ok
}

// List returns information about all registered screens, sorted by key.
func (r *Registry) List() []Info {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Info, 0, len(r.factories))
	for key, f := range r.factories {
		result = append(result, Info{
			Key:      key,
			Name:     f.Name,
			TakeArgs: f.WithArgs != nil,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Key < result[j].Key
	})

	return result
}

// Create instantiates a screen through its key-only constructor.
// An unregistered key yields a TransitionError wrapping ErrUnknownScreen;
// a failing constructor yields a ConfigurationError.
func (r *Registry) Create(key screen.Key, env screen.Env) (screen.Screen, error) {
	f, ok := r.Lookup(key)
	if !ok {
		return nil, &screen.TransitionError{Key: key, Err: screen.ErrUnknownScreen}
	}

	s, err := f.New(env)
	if err != nil {
		return nil, &screen.ConfigurationError{Screen: key, Err: err}
	}
	return s, nil
}

// CreateWithArgs instantiates a screen through its argument-taking
// constructor. Nil args fall back to Create. Arguments aimed at another
// screen, or a variant without an args constructor, yield a TransitionError.
// A constructor may reject the payload by returning ErrArgsMismatch or
// ErrArgsUnsupported (possibly wrapped); any other failure is a
// ConfigurationError.
func (r *Registry) CreateWithArgs(key screen.Key, env screen.Env, args screen.Args) (screen.Screen, error) {
	if args == nil {
		return r.Create(key, env)
	}

	f, ok := r.Lookup(key)
	if !ok {
		return nil, &screen.TransitionError{Key: key, Err: screen.ErrUnknownScreen}
	}
	if f.WithArgs == nil {
		return nil, &screen.TransitionError{Key: key, Err: screen.ErrArgsUnsupported}
	}
	if args.Target() != key {
		return nil, &screen.TransitionError{Key: key, Err: screen.ErrArgsMismatch}
	}

	s, err := f.WithArgs(env, args)
	if err != nil {
		if sentinel := argsSentinel(err); sentinel != nil {
			return nil, &screen.TransitionError{Key: key, Err: sentinel}
		}
		return nil, &screen.ConfigurationError{Screen: key, Err: err}
	}
	return s, nil
}

// Package-level registry used by screen packages' init().
var defaultRegistry = New()

// Default returns the process-wide registry.
func Default() *Registry {
	return defaultRegistry
}

// Register adds a factory to the process-wide registry.
// Typically called from a screen package's init() function.
func Register(key screen.Key, f Factory) {
	defaultRegistry.Register(key, f)
}

// List returns the screens in the process-wide registry.
func List() []Info {
	return defaultRegistry.List()
}
