package screen

import (
	"errors"
	"fmt"
)

// Reasons a transition request is rejected.
var (
	ErrUnknownScreen   = errors.New("no screen registered for key")
	ErrArgsUnsupported = errors.New("screen has no argument constructor")
	ErrArgsMismatch    = errors.New("arguments do not match target screen")
)

// TransitionError reports a rejected transition request. It is recoverable:
// the active screen stays in place.
type TransitionError struct {
	Key Key
	Err error
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("screen: invalid transition to %s: %v", e.Key, e.Err)
}

func (e *TransitionError) Unwrap() error {
	return e.Err
}

// ConfigurationError reports that a screen could not be constructed because
// a required resource (font, asset folder, binding table) is missing or
// invalid. It is fatal to the game loop, which shuts down with a diagnostic.
type ConfigurationError struct {
	Screen Key
	Err    error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("screen: cannot construct %s: %v", e.Screen, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// IsConfigurationError reports whether err is a fatal construction failure.
func IsConfigurationError(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}
