// Package guard provides a small helper for enforcing that domain objects
// are created through their constructors rather than as zero values.
//
// A ConstructorGuard field is embedded in a value object or command; the
// constructor initializes it via NewConstructorGuard, and Validate reports
// whether the enclosing object went through the constructor. The zero value
// of ConstructorGuard always fails validation.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no custom error is supplied
// and the guarded object was not created through its constructor.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed.
// The zero value is invalid; only NewConstructorGuard produces a passing guard.
// ConstructorGuard is immutable and safe for concurrent use.
type ConstructorGuard struct {
	constructed bool
}

// NewConstructorGuard returns a guard that passes validation.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{constructed: true}
}

// Validate returns nil if the guard was created via NewConstructorGuard.
// For a zero-value guard it returns notConstructedErr, or
// ErrDefaultConstructorGuard when notConstructedErr is nil.
func (g ConstructorGuard) Validate(notConstructedErr error) error {
	if g.constructed {
		return nil
	}
	if notConstructedErr != nil {
		return notConstructedErr
	}
	return ErrDefaultConstructorGuard
}
