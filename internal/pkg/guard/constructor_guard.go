// Package guard detects domain objects that bypassed their constructor.
//
// Value objects, aggregates, commands and queries embed a ConstructorGuard
// set by their NewX function. A zero-value struct therefore fails Validate,
// which keeps half-initialised objects out of repositories and handlers.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes no
// specific error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded as a private field and set only by constructors.
//
// Example:
//
//	type City struct {
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewCity(name string) (City, error) {
//	    return City{name: name, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c City) Validate() error {
//	    return c.guard.Validate(ErrCityIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking its owner as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is
// nil) if the owner was not built by its constructor.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
