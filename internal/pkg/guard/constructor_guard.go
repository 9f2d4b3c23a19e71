// Package guard provides a defensive construction pattern for command and
// value objects: a zero-value struct fails validation until it has been
// created through its designated constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is supplied and the object was not constructed properly.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard distinguishes objects created through their constructor
// from zero values. Embed it in a struct and set it with NewConstructorGuard
// inside the constructor; Validate then rejects any zero-value instance.
//
// Example:
//
//	type CreateShipmentCommand struct {
//	    merchantID kernel.UUID
//	    guard      guard.ConstructorGuard
//	}
//
//	func NewCreateShipmentCommand(...) (CreateShipmentCommand, error) {
//	    return CreateShipmentCommand{..., guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c CreateShipmentCommand) Validate() error {
//	    return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks an object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the guarded object was created through its
// constructor; otherwise it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
