// Package guard provides a defensive construction pattern for commands,
// queries and value objects: a small flag that distinguishes instances built
// through their designated constructor from zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil error is
// passed as the validation error. This ensures validation always fails with
// a meaningful message even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures objects are only created through their designated
// constructor functions. Embedding a ConstructorGuard in a struct makes it
// possible to detect whether the struct was properly initialized or created
// as a zero value, so invariants established by the constructor can be
// trusted everywhere else.
//
// Example usage:
//
//	type CreateOrderCommand struct {
//	    customer string
//	    guard    guard.ConstructorGuard
//	}
//
//	func NewCreateOrderCommand(customer string) CreateOrderCommand {
//	    return CreateOrderCommand{
//	        customer: customer,
//	        guard:    guard.NewConstructorGuard(),
//	    }
//	}
//
//	func (c CreateOrderCommand) Validate() error {
//	    return c.guard.Validate(ErrCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a ConstructorGuard that marks an object as
// properly constructed. Call it in the constructor of the guarded type.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was created through its
// constructor. Returns nil for properly constructed objects, the provided
// validationError for zero values, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
