// Package repository defines sentinel error values shared across the
// repositories. Handlers use them to translate persistence outcomes into
// HTTP statuses without inspecting driver-specific errors: for example
// ErrInsufficientStock becomes a 400 with the stock message, while
// ErrProductNotFound becomes a 404.
package repository

import "errors"

// ErrUsernameExists is returned when registration collides with an existing
// username. Uniqueness is enforced by the database constraint, so two
// concurrent registrations for the same name cannot both succeed.
var ErrUsernameExists = errors.New("username already registered")

// ErrProductNotFound is returned when no product with the requested id
// exists.
var ErrProductNotFound = errors.New("product not found")

// ErrInsufficientStock is returned when a sale asks for more units than are
// on hand. The decrement is not applied in that case.
var ErrInsufficientStock = errors.New("not enough stock available")

// ErrNameExists is returned when creating a category or supplier whose
// unique name is already taken.
var ErrNameExists = errors.New("name already exists")
