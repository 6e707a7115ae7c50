package repo

import "errors"

var (
	// ErrProductNotFound is returned when a product id has no row.
	ErrProductNotFound = errors.New("product not found")
	// ErrUserNotFound is returned when a user lookup matches nothing.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateUsername is returned when an insert violates the
	// username unique constraint.
	ErrDuplicateUsername = errors.New("username already exists")
)
