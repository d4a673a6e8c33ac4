package models

import "errors"

// Domain errors. Handlers map these onto HTTP status codes with errors.Is,
// so lower layers must wrap rather than rewrite them.
var (
	// ErrCerealNotFound is returned for point lookups, updates and deletes of an unknown id.
	ErrCerealNotFound = errors.New("cereal not found")
	// ErrNoCerealsFound is returned when a search matches zero rows.
	// An empty result set is an error, not an empty list.
	ErrNoCerealsFound = errors.New("no cereals found with the specified criteria")
	// ErrInvalidType is returned when a create payload carries a type outside {C, H}.
	ErrInvalidType = errors.New("invalid value for 'type': must be 'C' or 'H'")
	// ErrInvalidField is returned when a search names a column outside the whitelist.
	ErrInvalidField = errors.New("invalid field provided")
	// ErrInvalidOperator is returned when a search operator is not eq, gt or lt.
	ErrInvalidOperator = errors.New("invalid operator: must be 'eq', 'gt' or 'lt'")

	// ErrUserNotFound is returned when no user exists with the given email.
	ErrUserNotFound = errors.New("no user with such email")
	// ErrEmailTaken is returned when registering with an email that is already in use.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials is returned when the password does not match the stored hash.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
