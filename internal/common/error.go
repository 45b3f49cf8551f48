// Package common defines shared sentinel errors used across the storefront
// client. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Authentication errors. Login distinguishes an unknown identity from a
	// wrong secret so the caller can offer registration for the former.
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidPassword = errors.New("invalid password")

	// Registration errors.
	ErrDuplicateIdentity = errors.New("email already registered")

	// Validation errors, raised before any store mutation is attempted.
	ErrMissingField = errors.New("all fields are required")

	// Catalog errors, wrapped with a human-readable message by the pipeline.
	ErrCatalogFetch = errors.New("catalog fetch failed")
)
