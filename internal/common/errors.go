// Package common contains shared constants and sentinel errors used across
// photovault components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Validation errors: bad input, nothing mutated.
	ErrInvalidIdentifier = errors.New("invalid identifier")
	ErrInvalidCredential = errors.New("invalid credential")
	ErrEmptyFolderName   = errors.New("folder name is empty")
	ErrFolderNameTooLong = errors.New("folder name is too long")

	// Conflict errors: state unchanged.
	ErrIdentifierTaken     = errors.New("identifier already registered")
	ErrDuplicateFolderName = errors.New("folder name already in use")

	// Lookup / auth errors.
	ErrAccountNotFound = errors.New("account not found")
	ErrWrongCredential = errors.New("wrong credential")
	ErrFolderNotFound  = errors.New("folder not found")

	// ErrBackend marks persistence failures. They are warning-grade: the
	// in-memory state stays valid for the rest of the session, but the
	// mutation may not survive a restart.
	ErrBackend = errors.New("storage backend unavailable")
)
