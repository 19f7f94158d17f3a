// Package session provides the durable slots the session binding is written
// to. Two independent slots exist so the logged-in identifier survives both
// full restarts (database slot) and, separately, in-session restarts
// (state-file slot); resolution accepts whichever slot is populated.
package session

import "context"

// Slot is one durable string cell holding the bound account identifier.
type Slot interface {
	// Get returns the stored value, or "" when the slot is empty.
	Get(ctx context.Context) (string, error)

	// Set stores the value, replacing any previous one.
	Set(ctx context.Context, value string) error

	// Remove empties the slot. Removing an empty slot is not an error.
	Remove(ctx context.Context) error
}
