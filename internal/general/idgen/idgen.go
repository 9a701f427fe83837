// Package idgen generates the fresh unique identifiers the engine falls
// back to when a caller does not supply their own.
package idgen

import "github.com/google/uuid"

// New returns a fresh random identifier.
func New() string {
	return uuid.NewString()
}
