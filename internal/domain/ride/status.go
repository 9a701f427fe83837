package ride

import (
	"errors"
	"strings"
)

// Status is a ride status as carried on the wire and in the world state.
type Status string

const (
	StatusWaiting        Status = "waiting"
	StatusAssigned       Status = "assigned"
	StatusAwaitingAccept Status = "awaiting_accept"
	StatusRejected       Status = "rejected"
	StatusInProgress     Status = "in_progress"
	StatusCompleted      Status = "completed"
	StatusFailed         Status = "failed"
)

var ErrInvalidStatus = errors.New("invalid ride status")

// ParseStatus normalizes (trims+lowercases) and validates a status string.
func ParseStatus(in string) (Status, error) {
	status := Status(strings.ToLower(strings.TrimSpace(in)))
	if status.Valid() {
		return status, nil
	}
	return "", ErrInvalidStatus
}

// Valid reports whether status is one of the allowed ride status constants.
//
// StatusRejected is part of the taxonomy but never produced by the engine:
// a rejection sends the ride back to waiting for re-dispatch, or to failed
// if no other driver is eligible. It remains a legal wire value.
func (status Status) Valid() bool {
	switch status {
	case StatusWaiting, StatusAssigned, StatusAwaitingAccept, StatusRejected,
		StatusInProgress, StatusCompleted, StatusFailed:
		return true
	default:
		return false
	}
}

// String returns the wire representation of the Status.
func (status Status) String() string {
	return string(status)
}

// Terminal reports whether status is one from which the engine never
// transitions the ride again (aside from cleanup of driver linkage on
// cascade failure).
func (status Status) Terminal() bool {
	switch status {
	case StatusCompleted, StatusFailed, StatusRejected:
		return true
	default:
		return false
	}
}
