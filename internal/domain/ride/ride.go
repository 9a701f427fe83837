// Package ride holds the Ride entity and its lifecycle status.
package ride

import (
	"errors"
	"sort"
	"strings"

	"ride-hail-sim/internal/domain/grid"
)

// Ride is a single request to travel from a pickup cell to a dropoff cell.
type Ride struct {
	ID      string
	RiderID string
	Pickup  grid.Position
	Dropoff grid.Position
	Status  Status

	// DriverID is present iff Status is AwaitingAccept or InProgress, and
	// may be preserved on terminal states for audit.
	DriverID *string

	// RejectedDriverIDs is the set of drivers that have rejected this ride;
	// never contains duplicates.
	RejectedDriverIDs map[string]struct{}
}

var (
	ErrIDRequired      = errors.New("ride id is required")
	ErrRiderIDRequired = errors.New("rider id is required")
)

// New creates a Ride in status Waiting with an empty rejection set.
func New(id, riderID string, pickup, dropoff grid.Position, bounds grid.Bounds) (*Ride, error) {
	if id = strings.TrimSpace(id); id == "" {
		return nil, ErrIDRequired
	}
	if riderID = strings.TrimSpace(riderID); riderID == "" {
		return nil, ErrRiderIDRequired
	}
	if err := bounds.Validate(pickup); err != nil {
		return nil, err
	}
	if err := bounds.Validate(dropoff); err != nil {
		return nil, err
	}
	return &Ride{
		ID:                id,
		RiderID:           riderID,
		Pickup:            pickup,
		Dropoff:           dropoff,
		Status:            StatusWaiting,
		RejectedDriverIDs: make(map[string]struct{}),
	}, nil
}

// HasRejected reports whether driverID has already rejected this ride.
func (r *Ride) HasRejected(driverID string) bool {
	_, ok := r.RejectedDriverIDs[driverID]
	return ok
}

// AddRejection records driverID in the rejection set. It is a no-op if the
// driver is already present, preserving I7 (no duplicates).
func (r *Ride) AddRejection(driverID string) {
	r.RejectedDriverIDs[driverID] = struct{}{}
}

// BindDriver assigns driverID to the ride and moves it to AwaitingAccept.
func (r *Ride) BindDriver(driverID string) {
	id := driverID
	r.DriverID = &id
	r.Status = StatusAwaitingAccept
}

// Unbind clears the driver linkage without changing status; callers set
// the resulting status themselves.
func (r *Ride) Unbind() {
	r.DriverID = nil
}

// Fail transitions the ride to Failed, optionally preserving driver
// linkage for audit.
func (r *Ride) Fail(preserveDriverID bool) {
	if !preserveDriverID {
		r.DriverID = nil
	}
	r.Status = StatusFailed
}

// RejectedDriverIDList returns the rejection set as a sorted slice, for
// deterministic serialization.
func (r *Ride) RejectedDriverIDList() []string {
	out := make([]string, 0, len(r.RejectedDriverIDs))
	for id := range r.RejectedDriverIDs {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
