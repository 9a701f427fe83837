// Package driver holds the Driver entity: a vehicle moving on the grid,
// available to be matched against waiting riders.
package driver

import (
	"errors"
	"strings"

	"ride-hail-sim/internal/domain/grid"
)

// Driver is a single dispatchable vehicle in the world.
type Driver struct {
	ID       string
	Position grid.Position
	Status   Status

	// AssignedCount is the number of rides this driver has ever accepted
	// (offers alone do not count); used as a dispatch tie-breaker to
	// spread load.
	AssignedCount int

	// LastBusyTick is the tick at which the driver most recently completed
	// a ride. Nil means the driver has never completed one.
	LastBusyTick *int

	// CurrentRideID is the ride this driver is currently matched to or
	// carrying, nil when the driver has no ride.
	CurrentRideID *string

	// IsHeadingToDropoff is false while the driver is travelling to the
	// rider's pickup cell, and flips to true once it arrives there.
	IsHeadingToDropoff bool
}

var (
	ErrIDRequired  = errors.New("driver id is required")
	ErrAlreadyBusy = errors.New("driver is not available")
	ErrNotAssigned = errors.New("driver has no current ride")
)

// neverBusySentinel mirrors the "far in the past" marker used to compute
// idle time for a driver that has never carried a ride.
const neverBusySentinel = -999999

// New creates a Driver at pos, validated against bounds, starting Available
// and idle.
func New(id string, pos grid.Position, bounds grid.Bounds) (*Driver, error) {
	if id = strings.TrimSpace(id); id == "" {
		return nil, ErrIDRequired
	}
	if err := bounds.Validate(pos); err != nil {
		return nil, err
	}
	return &Driver{
		ID:       id,
		Position: pos,
		Status:   StatusAvailable,
	}, nil
}

// IdleTicks returns how long (in ticks) the driver has been idle as of
// currentTick. A driver that has never been busy is treated as having been
// idle since far in the past, so it never loses a tie-break against a
// driver who just finished a ride.
func (d *Driver) IdleTicks(currentTick int) int {
	if d.LastBusyTick == nil {
		return currentTick - neverBusySentinel
	}
	return currentTick - *d.LastBusyTick
}

// Assign marks the driver as carrying rideID, moving it out of the
// Available pool and pointing it at the rider's pickup cell first.
// AssignedCount is not touched here: it only counts acceptances (see
// BeginTrip), not offers.
func (d *Driver) Assign(rideID string) error {
	if d.Status != StatusAvailable {
		return ErrAlreadyBusy
	}
	id := rideID
	d.CurrentRideID = &id
	d.Status = StatusAssigned
	d.IsHeadingToDropoff = false
	return nil
}

// BeginTrip transitions the driver from Assigned to OnTrip once the driver
// has accepted the offer and counts the acceptance. The driver keeps heading toward
// pickup; IsHeadingToDropoff only flips once the tick engine observes it
// arrive there.
func (d *Driver) BeginTrip() error {
	if d.Status != StatusAssigned {
		return ErrAlreadyBusy
	}
	d.Status = StatusOnTrip
	d.AssignedCount++
	return nil
}

// Release clears the current ride and returns the driver to the Available
// pool, whether the ride completed, failed, or was rejected.
func (d *Driver) Release() {
	d.CurrentRideID = nil
	d.Status = StatusAvailable
	d.IsHeadingToDropoff = false
}

// HasRide reports whether the driver currently carries a ride assignment.
func (d *Driver) HasRide() bool {
	return d.CurrentRideID != nil
}
