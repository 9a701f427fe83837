package engine

import (
	"sort"

	"ride-hail-sim/internal/domain/driver"
	"ride-hail-sim/internal/domain/grid"
	"ride-hail-sim/internal/domain/ride"
	"ride-hail-sim/internal/domain/rider"
)

// DriverView is an immutable, deep-copied snapshot of a Driver suitable for
// handing to callers outside the lock.
type DriverView struct {
	ID                 string        `json:"id"`
	Position           grid.Position `json:"position"`
	Status             string        `json:"status"`
	AssignedCount      int           `json:"assigned_count"`
	LastBusyTick       *int          `json:"last_busy_tick,omitempty"`
	CurrentRideID      *string       `json:"current_ride_id,omitempty"`
	IsHeadingToDropoff bool          `json:"is_heading_to_dropoff"`
}

// RiderView is an immutable, deep-copied snapshot of a Rider.
type RiderView struct {
	ID       string        `json:"id"`
	Position grid.Position `json:"position"`
}

// RideView is an immutable, deep-copied snapshot of a Ride.
type RideView struct {
	ID                string        `json:"id"`
	RiderID           string        `json:"rider_id"`
	Pickup            grid.Position `json:"pickup"`
	Dropoff           grid.Position `json:"dropoff"`
	Status            string        `json:"status"`
	DriverID          *string       `json:"driver_id,omitempty"`
	RejectedDriverIDs []string      `json:"rejected_driver_ids"`
}

// StateView is a full snapshot of the world at a point in time.
type StateView struct {
	Tick    int          `json:"tick"`
	Drivers []DriverView `json:"drivers"`
	Riders  []RiderView  `json:"riders"`
	Rides   []RideView   `json:"rides"`
}

func viewDriver(d *driver.Driver) DriverView {
	v := DriverView{
		ID:                 d.ID,
		Position:           d.Position,
		Status:             d.Status.String(),
		AssignedCount:      d.AssignedCount,
		IsHeadingToDropoff: d.IsHeadingToDropoff,
	}
	if d.LastBusyTick != nil {
		t := *d.LastBusyTick
		v.LastBusyTick = &t
	}
	if d.CurrentRideID != nil {
		id := *d.CurrentRideID
		v.CurrentRideID = &id
	}
	return v
}

func viewRider(r *rider.Rider) RiderView {
	return RiderView{ID: r.ID, Position: r.Position}
}

func viewRide(r *ride.Ride) RideView {
	v := RideView{
		ID:                r.ID,
		RiderID:           r.RiderID,
		Pickup:            r.Pickup,
		Dropoff:           r.Dropoff,
		Status:            r.Status.String(),
		RejectedDriverIDs: r.RejectedDriverIDList(),
	}
	if r.DriverID != nil {
		id := *r.DriverID
		v.DriverID = &id
	}
	return v
}

// snapshot builds a full StateView of w. Callers must hold w.mu.
func (w *world) snapshot() StateView {
	sv := StateView{Tick: w.tick}
	for _, id := range w.sortedDriverIDs() {
		sv.Drivers = append(sv.Drivers, viewDriver(w.drivers[id]))
	}
	riderIDs := make([]string, 0, len(w.riders))
	for id := range w.riders {
		riderIDs = append(riderIDs, id)
	}
	sort.Strings(riderIDs)
	for _, id := range riderIDs {
		sv.Riders = append(sv.Riders, viewRider(w.riders[id]))
	}
	rideIDs := make([]string, 0, len(w.rides))
	for id := range w.rides {
		rideIDs = append(rideIDs, id)
	}
	sort.Strings(rideIDs)
	for _, id := range rideIDs {
		sv.Rides = append(sv.Rides, viewRide(w.rides[id]))
	}
	return sv
}
