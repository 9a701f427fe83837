package engine

import (
	"errors"

	"ride-hail-sim/internal/domain/driver"
	"ride-hail-sim/internal/domain/grid"
	"ride-hail-sim/internal/domain/ride"
)

var (
	ErrRideNotAwaitingAccept = errors.New("ride is not awaiting acceptance")
	ErrDriverNotBound        = errors.New("bound driver is not in the assigned state")
)

// dispatch attempts to bind r to an eligible driver, transitioning the ride
// to awaiting_accept, or to failed if none is eligible. It mutates both the
// ride and the winning driver.
func dispatch(w *world, r *ride.Ride) {
	driverID, ok := selectDriver(w, r)
	if !ok {
		r.Fail(false)
		return
	}
	d := w.drivers[driverID]
	if err := d.Assign(r.ID); err != nil {
		// Should not happen: selectDriver only returns Available drivers.
		r.Fail(false)
		return
	}
	r.BindDriver(driverID)
}

// requestRide creates a new ride from riderID to dropoff via pickup and
// immediately runs dispatch on it.
func requestRide(w *world, id, riderID string, pickup, dropoff grid.Position) (*ride.Ride, error) {
	if _, exists := w.rides[id]; exists {
		return nil, ErrDuplicateID
	}
	if _, exists := w.riders[riderID]; !exists {
		return nil, ErrRiderNotFound
	}

	r, err := ride.New(id, riderID, pickup, dropoff, w.bounds)
	if err != nil {
		return nil, err
	}

	w.rides[r.ID] = r
	dispatch(w, r)
	return r, nil
}

// acceptRide transitions a ride from awaiting_accept to in_progress and its
// bound driver from assigned to on_trip.
func acceptRide(w *world, rideID string) (*ride.Ride, error) {
	r, ok := w.rides[rideID]
	if !ok {
		return nil, ErrRideNotFound
	}
	if r.Status != ride.StatusAwaitingAccept || r.DriverID == nil {
		return nil, ErrRideNotAwaitingAccept
	}
	d, ok := w.drivers[*r.DriverID]
	if !ok || d.Status != driver.StatusAssigned {
		return nil, ErrDriverNotBound
	}

	if err := d.BeginTrip(); err != nil {
		return nil, err
	}
	r.Status = ride.StatusInProgress
	return r, nil
}

// rejectRide unbinds the current driver, records the rejection, and either
// re-dispatches to a new driver or fails the ride if none remain eligible.
func rejectRide(w *world, rideID string) (*ride.Ride, error) {
	r, ok := w.rides[rideID]
	if !ok {
		return nil, ErrRideNotFound
	}
	if r.Status != ride.StatusAwaitingAccept || r.DriverID == nil {
		return nil, ErrRideNotAwaitingAccept
	}

	rejectedID := *r.DriverID
	r.AddRejection(rejectedID)
	if d, ok := w.drivers[rejectedID]; ok {
		d.Release()
	}
	r.Unbind()
	r.Status = ride.StatusWaiting

	dispatch(w, r)
	return r, nil
}

// completeRide is invoked by the tick engine when an on_trip driver reaches
// its ride's dropoff cell.
func completeRide(w *world, r *ride.Ride, d *driver.Driver, currentTick int) {
	if rd, ok := w.riders[r.RiderID]; ok {
		rd.Position = d.Position
	}
	d.Release()
	tick := currentTick
	d.LastBusyTick = &tick
	r.Status = ride.StatusCompleted
}

// deleteDriver removes a driver, cascading its bound ride (if any) to
// failed.
func deleteDriver(w *world, id string) error {
	d, ok := w.drivers[id]
	if !ok {
		return ErrDriverNotFound
	}
	if d.CurrentRideID != nil {
		if r, ok := w.rides[*d.CurrentRideID]; ok && !r.Status.Terminal() {
			r.Fail(true)
		}
	}
	delete(w.drivers, id)
	return nil
}

// deleteRider removes a rider, cascading any of its non-terminal rides to
// failed and releasing a bound driver if present.
func deleteRider(w *world, id string) error {
	if _, ok := w.riders[id]; !ok {
		return ErrRiderNotFound
	}
	for _, r := range w.rides {
		if r.RiderID != id {
			continue
		}
		switch r.Status {
		case ride.StatusWaiting, ride.StatusAwaitingAccept, ride.StatusInProgress:
			if r.DriverID != nil {
				if d, ok := w.drivers[*r.DriverID]; ok {
					d.Release()
				}
			}
			r.Fail(true)
		}
	}
	delete(w.riders, id)
	return nil
}
