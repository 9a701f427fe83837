package engine

import (
	"ride-hail-sim/internal/domain/driver"
	"ride-hail-sim/internal/domain/grid"
)

// advanceTick increments the tick counter and moves every on_trip driver
// one step, in ascending driver id order, completing rides that reach
// their dropoff.
//
// The phase flip and the first step toward dropoff share a tick: a driver
// that steps onto pickup keeps heading to pickup for the rest of that tick,
// and on the next tick it flips phase and advances toward dropoff in the
// same pass. A driver that is already exactly at pickup at the start of a
// tick, with the phase not yet flipped, spends that tick flipping and
// departing rather than idling.
func advanceTick(w *world) {
	w.tick++

	for _, id := range w.sortedDriverIDs() {
		d := w.drivers[id]
		if d.Status != driver.StatusOnTrip {
			continue
		}
		if d.CurrentRideID == nil {
			continue
		}
		r, ok := w.rides[*d.CurrentRideID]
		if !ok {
			continue
		}

		if !d.IsHeadingToDropoff && d.Position.Equal(r.Pickup) {
			d.IsHeadingToDropoff = true
		}

		target := r.Pickup
		if d.IsHeadingToDropoff {
			target = r.Dropoff
		}

		stepToward(d, target)

		if d.IsHeadingToDropoff && d.Position.Equal(r.Dropoff) {
			completeRide(w, r, d, w.tick)
		}
	}
}

// stepToward moves d exactly one grid unit toward target, prioritizing the
// x axis over y so that the resulting path is deterministic.
func stepToward(d *driver.Driver, target grid.Position) {
	if d.Position.X != target.X {
		if d.Position.X < target.X {
			d.Position.X++
		} else {
			d.Position.X--
		}
		return
	}
	if d.Position.Y != target.Y {
		if d.Position.Y < target.Y {
			d.Position.Y++
		} else {
			d.Position.Y--
		}
	}
}
