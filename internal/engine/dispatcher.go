package engine

import (
	"ride-hail-sim/internal/domain/driver"
	"ride-hail-sim/internal/domain/grid"
	"ride-hail-sim/internal/domain/ride"
)

// selectDriver picks the best eligible driver for r, or reports none
// eligible. A driver is eligible iff it is Available and has not already
// rejected this ride. Among eligible drivers the winner minimizes the
// lexicographic key (eta, assigned_count, -idle_ticks); ties break on the
// lower driver id.
func selectDriver(w *world, r *ride.Ride) (string, bool) {
	var bestID string
	var bestEta, bestAssigned, bestNegIdle int
	found := false

	for _, id := range w.sortedDriverIDs() {
		d := w.drivers[id]
		if d.Status != driver.StatusAvailable {
			continue
		}
		if r.HasRejected(d.ID) {
			continue
		}

		eta := grid.ManhattanDistance(d.Position, r.Pickup)
		assigned := d.AssignedCount
		negIdle := -d.IdleTicks(w.tick)

		if !found || less(eta, assigned, negIdle, d.ID, bestEta, bestAssigned, bestNegIdle, bestID) {
			found = true
			bestID = d.ID
			bestEta = eta
			bestAssigned = assigned
			bestNegIdle = negIdle
		}
	}

	return bestID, found
}

// less reports whether (eta, assigned, negIdle, id) sorts strictly before
// (eta2, assigned2, negIdle2, id2) under the dispatcher's ordering.
func less(eta, assigned, negIdle int, id string, eta2, assigned2, negIdle2 int, id2 string) bool {
	if eta != eta2 {
		return eta < eta2
	}
	if assigned != assigned2 {
		return assigned < assigned2
	}
	if negIdle != negIdle2 {
		return negIdle < negIdle2
	}
	return id < id2
}
