// Package ports declares the boundary between the HTTP transport and the
// simulation engine, so handlers depend on a narrow interface rather than
// the concrete engine type.
package ports

import (
	"ride-hail-sim/internal/domain/grid"
	"ride-hail-sim/internal/engine"
)

// SimEngine is everything the HTTP transport needs from the simulation.
type SimEngine interface {
	CreateDriver(id string, pos grid.Position) (engine.DriverView, error)
	DeleteDriver(id string) error
	GetDriver(id string) (engine.DriverView, error)

	CreateRider(id string, pos grid.Position) (engine.RiderView, error)
	DeleteRider(id string) error
	GetRider(id string) (engine.RiderView, error)

	RequestRide(id, riderID string, pickup, dropoff grid.Position) (engine.RideView, error)
	AcceptRide(rideID string) (engine.RideView, error)
	RejectRide(rideID string) (engine.RideView, error)
	GetRide(id string) (engine.RideView, error)

	Tick() engine.StateView
	State() engine.StateView
	Reset()
}
