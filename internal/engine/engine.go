package engine

import (
	"ride-hail-sim/internal/domain/driver"
	"ride-hail-sim/internal/domain/grid"
	"ride-hail-sim/internal/domain/rider"
	"ride-hail-sim/internal/general/idgen"
)

// Engine is the external facade over the world: every exported method
// takes the lock, performs one whole operation, and returns immutable
// snapshots. Callers never observe a partially-mutated world.
type Engine struct {
	w      *world
	bounds grid.Bounds
}

// New builds an Engine over a width x height grid.
func New(width, height int) (*Engine, error) {
	bounds, err := grid.NewBounds(width, height)
	if err != nil {
		return nil, err
	}
	return &Engine{w: newWorld(bounds), bounds: bounds}, nil
}

// Reset clears every entity and resets the tick counter to zero, keeping
// the same grid bounds.
func (e *Engine) Reset() {
	e.w.mu.Lock()
	defer e.w.mu.Unlock()
	e.w.reset(e.bounds)
}

// CreateDriver adds a driver at pos. If id is empty a fresh one is
// generated.
func (e *Engine) CreateDriver(id string, pos grid.Position) (DriverView, error) {
	e.w.mu.Lock()
	defer e.w.mu.Unlock()

	if id == "" {
		id = idgen.New()
	}
	if _, exists := e.w.drivers[id]; exists {
		return DriverView{}, ErrDuplicateID
	}

	d, err := driver.New(id, pos, e.w.bounds)
	if err != nil {
		return DriverView{}, err
	}
	e.w.drivers[d.ID] = d
	return viewDriver(d), nil
}

// DeleteDriver removes a driver, cascading a bound ride to failed.
func (e *Engine) DeleteDriver(id string) error {
	e.w.mu.Lock()
	defer e.w.mu.Unlock()
	return deleteDriver(e.w, id)
}

// CreateRider adds a rider at pos. If id is empty a fresh one is generated.
func (e *Engine) CreateRider(id string, pos grid.Position) (RiderView, error) {
	e.w.mu.Lock()
	defer e.w.mu.Unlock()

	if id == "" {
		id = idgen.New()
	}
	if _, exists := e.w.riders[id]; exists {
		return RiderView{}, ErrDuplicateID
	}

	r, err := rider.New(id, pos, e.w.bounds)
	if err != nil {
		return RiderView{}, err
	}
	e.w.riders[r.ID] = r
	return viewRider(r), nil
}

// DeleteRider removes a rider, cascading its open rides to failed.
func (e *Engine) DeleteRider(id string) error {
	e.w.mu.Lock()
	defer e.w.mu.Unlock()
	return deleteRider(e.w, id)
}

// RequestRide creates a ride and immediately runs the dispatcher against
// it. If id is empty a fresh one is generated. The returned ride may
// already be failed if no driver was eligible.
func (e *Engine) RequestRide(id, riderID string, pickup, dropoff grid.Position) (RideView, error) {
	e.w.mu.Lock()
	defer e.w.mu.Unlock()

	if id == "" {
		id = idgen.New()
	}
	r, err := requestRide(e.w, id, riderID, pickup, dropoff)
	if err != nil {
		return RideView{}, err
	}
	return viewRide(r), nil
}

// AcceptRide accepts a ride offer on behalf of its bound driver.
func (e *Engine) AcceptRide(rideID string) (RideView, error) {
	e.w.mu.Lock()
	defer e.w.mu.Unlock()

	r, err := acceptRide(e.w, rideID)
	if err != nil {
		return RideView{}, err
	}
	return viewRide(r), nil
}

// RejectRide rejects a ride offer on behalf of its bound driver and
// re-dispatches.
func (e *Engine) RejectRide(rideID string) (RideView, error) {
	e.w.mu.Lock()
	defer e.w.mu.Unlock()

	r, err := rejectRide(e.w, rideID)
	if err != nil {
		return RideView{}, err
	}
	return viewRide(r), nil
}

// Tick advances the simulation by one step and returns the resulting
// state.
func (e *Engine) Tick() StateView {
	e.w.mu.Lock()
	defer e.w.mu.Unlock()

	advanceTick(e.w)
	return e.w.snapshot()
}

// State returns a full snapshot of the current world without mutating it.
func (e *Engine) State() StateView {
	e.w.mu.Lock()
	defer e.w.mu.Unlock()
	return e.w.snapshot()
}

// GetDriver returns a snapshot of a single driver.
func (e *Engine) GetDriver(id string) (DriverView, error) {
	e.w.mu.Lock()
	defer e.w.mu.Unlock()

	d, ok := e.w.drivers[id]
	if !ok {
		return DriverView{}, ErrDriverNotFound
	}
	return viewDriver(d), nil
}

// GetRider returns a snapshot of a single rider.
func (e *Engine) GetRider(id string) (RiderView, error) {
	e.w.mu.Lock()
	defer e.w.mu.Unlock()

	r, ok := e.w.riders[id]
	if !ok {
		return RiderView{}, ErrRiderNotFound
	}
	return viewRider(r), nil
}

// GetRide returns a snapshot of a single ride.
func (e *Engine) GetRide(id string) (RideView, error) {
	e.w.mu.Lock()
	defer e.w.mu.Unlock()

	r, ok := e.w.rides[id]
	if !ok {
		return RideView{}, ErrRideNotFound
	}
	return viewRide(r), nil
}
