package engine

import (
	"testing"

	"ride-hail-sim/internal/domain/driver"
	"ride-hail-sim/internal/domain/grid"
)

func mustEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := New(100, 100)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e
}

func pos(x, y int) grid.Position { return grid.Position{X: x, Y: y} }

// driverStub creates a driver through the public API and returns the live
// domain object so a test can force specific assigned_count/last_busy_tick
// fixtures for dispatcher ordering scenarios.
func driverStub(t *testing.T, e *Engine, id string, p grid.Position) *driver.Driver {
	t.Helper()
	if _, err := e.CreateDriver(id, p); err != nil {
		t.Fatalf("CreateDriver(%s): %v", id, err)
	}
	return e.w.drivers[id]
}

// Seed scenario 1: happy path, tie broken by driver id, full trip to completion.
func TestHappyPathTripCompletion(t *testing.T) {
	e := mustEngine(t)

	if _, err := e.CreateDriver("D1", pos(0, 0)); err != nil {
		t.Fatalf("CreateDriver D1: %v", err)
	}
	if _, err := e.CreateDriver("D2", pos(10, 10)); err != nil {
		t.Fatalf("CreateDriver D2: %v", err)
	}
	if _, err := e.CreateRider("R", pos(5, 5)); err != nil {
		t.Fatalf("CreateRider: %v", err)
	}

	ride, err := e.RequestRide("ride1", "R", pos(5, 5), pos(7, 5))
	if err != nil {
		t.Fatalf("RequestRide: %v", err)
	}
	if ride.Status != "awaiting_accept" || ride.DriverID == nil || *ride.DriverID != "D1" {
		t.Fatalf("RequestRide result = %+v, want awaiting_accept bound to D1", ride)
	}

	if _, err := e.AcceptRide("ride1"); err != nil {
		t.Fatalf("AcceptRide: %v", err)
	}

	var state StateView
	for i := 0; i < 12; i++ {
		state = e.Tick()
	}

	final, err := e.GetRide("ride1")
	if err != nil {
		t.Fatalf("GetRide: %v", err)
	}
	if final.Status != "completed" {
		t.Fatalf("after 12 ticks ride status = %q, want completed", final.Status)
	}

	d1, err := e.GetDriver("D1")
	if err != nil {
		t.Fatalf("GetDriver: %v", err)
	}
	if d1.Position != pos(7, 5) {
		t.Errorf("D1 final position = %+v, want (7,5)", d1.Position)
	}
	if d1.AssignedCount != 1 {
		t.Errorf("D1.AssignedCount = %d, want 1", d1.AssignedCount)
	}
	if d1.LastBusyTick == nil || *d1.LastBusyTick != 12 {
		t.Errorf("D1.LastBusyTick = %v, want 12", d1.LastBusyTick)
	}

	rider, err := e.GetRider("R")
	if err != nil {
		t.Fatalf("GetRider: %v", err)
	}
	if rider.Position != pos(7, 5) {
		t.Errorf("rider final position = %+v, want (7,5)", rider.Position)
	}
	_ = state
}

// Seed scenario 2: reject and fallback to the only other eligible driver.
func TestRejectFallsBackToNextDriver(t *testing.T) {
	e := mustEngine(t)

	if _, err := e.CreateDriver("D1", pos(0, 0)); err != nil {
		t.Fatalf("CreateDriver D1: %v", err)
	}
	if _, err := e.CreateDriver("D2", pos(50, 50)); err != nil {
		t.Fatalf("CreateDriver D2: %v", err)
	}
	if _, err := e.CreateRider("R", pos(1, 0)); err != nil {
		t.Fatalf("CreateRider: %v", err)
	}

	ride, err := e.RequestRide("ride1", "R", pos(1, 0), pos(1, 1))
	if err != nil {
		t.Fatalf("RequestRide: %v", err)
	}
	if ride.DriverID == nil || *ride.DriverID != "D1" {
		t.Fatalf("expected D1 to be selected first, got %+v", ride)
	}

	rejected, err := e.RejectRide("ride1")
	if err != nil {
		t.Fatalf("RejectRide: %v", err)
	}
	if rejected.Status != "awaiting_accept" || rejected.DriverID == nil || *rejected.DriverID != "D2" {
		t.Fatalf("after reject, expected re-dispatch to D2, got %+v", rejected)
	}

	d1, err := e.GetDriver("D1")
	if err != nil {
		t.Fatalf("GetDriver D1: %v", err)
	}
	if d1.Status != "available" || d1.AssignedCount != 0 {
		t.Errorf("D1 after rejecting = %+v, want available/assignedCount 0", d1)
	}
}

// Seed scenario 3: no drivers means an immediate, well-formed failure.
func TestNoDriversFailsImmediately(t *testing.T) {
	e := mustEngine(t)
	if _, err := e.CreateRider("R", pos(5, 5)); err != nil {
		t.Fatalf("CreateRider: %v", err)
	}

	ride, err := e.RequestRide("ride1", "R", pos(0, 0), pos(1, 1))
	if err != nil {
		t.Fatalf("RequestRide: %v", err)
	}
	if ride.Status != "failed" {
		t.Fatalf("ride status = %q, want failed", ride.Status)
	}
	if ride.DriverID != nil {
		t.Error("failed ride with no candidate should have no driver_id")
	}
}

// Seed scenario 4: deleting a driver mid-trip cascades the ride to failed.
func TestDeleteDriverMidTripCascades(t *testing.T) {
	e := mustEngine(t)
	if _, err := e.CreateDriver("D1", pos(0, 0)); err != nil {
		t.Fatalf("CreateDriver: %v", err)
	}
	if _, err := e.CreateRider("R", pos(2, 0)); err != nil {
		t.Fatalf("CreateRider: %v", err)
	}

	if _, err := e.RequestRide("ride1", "R", pos(2, 0), pos(5, 0)); err != nil {
		t.Fatalf("RequestRide: %v", err)
	}
	if _, err := e.AcceptRide("ride1"); err != nil {
		t.Fatalf("AcceptRide: %v", err)
	}

	e.Tick()

	d1, err := e.GetDriver("D1")
	if err != nil {
		t.Fatalf("GetDriver: %v", err)
	}
	if d1.Position != pos(1, 0) || d1.Status != "on_trip" {
		t.Fatalf("D1 after one tick = %+v, want (1,0)/on_trip", d1)
	}

	if err := e.DeleteDriver("D1"); err != nil {
		t.Fatalf("DeleteDriver: %v", err)
	}

	ride, err := e.GetRide("ride1")
	if err != nil {
		t.Fatalf("GetRide: %v", err)
	}
	if ride.Status != "failed" {
		t.Fatalf("ride status after driver deletion = %q, want failed", ride.Status)
	}
	if _, err := e.GetDriver("D1"); err == nil {
		t.Error("expected D1 to be gone after DeleteDriver")
	}
}

// Seed scenario 5: fairness across equal-ETA drivers picks the lower
// assigned_count.
func TestDispatcherPrefersLowerAssignedCount(t *testing.T) {
	e := mustEngine(t)
	e.w.tick = 10

	d1 := driverStub(t, e, "D1", pos(0, 0))
	d1.AssignedCount = 2
	busy5 := 5
	d1.LastBusyTick = &busy5

	d2 := driverStub(t, e, "D2", pos(0, 0))
	d2.AssignedCount = 1
	d2.LastBusyTick = &busy5

	if _, err := e.CreateRider("R", pos(0, 0)); err != nil {
		t.Fatalf("CreateRider: %v", err)
	}

	ride, err := e.RequestRide("ride1", "R", pos(0, 0), pos(1, 1))
	if err != nil {
		t.Fatalf("RequestRide: %v", err)
	}
	if ride.DriverID == nil || *ride.DriverID != "D2" {
		t.Fatalf("expected D2 (lower assigned_count) to be selected, got %+v", ride)
	}
}

// Seed scenario 6: among equal ETA and assigned_count, prefer the driver
// idle longer.
func TestDispatcherPrefersLongerIdle(t *testing.T) {
	e := mustEngine(t)
	e.w.tick = 10

	d1 := driverStub(t, e, "D1", pos(0, 0))
	d1.AssignedCount = 1
	busy2 := 2
	d1.LastBusyTick = &busy2

	d2 := driverStub(t, e, "D2", pos(0, 0))
	d2.AssignedCount = 1
	busy8 := 8
	d2.LastBusyTick = &busy8

	if _, err := e.CreateRider("R", pos(0, 0)); err != nil {
		t.Fatalf("CreateRider: %v", err)
	}

	ride, err := e.RequestRide("ride1", "R", pos(0, 0), pos(1, 1))
	if err != nil {
		t.Fatalf("RequestRide: %v", err)
	}
	if ride.DriverID == nil || *ride.DriverID != "D1" {
		t.Fatalf("expected D1 (idle longer: 8 vs 2) to be selected, got %+v", ride)
	}
}

func TestTickWithNoOnTripDriversIsPureCounterBump(t *testing.T) {
	e := mustEngine(t)
	if _, err := e.CreateDriver("D1", pos(5, 5)); err != nil {
		t.Fatalf("CreateDriver: %v", err)
	}

	before, err := e.GetDriver("D1")
	if err != nil {
		t.Fatalf("GetDriver: %v", err)
	}

	state := e.Tick()
	if state.Tick != 1 {
		t.Fatalf("Tick() count = %d, want 1", state.Tick)
	}

	after, err := e.GetDriver("D1")
	if err != nil {
		t.Fatalf("GetDriver: %v", err)
	}
	if after.Position != before.Position || after.Status != before.Status {
		t.Errorf("driver mutated by a tick with no on-trip drivers: before=%+v after=%+v", before, after)
	}
}

// TestPhaseFlipAndFirstDropoffStepShareATick exercises the arrival boundary:
// a driver one unit from pickup needs a tick to reach it, then flips phase
// and takes its first step toward dropoff on the very next tick rather than
// spending a tick stationary at pickup.
func TestPhaseFlipAndFirstDropoffStepShareATick(t *testing.T) {
	e := mustEngine(t)
	if _, err := e.CreateDriver("D1", pos(0, 0)); err != nil {
		t.Fatalf("CreateDriver: %v", err)
	}
	if _, err := e.CreateRider("R", pos(1, 0)); err != nil {
		t.Fatalf("CreateRider: %v", err)
	}
	if _, err := e.RequestRide("ride1", "R", pos(1, 0), pos(3, 0)); err != nil {
		t.Fatalf("RequestRide: %v", err)
	}
	if _, err := e.AcceptRide("ride1"); err != nil {
		t.Fatalf("AcceptRide: %v", err)
	}

	e.Tick()
	d1, err := e.GetDriver("D1")
	if err != nil {
		t.Fatalf("GetDriver: %v", err)
	}
	if d1.Position != pos(1, 0) || d1.IsHeadingToDropoff {
		t.Fatalf("after reaching pickup = %+v, want (1,0)/heading=false", d1)
	}

	e.Tick()
	d1, err = e.GetDriver("D1")
	if err != nil {
		t.Fatalf("GetDriver: %v", err)
	}
	if d1.Position != pos(2, 0) || !d1.IsHeadingToDropoff {
		t.Fatalf("on the flip tick = %+v, want (2,0)/heading=true", d1)
	}

	e.Tick()
	ride, err := e.GetRide("ride1")
	if err != nil {
		t.Fatalf("GetRide: %v", err)
	}
	if ride.Status != "completed" {
		t.Fatalf("ride status = %q, want completed", ride.Status)
	}
	if d1, err = e.GetDriver("D1"); err != nil || d1.Position != pos(3, 0) {
		t.Fatalf("final driver state = %+v, err=%v, want (3,0)", d1, err)
	}
}

func TestResetClearsWorld(t *testing.T) {
	e := mustEngine(t)
	if _, err := e.CreateDriver("D1", pos(0, 0)); err != nil {
		t.Fatalf("CreateDriver: %v", err)
	}
	e.Tick()

	e.Reset()

	state := e.State()
	if state.Tick != 0 || len(state.Drivers) != 0 {
		t.Fatalf("after Reset: %+v, want tick=0 and no drivers", state)
	}
}
