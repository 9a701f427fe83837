package grid

import (
	"errors"
	"testing"
)

func TestNewBounds(t *testing.T) {
	cases := []struct {
		name          string
		width, height int
		wantErr       bool
	}{
		{"valid square", 100, 100, false},
		{"valid rectangle", 10, 20, false},
		{"zero width", 0, 10, true},
		{"negative height", 10, -1, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := NewBounds(tc.width, tc.height)
			if (err != nil) != tc.wantErr {
				t.Fatalf("NewBounds(%d, %d) error = %v, wantErr %v", tc.width, tc.height, err, tc.wantErr)
			}
			if err == nil && (b.MaxX != tc.width-1 || b.MaxY != tc.height-1) {
				t.Errorf("NewBounds(%d, %d) = %+v, want MaxX=%d MaxY=%d", tc.width, tc.height, b, tc.width-1, tc.height-1)
			}
		})
	}
}

func TestBoundsValidate(t *testing.T) {
	b, err := NewBounds(100, 100)
	if err != nil {
		t.Fatalf("NewBounds: %v", err)
	}

	cases := []struct {
		name    string
		pos     Position
		wantErr bool
	}{
		{"origin", Position{0, 0}, false},
		{"max corner", Position{99, 99}, false},
		{"x too large", Position{100, 0}, true},
		{"y too large", Position{0, 100}, true},
		{"negative x", Position{-1, 0}, true},
		{"negative y", Position{0, -1}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := b.Validate(tc.pos)
			if (err != nil) != tc.wantErr {
				t.Fatalf("Validate(%+v) error = %v, wantErr %v", tc.pos, err, tc.wantErr)
			}
			if err != nil && !errors.Is(err, ErrOutOfBounds) {
				t.Errorf("Validate(%+v) error = %v, want wrapping ErrOutOfBounds", tc.pos, err)
			}
		})
	}
}

func TestManhattanDistance(t *testing.T) {
	cases := []struct {
		a, b Position
		want int
	}{
		{Position{0, 0}, Position{0, 0}, 0},
		{Position{0, 0}, Position{7, 5}, 12},
		{Position{10, 10}, Position{5, 5}, 10},
		{Position{-3, -3}, Position{3, 3}, 12},
	}
	for _, tc := range cases {
		if got := ManhattanDistance(tc.a, tc.b); got != tc.want {
			t.Errorf("ManhattanDistance(%+v, %+v) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestPositionEqual(t *testing.T) {
	if !(Position{3, 4}).Equal(Position{3, 4}) {
		t.Error("expected equal positions to compare equal")
	}
	if (Position{3, 4}).Equal(Position{4, 3}) {
		t.Error("expected distinct positions to compare unequal")
	}
}
