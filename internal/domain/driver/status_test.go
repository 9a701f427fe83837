package driver

import "testing"

func TestParseStatus(t *testing.T) {
	cases := []struct {
		in      string
		want    Status
		wantErr bool
	}{
		{"available", StatusAvailable, false},
		{" AVAILABLE ", StatusAvailable, false},
		{"Assigned", StatusAssigned, false},
		{"on_trip", StatusOnTrip, false},
		{"offline", StatusOffline, false},
		{"busy", "", true},
		{"", "", true},
	}
	for _, tc := range cases {
		got, err := ParseStatus(tc.in)
		if (err != nil) != tc.wantErr {
			t.Fatalf("ParseStatus(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if err == nil && got != tc.want {
			t.Errorf("ParseStatus(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestStatusValid(t *testing.T) {
	valid := []Status{StatusAvailable, StatusAssigned, StatusOnTrip, StatusOffline}
	for _, s := range valid {
		if !s.Valid() {
			t.Errorf("%q.Valid() = false, want true", s)
		}
	}
	if Status("unknown").Valid() {
		t.Error(`Status("unknown").Valid() = true, want false`)
	}
}
