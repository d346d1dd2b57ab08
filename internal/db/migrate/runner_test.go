package migrate

import (
	"errors"
	"strings"
	"testing"
)

func TestRun_EmptyDSN(t *testing.T) {
	for _, dsn := range []string{"", "   "} {
		err := Run(dsn, "up")
		if err == nil {
			t.Fatalf("Run(%q) should return error", dsn)
		}
		if !strings.Contains(err.Error(), "DATABASE_URL is not set") {
			t.Errorf("error = %q, should mention DATABASE_URL", err.Error())
		}
	}
}

func TestParseDirection(t *testing.T) {
	testCases := []struct {
		in      string
		want    Direction
		wantErr bool
	}{
		{"up", Up, false},
		{"down", Down, false},
		{"", "", true},
		{"UP", "", true},
		{"Up", "", true},
		{"sideways", "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseDirection(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseDirection(%q) should fail", tc.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDirection: %v", err)
			}
			if got != tc.want {
				t.Errorf("ParseDirection = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRun_InvalidDirectionBeforeConnecting(t *testing.T) {
	err := Run("postgres://localhost/test", "left")
	if err == nil {
		t.Fatal("Run with invalid direction should return error")
	}
	if !strings.Contains(err.Error(), "direction") {
		t.Errorf("error = %q, should mention direction", err.Error())
	}
}

func TestErrNoChange(t *testing.T) {
	if ErrNoChange == nil {
		t.Fatal("ErrNoChange should not be nil")
	}
	if !errors.Is(ErrNoChange, ErrNoChange) {
		t.Error("ErrNoChange should be errors.Is compatible")
	}
}
