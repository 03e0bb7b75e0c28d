package propulsion

import (
	"errors"
	"math"
	"testing"
)

func defaultPropulsor() Propulsor {
	return Propulsor{TotalImpulse: 200, AverageThrust: 144, MaxThrust: 186, BurnDuration: 1.5}
}

func TestThrustCap(t *testing.T) {
	tp, err := NewThrustProfile(defaultPropulsor())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// min(144*1.5, 186) = 186
	if tp.TotalThrust() != 186 {
		t.Errorf("expected total thrust 186, got %v", tp.TotalThrust())
	}
	if math.Abs(tp.ThrustPerSecond()-124) > 1e-9 {
		t.Errorf("expected 124 N per second, got %v", tp.ThrustPerSecond())
	}
}

func TestThrustUncapped(t *testing.T) {
	tp, err := NewThrustProfile(Propulsor{TotalImpulse: 10, AverageThrust: 10, MaxThrust: 100, BurnDuration: 2})
	if err != nil {
		t.Fatal(err)
	}
	if tp.TotalThrust() != 20 {
		t.Errorf("expected uncapped total 20, got %v", tp.TotalThrust())
	}
	if tp.ThrustPerSecond() != 10 {
		t.Errorf("expected 10 N per second, got %v", tp.ThrustPerSecond())
	}
}

func TestTickCountdown(t *testing.T) {
	tp, _ := NewThrustProfile(defaultPropulsor())
	want := tp.ThrustPerSecond()

	if got := tp.Tick(0.5); got != want {
		t.Errorf("tick 1: expected %v, got %v", want, got)
	}
	if got := tp.Tick(0.5); got != want {
		t.Errorf("tick 2: expected %v, got %v", want, got)
	}
	if tp.BurnedOut() {
		t.Error("profile burned out early")
	}
	if got := tp.Tick(0.5); got != 0 {
		t.Errorf("tick 3: expected burnout, got %v", got)
	}
	if !tp.BurnedOut() {
		t.Error("expected BurnedOut after full duration")
	}
	if tp.Remaining() != 0 {
		t.Errorf("expected remaining floored at 0, got %v", tp.Remaining())
	}
}

func TestTickIrreversible(t *testing.T) {
	tp, _ := NewThrustProfile(defaultPropulsor())
	tp.Tick(2)

	for i := 0; i < 10; i++ {
		if got := tp.Tick(0); got != 0 {
			t.Fatalf("thrust resumed after burnout: %v", got)
		}
		if got := tp.Tick(-1); got != 0 {
			t.Fatalf("negative dt revived thrust: %v", got)
		}
	}
}

func TestTickNegativeDTClamped(t *testing.T) {
	tp, _ := NewThrustProfile(defaultPropulsor())
	tp.Tick(-10)
	if tp.Remaining() != 1.5 {
		t.Errorf("negative dt changed the countdown: %v", tp.Remaining())
	}
	if tp.Tick(0) != tp.ThrustPerSecond() {
		t.Error("expected full thrust after negative dt")
	}
}

func TestPerSecondNotRecomputed(t *testing.T) {
	tp, _ := NewThrustProfile(defaultPropulsor())
	first := tp.Tick(1.0)
	second := tp.Tick(0.25)
	if first != second {
		t.Errorf("thrust level changed mid-burn: %v then %v", first, second)
	}
}

func TestInvalidPropulsor(t *testing.T) {
	tests := []struct {
		name string
		p    Propulsor
	}{
		{"zero impulse", Propulsor{0, 144, 186, 1.5}},
		{"negative average", Propulsor{200, -1, 186, 1.5}},
		{"max below average", Propulsor{200, 144, 100, 1.5}},
		{"zero burn", Propulsor{200, 144, 186, 0}},
		{"NaN burn", Propulsor{200, 144, 186, math.NaN()}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewThrustProfile(tt.p)
			if !errors.Is(err, ErrInvalidPropulsor) {
				t.Errorf("expected ErrInvalidPropulsor, got %v", err)
			}
		})
	}
}
