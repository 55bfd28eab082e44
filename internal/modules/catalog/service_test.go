package catalog

import "testing"

func TestProfileFor_KnownModes(t *testing.T) {
	s := NewDefaultService()

	tests := []struct {
		mode      string
		wantSpeed float64
		wantRate  float64
	}{
		{"Car", 60, 10},
		{"Motorcycle", 50, 5},
		{"Bus", 40, 2},
		{"Train", 60, 1},
		{"Bike", 15, 0},
		{"Walking", 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			p := s.ProfileFor(tt.mode)
			if p.SpeedKmh != tt.wantSpeed {
				t.Errorf("ProfileFor(%s).SpeedKmh = %v, want %v", tt.mode, p.SpeedKmh, tt.wantSpeed)
			}
			if p.FarePerKm != tt.wantRate {
				t.Errorf("ProfileFor(%s).FarePerKm = %v, want %v", tt.mode, p.FarePerKm, tt.wantRate)
			}
		})
	}
}

func TestProfileFor_UnknownModeFallsBack(t *testing.T) {
	s := NewDefaultService()
	p := s.ProfileFor("Hovercraft")
	if p.SpeedKmh != DefaultSpeedKmh {
		t.Errorf("fallback speed = %v, want %v", p.SpeedKmh, float64(DefaultSpeedKmh))
	}
	if p.FarePerKm != 0 {
		t.Errorf("fallback rate = %v, want 0", p.FarePerKm)
	}
}

func TestEveryProfileHasSpeedAndRate(t *testing.T) {
	for _, p := range DefaultProfiles() {
		if p.SpeedKmh <= 0 {
			t.Errorf("mode %s has no speed", p.Mode)
		}
		if p.FarePerKm < 0 {
			t.Errorf("mode %s has negative fare rate", p.Mode)
		}
	}
}

func TestCodeFor(t *testing.T) {
	s := NewDefaultService()

	code, ok := s.CodeFor("Hindi")
	if !ok || code != "hi" {
		t.Errorf("CodeFor(Hindi) = %q, %v; want hi, true", code, ok)
	}
	if _, ok := s.CodeFor("Klingon"); ok {
		t.Error("CodeFor(Klingon) should not resolve")
	}
	if len(s.Languages()) != 13 {
		t.Errorf("language catalog has %d entries, want 13", len(s.Languages()))
	}
}
