package models

import "testing"

func TestNormalizeSyncMode(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected SyncMode
	}{
		{"fast passes through", "fast", SyncModeFast},
		{"intelligent passes through", "intelligent", SyncModeIntelligent},
		{"unknown falls back to fast", "bogus", SyncModeFast},
		{"empty falls back to fast", "", SyncModeFast},
		{"case sensitive", "Fast", SyncModeFast},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeSyncMode(tt.raw); got != tt.expected {
				t.Errorf("NormalizeSyncMode(%q) = %v, want %v", tt.raw, got, tt.expected)
			}
		})
	}
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    SyncStatus
		to      SyncStatus
		allowed bool
	}{
		{"queued to running", SyncStatusQueued, SyncStatusRunning, true},
		{"running to completed", SyncStatusRunning, SyncStatusCompleted, true},
		{"running to failed", SyncStatusRunning, SyncStatusFailed, true},
		{"queued cannot complete directly", SyncStatusQueued, SyncStatusCompleted, false},
		{"queued cannot fail directly", SyncStatusQueued, SyncStatusFailed, false},
		{"completed is terminal", SyncStatusCompleted, SyncStatusRunning, false},
		{"failed is terminal", SyncStatusFailed, SyncStatusQueued, false},
		{"no backward transition", SyncStatusRunning, SyncStatusQueued, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanTransition(tt.from, tt.to); got != tt.allowed {
				t.Errorf("CanTransition(%v, %v) = %v, want %v", tt.from, tt.to, got, tt.allowed)
			}
		})
	}
}

func TestSyncStatusPredicates(t *testing.T) {
	for _, s := range []SyncStatus{SyncStatusQueued, SyncStatusRunning} {
		if !s.IsActive() {
			t.Errorf("%v should be active", s)
		}
		if s.IsTerminal() {
			t.Errorf("%v should not be terminal", s)
		}
	}
	for _, s := range []SyncStatus{SyncStatusCompleted, SyncStatusFailed} {
		if s.IsActive() {
			t.Errorf("%v should not be active", s)
		}
		if !s.IsTerminal() {
			t.Errorf("%v should be terminal", s)
		}
	}
}

func TestCampaignHasCapability(t *testing.T) {
	c := &Campaign{
		Platforms:             []string{"linkedin", "x"},
		ConnectedCapabilities: []string{"x"},
	}

	if c.HasCapability("linkedin") {
		t.Error("linkedin should not have a connected capability")
	}
	if !c.HasCapability("x") {
		t.Error("x should have a connected capability")
	}
	if c.PrimaryPlatform() != "linkedin" {
		t.Errorf("PrimaryPlatform() = %q, want %q", c.PrimaryPlatform(), "linkedin")
	}
}
