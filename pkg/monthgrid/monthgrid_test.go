package monthgrid

import (
	"testing"
	"time"
)

func TestDateAndLabel(t *testing.T) {
	start := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)

	if got := Label(start, 1); got != "2026-03" {
		t.Errorf("Label(month 1) = %q, want 2026-03", got)
	}
	if got := Label(start, 12); got != "2027-02" {
		t.Errorf("Label(month 12) = %q, want 2027-02", got)
	}
	if got := Label(start, 25); got != "2028-03" {
		t.Errorf("Label(month 25) = %q, want 2028-03", got)
	}
}

func TestSpan(t *testing.T) {
	tests := []struct {
		months int
		want   string
	}{
		{0, "0m"},
		{8, "8m"},
		{12, "1y"},
		{27, "2y3m"},
		{360, "30y"},
		{-5, "0m"},
	}
	for _, tt := range tests {
		if got := Span(tt.months); got != tt.want {
			t.Errorf("Span(%d) = %q, want %q", tt.months, got, tt.want)
		}
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(0, 120); got != 1 {
		t.Errorf("Clamp(0) = %d, want 1", got)
	}
	if got := Clamp(121, 120); got != 120 {
		t.Errorf("Clamp(121) = %d, want 120", got)
	}
	if got := Clamp(60, 120); got != 60 {
		t.Errorf("Clamp(60) = %d, want 60", got)
	}
}
