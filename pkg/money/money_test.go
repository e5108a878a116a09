package money

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestPercent(t *testing.T) {
	got := Percent(decimal.NewFromInt(500000), decimal.NewFromInt(3))
	if !got.Equal(decimal.NewFromInt(15000)) {
		t.Errorf("Percent(500000, 3) = %s, want 15000", got)
	}
}

func TestFraction(t *testing.T) {
	got := Fraction(decimal.NewFromInt(15))
	if !got.Equal(decimal.NewFromFloat(0.15)) {
		t.Errorf("Fraction(15) = %s, want 0.15", got)
	}
}

func TestRoundCentsBankers(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1.005, "1.00"},
		{1.015, "1.02"},
		{1.014, "1.01"},
		{-1.005, "-1.00"},
	}
	for _, tt := range tests {
		got := RoundCents(decimal.NewFromFloat(tt.in)).StringFixed(2)
		if got != tt.want {
			t.Errorf("RoundCents(%v) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestMinMax(t *testing.T) {
	a := decimal.NewFromInt(3)
	b := decimal.NewFromInt(7)
	if !Min(a, b).Equal(a) || !Min(b, a).Equal(a) {
		t.Error("Min picked the wrong side")
	}
	if !Max(a, b).Equal(b) || !Max(b, a).Equal(b) {
		t.Error("Max picked the wrong side")
	}
}

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "R$ 0,00"},
		{"2500", "R$ 2.500,00"},
		{"1234567.89", "R$ 1.234.567,89"},
		{"-987.5", "-R$ 987,50"},
		{"100", "R$ 100,00"},
	}
	for _, tt := range tests {
		d, err := decimal.NewFromString(tt.in)
		if err != nil {
			t.Fatalf("bad fixture %q: %v", tt.in, err)
		}
		if got := FormatBRL(d); got != tt.want {
			t.Errorf("FormatBRL(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
