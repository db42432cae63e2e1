package utils

import "testing"

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		amount   float64
		currency string
		want     string
	}{
		{0, "DHs", "0,00 DHs"},
		{450, "DHs", "450,00 DHs"},
		{12500, "DHs", "12 500,00 DHs"},
		{1234567.5, "DHs", "1 234 567,50 DHs"},
		{999.99, "€", "999,99 €"},
		{-250.4, "DHs", "-250,40 DHs"},
		{75.25, "", "75,25"},
	}

	for _, tc := range cases {
		if got := FormatAmount(tc.amount, tc.currency); got != tc.want {
			t.Errorf("FormatAmount(%v, %q) = %q, want %q", tc.amount, tc.currency, got, tc.want)
		}
	}
}

func TestFormatQuantity(t *testing.T) {
	if got := FormatQuantity(1.5, "M2"); got != "1.50M2" {
		t.Errorf("FormatQuantity(1.5, M2) = %q, want 1.50M2", got)
	}
	if got := FormatQuantity(10, "ML"); got != "10.00ML" {
		t.Errorf("FormatQuantity(10, ML) = %q, want 10.00ML", got)
	}
}
