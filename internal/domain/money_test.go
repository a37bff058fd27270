package domain

import "testing"

func TestParsePriceCents(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"49.99", 4999},
		{"29.99", 2999},
		{"0", 0},
		{"15", 1500},
		{"0.05", 5},
	}
	for _, tc := range cases {
		got, err := ParsePriceCents(tc.in)
		if err != nil {
			t.Fatalf("ParsePriceCents(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParsePriceCents(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestParsePriceCentsRejectsBadInput(t *testing.T) {
	for _, in := range []string{"", "abc", "-1.00", "1.999"} {
		if _, err := ParsePriceCents(in); err == nil {
			t.Fatalf("ParsePriceCents(%q): expected error", in)
		}
	}
}

func TestFormatCents(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{4999, "$49.99"},
		{12997, "$129.97"},
		{5, "$0.05"},
		{0, "$0.00"},
	}
	for _, tc := range cases {
		if got := FormatCents(tc.in); got != tc.want {
			t.Fatalf("FormatCents(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCartTotalCents(t *testing.T) {
	items := []CartItem{
		{ProductID: 1, PriceCents: 4999, Quantity: 2},
		{ProductID: 2, PriceCents: 2999, Quantity: 1},
	}
	if got := CartTotalCents(items); got != 12997 {
		t.Fatalf("CartTotalCents = %d, want 12997", got)
	}
	if got := CartTotalCents(nil); got != 0 {
		t.Fatalf("CartTotalCents(nil) = %d, want 0", got)
	}
}
