package numeric

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1234.56", "1234.56"},
		{" 42 ", "42"},
		{"", "0"},
		{"not-a-number", "0"},
	}
	for _, c := range cases {
		if got := Parse(c.in); got.String() != c.want {
			t.Errorf("Parse(%q) = %s, want %s", c.in, got, c.want)
		}
	}
}

func TestSafeDivZeroDivisor(t *testing.T) {
	got := SafeDiv(decimal.NewFromInt(10), decimal.Zero)
	if !got.IsZero() {
		t.Fatalf("SafeDiv by zero = %s, want 0", got)
	}
}

func TestSafeDiv(t *testing.T) {
	got := SafeDiv(decimal.NewFromInt(400), decimal.NewFromInt(3))
	if Fixed(got) != "133.3333" {
		t.Fatalf("400/3 fixed = %s, want 133.3333", Fixed(got))
	}
}

func TestFixed(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"200", "200.0000"},
		{"1.5", "1.5000"},
		{"0.00005", "0.0001"},
		{"0", "0.0000"},
	}
	for _, c := range cases {
		if got := Fixed(Parse(c.in)); got != c.want {
			t.Errorf("Fixed(%s) = %s, want %s", c.in, got, c.want)
		}
	}
}

func TestFromPercent(t *testing.T) {
	if got := FromPercent(50); got.String() != "0.5" {
		t.Fatalf("FromPercent(50) = %s, want 0.5", got)
	}
}

func TestNoFloatDriftOnSum(t *testing.T) {
	// 0.1 summed ten times is exactly 1 in decimal arithmetic.
	sum := decimal.Zero
	for i := 0; i < 10; i++ {
		sum = sum.Add(Parse("0.1"))
	}
	if !sum.Equal(decimal.NewFromInt(1)) {
		t.Fatalf("sum = %s, want 1", sum)
	}
}
