// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package numbering

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1.", "1"},
		{"2.1", "2.1"},
		{"a)", "a"},
		{"A)", "a"},
		{"II.", "2"},
		{"ii", "2"},
		{"XX", "20"},
		{"7(a)", "7.a"},
		{"7(A)", "7.a"},
		{"3]", "3"},
		{"  4. ", "4"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := Normalize(tc.in); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, label := range []string{"1.", "II.", "a)", "7(a)", "3.2.1", "SCHEDULE", ""} {
		once := Normalize(label)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q -> %q", label, once, twice)
		}
	}
}

func TestNumericValue(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"3", 3},
		{"3.2", 3.2},
		{"3.2.1", 3.21},
		{"II", 2},
		{"xx.", 20},
		{"a", 1},
		{"z", 26},
		{"aa", 27},
		{"7(a)", 7},
		{"", 0},
		{"§", 0},
	}
	for _, tc := range cases {
		got := NumericValue(tc.in)
		if diff := got - tc.want; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("NumericValue(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

// The dotted shorthand is positional, not true multi-level ordering: the
// second component of "3.10" contributes 10 * 0.1, so "3.10" sorts above
// "3.9". Gap detection downstream relies on this exact shape.
func TestNumericValueDottedShorthand(t *testing.T) {
	if v := NumericValue("3.10"); v != 4.0 {
		t.Errorf("NumericValue(\"3.10\") = %v, want 4.0 (positional shorthand)", v)
	}
}

func TestCompare(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"1", "2", -1},
		{"2", "1", 1},
		{"II", "2", 0},
		{"a", "b", -1},
		{"3.2", "3.2.1", -1},
	}
	for _, tc := range cases {
		if got := Compare(tc.a, tc.b); got != tc.want {
			t.Errorf("Compare(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}
