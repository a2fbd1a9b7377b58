// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package segment

import "testing"

func TestNormalizeText(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"crlf converted", "1. TERM\r\nBody.", "1. TERM\nBody."},
		{"bare cr converted", "1. TERM\rBody.", "1. TERM\nBody."},
		{"triple newline collapsed", "A\n\n\nB", "A\n\nB"},
		{"many newlines collapsed", "A\n\n\n\n\n\nB", "A\n\nB"},
		{"double newline preserved", "A\n\nB", "A\n\nB"},
		{"surrounding whitespace trimmed", "  \n1. TERM\n\t ", "1. TERM"},
		{"empty input", "", ""},
		{"whitespace only", " \r\n \n ", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeText(tc.in); got != tc.want {
				t.Errorf("NormalizeText(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalizeTextIdempotent(t *testing.T) {
	in := "FIRST\r\n\r\n\r\nSECOND\rTHIRD\n"
	once := NormalizeText(in)
	if twice := NormalizeText(once); twice != once {
		t.Errorf("second pass changed text: %q -> %q", once, twice)
	}
}

func TestClamp01(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{-0.5, 0}, {0, 0}, {0.42, 0.42}, {1, 1}, {1.3, 1},
	}
	for _, tc := range cases {
		if got := Clamp01(tc.in); got != tc.want {
			t.Errorf("Clamp01(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
