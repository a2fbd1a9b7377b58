// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package numbering canonicalizes heterogeneous clause numbering labels
// (decimal, roman, alphabetic) so they can be compared and gap-checked.
package numbering

import (
	"strconv"
	"strings"
)

// romanTable covers I through XX. Clause numbering beyond XX is not seen in
// practice; labels outside the table are treated as non-roman.
var romanTable = map[string]int{
	"I": 1, "II": 2, "III": 3, "IV": 4, "V": 5,
	"VI": 6, "VII": 7, "VIII": 8, "IX": 9, "X": 10,
	"XI": 11, "XII": 12, "XIII": 13, "XIV": 14, "XV": 15,
	"XVI": 16, "XVII": 17, "XVIII": 18, "XIX": 19, "XX": 20,
}

// Normalize canonicalizes a raw numbering label. Steps, in order: a label
// that is wholly a roman numeral (I-XX, case-insensitive, optional trailing
// punctuation) is replaced with its decimal string; parenthetical forms like
// "7(a)" are rewritten to "7.a"; trailing ".", ")" and "]" are stripped; any
// remaining alphabetic text is lowercased. The parenthetical rewrite runs
// before stripping so its closing paren is still present to match.
func Normalize(label string) string {
	l := strings.TrimSpace(label)
	if v, ok := romanTable[strings.ToUpper(strings.TrimRight(l, ".)]"))]; ok {
		return strconv.Itoa(v)
	}
	if open := strings.IndexByte(l, '('); open > 0 && strings.HasSuffix(l, ")") {
		inner := l[open+1 : len(l)-1]
		if inner != "" && isAlnum(inner) && isDigits(l[:open]) {
			l = l[:open] + "." + inner
		}
	}
	l = strings.TrimRight(l, ".)]")
	return strings.ToLower(l)
}

// NumericValue maps a label to a real number used for ordering and gap
// detection. Dotted decimal labels use a positional shorthand where each
// component after the first contributes component * 10^-index, so "3.2.1"
// maps to 3.21. This is not true multi-level ordering ("3.10" lands next to
// "3.1") but downstream gap checks depend on exactly this shape. Roman
// labels go through the I-XX table, alphabetic labels use base-26 positional
// value (a=1, z=26, aa=27). Unrecognized labels map to 0.
func NumericValue(label string) float64 {
	l := Normalize(label)
	if l == "" {
		return 0
	}
	if isDigits(strings.ReplaceAll(l, ".", "")) && !strings.Contains(l, "..") {
		return dottedValue(l)
	}
	if isAlpha(l) {
		return alphaValue(l)
	}
	// Mixed labels such as "7.a" still order by their parsed components;
	// components that fail to parse contribute nothing.
	if strings.Contains(l, ".") {
		return dottedValue(l)
	}
	return 0
}

// IsRoman reports whether the label, stripped of trailing punctuation, is a
// roman numeral within the supported I-XX range.
func IsRoman(label string) bool {
	_, ok := romanTable[strings.ToUpper(strings.TrimRight(strings.TrimSpace(label), ".)]"))]
	return ok
}

// Compare orders two labels by their numeric values, returning -1, 0 or 1.
func Compare(a, b string) int {
	av, bv := NumericValue(a), NumericValue(b)
	switch {
	case av < bv:
		return -1
	case av > bv:
		return 1
	}
	return 0
}

func dottedValue(l string) float64 {
	parts := strings.Split(l, ".")
	value := 0.0
	scale := 1.0
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			n = 0
		}
		if i == 0 {
			value = float64(n)
			continue
		}
		scale /= 10
		value += float64(n) * scale
	}
	return value
}

func alphaValue(l string) float64 {
	value := 0
	for i := 0; i < len(l); i++ {
		c := l[i]
		if c < 'a' || c > 'z' {
			return 0
		}
		value = value*26 + int(c-'a'+1)
	}
	return float64(value)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}

func isAlnum(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return s != ""
}
