// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package segment

import (
	"regexp"
	"strings"
)

var multiNewline = regexp.MustCompile(`\n{3,}`)

// NormalizeText collapses line-ending and whitespace noise in raw document
// text: CRLF and bare CR become LF, runs of three or more newlines collapse
// to exactly two, and leading/trailing whitespace is trimmed.
//
// The normalized text is the coordinate system for every downstream char
// offset, so normalization runs exactly once, before detection. All offsets
// reported to callers refer to this normalized form.
func NormalizeText(raw string) string {
	text := strings.ReplaceAll(raw, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = multiNewline.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
