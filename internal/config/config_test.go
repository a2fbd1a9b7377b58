// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, 30, opts.OverlapWindow)
	assert.Equal(t, 80, opts.MinBoundaryGap)
	assert.Equal(t, 0.75, opts.AcceptThreshold)
	assert.Equal(t, 0.4, opts.ReviewThreshold)
	assert.Equal(t, 0.20, opts.OCRLowConfPenalty)
	assert.Equal(t, 3, opts.MinBoundariesForLargeDoc)
	assert.Equal(t, 5, opts.LargeDocPages)
	assert.Equal(t, 500, opts.MinUnheadedBlockSize)
	assert.Equal(t, 50, opts.MinClauseSize)
	assert.Equal(t, 0.3, opts.MaxShortClauseRatio)
	assert.Equal(t, 0.25, opts.MaxLowConfRatio)
	assert.False(t, opts.OCRUsed)
}

func TestLoadEmptyPathGivesEmptyFile(t *testing.T) {
	f, err := Load("")
	require.NoError(t, err)

	opts, err := f.Resolve("")
	require.NoError(t, err)
	assert.Equal(t, DefaultOptions(), opts)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadAndResolveProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clause-scan.yaml")
	content := `
defaults:
  overlap_window: 40
profiles:
  strict:
    description: tighter acceptance for clean born-digital contracts
    accept_threshold: 0.85
    min_boundary_gap: 120
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	f, err := Load(path)
	require.NoError(t, err)

	opts, err := f.Resolve("strict")
	require.NoError(t, err)
	// File default applies, profile overrides stack on top, everything else
	// keeps built-in defaults.
	assert.Equal(t, 40, opts.OverlapWindow)
	assert.Equal(t, 0.85, opts.AcceptThreshold)
	assert.Equal(t, 120, opts.MinBoundaryGap)
	assert.Equal(t, 0.4, opts.ReviewThreshold)
}

func TestResolveUnknownProfile(t *testing.T) {
	f, err := Load("")
	require.NoError(t, err)
	_, err = f.Resolve("missing")
	assert.ErrorContains(t, err, `unknown profile "missing"`)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("defaults: ["), 0o600))
	_, err := Load(path)
	assert.Error(t, err)
}
