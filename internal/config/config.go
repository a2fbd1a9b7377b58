// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package config holds the per-run segmentation options and the optional
// YAML configuration file with named profiles. Options resolve in order:
// built-in defaults, config file defaults, selected profile, caller
// overrides.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Options is the immutable per-run configuration, passed by value into
// every pipeline stage.
type Options struct {
	// SegmentationVersion tags results for downstream persistence.
	SegmentationVersion string `yaml:"segmentation_version"`

	// OCRUsed marks that the input text came through OCR; OCRConfidence is
	// the extraction stage's quality estimate in [0,1].
	OCRUsed       bool    `yaml:"ocr_used"`
	OCRConfidence float64 `yaml:"ocr_confidence"`

	// OverlapWindow is the reconciler's clustering lookahead in chars.
	OverlapWindow int `yaml:"overlap_window"`
	// MinBoundaryGap is the minimum char distance between accepted
	// boundaries.
	MinBoundaryGap int `yaml:"min_boundary_gap"`
	// AcceptThreshold is the minimum context-adjusted candidate score.
	AcceptThreshold float64 `yaml:"accept_threshold"`
	// ReviewThreshold is the clause confidence below which a boundary
	// counts as low-confidence.
	ReviewThreshold float64 `yaml:"review_threshold"`
	// OCRLowConfPenalty is subtracted from every candidate score when
	// OCRUsed is set.
	OCRLowConfPenalty float64 `yaml:"ocr_low_conf_penalty"`

	// Anomaly thresholds.
	MinBoundariesForLargeDoc int     `yaml:"min_boundaries_for_large_doc"`
	LargeDocPages            int     `yaml:"large_doc_pages"`
	MinUnheadedBlockSize     int     `yaml:"min_unheaded_block_size"`
	MinClauseSize            int     `yaml:"min_clause_size"`
	MaxShortClauseRatio      float64 `yaml:"max_short_clause_ratio"`
	MaxLowConfRatio          float64 `yaml:"max_low_conf_ratio"`
}

// DefaultOptions returns the documented defaults for every knob.
func DefaultOptions() Options {
	return Options{
		SegmentationVersion:      "v1",
		OCRConfidence:            1.0,
		OverlapWindow:            30,
		MinBoundaryGap:           80,
		AcceptThreshold:          0.75,
		ReviewThreshold:          0.4,
		OCRLowConfPenalty:        0.20,
		MinBoundariesForLargeDoc: 3,
		LargeDocPages:            5,
		MinUnheadedBlockSize:     500,
		MinClauseSize:            50,
		MaxShortClauseRatio:      0.3,
		MaxLowConfRatio:          0.25,
	}
}

// File is the on-disk configuration shape: defaults plus named profiles.
type File struct {
	Defaults Profile            `yaml:"defaults"`
	Profiles map[string]Profile `yaml:"profiles"`
}

// Profile overrides a subset of options. Pointer fields distinguish "not
// set" from zero values.
type Profile struct {
	Description string `yaml:"description"`

	SegmentationVersion *string  `yaml:"segmentation_version"`
	OverlapWindow       *int     `yaml:"overlap_window"`
	MinBoundaryGap      *int     `yaml:"min_boundary_gap"`
	AcceptThreshold     *float64 `yaml:"accept_threshold"`
	ReviewThreshold     *float64 `yaml:"review_threshold"`
	OCRLowConfPenalty   *float64 `yaml:"ocr_low_conf_penalty"`

	MinBoundariesForLargeDoc *int     `yaml:"min_boundaries_for_large_doc"`
	LargeDocPages            *int     `yaml:"large_doc_pages"`
	MinUnheadedBlockSize     *int     `yaml:"min_unheaded_block_size"`
	MinClauseSize            *int     `yaml:"min_clause_size"`
	MaxShortClauseRatio      *float64 `yaml:"max_short_clause_ratio"`
	MaxLowConfRatio          *float64 `yaml:"max_low_conf_ratio"`
}

// Load reads a configuration file. An empty path returns an empty File so
// callers always work against the same resolution logic.
func Load(path string) (*File, error) {
	f := &File{Profiles: make(map[string]Profile)}
	if path == "" {
		return f, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, f); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if f.Profiles == nil {
		f.Profiles = make(map[string]Profile)
	}
	return f, nil
}

// Resolve produces the final Options from the built-in defaults, the file
// defaults, and the named profile. An unknown profile name is an error; an
// empty name skips profile resolution.
func (f *File) Resolve(profileName string) (Options, error) {
	opts := DefaultOptions()
	f.Defaults.applyTo(&opts)

	if profileName != "" {
		p, ok := f.Profiles[profileName]
		if !ok {
			return opts, fmt.Errorf("unknown profile %q", profileName)
		}
		p.applyTo(&opts)
	}
	return opts, nil
}

func (p Profile) applyTo(opts *Options) {
	if p.SegmentationVersion != nil {
		opts.SegmentationVersion = *p.SegmentationVersion
	}
	if p.OverlapWindow != nil {
		opts.OverlapWindow = *p.OverlapWindow
	}
	if p.MinBoundaryGap != nil {
		opts.MinBoundaryGap = *p.MinBoundaryGap
	}
	if p.AcceptThreshold != nil {
		opts.AcceptThreshold = *p.AcceptThreshold
	}
	if p.ReviewThreshold != nil {
		opts.ReviewThreshold = *p.ReviewThreshold
	}
	if p.OCRLowConfPenalty != nil {
		opts.OCRLowConfPenalty = *p.OCRLowConfPenalty
	}
	if p.MinBoundariesForLargeDoc != nil {
		opts.MinBoundariesForLargeDoc = *p.MinBoundariesForLargeDoc
	}
	if p.LargeDocPages != nil {
		opts.LargeDocPages = *p.LargeDocPages
	}
	if p.MinUnheadedBlockSize != nil {
		opts.MinUnheadedBlockSize = *p.MinUnheadedBlockSize
	}
	if p.MinClauseSize != nil {
		opts.MinClauseSize = *p.MinClauseSize
	}
	if p.MaxShortClauseRatio != nil {
		opts.MaxShortClauseRatio = *p.MaxShortClauseRatio
	}
	if p.MaxLowConfRatio != nil {
		opts.MaxLowConfRatio = *p.MaxLowConfRatio
	}
}
