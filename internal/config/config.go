// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/matt-FFFFFF/pace/progress"
	"github.com/spf13/afero"
)

var (
	// ErrReadFile is returned when the options file cannot be read.
	ErrReadFile = errors.New("failed to read options file")
	// ErrParse is returned when the options file is not valid YAML.
	ErrParse = errors.New("failed to parse options file")
)

// renderOptions is the YAML schema for render options. Pointer fields
// distinguish "absent" from zero values so a sparse file only overrides what
// it names. Durations are expressed in milliseconds.
type renderOptions struct {
	BarLength        *int    `yaml:"barLength"`
	FilledChar       *string `yaml:"filledChar"`
	EmptyChar        *string `yaml:"emptyChar"`
	UseColors        *bool   `yaml:"useColors"`
	ShowETA          *bool   `yaml:"showEta"`
	ShowSpeed        *bool   `yaml:"showSpeed"`
	ShowPercentage   *bool   `yaml:"showPercentage"`
	Precision        *int    `yaml:"precision"`
	Template         *string `yaml:"template"`
	UpdateThrottleMS *int    `yaml:"updateThrottleMs"`
	TickIntervalMS   *int    `yaml:"tickIntervalMs"`
	SpeedSamples     *int    `yaml:"speedSamples"`
}

type optionsFile struct {
	Render renderOptions `yaml:"render"`
}

// Load reads a YAML options file from fs and applies it on top of
// progress.DefaultOptions.
func Load(fs afero.Fs, path string) (progress.Options, error) {
	opts := progress.DefaultOptions()

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return opts, errors.Join(ErrReadFile, err)
	}

	return Parse(data)
}

// Parse applies YAML option bytes on top of progress.DefaultOptions.
func Parse(data []byte) (progress.Options, error) {
	opts := progress.DefaultOptions()

	var f optionsFile

	if err := yaml.Unmarshal(data, &f); err != nil {
		return opts, errors.Join(ErrParse, err)
	}

	r := f.Render

	if r.BarLength != nil {
		opts.BarLength = *r.BarLength
	}

	if r.FilledChar != nil {
		opts.FilledChar = *r.FilledChar
	}

	if r.EmptyChar != nil {
		opts.EmptyChar = *r.EmptyChar
	}

	if r.UseColors != nil {
		opts.UseColors = *r.UseColors
	}

	if r.ShowETA != nil {
		opts.ShowETA = *r.ShowETA
	}

	if r.ShowSpeed != nil {
		opts.ShowSpeed = *r.ShowSpeed
	}

	if r.ShowPercentage != nil {
		opts.ShowPercentage = *r.ShowPercentage
	}

	if r.Precision != nil {
		opts.Precision = *r.Precision
	}

	if r.Template != nil {
		opts.Template = *r.Template
	}

	if r.UpdateThrottleMS != nil {
		opts.UpdateThrottle = time.Duration(*r.UpdateThrottleMS) * time.Millisecond
	}

	if r.TickIntervalMS != nil {
		opts.TickInterval = time.Duration(*r.TickIntervalMS) * time.Millisecond
	}

	if r.SpeedSamples != nil {
		opts.SpeedSamples = *r.SpeedSamples
	}

	return opts, nil
}
