// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package ux

import (
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
)

// PersonalityLevel defines the richness of CLI output
type PersonalityLevel string

const (
	// PersonalityFull enables colors, boxes, charts with legends and the title banner
	PersonalityFull PersonalityLevel = "full"

	// PersonalityStandard enables colors and borders without the banner
	PersonalityStandard PersonalityLevel = "standard"

	// PersonalityMinimal uses plain borders and no colors
	PersonalityMinimal PersonalityLevel = "minimal"

	// PersonalityMachine outputs tab-separated text suitable for scripting
	PersonalityMachine PersonalityLevel = "machine"
)

// Personality holds the current UX personality configuration
type Personality struct {
	// Level controls overall richness (full, standard, minimal, machine)
	Level PersonalityLevel

	// Precision is the number of decimals shown for descriptor values
	Precision int
}

// DefaultPrecision is the number of decimals used when none is configured.
const DefaultPrecision = 4

var (
	currentPersonality = DefaultPersonality()
	personalityMu      sync.RWMutex
)

// GetPersonality returns the current personality settings
func GetPersonality() Personality {
	personalityMu.RLock()
	defer personalityMu.RUnlock()
	return currentPersonality
}

// SetPersonality updates the current personality settings
func SetPersonality(p Personality) {
	personalityMu.Lock()
	defer personalityMu.Unlock()
	currentPersonality = p
}

// SetPersonalityLevel updates just the personality level
func SetPersonalityLevel(level PersonalityLevel) {
	personalityMu.Lock()
	defer personalityMu.Unlock()
	currentPersonality.Level = level
}

// SetPrecision updates just the value precision. Values outside 0..10 are clamped.
func SetPrecision(precision int) {
	if precision < 0 {
		precision = 0
	}
	if precision > 10 {
		precision = 10
	}
	personalityMu.Lock()
	defer personalityMu.Unlock()
	currentPersonality.Precision = precision
}

// ParsePersonalityLevel converts a string to PersonalityLevel
func ParsePersonalityLevel(s string) PersonalityLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "full", "f":
		return PersonalityFull
	case "standard", "std", "s":
		return PersonalityStandard
	case "minimal", "min", "m":
		return PersonalityMinimal
	case "machine", "quiet", "q", "tsv":
		return PersonalityMachine
	default:
		return PersonalityStandard
	}
}

// InitPersonality initializes the level from DFTINDEX_PERSONALITY, then
// from the configured fallback, falling back to machine output when stdout
// is not a terminal.
func InitPersonality(configured string) {
	if envLevel := os.Getenv("DFTINDEX_PERSONALITY"); envLevel != "" {
		SetPersonalityLevel(ParsePersonalityLevel(envLevel))
		return
	}

	if !isTerminal() {
		SetPersonalityLevel(PersonalityMachine)
		return
	}

	if configured != "" {
		SetPersonalityLevel(ParsePersonalityLevel(configured))
		return
	}

	SetPersonalityLevel(PersonalityFull)
}

func isTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// IsInteractive returns true if prompts and full-screen UIs may be shown
func IsInteractive() bool {
	fd := os.Stdin.Fd()
	stdinTTY := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	return GetPersonality().Level != PersonalityMachine && stdinTTY && isTerminal()
}

// ShouldShowColors returns true if we should use colors
func ShouldShowColors() bool {
	level := GetPersonality().Level
	return level == PersonalityFull || level == PersonalityStandard
}

// DefaultPersonality returns the default personality settings
func DefaultPersonality() Personality {
	return Personality{
		Level:     PersonalityFull,
		Precision: DefaultPrecision,
	}
}
