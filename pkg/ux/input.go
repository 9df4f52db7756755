// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package ux

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/AleutianAI/dftindex/pkg/descriptors"
)

// MaxSpeciesNameLength bounds species names so table columns stay readable.
const MaxSpeciesNameLength = 64

// inputValidate is the validator instance for collected species input.
// Initialized in init() with the custom "finite" and "nocontrol" tags.
var inputValidate *validator.Validate

// nameRules are the tag rules every species name must satisfy, whichever
// collector produced it.
const nameRules = "required,max=64,nocontrol"

func init() {
	inputValidate = validator.New()
	_ = inputValidate.RegisterValidation("finite", validateFinite)
	_ = inputValidate.RegisterValidation("nocontrol", validateNoControl)
}

// validateFinite accepts finite float fields and strings that parse as a
// finite float64. NaN and ±Inf are malformed input for the calculator; any
// finite value, negative or not, is accepted.
func validateFinite(fl validator.FieldLevel) bool {
	field := fl.Field()
	switch field.Kind() {
	case reflect.Float32, reflect.Float64:
		v := field.Float()
		return !math.IsNaN(v) && !math.IsInf(v, 0)
	case reflect.String:
		_, err := parseFinite(field.String())
		return err == nil
	default:
		return false
	}
}

// validateNoControl rejects names carrying tabs, newlines or other control
// characters, which would break the tab-separated machine output.
func validateNoControl(fl validator.FieldLevel) bool {
	return !strings.ContainsFunc(fl.Field().String(), unicode.IsControl)
}

func parseFinite(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.New("not a finite number")
	}
	return v, nil
}

// SpeciesInput is the raw text collected for one species by a form, the
// interactive app or a watch file, before conversion.
//
// # Validation
//
// Uses go-playground/validator:
//   - Name: required, at most MaxSpeciesNameLength characters, no control
//     characters
//   - IonizationEnergy, ElectronAffinity: required, finite decimal numbers
//
// No chemical plausibility check is made: a negative ionization energy is
// accepted and passed to the calculator as is.
type SpeciesInput struct {
	Name             string `validate:"required,max=64,nocontrol"`
	IonizationEnergy string `validate:"required,finite"`
	ElectronAffinity string `validate:"required,finite"`
}

// NewSpeciesInput pre-fills the text fields from a species.
func NewSpeciesInput(s descriptors.Species) SpeciesInput {
	return SpeciesInput{
		Name:             s.Name,
		IonizationEnergy: strconv.FormatFloat(s.IonizationEnergy, 'f', -1, 64),
		ElectronAffinity: strconv.FormatFloat(s.ElectronAffinity, 'f', -1, 64),
	}
}

// Validate checks the input and returns a single readable error.
func (in SpeciesInput) Validate() error {
	trimmed := SpeciesInput{
		Name:             strings.TrimSpace(in.Name),
		IonizationEnergy: strings.TrimSpace(in.IonizationEnergy),
		ElectronAffinity: strings.TrimSpace(in.ElectronAffinity),
	}
	return describeValidation(trimmed.Name, inputValidate.Struct(trimmed))
}

// describeValidation turns validator errors into a single readable error.
func describeValidation(name string, err error) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate species input: %w", err)
	}

	label := name
	if label == "" {
		label = "species"
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describeFieldError(label, fe))
	}
	return errors.New(strings.Join(msgs, "; "))
}

func describeFieldError(label string, fe validator.FieldError) string {
	field := fieldLabel(fe.Field())
	switch fe.Tag() {
	case "required":
		if fe.Field() == "Name" {
			return "name is required"
		}
		return fmt.Sprintf("%s of %s is required", field, label)
	case "max":
		return fmt.Sprintf("name %q is longer than %s characters", label, fe.Param())
	case "nocontrol":
		return fmt.Sprintf("name %q contains control characters", label)
	case "finite":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s of %s must be a finite number, got %q", field, label, fe.Value())
		}
		return fmt.Sprintf("%s of %s must be a finite number", field, label)
	default:
		return fmt.Sprintf("%s of %s is invalid (%s)", field, label, fe.Tag())
	}
}

func fieldLabel(field string) string {
	switch field {
	case "IonizationEnergy":
		return "ionization energy"
	case "ElectronAffinity":
		return "electron affinity"
	default:
		return strings.ToLower(field)
	}
}

// Species validates the input and converts it.
func (in SpeciesInput) Species() (descriptors.Species, error) {
	if err := in.Validate(); err != nil {
		return descriptors.Species{}, err
	}
	ionization, _ := parseFinite(in.IonizationEnergy)
	affinity, _ := parseFinite(in.ElectronAffinity)
	return descriptors.Species{
		Name:             strings.TrimSpace(in.Name),
		IonizationEnergy: ionization,
		ElectronAffinity: affinity,
	}, nil
}

// ValidateNumber is a field-level check for form inputs.
func ValidateNumber(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return errors.New("a value is required")
	}
	if _, err := parseFinite(raw); err != nil {
		return fmt.Errorf("%q is not a finite number", raw)
	}
	return nil
}

// ValidateName is a field-level check for form inputs.
func ValidateName(raw string) error {
	name := strings.TrimSpace(raw)
	err := inputValidate.Var(name, nameRules)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("validate name: %w", err)
	}
	switch verrs[0].Tag() {
	case "required":
		return errors.New("a name is required")
	case "max":
		return fmt.Errorf("name is longer than %d characters", MaxSpeciesNameLength)
	default:
		return errors.New("name must not contain control characters")
	}
}

// speciesValues carries the rules for species whose energies are already
// parsed, as collected from flags or YAML.
type speciesValues struct {
	Name             string  `validate:"required,max=64,nocontrol"`
	IonizationEnergy float64 `validate:"finite"`
	ElectronAffinity float64 `validate:"finite"`
}

// ValidateFinite checks an already-parsed species against the same rules
// as SpeciesInput: a required, bounded name without control characters and
// finite energies.
func ValidateFinite(s descriptors.Species) error {
	name := strings.TrimSpace(s.Name)
	return describeValidation(name, inputValidate.Struct(speciesValues{
		Name:             name,
		IonizationEnergy: s.IonizationEnergy,
		ElectronAffinity: s.ElectronAffinity,
	}))
}
