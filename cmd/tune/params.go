package main

import (
	"github.com/pthm-cable/liftoff/config"
)

// ParamSpec defines a single tunable parameter.
type ParamSpec struct {
	Name string  // Human-readable name
	Path string  // Config path for logging
	Min  float64 // Lower bound
	Max  float64 // Upper bound
}

// ParamVector holds the set of all tunable parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the standard set of tunable parameters.
// Bounds keep the per-second thrust above the body's weight.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			{Name: "burn_duration", Path: "propulsor.burn_duration", Min: 0.2, Max: 4.0},
			{Name: "drag_coefficient", Path: "body.drag_coefficient", Min: 0.1, Max: 1.5},
			{Name: "mass", Path: "body.mass", Min: 0.05, Max: 0.5},
		},
	}
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// Normalize converts raw parameter values to [0,1] range.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	normalized := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		normalized[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return normalized
}

// Denormalize converts [0,1] values back to raw parameter values.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	raw := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		raw[i] = spec.Min + normalized[i]*(spec.Max-spec.Min)
	}
	return raw
}

// Clamp ensures all values are within bounds.
func (pv *ParamVector) Clamp(v []float64) []float64 {
	clamped := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		val := v[i]
		if val < spec.Min {
			val = spec.Min
		}
		if val > spec.Max {
			val = spec.Max
		}
		clamped[i] = val
	}
	return clamped
}

// ApplyToConfig writes clamped parameter values into cfg. Order matches Specs.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, values []float64) {
	clamped := pv.Clamp(values)
	cfg.Propulsor.BurnDuration = clamped[0]
	cfg.Body.DragCoefficient = clamped[1]
	cfg.Body.Mass = clamped[2]
}

// FromConfig extracts the current parameter values, clamped to bounds.
func (pv *ParamVector) FromConfig(cfg *config.Config) []float64 {
	return pv.Clamp([]float64{
		cfg.Propulsor.BurnDuration,
		cfg.Body.DragCoefficient,
		cfg.Body.Mass,
	})
}
