// Copyright ©2024 The IPM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ipm

// Config holds the tolerances, caps, and algorithm constants of §3/§4.8.
// Each field has a validated setter that rejects non-positive values with
// a *ConfigurationError; the zero Config is not usable directly, use
// NewConfig to obtain one populated with the documented defaults.
type Config struct {
	tolerance     float64
	maxIterations int
	verbose       bool

	eps    float64 // ε, numerical floor
	sigMax float64 // σ_max, centering cap
	etaMax float64 // η_max, forcing cap
	muMin  float64 // μ_min, barrier floor
	alfMax float64 // α_max, fraction-to-boundary cap
	alfMin float64 // α_min, line search failure threshold
	beta   float64 // β, backtrack shrink factor
	tau    float64 // τ, sufficient-decrease coefficient
}

// NewConfig returns a Config populated with the defaults named in spec §3:
// tolerance 1e-8, max_iterations 100, ε=1e-8, σ_max=0.5, η_max=0.25,
// μ_min=1e-9, α_max=0.995, α_min=1e-6, β=0.75, τ=0.01.
func NewConfig() *Config {
	return &Config{
		tolerance:     1e-8,
		maxIterations: 100,
		eps:           1e-8,
		sigMax:        0.5,
		etaMax:        0.25,
		muMin:         1e-9,
		alfMax:        0.995,
		alfMin:        1e-6,
		beta:          0.75,
		tau:           0.01,
	}
}

func setPositiveFloat(field string, dst *float64, v float64) error {
	if v <= 0 {
		return &ConfigurationError{Field: field, Value: v}
	}
	*dst = v
	return nil
}

// SetTolerance sets the convergence tolerance on the scaled KKT residual
// norm. v must be positive.
func (c *Config) SetTolerance(v float64) error { return setPositiveFloat("tolerance", &c.tolerance, v) }

// SetMaxIterations sets the outer-iteration cap. v must be a positive
// integer.
func (c *Config) SetMaxIterations(v int) error {
	if v <= 0 {
		return &ConfigurationError{Field: "max_iterations", Value: float64(v)}
	}
	c.maxIterations = v
	return nil
}

// SetVerbose toggles telemetry emission.
func (c *Config) SetVerbose(v bool) { c.verbose = v }

// SetEpsilon sets ε, the shared numerical floor used in the merit function,
// the reciprocal guards of the step computation, and the diagonal scaling.
func (c *Config) SetEpsilon(v float64) error { return setPositiveFloat("epsilon", &c.eps, v) }

// SetSigmaMax sets σ_max, the cap on the centering parameter.
func (c *Config) SetSigmaMax(v float64) error { return setPositiveFloat("sigma_max", &c.sigMax, v) }

// SetEtaMax sets η_max, the cap on the forcing sequence.
func (c *Config) SetEtaMax(v float64) error { return setPositiveFloat("eta_max", &c.etaMax, v) }

// SetMuMin sets μ_min, the floor on the barrier parameter.
func (c *Config) SetMuMin(v float64) error { return setPositiveFloat("mu_min", &c.muMin, v) }

// SetAlphaMax sets α_max, the initial and maximum line-search step.
func (c *Config) SetAlphaMax(v float64) error { return setPositiveFloat("alpha_max", &c.alfMax, v) }

// SetAlphaMin sets α_min, below which backtracking reports LineSearchFailure.
func (c *Config) SetAlphaMin(v float64) error { return setPositiveFloat("alpha_min", &c.alfMin, v) }

// SetBeta sets β, the backtracking shrink factor.
func (c *Config) SetBeta(v float64) error { return setPositiveFloat("beta", &c.beta, v) }

// SetTau sets τ, the sufficient-decrease coefficient of the Armijo-style
// line search test.
func (c *Config) SetTau(v float64) error { return setPositiveFloat("tau", &c.tau, v) }

// Tolerance returns the configured convergence tolerance.
func (c *Config) Tolerance() float64 { return c.tolerance }

// MaxIterations returns the configured outer-iteration cap.
func (c *Config) MaxIterations() int { return c.maxIterations }

// Verbose reports whether telemetry emission is enabled.
func (c *Config) Verbose() bool { return c.verbose }
