package convchain

// Test bridge: white-box access for convchain_test without widening the API.

// Ratio exposes the incremental Metropolis ratio for cell r.
func (e *Engine) Ratio(r int) float64 { return e.ratio(r) }

// Acceptance exposes the temperature-scaled acceptance probability.
var Acceptance = acceptance

// InverseTemperature exposes the cached 1/T.
func (e *Engine) InverseTemperature() float64 { return e.invTemp }
