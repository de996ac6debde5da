package errors

import (
	"math"
)

// CheckFinite scans values for NaN or Inf and returns a
// NumericalInstabilityError locating the first offending element.
// Metric layers call this on derived predictions so a broken model output
// surfaces as an error instead of a NaN metric.
func CheckFinite(operation string, values []float64) error {
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return NewNumericalInstabilityError(operation, []float64{v}, i)
		}
	}
	return nil
}

// ClipValue clips a value to the range [min, max].
func ClipValue(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Log1PExp computes log(1 + exp(x)) without overflowing for large x.
// For x > 0 the identity log(1+exp(x)) = x + log(1+exp(-x)) keeps the
// exponent non-positive.
func Log1PExp(x float64) float64 {
	if x > 0 {
		return x + math.Log1p(math.Exp(-x))
	}
	return math.Log1p(math.Exp(x))
}

// Sigmoid computes the logistic function 1/(1+exp(-z)) in a numerically
// stable way. The exponent is always non-positive, so large |z| saturates
// to 0 or 1 instead of overflowing.
func Sigmoid(z float64) float64 {
	if z >= 0 {
		return 1.0 / (1.0 + math.Exp(-z))
	}
	e := math.Exp(z)
	return e / (1.0 + e)
}
