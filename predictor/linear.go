// Package predictor provides the concrete models the evaluation CLI can
// load: a linear regressor and a logistic classifier, both read from a
// small JSON model file keyed on a "kind" field.
package predictor

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/evalgo/core/model"
	"github.com/YuminosukeSato/evalgo/core/parallel"
	evalgoErrors "github.com/YuminosukeSato/evalgo/pkg/errors"
)

// batchParallelThreshold is the instance count above which batch prediction
// fans out across CPU cores.
const batchParallelThreshold = 10000

// LinearRegressor predicts w·x + b.
type LinearRegressor struct {
	model.BaseState

	weights   *mat.VecDense
	intercept float64
}

// NewLinearRegressor creates a loaded regressor from explicit parameters.
func NewLinearRegressor(weights []float64, intercept float64) *LinearRegressor {
	r := &LinearRegressor{
		weights:   mat.NewVecDense(len(weights), weights),
		intercept: intercept,
	}
	r.SetLoaded()
	return r
}

// NumFeatures returns the input width the model expects.
func (r *LinearRegressor) NumFeatures() int {
	return r.weights.Len()
}

// Weights returns a copy of the model coefficients.
func (r *LinearRegressor) Weights() []float64 {
	out := make([]float64, r.weights.Len())
	for i := range out {
		out[i] = r.weights.AtVec(i)
	}
	return out
}

// Intercept returns the model intercept.
func (r *LinearRegressor) Intercept() float64 {
	return r.intercept
}

// Regress returns w·x + b for a single instance.
func (r *LinearRegressor) Regress(x mat.Vector) (float64, error) {
	if !r.IsLoaded() {
		return 0, evalgoErrors.NewNotLoadedError("LinearRegressor", "Regress")
	}
	if x.Len() != r.weights.Len() {
		return 0, evalgoErrors.NewDimensionError("LinearRegressor.Regress", r.weights.Len(), x.Len(), 1)
	}
	return mat.Dot(r.weights, x) + r.intercept, nil
}

// Predict returns the prediction for every row of X.
func (r *LinearRegressor) Predict(X mat.Matrix) (out *mat.VecDense, err error) {
	defer evalgoErrors.Recover(&err, "LinearRegressor.Predict")

	if !r.IsLoaded() {
		return nil, evalgoErrors.NewNotLoadedError("LinearRegressor", "Predict")
	}

	rows, cols := X.Dims()
	if cols != r.weights.Len() {
		return nil, evalgoErrors.NewDimensionError("LinearRegressor.Predict", r.weights.Len(), cols, 1)
	}

	out = mat.NewVecDense(rows, nil)
	parallel.RunWithThreshold(rows, batchParallelThreshold, func(start, end int) {
		// Workers write disjoint index ranges of out.
		buf := make([]float64, cols)
		row := mat.NewVecDense(cols, buf)
		for i := start; i < end; i++ {
			mat.Row(buf, i, X)
			out.SetVec(i, mat.Dot(r.weights, row)+r.intercept)
		}
	})
	return out, nil
}

var (
	_ model.Regressor   = (*LinearRegressor)(nil)
	_ model.LinearModel = (*LinearRegressor)(nil)
)
