package predictor

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/evalgo/core/model"
	"github.com/YuminosukeSato/evalgo/core/parallel"
	evalgoErrors "github.com/YuminosukeSato/evalgo/pkg/errors"
)

// LogisticClassifier predicts through a logistic model. The raw margin
// w·x + b serves as its regression output (logistic loss scores margins),
// the sign of the margin classifies, and the stable sigmoid turns the
// margin into a positive-class probability.
type LogisticClassifier struct {
	model.BaseState

	weights   *mat.VecDense
	intercept float64
}

// NewLogisticClassifier creates a loaded classifier from explicit parameters.
func NewLogisticClassifier(weights []float64, intercept float64) *LogisticClassifier {
	c := &LogisticClassifier{
		weights:   mat.NewVecDense(len(weights), weights),
		intercept: intercept,
	}
	c.SetLoaded()
	return c
}

// NumFeatures returns the input width the model expects.
func (c *LogisticClassifier) NumFeatures() int {
	return c.weights.Len()
}

// Weights returns a copy of the model coefficients.
func (c *LogisticClassifier) Weights() []float64 {
	out := make([]float64, c.weights.Len())
	for i := range out {
		out[i] = c.weights.AtVec(i)
	}
	return out
}

// Intercept returns the model intercept.
func (c *LogisticClassifier) Intercept() float64 {
	return c.intercept
}

// Margin returns w·x + b for a single instance.
func (c *LogisticClassifier) Margin(x mat.Vector) (float64, error) {
	if !c.IsLoaded() {
		return 0, evalgoErrors.NewNotLoadedError("LogisticClassifier", "Margin")
	}
	if x.Len() != c.weights.Len() {
		return 0, evalgoErrors.NewDimensionError("LogisticClassifier.Margin", c.weights.Len(), x.Len(), 1)
	}
	return mat.Dot(c.weights, x) + c.intercept, nil
}

// Regress returns the raw margin.
func (c *LogisticClassifier) Regress(x mat.Vector) (float64, error) {
	return c.Margin(x)
}

// Predict returns the margin for every row of X.
func (c *LogisticClassifier) Predict(X mat.Matrix) (out *mat.VecDense, err error) {
	defer evalgoErrors.Recover(&err, "LogisticClassifier.Predict")

	if !c.IsLoaded() {
		return nil, evalgoErrors.NewNotLoadedError("LogisticClassifier", "Predict")
	}

	rows, cols := X.Dims()
	if cols != c.weights.Len() {
		return nil, evalgoErrors.NewDimensionError("LogisticClassifier.Predict", c.weights.Len(), cols, 1)
	}

	out = mat.NewVecDense(rows, nil)
	parallel.RunWithThreshold(rows, batchParallelThreshold, func(start, end int) {
		// Workers write disjoint index ranges of out.
		buf := make([]float64, cols)
		row := mat.NewVecDense(cols, buf)
		for i := start; i < end; i++ {
			mat.Row(buf, i, X)
			out.SetVec(i, mat.Dot(c.weights, row)+c.intercept)
		}
	})
	return out, nil
}

// Classify returns 1 when the margin is non-negative, 0 otherwise.
func (c *LogisticClassifier) Classify(x mat.Vector) (float64, error) {
	margin, err := c.Margin(x)
	if err != nil {
		return 0, err
	}
	if margin >= 0 {
		return 1, nil
	}
	return 0, nil
}

// PredictProba returns the class probabilities [p_negative, p_positive]
// for a single instance.
func (c *LogisticClassifier) PredictProba(x mat.Vector) ([2]float64, error) {
	margin, err := c.Margin(x)
	if err != nil {
		return [2]float64{}, err
	}
	p := evalgoErrors.Sigmoid(margin)
	return [2]float64{1 - p, p}, nil
}

var (
	_ model.Regressor               = (*LogisticClassifier)(nil)
	_ model.Classifier              = (*LogisticClassifier)(nil)
	_ model.ProbabilisticClassifier = (*LogisticClassifier)(nil)
	_ model.LinearModel             = (*LogisticClassifier)(nil)
)
