// Package model defines the capability interfaces satisfied by loadable
// predictors. Evaluation code accepts the narrowest interface it can work
// with and widens via type assertion only at task-dispatch time, so a model
// that only regresses is never asked to classify.
package model

import (
	"gonum.org/v1/gonum/mat"
)

// Predictor is the minimal interface every loaded model satisfies.
type Predictor interface {
	// NumFeatures returns the input width the model expects.
	NumFeatures() int
}

// Regressor is the interface for models that produce a real-valued output.
// Margin-based classifiers also satisfy it: their raw margin doubles as the
// regression output, which is how logistic loss gets its inputs.
type Regressor interface {
	Predictor

	// Regress returns the real-valued prediction for a single instance.
	Regress(x mat.Vector) (float64, error)

	// Predict returns the prediction for every row of X.
	Predict(X mat.Matrix) (*mat.VecDense, error)
}

// Classifier is the interface for models that produce a hard class label.
type Classifier interface {
	Predictor

	// Classify returns the predicted class, 0 or 1, for a single instance.
	Classify(x mat.Vector) (float64, error)
}

// ProbabilisticClassifier is the interface for classifiers that can
// additionally estimate class membership probabilities.
type ProbabilisticClassifier interface {
	Classifier

	// PredictProba returns the class probabilities for a single instance.
	// Index 0 holds the negative class, index 1 the positive class.
	PredictProba(x mat.Vector) ([2]float64, error)
}
