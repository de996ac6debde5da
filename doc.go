// Package evalgo provides post-training model evaluation for Go: it computes
// scalar performance metrics for trained classifiers and regressors against
// a labeled dataset.
//
// evalgo is an evaluation utility, not a training engine. Models are loaded
// from small JSON files (or constructed in memory), predictions are derived
// per instance and a single metric value is returned.
//
// # Features
//
// - Rank-based AUC with average-rank handling of tied scores
// - Numerically stable logistic loss that survives extreme margins
// - Typed errors instead of NaN: undefined metrics and shape mismatches fail loudly
// - Parallel prediction derivation for large datasets
// - ROC curve rendering via gonum/plot
//
// # Installation
//
// Install evalgo using go get:
//
//	go get github.com/YuminosukeSato/evalgo
//
// # Quick Start
//
// Evaluating a regressor against an in-memory dataset:
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "gonum.org/v1/gonum/mat"
//
//	    "github.com/YuminosukeSato/evalgo/core/data"
//	    "github.com/YuminosukeSato/evalgo/evaluation"
//	    "github.com/YuminosukeSato/evalgo/predictor"
//	)
//
//	func main() {
//	    // Model: y = 2x + 0.5
//	    reg := predictor.NewLinearRegressor([]float64{2}, 0.5)
//
//	    X := mat.NewDense(3, 1, []float64{1, 2, 3})
//	    y := mat.NewVecDense(3, []float64{2.4, 4.6, 6.5})
//	    ins, err := data.NewInstances(X, y)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    rmse, err := evaluation.NewEvaluator().Evaluate(evaluation.TaskRMSE, reg, ins)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Printf("RMSE: %v\n", rmse)
//	}
//
// # Packages
//
// The library is organized into several packages:
//
//   - metrics: pure metric functions (AUC, RMSE, MAE, classification error,
//     logistic loss, ROC curve extraction)
//   - evaluation: task selection and dispatch, the Evaluator, ROC plotting
//   - predictor: loadable models (linear regressor, logistic classifier)
//   - core/data: dataset reading and the Instances container
//   - core/model: capability interfaces (Regressor, Classifier, ...)
//   - core/parallel: chunked parallel execution for batch prediction
//   - pkg/errors: typed error taxonomy, warnings, numerical guards
//   - pkg/log: structured logging
//
// # Command Line
//
// The evalgo command evaluates a model file against a dataset and prints a
// single metric line:
//
//	evalgo -m model.json -d test.txt -e a
//	AUC: 0.9166666666666666
//
// The task selector -e accepts a (AUC), c (classification error),
// l (logistic loss), m (MAE) and r (RMSE, the default).
//
// # Error Handling
//
// Metrics never return NaN or a silent placeholder. Undefined conditions
// (such as AUC over one-class labels) and misaligned sequences surface as
// typed errors that can be inspected with errors.As:
//
//	_, err := metrics.AUC(yTrue, yScore)
//	var umErr *errors.UndefinedMetricError
//	if errors.As(err, &umErr) {
//	    fmt.Println(umErr.Condition)
//	}
//
// # License
//
// evalgo is released under the MIT License.
package evalgo
