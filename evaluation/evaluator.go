package evaluation

import (
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/evalgo/core/data"
	"github.com/YuminosukeSato/evalgo/core/model"
	"github.com/YuminosukeSato/evalgo/core/parallel"
	"github.com/YuminosukeSato/evalgo/metrics"
	evalgoErrors "github.com/YuminosukeSato/evalgo/pkg/errors"
	"github.com/YuminosukeSato/evalgo/pkg/log"
)

// defaultParallelThreshold is the instance count above which prediction
// derivation fans out across CPU cores.
const defaultParallelThreshold = 10000

// Capability names reported when a model cannot serve the requested task.
const (
	capabilityRegressor     = "Regressor"
	capabilityClassifier    = "Classifier"
	capabilityProbabilistic = "ProbabilisticClassifier"
)

// Evaluator computes metrics for a model against a labeled dataset. Metric
// folds stay single threaded; only the per-instance model calls are
// parallelized, and only above the configured threshold.
type Evaluator struct {
	logger            log.Logger
	parallelThreshold int
}

// NewEvaluator creates an Evaluator with the default parallel threshold.
func NewEvaluator() *Evaluator {
	return &Evaluator{
		logger:            log.GetLoggerWithName("evaluation"),
		parallelThreshold: defaultParallelThreshold,
	}
}

// SetParallelThreshold overrides the instance count above which prediction
// derivation runs in parallel.
func (e *Evaluator) SetParallelThreshold(n int) {
	e.parallelThreshold = n
}

// Evaluate runs the metric selected by task against the model's predictions
// on ins. The capability the task needs is asserted here; the reducers in
// the metrics package never see a model.
func (e *Evaluator) Evaluate(task Task, m model.Predictor, ins *data.Instances) (value float64, err error) {
	defer evalgoErrors.Recover(&err, "Evaluator.Evaluate")

	if ins.NumFeatures() != m.NumFeatures() {
		return 0, evalgoErrors.NewDimensionError("Evaluator.Evaluate", m.NumFeatures(), ins.NumFeatures(), 1)
	}

	start := time.Now()

	switch task {
	case TaskRMSE:
		reg, ok := m.(model.Regressor)
		if !ok {
			return 0, evalgoErrors.NewMissingCapabilityError(task.String(), capabilityRegressor)
		}
		value, err = e.EvalRMSE(reg, ins)
	case TaskMAE:
		reg, ok := m.(model.Regressor)
		if !ok {
			return 0, evalgoErrors.NewMissingCapabilityError(task.String(), capabilityRegressor)
		}
		value, err = e.EvalMAE(reg, ins)
	case TaskError:
		cls, ok := m.(model.Classifier)
		if !ok {
			return 0, evalgoErrors.NewMissingCapabilityError(task.String(), capabilityClassifier)
		}
		value, err = e.EvalError(cls, ins)
	case TaskLogisticLoss:
		reg, ok := m.(model.Regressor)
		if !ok {
			return 0, evalgoErrors.NewMissingCapabilityError(task.String(), capabilityRegressor)
		}
		value, err = e.EvalLogisticLoss(reg, ins)
	case TaskAUC:
		prob, ok := m.(model.ProbabilisticClassifier)
		if !ok {
			return 0, evalgoErrors.NewMissingCapabilityError(task.String(), capabilityProbabilistic)
		}
		value, err = e.EvalAUC(prob, ins)
	default:
		return 0, evalgoErrors.NewUnsupportedTaskError(task.String())
	}
	if err != nil {
		return 0, err
	}

	e.logger.Debug("evaluation finished",
		log.OperationKey, log.OperationEvaluate,
		log.TaskKey, task.String(),
		log.MetricKey, task.MetricName(),
		log.ValueKey, value,
		log.InstancesKey, ins.Len(),
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return value, nil
}

// EvalRMSE computes the root mean squared error of the regressor's
// predictions against the targets of ins.
func (e *Evaluator) EvalRMSE(m model.Regressor, ins *data.Instances) (float64, error) {
	yPred, err := e.derive("EvalRMSE", ins, m.Regress)
	if err != nil {
		return 0, err
	}
	return metrics.RMSE(ins.Targets(), yPred)
}

// EvalRMSEVecs computes the root mean squared error directly from aligned
// target and prediction vectors, without a model.
func (e *Evaluator) EvalRMSEVecs(yTrue, yPred mat.Vector) (float64, error) {
	return metrics.RMSE(yTrue, yPred)
}

// EvalMAE computes the mean absolute error of the regressor's predictions
// against the targets of ins.
func (e *Evaluator) EvalMAE(m model.Regressor, ins *data.Instances) (float64, error) {
	yPred, err := e.derive("EvalMAE", ins, m.Regress)
	if err != nil {
		return 0, err
	}
	return metrics.MAE(ins.Targets(), yPred)
}

// EvalError computes the misclassification rate of the classifier's
// predicted labels against the targets of ins.
func (e *Evaluator) EvalError(m model.Classifier, ins *data.Instances) (float64, error) {
	yPred, err := e.derive("EvalError", ins, m.Classify)
	if err != nil {
		return 0, err
	}
	return metrics.ClassificationError(ins.Targets(), yPred)
}

// EvalLogisticLoss computes the logistic loss over the model's margins.
// Targets in the {0,1} convention are mapped to {-1,+1} here; any other
// value passes through and must already be a signed label.
func (e *Evaluator) EvalLogisticLoss(m model.Regressor, ins *data.Instances) (float64, error) {
	margins, err := e.derive("EvalLogisticLoss", ins, m.Regress)
	if err != nil {
		return 0, err
	}

	y := ins.Targets()
	signed := mat.NewVecDense(y.Len(), nil)
	for i := 0; i < y.Len(); i++ {
		t := y.AtVec(i)
		if t == 0 {
			t = -1
		}
		signed.SetVec(i, t)
	}
	return metrics.LogisticLoss(signed, margins)
}

// EvalAUC computes the area under the ROC curve from the model's
// positive-class probabilities.
func (e *Evaluator) EvalAUC(m model.ProbabilisticClassifier, ins *data.Instances) (float64, error) {
	yScore, err := e.deriveScores("EvalAUC", m, ins)
	if err != nil {
		return 0, err
	}
	return metrics.AUC(ins.Targets(), yScore)
}

// deriveScores derives the positive-class probability for every instance.
func (e *Evaluator) deriveScores(op string, m model.ProbabilisticClassifier, ins *data.Instances) (*mat.VecDense, error) {
	return e.derive(op, ins, func(x mat.Vector) (float64, error) {
		probs, err := m.PredictProba(x)
		if err != nil {
			return 0, err
		}
		return probs[1], nil
	})
}

// derive fills one prediction slot per instance by calling fn, chunked over
// CPU cores above the parallel threshold. Workers write disjoint index
// ranges. Every derived value must be finite; a NaN or Inf surfaces as a
// NumericalInstabilityError before any metric sees it.
func (e *Evaluator) derive(op string, ins *data.Instances, fn func(x mat.Vector) (float64, error)) (*mat.VecDense, error) {
	n := ins.Len()
	if n == 0 {
		return nil, evalgoErrors.Wrap(evalgoErrors.ErrEmptyData, op)
	}

	preds := make([]float64, n)
	errs := make([]error, n)
	parallel.RunWithThreshold(n, e.parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			preds[i], errs[i] = fn(ins.Features(i))
		}
	})
	for i, err := range errs {
		if err != nil {
			return nil, evalgoErrors.Wrapf(err, "%s: instance %d", op, i)
		}
	}

	if err := evalgoErrors.CheckFinite(op, preds); err != nil {
		return nil, err
	}
	return mat.NewVecDense(n, preds), nil
}
