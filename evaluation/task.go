// Package evaluation binds a loaded model and a labeled dataset to the
// metric functions. A Task selects the metric; Evaluate asserts the model
// capability the task needs, derives predictions (in parallel for large
// datasets) and routes to the matching reducer.
package evaluation

import (
	evalgoErrors "github.com/YuminosukeSato/evalgo/pkg/errors"
)

// Task selects the metric an evaluation run computes. The set is closed:
// unrecognized selectors are rejected by ParseTask, never passed through.
type Task int

const (
	// TaskRMSE computes the root mean squared error of a regressor.
	TaskRMSE Task = iota
	// TaskMAE computes the mean absolute error of a regressor.
	TaskMAE
	// TaskError computes the misclassification rate of a classifier.
	TaskError
	// TaskLogisticLoss computes the logistic loss over a model's margins.
	TaskLogisticLoss
	// TaskAUC computes the area under the ROC curve from class probabilities.
	TaskAUC
)

// ParseTask maps a one-letter selector to its Task: "a" (AUC), "c"
// (classification error), "l" (logistic loss), "m" (MAE), "r" (RMSE).
func ParseTask(selector string) (Task, error) {
	switch selector {
	case "a":
		return TaskAUC, nil
	case "c":
		return TaskError, nil
	case "l":
		return TaskLogisticLoss, nil
	case "m":
		return TaskMAE, nil
	case "r":
		return TaskRMSE, nil
	default:
		return 0, evalgoErrors.NewUnsupportedTaskError(selector)
	}
}

// String returns the selector letter of the task.
func (t Task) String() string {
	switch t {
	case TaskRMSE:
		return "r"
	case TaskMAE:
		return "m"
	case TaskError:
		return "c"
	case TaskLogisticLoss:
		return "l"
	case TaskAUC:
		return "a"
	default:
		return "unknown"
	}
}

// MetricName returns the display name used when reporting the metric value.
func (t Task) MetricName() string {
	switch t {
	case TaskRMSE:
		return "RMSE"
	case TaskMAE:
		return "MAE"
	case TaskError:
		return "Error"
	case TaskLogisticLoss:
		return "Logistic Loss"
	case TaskAUC:
		return "AUC"
	default:
		return "unknown"
	}
}

// IsClassification reports whether the task expects class-label targets.
func (t Task) IsClassification() bool {
	switch t {
	case TaskError, TaskLogisticLoss, TaskAUC:
		return true
	default:
		return false
	}
}
