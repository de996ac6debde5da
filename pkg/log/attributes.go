// Package log defines standard attribute keys for evaluation operations.
//
// This file contains predefined attribute keys used across evalgo logging.
// Using these keys keeps log output consistent between the CLI, the
// evaluator and the data/model loaders, which makes runs easy to filter
// and compare.
//
// The keys follow a hierarchical naming convention (e.g. "metric.name",
// "data.instances") to support structured log analysis.

package log

// Task and Metric Context
// These attributes identify which evaluation is running and what it produced.
const (
	// TaskKey records the metric selector of the current run.
	// Standard values: "a", "c", "l", "m", "r"
	TaskKey = "task.selector"

	// MetricKey records the display name of the computed metric.
	// Examples: "AUC", "RMSE", "Logistic Loss"
	MetricKey = "metric.name"

	// ValueKey records the computed metric value.
	ValueKey = "metric.value"

	// OperationKey specifies the evaluation operation being performed.
	// Standard values: "evaluate", "load", "read", "plot"
	OperationKey = "eval.operation"

	// ComponentKey identifies which package is performing the operation.
	// Examples: "evaluation", "predictor", "data"
	ComponentKey = "eval.component"
)

// Model Context
// These attributes describe the loaded model under evaluation.
const (
	// ModelKindKey identifies the model type.
	// Examples: "linear_regressor", "logistic_classifier"
	ModelKindKey = "model.kind"

	// ModelPathKey records the file the model was loaded from.
	ModelPathKey = "model.path"

	// ModelFeaturesKey records the number of features the model expects.
	ModelFeaturesKey = "model.features"
)

// Data Shape and Characteristics
// These attributes describe the evaluation dataset.
const (
	// DataPathKey records the dataset file being evaluated.
	DataPathKey = "data.path"

	// AttrPathKey records the optional attribute file describing columns.
	AttrPathKey = "data.attributes_path"

	// InstancesKey indicates the number of instances in the dataset.
	InstancesKey = "data.instances"

	// FeaturesKey indicates the number of feature columns per instance.
	FeaturesKey = "data.features"

	// TargetColumnKey indicates which column holds the ground-truth target.
	TargetColumnKey = "data.target_column"

	// PositivesKey indicates the number of positive labels, relevant when
	// diagnosing undefined AUC results.
	PositivesKey = "data.positives"

	// NegativesKey indicates the number of negative labels.
	NegativesKey = "data.negatives"
)

// Performance
// These attributes capture timing and parallelism information.
const (
	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"

	// ParallelThresholdKey records the instance count above which prediction
	// derivation runs on multiple goroutines.
	ParallelThresholdKey = "parallel.threshold"
)

// Error and Warning Context
// These attributes provide additional context for error messages.
const (
	// ErrorCodeKey provides a structured error code for programmatic handling.
	// Examples: "DIMENSION_MISMATCH", "UNDEFINED_METRIC"
	ErrorCodeKey = "error.code"

	// ErrorTypeKey categorizes the type of error encountered.
	// Examples: "DimensionError", "UnsupportedTaskError"
	ErrorTypeKey = "error.type"

	// SuggestionKey provides hints for resolving issues.
	// Examples: "Check that predictions and targets align", "Use task 'r'"
	SuggestionKey = "error.suggestion"
)

// Output Artifacts
const (
	// PlotPathKey records where a rendered ROC curve was written.
	PlotPathKey = "plot.path"
)

// Standard attribute value constants for common operations.
// Using these constants ensures consistency across the codebase.
const (
	// Standard evaluation operations
	OperationEvaluate = "evaluate"
	OperationLoad     = "load"
	OperationRead     = "read"
	OperationPlot     = "plot"

	// Standard error codes
	ErrorDimensionMismatch    = "DIMENSION_MISMATCH"
	ErrorEmptyData            = "EMPTY_DATA"
	ErrorInvalidInput         = "INVALID_INPUT"
	ErrorUndefinedMetric      = "UNDEFINED_METRIC"
	ErrorUnsupportedTask      = "UNSUPPORTED_TASK"
	ErrorNotLoaded            = "NOT_LOADED"
	ErrorNumericalInstability = "NUMERICAL_INSTABILITY"
)
