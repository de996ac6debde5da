// Command evalgo evaluates a trained model against a labeled dataset and
// prints a single performance metric on standard output. Logs and warnings
// go to standard error so the metric line stays machine readable.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/YuminosukeSato/evalgo/core/data"
	"github.com/YuminosukeSato/evalgo/core/model"
	"github.com/YuminosukeSato/evalgo/evaluation"
	evalgoErrors "github.com/YuminosukeSato/evalgo/pkg/errors"
	"github.com/YuminosukeSato/evalgo/pkg/log"
	"github.com/YuminosukeSato/evalgo/predictor"
)

var flags = struct {
	data              string
	model             string
	attributes        string
	task              string
	rocPlot           string
	logLevel          string
	parallelThreshold int
}{}

var rootCmd = &cobra.Command{
	Use:   "evalgo",
	Short: "Evaluate a trained model against a labeled dataset",
	Long: `evalgo loads a model and a dataset, derives a prediction per instance and
prints one performance metric.

Tasks:
  a    AUC (area under the ROC curve)
  c    classification error
  l    logistic loss
  m    mean absolute error
  r    root mean squared error (default)`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVarP(&flags.data, "data", "d", "", "path to the evaluation dataset (required)")
	rootCmd.Flags().StringVarP(&flags.model, "model", "m", "", "path to the model JSON file (required)")
	rootCmd.Flags().StringVarP(&flags.attributes, "attributes", "r", "", "path to the attribute file naming the dataset columns")
	rootCmd.Flags().StringVarP(&flags.task, "task", "e", "r", "metric selector: a, c, l, m or r")
	rootCmd.Flags().StringVar(&flags.rocPlot, "roc-plot", "", "write the ROC curve to this image file (AUC task only)")
	rootCmd.Flags().StringVar(&flags.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	rootCmd.Flags().IntVar(&flags.parallelThreshold, "parallel-threshold", 10000, "instance count above which predictions derive in parallel")

	_ = rootCmd.MarkFlagRequired("data")
	_ = rootCmd.MarkFlagRequired("model")
}

func run(cmd *cobra.Command, _ []string) error {
	if !log.IsValidLevel(flags.logLevel) {
		return evalgoErrors.NewValidationError("log-level", "must be one of debug, info, warn, error", flags.logLevel)
	}
	log.SetupLogger(flags.logLevel)
	wireWarnings()

	task, err := evaluation.ParseTask(flags.task)
	if err != nil {
		return err
	}
	if flags.rocPlot != "" && task != evaluation.TaskAUC {
		return evalgoErrors.NewValidationError("roc-plot", "ROC plots require the AUC task (-e a)", flags.rocPlot)
	}

	logger := log.GetLoggerWithName("cli")
	logger.Debug("starting evaluation",
		log.TaskKey, task.String(),
		log.ModelPathKey, flags.model,
		log.DataPathKey, flags.data,
		log.AttrPathKey, flags.attributes,
		log.ParallelThresholdKey, flags.parallelThreshold,
	)

	m, err := predictor.Load(flags.model)
	if err != nil {
		return fail(logger, "model load failed", err)
	}

	ins, err := data.ReadInstances(flags.attributes, flags.data)
	if err != nil {
		return fail(logger, "dataset read failed", err)
	}

	if task.IsClassification() && !ins.TargetsIntegral() {
		evalgoErrors.Warn(evalgoErrors.NewDataConversionWarning(
			"continuous targets", "class labels",
			fmt.Sprintf("task %q expects integral class labels; column %q holds non-integral values",
				task.String(), ins.TargetName())))
	}

	e := evaluation.NewEvaluator()
	e.SetParallelThreshold(flags.parallelThreshold)

	value, err := e.Evaluate(task, m, ins)
	if err != nil {
		return fail(logger, "evaluation failed", err)
	}

	if flags.rocPlot != "" {
		prob, ok := m.(model.ProbabilisticClassifier)
		if !ok {
			// Evaluate already required this capability for the AUC task.
			return evalgoErrors.NewMissingCapabilityError(task.String(), "ProbabilisticClassifier")
		}
		if err := e.SaveROC(flags.rocPlot, prob, ins); err != nil {
			return fail(logger, "ROC plot failed", err)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", task.MetricName(), value)
	return nil
}

// fail logs the error with its structured code before handing it back to
// cobra for the exit path.
func fail(logger log.Logger, msg string, err error) error {
	logger.Error(msg,
		log.ErrAttr(err),
		log.ErrorCodeKey, errorCode(err),
	)
	return err
}

// errorCode maps an error chain to its structured log code.
func errorCode(err error) string {
	var (
		dimErr  *evalgoErrors.DimensionError
		umErr   *evalgoErrors.UndefinedMetricError
		taskErr *evalgoErrors.UnsupportedTaskError
		numErr  *evalgoErrors.NumericalInstabilityError
		nlErr   *evalgoErrors.NotLoadedError
		valErr  *evalgoErrors.ValidationError
		vErr    *evalgoErrors.ValueError
	)
	switch {
	case evalgoErrors.As(err, &dimErr):
		return log.ErrorDimensionMismatch
	case evalgoErrors.As(err, &umErr):
		return log.ErrorUndefinedMetric
	case evalgoErrors.As(err, &taskErr):
		return log.ErrorUnsupportedTask
	case evalgoErrors.As(err, &numErr):
		return log.ErrorNumericalInstability
	case evalgoErrors.As(err, &nlErr):
		return log.ErrorNotLoaded
	case evalgoErrors.Is(err, evalgoErrors.ErrEmptyData):
		return log.ErrorEmptyData
	case evalgoErrors.As(err, &valErr), evalgoErrors.As(err, &vErr):
		return log.ErrorInvalidInput
	default:
		return "UNKNOWN"
	}
}

// wireWarnings routes pkg/errors warnings through zerolog so they come out
// as structured JSON on standard error like the rest of the logs.
func wireWarnings() {
	zl := zerolog.New(os.Stderr).With().Timestamp().Logger()
	evalgoErrors.SetZerologWarnFunc(func(warning error) {
		if obj, ok := warning.(zerolog.LogObjectMarshaler); ok {
			zl.Warn().EmbedObject(obj).Msg(warning.Error())
			return
		}
		zl.Warn().Msg(warning.Error())
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
