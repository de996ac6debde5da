package evaluation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	evalgoErrors "github.com/YuminosukeSato/evalgo/pkg/errors"
)

func TestParseTask(t *testing.T) {
	tests := []struct {
		selector string
		want     Task
	}{
		{"a", TaskAUC},
		{"c", TaskError},
		{"l", TaskLogisticLoss},
		{"m", TaskMAE},
		{"r", TaskRMSE},
	}

	for _, tt := range tests {
		got, err := ParseTask(tt.selector)
		require.NoError(t, err, "selector %q", tt.selector)
		assert.Equal(t, tt.want, got, "selector %q", tt.selector)
	}
}

func TestParseTaskUnknownSelector(t *testing.T) {
	for _, selector := range []string{"", "x", "rmse", "R"} {
		_, err := ParseTask(selector)
		require.Error(t, err, "selector %q", selector)

		var taskErr *evalgoErrors.UnsupportedTaskError
		require.True(t, evalgoErrors.As(err, &taskErr), "selector %q", selector)
		assert.Equal(t, selector, taskErr.Task)
		assert.Empty(t, taskErr.Capability)
	}
}

func TestTaskMetricName(t *testing.T) {
	assert.Equal(t, "RMSE", TaskRMSE.MetricName())
	assert.Equal(t, "MAE", TaskMAE.MetricName())
	assert.Equal(t, "Error", TaskError.MetricName())
	assert.Equal(t, "Logistic Loss", TaskLogisticLoss.MetricName())
	assert.Equal(t, "AUC", TaskAUC.MetricName())
}

func TestTaskSelectorRoundTrip(t *testing.T) {
	for _, task := range []Task{TaskRMSE, TaskMAE, TaskError, TaskLogisticLoss, TaskAUC} {
		got, err := ParseTask(task.String())
		require.NoError(t, err, "task %s", task.MetricName())
		assert.Equal(t, task, got)
	}
}

func TestTaskIsClassification(t *testing.T) {
	assert.False(t, TaskRMSE.IsClassification())
	assert.False(t, TaskMAE.IsClassification())
	assert.True(t, TaskError.IsClassification())
	assert.True(t, TaskLogisticLoss.IsClassification())
	assert.True(t, TaskAUC.IsClassification())
}
