package predictor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/evalgo/core/model"
	evalgoErrors "github.com/YuminosukeSato/evalgo/pkg/errors"
)

func writeModelFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadLinearRegressor(t *testing.T) {
	dir := t.TempDir()
	path := writeModelFile(t, dir, "model.json",
		`{"kind": "linear_regressor", "weights": [0.5, -0.25], "intercept": 1.5}`)

	p, err := Load(path)
	require.NoError(t, err)

	reg, ok := p.(model.Regressor)
	require.True(t, ok, "loaded model must regress")
	assert.Equal(t, 2, p.NumFeatures())

	got, err := reg.Regress(mat.NewVecDense(2, []float64{2, 4}))
	require.NoError(t, err)
	assert.InDelta(t, 1.5, got, 1e-12) // 0.5*2 - 0.25*4 + 1.5

	// A plain regressor offers no classification capability.
	_, isClassifier := p.(model.Classifier)
	assert.False(t, isClassifier)
}

func TestLoadLogisticClassifier(t *testing.T) {
	dir := t.TempDir()
	path := writeModelFile(t, dir, "model.json",
		`{"kind": "logistic_classifier", "weights": [1.0], "intercept": 0.0}`)

	p, err := Load(path)
	require.NoError(t, err)

	proba, ok := p.(model.ProbabilisticClassifier)
	require.True(t, ok, "logistic model must expose probabilities")

	probs, err := proba.PredictProba(mat.NewVecDense(1, []float64{0}))
	require.NoError(t, err)
	assert.InDelta(t, 0.5, probs[1], 1e-12)
}

func TestLoadDefaultIntercept(t *testing.T) {
	dir := t.TempDir()
	path := writeModelFile(t, dir, "model.json",
		`{"kind": "linear_regressor", "weights": [2.0]}`)

	p, err := Load(path)
	require.NoError(t, err)

	lin, ok := p.(model.LinearModel)
	require.True(t, ok)
	assert.Equal(t, 0.0, lin.Intercept())
}

func TestLoadUnknownKind(t *testing.T) {
	dir := t.TempDir()
	path := writeModelFile(t, dir, "model.json",
		`{"kind": "decision_tree", "weights": [1.0]}`)

	_, err := Load(path)
	require.Error(t, err)

	var modelErr *evalgoErrors.ModelError
	require.True(t, evalgoErrors.As(err, &modelErr))
	assert.Equal(t, "decision_tree", modelErr.Kind)
}

func TestLoadMalformedJSON(t *testing.T) {
	dir := t.TempDir()
	path := writeModelFile(t, dir, "model.json", `{"kind": "linear_regressor,`)

	_, err := Load(path)
	require.Error(t, err)

	var modelErr *evalgoErrors.ModelError
	assert.True(t, evalgoErrors.As(err, &modelErr))
}

func TestLoadNoWeights(t *testing.T) {
	dir := t.TempDir()
	path := writeModelFile(t, dir, "model.json",
		`{"kind": "linear_regressor", "weights": []}`)

	_, err := Load(path)
	require.Error(t, err)

	var valErr *evalgoErrors.ValidationError
	assert.True(t, evalgoErrors.As(err, &valErr))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestLoadPathTraversal(t *testing.T) {
	_, err := Load("../outside.json")
	require.Error(t, err)

	var valErr *evalgoErrors.ValidationError
	assert.True(t, evalgoErrors.As(err, &valErr))
}
