package predictor

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/YuminosukeSato/evalgo/core/model"
	evalgoErrors "github.com/YuminosukeSato/evalgo/pkg/errors"
	"github.com/YuminosukeSato/evalgo/pkg/log"
)

// Model kinds recognized by Load.
const (
	KindLinearRegressor    = "linear_regressor"
	KindLogisticClassifier = "logistic_classifier"
)

// modelFile is the on-disk JSON layout shared by all predictor kinds.
type modelFile struct {
	Kind      string    `json:"kind"`
	Weights   []float64 `json:"weights"`
	Intercept float64   `json:"intercept"`
}

// Load reads a JSON model file and constructs the predictor named by its
// "kind" field. The returned value always satisfies model.Predictor;
// callers assert the narrower capability they need.
func Load(path string) (model.Predictor, error) {
	// Validate file path
	cleanPath := filepath.Clean(path)
	if strings.Contains(cleanPath, "..") {
		return nil, evalgoErrors.NewValidationError("modelPath", "path traversal detected", path)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, evalgoErrors.Wrapf(err, "read model file %s", cleanPath)
	}

	var mf modelFile
	if err := json.Unmarshal(data, &mf); err != nil {
		return nil, evalgoErrors.NewModelError("load", "json", err)
	}
	if len(mf.Weights) == 0 {
		return nil, evalgoErrors.NewValidationError("weights", "model file has no weights", path)
	}

	var p model.Predictor
	switch mf.Kind {
	case KindLinearRegressor:
		p = NewLinearRegressor(mf.Weights, mf.Intercept)
	case KindLogisticClassifier:
		p = NewLogisticClassifier(mf.Weights, mf.Intercept)
	default:
		return nil, evalgoErrors.NewModelError("load", mf.Kind,
			evalgoErrors.Newf("unrecognized model kind (expected %q or %q)",
				KindLinearRegressor, KindLogisticClassifier))
	}

	logger := log.GetLoggerWithName("predictor")
	logger.Debug("model loaded",
		log.OperationKey, log.OperationLoad,
		log.ModelPathKey, cleanPath,
		log.ModelKindKey, mf.Kind,
		log.ModelFeaturesKey, len(mf.Weights),
	)
	return p, nil
}
