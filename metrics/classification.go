package metrics

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/evalgo/pkg/errors"
)

// ClassificationError は誤分類率を計算する
//
// yPred は離散クラスラベルで、完全一致で比較する（許容誤差なし）。
func ClassificationError(yTrue, yPred mat.Vector) (float64, error) {
	// 入力検証
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError("ClassificationError", "empty vector")
	}

	if yPred.Len() != n {
		return 0, errors.NewDimensionError("ClassificationError", n, yPred.Len(), 0)
	}

	// 誤分類率 = (1/n) * Σ [yTrue ≠ yPred]
	miss := 0
	for i := 0; i < n; i++ {
		if yTrue.AtVec(i) != yPred.AtVec(i) {
			miss++
		}
	}

	return float64(miss) / float64(n), nil
}

// Accuracy は正解率（1 − 誤分類率）を計算する
func Accuracy(yTrue, yPred mat.Vector) (float64, error) {
	errRate, err := ClassificationError(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return 1 - errRate, nil
}

// LogisticLoss はマージン出力に対するロジスティック損失を計算する
//
// yTrue は {-1, +1} 規約、yPred は実数値マージン。
// 損失 = (1/n) * Σ log(1 + exp(−yTrue·yPred)) を Log1PExp で計算するため、
// 大きなマージンでもオーバーフローしない。
func LogisticLoss(yTrue, yPred mat.Vector) (float64, error) {
	// 入力検証
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError("LogisticLoss", "empty vector")
	}

	if yPred.Len() != n {
		return 0, errors.NewDimensionError("LogisticLoss", n, yPred.Len(), 0)
	}

	var sum float64
	for i := 0; i < n; i++ {
		sum += errors.Log1PExp(-yTrue.AtVec(i) * yPred.AtVec(i))
	}

	return sum / float64(n), nil
}

// BinaryLogLoss は確率予測に対する交差エントロピー損失を計算する
//
// yTrue は {0, 1} 規約、yPred は陽性クラス確率。確率は [eps, 1−eps] に
// クリップしてから対数を取るため、0 や 1 ちょうどの予測でも発散しない。
func BinaryLogLoss(yTrue, yPred mat.Vector) (float64, error) {
	// 入力検証
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError("BinaryLogLoss", "empty vector")
	}

	if yPred.Len() != n {
		return 0, errors.NewDimensionError("BinaryLogLoss", n, yPred.Len(), 0)
	}

	const eps = 1e-15
	var sum float64
	for i := 0; i < n; i++ {
		p := errors.ClipValue(yPred.AtVec(i), eps, 1-eps)
		if yTrue.AtVec(i) == positiveLabel {
			sum -= math.Log(p)
		} else {
			sum -= math.Log(1 - p)
		}
	}

	return sum / float64(n), nil
}
