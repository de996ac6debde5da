package metrics

import (
	"sort"

	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/YuminosukeSato/evalgo/pkg/errors"
)

// positiveLabel は陽性クラスを表すターゲット値
const positiveLabel = 1.0

// AUC はROC曲線下面積（Area Under the ROC Curve）を順位和により計算する
//
// yTrue の各要素は positiveLabel と等しいとき陽性、それ以外は陰性として扱う。
// スコアに同値（タイ）がある場合は平均順位を割り当てるため、同値の多い
// スコア列でも偏りなく計算できる。
//
// AUC = (R_pos − n_pos(n_pos+1)/2) / (n_pos · n_neg)
func AUC(yTrue, yScore mat.Vector) (float64, error) {
	// 入力検証
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError("AUC", "empty vector")
	}

	if yScore.Len() != n {
		return 0, errors.NewDimensionError("AUC", n, yScore.Len(), 0)
	}

	// 陽性・陰性の数を数える（どちらかが0ならAUCは未定義）
	var nPos, nNeg int
	for i := 0; i < n; i++ {
		if yTrue.AtVec(i) == positiveLabel {
			nPos++
		} else {
			nNeg++
		}
	}
	if nPos == 0 {
		return 0, errors.NewUndefinedMetricError("AUC", "no positive labels in yTrue")
	}
	if nNeg == 0 {
		return 0, errors.NewUndefinedMetricError("AUC", "no negative labels in yTrue")
	}

	// スコア昇順にソート（インデックスを介した間接ソート）
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool {
		return yScore.AtVec(idx[a]) < yScore.AtVec(idx[b])
	})

	// 同値ブロックごとに平均順位を割り当て、陽性の順位和を取る
	var rPos float64
	for i := 0; i < n; {
		j := i
		for j+1 < n && yScore.AtVec(idx[j+1]) == yScore.AtVec(idx[i]) {
			j++
		}
		// 1始まりの順位 (i+1)..(j+1) の平均
		avgRank := float64(i+j+2) / 2
		for k := i; k <= j; k++ {
			if yTrue.AtVec(idx[k]) == positiveLabel {
				rPos += avgRank
			}
		}
		i = j + 1
	}

	return (rPos - float64(nPos)*float64(nPos+1)/2) / (float64(nPos) * float64(nNeg)), nil
}

// AUCMatrix は行列形式の入力に対してAUCを計算する
func AUCMatrix(yTrue, yScore mat.Matrix) (float64, error) {
	// 入力検証
	rTrue, cTrue := yTrue.Dims()
	rScore, cScore := yScore.Dims()

	if rTrue == 0 || cTrue == 0 {
		return 0, errors.NewValueError("AUCMatrix", "empty matrix")
	}

	if rTrue != rScore || cTrue != cScore {
		return 0, errors.NewDimensionError("AUCMatrix", rTrue, rScore, 0)
	}

	if cTrue != 1 {
		return 0, errors.NewValueError("AUCMatrix", "must be a column vector (n×1 matrix)")
	}

	// VecDenseに変換してAUCを計算
	yTrueVec := mat.NewVecDense(rTrue, nil)
	yScoreVec := mat.NewVecDense(rScore, nil)

	for i := 0; i < rTrue; i++ {
		yTrueVec.SetVec(i, yTrue.At(i, 0))
		yScoreVec.SetVec(i, yScore.At(i, 0))
	}

	return AUC(yTrueVec, yScoreVec)
}

// ROCCurve はROC曲線の座標列（偽陽性率・真陽性率）を計算する
//
// 返り値の fpr・tpr はいずれも昇順で、(0,0) から (1,1) までを覆う。
// 曲線の計算は gonum の stat.ROC に委ねる。
func ROCCurve(yTrue, yScore mat.Vector) (fpr, tpr []float64, err error) {
	// 入力検証
	n := yTrue.Len()
	if n == 0 {
		return nil, nil, errors.NewValueError("ROCCurve", "empty vector")
	}

	if yScore.Len() != n {
		return nil, nil, errors.NewDimensionError("ROCCurve", n, yScore.Len(), 0)
	}

	var nPos, nNeg int
	scores := make([]float64, n)
	classes := make([]bool, n)
	for i := 0; i < n; i++ {
		scores[i] = yScore.AtVec(i)
		classes[i] = yTrue.AtVec(i) == positiveLabel
		if classes[i] {
			nPos++
		} else {
			nNeg++
		}
	}
	if nPos == 0 {
		return nil, nil, errors.NewUndefinedMetricError("ROCCurve", "no positive labels in yTrue")
	}
	if nNeg == 0 {
		return nil, nil, errors.NewUndefinedMetricError("ROCCurve", "no negative labels in yTrue")
	}

	// stat.ROC はスコア昇順を前提とする
	stat.SortWeightedLabeled(scores, classes, nil)
	tpr, fpr, _ = stat.ROC(nil, scores, classes, nil)
	return fpr, tpr, nil
}

// AUCTrapezoid はROC曲線の台形積分によりAUCを計算する
//
// 平均順位によるタイ処理のもとでは順位和による AUC と常に一致するため、
// 主に検算用として使う。
func AUCTrapezoid(yTrue, yScore mat.Vector) (float64, error) {
	fpr, tpr, err := ROCCurve(yTrue, yScore)
	if err != nil {
		return 0, err
	}
	return integrate.Trapezoidal(fpr, tpr), nil
}
