package model

// LinearModel は線形モデルのインターフェース
type LinearModel interface {
	// Weights は重み（係数）を返す
	Weights() []float64
	// Intercept は切片を返す
	Intercept() float64
}
