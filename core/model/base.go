package model

// ModelState はモデルのロード状態を表す
type ModelState int

const (
	// NotLoaded はモデルが未ロードの状態
	NotLoaded ModelState = iota
	// Loaded はモデルがロード済みの状態
	Loaded
)

// BaseState は全ての予測器の基底となる構造体
type BaseState struct {
	state ModelState
}

// IsLoaded はモデルがロード済みかどうかを返す
func (s *BaseState) IsLoaded() bool {
	return s.state == Loaded
}

// SetLoaded はモデルをロード済み状態に設定する
func (s *BaseState) SetLoaded() {
	s.state = Loaded
}

// Reset はモデルを初期状態にリセットする
func (s *BaseState) Reset() {
	s.state = NotLoaded
}
