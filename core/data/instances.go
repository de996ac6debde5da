// Package data reads dense evaluation datasets.
//
// A dataset is a whitespace-separated text file, one instance per line, all
// columns numeric. By default the last column is the ground-truth target;
// an optional attribute file can move the target to any column.
package data

import (
	"math"

	"gonum.org/v1/gonum/mat"

	evalgoErrors "github.com/YuminosukeSato/evalgo/pkg/errors"
)

// Attribute describes one column of a dataset.
type Attribute struct {
	Name string
	Type string
}

// Instances holds a dense dataset split into a feature matrix and a target
// vector. Rows are instances, columns are features.
type Instances struct {
	x          *mat.Dense
	y          *mat.VecDense
	attrs      []Attribute // feature attributes; nil when no attribute file was given
	targetName string
	targetCol  int // column index in the source file the target came from
}

// NewInstances wraps an in-memory feature matrix and target vector. Row i of
// x and element i of y form one instance.
func NewInstances(x *mat.Dense, y *mat.VecDense) (*Instances, error) {
	n, d := x.Dims()
	if y.Len() != n {
		return nil, evalgoErrors.NewDimensionError("data.NewInstances", n, y.Len(), 0)
	}
	return &Instances{
		x:          x,
		y:          y,
		targetName: "target",
		targetCol:  d,
	}, nil
}

// Len returns the number of instances.
func (ins *Instances) Len() int {
	n, _ := ins.x.Dims()
	return n
}

// NumFeatures returns the number of feature columns.
func (ins *Instances) NumFeatures() int {
	_, d := ins.x.Dims()
	return d
}

// Features returns the feature vector of instance i.
func (ins *Instances) Features(i int) mat.Vector {
	return ins.x.RowView(i)
}

// X returns the full feature matrix.
func (ins *Instances) X() *mat.Dense {
	return ins.x
}

// Targets returns the target vector.
func (ins *Instances) Targets() *mat.VecDense {
	return ins.y
}

// Attributes returns the feature attributes, or nil when the dataset was
// read without an attribute file.
func (ins *Instances) Attributes() []Attribute {
	return ins.attrs
}

// TargetName returns the name of the target attribute.
func (ins *Instances) TargetName() string {
	return ins.targetName
}

// TargetColumn returns the column index in the source file that held the
// target.
func (ins *Instances) TargetColumn() int {
	return ins.targetCol
}

// TargetsIntegral reports whether every target value is a whole number.
// Classification tasks on non-integral targets usually indicate that a
// regression dataset was passed by mistake.
func (ins *Instances) TargetsIntegral() bool {
	for i := 0; i < ins.y.Len(); i++ {
		v := ins.y.AtVec(i)
		if math.Trunc(v) != v {
			return false
		}
	}
	return true
}
