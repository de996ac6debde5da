package data

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"

	evalgoErrors "github.com/YuminosukeSato/evalgo/pkg/errors"
	"github.com/YuminosukeSato/evalgo/pkg/log"
)

// targetSuffix marks the target attribute in an attribute file.
const targetSuffix = "(target)"

// ReadInstances reads a dense dataset from dataPath.
//
// attrPath may be empty. Without an attribute file every column but the last
// is a feature and the last column is the target. With one, each line is
// "name: type", one per column in order, and a "(target)" suffix on the type
// marks the target column:
//
//	age: cont
//	outcome: cont (target)
//	income: cont
//
// Every value in the data file must parse as a float. Malformed lines are
// rejected with the offending line number rather than skipped, so a bad
// dataset fails loudly instead of silently shrinking.
func ReadInstances(attrPath, dataPath string) (*Instances, error) {
	attrs, target, err := readAttributes(attrPath)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(dataPath)
	if err != nil {
		return nil, evalgoErrors.Wrapf(err, "open dataset %s", dataPath)
	}
	defer f.Close()

	var (
		vals   []float64
		n, d   int
		lineNo int
	)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue // blank line
		}
		if d == 0 {
			// First data row fixes the column count.
			d = len(fields)
			if attrs != nil && len(attrs) != d {
				return nil, evalgoErrors.NewDimensionError("data.ReadInstances", len(attrs), d, 1)
			}
		} else if len(fields) != d {
			return nil, evalgoErrors.NewDimensionError(fmt.Sprintf("data.ReadInstances line %d", lineNo), d, len(fields), 1)
		}
		for _, tok := range fields {
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, evalgoErrors.NewValidationError("dataPath",
					fmt.Sprintf("line %d: cannot parse %q as a number", lineNo, tok), dataPath)
			}
			vals = append(vals, v)
		}
		n++
	}
	if err := scanner.Err(); err != nil {
		return nil, evalgoErrors.Wrapf(err, "read dataset %s", dataPath)
	}
	if n == 0 {
		return nil, evalgoErrors.Wrap(evalgoErrors.ErrEmptyData, fmt.Sprintf("dataset %s", dataPath))
	}
	if d < 2 {
		return nil, evalgoErrors.NewValidationError("dataPath",
			"dataset needs at least one feature column and one target column", dataPath)
	}

	if target < 0 {
		target = d - 1
	}

	x := mat.NewDense(n, d-1, nil)
	y := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		col := 0
		for j := 0; j < d; j++ {
			v := vals[i*d+j]
			if j == target {
				y.SetVec(i, v)
			} else {
				x.Set(i, col, v)
				col++
			}
		}
	}

	targetName := "target"
	var featAttrs []Attribute
	if attrs != nil {
		targetName = attrs[target].Name
		featAttrs = make([]Attribute, 0, d-1)
		featAttrs = append(featAttrs, attrs[:target]...)
		featAttrs = append(featAttrs, attrs[target+1:]...)
	}

	logger := log.GetLoggerWithName("data")
	logger.Debug("dataset loaded",
		log.OperationKey, log.OperationRead,
		log.DataPathKey, dataPath,
		log.InstancesKey, n,
		log.FeaturesKey, d-1,
		log.TargetColumnKey, target,
	)

	return &Instances{
		x:          x,
		y:          y,
		attrs:      featAttrs,
		targetName: targetName,
		targetCol:  target,
	}, nil
}

// readAttributes parses an attribute file. Returns the attributes in column
// order and the index of the target column, or -1 when no line carries the
// "(target)" marker. An empty path returns (nil, -1, nil).
func readAttributes(path string) ([]Attribute, int, error) {
	if path == "" {
		return nil, -1, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, 0, evalgoErrors.Wrapf(err, "open attribute file %s", path)
	}
	defer f.Close()

	var (
		attrs  []Attribute
		target = -1
		lineNo int
	)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		name, rest, ok := strings.Cut(line, ":")
		if !ok {
			return nil, 0, evalgoErrors.NewValidationError("attrPath",
				fmt.Sprintf("line %d: expected 'name: type'", lineNo), path)
		}
		typ := strings.TrimSpace(rest)
		if strings.HasSuffix(typ, targetSuffix) {
			if target >= 0 {
				return nil, 0, evalgoErrors.NewValidationError("attrPath",
					fmt.Sprintf("line %d: multiple %s markers", lineNo, targetSuffix), path)
			}
			target = len(attrs)
			typ = strings.TrimSpace(strings.TrimSuffix(typ, targetSuffix))
		}
		attrs = append(attrs, Attribute{Name: strings.TrimSpace(name), Type: typ})
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, evalgoErrors.Wrapf(err, "read attribute file %s", path)
	}
	if len(attrs) == 0 {
		return nil, 0, evalgoErrors.Wrap(evalgoErrors.ErrEmptyData, fmt.Sprintf("attribute file %s", path))
	}
	return attrs, target, nil
}
