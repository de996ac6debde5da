package evaluation

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/YuminosukeSato/evalgo/core/data"
	"github.com/YuminosukeSato/evalgo/core/model"
	"github.com/YuminosukeSato/evalgo/metrics"
	evalgoErrors "github.com/YuminosukeSato/evalgo/pkg/errors"
	"github.com/YuminosukeSato/evalgo/pkg/log"
)

// SaveROCPlot renders the ROC curve for the given labels and scores and
// writes it to path. The image format follows the file extension (.png,
// .svg, .pdf); a dashed chance diagonal is drawn for reference.
func SaveROCPlot(path string, yTrue, yScore mat.Vector) error {
	fpr, tpr, err := metrics.ROCCurve(yTrue, yScore)
	if err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = "ROC Curve"
	p.X.Label.Text = "False Positive Rate"
	p.Y.Label.Text = "True Positive Rate"
	p.X.Min, p.X.Max = 0, 1
	p.Y.Min, p.Y.Max = 0, 1

	curve := make(plotter.XYs, len(fpr))
	for i := range fpr {
		curve[i].X = fpr[i]
		curve[i].Y = tpr[i]
	}
	line, err := plotter.NewLine(curve)
	if err != nil {
		return evalgoErrors.Wrap(err, "SaveROCPlot: curve line")
	}
	p.Add(line)
	p.Legend.Add("ROC", line)

	diag, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: 1, Y: 1}})
	if err != nil {
		return evalgoErrors.Wrap(err, "SaveROCPlot: chance diagonal")
	}
	diag.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
	p.Add(diag)

	if err := p.Save(5*vg.Inch, 5*vg.Inch, path); err != nil {
		return evalgoErrors.Wrapf(err, "SaveROCPlot: save %s", path)
	}

	log.GetLoggerWithName("evaluation").Debug("ROC plot written",
		log.OperationKey, log.OperationPlot,
		log.PlotPathKey, path,
	)
	return nil
}

// SaveROC derives positive-class scores from the model and writes the ROC
// curve for ins to path.
func (e *Evaluator) SaveROC(path string, m model.ProbabilisticClassifier, ins *data.Instances) error {
	yScore, err := e.deriveScores("SaveROC", m, ins)
	if err != nil {
		return err
	}
	return SaveROCPlot(path, ins.Targets(), yScore)
}
