package app

import (
	"context"
	"encoding/csv"
	"math"
	"os"
	"strconv"

	chart "github.com/wcharczuk/go-chart/v2"

	"option-mc-pricer/internal/experiment"
)

// ConvergenceOptions configure the error-decay study.
type ConvergenceOptions struct {
	Contract ContractOptions
	Grid     []int
	Seed     uint64
	CSVPath  string
	PNGPath  string
}

// Convergence prices the contract at each path count in the grid under one
// seed and exports the absolute error against the analytic price as CSV
// and/or a PNG chart. Plotted against sqrt(paths), the error should fall off
// roughly as a straight 1/x decay.
func (a *App) Convergence(ctx context.Context, opts ConvergenceOptions) error {
	if err := requireArtifactPath(opts.CSVPath, opts.PNGPath); err != nil {
		return err
	}

	contract, optType, err := a.resolveContract(opts.Contract)
	if err != nil {
		return err
	}

	grid := opts.Grid
	if len(grid) == 0 {
		grid = a.Config.Experiment.PathGrid
	}

	points, analytic, err := experiment.Convergence(ctx, contract, optType, grid, opts.Seed)
	if err != nil {
		return err
	}

	a.Logger.Info().
		Int("grid_points", len(points)).
		Float64("analytic", analytic).
		Msg("convergence study complete")

	if opts.CSVPath != "" {
		if err := writeConvergenceCSV(opts.CSVPath, points, analytic); err != nil {
			return err
		}
	}
	if opts.PNGPath != "" {
		if err := a.writeConvergencePNG(opts.PNGPath, points); err != nil {
			return err
		}
	}
	return nil
}

func writeConvergenceCSV(path string, points []experiment.ConvergencePoint, analytic float64) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"paths", "estimate", "analytic", "abs_error"}); err != nil {
		return err
	}
	for _, p := range points {
		record := []string{
			strconv.Itoa(p.Paths),
			formatFloat(p.Estimate, 6),
			formatFloat(analytic, 6),
			formatFloat(p.AbsError, 6),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	return writer.Error()
}

func (a *App) writeConvergencePNG(path string, points []experiment.ConvergencePoint) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	x := make([]float64, len(points))
	y := make([]float64, len(points))
	for i, p := range points {
		x[i] = math.Sqrt(float64(p.Paths))
		y[i] = p.AbsError
	}

	graph := chart.Chart{
		Width:  a.Config.Export.ChartWidth,
		Height: a.Config.Export.ChartHeight,
		XAxis: chart.XAxis{
			Name: "sqrt(paths)",
		},
		YAxis: chart.YAxis{
			Name: "Absolute pricing error",
			ValueFormatter: func(v interface{}) string {
				return chart.FloatValueFormatterWithFormat(v, "%.4f")
			},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Plain MC error",
				XValues: x,
				YValues: y,
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return graph.Render(chart.PNG, file)
}
