package app

import (
	"context"
	"encoding/csv"
	"os"
	"strconv"

	chart "github.com/wcharczuk/go-chart/v2"

	"option-mc-pricer/internal/experiment"
)

// EfficiencyOptions configure the CI-width-versus-paths study.
type EfficiencyOptions struct {
	Contract ContractOptions
	Grid     []int
	Runs     int
	Alpha    float64
	BaseSeed *uint64
	CSVPath  string
	PNGPath  string
}

// Efficiency measures each estimator's confidence-interval width across the
// path grid and exports one series per method. Narrower at equal budget wins.
func (a *App) Efficiency(ctx context.Context, opts EfficiencyOptions) error {
	if err := requireArtifactPath(opts.CSVPath, opts.PNGPath); err != nil {
		return err
	}

	contract, optType, err := a.resolveContract(opts.Contract)
	if err != nil {
		return err
	}

	cfg := experiment.EfficiencyConfig{
		Contract: contract,
		Type:     optType,
		Grid:     a.Config.Experiment.PathGrid,
		Runs:     a.Config.Experiment.Runs,
		BaseSeed: a.Config.Experiment.BaseSeed,
		Alpha:    a.Config.Experiment.Alpha,
		Workers:  a.Config.Experiment.Workers,
	}
	if len(opts.Grid) > 0 {
		cfg.Grid = opts.Grid
	}
	if opts.Runs > 0 {
		cfg.Runs = opts.Runs
	}
	if opts.Alpha > 0 {
		cfg.Alpha = opts.Alpha
	}
	if opts.BaseSeed != nil {
		cfg.BaseSeed = *opts.BaseSeed
	}

	a.Logger.Info().
		Ints("grid", cfg.Grid).
		Int("runs", cfg.Runs).
		Msg("running efficiency study")

	series, err := experiment.Efficiency(ctx, cfg)
	if err != nil {
		return err
	}

	if opts.CSVPath != "" {
		if err := writeEfficiencyCSV(opts.CSVPath, series); err != nil {
			return err
		}
	}
	if opts.PNGPath != "" {
		if err := a.writeEfficiencyPNG(opts.PNGPath, series); err != nil {
			return err
		}
	}
	return nil
}

func writeEfficiencyCSV(path string, series []experiment.EfficiencySeries) error {
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

	if err := writer.Write([]string{"method", "paths", "ci_width"}); err != nil {
		return err
	}
	for _, s := range series {
		for _, p := range s.Points {
			record := []string{s.Method.String(), strconv.Itoa(p.Paths), formatFloat(p.Width, 6)}
			if err := writer.Write(record); err != nil {
				return err
			}
		}
	}
	return writer.Error()
}

func (a *App) writeEfficiencyPNG(path string, series []experiment.EfficiencySeries) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	chartSeries := make([]chart.Series, 0, len(series))
	for _, s := range series {
		x := make([]float64, len(s.Points))
		y := make([]float64, len(s.Points))
		for i, p := range s.Points {
			x[i] = float64(p.Paths)
			y[i] = p.Width
		}
		chartSeries = append(chartSeries, chart.ContinuousSeries{
			Name:    s.Method.String(),
			XValues: x,
			YValues: y,
		})
	}

	graph := chart.Chart{
		Width:  a.Config.Export.ChartWidth,
		Height: a.Config.Export.ChartHeight,
		XAxis: chart.XAxis{
			Name: "Paths",
		},
		YAxis: chart.YAxis{
			Name: "CI width",
			ValueFormatter: func(v interface{}) string {
				return chart.FloatValueFormatterWithFormat(v, "%.4f")
			},
		},
		Series: chartSeries,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return graph.Render(chart.PNG, file)
}
