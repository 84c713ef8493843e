package outwriter

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"botstats/schema"
)

// Chart canvas dimensions.
const (
	chartWidth  = 10 * vg.Inch
	chartHeight = 5 * vg.Inch
)

// maxAxisLabels caps how many tick labels appear on a month axis so that
// long histories stay readable.
const maxAxisLabels = 12

// thinLabels blanks out all but every k-th label when there are too many
// to print side by side.
func thinLabels(labels []string) []string {
	if len(labels) <= maxAxisLabels {
		return labels
	}
	step := (len(labels) + maxAxisLabels - 1) / maxAxisLabels
	thinned := make([]string, len(labels))
	for i, label := range labels {
		if i%step == 0 {
			thinned[i] = label
		}
	}
	return thinned
}

// monthTicks builds explicit axis ticks for a month sequence plotted at
// integer X positions.
func monthTicks(months []string) plot.ConstantTicks {
	labels := thinLabels(months)
	ticks := make([]plot.Tick, 0, len(labels))
	for i, label := range labels {
		if label == "" {
			continue
		}
		ticks = append(ticks, plot.Tick{Value: float64(i), Label: label})
	}
	return plot.ConstantTicks(ticks)
}

// renderMonthlyChart draws a bar chart of bot commits per calendar month.
func renderMonthlyChart(rows []schema.MonthlyCount, path string) error {
	p := plot.New()
	p.Title.Text = "Bot commits per month"
	p.Y.Label.Text = "Commits"

	values := make(plotter.Values, len(rows))
	months := make([]string, len(rows))
	for i, r := range rows {
		values[i] = float64(r.CommitCount)
		months[i] = r.Month
	}

	bars, err := plotter.NewBarChart(values, vg.Points(12))
	if err != nil {
		return fmt.Errorf("failed to build bar chart: %w", err)
	}
	bars.LineStyle.Width = 0
	bars.Color = plotutil.Color(0)
	p.Add(bars)
	p.NominalX(thinLabels(months)...)
	p.X.Tick.Label.Rotation = -0.6
	p.X.Tick.Label.XAlign = -0.5

	return p.Save(chartWidth, chartHeight, path)
}

// renderAdoptionChart draws the cumulative adoption curve as two lines,
// one per marker flag.
func renderAdoptionChart(curve []schema.AdoptionPoint, path string) error {
	p := plot.New()
	p.Title.Text = "Cumulative repository adoption"
	p.Y.Label.Text = "Repositories"
	p.Y.Min = 0

	months := make([]string, len(curve))
	withMarker := make(plotter.XYs, len(curve))
	withoutMarker := make(plotter.XYs, len(curve))
	for i, point := range curve {
		months[i] = point.Month
		withMarker[i].X = float64(i)
		withMarker[i].Y = float64(point.WithMarker)
		withoutMarker[i].X = float64(i)
		withoutMarker[i].Y = float64(point.WithoutMarker)
	}

	markerLine, err := plotter.NewLine(withMarker)
	if err != nil {
		return fmt.Errorf("failed to build marker line: %w", err)
	}
	markerLine.Color = plotutil.Color(0)

	plainLine, err := plotter.NewLine(withoutMarker)
	if err != nil {
		return fmt.Errorf("failed to build non-marker line: %w", err)
	}
	plainLine.Color = plotutil.Color(1)

	p.Add(markerLine, plainLine)
	p.Legend.Add("with marker", markerLine)
	p.Legend.Add("without marker", plainLine)
	p.Legend.Top = true
	p.X.Tick.Marker = monthTicks(months)
	p.X.Tick.Label.Rotation = -0.6
	p.X.Tick.Label.XAlign = -0.5

	return p.Save(chartWidth, chartHeight, path)
}

// renderTopReposChart draws a bar chart of the busiest repositories.
func renderTopReposChart(rows []schema.RepoVolume, path string) error {
	p := plot.New()
	p.Title.Text = "Busiest repositories"
	p.Y.Label.Text = "Commits"

	values := make(plotter.Values, len(rows))
	names := make([]string, len(rows))
	for i, r := range rows {
		values[i] = float64(r.CommitCount)
		names[i] = truncateName(r.Name, 20)
	}

	bars, err := plotter.NewBarChart(values, vg.Points(12))
	if err != nil {
		return fmt.Errorf("failed to build bar chart: %w", err)
	}
	bars.LineStyle.Width = 0
	bars.Color = plotutil.Color(2)
	p.Add(bars)
	p.NominalX(names...)
	p.X.Tick.Label.Rotation = -0.9
	p.X.Tick.Label.XAlign = -0.5

	return p.Save(chartWidth, chartHeight, path)
}

// renderProportionsChart draws fleet-wide adoption shares as a two-bar
// percentage chart.
func renderProportionsChart(prop schema.MarkerProportions, path string) error {
	p := plot.New()
	p.Title.Text = "Marker adoption share"
	p.Y.Label.Text = "Percent"
	p.Y.Min = 0
	p.Y.Max = 100

	values := plotter.Values{
		prop.RepoShare() * 100,
		prop.CommitShare() * 100,
	}
	bars, err := plotter.NewBarChart(values, vg.Points(40))
	if err != nil {
		return fmt.Errorf("failed to build bar chart: %w", err)
	}
	bars.LineStyle.Width = 0
	bars.Color = plotutil.Color(3)
	p.Add(bars)
	p.NominalX("Repositories", "Commits")

	return p.Save(chartWidth, chartHeight, path)
}
