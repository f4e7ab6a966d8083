package bench

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/wcharczuk/go-chart/v2"
)

// WriteTable prints one row per layout.
func WriteTable(w io.Writer, cfg Config, results []Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "layout\truns\tmean\tmin\tns/cell\tpopulation\t\n")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%.2f\t%d\t\n",
			r.Layout, len(r.Times), r.Mean().Round(time.Microsecond), r.Min().Round(time.Microsecond),
			r.NsPerCell(cfg.Size, cfg.Steps), r.Final.Population())
	}
	return tw.Flush()
}

// WriteChart renders mean ns/cell per layout as a PNG bar chart.
func WriteChart(w io.Writer, cfg Config, results []Result) error {
	bars := make([]chart.Value, 0, len(results))
	for _, r := range results {
		bars = append(bars, chart.Value{Label: r.Layout.String(), Value: r.NsPerCell(cfg.Size, cfg.Steps)})
	}
	graph := chart.BarChart{
		Title:      fmt.Sprintf("ns/cell, %dx%d, %d steps", cfg.Size, cfg.Size, cfg.Steps),
		Background: chart.Style{Padding: chart.Box{Top: 40}},
		Width:      640,
		Height:     480,
		BarWidth:   80,
		Bars:       bars,
	}
	return graph.Render(chart.PNG, w)
}
