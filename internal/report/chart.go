package report

import (
	"context"
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// WinrateHistoryChart renders a champion's win rate per patch as a PNG line chart
func (s *service) WinrateHistoryChart(ctx context.Context, championID int, w io.Writer) error {
	champ, err := s.champion(ctx, championID)
	if err != nil {
		return err
	}
	history, err := s.WinrateHistory(ctx, championID)
	if err != nil {
		return err
	}
	if len(history) == 0 {
		return renderNoData(w, champ.Name)
	}

	xs := make([]float64, len(history))
	ys := make([]float64, len(history))
	ticks := make([]chart.Tick, len(history))
	for i, point := range history {
		xs[i] = float64(i)
		ys[i] = point.Winrate
		ticks[i] = chart.Tick{Value: float64(i), Label: point.Patch}
	}
	// A series needs two distinct x values; draw one patch as a short flat segment
	if len(history) == 1 {
		xs = []float64{-singlePatchHalfWidth, singlePatchHalfWidth}
		ys = []float64{ys[0], ys[0]}
	}

	graph := chart.Chart{
		Title:  fmt.Sprintf("%s win rate by patch", champ.Name),
		Width:  ChartWidth,
		Height: ChartHeight,
		XAxis: chart.XAxis{
			Name:  "Patch",
			Ticks: ticks,
			// A single patch still needs a non-empty range
			Range: &chart.ContinuousRange{Min: -0.5, Max: float64(len(history)) - 0.5},
		},
		YAxis: chart.YAxis{
			Name:  "Win rate %",
			Range: &chart.ContinuousRange{Min: 0, Max: 100},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    champ.Name,
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeColor: drawing.ColorBlue,
					StrokeWidth: 2,
					DotWidth:    4,
					DotColor:    drawing.ColorBlue,
				},
			},
		},
	}
	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}

func renderNoData(w io.Writer, title string) error {
	graph := chart.Chart{
		Title:  title,
		Width:  ChartWidth / 2,
		Height: ChartHeight / 2,
		XAxis:  chart.XAxis{Range: &chart.ContinuousRange{Min: 0, Max: 1}},
		YAxis:  chart.YAxis{Range: &chart.ContinuousRange{Min: 0, Max: 100}},
		// Render needs one visible series
		Series: []chart.Series{
			chart.ContinuousSeries{
				XValues: []float64{0, 1},
				YValues: []float64{0, 0},
				Style: chart.Style{
					StrokeColor: drawing.ColorTransparent,
					DotColor:    drawing.ColorTransparent,
				},
			},
		},
		Elements: []chart.Renderable{
			func(r chart.Renderer, cb chart.Box, _ chart.Style) {
				r.SetFontColor(drawing.ColorBlack)
				r.SetFontSize(12)
				tb := r.MeasureText(chartNoData)
				r.Text(chartNoData, (cb.Width()-tb.Width())/2, (cb.Height()+tb.Height())/2)
			},
		},
	}
	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}
