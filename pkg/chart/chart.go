// Package chart builds the dashboard charts: the bar/line comparison of
// the resonance table and the radar view of a field simulation run. Each
// builder returns a renderable go-echarts chart; callers decide where the
// HTML goes.
package chart

import (
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/edamos/emrp/pkg/resonance"
	"github.com/edamos/emrp/pkg/session"
)

func seriesData(rows []resonance.Result) (names []string, mci, bvi, hs []opts.BarData) {
	for _, r := range rows {
		names = append(names, r.Name)
		mci = append(mci, opts.BarData{Value: r.MCI})
		bvi = append(bvi, opts.BarData{Value: r.BVI})
		hs = append(hs, opts.BarData{Value: r.HS})
	}
	return names, mci, bvi, hs
}

// Comparison builds the grouped bar chart of MCI, BVI and HS per
// environment.
func Comparison(rows []resonance.Result) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "EMRP Comparison: MCI, BVI, HS"}),
	)

	names, mci, bvi, hs := seriesData(rows)
	bar.SetXAxis(names).
		AddSeries("MCI", mci).
		AddSeries("BVI", bvi).
		AddSeries("HS", hs)
	return bar
}

// ScoreLines builds the line chart of the three score series across
// environments.
func ScoreLines(rows []resonance.Result) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Habitability Scores"}),
	)

	var names []string
	var mci, bvi, hs []opts.LineData
	for _, r := range rows {
		names = append(names, r.Name)
		mci = append(mci, opts.LineData{Value: r.MCI})
		bvi = append(bvi, opts.LineData{Value: r.BVI})
		hs = append(hs, opts.LineData{Value: r.HS})
	}
	line.SetXAxis(names).
		AddSeries("MCI", mci).
		AddSeries("BVI", bvi).
		AddSeries("HS", hs)
	return line
}

// Radar builds the MCR/BVI/GEI radar chart for one simulation run. The
// indicator scale adapts to the record because the field metrics are
// unbounded (GEI is negative for any flux above 1000 W/m²).
func Radar(rec session.Record) *charts.Radar {
	values := []float64{rec.MCR, rec.BVI, rec.GEI}

	maxV, minV := 1.0, 0.0
	for _, v := range values {
		if v > maxV {
			maxV = v
		}
		if v < minV {
			minV = v
		}
	}

	indicators := make([]*opts.Indicator, 0, len(values))
	for _, name := range []string{"MCR", "BVI", "GEI"} {
		indicators = append(indicators, &opts.Indicator{
			Name: name,
			Max:  float32(maxV),
			Min:  float32(minV),
		})
	}

	radar := charts.NewRadar()
	radar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Magnetic Rhythm Metrics Radar Chart"}),
		charts.WithRadarComponentOpts(opts.RadarComponent{Indicator: indicators}),
	)
	radar.AddSeries(rec.Planet, []opts.RadarData{{Value: values}})
	return radar
}
