// Package plot renders diagnostic charts of a solved dispatch to PNG files.
package plot

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/cepro/energyplanner/calendar"
	"github.com/cepro/energyplanner/planner"
	"github.com/cepro/energyplanner/timeseries"
)

type series struct {
	label  string
	values timeseries.Series
}

// HourlyAverages renders the average daily profile of the main dispatch
// series, each hour of the day averaged over the whole horizon.
func HourlyAverages(res *planner.Results, path string) error {
	averaged := []series{
		{"load", averageDay(res.Hourly.Load())},
		{"pv production", averageDay(res.Hourly.PVProduction)},
		{"grid import", averageDay(res.Hourly.GridImport)},
		{"grid export", averageDay(res.Hourly.GridExport)},
		{"battery soc", averageDay(res.Hourly.BatterySoc)},
	}
	return render("Average day", averaged, path)
}

// Day renders the dispatch of one day of the horizon.
func Day(res *planner.Results, day int, path string) error {
	days := len(res.Hourly.BaseLoad) / calendar.HoursPerDay
	if day < 0 || day >= days {
		return fmt.Errorf("day %d outside horizon of %d days", day, days)
	}

	start := day * calendar.HoursPerDay
	end := start + calendar.HoursPerDay
	daily := []series{
		{"load", res.Hourly.Load()[start:end]},
		{"pv production", res.Hourly.PVProduction[start:end]},
		{"grid import", res.Hourly.GridImport[start:end]},
		{"grid export", res.Hourly.GridExport[start:end]},
		{"battery soc", res.Hourly.BatterySoc[start:end]},
	}
	return render(calendar.DayLabel(day), daily, path)
}

func averageDay(s timeseries.Series) timeseries.Series {
	averaged := make(timeseries.Series, calendar.HoursPerDay)
	days := len(s) / calendar.HoursPerDay
	if days == 0 {
		return averaged
	}
	for h, v := range s {
		averaged[calendar.HourOfDay(h)] += v
	}
	for h := range averaged {
		averaged[h] /= float64(days)
	}
	return averaged
}

func render(title string, all []series, path string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "hour"
	p.Y.Label.Text = "Wh"
	p.Legend.Top = true

	for i, s := range all {
		if s.values == nil {
			continue
		}
		points := make(plotter.XYs, len(s.values))
		for h, v := range s.values {
			points[h].X = float64(h)
			points[h].Y = v
		}
		line, err := plotter.NewLine(points)
		if err != nil {
			return fmt.Errorf("plot %s: %w", s.label, err)
		}
		line.Color = plotutil.Color(i)
		p.Add(line)
		p.Legend.Add(s.label, line)
	}

	if err := p.Save(10*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("save plot: %w", err)
	}
	return nil
}
