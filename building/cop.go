package building

import (
	"github.com/cepro/energyplanner/calendar"
	"github.com/cepro/energyplanner/cartesian"
	"github.com/cepro/energyplanner/config"
	"github.com/cepro/energyplanner/timeseries"
)

// Air-source heat pump COP against outdoor temperature. Floor heating runs a
// lower flow temperature than radiators and so achieves a higher COP at the
// same conditions.
var (
	copCurveFloor = cartesian.Curve{
		Points: []cartesian.Point{
			{X: -10, Y: 2.6},
			{X: 0, Y: 3.2},
			{X: 10, Y: 3.9},
			{X: 20, Y: 4.6},
			{X: 30, Y: 5.2},
		},
	}
	copCurveRadiator = cartesian.Curve{
		Points: []cartesian.Point{
			{X: -10, Y: 1.9},
			{X: 0, Y: 2.4},
			{X: 10, Y: 3.0},
			{X: 20, Y: 3.6},
			{X: 30, Y: 4.1},
		},
	}
)

// HourlyCOP returns the hourly coefficient-of-performance series for the
// configured heat pump. A non-zero HeatPumpCOP in the config pins the COP to
// that constant; otherwise it follows the heating-type specific curve against
// the reference outdoor temperatures. The COP never drops below 1.
func HourlyCOP(cfg config.Config) timeseries.Series {
	if cfg.HeatPumpCOP > 0 {
		return timeseries.Constant(cfg.HeatPumpCOP, calendar.HoursPerYear)
	}

	curve := copCurveRadiator
	if cfg.HeatingType == config.HeatingTypeFloor {
		curve = copCurveFloor
	}

	outdoor := OutdoorTemperatures()
	cop := make(timeseries.Series, calendar.HoursPerYear)
	for h, temp := range outdoor {
		value := curve.At(temp)
		if value < 1 {
			value = 1
		}
		cop[h] = value
	}
	return cop
}
