package building

import (
	"fmt"

	"github.com/cepro/energyplanner/calendar"
	"github.com/cepro/energyplanner/config"
	"github.com/cepro/energyplanner/timeseries"
)

// desiredIndoorTemperature is the heating setpoint in degrees C.
const desiredIndoorTemperature = 20.0

// monthlyOutdoorTemperatures holds the reference monthly average outdoor
// temperatures in degrees C (Spanish climate).
var monthlyOutdoorTemperatures = [calendar.MonthsInYear]float64{
	8.0,  // January
	9.0,  // February
	12.0, // March
	14.0, // April
	18.0, // May
	22.0, // June
	25.0, // July
	25.0, // August
	22.0, // September
	17.0, // October
	12.0, // November
	9.0,  // December
}

// OutdoorTemperatures returns the hourly outdoor temperature series for the
// reference year.
func OutdoorTemperatures() timeseries.Series {
	s := make(timeseries.Series, calendar.HoursPerYear)
	for h := range s {
		s[h] = monthlyOutdoorTemperatures[calendar.MonthOfHour(h)]
	}
	return s
}

// HourlyHeatDemand returns the hourly space-heat demand series in Wh for the
// building described by the config. The annual specific demand comes from the
// heating need lookup table, scaled by floor area, and is distributed over
// the year proportionally to the heating degree-hours of the reference
// outdoor temperature profile. Hours with no heating need carry zero demand.
func HourlyHeatDemand(cfg config.Config) (timeseries.Series, error) {
	perM2, err := AnnualHeatDemandPerM2(cfg.BuildingType, cfg.ConstructionPeriod, cfg.InsulationStandard)
	if err != nil {
		return nil, fmt.Errorf("heat demand lookup: %w", err)
	}

	annualWh := perM2 * cfg.HouseSquareMeters * 1000.0 // kWh/m2/year -> Wh/year

	outdoor := OutdoorTemperatures()
	profile := make(timeseries.Series, calendar.HoursPerYear)
	for h, temp := range outdoor {
		deficit := desiredIndoorTemperature - temp
		if deficit > 0 {
			profile[h] = deficit
		}
	}

	profileSum := profile.Sum()
	if profileSum == 0 {
		return nil, fmt.Errorf("heating profile sums to zero, cannot distribute %f Wh", annualWh)
	}

	demand := make(timeseries.Series, calendar.HoursPerYear)
	for h, weight := range profile {
		demand[h] = annualWh * weight / profileSum
	}
	return demand, nil
}
