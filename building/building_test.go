package building

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cepro/energyplanner/calendar"
	"github.com/cepro/energyplanner/config"
)

func TestAnnualHeatDemandPerM2(t *testing.T) {

	tests := []struct {
		name     string
		building config.BuildingType
		period   config.ConstructionPeriod
		standard config.InsulationStandard
		expected float64
	}{
		{"old single family, poor", config.BuildingTypeSingleFamily, config.ConstructionBefore1900, config.InsulationPoor, 10.6},
		{"old single family, good", config.BuildingTypeSingleFamily, config.ConstructionBefore1900, config.InsulationGood, 11.0},
		{"mid-century terraced, moderate", config.BuildingTypeTerraced, config.Construction1937to1959, config.InsulationModerate, 15.2},
		{"new apartment, good", config.BuildingTypeApartment, config.ConstructionAfter2007, config.InsulationGood, 1.2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AnnualHeatDemandPerM2(tt.building, tt.period, tt.standard)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestAnnualHeatDemandPerM2Unknown(t *testing.T) {
	_, err := AnnualHeatDemandPerM2("castle", config.ConstructionBefore1900, config.InsulationPoor)
	assert.Error(t, err)
}

func TestHourlyHeatDemand(t *testing.T) {
	cfg := config.Default()
	cfg.HeatPumpEnabled = true
	cfg.HouseSquareMeters = 120.0
	cfg.BuildingType = config.BuildingTypeSingleFamily
	cfg.ConstructionPeriod = config.Construction1980to2006
	cfg.InsulationStandard = config.InsulationModerate

	demand, err := HourlyHeatDemand(cfg)
	require.NoError(t, err)
	require.Len(t, demand, calendar.HoursPerYear)

	// The hourly distribution preserves the annual total from the lookup:
	// 4.7 kWh/m2/year * 120 m2 = 564 kWh = 564000 Wh.
	assert.InDelta(t, 564000.0, demand.Sum(), 1.0)

	// No heating demand in July (outdoor temperature above the setpoint)
	julyStart := calendar.MonthStartHour(6)
	assert.Zero(t, demand[julyStart])

	// January demand exceeds March demand (colder month, bigger deficit)
	marchStart := calendar.MonthStartHour(2)
	assert.Greater(t, demand[0], demand[marchStart])

	for h, v := range demand {
		if v < 0 {
			t.Fatalf("Negative heat demand %f at hour %d", v, h)
		}
	}
}

func TestHourlyCOPConstant(t *testing.T) {
	cfg := config.Default()
	cfg.HeatPumpCOP = 3.0

	cop := HourlyCOP(cfg)
	require.Len(t, cop, calendar.HoursPerYear)
	for _, v := range cop {
		if v != 3.0 {
			t.Fatalf("Got COP %f, expected constant 3.0", v)
		}
	}
}

func TestHourlyCOPCurves(t *testing.T) {
	floorCfg := config.Default()
	floorCfg.HeatingType = config.HeatingTypeFloor
	radiatorCfg := config.Default()
	radiatorCfg.HeatingType = config.HeatingTypeRadiator

	floor := HourlyCOP(floorCfg)
	radiator := HourlyCOP(radiatorCfg)

	for h := 0; h < calendar.HoursPerYear; h++ {
		if floor[h] < 1 || radiator[h] < 1 {
			t.Fatalf("COP below 1 at hour %d: floor=%f radiator=%f", h, floor[h], radiator[h])
		}
		if floor[h] <= radiator[h] {
			t.Fatalf("Floor COP should exceed radiator COP at hour %d: floor=%f radiator=%f", h, floor[h], radiator[h])
		}
	}

	// A summer hour is warmer than a winter hour, so the COP must be higher.
	julyStart := calendar.MonthStartHour(6)
	if !(floor[julyStart] > floor[0]) {
		t.Errorf("July COP %f should exceed January COP %f", floor[julyStart], floor[0])
	}
}

func TestOutdoorTemperatures(t *testing.T) {
	outdoor := OutdoorTemperatures()
	require.Len(t, outdoor, calendar.HoursPerYear)
	assert.Equal(t, 8.0, outdoor[0])                                               // January
	assert.Equal(t, 25.0, outdoor[calendar.MonthStartHour(6)])                     // July
	assert.Equal(t, 9.0, outdoor[calendar.HoursPerYear-1])                         // December
	assert.False(t, math.IsNaN(outdoor[calendar.MonthStartHour(3)]), "April temp") // sanity
}
