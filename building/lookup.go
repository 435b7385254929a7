package building

import (
	"fmt"

	"github.com/cepro/energyplanner/config"
)

// HeatingNeed holds the annual specific heat demand in kWh/m2/year for the
// three insulation standards a building of a given age class can be at.
type HeatingNeed struct {
	NationalMinimum float64 // the national minimum requirement at construction time
	Improved        float64 // improved retrofit standard
	Ambitious       float64 // ambitious retrofit standard
}

// heatingNeeds maps construction period and building type to the annual
// specific heat demand figures of the Spanish residential building stock.
var heatingNeeds = map[config.ConstructionPeriod]map[config.BuildingType]HeatingNeed{
	config.ConstructionBefore1900: {
		config.BuildingTypeSingleFamily: {10.6, 10.7, 11.0},
		config.BuildingTypeTerraced:     {7.1, 4.0, 3.4},
		config.BuildingTypeMultiFamily:  {11.8, 6.1, 6.1},
		config.BuildingTypeApartment:    {7.8, 5.9, 5.6},
	},
	config.Construction1901to1936: {
		config.BuildingTypeSingleFamily: {14.8, 8.0, 7.1},
		config.BuildingTypeTerraced:     {17.9, 11.7, 11.5},
		config.BuildingTypeMultiFamily:  {7.7, 4.9, 5.6},
		config.BuildingTypeApartment:    {8.5, 4.5, 6.1},
	},
	config.Construction1937to1959: {
		config.BuildingTypeSingleFamily: {8.1, 4.1, 3.4},
		config.BuildingTypeTerraced:     {20.7, 15.2, 15.2},
		config.BuildingTypeMultiFamily:  {11.3, 5.5, 5.1},
		config.BuildingTypeApartment:    {7.4, 3.6, 3.1},
	},
	config.Construction1960to1979: {
		config.BuildingTypeSingleFamily: {12.4, 10.2, 9.1},
		config.BuildingTypeTerraced:     {7.6, 5.0, 6.6},
		config.BuildingTypeMultiFamily:  {9.8, 6.3, 6.0},
		config.BuildingTypeApartment:    {4.3, 2.3, 2.3},
	},
	config.Construction1980to2006: {
		config.BuildingTypeSingleFamily: {5.8, 4.7, 5.7},
		config.BuildingTypeTerraced:     {5.8, 5.4, 6.7},
		config.BuildingTypeMultiFamily:  {3.9, 3.3, 2.8},
		config.BuildingTypeApartment:    {2.3, 1.9, 3.5},
	},
	config.ConstructionAfter2007: {
		config.BuildingTypeSingleFamily: {6.4, 2.9, 2.4},
		config.BuildingTypeTerraced:     {2.5, 2.2, 1.9},
		config.BuildingTypeMultiFamily:  {3.5, 1.9, 1.5},
		config.BuildingTypeApartment:    {2.4, 1.5, 1.2},
	},
}

// AnnualHeatDemandPerM2 returns the annual specific heat demand in kWh/m2/year
// for the given building descriptors.
func AnnualHeatDemandPerM2(buildingType config.BuildingType, period config.ConstructionPeriod, standard config.InsulationStandard) (float64, error) {
	byType, ok := heatingNeeds[period]
	if !ok {
		return 0, fmt.Errorf("construction period %q not found in heating need table", period)
	}
	need, ok := byType[buildingType]
	if !ok {
		return 0, fmt.Errorf("building type %q not found in heating need table", buildingType)
	}

	switch standard {
	case config.InsulationPoor:
		return need.NationalMinimum, nil
	case config.InsulationModerate:
		return need.Improved, nil
	case config.InsulationGood:
		return need.Ambitious, nil
	}
	return 0, fmt.Errorf("insulation standard %q not found in heating need table", standard)
}
