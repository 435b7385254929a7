package config

import "fmt"

// The building descriptors are closed sets: an unknown string in the config
// file is rejected at validation time rather than surfacing as a missing
// lookup row during model construction.

// BuildingType categorises the dwelling for the heat-demand lookup.
type BuildingType string

const (
	BuildingTypeSingleFamily BuildingType = "singleFamily"
	BuildingTypeTerraced     BuildingType = "terraced"
	BuildingTypeMultiFamily  BuildingType = "multiFamily"
	BuildingTypeApartment    BuildingType = "apartment"
)

// ConstructionPeriod categorises the building's construction year.
type ConstructionPeriod string

const (
	ConstructionBefore1900 ConstructionPeriod = "before1900"
	Construction1901to1936 ConstructionPeriod = "1901to1936"
	Construction1937to1959 ConstructionPeriod = "1937to1959"
	Construction1960to1979 ConstructionPeriod = "1960to1979"
	Construction1980to2006 ConstructionPeriod = "1980to2006"
	ConstructionAfter2007  ConstructionPeriod = "after2007"
)

// InsulationStandard grades the insulation retrofit level of the building.
type InsulationStandard string

const (
	InsulationPoor     InsulationStandard = "poor"
	InsulationModerate InsulationStandard = "moderate"
	InsulationGood     InsulationStandard = "good"
)

// HeatingType indicates the heat distribution system, which determines the
// flow temperature and therefore the heat pump COP curve.
type HeatingType string

const (
	HeatingTypeFloor    HeatingType = "floor"
	HeatingTypeRadiator HeatingType = "radiator"
)

func (b BuildingType) validate() error {
	switch b {
	case BuildingTypeSingleFamily, BuildingTypeTerraced, BuildingTypeMultiFamily, BuildingTypeApartment:
		return nil
	}
	return fmt.Errorf("unknown building type: %q", string(b))
}

func (c ConstructionPeriod) validate() error {
	switch c {
	case ConstructionBefore1900, Construction1901to1936, Construction1937to1959,
		Construction1960to1979, Construction1980to2006, ConstructionAfter2007:
		return nil
	}
	return fmt.Errorf("unknown construction period: %q", string(c))
}

func (i InsulationStandard) validate() error {
	switch i {
	case InsulationPoor, InsulationModerate, InsulationGood:
		return nil
	}
	return fmt.Errorf("unknown insulation standard: %q", string(i))
}

func (h HeatingType) validate() error {
	switch h {
	case HeatingTypeFloor, HeatingTypeRadiator:
		return nil
	}
	return fmt.Errorf("unknown heating type: %q", string(h))
}
