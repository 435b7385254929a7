package timeseries

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cepro/energyplanner/calendar"
)

func TestScaleAnnual(t *testing.T) {
	s := Series{1, 2, 3, 4}
	scaled := ScaleAnnual(s, 100)
	if math.Abs(scaled.Sum()-100) > 1e-9 {
		t.Errorf("Got sum %f, expected 100", scaled.Sum())
	}
	// shape must be preserved
	if math.Abs(scaled[1]/scaled[0]-2) > 1e-9 {
		t.Errorf("Scaling changed the series shape: %v", scaled)
	}
	// original untouched
	if s[0] != 1 {
		t.Errorf("ScaleAnnual mutated its input: %v", s)
	}
}

func TestScaleAnnualZeroSum(t *testing.T) {
	s := Series{0, 0, 0}
	scaled := ScaleAnnual(s, 100)
	if scaled.Sum() != 0 {
		t.Errorf("Got sum %f, expected 0", scaled.Sum())
	}
}

func TestScaleMonthly(t *testing.T) {
	base := Constant(1.0, calendar.HoursPerYear)
	weights := []float64{1000, 800, 1200, 1500, 1800, 2100, 2400, 2700, 3000, 3300, 3600, 3900}

	scaled, err := ScaleMonthly(base, weights)
	if err != nil {
		t.Fatalf("ScaleMonthly failed: %v", err)
	}
	if len(scaled) != calendar.HoursPerYear {
		t.Fatalf("Got %d entries, expected %d", len(scaled), calendar.HoursPerYear)
	}

	// January (744 hours) must sum to its weight
	january := Series(scaled[0:744]).Sum()
	if math.Abs(january-1000) > 0.01 {
		t.Errorf("Got January total %f, expected 1000", january)
	}

	// February (672 hours) must sum to its weight
	february := Series(scaled[744:1416]).Sum()
	if math.Abs(february-800) > 0.01 {
		t.Errorf("Got February total %f, expected 800", february)
	}

	total := scaled.Sum()
	expectedTotal := 0.0
	for _, w := range weights {
		expectedTotal += w
	}
	if math.Abs(total-expectedTotal) > 0.1 {
		t.Errorf("Got annual total %f, expected %f", total, expectedTotal)
	}
}

func TestScaleMonthlyRejectsWrongLengths(t *testing.T) {
	if _, err := ScaleMonthly(Constant(1, 100), make([]float64, 12)); err == nil {
		t.Error("Expected an error for a short series, got nil")
	}
	if _, err := ScaleMonthly(Constant(1, calendar.HoursPerYear), make([]float64, 11)); err == nil {
		t.Error("Expected an error for 11 weights, got nil")
	}
}

func TestChecks(t *testing.T) {
	if err := Constant(0.5, calendar.HoursPerYear).CheckYear(); err != nil {
		t.Errorf("CheckYear failed on a year-length series: %v", err)
	}
	if err := Constant(0.5, 8759).CheckYear(); err == nil {
		t.Error("CheckYear accepted a short series")
	}
	if err := (Series{0, 0.5, 1}).CheckFractions(); err != nil {
		t.Errorf("CheckFractions failed on valid values: %v", err)
	}
	if err := (Series{0, 1.5}).CheckFractions(); err == nil {
		t.Error("CheckFractions accepted a value above 1")
	}
	if err := (Series{1, -0.1}).CheckNonNegative(); err == nil {
		t.Error("CheckNonNegative accepted a negative value")
	}
}

func writeCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Could not write CSV: %v", err)
	}
	return path
}

func TestLoadIrradiance(t *testing.T) {
	path := writeCSV(t, "ts_res.csv", "Time,Solar\n0,0.0\n1,0.25\n2,0.5\n3,1.0\n")

	s, err := LoadIrradiance(path)
	if err != nil {
		t.Fatalf("LoadIrradiance failed: %v", err)
	}
	expected := Series{0.0, 0.25, 0.5, 1.0}
	if len(s) != len(expected) {
		t.Fatalf("Got %d values, expected %d", len(s), len(expected))
	}
	for i := range expected {
		if s[i] != expected[i] {
			t.Errorf("At index %d got %f, expected %f", i, s[i], expected[i])
		}
	}

	// a second load is served from the cache and must not alias the first
	s2, err := LoadIrradiance(path)
	if err != nil {
		t.Fatalf("Cached LoadIrradiance failed: %v", err)
	}
	s2[0] = 99
	if s[0] != 0.0 {
		t.Error("Cached series aliases a previously returned series")
	}
}

func TestLoadIrradianceRejectsOutOfRange(t *testing.T) {
	path := writeCSV(t, "ts_res.csv", "Time,Solar\n0,0.5\n1,1.5\n")
	if _, err := LoadIrradiance(path); err == nil {
		t.Error("Expected an error for irradiance above 1, got nil")
	}
}

func TestLoadDemand(t *testing.T) {
	path := writeCSV(t, "demand.csv", "Time,Hot Water,Space Heat,Electricity,Charge\n0,10,0,500,0\n1,12,0,450,0\n")

	demand, err := LoadDemand(path)
	if err != nil {
		t.Fatalf("LoadDemand failed: %v", err)
	}
	if demand[0] != 500 || demand[1] != 450 {
		t.Errorf("Got demand %v, expected [500 450]", demand)
	}

	hotWater, err := LoadHotWaterDemand(path)
	if err != nil {
		t.Fatalf("LoadHotWaterDemand failed: %v", err)
	}
	if hotWater[0] != 10 || hotWater[1] != 12 {
		t.Errorf("Got hot water demand %v, expected [10 12]", hotWater)
	}
}

func TestLoadMissingColumn(t *testing.T) {
	path := writeCSV(t, "bad.csv", "Time,Wind\n0,0.5\n")
	_, err := LoadIrradiance(path)
	if err == nil {
		t.Fatal("Expected an error for a missing column, got nil")
	}
	if !strings.Contains(err.Error(), "Solar") {
		t.Errorf("Error should name the missing column, got: %v", err)
	}
	if !errors.Is(err, ErrColumnMissing) {
		t.Errorf("Error should wrap ErrColumnMissing, got: %v", err)
	}
}
