package timeseries

import (
	"errors"
	"fmt"
	"math"
	"os"
	"sync"

	"github.com/go-gota/gota/dataframe"
)

// ErrColumnMissing indicates that the CSV file does not carry the requested
// column. Callers can treat optional series like hot water as absent.
var ErrColumnMissing = errors.New("column not found")

// Expected CSV columns. The irradiance file carries a unitless 0-1 solar
// fraction; the demand file carries Wh values per hour.
const (
	irradianceColumn     = "Solar"
	electricityColumn    = "Electricity"
	hotWaterDemandColumn = "Hot Water"
)

// Loaded CSVs are memoized per path so capacity sweeps don't re-read and
// re-parse the same year of data for every run.
var (
	cacheMu sync.Mutex
	cache   = map[string]Series{}
)

// LoadIrradiance reads the hourly solar irradiance series from the CSV file
// at the given path. Values must be fractions in [0, 1].
func LoadIrradiance(path string) (Series, error) {
	s, err := loadColumn(path, irradianceColumn)
	if err != nil {
		return nil, err
	}
	if err := s.CheckFractions(); err != nil {
		return nil, fmt.Errorf("irradiance series from %s: %w", path, err)
	}
	return s, nil
}

// LoadDemand reads the hourly electricity demand series from the CSV file at
// the given path.
func LoadDemand(path string) (Series, error) {
	s, err := loadColumn(path, electricityColumn)
	if err != nil {
		return nil, err
	}
	if err := s.CheckNonNegative(); err != nil {
		return nil, fmt.Errorf("demand series from %s: %w", path, err)
	}
	return s, nil
}

// LoadHotWaterDemand reads the hourly hot water demand series from the CSV
// file at the given path.
func LoadHotWaterDemand(path string) (Series, error) {
	s, err := loadColumn(path, hotWaterDemandColumn)
	if err != nil {
		return nil, err
	}
	if err := s.CheckNonNegative(); err != nil {
		return nil, fmt.Errorf("hot water series from %s: %w", path, err)
	}
	return s, nil
}

func loadColumn(path, column string) (Series, error) {
	key := path + "\x00" + column

	cacheMu.Lock()
	cached, ok := cache[key]
	cacheMu.Unlock()
	if ok {
		copied := make(Series, len(cached))
		copy(copied, cached)
		return copied, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open timeseries file: %w", err)
	}
	defer file.Close()

	df := dataframe.ReadCSV(file)
	if df.Error() != nil {
		return nil, fmt.Errorf("parse %s: %w", path, df.Error())
	}

	found := false
	for _, name := range df.Names() {
		if name == column {
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("column %q in %s: %w", column, path, ErrColumnMissing)
	}

	values := df.Col(column).Float()
	s := make(Series, len(values))
	for i, v := range values {
		if math.IsNaN(v) {
			return nil, fmt.Errorf("non-numeric value in column %q of %s at row %d", column, path, i+1)
		}
		s[i] = v
	}

	cacheMu.Lock()
	cache[key] = s
	cacheMu.Unlock()

	copied := make(Series, len(s))
	copy(copied, s)
	return copied, nil
}
