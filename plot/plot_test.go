package plot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cepro/energyplanner/planner"
	"github.com/cepro/energyplanner/timeseries"
	"github.com/stretchr/testify/require"
)

func testResults() *planner.Results {
	res := &planner.Results{}
	res.Hourly.BaseLoad = timeseries.Constant(1000, 48)
	res.Hourly.PVProduction = timeseries.Constant(500, 48)
	res.Hourly.GridImport = timeseries.Constant(500, 48)
	res.Hourly.GridExport = timeseries.Constant(0, 48)
	res.Hourly.BatterySoc = timeseries.Constant(0, 48)
	res.Hourly.BatteryCharge = timeseries.Constant(0, 48)
	res.Hourly.BatteryDischarge = timeseries.Constant(0, 48)
	return res
}

func TestHourlyAveragesWritesFile(test *testing.T) {
	path := filepath.Join(test.TempDir(), "averages.png")

	require.NoError(test, HourlyAverages(testResults(), path))

	info, err := os.Stat(path)
	require.NoError(test, err)
	require.Greater(test, info.Size(), int64(0))
}

func TestDayWritesFile(test *testing.T) {
	path := filepath.Join(test.TempDir(), "day.png")

	require.NoError(test, Day(testResults(), 1, path))

	_, err := os.Stat(path)
	require.NoError(test, err)
}

func TestDayRejectsOutOfRange(test *testing.T) {
	path := filepath.Join(test.TempDir(), "day.png")

	require.Error(test, Day(testResults(), 2, path))
	require.Error(test, Day(testResults(), -1, path))
}
