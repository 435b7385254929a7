package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"

	"github.com/cepro/energyplanner/building"
	"github.com/cepro/energyplanner/config"
	"github.com/cepro/energyplanner/planner"
	"github.com/cepro/energyplanner/plot"
	"github.com/cepro/energyplanner/repository"
	"github.com/cepro/energyplanner/timeseries"
)

// plotDays are the zero-based days of the year rendered in the "days" mode:
// the solstices and equinoxes.
var plotDays = []int{0, 80, 172, 266}

func main() {

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	slog.SetDefault(logger)

	if len(os.Args) < 4 {
		fmt.Fprintf(os.Stderr, "usage: %s <config.json> <profiles.csv> <pvCapMaxW> [days]\n", os.Args[0])
		os.Exit(2)
	}
	configPath := os.Args[1]
	profilesPath := os.Args[2]
	pvCapMaxW, err := strconv.ParseFloat(os.Args[3], 64)
	if err != nil {
		slog.Error("Failed to parse PV capacity bound", "error", err)
		os.Exit(2)
	}
	renderDays := len(os.Args) > 4 && os.Args[4] == "days"

	cfg, err := config.Read(configPath)
	if err != nil {
		slog.Error("Failed to read configuration", "error", err)
		os.Exit(1)
	}

	in, err := loadInputs(cfg, profilesPath)
	if err != nil {
		slog.Error("Failed to load input profiles", "error", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	slog.Info("Starting optimization...", "pvCapMaxW", pvCapMaxW, "autonomyMode", cfg.OptimizeForAutonomy)
	res, err := planner.Run(ctx, cfg, pvCapMaxW, in)
	if err != nil {
		slog.Error("Optimization failed", "error", err)
		os.Exit(1)
	}

	slog.Info("Optimization finished",
		"runID", res.RunID,
		"pvCapKW", res.PVCapKW,
		"batteryCapKWh", res.BatteryCapKWh,
		"gridCapKW", res.GridCapKW,
		"heatPumpCapKW", res.HeatPumpCapKW,
		"hotWaterCapKWh", res.HotWaterCapKWh,
		"totalCost", res.TotalCost,
		"importKWh", res.ImportWh/1000.0,
		"exportKWh", res.ExportWh/1000.0,
		"selfConsumptionRate", res.SelfConsumptionRate,
		"gridAutonomy", res.GridAutonomy,
		"autonomyWithoutBattery", res.AutonomyWithoutBattery,
	)

	repo, err := repository.New("plans.sqlite")
	if err != nil {
		slog.Error("Failed to open the plan repository", "error", err)
		os.Exit(1)
	}
	if err := repo.AddSummary(res); err != nil {
		slog.Error("Failed to store the plan summary", "error", err)
		os.Exit(1)
	}

	if err := plot.HourlyAverages(res, "average_day.png"); err != nil {
		slog.Error("Failed to render the average day plot", "error", err)
		os.Exit(1)
	}
	if renderDays {
		for _, day := range plotDays {
			path := fmt.Sprintf("day_%03d.png", day)
			if err := plot.Day(res, day, path); err != nil {
				slog.Error("Failed to render a day plot", "day", day, "error", err)
				os.Exit(1)
			}
		}
	}
}

// loadInputs reads the hourly profiles and derives the heat demand and COP
// series from the building parameters when the heat pump is enabled.
func loadInputs(cfg config.Config, profilesPath string) (planner.Inputs, error) {
	irradiance, err := timeseries.LoadIrradiance(profilesPath)
	if err != nil {
		return planner.Inputs{}, fmt.Errorf("load irradiance: %w", err)
	}
	demand, err := timeseries.LoadDemand(profilesPath)
	if err != nil {
		return planner.Inputs{}, fmt.Errorf("load demand: %w", err)
	}
	hotWater, err := timeseries.LoadHotWaterDemand(profilesPath)
	if errors.Is(err, timeseries.ErrColumnMissing) {
		slog.Info("No hot water column in the profiles, skipping hot water modelling")
		hotWater = nil
	} else if err != nil {
		return planner.Inputs{}, fmt.Errorf("load hot water demand: %w", err)
	}

	in := planner.Inputs{
		Irradiance:     irradiance,
		Demand:         demand,
		HotWaterDemand: hotWater,
	}

	if cfg.HeatPumpEnabled {
		heatDemand, err := building.HourlyHeatDemand(cfg)
		if err != nil {
			return planner.Inputs{}, fmt.Errorf("derive heat demand: %w", err)
		}
		in.HeatDemand = heatDemand
		in.COP = building.HourlyCOP(cfg)
	}

	return in, nil
}
