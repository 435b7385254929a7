package repository

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/cepro/energyplanner/planner"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestAddAndGetSummaries(test *testing.T) {
	repo, err := New(filepath.Join(test.TempDir(), "plans.db"))
	require.NoError(test, err)

	first := &planner.Results{
		RunID:         uuid.New(),
		CreatedAt:     time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC),
		PVCapKW:       8.5,
		BatteryCapKWh: 12.0,
		TotalCost:     1430.25,
		GridAutonomy:  61.2,
	}
	second := &planner.Results{
		RunID:        uuid.New(),
		CreatedAt:    time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC),
		PVCapKW:      10.0,
		TotalCost:    1388.90,
		GridAutonomy: 68.0,
	}

	require.NoError(test, repo.AddSummary(first))
	require.NoError(test, repo.AddSummary(second))

	summaries, err := repo.GetSummaries(10)
	require.NoError(test, err)
	require.Len(test, summaries, 2)

	// newest first
	require.Equal(test, second.RunID.String(), summaries[0].RunID)
	require.Equal(test, first.RunID.String(), summaries[1].RunID)
	require.InDelta(test, 8.5, summaries[1].PVCapKW, 1e-9)
	require.InDelta(test, 1430.25, summaries[1].TotalCost, 1e-9)
}

func TestGetSummariesRespectsLimit(test *testing.T) {
	repo, err := New(filepath.Join(test.TempDir(), "plans.db"))
	require.NoError(test, err)

	for i := 0; i < 5; i++ {
		res := &planner.Results{
			RunID:     uuid.New(),
			CreatedAt: time.Date(2026, 1, 1+i, 0, 0, 0, 0, time.UTC),
		}
		require.NoError(test, repo.AddSummary(res))
	}

	summaries, err := repo.GetSummaries(3)
	require.NoError(test, err)
	require.Len(test, summaries, 3)
}

func TestDeleteSummary(test *testing.T) {
	repo, err := New(filepath.Join(test.TempDir(), "plans.db"))
	require.NoError(test, err)

	res := &planner.Results{RunID: uuid.New(), CreatedAt: time.Now().UTC()}
	require.NoError(test, repo.AddSummary(res))
	require.NoError(test, repo.DeleteSummary(res.RunID.String()))

	summaries, err := repo.GetSummaries(10)
	require.NoError(test, err)
	require.Empty(test, summaries)
}
