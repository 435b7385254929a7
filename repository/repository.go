package repository

import (
	"fmt"

	"github.com/cepro/energyplanner/planner"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// Repository stores the summaries of past optimization runs to the local
// file system (sqlite) so repeated runs over varying parameters can be
// compared afterwards.
type Repository struct {
	db *gorm.DB
}

func New(path string) (*Repository, error) {

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// Migrate the schema
	err = db.AutoMigrate(&StoredPlanSummary{})
	if err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	return &Repository{
		db: db,
	}, nil
}

func (r *Repository) AddSummary(res *planner.Results) error {
	result := r.db.Create(newStoredPlanSummary(res))
	return result.Error
}

func (r *Repository) GetSummaries(limit int) ([]StoredPlanSummary, error) {
	var summaries []StoredPlanSummary

	result := r.db.Limit(limit).Order("created_at desc").Find(&summaries)
	if result.Error != nil {
		return nil, result.Error
	}
	return summaries, nil
}

func (r *Repository) DeleteSummary(runID string) error {
	result := r.db.Delete(&StoredPlanSummary{RunID: runID})
	return result.Error
}
