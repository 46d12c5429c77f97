// Package series provides database operations for TV series.
package series

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mrlokans/multimedia/internal/database"
	"github.com/mrlokans/multimedia/internal/entities"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) ListAll() ([]entities.Series, error) {
	series := []entities.Series{}
	if err := r.db.Order("id ASC").Find(&series).Error; err != nil {
		return nil, fmt.Errorf("list series: %w", database.Classify(err))
	}
	return series, nil
}

func (r *Repository) GetByID(id uint) (*entities.Series, error) {
	if id == 0 {
		return nil, fmt.Errorf("series %d: %w", id, database.ErrNotFound)
	}
	var s entities.Series
	if err := r.db.First(&s, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("series %d: %w", id, database.ErrNotFound)
		}
		return nil, fmt.Errorf("get series %d: %w", id, database.Classify(err))
	}
	return &s, nil
}

func (r *Repository) ListByTitle(title string) ([]entities.Series, error) {
	series := []entities.Series{}
	if err := r.db.Where("titulo = ?", title).Order("id ASC").Find(&series).Error; err != nil {
		return nil, fmt.Errorf("list series by title: %w", database.Classify(err))
	}
	return series, nil
}

func (r *Repository) Create(s *entities.Series) error {
	s.ID = 0
	if err := r.db.Create(s).Error; err != nil {
		return fmt.Errorf("create series: %w", database.Classify(err))
	}
	return nil
}

// Delete removes the series with the given ID, or returns database.ErrNotFound.
func (r *Repository) Delete(id uint) error {
	s, err := r.GetByID(id)
	if err != nil {
		return err
	}
	if err := r.db.Delete(s).Error; err != nil {
		return fmt.Errorf("delete series %d: %w", id, database.Classify(err))
	}
	return nil
}
