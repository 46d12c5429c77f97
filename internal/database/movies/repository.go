// Package movies provides database operations for the movie catalog.
package movies

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

func (r *Repository) ListAll() ([]entities.Movie, error) {
	movies := []entities.Movie{}
	if err := r.db.Order("id ASC").Find(&movies).Error; err != nil {
		return nil, fmt.Errorf("list movies: %w", database.Classify(err))
	}
	return movies, nil
}

func (r *Repository) GetByID(id uint) (*entities.Movie, error) {
	if id == 0 {
		return nil, fmt.Errorf("movie %d: %w", id, database.ErrNotFound)
	}
	var movie entities.Movie
	if err := r.db.First(&movie, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("movie %d: %w", id, database.ErrNotFound)
		}
		return nil, fmt.Errorf("get movie %d: %w", id, database.Classify(err))
	}
	return &movie, nil
}

func (r *Repository) ListByTitle(title string) ([]entities.Movie, error) {
	movies := []entities.Movie{}
	if err := r.db.Where("titulo = ?", title).Order("id ASC").Find(&movies).Error; err != nil {
		return nil, fmt.Errorf("list movies by title: %w", database.Classify(err))
	}
	return movies, nil
}

func (r *Repository) Create(movie *entities.Movie) error {
	movie.ID = 0
	if err := r.db.Create(movie).Error; err != nil {
		return fmt.Errorf("create movie: %w", database.Classify(err))
	}
	return nil
}

// Delete removes the movie with the given ID, or returns database.ErrNotFound.
func (r *Repository) Delete(id uint) error {
	movie, err := r.GetByID(id)
	if err != nil {
		return err
	}
	if err := r.db.Delete(movie).Error; err != nil {
		return fmt.Errorf("delete movie %d: %w", id, database.Classify(err))
	}
	return nil
}
