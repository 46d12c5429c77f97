// Package books provides database operations for the book catalog.
//
// A Repository wraps whatever *gorm.DB it is given; in the HTTP server that
// is a request-scoped database.Session, so each repository lives for one
// request only.
//
// # Usage
//
//	repo := books.NewRepository(session.DB)
//	book, err := repo.GetByID(123)
//	if errors.Is(err, database.ErrNotFound) {
//		// no such book
//	}
package books

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mrlokans/multimedia/internal/database"
	"github.com/mrlokans/multimedia/internal/entities"
)

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListAll returns every book in insertion order.
func (r *Repository) ListAll() ([]entities.Book, error) {
	books := []entities.Book{}
	if err := r.db.Order("id ASC").Find(&books).Error; err != nil {
		return nil, fmt.Errorf("list books: %w", database.Classify(err))
	}
	return books, nil
}

// GetByID returns the book with the given primary key or database.ErrNotFound.
func (r *Repository) GetByID(id uint) (*entities.Book, error) {
	if id == 0 {
		return nil, fmt.Errorf("book %d: %w", id, database.ErrNotFound)
	}
	var book entities.Book
	if err := r.db.First(&book, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("book %d: %w", id, database.ErrNotFound)
		}
		return nil, fmt.Errorf("get book %d: %w", id, database.Classify(err))
	}
	return &book, nil
}

// ListByTitle returns the books whose title equals title exactly.
func (r *Repository) ListByTitle(title string) ([]entities.Book, error) {
	books := []entities.Book{}
	if err := r.db.Where("titulo = ?", title).Order("id ASC").Find(&books).Error; err != nil {
		return nil, fmt.Errorf("list books by title: %w", database.Classify(err))
	}
	return books, nil
}

// Create inserts book and fills in its generated ID. A duplicate ISBN is
// reported as *database.ConflictError.
func (r *Repository) Create(book *entities.Book) error {
	book.ID = 0
	if err := r.db.Create(book).Error; err != nil {
		return fmt.Errorf("create book: %w", database.Classify(err))
	}
	return nil
}

// Delete removes the book with the given ID, or returns database.ErrNotFound
// when there is none.
func (r *Repository) Delete(id uint) error {
	book, err := r.GetByID(id)
	if err != nil {
		return err
	}
	if err := r.db.Delete(book).Error; err != nil {
		return fmt.Errorf("delete book %d: %w", id, database.Classify(err))
	}
	return nil
}
