package http

import (
	"context"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mrlokans/multimedia/internal/entities"
)

// Each controller receives a factory that binds its store to the request's
// session, so no store outlives the request it serves.

// BookStore is the storage surface of the books controller.
type BookStore interface {
	ListAll() ([]entities.Book, error)
	GetByID(id uint) (*entities.Book, error)
	ListByTitle(title string) ([]entities.Book, error)
	Create(book *entities.Book) error
	Delete(id uint) error
}

// MovieStore is the storage surface of the movies controller.
type MovieStore interface {
	ListAll() ([]entities.Movie, error)
	GetByID(id uint) (*entities.Movie, error)
	ListByTitle(title string) ([]entities.Movie, error)
	Create(movie *entities.Movie) error
	Delete(id uint) error
}

// SeriesStore is the storage surface of the series controller.
type SeriesStore interface {
	ListAll() ([]entities.Series, error)
	GetByID(id uint) (*entities.Series, error)
	ListByTitle(title string) ([]entities.Series, error)
	Create(series *entities.Series) error
	Delete(id uint) error
}

// Pinger reports whether the store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// storeFor builds a store on top of the session injected by SessionMiddleware.
// It responds with 500 and returns false when the route was registered
// without the middleware.
func storeFor[S any](c *gin.Context, newStore func(db *gorm.DB) S) (S, bool) {
	session, ok := SessionFrom(c)
	if !ok {
		var zero S
		respondInternalError(c, errNoSession, "resolve store")
		return zero, false
	}
	return newStore(session.DB), true
}
