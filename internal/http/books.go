package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mrlokans/multimedia/internal/database"
	"github.com/mrlokans/multimedia/internal/entities"
)

// BookInput is the accepted body of POST /books/addLibro. It has no id field;
// an id sent by the client is ignored and the store assigns one. titulo and
// autor must be present but may be empty strings.
type BookInput struct {
	Title           *string        `json:"titulo" binding:"required"`
	ISBN            *string        `json:"isbn"`
	Author          *string        `json:"autor" binding:"required"`
	PagesRead       int            `json:"paginas_leidas"`
	PagesTotal      int            `json:"paginas_totales"`
	PublicationDate *entities.Date `json:"fecha_publicacion"`
}

func (in BookInput) toEntity() *entities.Book {
	return &entities.Book{
		Title:           *in.Title,
		ISBN:            in.ISBN,
		Author:          *in.Author,
		PagesRead:       in.PagesRead,
		PagesTotal:      in.PagesTotal,
		PublicationDate: in.PublicationDate,
	}
}

type BooksController struct {
	newStore func(db *gorm.DB) BookStore
}

func NewBooksController(newStore func(db *gorm.DB) BookStore) *BooksController {
	return &BooksController{newStore: newStore}
}

// ListAll handles GET /books/listAll.
func (controller *BooksController) ListAll(c *gin.Context) {
	store, ok := storeFor(c, controller.newStore)
	if !ok {
		return
	}
	books, err := store.ListAll()
	if err != nil {
		respondStoreError(c, err, "book", "list books")
		return
	}
	c.JSON(http.StatusOK, books)
}

// GetByID handles GET /books/:id. An absent book is reported as 200 with a
// JSON null body.
func (controller *BooksController) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	store, ok := storeFor(c, controller.newStore)
	if !ok {
		return
	}
	book, err := store.GetByID(id)
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusOK, nil)
		return
	}
	if err != nil {
		respondStoreError(c, err, "book", "get book")
		return
	}
	c.JSON(http.StatusOK, book)
}

// ListByTitle handles GET /books/libro_por_titulo/:titulo.
func (controller *BooksController) ListByTitle(c *gin.Context) {
	store, ok := storeFor(c, controller.newStore)
	if !ok {
		return
	}
	books, err := store.ListByTitle(c.Param("titulo"))
	if err != nil {
		respondStoreError(c, err, "book", "list books by title")
		return
	}
	c.JSON(http.StatusOK, books)
}

// Add handles POST /books/addLibro.
func (controller *BooksController) Add(c *gin.Context) {
	var input BookInput
	if !bindJSON(c, &input, "book") {
		return
	}
	store, ok := storeFor(c, controller.newStore)
	if !ok {
		return
	}
	if err := store.Create(input.toEntity()); err != nil {
		respondStoreError(c, err, "book", "add book")
		return
	}
	respondMessage(c, "Libro agregado correctamente")
}

// Delete handles DELETE /books/deleteBook/:id.
func (controller *BooksController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	store, ok := storeFor(c, controller.newStore)
	if !ok {
		return
	}
	if err := store.Delete(id); err != nil {
		respondStoreError(c, err, "book", "delete book")
		return
	}
	respondMessage(c, "Libro eliminado correctamente")
}
