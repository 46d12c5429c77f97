package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mrlokans/multimedia/internal/database"
	"github.com/mrlokans/multimedia/internal/entities"
)

// MovieInput is the accepted body of POST /movies/addMovie.
type MovieInput struct {
	Title *string `json:"titulo" binding:"required"`
}

type MoviesController struct {
	newStore func(db *gorm.DB) MovieStore
}

func NewMoviesController(newStore func(db *gorm.DB) MovieStore) *MoviesController {
	return &MoviesController{newStore: newStore}
}

func (controller *MoviesController) ListAll(c *gin.Context) {
	store, ok := storeFor(c, controller.newStore)
	if !ok {
		return
	}
	movies, err := store.ListAll()
	if err != nil {
		respondStoreError(c, err, "movie", "list movies")
		return
	}
	c.JSON(http.StatusOK, movies)
}

func (controller *MoviesController) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	store, ok := storeFor(c, controller.newStore)
	if !ok {
		return
	}
	movie, err := store.GetByID(id)
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusOK, nil)
		return
	}
	if err != nil {
		respondStoreError(c, err, "movie", "get movie")
		return
	}
	c.JSON(http.StatusOK, movie)
}

func (controller *MoviesController) ListByTitle(c *gin.Context) {
	store, ok := storeFor(c, controller.newStore)
	if !ok {
		return
	}
	movies, err := store.ListByTitle(c.Param("titulo"))
	if err != nil {
		respondStoreError(c, err, "movie", "list movies by title")
		return
	}
	c.JSON(http.StatusOK, movies)
}

func (controller *MoviesController) Add(c *gin.Context) {
	var input MovieInput
	if !bindJSON(c, &input, "movie") {
		return
	}
	store, ok := storeFor(c, controller.newStore)
	if !ok {
		return
	}
	if err := store.Create(&entities.Movie{Title: *input.Title}); err != nil {
		respondStoreError(c, err, "movie", "add movie")
		return
	}
	respondMessage(c, "Pelicula agregada correctamente")
}

func (controller *MoviesController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	store, ok := storeFor(c, controller.newStore)
	if !ok {
		return
	}
	if err := store.Delete(id); err != nil {
		respondStoreError(c, err, "movie", "delete movie")
		return
	}
	respondMessage(c, "Pelicula eliminada correctamente")
}
