package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mrlokans/multimedia/internal/database"
	"github.com/mrlokans/multimedia/internal/entities"
)

// SeriesInput is the accepted body of POST /series/addSerie.
type SeriesInput struct {
	Title    *string `json:"titulo" binding:"required"`
	Synopsis *string `json:"sinopsis"`
}

type SeriesController struct {
	newStore func(db *gorm.DB) SeriesStore
}

func NewSeriesController(newStore func(db *gorm.DB) SeriesStore) *SeriesController {
	return &SeriesController{newStore: newStore}
}

func (controller *SeriesController) ListAll(c *gin.Context) {
	store, ok := storeFor(c, controller.newStore)
	if !ok {
		return
	}
	series, err := store.ListAll()
	if err != nil {
		respondStoreError(c, err, "series", "list series")
		return
	}
	c.JSON(http.StatusOK, series)
}

func (controller *SeriesController) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	store, ok := storeFor(c, controller.newStore)
	if !ok {
		return
	}
	series, err := store.GetByID(id)
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusOK, nil)
		return
	}
	if err != nil {
		respondStoreError(c, err, "series", "get series")
		return
	}
	c.JSON(http.StatusOK, series)
}

func (controller *SeriesController) ListByTitle(c *gin.Context) {
	store, ok := storeFor(c, controller.newStore)
	if !ok {
		return
	}
	series, err := store.ListByTitle(c.Param("titulo"))
	if err != nil {
		respondStoreError(c, err, "series", "list series by title")
		return
	}
	c.JSON(http.StatusOK, series)
}

func (controller *SeriesController) Add(c *gin.Context) {
	var input SeriesInput
	if !bindJSON(c, &input, "series") {
		return
	}
	store, ok := storeFor(c, controller.newStore)
	if !ok {
		return
	}
	if err := store.Create(&entities.Series{Title: *input.Title, Synopsis: input.Synopsis}); err != nil {
		respondStoreError(c, err, "series", "add series")
		return
	}
	respondMessage(c, "Serie agregada correctamente")
}

func (controller *SeriesController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	store, ok := storeFor(c, controller.newStore)
	if !ok {
		return
	}
	if err := store.Delete(id); err != nil {
		respondStoreError(c, err, "series", "delete series")
		return
	}
	respondMessage(c, "Serie eliminada correctamente")
}
