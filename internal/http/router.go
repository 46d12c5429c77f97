package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mrlokans/multimedia/internal/database/books"
	"github.com/mrlokans/multimedia/internal/database/movies"
	"github.com/mrlokans/multimedia/internal/database/series"
)

const welcomeMessage = "Bienvenido a Multimedia Manager API"

// NewRouter creates and configures the HTTP router with all endpoints.
//
// Recovery is installed ahead of the per-group SessionMiddleware, so a
// panicking handler still unwinds through the session release before the
// 500 is written.
func NewRouter(cfg RouterConfig) *gin.Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	router := gin.New()
	router.Use(RequestIDMiddleware())
	router.Use(AccessLogMiddleware(logger))
	router.Use(gin.Recovery())
	router.Use(CORSMiddleware(cfg.AllowedOrigins))

	router.NoRoute(func(c *gin.Context) {
		respondNotFound(c, "route")
	})

	var pinger Pinger
	if cfg.Database != nil {
		pinger = cfg.Database
	}
	health := NewHealthController(pinger, cfg.Version)

	booksController := NewBooksController(func(db *gorm.DB) BookStore {
		return books.NewRepository(db)
	})
	moviesController := NewMoviesController(func(db *gorm.DB) MovieStore {
		return movies.NewRepository(db)
	})
	seriesController := NewSeriesController(func(db *gorm.DB) SeriesStore {
		return series.NewRepository(db)
	})

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, MessageResponse{Message: welcomeMessage})
	})
	router.GET("/health", health.Status)

	sessions := SessionMiddleware(cfg.Database)

	booksGroup := router.Group("/books", sessions)
	booksGroup.GET("/listAll", booksController.ListAll)
	booksGroup.GET("/:id", booksController.GetByID)
	booksGroup.GET("/libro_por_titulo/:titulo", booksController.ListByTitle)
	booksGroup.POST("/addLibro", booksController.Add)
	booksGroup.DELETE("/deleteBook/:id", booksController.Delete)

	moviesGroup := router.Group("/movies", sessions)
	moviesGroup.GET("/listAll", moviesController.ListAll)
	moviesGroup.GET("/:id", moviesController.GetByID)
	moviesGroup.GET("/pelicula_por_titulo/:titulo", moviesController.ListByTitle)
	moviesGroup.POST("/addMovie", moviesController.Add)
	moviesGroup.DELETE("/deleteMovie/:id", moviesController.Delete)

	seriesGroup := router.Group("/series", sessions)
	seriesGroup.GET("/listAll", seriesController.ListAll)
	seriesGroup.GET("/:id", seriesController.GetByID)
	seriesGroup.GET("/serie_por_titulo/:titulo", seriesController.ListByTitle)
	seriesGroup.POST("/addSerie", seriesController.Add)
	seriesGroup.DELETE("/deleteSerie/:id", seriesController.Delete)

	return router
}
