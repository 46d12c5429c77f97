package entities

import (
	"encoding/json"
	"math"
)

// Book is a catalogued book together with the reader's progress through it.
type Book struct {
	ID              uint    `gorm:"primaryKey" json:"id"`
	Title           string  `gorm:"column:titulo;not null;index" json:"titulo"`
	ISBN            *string `gorm:"column:isbn;uniqueIndex" json:"isbn"`
	Author          string  `gorm:"column:autor;not null;index" json:"autor"`
	PagesRead       int     `gorm:"column:paginas_leidas;not null;default:0" json:"paginas_leidas"`
	PagesTotal      int     `gorm:"column:paginas_totales;not null;default:0" json:"paginas_totales"`
	PublicationDate *Date   `gorm:"column:fecha_publicacion" json:"fecha_publicacion"`
}

func (Book) TableName() string {
	return "libro"
}

// ReadingPercentage returns PagesRead as a percentage of PagesTotal rounded
// to two decimals. Books without a positive page total report 0.
// The value is not clamped: reading past PagesTotal yields more than 100.
func (b Book) ReadingPercentage() float64 {
	if b.PagesTotal <= 0 {
		return 0
	}
	pct := float64(b.PagesRead) * 100 / float64(b.PagesTotal)
	return math.Round(pct*100) / 100
}

// MarshalJSON adds the derived porcentaje_leido field to the stored columns.
func (b Book) MarshalJSON() ([]byte, error) {
	type book Book
	return json.Marshal(struct {
		book
		ReadingPercentage float64 `json:"porcentaje_leido"`
	}{
		book:              book(b),
		ReadingPercentage: b.ReadingPercentage(),
	})
}

type Movie struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Title string `gorm:"column:titulo;not null;index" json:"titulo"`
}

func (Movie) TableName() string {
	return "pelicula"
}

type Series struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Title    string  `gorm:"column:titulo;not null;index" json:"titulo"`
	Synopsis *string `gorm:"column:sinopsis;type:text" json:"sinopsis"`
}

func (Series) TableName() string {
	return "serie"
}

// All lists every persisted entity, in the order their tables are created.
func All() []any {
	return []any{&Book{}, &Movie{}, &Series{}}
}
