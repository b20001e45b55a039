package entity

import (
	"time"
)

const DateLayout = "2006-01-02"

type Movie struct {
	Base
	Title       string    `db:"title"`
	ReleaseDate time.Time `db:"release_date"`
	Genre       string    `db:"genre"`
	Price       float64   `db:"price"`
	Rating      string    `db:"rating"`
}
