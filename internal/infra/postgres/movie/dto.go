package infra_postgres_movie

import (
	"github.com/google/uuid"
	"github.com/humanbelnik/matchroom/internal/model"
	"github.com/lib/pq"
)

type MovieDB struct {
	ID         uuid.UUID      `db:"id"`
	Position   int            `db:"position"`
	PosterLink string         `db:"poster_link"`
	Title      string         `db:"title"`
	Genres     pq.StringArray `db:"genres"`
	Year       int            `db:"year"`
	Overview   string         `db:"overview"`
}

func (m *MovieDB) ToDomain() model.MovieMeta {
	return model.MovieMeta{
		ID:         m.ID,
		Position:   m.Position,
		PosterLink: m.PosterLink,
		Title:      m.Title,
		Genres:     []string(m.Genres),
		Year:       m.Year,
		Overview:   m.Overview,
	}
}

func FromDomain(mm model.MovieMeta) MovieDB {
	return MovieDB{
		ID:         mm.ID,
		Position:   mm.Position,
		PosterLink: mm.PosterLink,
		Title:      mm.Title,
		Genres:     pq.StringArray(mm.Genres),
		Year:       mm.Year,
		Overview:   mm.Overview,
	}
}
