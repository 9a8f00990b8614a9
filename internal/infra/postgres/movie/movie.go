package infra_postgres_movie

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/humanbelnik/matchroom/internal/model"
	usecase_movie "github.com/humanbelnik/matchroom/internal/usecase/movie"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const uniqueViolationCode = "23505"

type Repository struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Store(ctx context.Context, mm model.MovieMeta) error {
	movieDB := FromDomain(mm)

	query := `
		INSERT INTO movies (id, position, title, year, genres, overview, poster_link)
		VALUES (:id, :position, :title, :year, :genres, :overview, :poster_link)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			year = EXCLUDED.year,
			genres = EXCLUDED.genres,
			overview = EXCLUDED.overview,
			poster_link = EXCLUDED.poster_link
	`

	_, err := r.db.NamedExecContext(ctx, query, movieDB)
	if err != nil {
		if isUniqueViolation(err) {
			return usecase_movie.ErrPositionTaken
		}
		return fmt.Errorf("failed to store movie: %w", err)
	}

	return nil
}

// Load returns the whole catalog in swipe order. Positions in a room's
// decision vectors index into this sequence.
func (r *Repository) Load(ctx context.Context) ([]*model.MovieMeta, error) {
	query := `
		SELECT id, position, title, year, genres, overview, poster_link
		FROM movies
		ORDER BY position
	`

	var moviesDB []MovieDB
	err := r.db.SelectContext(ctx, &moviesDB, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query movies: %w", err)
	}

	movies := make([]*model.MovieMeta, len(moviesDB))
	for i, movieDB := range moviesDB {
		domainMovie := movieDB.ToDomain()
		movies[i] = &domainMovie
	}

	return movies, nil
}

func (r *Repository) LoadByPosition(ctx context.Context, position int) (model.MovieMeta, error) {
	query := `
		SELECT id, position, title, year, genres, overview, poster_link
		FROM movies
		WHERE position = $1
	`

	var movieDB MovieDB
	err := r.db.GetContext(ctx, &movieDB, query, position)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.MovieMeta{}, usecase_movie.ErrMovieNotFound
		}
		return model.MovieMeta{}, fmt.Errorf("failed to load movie by position: %w", err)
	}

	return movieDB.ToDomain(), nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolationCode
	}
	return false
}
