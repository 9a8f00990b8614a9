package usecase_movie

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/humanbelnik/matchroom/internal/model"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrFailedToStoreMeta = errors.New("failed to store meta")
	ErrFailedToLoadMeta  = errors.New("failed to load meta")
	ErrMovieNotFound     = errors.New("movie not found")
	ErrPositionTaken     = errors.New("catalog position already taken")
)

type MetaRepository interface {
	Store(ctx context.Context, mm model.MovieMeta) error
	Load(ctx context.Context) ([]*model.MovieMeta, error)
	LoadByPosition(ctx context.Context, position int) (model.MovieMeta, error)
}

type Usecase struct {
	metaRepository MetaRepository
}

func New(meta MetaRepository) *Usecase {
	return &Usecase{
		metaRepository: meta,
	}
}

// Catalog returns every candidate in swipe order. All rooms share this
// single ordered sequence.
func (u *Usecase) Catalog(ctx context.Context) ([]*model.MovieMeta, error) {
	mm, err := u.metaRepository.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadMeta, err)
	}
	return mm, nil
}

func (u *Usecase) GetByPosition(ctx context.Context, position int) (model.MovieMeta, error) {
	if position < 0 {
		return model.MovieMeta{}, fmt.Errorf("%w: position must be non-negative", ErrInvalidInput)
	}

	meta, err := u.metaRepository.LoadByPosition(ctx, position)
	if err != nil {
		if errors.Is(err, ErrMovieNotFound) {
			return model.MovieMeta{}, ErrMovieNotFound
		}
		return model.MovieMeta{}, fmt.Errorf("%w: %w", ErrFailedToLoadMeta, err)
	}

	return meta, nil
}

func (u *Usecase) Upload(ctx context.Context, mm model.MovieMeta) error {
	if mm.ID == uuid.Nil {
		return fmt.Errorf("%w: movie ID cannot be nil", ErrInvalidInput)
	}

	if mm.Title == model.EmptyTitle {
		return fmt.Errorf("%w: movie title cannot be empty", ErrInvalidInput)
	}

	if mm.Position < 0 {
		return fmt.Errorf("%w: position must be non-negative", ErrInvalidInput)
	}

	if err := u.metaRepository.Store(ctx, mm); err != nil {
		if errors.Is(err, ErrPositionTaken) {
			return ErrPositionTaken
		}
		return fmt.Errorf("%w: %w", ErrFailedToStoreMeta, err)
	}

	return nil
}
