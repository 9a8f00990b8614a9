package http_movie

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	http_common "github.com/humanbelnik/matchroom/internal/delivery/http/common"
	"github.com/humanbelnik/matchroom/internal/model"
	usecase_movie "github.com/humanbelnik/matchroom/internal/usecase/movie"
)

type Controller struct {
	uc *usecase_movie.Usecase

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(uc *usecase_movie.Usecase, opts ...ControllerOption) *Controller {
	c := &Controller{
		uc:     uc,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	movies := router.Group("/movies")
	movies.GET("", c.catalog)
	movies.GET("/:position", c.get)
	movies.POST("", c.upload)
}

type MovieMetaDTO struct {
	ID         string   `json:"id"`
	Position   int      `json:"position"`
	PosterLink string   `json:"poster_link"`
	Title      string   `json:"title"`
	Genres     []string `json:"genres"`
	Year       int      `json:"year"`
	Overview   string   `json:"overview"`
}

func newMovieMetaDTO(mm model.MovieMeta) MovieMetaDTO {
	return MovieMetaDTO{
		ID:         mm.ID.String(),
		Position:   mm.Position,
		PosterLink: mm.PosterLink,
		Title:      mm.Title,
		Genres:     mm.Genres,
		Year:       mm.Year,
		Overview:   mm.Overview,
	}
}

// @Summary Get catalog
// @Description The shared ordered candidate catalog all rooms swipe on
// @Tags movies
// @Produce json
// @Success 200 {array} MovieMetaDTO "Catalog in swipe order"
// @Failure 500 {object} http_common.ErrorResponse "Internal server error"
// @Router /movies [get]
func (c *Controller) catalog(ctx *gin.Context) {
	movies, err := c.uc.Catalog(ctx.Request.Context())
	if err != nil {
		c.logger.Error("failed to load catalog", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}

	dtos := make([]MovieMetaDTO, len(movies))
	for i, mm := range movies {
		dtos[i] = newMovieMetaDTO(*mm)
	}

	ctx.JSON(http.StatusOK, dtos)
}

// @Summary Get movie by position
// @Description One candidate from the shared catalog
// @Tags movies
// @Produce json
// @Param position path int true "Catalog position"
// @Success 200 {object} MovieMetaDTO "Movie meta"
// @Failure 400 {object} http_common.ErrorResponse "Malformed position"
// @Failure 404 {object} http_common.ErrorResponse "No movie at position"
// @Failure 500 {object} http_common.ErrorResponse "Internal server error"
// @Router /movies/{position} [get]
func (c *Controller) get(ctx *gin.Context) {
	position, err := strconv.Atoi(ctx.Param("position"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid position",
		})
		return
	}

	mm, err := c.uc.GetByPosition(ctx.Request.Context(), position)
	if err != nil {
		c.logger.Error("failed to get movie", slog.String("error", err.Error()))
		switch {
		case errors.Is(err, usecase_movie.ErrInvalidInput):
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
				Message: "invalid position",
			})
		case errors.Is(err, usecase_movie.ErrMovieNotFound):
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
				Message: "not found",
			})
		default:
			ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
				Message: "internal error",
			})
		}
		return
	}

	ctx.JSON(http.StatusOK, newMovieMetaDTO(mm))
}

type UploadMovieRequestDTO struct {
	ID         string   `json:"id"`
	Position   int      `json:"position"`
	PosterLink string   `json:"poster_link"`
	Title      string   `json:"title"`
	Genres     []string `json:"genres"`
	Year       int      `json:"year"`
	Overview   string   `json:"overview"`
}

// @Summary Upload movie
// @Description Seed one catalog entry at a fixed position
// @Tags movies
// @Accept json
// @Param request body UploadMovieRequestDTO true "Movie meta"
// @Success 201 "Movie stored"
// @Failure 400 {object} http_common.ErrorResponse "Invalid movie meta"
// @Failure 409 {object} http_common.ErrorResponse "Position already taken"
// @Failure 500 {object} http_common.ErrorResponse "Internal server error"
// @Router /movies [post]
func (c *Controller) upload(ctx *gin.Context) {
	var req UploadMovieRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid request format",
		})
		return
	}

	id := uuid.New()
	if req.ID != "" {
		parsed, err := uuid.Parse(req.ID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
				Message: "invalid movie id",
			})
			return
		}
		id = parsed
	}

	err := c.uc.Upload(ctx.Request.Context(), model.MovieMeta{
		ID:         id,
		Position:   req.Position,
		PosterLink: req.PosterLink,
		Title:      req.Title,
		Genres:     req.Genres,
		Year:       req.Year,
		Overview:   req.Overview,
	})
	if err != nil {
		c.logger.Error("failed to upload movie", slog.String("error", err.Error()))
		switch {
		case errors.Is(err, usecase_movie.ErrInvalidInput):
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
				Message: "invalid movie meta",
			})
		case errors.Is(err, usecase_movie.ErrPositionTaken):
			ctx.JSON(http.StatusConflict, http_common.ErrorResponse{
				Message: "position already taken",
			})
		default:
			ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
				Message: "internal error",
			})
		}
		return
	}

	ctx.Status(http.StatusCreated)
}
