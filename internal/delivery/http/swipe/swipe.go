package http_swipe

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	http_common "github.com/humanbelnik/matchroom/internal/delivery/http/common"
	usecase_swipe "github.com/humanbelnik/matchroom/internal/usecase/swipe"
)

type Controller struct {
	uc *usecase_swipe.Usecase

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(uc *usecase_swipe.Usecase, opts ...ControllerOption) *Controller {
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
	swipes := router.Group("rooms/:pin/swipes")
	swipes.POST("", c.swipe)
}

type SwipeRequestDTO struct {
	MemberID string `json:"member_id" binding:"required"`
	Position int    `json:"position"`
	Liked    bool   `json:"liked"`
}

type SwipeResponseDTO struct {
	Room  http_common.RoomDTO `json:"room"`
	Match bool                `json:"match"`
}

// @Summary Swipe a candidate
// @Description Record a member's like/dislike on a catalog position. Write-once per position.
// @Tags swipes
// @Accept json
// @Produce json
// @Param pin path string true "Room pin"
// @Param request body SwipeRequestDTO true "Swipe"
// @Success 200 {object} SwipeResponseDTO "Updated snapshot plus match flag"
// @Failure 400 {object} http_common.ErrorResponse "Invalid input"
// @Failure 403 {object} http_common.ErrorResponse "Member not in room"
// @Failure 404 {object} http_common.ErrorResponse "Room not found"
// @Failure 409 {object} http_common.ErrorResponse "Position already swiped"
// @Failure 503 {object} http_common.ErrorResponse "Store unavailable"
// @Router /rooms/{pin}/swipes [post]
func (c *Controller) swipe(ctx *gin.Context) {
	pin := ctx.Param("pin")

	var req SwipeRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid request format",
		})
		return
	}

	room, match, err := c.uc.Swipe(ctx.Request.Context(), pin, req.MemberID, req.Position, req.Liked)
	if err != nil {
		c.logger.Error("failed to record swipe", slog.String("error", err.Error()))
		switch {
		case errors.Is(err, usecase_swipe.ErrInvalidInput):
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
				Message: "invalid input",
			})
		case errors.Is(err, usecase_swipe.ErrMemberNotInRoom):
			ctx.JSON(http.StatusForbidden, http_common.ErrorResponse{
				Message: "member not in room",
			})
		case errors.Is(err, usecase_swipe.ErrRoomNotFound):
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
				Message: "not found",
			})
		case errors.Is(err, usecase_swipe.ErrDuplicateSwipe):
			ctx.JSON(http.StatusConflict, http_common.ErrorResponse{
				Message: "position already swiped",
			})
		case errors.Is(err, usecase_swipe.ErrStoreUnavailable):
			ctx.JSON(http.StatusServiceUnavailable, http_common.ErrorResponse{
				Message: "unavailable",
			})
		default:
			ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
				Message: "internal error",
			})
		}
		return
	}

	ctx.JSON(http.StatusOK, SwipeResponseDTO{
		Room:  http_common.NewRoomDTO(room),
		Match: match,
	})
}
