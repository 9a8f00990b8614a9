package http_room

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	http_common "github.com/humanbelnik/matchroom/internal/delivery/http/common"
	usecase_room "github.com/humanbelnik/matchroom/internal/usecase/room"
)

type Controller struct {
	uc *usecase_room.Usecase

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(uc *usecase_room.Usecase, opts ...ControllerOption) *Controller {
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
	rooms := router.Group("/rooms")
	rooms.POST("", c.create)

	room := router.Group("rooms/:pin")
	room.POST("/join", c.join)
	room.GET("", c.get)
}

type MemberNameRequestDTO struct {
	MemberName string `json:"member_name"`
}

type RoomWithMemberResponseDTO struct {
	Room   http_common.RoomDTO   `json:"room"`
	Member http_common.MemberDTO `json:"member"`
}

type RoomResponseDTO struct {
	Room http_common.RoomDTO `json:"room"`
}

// @Summary Create room
// @Description Create a new room with the caller as its first member
// @Tags rooms
// @Accept json
// @Produce json
// @Param request body MemberNameRequestDTO true "Creator name"
// @Success 201 {object} RoomWithMemberResponseDTO "Room created"
// @Failure 400 {object} http_common.ErrorResponse "Empty member name"
// @Failure 503 {object} http_common.ErrorResponse "Store unavailable"
// @Router /rooms [post]
func (c *Controller) create(ctx *gin.Context) {
	var req MemberNameRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid request format",
		})
		return
	}

	room, member, err := c.uc.Create(ctx.Request.Context(), req.MemberName)
	if err != nil {
		c.logger.Error("failed to create room", slog.String("error", err.Error()))
		switch {
		case errors.Is(err, usecase_room.ErrInvalidInput):
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
				Message: "member name is required",
			})
		case errors.Is(err, usecase_room.ErrRoomsUnavailable),
			errors.Is(err, usecase_room.ErrStoreUnavailable):
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

	ctx.JSON(http.StatusCreated, RoomWithMemberResponseDTO{
		Room:   http_common.NewRoomDTO(room),
		Member: http_common.NewMemberDTO(member),
	})
}

// @Summary Join room
// @Description Join an existing room by pin
// @Tags rooms
// @Accept json
// @Produce json
// @Param pin path string true "Room pin"
// @Param request body MemberNameRequestDTO true "Member name"
// @Success 200 {object} RoomWithMemberResponseDTO "Joined"
// @Failure 400 {object} http_common.ErrorResponse "Empty member name"
// @Failure 404 {object} http_common.ErrorResponse "Room not found"
// @Failure 503 {object} http_common.ErrorResponse "Store unavailable"
// @Router /rooms/{pin}/join [post]
func (c *Controller) join(ctx *gin.Context) {
	pin := ctx.Param("pin")

	var req MemberNameRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid request format",
		})
		return
	}

	room, member, err := c.uc.Join(ctx.Request.Context(), pin, req.MemberName)
	if err != nil {
		c.logger.Error("failed to join room", slog.String("error", err.Error()))
		switch {
		case errors.Is(err, usecase_room.ErrInvalidInput):
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
				Message: "member name is required",
			})
		case errors.Is(err, usecase_room.ErrRoomNotFound):
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
				Message: "not found",
			})
		case errors.Is(err, usecase_room.ErrStoreUnavailable):
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

	ctx.JSON(http.StatusOK, RoomWithMemberResponseDTO{
		Room:   http_common.NewRoomDTO(room),
		Member: http_common.NewMemberDTO(member),
	})
}

// @Summary Get room
// @Description Current room snapshot for polling clients
// @Tags rooms
// @Produce json
// @Param pin path string true "Room pin"
// @Success 200 {object} RoomResponseDTO "Room snapshot"
// @Failure 404 {object} http_common.ErrorResponse "Room not found"
// @Failure 503 {object} http_common.ErrorResponse "Store unavailable"
// @Router /rooms/{pin} [get]
func (c *Controller) get(ctx *gin.Context) {
	pin := ctx.Param("pin")

	room, err := c.uc.Get(ctx.Request.Context(), pin)
	if err != nil {
		c.logger.Error("failed to get room", slog.String("error", err.Error()))
		switch {
		case errors.Is(err, usecase_room.ErrRoomNotFound):
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
				Message: "not found",
			})
		case errors.Is(err, usecase_room.ErrStoreUnavailable):
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

	ctx.JSON(http.StatusOK, RoomResponseDTO{
		Room: http_common.NewRoomDTO(room),
	})
}
