package usecase_room

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/humanbelnik/matchroom/internal/model"
	storage_room "github.com/humanbelnik/matchroom/internal/storage/room"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrRoomNotFound     = errors.New("room not found")
	ErrRoomsUnavailable = errors.New("no available rooms")
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrInternal         = errors.New("internal error")
)

type RoomStore interface {
	Create(ctx context.Context, room model.Room) error
	Load(ctx context.Context, pin model.Pin) (model.Room, error)
	Update(ctx context.Context, pin model.Pin, mutate func(*model.Room) error) (model.Room, error)
}

type Usecase struct {
	rooms RoomStore
}

func New(rooms RoomStore) *Usecase {
	return &Usecase{rooms: rooms}
}

// Create opens a fresh room with the caller as its first member.
func (u *Usecase) Create(ctx context.Context, memberName string) (model.Room, model.Member, error) {
	name, err := resolveMemberName(memberName)
	if err != nil {
		return model.Room{}, model.Member{}, err
	}

	member := newMember(name)

	room, err := u.createWithFreshPin(ctx, member)
	if err != nil {
		return model.Room{}, model.Member{}, err
	}
	return room, member, nil
}

// Assuming that pins can conflict.
// Retrying...
func (u *Usecase) createWithFreshPin(ctx context.Context, creator model.Member) (model.Room, error) {
	var retries = 3
	for retries > 0 {
		room := model.Room{
			Pin:       storage_room.BuildPin(),
			Matches:   []int{},
			CreatedAt: time.Now(),
		}
		room.AddMember(creator)

		switch err := u.rooms.Create(ctx, room); {
		case err == nil:
			return room, nil
		case errors.Is(err, storage_room.ErrPinTaken):
			retries--
		case errors.Is(err, storage_room.ErrUnavailable):
			return model.Room{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
		default:
			return model.Room{}, errors.Join(ErrInternal, err)
		}
	}
	return model.Room{}, ErrRoomsUnavailable
}

// Join admits a new member. Concurrent joins to one room serialize on the
// store's per-pin update, so nobody's admission is lost.
func (u *Usecase) Join(ctx context.Context, rawPin string, memberName string) (model.Room, model.Member, error) {
	name, err := resolveMemberName(memberName)
	if err != nil {
		return model.Room{}, model.Member{}, err
	}

	pin := model.NormalizePin(rawPin)
	member := newMember(name)

	room, err := u.rooms.Update(ctx, pin, func(r *model.Room) error {
		r.AddMember(member)
		return nil
	})
	if err != nil {
		return model.Room{}, model.Member{}, mapStoreErr(err)
	}

	return room, member, nil
}

// Get returns the current snapshot for polling clients. Read-only.
func (u *Usecase) Get(ctx context.Context, rawPin string) (model.Room, error) {
	room, err := u.rooms.Load(ctx, model.NormalizePin(rawPin))
	if err != nil {
		return model.Room{}, mapStoreErr(err)
	}
	return room, nil
}

func newMember(name string) model.Member {
	return model.Member{
		ID:       uuid.New(),
		Name:     name,
		JoinedAt: time.Now(),
	}
}

func resolveMemberName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", fmt.Errorf("%w: member name cannot be empty", ErrInvalidInput)
	}
	return name, nil
}

func mapStoreErr(err error) error {
	switch {
	case errors.Is(err, storage_room.ErrNotFound):
		return ErrRoomNotFound
	case errors.Is(err, storage_room.ErrUnavailable):
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	default:
		return errors.Join(ErrInternal, err)
	}
}
