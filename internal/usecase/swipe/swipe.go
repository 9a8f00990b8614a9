package usecase_swipe

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/humanbelnik/matchroom/internal/model"
	storage_room "github.com/humanbelnik/matchroom/internal/storage/room"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrRoomNotFound     = errors.New("room not found")
	ErrMemberNotInRoom  = errors.New("member not in room")
	ErrDuplicateSwipe   = errors.New("position already swiped")
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrInternal         = errors.New("internal error")
)

type RoomStore interface {
	Update(ctx context.Context, pin model.Pin, mutate func(*model.Room) error) (model.Room, error)
}

type Usecase struct {
	rooms RoomStore
}

func New(rooms RoomStore) *Usecase {
	return &Usecase{rooms: rooms}
}

// Swipe records one member's like/dislike on a catalog position. Slots
// are write-once; a second swipe on the same position fails and changes
// nothing. The returned flag is true only when this call is the one that
// turned the position into a match.
//
// Matches can only appear at the position just swiped, so detection is a
// single-position check rather than a room-wide rescan. A like in a
// one-member room never matches; late joiners produce retroactive matches
// once they swipe the same position themselves.
func (u *Usecase) Swipe(ctx context.Context, rawPin string, memberID string, position int, liked bool) (model.Room, bool, error) {
	if position < 0 {
		return model.Room{}, false, fmt.Errorf("%w: position must be non-negative", ErrInvalidInput)
	}

	// A string that is not a UUID cannot name an admitted member.
	id, err := uuid.Parse(memberID)
	if err != nil {
		return model.Room{}, false, ErrMemberNotInRoom
	}

	pin := model.NormalizePin(rawPin)

	var matched bool
	room, err := u.rooms.Update(ctx, pin, func(r *model.Room) error {
		matched = false

		if !r.HasMember(id) {
			return ErrMemberNotInRoom
		}

		v := r.Decisions[id]
		if v.At(position) != nil {
			return ErrDuplicateSwipe
		}
		r.Decisions[id] = v.Set(position, liked)

		if liked && !r.IsMatched(position) && r.LikedByOther(position, id) {
			r.AddMatch(position)
			matched = true
		}

		r.AdvanceFrontier(id)
		return nil
	})
	if err != nil {
		return model.Room{}, false, mapStoreErr(err)
	}

	return room, matched, nil
}

func mapStoreErr(err error) error {
	switch {
	case errors.Is(err, ErrMemberNotInRoom), errors.Is(err, ErrDuplicateSwipe):
		return err
	case errors.Is(err, storage_room.ErrNotFound):
		return ErrRoomNotFound
	case errors.Is(err, storage_room.ErrUnavailable):
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	default:
		return errors.Join(ErrInternal, err)
	}
}
