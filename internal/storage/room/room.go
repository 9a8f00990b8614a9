package storage_room

import (
	"context"
	"errors"
	"math/rand"
	"strings"

	"github.com/humanbelnik/matchroom/internal/model"
)

var (
	ErrNotFound    = errors.New("room not found")
	ErrPinTaken    = errors.New("pin already taken")
	ErrUnavailable = errors.New("room store unavailable")
)

// Store is the durable pin -> room map. Update is the only way to mutate
// a room: the store reloads the current state, runs mutate on it and
// persists the result atomically with respect to every other Update on
// the same pin. An error returned by mutate aborts without persisting.
// Rooms under different pins never contend with each other.
type Store interface {
	Create(ctx context.Context, room model.Room) error
	Load(ctx context.Context, pin model.Pin) (model.Room, error)
	Update(ctx context.Context, pin model.Pin, mutate func(*model.Room) error) (model.Room, error)
}

const (
	pinLen      = 6
	pinAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// Assuming that pins can conflict. Callers retry on ErrPinTaken.
func BuildPin() model.Pin {
	var builder strings.Builder
	builder.Grow(pinLen)

	for i := 0; i < pinLen; i++ {
		builder.WriteByte(pinAlphabet[rand.Intn(len(pinAlphabet))])
	}

	return model.Pin(builder.String())
}
