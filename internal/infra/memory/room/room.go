package infra_memory_room

import (
	"context"
	"sync"

	"github.com/humanbelnik/matchroom/internal/model"
	storage_room "github.com/humanbelnik/matchroom/internal/storage/room"
)

// Driver keeps rooms in process memory. Used when no Redis host is
// configured; rooms do not survive a restart.
type Driver struct {
	mu    sync.RWMutex
	rooms map[model.Pin]*entry
}

type entry struct {
	mu   sync.Mutex
	room model.Room
}

func New() *Driver {
	return &Driver{
		rooms: make(map[model.Pin]*entry),
	}
}

func (d *Driver) Create(ctx context.Context, room model.Room) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.rooms[room.Pin]; ok {
		return storage_room.ErrPinTaken
	}
	d.rooms[room.Pin] = &entry{room: room.Clone()}
	return nil
}

func (d *Driver) Load(ctx context.Context, pin model.Pin) (model.Room, error) {
	d.mu.RLock()
	e, ok := d.rooms[pin]
	d.mu.RUnlock()
	if !ok {
		return model.Room{}, storage_room.ErrNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.room.Clone(), nil
}

// The per-entry mutex is the whole serialization story here: mutate runs
// on a private copy, so a failed mutate leaves the stored room untouched.
func (d *Driver) Update(ctx context.Context, pin model.Pin, mutate func(*model.Room) error) (model.Room, error) {
	d.mu.RLock()
	e, ok := d.rooms[pin]
	d.mu.RUnlock()
	if !ok {
		return model.Room{}, storage_room.ErrNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	next := e.room.Clone()
	if err := mutate(&next); err != nil {
		return model.Room{}, err
	}
	e.room = next
	return next.Clone(), nil
}
