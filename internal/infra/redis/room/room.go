package infra_redis_room

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis"
	"github.com/humanbelnik/matchroom/internal/model"
	storage_room "github.com/humanbelnik/matchroom/internal/storage/room"
)

const keyPrefix = "room:"

// Optimistic CAS conflicts are expected under concurrent swipes on one
// room; the budget only has to outlast a burst from a handful of members.
const casAttempts = 16

type Driver struct {
	client *redis.Client
}

func New(client *redis.Client) *Driver {
	return &Driver{client: client}
}

func (d *Driver) key(pin model.Pin) string {
	return keyPrefix + string(pin)
}

func (d *Driver) Create(ctx context.Context, room model.Room) error {
	payload, err := json.Marshal(FromDomain(room))
	if err != nil {
		return fmt.Errorf("%w: %w", storage_room.ErrUnavailable, err)
	}

	ok, err := d.client.SetNX(d.key(room.Pin), payload, 0).Result()
	if err != nil {
		return fmt.Errorf("%w: %w", storage_room.ErrUnavailable, err)
	}
	if !ok {
		return storage_room.ErrPinTaken
	}
	return nil
}

func (d *Driver) Load(ctx context.Context, pin model.Pin) (model.Room, error) {
	raw, err := d.client.Get(d.key(pin)).Result()
	if err == redis.Nil {
		return model.Room{}, storage_room.ErrNotFound
	}
	if err != nil {
		return model.Room{}, fmt.Errorf("%w: %w", storage_room.ErrUnavailable, err)
	}

	return decode([]byte(raw))
}

// WATCH/MULTI compare-and-swap. A concurrent write to the same pin fails
// the transaction and the whole read-mutate-write cycle reruns, so mutate
// always sees the latest persisted room. Errors from mutate pass through
// untouched and nothing is persisted.
func (d *Driver) Update(ctx context.Context, pin model.Pin, mutate func(*model.Room) error) (model.Room, error) {
	key := d.key(pin)

	for i := 0; i < casAttempts; i++ {
		var updated model.Room

		err := d.client.Watch(func(tx *redis.Tx) error {
			raw, err := tx.Get(key).Result()
			if err == redis.Nil {
				return storage_room.ErrNotFound
			}
			if err != nil {
				return fmt.Errorf("%w: %w", storage_room.ErrUnavailable, err)
			}

			room, err := decode([]byte(raw))
			if err != nil {
				return err
			}

			if err := mutate(&room); err != nil {
				return err
			}

			payload, err := json.Marshal(FromDomain(room))
			if err != nil {
				return fmt.Errorf("%w: %w", storage_room.ErrUnavailable, err)
			}

			_, err = tx.Pipelined(func(pipe redis.Pipeliner) error {
				pipe.Set(key, payload, 0)
				return nil
			})
			if err != nil {
				return fmt.Errorf("%w: %w", storage_room.ErrUnavailable, err)
			}

			updated = room
			return nil
		}, key)

		if err == redis.TxFailedErr {
			continue
		}
		if err != nil {
			return model.Room{}, err
		}
		return updated, nil
	}

	return model.Room{}, fmt.Errorf("%w: too much contention on %s", storage_room.ErrUnavailable, pin)
}

func decode(raw []byte) (model.Room, error) {
	var db RoomDB
	if err := json.Unmarshal(raw, &db); err != nil {
		return model.Room{}, fmt.Errorf("%w: %w", storage_room.ErrUnavailable, err)
	}
	room, err := db.ToDomain()
	if err != nil {
		return model.Room{}, fmt.Errorf("%w: %w", storage_room.ErrUnavailable, err)
	}
	return room, nil
}
