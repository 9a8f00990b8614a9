package infra_redis_room

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/humanbelnik/matchroom/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomRoundTrip(t *testing.T) {
	t.Parallel()

	alice := uuid.New()
	bob := uuid.New()
	liked, disliked := true, false

	room := model.Room{
		Pin: "K7KV2Q",
		Members: []model.Member{
			{ID: alice, Name: "Alice", JoinedAt: time.UnixMilli(1700000000000)},
			{ID: bob, Name: "Bob", JoinedAt: time.UnixMilli(1700000005000)},
		},
		Decisions: map[uuid.UUID]model.DecisionVector{
			alice: {&liked, &disliked, nil, &liked},
			bob:   {&liked},
		},
		Matches:   []int{0},
		Frontier:  4,
		CreatedAt: time.UnixMilli(1700000000000),
	}

	payload, err := json.Marshal(FromDomain(room))
	require.NoError(t, err)

	var db RoomDB
	require.NoError(t, json.Unmarshal(payload, &db))

	got, err := db.ToDomain()
	require.NoError(t, err)
	assert.Equal(t, room, got)
}

func TestRoomRoundTripEmpty(t *testing.T) {
	t.Parallel()

	alice := uuid.New()
	room := model.Room{
		Pin: "AAAAAA",
		Members: []model.Member{
			{ID: alice, Name: "Alice", JoinedAt: time.UnixMilli(1700000000000)},
		},
		Decisions: map[uuid.UUID]model.DecisionVector{alice: {}},
		Matches:   []int{},
		CreatedAt: time.UnixMilli(1700000000000),
	}

	payload, err := json.Marshal(FromDomain(room))
	require.NoError(t, err)

	var db RoomDB
	require.NoError(t, json.Unmarshal(payload, &db))

	got, err := db.ToDomain()
	require.NoError(t, err)
	assert.Equal(t, room.Pin, got.Pin)
	assert.Empty(t, got.Matches)
	assert.Len(t, got.Decisions, 1)
}

func TestToDomainRejectsGarbageIDs(t *testing.T) {
	t.Parallel()

	db := RoomDB{
		Pin:     "AAAAAA",
		Members: []MemberDB{{ID: "not-a-uuid", Name: "Alice"}},
	}

	_, err := db.ToDomain()
	assert.Error(t, err)
}
