package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNormalizePin(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Pin("AB12CD"), NormalizePin(" ab12cd "))
	assert.Equal(t, Pin("AB12CD"), NormalizePin("AB12CD"))
	assert.Equal(t, EmptyPin, NormalizePin("   "))
}

func TestDecisionVector(t *testing.T) {
	t.Parallel()

	var v DecisionVector

	assert.Nil(t, v.At(0))
	assert.Nil(t, v.At(-1))
	assert.Equal(t, -1, v.HighestSet())
	assert.Equal(t, 0, v.NextUnswiped())
	assert.Zero(t, v.SwipeCount())

	v = v.Set(2, true)
	assert.Len(t, v, 3)
	assert.Nil(t, v.At(0))
	assert.Nil(t, v.At(1))
	if d := v.At(2); assert.NotNil(t, d) {
		assert.True(t, *d)
	}
	assert.Equal(t, 2, v.HighestSet())
	assert.Equal(t, 0, v.NextUnswiped())
	assert.Equal(t, 1, v.SwipeCount())

	v = v.Set(0, false)
	assert.Equal(t, 1, v.NextUnswiped())
	assert.Equal(t, 2, v.SwipeCount())
	assert.Equal(t, 2, v.HighestSet())

	v = v.Set(1, true)
	assert.Equal(t, 3, v.NextUnswiped())
	assert.Equal(t, 3, v.SwipeCount())
}

func TestRoomHelpers(t *testing.T) {
	t.Parallel()

	alice := Member{ID: uuid.New(), Name: "Alice", JoinedAt: time.Now()}
	bob := Member{ID: uuid.New(), Name: "Bob", JoinedAt: time.Now()}

	room := Room{Pin: "AAAAAA", Matches: []int{}}
	room.AddMember(alice)
	room.AddMember(bob)

	assert.True(t, room.HasMember(alice.ID))
	assert.False(t, room.HasMember(uuid.New()))

	room.Decisions[alice.ID] = room.Decisions[alice.ID].Set(0, true)
	assert.True(t, room.LikedByOther(0, bob.ID))
	assert.False(t, room.LikedByOther(0, alice.ID))

	room.AddMatch(0)
	room.AddMatch(0)
	assert.Equal(t, []int{0}, room.Matches)
	assert.True(t, room.IsMatched(0))
	assert.False(t, room.IsMatched(1))

	room.AdvanceFrontier(alice.ID)
	assert.Equal(t, 1, room.Frontier)

	// Frontier never regresses.
	room.Decisions[bob.ID] = room.Decisions[bob.ID].Set(4, false)
	room.AdvanceFrontier(bob.ID)
	assert.Equal(t, 5, room.Frontier)
	room.AdvanceFrontier(alice.ID)
	assert.Equal(t, 5, room.Frontier)
}

func TestRoomClone(t *testing.T) {
	t.Parallel()

	alice := Member{ID: uuid.New(), Name: "Alice", JoinedAt: time.Now()}
	room := Room{Pin: "AAAAAA", Matches: []int{}, CreatedAt: time.Now()}
	room.AddMember(alice)
	room.Decisions[alice.ID] = room.Decisions[alice.ID].Set(0, true)

	clone := room.Clone()
	clone.Members[0].Name = "Mallory"
	clone.Decisions[alice.ID] = clone.Decisions[alice.ID].Set(1, false)
	clone.AddMatch(0)
	clone.Frontier = 9

	assert.Equal(t, "Alice", room.Members[0].Name)
	assert.Len(t, room.Decisions[alice.ID], 1)
	assert.Empty(t, room.Matches)
	assert.Zero(t, room.Frontier)
}
