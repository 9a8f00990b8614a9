package usecase_swipe

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	infra_memory_room "github.com/humanbelnik/matchroom/internal/infra/memory/room"
	"github.com/humanbelnik/matchroom/internal/model"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
)

type UsecaseSwipeUnitSuite struct {
	suite.Suite
}

type resources struct {
	usecase *Usecase
	store   *infra_memory_room.Driver
	ctx     context.Context
}

func initResources() *resources {
	store := infra_memory_room.New()
	return &resources{
		usecase: New(store),
		store:   store,
		ctx:     context.Background(),
	}
}

const validPin = "ABC123"

// 'Object Mother' pattern example
// aka cooks specific objects.
func (r *resources) seedRoom(t provider.T, memberNames ...string) []model.Member {
	room := model.Room{
		Pin:       validPin,
		Matches:   []int{},
		CreatedAt: time.Now(),
	}
	members := make([]model.Member, 0, len(memberNames))
	for _, name := range memberNames {
		m := model.Member{ID: uuid.New(), Name: name, JoinedAt: time.Now()}
		room.AddMember(m)
		members = append(members, m)
	}
	assert.NoError(t, r.store.Create(r.ctx, room))
	return members
}

// Recompute the match set the expensive way and compare with what the
// engine maintains incrementally.
func assertMatchesConsistent(t provider.T, room model.Room) {
	want := []int{}
	for pos := 0; pos < room.Frontier; pos++ {
		likers := 0
		for _, v := range room.Decisions {
			if d := v.At(pos); d != nil && *d {
				likers++
			}
		}
		if likers >= 2 {
			want = append(want, pos)
		}
	}
	assert.ElementsMatch(t, want, room.Matches)
}

func (s *UsecaseSwipeUnitSuite) TestMatchScenario(t provider.T) {
	t.Parallel()

	r := initResources()
	members := r.seedRoom(t, "Alice", "Bob")
	alice, bob := members[0], members[1]

	// Alice likes position 0. Bob has not swiped, so no match yet.
	room, match, err := r.usecase.Swipe(r.ctx, validPin, alice.ID.String(), 0, true)
	assert.NoError(t, err)
	assert.False(t, match)
	assert.Empty(t, room.Matches)

	// Bob likes position 0. Both liked it: match.
	room, match, err = r.usecase.Swipe(r.ctx, validPin, bob.ID.String(), 0, true)
	assert.NoError(t, err)
	assert.True(t, match)
	assert.Equal(t, []int{0}, room.Matches)

	// Alice dislikes position 1, Bob likes it. No new match.
	_, match, err = r.usecase.Swipe(r.ctx, validPin, alice.ID.String(), 1, false)
	assert.NoError(t, err)
	assert.False(t, match)

	room, match, err = r.usecase.Swipe(r.ctx, validPin, bob.ID.String(), 1, true)
	assert.NoError(t, err)
	assert.False(t, match)
	assert.Equal(t, []int{0}, room.Matches)

	assertMatchesConsistent(t, room)
}

func (s *UsecaseSwipeUnitSuite) TestMatchEdgeCases(t provider.T) {
	t.Parallel()

	t.Run("Should never match in a single-member room", func(t provider.T) {
		r := initResources()
		members := r.seedRoom(t, "Alice")

		room, match, err := r.usecase.Swipe(r.ctx, validPin, members[0].ID.String(), 0, true)

		assert.NoError(t, err)
		assert.False(t, match)
		assert.Empty(t, room.Matches)
	})

	t.Run("Should not report a match twice for the same position", func(t provider.T) {
		r := initResources()
		members := r.seedRoom(t, "Alice", "Bob", "Carol")

		_, _, err := r.usecase.Swipe(r.ctx, validPin, members[0].ID.String(), 0, true)
		assert.NoError(t, err)
		_, match, err := r.usecase.Swipe(r.ctx, validPin, members[1].ID.String(), 0, true)
		assert.NoError(t, err)
		assert.True(t, match)

		// A third like keeps the match set unchanged and is not a new match.
		room, match, err := r.usecase.Swipe(r.ctx, validPin, members[2].ID.String(), 0, true)
		assert.NoError(t, err)
		assert.False(t, match)
		assert.Equal(t, []int{0}, room.Matches)
	})

	t.Run("Should detect retroactive match when a late joiner catches up", func(t provider.T) {
		r := initResources()
		members := r.seedRoom(t, "Alice")
		alice := members[0]

		_, match, err := r.usecase.Swipe(r.ctx, validPin, alice.ID.String(), 2, true)
		assert.NoError(t, err)
		assert.False(t, match)

		// Bob joins later and starts from position 0.
		bob := model.Member{ID: uuid.New(), Name: "Bob", JoinedAt: time.Now()}
		_, err = r.store.Update(r.ctx, validPin, func(room *model.Room) error {
			room.AddMember(bob)
			return nil
		})
		assert.NoError(t, err)

		_, match, err = r.usecase.Swipe(r.ctx, validPin, bob.ID.String(), 0, true)
		assert.NoError(t, err)
		assert.False(t, match)

		room, match, err := r.usecase.Swipe(r.ctx, validPin, bob.ID.String(), 2, true)
		assert.NoError(t, err)
		assert.True(t, match)
		assert.Equal(t, []int{2}, room.Matches)
	})
}

func (s *UsecaseSwipeUnitSuite) TestValidation(t provider.T) {
	t.Parallel()

	t.Run("Should reject duplicate swipe and keep the decision", func(t provider.T) {
		r := initResources()
		members := r.seedRoom(t, "Alice", "Bob")
		alice := members[0]

		_, _, err := r.usecase.Swipe(r.ctx, validPin, alice.ID.String(), 0, true)
		assert.NoError(t, err)

		_, _, err = r.usecase.Swipe(r.ctx, validPin, alice.ID.String(), 0, false)
		assert.ErrorIs(t, err, ErrDuplicateSwipe)

		room, err := r.store.Load(r.ctx, validPin)
		assert.NoError(t, err)
		d := room.Decisions[alice.ID].At(0)
		if assert.NotNil(t, d) {
			assert.True(t, *d)
		}
	})

	t.Run("Should fail on unknown pin", func(t provider.T) {
		r := initResources()

		_, _, err := r.usecase.Swipe(r.ctx, "NOSUCH", uuid.NewString(), 0, true)

		assert.ErrorIs(t, err, ErrRoomNotFound)
	})

	t.Run("Should fail on member never admitted", func(t provider.T) {
		r := initResources()
		r.seedRoom(t, "Alice")

		_, _, err := r.usecase.Swipe(r.ctx, validPin, uuid.NewString(), 0, true)

		assert.ErrorIs(t, err, ErrMemberNotInRoom)
	})

	t.Run("Should fail on malformed member id", func(t provider.T) {
		r := initResources()
		r.seedRoom(t, "Alice")

		_, _, err := r.usecase.Swipe(r.ctx, validPin, "not-a-uuid", 0, true)

		assert.ErrorIs(t, err, ErrMemberNotInRoom)
	})

	t.Run("Should fail on negative position", func(t provider.T) {
		r := initResources()
		members := r.seedRoom(t, "Alice")

		_, _, err := r.usecase.Swipe(r.ctx, validPin, members[0].ID.String(), -1, true)

		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func (s *UsecaseSwipeUnitSuite) TestFrontier(t provider.T) {
	t.Parallel()

	r := initResources()
	members := r.seedRoom(t, "Alice", "Bob")
	alice, bob := members[0], members[1]

	room, _, err := r.usecase.Swipe(r.ctx, validPin, alice.ID.String(), 2, true)
	assert.NoError(t, err)
	assert.Equal(t, 3, room.Frontier)

	// Filling an earlier position never moves the frontier back.
	room, _, err = r.usecase.Swipe(r.ctx, validPin, alice.ID.String(), 0, false)
	assert.NoError(t, err)
	assert.Equal(t, 3, room.Frontier)

	// A slower member does not drag it down either.
	room, _, err = r.usecase.Swipe(r.ctx, validPin, bob.ID.String(), 0, true)
	assert.NoError(t, err)
	assert.Equal(t, 3, room.Frontier)

	room, _, err = r.usecase.Swipe(r.ctx, validPin, bob.ID.String(), 5, true)
	assert.NoError(t, err)
	assert.Equal(t, 6, room.Frontier)
}

func (s *UsecaseSwipeUnitSuite) TestConcurrentSwipes(t provider.T) {
	t.Parallel()

	t.Run("Should lose no updates across distinct slots", func(t provider.T) {
		const positions = 16

		r := initResources()
		members := r.seedRoom(t, "Alice", "Bob")

		var wg sync.WaitGroup
		errs := make(chan error, len(members)*positions)
		for _, m := range members {
			for pos := 0; pos < positions; pos++ {
				wg.Add(1)
				go func(id string, pos int) {
					defer wg.Done()
					_, _, err := r.usecase.Swipe(r.ctx, validPin, id, pos, true)
					errs <- err
				}(m.ID.String(), pos)
			}
		}
		wg.Wait()
		close(errs)

		for err := range errs {
			assert.NoError(t, err)
		}

		room, err := r.store.Load(r.ctx, validPin)
		assert.NoError(t, err)
		for _, m := range members {
			assert.Equal(t, positions, room.Decisions[m.ID].SwipeCount())
		}
		assert.Len(t, room.Matches, positions)
		assert.Equal(t, positions, room.Frontier)
		assertMatchesConsistent(t, room)
	})

	t.Run("Should let exactly one of two racing swipes on the same slot win", func(t provider.T) {
		r := initResources()
		members := r.seedRoom(t, "Alice", "Bob")
		alice := members[0]

		var wg sync.WaitGroup
		errs := make(chan error, 2)
		for i := 0; i < 2; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, _, err := r.usecase.Swipe(r.ctx, validPin, alice.ID.String(), 0, true)
				errs <- err
			}()
		}
		wg.Wait()
		close(errs)

		var won, lost int
		for err := range errs {
			if err == nil {
				won++
			} else {
				assert.ErrorIs(t, err, ErrDuplicateSwipe)
				lost++
			}
		}
		assert.Equal(t, 1, won)
		assert.Equal(t, 1, lost)
	})
}

func TestUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseSwipeUnitSuite))
}
