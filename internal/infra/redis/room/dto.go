package infra_redis_room

import (
	"time"

	"github.com/google/uuid"
	"github.com/humanbelnik/matchroom/internal/model"
)

// Stored as a single JSON value per room. Timestamps are unix
// milliseconds, matching the external snapshot format.
type RoomDB struct {
	Pin       string             `json:"pin"`
	Members   []MemberDB         `json:"members"`
	Decisions map[string][]*bool `json:"decisions"`
	Matches   []int              `json:"matches"`
	Frontier  int                `json:"frontier"`
	CreatedAt int64              `json:"created_at"`
}

type MemberDB struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	JoinedAt int64  `json:"joined_at"`
}

func FromDomain(room model.Room) RoomDB {
	members := make([]MemberDB, len(room.Members))
	for i, m := range room.Members {
		members[i] = MemberDB{
			ID:       m.ID.String(),
			Name:     m.Name,
			JoinedAt: m.JoinedAt.UnixMilli(),
		}
	}

	decisions := make(map[string][]*bool, len(room.Decisions))
	for id, v := range room.Decisions {
		decisions[id.String()] = v
	}

	matches := room.Matches
	if matches == nil {
		matches = []int{}
	}

	return RoomDB{
		Pin:       string(room.Pin),
		Members:   members,
		Decisions: decisions,
		Matches:   matches,
		Frontier:  room.Frontier,
		CreatedAt: room.CreatedAt.UnixMilli(),
	}
}

func (r RoomDB) ToDomain() (model.Room, error) {
	members := make([]model.Member, len(r.Members))
	for i, m := range r.Members {
		id, err := uuid.Parse(m.ID)
		if err != nil {
			return model.Room{}, err
		}
		members[i] = model.Member{
			ID:       id,
			Name:     m.Name,
			JoinedAt: time.UnixMilli(m.JoinedAt),
		}
	}

	decisions := make(map[uuid.UUID]model.DecisionVector, len(r.Decisions))
	for rawID, v := range r.Decisions {
		id, err := uuid.Parse(rawID)
		if err != nil {
			return model.Room{}, err
		}
		decisions[id] = model.DecisionVector(v)
	}

	matches := r.Matches
	if matches == nil {
		matches = []int{}
	}

	return model.Room{
		Pin:       model.Pin(r.Pin),
		Members:   members,
		Decisions: decisions,
		Matches:   matches,
		Frontier:  r.Frontier,
		CreatedAt: time.UnixMilli(r.CreatedAt),
	}, nil
}
