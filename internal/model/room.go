package model

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Pin string

const EmptyPin Pin = ""

// Pins are case-insensitive for humans typing them off a friend's screen.
// Upper case is the canonical form everywhere past the API boundary.
func NormalizePin(raw string) Pin {
	return Pin(strings.ToUpper(strings.TrimSpace(raw)))
}

type Member struct {
	ID       uuid.UUID
	Name     string
	JoinedAt time.Time
}

// DecisionVector holds one slot per candidate position. A nil slot means
// the member has not swiped that position yet; a set slot never changes.
type DecisionVector []*bool

func (v DecisionVector) At(position int) *bool {
	if position < 0 || position >= len(v) {
		return nil
	}
	return v[position]
}

func (v DecisionVector) Set(position int, liked bool) DecisionVector {
	for len(v) <= position {
		v = append(v, nil)
	}
	v[position] = &liked
	return v
}

// Highest set position, -1 if the member has not swiped at all.
func (v DecisionVector) HighestSet() int {
	for i := len(v) - 1; i >= 0; i-- {
		if v[i] != nil {
			return i
		}
	}
	return -1
}

// Smallest position without a decision. Clients use this to pick the
// next card to show.
func (v DecisionVector) NextUnswiped() int {
	for i, d := range v {
		if d == nil {
			return i
		}
	}
	return len(v)
}

func (v DecisionVector) SwipeCount() int {
	n := 0
	for _, d := range v {
		if d != nil {
			n++
		}
	}
	return n
}

type Room struct {
	Pin       Pin
	Members   []Member
	Decisions map[uuid.UUID]DecisionVector
	Matches   []int
	Frontier  int
	CreatedAt time.Time
}

func (r *Room) HasMember(id uuid.UUID) bool {
	for _, m := range r.Members {
		if m.ID == id {
			return true
		}
	}
	return false
}

func (r *Room) AddMember(m Member) {
	r.Members = append(r.Members, m)
	if r.Decisions == nil {
		r.Decisions = make(map[uuid.UUID]DecisionVector)
	}
	r.Decisions[m.ID] = DecisionVector{}
}

// True when any member other than `except` has a like at `position`.
func (r *Room) LikedByOther(position int, except uuid.UUID) bool {
	for id, v := range r.Decisions {
		if id == except {
			continue
		}
		if d := v.At(position); d != nil && *d {
			return true
		}
	}
	return false
}

func (r *Room) IsMatched(position int) bool {
	return slices.Contains(r.Matches, position)
}

func (r *Room) AddMatch(position int) {
	if !r.IsMatched(position) {
		r.Matches = append(r.Matches, position)
	}
}

// Frontier only ever moves forward. It tracks the furthest position any
// single member has progressed past and is purely informational.
func (r *Room) AdvanceFrontier(memberID uuid.UUID) {
	if next := r.Decisions[memberID].HighestSet() + 1; next > r.Frontier {
		r.Frontier = next
	}
}

func (r *Room) Clone() Room {
	clone := *r
	clone.Members = slices.Clone(r.Members)
	clone.Matches = slices.Clone(r.Matches)
	if r.Decisions != nil {
		clone.Decisions = make(map[uuid.UUID]DecisionVector, len(r.Decisions))
		for id, v := range r.Decisions {
			clone.Decisions[id] = slices.Clone(v)
		}
	}
	return clone
}
