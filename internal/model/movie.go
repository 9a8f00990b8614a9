package model

import "github.com/google/uuid"

const EmptyTitle string = ""

// MovieMeta describes one candidate in the shared catalog. Rooms never
// embed movies; they reference them by position in the catalog order.
type MovieMeta struct {
	ID         uuid.UUID
	Position   int
	PosterLink string
	Title      string
	Genres     []string
	Year       int

	Overview string
}
