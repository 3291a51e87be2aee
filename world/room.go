package world

import (
	"time"

	"github.com/lixenwraith/penumbra/entity"
	"github.com/lixenwraith/penumbra/geom"
)

// RoomID indexes the dungeon's room slice.
type RoomID int

// RoomKind is selected from a day's event categories by priority
// (Merge > Test > Config > Standard).
type RoomKind int

const (
	RoomStandard RoomKind = iota
	RoomBoss
	RoomSanctuary
	RoomTreasure
)

func (k RoomKind) String() string {
	switch k {
	case RoomStandard:
		return "Room"
	case RoomBoss:
		return "Boss Chamber"
	case RoomSanctuary:
		return "Sanctuary"
	case RoomTreasure:
		return "Treasury"
	default:
		return "Unknown"
	}
}

// Rect is a room's footprint on the dungeon grid, walls included.
type Rect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// Contains reports whether p lies inside the rectangle.
func (r Rect) Contains(p geom.Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Room is one day of history rendered as dungeon space. Enemies and items
// are held as IDs into the dungeon arenas, in spawn order.
type Room struct {
	ID       RoomID           `json:"id"`
	Bounds   Rect             `json:"bounds"`
	Kind     RoomKind         `json:"kind"`
	Date     time.Time        `json:"date"`
	Enemies  []entity.EnemyID `json:"enemies"`
	Items    []entity.ItemID  `json:"items"`
	Cleared  bool             `json:"cleared"`
	Entrance geom.Point       `json:"entrance"`
	Exit     geom.Point       `json:"exit"`
}
