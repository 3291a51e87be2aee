package world

import (
	"github.com/lixenwraith/penumbra/entity"
	"github.com/lixenwraith/penumbra/geom"
)

// Corridor is an edge between two chronologically adjacent rooms.
type Corridor struct {
	From RoomID `json:"from"`
	To   RoomID `json:"to"`
}

// Dungeon is the generated world for one run. Rooms, corridors, and the grid
// never change after generation; only enemy state, item pickup, and cleared
// flags mutate during play. Entities live in flat arenas indexed by their IDs.
type Dungeon struct {
	Rooms     []Room          `json:"rooms"`
	Corridors []Corridor      `json:"corridors"`
	Grid      [][]TileKind    `json:"grid"`
	Seed      uint64          `json:"seed"`
	Enemies   []*entity.Enemy `json:"enemies"`
	Items     []entity.Item   `json:"items"`
}

// Width of the grid in tiles.
func (d *Dungeon) Width() int {
	if len(d.Grid) == 0 {
		return 0
	}
	return len(d.Grid[0])
}

// Height of the grid in tiles.
func (d *Dungeon) Height() int {
	return len(d.Grid)
}

// Tile returns the tile at p, TileVoid when out of bounds.
func (d *Dungeon) Tile(p geom.Point) TileKind {
	if p.Y < 0 || p.Y >= len(d.Grid) || p.X < 0 || p.X >= len(d.Grid[p.Y]) {
		return TileVoid
	}
	return d.Grid[p.Y][p.X]
}

// Walkable reports whether the tile at p can be occupied.
func (d *Dungeon) Walkable(p geom.Point) bool {
	return d.Tile(p).Walkable()
}

// Opaque reports whether the tile at p blocks sight. Used as the fov
// Blocking callback.
func (d *Dungeon) Opaque(x, y int) bool {
	return d.Tile(geom.Point{X: x, Y: y}).Opaque()
}

// Room returns the room with the given id, nil when out of range.
func (d *Dungeon) Room(id RoomID) *Room {
	if int(id) < 0 || int(id) >= len(d.Rooms) {
		return nil
	}
	return &d.Rooms[id]
}

// RoomContaining locates the room whose bounds include p.
func (d *Dungeon) RoomContaining(p geom.Point) (RoomID, bool) {
	for i := range d.Rooms {
		if d.Rooms[i].Bounds.Contains(p) {
			return d.Rooms[i].ID, true
		}
	}
	return 0, false
}

// Enemy returns the arena entry for id, nil when out of range.
func (d *Dungeon) Enemy(id entity.EnemyID) *entity.Enemy {
	if int(id) < 0 || int(id) >= len(d.Enemies) {
		return nil
	}
	return d.Enemies[id]
}

// Item returns the arena entry for id.
func (d *Dungeon) Item(id entity.ItemID) (entity.Item, bool) {
	if int(id) < 0 || int(id) >= len(d.Items) {
		return entity.Item{}, false
	}
	return d.Items[id], true
}

// EnemyAt finds the living enemy occupying p in the given room.
func (d *Dungeon) EnemyAt(roomID RoomID, p geom.Point) *entity.Enemy {
	room := d.Room(roomID)
	if room == nil {
		return nil
	}
	for _, id := range room.Enemies {
		e := d.Enemy(id)
		if e != nil && e.HP > 0 && e.Pos == p {
			return e
		}
	}
	return nil
}

// ItemAt finds an uncollected item at p in the given room.
func (d *Dungeon) ItemAt(roomID RoomID, p geom.Point) (entity.ItemID, bool) {
	room := d.Room(roomID)
	if room == nil {
		return 0, false
	}
	for _, id := range room.Items {
		if item, ok := d.Item(id); ok && item.Pos == p {
			return id, true
		}
	}
	return 0, false
}

// RemoveEnemy drops a dead enemy from its room's list and flips the room to
// cleared when it was the last one. The arena entry stays for bookkeeping.
func (d *Dungeon) RemoveEnemy(roomID RoomID, id entity.EnemyID) {
	room := d.Room(roomID)
	if room == nil {
		return
	}
	for i, eid := range room.Enemies {
		if eid == id {
			room.Enemies = append(room.Enemies[:i], room.Enemies[i+1:]...)
			break
		}
	}
	if len(room.Enemies) == 0 {
		room.Cleared = true
	}
}

// RemoveItem drops a collected item from its room's list.
func (d *Dungeon) RemoveItem(roomID RoomID, id entity.ItemID) {
	room := d.Room(roomID)
	if room == nil {
		return
	}
	for i, iid := range room.Items {
		if iid == id {
			room.Items = append(room.Items[:i], room.Items[i+1:]...)
			return
		}
	}
}

// SpawnSplit places a copy of parent on an adjacent free tile, halving hp
// between the two. Returns nil when no adjacent tile is free. Directions are
// probed in the fixed cardinal order so splits are reproducible.
func (d *Dungeon) SpawnSplit(roomID RoomID, parent *entity.Enemy, playerPos geom.Point) *entity.Enemy {
	room := d.Room(roomID)
	if room == nil || parent.Split {
		return nil
	}

	var target geom.Point
	found := false
	for _, dir := range geom.CardinalDirs {
		p := parent.Pos.Add(dir)
		if d.Walkable(p) && room.Bounds.Contains(p) && d.EnemyAt(roomID, p) == nil && p != playerPos {
			target = p
			found = true
			break
		}
	}
	parent.Split = true
	if !found {
		return nil
	}

	childHP := parent.HP / 2
	if childHP < 1 {
		return nil
	}
	parent.HP -= childHP

	child := &entity.Enemy{
		ID:          entity.EnemyID(len(d.Enemies)),
		Kind:        parent.Kind,
		Pos:         target,
		HP:          childHP,
		MaxHP:       parent.MaxHP,
		Damage:      parent.Damage,
		Defense:     parent.Defense,
		SpawnDamage: parent.SpawnDamage,
		// Neither half may split again.
		Split: true,
	}
	d.Enemies = append(d.Enemies, child)
	room.Enemies = append(room.Enemies, child.ID)
	return child
}

// FreeTiles lists interior walkable tiles of room not occupied by an enemy,
// an item, or the entrance, in scan order.
func (d *Dungeon) FreeTiles(roomID RoomID) []geom.Point {
	room := d.Room(roomID)
	if room == nil {
		return nil
	}
	var free []geom.Point
	for y := room.Bounds.Y + 1; y < room.Bounds.Y+room.Bounds.H-1; y++ {
		for x := room.Bounds.X + 1; x < room.Bounds.X+room.Bounds.W-1; x++ {
			p := geom.Point{X: x, Y: y}
			if !d.Walkable(p) || p == room.Entrance {
				continue
			}
			if d.EnemyAt(roomID, p) != nil {
				continue
			}
			if _, occupied := d.ItemAt(roomID, p); occupied {
				continue
			}
			free = append(free, p)
		}
	}
	return free
}
