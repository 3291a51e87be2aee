package world

import (
	"time"

	"github.com/lixenwraith/penumbra/entity"
	"github.com/lixenwraith/penumbra/geom"
	"github.com/lixenwraith/penumbra/history"
	"github.com/lixenwraith/penumbra/parameter"
	"github.com/lixenwraith/penumbra/rng"
)

// Generate builds the dungeon for an event stream and seed. Identical
// (events, seed) pairs yield bit-identical dungeons.
func Generate(events []history.Event, seed uint64) *Dungeon {
	return GenerateWithSource(events, seed, rng.New(seed))
}

// GenerateWithSource generates using an externally owned random source, so a
// run can keep drawing from the same stream during combat. Draw order is
// fixed: rooms chronologically; per room enemies in event order (placement
// then hp jitter), then items in drop order.
func GenerateWithSource(events []history.Event, seed uint64, src *rng.Source) *Dungeon {
	groups := history.GroupByDay(events)
	if len(groups) == 0 {
		return minimalDungeon(seed)
	}

	specs := make([]roomSpec, len(groups))
	for i, g := range groups {
		specs[i] = roomSpec{
			date:  g.Date,
			size:  RoomSize(g.TotalMagnitude()),
			kind:  RoomKindFor(g.Events),
			group: g,
		}
	}

	d := layout(specs, seed)

	for i := range d.Rooms {
		populateEnemies(d, RoomID(i), specs[i], src)
	}
	for i := range d.Rooms {
		populateItems(d, RoomID(i), specs[i], src)
	}
	for i := range d.Rooms {
		if len(d.Rooms[i].Enemies) == 0 {
			d.Rooms[i].Cleared = true
		}
	}
	return d
}

type roomSpec struct {
	date  time.Time
	size  int
	kind  RoomKind
	group history.DayGroup
}

// RoomSize maps a day's total magnitude onto a square footprint, walls
// included. Monotonic and saturating.
func RoomSize(magnitude uint) int {
	switch {
	case magnitude >= parameter.RoomSizeTier4Magnitude:
		return parameter.RoomSizeMax
	case magnitude >= parameter.RoomSizeTier3Magnitude:
		return 9
	case magnitude >= parameter.RoomSizeTier2Magnitude:
		return 7
	default:
		return parameter.RoomSizeMin
	}
}

// RoomKindFor selects the room kind by category priority:
// Merge > Test > Config > Standard. Test and Config need a strict majority.
func RoomKindFor(events []history.Event) RoomKind {
	var tests, configs int
	for _, e := range events {
		switch e.Category {
		case history.CategoryMerge:
			return RoomBoss
		case history.CategoryTest:
			tests++
		case history.CategoryConfig:
			configs++
		}
	}
	total := len(events)
	if total > 0 {
		if tests*2 > total {
			return RoomSanctuary
		}
		if configs*2 > total {
			return RoomTreasure
		}
	}
	return RoomStandard
}

// layout carves rooms on a shared grid: a linear west-to-east backbone,
// rooms centered on a common corridor row, one corridor per adjacent pair.
func layout(specs []roomSpec, seed uint64) *Dungeon {
	maxH := 0
	totalW := 0
	for i, s := range specs {
		if s.size > maxH {
			maxH = s.size
		}
		totalW += s.size
		if i > 0 {
			totalW += parameter.CorridorLength
		}
	}
	centerY := maxH / 2

	grid := make([][]TileKind, maxH)
	for y := range grid {
		grid[y] = make([]TileKind, totalW)
	}

	d := &Dungeon{Grid: grid, Seed: seed}

	x := 0
	for i, s := range specs {
		bounds := Rect{X: x, Y: centerY - s.size/2, W: s.size, H: s.size}
		carveRoom(grid, bounds, s.kind)

		room := Room{
			ID:     RoomID(i),
			Bounds: bounds,
			Kind:   s.kind,
			Date:   s.date,
		}

		// West door is the room's entrance; the first room's entrance is
		// where the player starts.
		room.Entrance = geom.Point{X: bounds.X, Y: centerY}
		grid[centerY][bounds.X] = TileEntrance
		room.Exit = geom.Point{X: bounds.X + bounds.W - 1, Y: centerY}
		grid[centerY][room.Exit.X] = TileExit

		d.Rooms = append(d.Rooms, room)

		if i > 0 {
			d.Corridors = append(d.Corridors, Corridor{From: RoomID(i - 1), To: RoomID(i)})
		}

		x += s.size
		if i < len(specs)-1 {
			carveCorridor(grid, x, centerY)
			x += parameter.CorridorLength
		}
	}
	return d
}

func carveRoom(grid [][]TileKind, b Rect, kind RoomKind) {
	floor := TileFloor
	if kind == RoomSanctuary {
		floor = TileHealing
	}
	for y := b.Y; y < b.Y+b.H; y++ {
		for x := b.X; x < b.X+b.W; x++ {
			onEdge := y == b.Y || y == b.Y+b.H-1 || x == b.X || x == b.X+b.W-1
			if onEdge {
				grid[y][x] = TileWall
			} else {
				grid[y][x] = floor
			}
		}
	}
}

func carveCorridor(grid [][]TileKind, startX, centerY int) {
	for x := startX; x < startX+parameter.CorridorLength; x++ {
		grid[centerY][x] = TileFloor
		grid[centerY-1][x] = TileWall
		grid[centerY+1][x] = TileWall
	}
}

// ScaledStats derives an enemy's stats from its kind and the magnitude of
// the event that spawned it. Monotonic in magnitude, saturating.
func ScaledStats(kind entity.EnemyKind, magnitude uint) (hp, damage, defense int) {
	hpBonus := int(magnitude) / parameter.EnemyHPPerMagnitude * 5
	if hpBonus > 50 {
		hpBonus = 50
	}
	dmgBonus := int(magnitude) / parameter.EnemyDamagePerMagnitude
	if dmgBonus > 5 {
		dmgBonus = 5
	}
	defBonus := int(magnitude) / parameter.EnemyDefensePerMagnitude
	if defBonus > 4 {
		defBonus = 4
	}
	return kind.BaseHP() + hpBonus, kind.BaseDamage() + dmgBonus, kind.BaseDefense() + defBonus
}

// populateEnemies spawns one enemy per qualifying event, capped by interior
// area and the room cap. Sanctuaries spawn none. A Boss room gets exactly one
// MergeConflict, placed at the interior tile farthest from the entrance.
func populateEnemies(d *Dungeon, roomID RoomID, spec roomSpec, src *rng.Source) {
	room := d.Room(roomID)
	if room.Kind == RoomSanctuary {
		return
	}

	interior := (room.Bounds.W - 2) * (room.Bounds.H - 2)
	limit := interior / 4
	if limit > parameter.RoomEnemyCap {
		limit = parameter.RoomEnemyCap
	}
	if limit < 1 {
		limit = 1
	}

	bossPlaced := false
	spawned := 0
	for _, ev := range spec.group.Events {
		if spawned >= limit {
			break
		}
		kind := entity.KindForCategory(ev.Category)

		if kind == entity.EnemyMergeConflict {
			// A boss room holds exactly one MergeConflict; later Merge
			// events of the day only contribute magnitude.
			if bossPlaced {
				continue
			}
			bossPlaced = true
			spawnEnemy(d, room, kind, ev.Magnitude, bossTile(d, room), src)
			spawned++
			continue
		}

		free := d.FreeTiles(roomID)
		if len(free) == 0 {
			break
		}
		pos := free[src.Intn(len(free))]
		spawnEnemy(d, room, kind, ev.Magnitude, pos, src)
		spawned++
	}
}

func spawnEnemy(d *Dungeon, room *Room, kind entity.EnemyKind, magnitude uint, pos geom.Point, src *rng.Source) {
	hp, damage, defense := ScaledStats(kind, magnitude)
	hp += src.Intn(parameter.EnemyHPJitterSpan)

	e := &entity.Enemy{
		ID:          entity.EnemyID(len(d.Enemies)),
		Kind:        kind,
		Pos:         pos,
		HP:          hp,
		MaxHP:       hp,
		Damage:      damage,
		Defense:     defense,
		SpawnDamage: damage,
	}
	d.Enemies = append(d.Enemies, e)
	room.Enemies = append(room.Enemies, e.ID)
}

// bossTile picks the interior tile maximally Manhattan-distant from the
// room's entrance. Scan order breaks ties, so the choice is deterministic.
func bossTile(d *Dungeon, room *Room) geom.Point {
	best := room.Entrance
	bestDist := -1
	for y := room.Bounds.Y + 1; y < room.Bounds.Y+room.Bounds.H-1; y++ {
		for x := room.Bounds.X + 1; x < room.Bounds.X+room.Bounds.W-1; x++ {
			p := geom.Point{X: x, Y: y}
			if !d.Walkable(p) || d.EnemyAt(room.ID, p) != nil {
				continue
			}
			if dist := geom.Manhattan(room.Entrance, p); dist > bestDist {
				best = p
				bestDist = dist
			}
		}
	}
	return best
}

// populateItems drops items from the day's categories: Doc yields a
// MapScroll, Test a HealthPotion, Config a BuffItem, rarity from the largest
// qualifying magnitude. Treasure rooms add one extra random drop.
func populateItems(d *Dungeon, roomID RoomID, spec roomSpec, src *rng.Source) {
	room := d.Room(roomID)

	type drop struct {
		kind   entity.ItemKind
		rarity entity.Rarity
	}
	var drops []drop

	addCategory := func(cat history.Category, kind entity.ItemKind) {
		var maxMag uint
		found := false
		for _, ev := range spec.group.Events {
			if ev.Category == cat {
				found = true
				if ev.Magnitude > maxMag {
					maxMag = ev.Magnitude
				}
			}
		}
		if found {
			drops = append(drops, drop{kind: kind, rarity: entity.RarityForMagnitude(maxMag)})
		}
	}

	addCategory(history.CategoryDoc, entity.ItemMapScroll)
	addCategory(history.CategoryTest, entity.ItemHealthPotion)
	addCategory(history.CategoryConfig, entity.ItemBuffItem)

	if room.Kind == RoomTreasure {
		extras := [3]entity.ItemKind{entity.ItemHealthPotion, entity.ItemEnergyVial, entity.ItemBuffItem}
		kind := extras[src.Intn(len(extras))]
		drops = append(drops, drop{kind: kind, rarity: entity.RarityForMagnitude(spec.group.TotalMagnitude())})
	}

	if len(drops) > parameter.RoomItemCap {
		drops = drops[:parameter.RoomItemCap]
	}

	for _, dr := range drops {
		free := d.FreeTiles(roomID)
		if len(free) == 0 {
			return
		}
		pos := free[src.Intn(len(free))]
		item := entity.Item{
			ID:     entity.ItemID(len(d.Items)),
			Kind:   dr.kind,
			Rarity: dr.rarity,
			Pos:    pos,
		}
		d.Items = append(d.Items, item)
		room.Items = append(room.Items, item.ID)
	}
}

// minimalDungeon is the degenerate single empty room an empty event stream
// yields. A valid dungeon, not an error.
func minimalDungeon(seed uint64) *Dungeon {
	spec := roomSpec{size: parameter.RoomSizeMin, kind: RoomStandard}
	d := layout([]roomSpec{spec}, seed)
	d.Rooms[0].Cleared = true
	return d
}
