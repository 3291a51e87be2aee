// Package game runs the turn-synchronous simulation: one AdvanceTurn call
// resolves the player's action and every enemy's reaction before returning,
// so the loop behaves identically under an interactive front end or a batch
// harness.
package game

import (
	"fmt"

	"github.com/lixenwraith/penumbra/ai"
	"github.com/lixenwraith/penumbra/combat"
	"github.com/lixenwraith/penumbra/entity"
	"github.com/lixenwraith/penumbra/fov"
	"github.com/lixenwraith/penumbra/geom"
	"github.com/lixenwraith/penumbra/history"
	"github.com/lixenwraith/penumbra/parameter"
	"github.com/lixenwraith/penumbra/rng"
	"github.com/lixenwraith/penumbra/world"
)

// State is the complete mutable state of one run.
type State struct {
	Dungeon     *world.Dungeon
	Player      *entity.Player
	CurrentRoom world.RoomID
	Turn        int
	Over        bool
	Victory     bool
	DeathCause  string

	// EnemiesKilled across the whole run, for the progression ledger.
	EnemiesKilled int

	// Visible is recomputed after every position change; Revealed
	// accumulates everything seen or map-scrolled, for rendering.
	Visible  map[geom.Point]bool
	Revealed map[geom.Point]bool

	// Messages is the bounded in-game log.
	Messages []string

	// FOVRadius is configuration, not a constant.
	FOVRadius int

	// splitSpawns holds enemies created during the current player phase;
	// they sit out the enemy phase of the turn that spawned them.
	splitSpawns []entity.EnemyID

	src *rng.Source
}

// NewRun generates a dungeon from events and seed and places the player at
// the first room's entrance. The source keeps drawing for combat after
// generation so the whole run replays from {seed, draws}.
func NewRun(events []history.Event, seed uint64, class entity.PlayerClass, mods entity.StatModifiers, fovRadius int) *State {
	src := rng.New(seed)
	dungeon := world.GenerateWithSource(events, seed, src)

	s := &State{
		Dungeon:   dungeon,
		Player:    entity.NewPlayer(class, mods),
		Revealed:  make(map[geom.Point]bool),
		FOVRadius: fovRadius,
		src:       src,
	}
	s.Player.Pos = dungeon.Rooms[0].Entrance
	s.updateFOV()
	s.log("You descend into the dungeon your history built.")
	return s
}

// RNG exposes the run's stream position for snapshots.
func (s *State) RNG() *rng.Source { return s.src }

// Room returns the room the player currently occupies.
func (s *State) Room() *world.Room {
	return s.Dungeon.Room(s.CurrentRoom)
}

// AdvanceTurn resolves one full turn: the player's action, then every
// enemy's reaction in room list order. Invalid actions reject with
// ErrInvalidAction and consume nothing.
func (s *State) AdvanceTurn(action PlayerAction) (TurnOutcome, error) {
	if s.Over {
		return TurnOutcome{}, ErrRunOver
	}

	cost := action.EnergyCost()
	if cost > s.Player.Energy {
		return TurnOutcome{}, fmt.Errorf("need %d energy: %w", cost, ErrInvalidAction)
	}
	s.splitSpawns = s.splitSpawns[:0]

	var outcome TurnOutcome
	if err := s.applyPlayerAction(action, &outcome); err != nil {
		return TurnOutcome{}, err
	}
	s.Player.SpendEnergy(cost)

	if !s.Over {
		s.enemyPhase(&outcome)
	}

	s.Turn++
	outcome.Over = s.Over
	outcome.Victory = s.Victory
	return outcome, nil
}

func (s *State) applyPlayerAction(action PlayerAction, outcome *TurnOutcome) error {
	switch action.Kind {
	case ActionMove:
		return s.applyMove(action.Dir, outcome)
	case ActionAttack:
		return s.applyAttack(action.Dir, outcome)
	case ActionDefend:
		s.Player.Defending = true
		s.log("You brace for the next blow.")
		outcome.Events = append(outcome.Events, Event{Kind: EventPlayerDefending})
		return nil
	case ActionUseItem:
		return s.applyUseItem(action.ItemIndex, outcome)
	case ActionWait:
		s.Player.RegenEnergy(parameter.EnergyWaitRegen)
		s.healOnSanctuary(outcome)
		outcome.Events = append(outcome.Events, Event{Kind: EventPlayerWaited})
		return nil
	default:
		return fmt.Errorf("unknown action kind %d: %w", action.Kind, ErrInvalidAction)
	}
}

func (s *State) applyMove(dir geom.Point, outcome *TurnOutcome) error {
	if !isCardinal(dir) {
		return fmt.Errorf("move direction %+v: %w", dir, ErrInvalidAction)
	}
	target := s.Player.Pos.Add(dir)

	if !s.Dungeon.Walkable(target) {
		return fmt.Errorf("blocked by wall: %w", ErrInvalidAction)
	}
	if s.Dungeon.EnemyAt(s.CurrentRoom, target) != nil {
		return fmt.Errorf("an enemy blocks the way: %w", ErrInvalidAction)
	}
	if s.Dungeon.Tile(target) == world.TileExit {
		room := s.Room()
		if room != nil && room.Bounds.Contains(target) && !room.Cleared {
			return fmt.Errorf("the exit is sealed until the room is cleared: %w", ErrInvalidAction)
		}
	}

	s.Player.Pos = target
	outcome.Events = append(outcome.Events, Event{Kind: EventPlayerMoved, Pos: target})

	s.pickupAt(target, outcome)
	s.healOnSanctuary(outcome)
	s.trackRoom(outcome)
	s.checkVictory(outcome)
	s.updateFOV()
	return nil
}

func (s *State) applyAttack(dir geom.Point, outcome *TurnOutcome) error {
	if !isCardinal(dir) {
		return fmt.Errorf("attack direction %+v: %w", dir, ErrInvalidAction)
	}
	target := s.Player.Pos.Add(dir)
	enemy := s.Dungeon.EnemyAt(s.CurrentRoom, target)
	if enemy == nil {
		return fmt.Errorf("nothing to attack there: %w", ErrInvalidAction)
	}

	result := combat.PlayerAttack(s.Player, enemy, s.src)
	if !result.Hit {
		s.log(fmt.Sprintf("You miss the %s.", enemy.Kind))
		outcome.Events = append(outcome.Events, Event{Kind: EventPlayerMissed, EnemyKind: enemy.Kind})
		return nil
	}

	s.log(fmt.Sprintf("You hit the %s for %d.", enemy.Kind, result.Damage))
	outcome.Events = append(outcome.Events, Event{Kind: EventPlayerAttacked, Damage: result.Damage, EnemyKind: enemy.Kind})

	if result.Killed {
		s.killEnemy(enemy, outcome)
		return nil
	}

	if combat.ShouldSplit(enemy) {
		if child := s.Dungeon.SpawnSplit(s.CurrentRoom, enemy, s.Player.Pos); child != nil {
			s.splitSpawns = append(s.splitSpawns, child.ID)
			s.log("The merge conflict splits in two!")
			outcome.Events = append(outcome.Events, Event{Kind: EventEnemySplit, Pos: child.Pos, EnemyKind: child.Kind})
		}
	}
	return nil
}

func (s *State) applyUseItem(index int, outcome *TurnOutcome) error {
	item, ok := s.Player.RemoveItem(index)
	if !ok {
		return fmt.Errorf("no item in slot %d: %w", index, ErrInvalidAction)
	}

	switch item.Kind {
	case entity.ItemHealthPotion:
		s.Player.Heal(item.HealAmount())
		s.log(fmt.Sprintf("You drink the %s and recover %d hp.", item.Kind, item.HealAmount()))
	case entity.ItemEnergyVial:
		s.Player.RegenEnergy(item.EnergyAmount())
		s.log(fmt.Sprintf("The %s restores %d energy.", item.Kind, item.EnergyAmount()))
	case entity.ItemBuffItem:
		s.Player.Damage += item.BuffAmount()
		s.log(fmt.Sprintf("The %s sharpens your strikes by %d.", item.Kind, item.BuffAmount()))
	case entity.ItemMapScroll:
		s.revealRoom()
		s.log("The scroll reveals the room around you.")
	}

	outcome.Events = append(outcome.Events, Event{Kind: EventPlayerUsedItem, ItemKind: item.Kind})
	return nil
}

// enemyPhase runs each enemy of the current room, in the list order captured
// at phase start. Enemies spawned mid-phase (splits) act from the next turn.
func (s *State) enemyPhase(outcome *TurnOutcome) {
	room := s.Room()
	if room == nil {
		return
	}

	order := make([]entity.EnemyID, len(room.Enemies))
	copy(order, room.Enemies)

	for _, id := range order {
		enemy := s.Dungeon.Enemy(id)
		if enemy == nil || enemy.HP <= 0 || s.spawnedThisTurn(id) {
			continue
		}
		s.enemyTurn(enemy, outcome)
		if s.Over {
			return
		}
		enemy.TurnsAlive++
	}
}

func (s *State) spawnedThisTurn(id entity.EnemyID) bool {
	for _, sid := range s.splitSpawns {
		if sid == id {
			return true
		}
	}
	return false
}

func (s *State) enemyTurn(enemy *entity.Enemy, outcome *TurnOutcome) {
	switch reaction, amount := combat.TickReaction(enemy); reaction {
	case combat.ReactionHeal:
		s.log(fmt.Sprintf("The %s knits itself back together.", enemy.Kind))
		outcome.Events = append(outcome.Events, Event{Kind: EventEnemyHealed, Damage: amount, EnemyKind: enemy.Kind})
	case combat.ReactionGrow:
		outcome.Events = append(outcome.Events, Event{Kind: EventEnemyGrew, Damage: amount, EnemyKind: enemy.Kind})
	}

	action := ai.Decide(enemy, s.Player.Pos, s.terrainFor(enemy), s.src)
	switch action.Kind {
	case ai.ActionMove:
		target := enemy.Pos.Add(action.Dir)
		if s.Dungeon.Walkable(target) && target != s.Player.Pos && s.Dungeon.EnemyAt(s.CurrentRoom, target) == nil {
			enemy.Pos = target
			outcome.Events = append(outcome.Events, Event{Kind: EventEnemyMoved, Pos: target, EnemyKind: enemy.Kind})
		}
	case ai.ActionAttack:
		result := combat.EnemyAttack(enemy, s.Player, s.src)
		if !result.Hit {
			s.log(fmt.Sprintf("The %s misses you.", enemy.Kind))
			outcome.Events = append(outcome.Events, Event{Kind: EventEnemyMissed, EnemyKind: enemy.Kind})
			return
		}
		s.log(fmt.Sprintf("The %s hits you for %d.", enemy.Kind, result.Damage))
		outcome.Events = append(outcome.Events, Event{Kind: EventEnemyAttacked, Damage: result.Damage, EnemyKind: enemy.Kind})
		if result.Killed {
			s.Over = true
			s.DeathCause = enemy.Kind.String()
			s.log("You have been defeated.")
			outcome.Events = append(outcome.Events, Event{Kind: EventRunEnded})
		}
	}
}

// terrainFor adapts the dungeon for the AI: tiles are open when walkable and
// unoccupied by other enemies. The player's tile reads closed so pursuit
// stops adjacent instead of stacking.
func (s *State) terrainFor(mover *entity.Enemy) ai.Terrain {
	return terrainFunc(func(p geom.Point) bool {
		if !s.Dungeon.Walkable(p) || p == s.Player.Pos {
			return false
		}
		if e := s.Dungeon.EnemyAt(s.CurrentRoom, p); e != nil && e.ID != mover.ID {
			return false
		}
		return true
	})
}

type terrainFunc func(geom.Point) bool

func (f terrainFunc) Open(p geom.Point) bool { return f(p) }

func (s *State) killEnemy(enemy *entity.Enemy, outcome *TurnOutcome) {
	s.Dungeon.RemoveEnemy(s.CurrentRoom, enemy.ID)
	s.EnemiesKilled++
	s.log(fmt.Sprintf("The %s is destroyed.", enemy.Kind))
	outcome.Events = append(outcome.Events, Event{Kind: EventEnemyKilled, EnemyKind: enemy.Kind})

	if s.Player.AddXP(enemy.Kind.XPReward()) {
		s.log(fmt.Sprintf("You reach level %d.", s.Player.Level))
		outcome.Events = append(outcome.Events, Event{Kind: EventPlayerLeveledUp, Level: s.Player.Level})
	}

	if room := s.Room(); room != nil && room.Cleared {
		s.log("The room falls quiet.")
		outcome.Events = append(outcome.Events, Event{Kind: EventRoomCleared, RoomID: room.ID})
	}
}

func (s *State) pickupAt(p geom.Point, outcome *TurnOutcome) {
	id, ok := s.Dungeon.ItemAt(s.CurrentRoom, p)
	if !ok {
		return
	}
	item, _ := s.Dungeon.Item(id)

	// Loot luck may raise the find one rarity tier.
	if s.Player.LootLuck > 0 && item.Rarity < entity.RarityLegendary {
		if s.src.Intn(100) < s.Player.LootLuck {
			item.Rarity++
		}
	}

	if !s.Player.Pickup(item) {
		s.log("Your pack is full.")
		return
	}
	s.Dungeon.RemoveItem(s.CurrentRoom, id)
	s.log(fmt.Sprintf("You pick up a %s %s.", item.Rarity, item.Kind))
	outcome.Events = append(outcome.Events, Event{Kind: EventPlayerPickedUp, ItemKind: item.Kind})
}

func (s *State) healOnSanctuary(outcome *TurnOutcome) {
	if s.Dungeon.Tile(s.Player.Pos) != world.TileHealing || s.Player.HP >= s.Player.MaxHP {
		return
	}
	s.Player.Heal(parameter.SanctuaryHealPerTurn)
	outcome.Events = append(outcome.Events, Event{Kind: EventPlayerHealed, Damage: parameter.SanctuaryHealPerTurn})
}

func (s *State) trackRoom(outcome *TurnOutcome) {
	id, ok := s.Dungeon.RoomContaining(s.Player.Pos)
	if !ok || id == s.CurrentRoom {
		return
	}
	s.CurrentRoom = id
	room := s.Dungeon.Room(id)
	s.log(fmt.Sprintf("You enter the %s.", room.Kind))
	outcome.Events = append(outcome.Events, Event{Kind: EventRoomEntered, RoomID: id})
}

func (s *State) checkVictory(outcome *TurnOutcome) {
	last := s.Dungeon.Rooms[len(s.Dungeon.Rooms)-1]
	if s.Player.Pos != last.Exit || !last.Cleared {
		return
	}
	s.Over = true
	s.Victory = true
	s.log("You step through the final door. Victory.")
	outcome.Events = append(outcome.Events, Event{Kind: EventRunEnded, Victory: true})
}

func (s *State) updateFOV() {
	s.Visible = fov.Compute(s.Player.Pos, s.FOVRadius, s.Dungeon.Opaque)
	for p := range s.Visible {
		s.Revealed[p] = true
	}
}

func (s *State) revealRoom() {
	room := s.Room()
	if room == nil {
		return
	}
	for y := room.Bounds.Y; y < room.Bounds.Y+room.Bounds.H; y++ {
		for x := room.Bounds.X; x < room.Bounds.X+room.Bounds.W; x++ {
			s.Revealed[geom.Point{X: x, Y: y}] = true
		}
	}
}

func (s *State) log(message string) {
	s.Messages = append(s.Messages, message)
	if len(s.Messages) > parameter.MessageLogCap {
		s.Messages = s.Messages[len(s.Messages)-parameter.MessageLogCap:]
	}
}

func isCardinal(d geom.Point) bool {
	for _, dir := range geom.CardinalDirs {
		if d == dir {
			return true
		}
	}
	return false
}
