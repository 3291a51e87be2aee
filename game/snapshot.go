package game

import (
	"encoding/json"
	"fmt"

	"github.com/lixenwraith/penumbra/entity"
	"github.com/lixenwraith/penumbra/geom"
	"github.com/lixenwraith/penumbra/rng"
	"github.com/lixenwraith/penumbra/world"
)

// Snapshot is the serializable form of a run. The rng stream is recorded as
// {seed, draws} rather than raw state so resumed runs replay bit-identically.
type Snapshot struct {
	Dungeon       *world.Dungeon `json:"dungeon"`
	Player        *entity.Player `json:"player"`
	CurrentRoom   world.RoomID   `json:"current_room"`
	Turn          int            `json:"turn"`
	Over          bool           `json:"over"`
	Victory       bool           `json:"victory"`
	DeathCause    string         `json:"death_cause,omitempty"`
	EnemiesKilled int            `json:"enemies_killed"`
	Revealed      []geom.Point   `json:"revealed"`
	Messages      []string       `json:"messages"`
	FOVRadius     int            `json:"fov_radius"`
	Seed          uint64         `json:"seed"`
	Draws         uint64         `json:"draws"`
}

// Snapshot captures the run for persistence.
func (s *State) Snapshot() ([]byte, error) {
	revealed := make([]geom.Point, 0, len(s.Revealed))
	for y := 0; y < s.Dungeon.Height(); y++ {
		for x := 0; x < s.Dungeon.Width(); x++ {
			p := geom.Point{X: x, Y: y}
			if s.Revealed[p] {
				revealed = append(revealed, p)
			}
		}
	}

	snap := Snapshot{
		Dungeon:       s.Dungeon,
		Player:        s.Player,
		CurrentRoom:   s.CurrentRoom,
		Turn:          s.Turn,
		Over:          s.Over,
		Victory:       s.Victory,
		DeathCause:    s.DeathCause,
		EnemiesKilled: s.EnemiesKilled,
		Revealed:      revealed,
		Messages:      s.Messages,
		FOVRadius:     s.FOVRadius,
		Seed:          s.src.Seed(),
		Draws:         s.src.Draws(),
	}
	return json.MarshalIndent(snap, "", "  ")
}

// Load rebuilds a State from snapshot bytes. Structural damage surfaces as
// ErrStateCorruption; callers should treat it as fatal for the save.
func Load(data []byte) (*State, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", ErrStateCorruption)
	}
	if err := validateSnapshot(&snap); err != nil {
		return nil, err
	}

	s := &State{
		Dungeon:       snap.Dungeon,
		Player:        snap.Player,
		CurrentRoom:   snap.CurrentRoom,
		Turn:          snap.Turn,
		Over:          snap.Over,
		Victory:       snap.Victory,
		DeathCause:    snap.DeathCause,
		EnemiesKilled: snap.EnemiesKilled,
		Messages:      snap.Messages,
		Revealed:      make(map[geom.Point]bool, len(snap.Revealed)),
		FOVRadius:     snap.FOVRadius,
		src:           rng.Resume(snap.Seed, snap.Draws),
	}
	for _, p := range snap.Revealed {
		s.Revealed[p] = true
	}
	s.updateFOV()
	return s, nil
}

func validateSnapshot(snap *Snapshot) error {
	if snap.Dungeon == nil || len(snap.Dungeon.Rooms) == 0 || len(snap.Dungeon.Grid) == 0 {
		return fmt.Errorf("dungeon missing or empty: %w", ErrStateCorruption)
	}
	if snap.Player == nil {
		return fmt.Errorf("player missing: %w", ErrStateCorruption)
	}
	if snap.Dungeon.Room(snap.CurrentRoom) == nil {
		return fmt.Errorf("current room %d out of range: %w", snap.CurrentRoom, ErrStateCorruption)
	}
	if snap.FOVRadius < 0 || snap.Turn < 0 {
		return fmt.Errorf("negative counters: %w", ErrStateCorruption)
	}
	for _, room := range snap.Dungeon.Rooms {
		for _, id := range room.Enemies {
			if snap.Dungeon.Enemy(id) == nil {
				return fmt.Errorf("room %d references unknown enemy %d: %w", room.ID, id, ErrStateCorruption)
			}
		}
		for _, id := range room.Items {
			if _, ok := snap.Dungeon.Item(id); !ok {
				return fmt.Errorf("room %d references unknown item %d: %w", room.ID, id, ErrStateCorruption)
			}
		}
	}
	return nil
}

// Summary condenses a finished run for the records table.
type Summary struct {
	Victory       bool   `json:"victory"`
	Turns         int    `json:"turns"`
	EnemiesKilled int    `json:"enemies_killed"`
	RoomsCleared  int    `json:"rooms_cleared"`
	Level         int    `json:"level"`
	DeathCause    string `json:"death_cause,omitempty"`
	Seed          uint64 `json:"seed"`
}

// Summarize reports the run's outcome counters.
func (s *State) Summarize() Summary {
	cleared := 0
	for i := range s.Dungeon.Rooms {
		if s.Dungeon.Rooms[i].Cleared {
			cleared++
		}
	}
	return Summary{
		Victory:       s.Victory,
		Turns:         s.Turn,
		EnemiesKilled: s.EnemiesKilled,
		RoomsCleared:  cleared,
		Level:         s.Player.Level,
		DeathCause:    s.DeathCause,
		Seed:          s.src.Seed(),
	}
}
