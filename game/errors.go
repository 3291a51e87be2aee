package game

import "errors"

// ErrInvalidAction rejects a player action that cannot apply: moving into a
// wall, attacking empty air, a locked exit, or an unaffordable energy cost.
// Nothing changes and the turn is not consumed.
var ErrInvalidAction = errors.New("invalid action")

// ErrRunOver rejects actions after the run has ended.
var ErrRunOver = errors.New("run is over")

// ErrStateCorruption marks a loaded snapshot that fails consistency checks.
// Fatal: no partial recovery, since a repaired state could no longer be
// trusted to replay deterministically.
var ErrStateCorruption = errors.New("state corruption")
