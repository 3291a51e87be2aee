// Package ui runs the interactive terminal front end on tcell.
package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/penumbra/game"
	"github.com/lixenwraith/penumbra/geom"
	"github.com/lixenwraith/penumbra/sound"
)

// Outcome reports how an interactive session ended.
type Outcome int

const (
	// OutcomeFinished means the run ended in victory or defeat.
	OutcomeFinished Outcome = iota
	// OutcomeSuspended means the player quit mid-run and the state should
	// be saved for resume.
	OutcomeSuspended
)

// App owns the screen and drives the turn loop from key events.
type App struct {
	screen tcell.Screen
	state  *game.State
	sounds *sound.Manager

	status string
}

// NewApp initializes the terminal for the given run.
func NewApp(state *game.State, sounds *sound.Manager) (*App, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.HideCursor()
	return &App{screen: screen, state: state, sounds: sounds}, nil
}

// Cleanup restores the terminal.
func (a *App) Cleanup() {
	a.screen.Fini()
}

// Run blocks until the run ends or the player quits.
func (a *App) Run() Outcome {
	a.draw()
	for {
		ev := a.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			a.screen.Sync()
			a.draw()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
				if a.state.Over {
					return OutcomeFinished
				}
				return OutcomeSuspended
			}
			if a.state.Over {
				// Any other key on the end screen dismisses it.
				if ev.Key() == tcell.KeyRune || ev.Key() == tcell.KeyEnter {
					return OutcomeFinished
				}
				continue
			}
			if action, ok := actionForKey(ev, a.state); ok {
				a.step(action)
			}
			a.draw()
		}
	}
}

func (a *App) step(action game.PlayerAction) {
	outcome, err := a.state.AdvanceTurn(action)
	if err != nil {
		a.status = err.Error()
		return
	}
	a.status = ""
	if a.sounds != nil {
		a.sounds.HandleEvents(outcome.Events)
	}
}

// actionForKey maps vi keys and arrows onto actions. Moving into an enemy
// attacks it.
func actionForKey(ev *tcell.EventKey, state *game.State) (game.PlayerAction, bool) {
	var dir geom.Point
	switch {
	case ev.Key() == tcell.KeyUp:
		dir = geom.Point{Y: -1}
	case ev.Key() == tcell.KeyDown:
		dir = geom.Point{Y: 1}
	case ev.Key() == tcell.KeyLeft:
		dir = geom.Point{X: -1}
	case ev.Key() == tcell.KeyRight:
		dir = geom.Point{X: 1}
	case ev.Key() == tcell.KeyRune:
		switch r := ev.Rune(); r {
		case 'k':
			dir = geom.Point{Y: -1}
		case 'j':
			dir = geom.Point{Y: 1}
		case 'h':
			dir = geom.Point{X: -1}
		case 'l':
			dir = geom.Point{X: 1}
		case 'd':
			return game.PlayerAction{Kind: game.ActionDefend}, true
		case '.', 'w':
			return game.PlayerAction{Kind: game.ActionWait}, true
		case '1', '2', '3', '4', '5', '6', '7', '8', '9':
			return game.UseItem(int(r - '1')), true
		case '0':
			return game.UseItem(9), true
		default:
			return game.PlayerAction{}, false
		}
	default:
		return game.PlayerAction{}, false
	}

	target := state.Player.Pos.Add(dir)
	if state.Dungeon.EnemyAt(state.CurrentRoom, target) != nil {
		return game.Attack(dir), true
	}
	return game.Move(dir), true
}
