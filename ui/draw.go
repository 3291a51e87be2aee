package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/penumbra/entity"
	"github.com/lixenwraith/penumbra/geom"
	"github.com/lixenwraith/penumbra/world"
)

const (
	hudLines     = 2
	messageLines = 4
)

var (
	styleDefault  = tcell.StyleDefault
	stylePlayer   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleWall     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleFloor    = tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray)
	styleHealing  = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleDoor     = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleDim      = tcell.StyleDefault.Foreground(tcell.ColorDarkBlue)
	styleItem     = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleHUD      = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleStatus   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleMessages = tcell.StyleDefault.Foreground(tcell.ColorSilver)
)

func enemyStyle(kind entity.EnemyKind) tcell.Style {
	switch kind {
	case entity.EnemyBug:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen)
	case entity.EnemyRegression:
		return tcell.StyleDefault.Foreground(tcell.ColorPurple)
	case entity.EnemyTechDebt:
		return tcell.StyleDefault.Foreground(tcell.ColorOrange)
	case entity.EnemyMergeConflict:
		return tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	default:
		return styleDefault
	}
}

func tileStyle(kind world.TileKind) tcell.Style {
	switch kind {
	case world.TileWall:
		return styleWall
	case world.TileHealing:
		return styleHealing
	case world.TileEntrance, world.TileExit:
		return styleDoor
	default:
		return styleFloor
	}
}

func (a *App) draw() {
	a.screen.Clear()
	width, height := a.screen.Size()

	mapHeight := height - hudLines - messageLines
	if mapHeight < 1 || width < 10 {
		a.screen.Show()
		return
	}

	a.drawMap(width, mapHeight)
	a.drawHUD(width, mapHeight)
	a.drawMessages(width, mapHeight+hudLines, messageLines)

	if a.state.Over {
		a.drawEndBanner(width, mapHeight)
	}
	a.screen.Show()
}

// drawMap renders the camera-centered viewport. Visible tiles draw full,
// revealed-but-unseen tiles draw dimmed, everything else stays dark.
func (a *App) drawMap(width, height int) {
	s := a.state
	offsetX := s.Player.Pos.X - width/2
	offsetY := s.Player.Pos.Y - height/2

	for sy := 0; sy < height; sy++ {
		for sx := 0; sx < width; sx++ {
			p := geom.Point{X: sx + offsetX, Y: sy + offsetY}
			tile := s.Dungeon.Tile(p)
			if tile == world.TileVoid {
				continue
			}

			visible := s.Visible[p]
			if !visible && !s.Revealed[p] {
				continue
			}

			r, style := a.cellAt(p, tile, visible)
			a.screen.SetContent(sx, sy, r, nil, style)
		}
	}
}

func (a *App) cellAt(p geom.Point, tile world.TileKind, visible bool) (rune, tcell.Style) {
	s := a.state
	if !visible {
		return tile.Symbol(), styleDim
	}

	if p == s.Player.Pos {
		return '@', stylePlayer
	}
	if e := s.Dungeon.EnemyAt(s.CurrentRoom, p); e != nil {
		return e.Kind.Symbol(), enemyStyle(e.Kind)
	}
	if id, ok := s.Dungeon.ItemAt(s.CurrentRoom, p); ok {
		if item, found := s.Dungeon.Item(id); found {
			return itemRune(item.Kind), styleItem
		}
	}
	return tile.Symbol(), tileStyle(tile)
}

func itemRune(kind entity.ItemKind) rune {
	switch kind {
	case entity.ItemMapScroll:
		return '?'
	case entity.ItemHealthPotion:
		return '!'
	case entity.ItemBuffItem:
		return '*'
	case entity.ItemEnergyVial:
		return '='
	default:
		return '$'
	}
}

func (a *App) drawHUD(width, y int) {
	s := a.state
	p := s.Player
	line := fmt.Sprintf("HP %d/%d  EN %d/%d  LV %d  XP %d  DMG %d  items %d/10  turn %d",
		p.HP, p.MaxHP, p.Energy, p.MaxEnergy, p.Level, p.XP, p.Damage, len(p.Inventory), s.Turn)
	a.drawText(0, y, width, line, styleHUD)

	if a.status != "" {
		a.drawText(0, y+1, width, a.status, styleStatus)
	} else if room := s.Room(); room != nil {
		a.drawText(0, y+1, width, fmt.Sprintf("%s room  %s", room.Kind, room.Date.Format("2006-01-02")), styleHUD)
	}
}

func (a *App) drawMessages(width, y, lines int) {
	msgs := a.state.Messages
	start := len(msgs) - lines
	if start < 0 {
		start = 0
	}
	for i, msg := range msgs[start:] {
		a.drawText(0, y+i, width, msg, styleMessages)
	}
}

func (a *App) drawEndBanner(width, mapHeight int) {
	var text string
	if a.state.Victory {
		text = " VICTORY - press any key "
	} else {
		text = fmt.Sprintf(" DEFEATED by %s - press any key ", a.state.DeathCause)
	}
	x := (width - len(text)) / 2
	if x < 0 {
		x = 0
	}
	a.drawText(x, mapHeight/2, width, text, tcell.StyleDefault.Reverse(true).Bold(true))
}

func (a *App) drawText(x, y, maxWidth int, text string, style tcell.Style) {
	for i, r := range text {
		if x+i >= maxWidth {
			break
		}
		a.screen.SetContent(x+i, y, r, nil, style)
	}
}
