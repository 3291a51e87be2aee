package entity

import (
	"github.com/lixenwraith/penumbra/geom"
	"github.com/lixenwraith/penumbra/parameter"
)

// StatModifiers are the permanent bonuses the progression ledger grants a new
// player. Applied once at construction.
type StatModifiers struct {
	BonusMaxHP       int `json:"bonus_max_hp"`
	BonusMaxEnergy   int `json:"bonus_max_energy"`
	BonusBaseDamage  int `json:"bonus_base_damage"`
	StartingItemTier int `json:"starting_item_tier"`
	LootLuckPercent  int `json:"loot_luck_percent"`
}

// Player is the run protagonist. It outlives any single dungeon only for the
// progression ledger to read at run end.
type Player struct {
	Pos       geom.Point  `json:"pos"`
	HP        int         `json:"hp"`
	MaxHP     int         `json:"max_hp"`
	Energy    int         `json:"energy"`
	MaxEnergy int         `json:"max_energy"`
	Damage    int         `json:"damage"`
	Defense   int         `json:"defense"`
	Class     PlayerClass `json:"class"`
	Level     int         `json:"level"`
	XP        int         `json:"xp"`
	Defending bool        `json:"defending"`
	Inventory []Item      `json:"inventory"`

	// LootLuck carries the progression bonus into item drops.
	LootLuck int `json:"loot_luck"`
}

// NewPlayer builds a player for a fresh run from class presets and
// progression modifiers.
func NewPlayer(class PlayerClass, mods StatModifiers) *Player {
	hpBonus, energyBonus, damageBonus := class.Bonuses()
	maxHP := parameter.PlayerBaseHP + hpBonus + mods.BonusMaxHP
	maxEnergy := parameter.PlayerBaseEnergy + energyBonus + mods.BonusMaxEnergy

	p := &Player{
		HP:        maxHP,
		MaxHP:     maxHP,
		Energy:    maxEnergy,
		MaxEnergy: maxEnergy,
		Damage:    parameter.PlayerBaseDamage + damageBonus + mods.BonusBaseDamage,
		Defense:   parameter.PlayerBaseDefense,
		Class:     class,
		Level:     1,
		LootLuck:  mods.LootLuckPercent,
	}

	if mods.StartingItemTier > 0 {
		tier := mods.StartingItemTier
		if tier > int(RarityLegendary) {
			tier = int(RarityLegendary)
		}
		p.Inventory = append(p.Inventory, Item{Kind: ItemHealthPotion, Rarity: Rarity(tier)})
	}
	return p
}

// TakeDamage reduces hp, clamping at zero, and clears any defensive stance.
// Returns the damage actually dealt after stance reduction and whether the
// player died.
func (p *Player) TakeDamage(amount int) (int, bool) {
	if p.Defending {
		amount /= parameter.CombatDefendReduction
		if amount < parameter.CombatMinDamage {
			amount = parameter.CombatMinDamage
		}
	}
	p.Defending = false
	p.HP -= amount
	if p.HP < 0 {
		p.HP = 0
	}
	return amount, p.HP == 0
}

// Heal restores hp up to max.
func (p *Player) Heal(amount int) {
	p.HP += amount
	if p.HP > p.MaxHP {
		p.HP = p.MaxHP
	}
}

// SpendEnergy deducts the cost if affordable, reporting success.
func (p *Player) SpendEnergy(amount int) bool {
	if p.Energy < amount {
		return false
	}
	p.Energy -= amount
	return true
}

// RegenEnergy restores energy up to max.
func (p *Player) RegenEnergy(amount int) {
	p.Energy += amount
	if p.Energy > p.MaxEnergy {
		p.Energy = p.MaxEnergy
	}
}

// AddXP awards experience and reports whether the player leveled up.
// Level-ups raise max hp and fully heal.
func (p *Player) AddXP(amount int) bool {
	p.XP += amount
	threshold := p.Level * parameter.PlayerXPPerLevel
	if p.XP < threshold {
		return false
	}
	p.XP -= threshold
	p.Level++
	p.MaxHP += parameter.PlayerLevelHPBonus
	p.HP = p.MaxHP
	return true
}

// Pickup adds an item to the inventory, reporting whether there was room.
func (p *Player) Pickup(item Item) bool {
	if len(p.Inventory) >= parameter.PlayerInventoryCap {
		return false
	}
	p.Inventory = append(p.Inventory, item)
	return true
}

// RemoveItem takes the item at index out of the inventory.
func (p *Player) RemoveItem(index int) (Item, bool) {
	if index < 0 || index >= len(p.Inventory) {
		return Item{}, false
	}
	item := p.Inventory[index]
	p.Inventory = append(p.Inventory[:index], p.Inventory[index+1:]...)
	return item, true
}
