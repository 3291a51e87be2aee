package entity

import (
	"github.com/lixenwraith/penumbra/geom"
	"github.com/lixenwraith/penumbra/parameter"
)

// ItemID is a stable identifier unique within one dungeon.
type ItemID int

// ItemKind determines an item's effect on use.
type ItemKind int

const (
	ItemMapScroll ItemKind = iota
	ItemHealthPotion
	ItemBuffItem
	ItemEnergyVial
)

func (k ItemKind) String() string {
	switch k {
	case ItemMapScroll:
		return "Map Scroll"
	case ItemHealthPotion:
		return "Health Potion"
	case ItemBuffItem:
		return "Focus Crystal"
	case ItemEnergyVial:
		return "Energy Vial"
	default:
		return "Unknown"
	}
}

// Rarity scales item potency.
type Rarity int

const (
	RarityCommon Rarity = iota
	RarityUncommon
	RarityRare
	RarityLegendary
)

func (r Rarity) String() string {
	switch r {
	case RarityCommon:
		return "Common"
	case RarityUncommon:
		return "Uncommon"
	case RarityRare:
		return "Rare"
	case RarityLegendary:
		return "Legendary"
	default:
		return "Unknown"
	}
}

// RarityForMagnitude maps an event magnitude onto a rarity band.
func RarityForMagnitude(magnitude uint) Rarity {
	switch {
	case magnitude >= parameter.RarityLegendaryMagnitude:
		return RarityLegendary
	case magnitude >= parameter.RarityRareMagnitude:
		return RarityRare
	case magnitude >= parameter.RarityUncommonMagnitude:
		return RarityUncommon
	default:
		return RarityCommon
	}
}

// Item is a pickup. Immutable once generated; consumed on use.
type Item struct {
	ID     ItemID     `json:"id"`
	Kind   ItemKind   `json:"kind"`
	Rarity Rarity     `json:"rarity"`
	Pos    geom.Point `json:"pos"`
}

// HealAmount for a HealthPotion of this rarity.
func (i Item) HealAmount() int {
	switch i.Rarity {
	case RarityLegendary:
		return 50
	case RarityRare:
		return 35
	case RarityUncommon:
		return 20
	default:
		return 10
	}
}

// BuffAmount is the damage bonus a BuffItem of this rarity grants.
func (i Item) BuffAmount() int {
	switch i.Rarity {
	case RarityLegendary:
		return 10
	case RarityRare:
		return 6
	case RarityUncommon:
		return 4
	default:
		return 2
	}
}

// EnergyAmount for an EnergyVial of this rarity.
func (i Item) EnergyAmount() int {
	switch i.Rarity {
	case RarityLegendary:
		return 30
	case RarityRare:
		return 20
	case RarityUncommon:
		return 10
	default:
		return 5
	}
}
