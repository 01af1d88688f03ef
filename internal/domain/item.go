package domain

// ItemType - категория предмета.
type ItemType uint8

const (
	ItemConsumable ItemType = iota
	ItemEquipment
	ItemScroll
)

func (t ItemType) String() string {
	switch t {
	case ItemConsumable:
		return "CONSUMABLE"
	case ItemEquipment:
		return "EQUIPMENT"
	default:
		return "SCROLL"
	}
}

// Rarity - редкость предмета. Определяется весом породившей записи.
type Rarity uint8

const (
	RarityCommon Rarity = iota
	RarityUncommon
	RarityRare
	RarityLegendary
)

func (r Rarity) String() string {
	switch r {
	case RarityCommon:
		return "COMMON"
	case RarityUncommon:
		return "UNCOMMON"
	case RarityRare:
		return "RARE"
	default:
		return "LEGENDARY"
	}
}

// RarityForMagnitude вычисляет редкость по весу записи.
func RarityForMagnitude(magnitude int) Rarity {
	switch {
	case magnitude < 50:
		return RarityCommon
	case magnitude < 200:
		return RarityUncommon
	case magnitude < 500:
		return RarityRare
	default:
		return RarityLegendary
	}
}

// Stat - характеристика, на которую действует бафф.
type Stat uint8

const (
	StatMaxHP Stat = iota
	StatMaxEnergy
	StatFocus
	StatDamage
)

func (s Stat) String() string {
	switch s {
	case StatMaxHP:
		return "MAX_HP"
	case StatMaxEnergy:
		return "MAX_ENERGY"
	case StatFocus:
		return "FOCUS"
	default:
		return "DAMAGE"
	}
}

// EffectKind - вид эффекта предмета.
type EffectKind uint8

const (
	EffectHeal EffectKind = iota
	EffectRestoreEnergy
	EffectDamage
	EffectBuff
	EffectRevealMap
)

// Effect - эффект предмета. Значимость полей зависит от Kind:
// Heal/RestoreEnergy/Damage используют Amount, Buff - Stat+Amount+Duration,
// RevealMap не несёт параметров.
type Effect struct {
	Kind     EffectKind `json:"kind"`
	Amount   int        `json:"amount,omitempty"`
	Stat     Stat       `json:"stat,omitempty"`
	Duration int        `json:"duration,omitempty"`
}

// Item - предмет в подземелье или в инвентаре.
type Item struct {
	Name     string   `json:"name"`
	Type     ItemType `json:"type"`
	Effect   Effect   `json:"effect"`
	Rarity   Rarity   `json:"rarity"`
	Pos      Position `json:"pos"`
	SourceID string   `json:"sourceId"`
}
