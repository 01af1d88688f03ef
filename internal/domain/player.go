package domain

// PlayerClass определяет стартовые характеристики героя.
type PlayerClass uint8

const (
	ClassCodeWarrior PlayerClass = iota
	ClassMeetingSurvivor
	ClassInboxKnight
	ClassWanderer
)

func (c PlayerClass) String() string {
	switch c {
	case ClassCodeWarrior:
		return "CODE_WARRIOR"
	case ClassMeetingSurvivor:
		return "MEETING_SURVIVOR"
	case ClassInboxKnight:
		return "INBOX_KNIGHT"
	default:
		return "WANDERER"
	}
}

// Player - герой. GameState владеет им монопольно.
type Player struct {
	Pos       Position    `json:"pos"`
	HP        int         `json:"hp"`
	MaxHP     int         `json:"maxHp"`
	Energy    int         `json:"energy"`
	MaxEnergy int         `json:"maxEnergy"`
	Focus     int         `json:"focus"`
	MaxFocus  int         `json:"maxFocus"`
	Damage    int         `json:"damage"`
	Class     PlayerClass `json:"class"`
	Level     int         `json:"level"`
	XP        int         `json:"xp"`
	Inventory []Item      `json:"inventory"`
	Defending bool        `json:"defending"`
}

// NewPlayer создаёт героя выбранного класса.
func NewPlayer(class PlayerClass) *Player {
	hpBonus, focusBonus, damageBonus := 0, 0, 0
	switch class {
	case ClassCodeWarrior:
		damageBonus = 10
	case ClassMeetingSurvivor:
		hpBonus = 20
	case ClassInboxKnight:
		focusBonus = 10
	case ClassWanderer:
		hpBonus, focusBonus, damageBonus = 5, 5, 5
	}

	return &Player{
		Pos:       Position{X: 1, Y: 1},
		HP:        50 + hpBonus,
		MaxHP:     50 + hpBonus,
		Energy:    100,
		MaxEnergy: 100,
		Focus:     50 + focusBonus,
		MaxFocus:  50 + focusBonus,
		Damage:    10 + damageBonus,
		Class:     class,
		Level:     1,
	}
}

// TakeDamage наносит герою урон (минимум 1). Возвращает true, если герой жив.
// Урон приходит уже с учётом защиты: халвинг за Defending выполняет боевая
// система, здесь флаг только сбрасывается.
func (p *Player) TakeDamage(amount int) bool {
	if amount < 1 {
		amount = 1
	}
	p.HP -= amount
	p.Defending = false
	return p.HP > 0
}

// Heal лечит героя, не превышая максимум.
func (p *Player) Heal(amount int) {
	p.HP += amount
	if p.HP > p.MaxHP {
		p.HP = p.MaxHP
	}
}

// UseEnergy тратит энергию. Возвращает false, если её не хватило
// (тогда энергия не тратится вовсе).
func (p *Player) UseEnergy(amount int) bool {
	if p.Energy < amount {
		return false
	}
	p.Energy -= amount
	return true
}

// RegenEnergy восстанавливает энергию, не превышая максимум.
func (p *Player) RegenEnergy(amount int) {
	p.Energy += amount
	if p.Energy > p.MaxEnergy {
		p.Energy = p.MaxEnergy
	}
}

// RestoreFocus восстанавливает фокус, не превышая максимум.
func (p *Player) RestoreFocus(amount int) {
	p.Focus += amount
	if p.Focus > p.MaxFocus {
		p.Focus = p.MaxFocus
	}
}

// AddXP начисляет опыт. Возвращает true, если герой взял уровень.
// Порог - level*100; остаток переносится, максимум HP растёт на 10,
// здоровье восстанавливается до нового максимума.
func (p *Player) AddXP(amount int) bool {
	p.XP += amount
	threshold := p.Level * 100
	if p.XP < threshold {
		return false
	}
	p.XP -= threshold
	p.Level++
	p.MaxHP += 10
	p.HP = p.MaxHP
	return true
}

// InventoryCapacity - предел инвентаря героя.
const InventoryCapacity = 10

// PickUpItem кладёт предмет в инвентарь. Возвращает false при переполнении.
func (p *Player) PickUpItem(item Item) bool {
	if len(p.Inventory) >= InventoryCapacity {
		return false
	}
	p.Inventory = append(p.Inventory, item)
	return true
}
