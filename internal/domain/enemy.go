package domain

// EnemyType определяет поведение и базовые характеристики врага.
type EnemyType uint8

const (
	EnemyBug EnemyType = iota
	EnemyRegression
	EnemyTechDebt
	EnemyMergeConflict
)

// BaseHP возвращает базовое здоровье типа.
func (t EnemyType) BaseHP() int {
	switch t {
	case EnemyBug:
		return 10
	case EnemyRegression:
		return 20
	case EnemyTechDebt:
		return 30
	default:
		return 50
	}
}

// BaseDamage возвращает базовый урон типа.
func (t EnemyType) BaseDamage() int {
	switch t {
	case EnemyBug:
		return 3
	case EnemyRegression:
		return 5
	case EnemyTechDebt:
		return 4
	default:
		return 8
	}
}

// XPValue возвращает опыт за убийство.
func (t EnemyType) XPValue() int {
	switch t {
	case EnemyBug:
		return 10
	case EnemyRegression:
		return 20
	case EnemyTechDebt:
		return 30
	default:
		return 50
	}
}

// Symbol возвращает ASCII-символ врага.
func (t EnemyType) Symbol() byte {
	switch t {
	case EnemyBug:
		return 'B'
	case EnemyRegression:
		return 'R'
	case EnemyTechDebt:
		return 'D'
	default:
		return 'M'
	}
}

// Name возвращает отображаемое имя врага.
func (t EnemyType) Name() string {
	switch t {
	case EnemyBug:
		return "Баг"
	case EnemyRegression:
		return "Регрессия"
	case EnemyTechDebt:
		return "Техдолг"
	default:
		return "Мердж-Конфликт"
	}
}

func (t EnemyType) String() string {
	switch t {
	case EnemyBug:
		return "BUG"
	case EnemyRegression:
		return "REGRESSION"
	case EnemyTechDebt:
		return "TECH_DEBT"
	default:
		return "MERGE_CONFLICT"
	}
}

// Enemy - враг в подземелье. Каждый враг порождён одной записью активности.
type Enemy struct {
	Pos        Position  `json:"pos"`
	HP         int       `json:"hp"`
	MaxHP      int       `json:"maxHp"`
	Damage     int       `json:"damage"`
	Type       EnemyType `json:"type"`
	SourceID   string    `json:"sourceId"`
	TurnsAlive int       `json:"turnsAlive"`
	// HasSplit гарантирует, что Мердж-Конфликт делится не более одного раза.
	HasSplit bool `json:"hasSplit,omitempty"`
}

// NewEnemy создаёт врага заданного типа с базовыми характеристиками.
func NewEnemy(t EnemyType, pos Position, sourceID string) Enemy {
	hp := t.BaseHP()
	return Enemy{
		Pos:      pos,
		HP:       hp,
		MaxHP:    hp,
		Damage:   t.BaseDamage(),
		Type:     t,
		SourceID: sourceID,
	}
}

// TakeDamage наносит урон (минимум 1). Возвращает true, если враг ещё жив.
func (e *Enemy) TakeDamage(amount int) bool {
	if amount < 1 {
		amount = 1
	}
	e.HP -= amount
	return e.HP > 0
}

// AtHalfHealth проверяет, упало ли здоровье до половины и ниже.
// Порог деления Мердж-Конфликта.
func (e *Enemy) AtHalfHealth() bool {
	return e.HP <= e.MaxHP/2
}
