package dungeon

import (
	"math/rand"

	"github.com/sudokatie/penumbra/internal/domain"
	"github.com/sudokatie/penumbra/pkg/logger"
)

// Потолок врагов в одной комнате.
const maxEnemiesPerRoom = 10

// SpawnEnemies заселяет комнату врагами по её записям.
// Число врагов = min(записей, площадь/4, 10); первые count записей в исходном
// порядке получают по случайной свободной внутренней клетке без повторов.
// Святилища безопасны - спавн пропускается целиком.
func SpawnEnemies(room *domain.Room, records []domain.ActivityRecord, rng *rand.Rand) {
	if room.Type == domain.RoomSanctuary {
		return
	}

	count := len(records)
	if areaCap := room.Width * room.Height / 4; count > areaCap {
		count = areaCap
	}
	if count > maxEnemiesPerRoom {
		count = maxEnemiesPerRoom
	}

	positions := room.FreePositions()

	// Стартовая клетка героя (сразу за входом) по возможности остаётся
	// без врагов. В комнате 3x3 она единственная внутренняя, тогда
	// исключение снимается: записи дня обязаны породить врагов.
	start := domain.Position{X: 1, Y: room.Height / 2}
	for i, p := range positions {
		if p == start {
			if len(positions) > 1 {
				positions = append(positions[:i], positions[i+1:]...)
			}
			break
		}
	}

	if len(positions) == 0 || count == 0 {
		return
	}

	for _, record := range records[:count] {
		if len(positions) == 0 {
			break
		}
		idx := rng.Intn(len(positions))
		pos := positions[idx]
		positions = append(positions[:idx], positions[idx+1:]...)

		enemy := domain.NewEnemy(enemyTypeForRecord(record), pos, record.ID)
		room.Enemies = append(room.Enemies, enemy)
	}

	logger.Component("dungeon_populator").WithField("room", room.ID).
		WithField("enemies", len(room.Enemies)).Debug("Enemies spawned.")
}

// enemyTypeForRecord классифицирует запись в тип врага.
func enemyTypeForRecord(record domain.ActivityRecord) domain.EnemyType {
	if record.IsSpecial {
		return domain.EnemyMergeConflict
	}
	if record.MessageContains("revert", "rollback") {
		return domain.EnemyRegression
	}
	if record.MessageContains("debt", "refactor", "cleanup") {
		return domain.EnemyTechDebt
	}
	if record.Magnitude < 20 {
		return domain.EnemyBug
	}
	// Крупные записи - накопленная сложность.
	return domain.EnemyTechDebt
}

// SpawnItems раскладывает предметы по комнате.
// Сокровищница получает случайные 2-3 предмета; остальные комнаты -
// clamp(записей/4, 1, 3). Позиции берутся из того же тающего пула,
// что и у врагов: наложений не бывает.
func SpawnItems(room *domain.Room, records []domain.ActivityRecord, rng *rand.Rand) {
	positions := room.FreePositions()
	if len(positions) == 0 {
		return
	}

	var count int
	if room.Type == domain.RoomTreasure {
		count = 2 + rng.Intn(2)
	} else {
		count = len(records) / 4
		if count < 1 {
			count = 1
		}
		if count > 3 {
			count = 3
		}
	}
	if count > len(records) {
		count = len(records)
	}

	for _, record := range records[:count] {
		if len(positions) == 0 {
			break
		}
		idx := rng.Intn(len(positions))
		pos := positions[idx]
		positions = append(positions[:idx], positions[idx+1:]...)

		item := itemForRecord(record)
		item.Pos = pos
		room.Items = append(room.Items, item)
	}
}

// itemForRecord создаёт предмет по характеру записи.
// Величина эффекта масштабируется редкостью, редкость - весом записи.
func itemForRecord(record domain.ActivityRecord) domain.Item {
	rarity := domain.RarityForMagnitude(record.Magnitude)

	var (
		name   string
		iType  domain.ItemType
		effect domain.Effect
	)

	switch {
	case record.MessageContains("doc", "readme"):
		name = "Свиток Карты"
		iType = domain.ItemScroll
		effect = domain.Effect{Kind: domain.EffectRevealMap}

	case record.MessageContains("test"):
		name = "Исцеляющий Коммит"
		iType = domain.ItemConsumable
		effect = domain.Effect{Kind: domain.EffectHeal, Amount: healAmount(rarity)}

	case record.MessageContains("config", "setting"):
		name = "Кристалл Фокуса"
		iType = domain.ItemConsumable
		effect = domain.Effect{
			Kind:     domain.EffectBuff,
			Stat:     domain.StatFocus,
			Amount:   buffAmount(rarity),
			Duration: 5,
		}

	default:
		name = "Флакон Энергии"
		iType = domain.ItemConsumable
		effect = domain.Effect{Kind: domain.EffectRestoreEnergy, Amount: energyAmount(rarity)}
	}

	return domain.Item{
		Name:     name,
		Type:     iType,
		Effect:   effect,
		Rarity:   rarity,
		SourceID: record.ID,
	}
}

func healAmount(r domain.Rarity) int {
	switch r {
	case domain.RarityCommon:
		return 10
	case domain.RarityUncommon:
		return 20
	case domain.RarityRare:
		return 35
	default:
		return 50
	}
}

func buffAmount(r domain.Rarity) int {
	switch r {
	case domain.RarityCommon:
		return 2
	case domain.RarityUncommon:
		return 4
	case domain.RarityRare:
		return 6
	default:
		return 10
	}
}

func energyAmount(r domain.Rarity) int {
	switch r {
	case domain.RarityCommon:
		return 5
	case domain.RarityUncommon:
		return 10
	case domain.RarityRare:
		return 20
	default:
		return 30
	}
}
