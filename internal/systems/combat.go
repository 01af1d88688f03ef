package systems

import (
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/sudokatie/penumbra/internal/domain"
	"github.com/sudokatie/penumbra/pkg/logger"
)

// Шансы попадания и критического удара.
const (
	baseHitChance  = 0.80
	minHitChance   = 0.05
	maxHitChance   = 0.95
	critChance     = 0.05
	enemyHitChance = 0.80
)

// CombatResult - исход одного боевого действия.
type CombatResult struct {
	Hit      bool
	Damage   int
	Killed   bool
	Critical bool
	Message  string
}

// PlayerAttack разрешает атаку героя по врагу.
// Чистая функция, кроме мутации HP цели; каждая проверка потребляет
// ровно один бросок переданного генератора.
func PlayerAttack(player *domain.Player, enemy *domain.Enemy, rng *rand.Rand) CombatResult {
	combatLogger := logger.Component("combat_system").WithFields(logrus.Fields{
		"attacker": "player",
		"target":   enemy.Type.String(),
	})

	hitChance := CalculateHitChance(player.Focus)
	if rng.Float64() > hitChance {
		combatLogger.WithField("hit_chance", hitChance).Debug("Player attack missed.")
		return CombatResult{Message: "Вы промахнулись!"}
	}

	// Независимый бросок на критический удар.
	critical := rng.Float64() < critChance

	damage := CalculateDamage(player.Damage, player.Level, false)
	if critical {
		damage *= 2
	}

	alive := enemy.TakeDamage(damage)

	combatLogger.WithFields(logrus.Fields{
		"damage":      damage,
		"critical":    critical,
		"target_hp":   enemy.HP,
		"target_died": !alive,
	}).Info("Player attack resolved.")

	var msg string
	switch {
	case !alive:
		msg = fmt.Sprintf("Вы наносите %d урона и убиваете %s!", damage, enemy.Type.Name())
	case critical:
		msg = fmt.Sprintf("Критический удар! %d урона по %s!", damage, enemy.Type.Name())
	default:
		msg = fmt.Sprintf("Вы наносите %d урона по %s.", damage, enemy.Type.Name())
	}

	return CombatResult{
		Hit:      true,
		Damage:   damage,
		Killed:   !alive,
		Critical: critical,
		Message:  msg,
	}
}

// EnemyAttack разрешает атаку врага по герою.
// Флаг Defending героя сбрасывается после разрешения независимо от исхода.
func EnemyAttack(enemy *domain.Enemy, player *domain.Player, rng *rand.Rand) CombatResult {
	combatLogger := logger.Component("combat_system").WithFields(logrus.Fields{
		"attacker": enemy.Type.String(),
		"target":   "player",
	})

	if rng.Float64() > enemyHitChance {
		// Защитная стойка одноразовая: промах тоже её расходует.
		player.Defending = false
		combatLogger.Debug("Enemy attack missed.")
		return CombatResult{Message: fmt.Sprintf("%s промахивается!", enemy.Type.Name())}
	}

	damage := CalculateDamage(enemy.Damage, 1, player.Defending)
	alive := player.TakeDamage(damage)

	combatLogger.WithFields(logrus.Fields{
		"damage":      damage,
		"player_hp":   player.HP,
		"player_died": !alive,
	}).Info("Enemy attack resolved.")

	var msg string
	if !alive {
		msg = fmt.Sprintf("%s наносит %d урона. Вы погибаете!", enemy.Type.Name(), damage)
	} else {
		msg = fmt.Sprintf("%s наносит %d урона.", enemy.Type.Name(), damage)
	}

	return CombatResult{
		Hit:     true,
		Damage:  damage,
		Killed:  !alive,
		Message: msg,
	}
}

// CalculateHitChance возвращает шанс попадания героя по фокусу.
// База 80%, +1% за каждые 10 фокуса, в пределах [5%, 95%].
func CalculateHitChance(focus int) float64 {
	chance := baseHitChance + float64(focus)/1000.0
	if chance < minHitChance {
		return minHitChance
	}
	if chance > maxHitChance {
		return maxHitChance
	}
	return chance
}

// CalculateDamage вычисляет урон с модификаторами.
// Масштаб по уровню: +10% за уровень (с округлением вниз).
// Защитная стойка режет урон пополам (целочисленно). Минимум всегда 1.
func CalculateDamage(base, level int, defending bool) int {
	scaled := int(float64(base) * (1.0 + float64(level-1)*0.1))
	if defending {
		scaled /= 2
	}
	if scaled < 1 {
		return 1
	}
	return scaled
}
