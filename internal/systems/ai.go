package systems

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/sudokatie/penumbra/internal/domain"
	"github.com/sudokatie/penumbra/pkg/logger"
)

// EnemyActionKind - вид намерения врага.
type EnemyActionKind uint8

const (
	EnemyWait EnemyActionKind = iota
	EnemyMove
	EnemyAttackPlayer
	EnemyRegenerate
	EnemyGrow
	EnemySplit
)

func (k EnemyActionKind) String() string {
	switch k {
	case EnemyWait:
		return "WAIT"
	case EnemyMove:
		return "MOVE"
	case EnemyAttackPlayer:
		return "ATTACK"
	case EnemyRegenerate:
		return "REGENERATE"
	case EnemyGrow:
		return "GROW"
	default:
		return "SPLIT"
	}
}

// EnemyAction - намерение врага на ход. Единственный тегированный вариант:
// его производит одна авторитетная функция DecideAction, а потребляет один
// исполнитель в движке. Логика решения нигде не дублируется, поэтому
// поведение ИИ одинаково из любого места вызова.
type EnemyAction struct {
	Kind   EnemyActionKind
	Dx, Dy int
	Amount int
}

// maxPathLength - потолок BFS. Комнаты максимум 9x9, так что 50 шагов
// хватает с запасом; потолок защищает от вырожденных лабиринтов.
const maxPathLength = 50

// DecideAction решает, что враг делает в этот ход.
// Дистанция 1 (манхэттенская) - сперва проверка спецспособности, иначе атака.
// Дальше - спецспособность, иначе шаг по кратчайшему пути BFS, иначе ожидание.
func DecideAction(enemy *domain.Enemy, player *domain.Player, room *domain.Room) EnemyAction {
	aiLogger := logger.Component("ai_system").WithField("enemy", enemy.Type.String())

	dist := enemy.Pos.ManhattanTo(player.Pos)

	if dist == 1 {
		if special, ok := shouldUseSpecial(enemy); ok {
			aiLogger.WithField("action", special.Kind.String()).Debug("Special ability chosen in melee range.")
			return special
		}
		return EnemyAction{Kind: EnemyAttackPlayer}
	}

	if special, ok := shouldUseSpecial(enemy); ok {
		aiLogger.WithField("action", special.Kind.String()).Debug("Special ability chosen.")
		return special
	}

	path := FindPath(enemy.Pos, player.Pos, room)
	if len(path) > 1 {
		next := path[1]
		return EnemyAction{
			Kind: EnemyMove,
			Dx:   next.X - enemy.Pos.X,
			Dy:   next.Y - enemy.Pos.Y,
		}
	}

	aiLogger.Debug("Target unreachable, waiting.")
	return EnemyAction{Kind: EnemyWait}
}

// shouldUseSpecial проверяет спецспособность врага.
func shouldUseSpecial(enemy *domain.Enemy) (EnemyAction, bool) {
	switch enemy.Type {
	case domain.EnemyRegression:
		// Регрессия отращивает +2 HP ниже половины здоровья.
		if enemy.HP < enemy.MaxHP/2 {
			return EnemyAction{Kind: EnemyRegenerate, Amount: 2}, true
		}
	case domain.EnemyTechDebt:
		// Техдолг копит урон: +1 за ход, пока урон меньше двойной базы
		// и враг пережил хотя бы один ход.
		if enemy.TurnsAlive > 0 && enemy.Damage < enemy.Type.BaseDamage()*2 {
			return EnemyAction{Kind: EnemyGrow, Amount: 1}, true
		}
	case domain.EnemyMergeConflict:
		// Мердж-Конфликт делится на половине здоровья. Один раз.
		if enemy.AtHalfHealth() && !enemy.HasSplit {
			return EnemyAction{Kind: EnemySplit}, true
		}
	case domain.EnemyBug:
		// У багов спецспособности нет.
	}
	return EnemyAction{}, false
}

// pathNeighborDeltas - фиксированный порядок обхода соседей (север, юг,
// запад, восток). Порядок определяет, какой из равных путей победит,
// поэтому менять его нельзя без пересчёта реплеев.
var pathNeighborDeltas = [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// FindPath ищет кратчайший путь BFS по 4-связным проходимым клеткам.
// Очередь несёт полные пути; первый путь, достигший цели, побеждает -
// никакой стоимости, кроме числа шагов, нет. Возвращает nil, если цель
// недостижима или путь длиннее maxPathLength.
func FindPath(from, to domain.Position, room *domain.Room) []domain.Position {
	if from == to {
		return []domain.Position{from}
	}

	visited := mapset.New[domain.Position]()
	visited.Put(from)

	queue := [][]domain.Position{{from}}

	for len(queue) > 0 {
		path := queue[0]
		queue = queue[1:]
		current := path[len(path)-1]

		for _, d := range pathNeighborDeltas {
			next := current.Shift(d[0], d[1])

			if next == to {
				result := make([]domain.Position, len(path), len(path)+1)
				copy(result, path)
				return append(result, next)
			}

			if visited.Has(next) || !room.IsWalkable(next.X, next.Y) {
				continue
			}
			visited.Put(next)

			newPath := make([]domain.Position, len(path), len(path)+1)
			copy(newPath, path)
			newPath = append(newPath, next)

			if len(newPath) < maxPathLength {
				queue = append(queue, newPath)
			}
		}
	}

	return nil
}
