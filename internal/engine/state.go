package engine

import (
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"

	"github.com/sudokatie/penumbra/internal/domain"
	"github.com/sudokatie/penumbra/internal/systems"
	"github.com/sudokatie/penumbra/pkg/dungeon"
	"github.com/sudokatie/penumbra/pkg/logger"
	"github.com/sudokatie/penumbra/pkg/utils"
)

// Радиус обзора героя и потолок журнала сообщений.
const (
	fovRadius   = 5
	maxMessages = 100
)

// GameState - полное состояние партии. Владеет миром и героем монопольно:
// весь доступ идёт через ProcessAction/ProcessEnemies, снаружи конкурентного
// доступа нет. Если управляющему слою нужен параллелизм, он сериализует
// вызовы сам (по одному движку на партию).
type GameState struct {
	World    *domain.World  `json:"world"`
	Player   *domain.Player `json:"player"`
	Turn     uint32         `json:"turn"`
	Seed     uint64         `json:"seed"`
	GameOver bool           `json:"gameOver"`
	Victory  bool           `json:"victory"`

	// Visible и Messages - производное и эфемерное состояние:
	// не сериализуются, восстанавливаются после загрузки.
	Visible  mapset.Set[domain.Position] `json:"-"`
	Messages []string                    `json:"-"`

	recorder *Recorder
}

// New создаёт партию: генерирует мир из записей активности и ставит героя
// на стартовую клетку первой комнаты.
func New(records []domain.ActivityRecord, cfg Config) (*GameState, error) {
	world, err := dungeon.Generate(records, cfg.Seed)
	if err != nil {
		return nil, fmt.Errorf("engine: new game: %w", err)
	}

	player := domain.NewPlayer(domain.PlayerClass(cfg.Class))
	first := world.Current()
	player.Pos = domain.Position{X: 1, Y: first.Height / 2}

	g := &GameState{
		World:  world,
		Player: player,
		Seed:   cfg.Seed,
	}
	g.UpdateFOV()
	g.logMessage(fmt.Sprintf("Вы входите в %s.", first.Type.Name()))

	logger.Component("engine").WithFields(logrus.Fields{
		"seed":  cfg.Seed,
		"rooms": len(world.Rooms),
		"class": player.Class.String(),
	}).Info("New game started.")

	return g, nil
}

// CurrentRoom возвращает комнату, в которой находится герой.
func (g *GameState) CurrentRoom() *domain.Room {
	return g.World.Current()
}

// ProcessAction обрабатывает одно действие героя и возвращает порождённые
// события. Действие при нехватке энергии отклоняется ДО любых бросков
// генератора и ДО продвижения счётчика хода: отклонённое действие не
// оставляет следа в детерминированном потоке партии. Любое принятое
// действие продвигает ход, даже если упёрлось в стену.
func (g *GameState) ProcessAction(action domain.Action) []GameEvent {
	if g.GameOver {
		return nil
	}

	cost := action.EnergyCost()
	if !g.Player.UseEnergy(cost) {
		g.logMessage("Недостаточно энергии!")
		return nil
	}

	actionLogger := logger.Component("engine").WithFields(logrus.Fields{
		"turn":   g.Turn,
		"action": action.Type.String(),
	})

	var events []GameEvent
	switch action.Type {
	case domain.ActionMove:
		events = g.handleMove(action)
	case domain.ActionAttack:
		events = g.handleAttack(action)
	case domain.ActionDefend:
		events = g.handleDefend()
	case domain.ActionUseItem:
		events = g.handleUseItem(action)
	case domain.ActionWait:
		events = g.handleWait()
	default:
		actionLogger.Warn("Unknown action ignored.")
		g.refund(cost)
		return nil
	}

	// В реплей попадают только действия, дошедшие до известной ветки:
	// неизвестный тип возвращает энергию и не оставляет следа.
	g.recordAction(action)
	g.Turn++
	actionLogger.WithField("events", len(events)).Debug("Action processed.")
	return events
}

// refund возвращает энергию за действие, которое не смогло исполниться.
// Ход при этом всё равно продвигается: неудачная попытка - тоже ход.
func (g *GameState) refund(cost int) {
	g.Player.Energy += cost
	if g.Player.Energy > g.Player.MaxEnergy {
		g.Player.Energy = g.Player.MaxEnergy
	}
}

func (g *GameState) handleMove(action domain.Action) []GameEvent {
	if action.Dx*action.Dx+action.Dy*action.Dy != 1 {
		// Только единичные кардинальные векторы.
		g.refund(domain.MoveCost)
		g.logMessage("Невозможный ход.")
		return nil
	}

	room := g.World.Current()
	next := g.Player.Pos.Shift(action.Dx, action.Dy)

	tile, ok := room.TileAt(next.X, next.Y)
	if !ok {
		g.refund(domain.MoveCost)
		g.logMessage("Туда нельзя.")
		return nil
	}

	// Шаг в закрытую дверь открывает её и стоит хода.
	if tile.Kind == domain.TileDoor && !tile.DoorOpen {
		tile.DoorOpen = true
		room.SetTile(next.X, next.Y, tile)
		g.UpdateFOV()
		g.logMessage("Дверь открыта.")
		return []GameEvent{{Type: EventDoorOpened, X: next.X, Y: next.Y}}
	}

	if !tile.Walkable() || room.EnemyAt(next.X, next.Y) != nil {
		g.refund(domain.MoveCost)
		g.logMessage("Туда нельзя.")
		return nil
	}

	g.Player.Pos = next
	g.UpdateFOV()

	events := []GameEvent{{Type: EventPlayerMoved, X: next.X, Y: next.Y}}
	events = append(events, g.pickUpAt(room, next)...)
	events = append(events, g.checkRoomExit()...)
	return events
}

// pickUpAt подбирает предмет с клетки героя. Полный инвентарь оставляет
// предмет на полу.
func (g *GameState) pickUpAt(room *domain.Room, pos domain.Position) []GameEvent {
	item := room.ItemAt(pos.X, pos.Y)
	if item == nil {
		return nil
	}
	if len(g.Player.Inventory) >= domain.InventoryCapacity {
		g.logMessage("Инвентарь полон.")
		return nil
	}

	taken := room.RemoveItemAt(pos.X, pos.Y)
	g.Player.PickUpItem(*taken)
	g.logMessage(fmt.Sprintf("Вы подбираете: %s.", taken.Name))
	return []GameEvent{{Type: EventItemPickedUp, ItemName: taken.Name}}
}

func (g *GameState) handleAttack(action domain.Action) []GameEvent {
	room := g.World.Current()
	dx, dy := action.Dir.Delta()
	target := g.Player.Pos.Shift(dx, dy)

	enemy := room.EnemyAt(target.X, target.Y)
	if enemy == nil {
		g.refund(domain.AttackCost)
		g.logMessage("Там никого нет.")
		return nil
	}

	rng := utils.TurnRNG(g.Seed, g.Turn)
	result := systems.PlayerAttack(g.Player, enemy, rng)
	g.logMessage(result.Message)

	events := []GameEvent{{
		Type:     EventPlayerAttacked,
		X:        target.X,
		Y:        target.Y,
		Damage:   result.Damage,
		Killed:   result.Killed,
		Critical: result.Critical,
	}}

	if !result.Killed {
		return events
	}

	enemyType := enemy.Type
	for i := range room.Enemies {
		if room.Enemies[i].Pos == target {
			room.RemoveEnemy(i)
			break
		}
	}
	events = append(events, GameEvent{Type: EventEnemyKilled, EnemyType: enemyType})

	xp := enemyType.XPValue()
	if g.Player.AddXP(xp) {
		g.logMessage(fmt.Sprintf("Уровень повышен! Теперь вы %d уровня.", g.Player.Level))
		events = append(events, GameEvent{
			Type:  EventPlayerLevelUp,
			Level: g.Player.Level,
			XP:    xp,
		})
	}

	if len(room.Enemies) == 0 && !room.Cleared {
		room.Cleared = true
		g.logMessage("Комната зачищена!")
		events = append(events, GameEvent{Type: EventRoomCleared, RoomID: room.ID})
	}

	return events
}

func (g *GameState) handleDefend() []GameEvent {
	g.Player.Defending = true
	g.logMessage("Вы принимаете защитную стойку.")
	return []GameEvent{{Type: EventPlayerDefending}}
}

func (g *GameState) handleUseItem(action domain.Action) []GameEvent {
	if action.ItemIndex < 0 || action.ItemIndex >= len(g.Player.Inventory) {
		g.refund(domain.UseItemCost)
		g.logMessage("Такого предмета нет.")
		return nil
	}

	item := g.Player.Inventory[action.ItemIndex]
	g.Player.Inventory = append(
		g.Player.Inventory[:action.ItemIndex],
		g.Player.Inventory[action.ItemIndex+1:]...)

	g.applyEffect(item.Effect)
	g.logMessage(fmt.Sprintf("Вы используете: %s.", item.Name))

	return []GameEvent{{Type: EventPlayerUsedItem, ItemName: item.Name}}
}

// applyEffect применяет эффект предмета к герою.
func (g *GameState) applyEffect(effect domain.Effect) {
	switch effect.Kind {
	case domain.EffectHeal:
		g.Player.Heal(effect.Amount)
	case domain.EffectRestoreEnergy:
		g.Player.RegenEnergy(effect.Amount)
	case domain.EffectBuff:
		switch effect.Stat {
		case domain.StatFocus:
			g.Player.RestoreFocus(effect.Amount)
		case domain.StatMaxHP:
			g.Player.MaxHP += effect.Amount
			g.Player.HP += effect.Amount
		case domain.StatMaxEnergy:
			g.Player.MaxEnergy += effect.Amount
		case domain.StatDamage:
			g.Player.Damage += effect.Amount
		}
	case domain.EffectRevealMap:
		room := g.World.Current()
		for y := 0; y < room.Height; y++ {
			for x := 0; x < room.Width; x++ {
				g.Visible.Put(domain.Position{X: x, Y: y})
			}
		}
	}
}

func (g *GameState) handleWait() []GameEvent {
	room := g.World.Current()

	regen := domain.WaitRegen
	if room.Type == domain.RoomSanctuary {
		regen += domain.SanctuaryEnergyBonus
	}
	g.Player.RegenEnergy(regen)

	if tile, ok := room.TileAt(g.Player.Pos.X, g.Player.Pos.Y); ok && tile.Kind == domain.TileHealingZone {
		g.Player.Heal(domain.HealingZoneHeal)
	}

	g.logMessage("Вы переводите дух.")
	return nil
}

// ProcessEnemies проводит ход врагов текущей комнаты. Враги ходят в порядке
// спавна; число ходящих фиксируется до обхода, поэтому отпочковавшиеся в
// этом же ходу копии впервые действуют на следующем. Все броски хода тянутся
// из одного генератора, ключёванного номером хода.
func (g *GameState) ProcessEnemies() []GameEvent {
	if g.GameOver {
		return nil
	}

	room := g.World.Current()
	rng := utils.TurnRNG(g.Seed, g.Turn)

	var events []GameEvent
	count := len(room.Enemies)
	for i := 0; i < count; i++ {
		if i >= len(room.Enemies) {
			break
		}
		intent := systems.DecideAction(&room.Enemies[i], g.Player, room)
		events = append(events, g.executeEnemyAction(room, i, intent, rng)...)

		room.Enemies[i].TurnsAlive++

		if g.GameOver {
			break
		}
	}
	return events
}

// executeEnemyAction исполняет намерение одного врага. Исполнитель один:
// решение принимает только DecideAction, здесь - лишь механика.
func (g *GameState) executeEnemyAction(room *domain.Room, index int, intent systems.EnemyAction, rng *rand.Rand) []GameEvent {
	enemy := &room.Enemies[index]

	switch intent.Kind {
	case systems.EnemyMove:
		next := enemy.Pos.Shift(intent.Dx, intent.Dy)
		if room.IsWalkable(next.X, next.Y) && room.EnemyAt(next.X, next.Y) == nil && next != g.Player.Pos {
			enemy.Pos = next
		}

	case systems.EnemyAttackPlayer:
		result := systems.EnemyAttack(enemy, g.Player, rng)
		g.logMessage(result.Message)
		events := []GameEvent{{
			Type:      EventEnemyAttacked,
			Damage:    result.Damage,
			EnemyType: enemy.Type,
		}}
		if result.Killed {
			g.GameOver = true
			g.logMessage("Игра окончена.")
			events = append(events, GameEvent{Type: EventGameOver})
		}
		return events

	case systems.EnemyRegenerate:
		enemy.HP += intent.Amount
		if enemy.HP > enemy.MaxHP {
			enemy.HP = enemy.MaxHP
		}

	case systems.EnemyGrow:
		enemy.Damage += intent.Amount

	case systems.EnemySplit:
		return g.executeSplit(room, index)

	case systems.EnemyWait:
	}
	return nil
}

// executeSplit делит Мердж-Конфликт: здоровье делится пополам между
// оригиналом и копией, копия встаёт на свободную соседнюю клетку.
// Без свободной клетки или со здоровьем меньше двух деление вырождается
// в ожидание: суммарное здоровье при делении никогда не растёт.
func (g *GameState) executeSplit(room *domain.Room, index int) []GameEvent {
	enemy := &room.Enemies[index]
	if enemy.HP < 2 {
		return nil
	}

	var spawnAt domain.Position
	found := false
	for _, d := range [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}} {
		next := enemy.Pos.Shift(d[0], d[1])
		if room.IsWalkable(next.X, next.Y) && room.EnemyAt(next.X, next.Y) == nil && next != g.Player.Pos {
			spawnAt = next
			found = true
			break
		}
	}
	if !found {
		return nil
	}

	half := enemy.HP / 2

	// Поля оригинала выставляются до append: после него указатель может
	// смотреть в старый бэк-массив слайса.
	enemy.HP = half
	enemy.HasSplit = true

	sibling := *enemy
	sibling.Pos = spawnAt
	room.Enemies = append(room.Enemies, sibling)

	g.logMessage(fmt.Sprintf("%s делится надвое!", sibling.Type.Name()))
	return []GameEvent{{
		Type:      EventEnemySplit,
		X:         spawnAt.X,
		Y:         spawnAt.Y,
		EnemyType: sibling.Type,
	}}
}

// checkRoomExit переводит героя в следующую комнату, если он стоит на
// выходе зачищенной комнаты. Выход последней комнаты завершает партию
// победой.
func (g *GameState) checkRoomExit() []GameEvent {
	room := g.World.Current()
	tile, ok := room.TileAt(g.Player.Pos.X, g.Player.Pos.Y)
	if !ok || tile.Kind != domain.TileExit || !room.IsCleared() {
		return nil
	}

	if !g.World.NextRoom() {
		g.GameOver = true
		g.Victory = true
		g.logMessage("Подземелье пройдено!")
		return []GameEvent{{Type: EventGameOver, Victory: true}}
	}

	next := g.World.Current()
	g.Player.Pos = domain.Position{X: 1, Y: next.Height / 2}
	g.UpdateFOV()
	g.logMessage(fmt.Sprintf("Вы входите в %s.", next.Type.Name()))

	logger.Component("engine").WithFields(logrus.Fields{
		"room": next.ID,
		"type": next.Type.String(),
	}).Info("Room entered.")

	return []GameEvent{{Type: EventRoomEntered, RoomID: next.ID}}
}

// UpdateFOV пересчитывает множество видимых клеток от позиции героя.
// Выход за границы комнаты считается блокирующим.
func (g *GameState) UpdateFOV() {
	room := g.World.Current()
	g.Visible = systems.ComputeVisibleTiles(g.Player.Pos, fovRadius, func(x, y int) bool {
		t, ok := room.TileAt(x, y)
		if !ok {
			return true
		}
		return t.BlocksSight()
	})
}

// logMessage добавляет сообщение в журнал партии, вытесняя старейшие
// за пределами потолка.
func (g *GameState) logMessage(msg string) {
	g.Messages = append(g.Messages, msg)
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}
