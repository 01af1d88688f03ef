package domain

import "strings"

// ActionType - внутренний числовой идентификатор действия игрока.
type ActionType uint8

const (
	ActionUnknown ActionType = iota
	ActionMove
	ActionAttack
	ActionDefend
	ActionUseItem
	ActionWait
)

// Стоимость действий в энергии.
const (
	MoveCost    = 1
	AttackCost  = 5
	DefendCost  = 3
	UseItemCost = 2
	// WaitRegen - энергия, возвращаемая за пропуск хода.
	WaitRegen = 2
	// SanctuaryEnergyBonus - пассивный бонус святилища к пропуску хода.
	SanctuaryEnergyBonus = 3
	// HealingZoneHeal - здоровье за пропуск хода на лечащей клетке.
	HealingZoneHeal = 2
)

// Маппинг для конвертации внешнего представления -> Domain
var actionStringToCmd = map[string]ActionType{
	"MOVE":     ActionMove,
	"ATTACK":   ActionAttack,
	"DEFEND":   ActionDefend,
	"USE_ITEM": ActionUseItem,
	"WAIT":     ActionWait,
}

// Маппинг для логов Domain -> String
var actionCmdToString = map[ActionType]string{
	ActionMove:    "MOVE",
	ActionAttack:  "ATTACK",
	ActionDefend:  "DEFEND",
	ActionUseItem: "USE_ITEM",
	ActionWait:    "WAIT",
}

// ParseAction конвертирует строку в ActionType.
// Нечувствительна к регистру для надежности.
func ParseAction(s string) ActionType {
	if val, ok := actionStringToCmd[strings.ToUpper(s)]; ok {
		return val
	}
	return ActionUnknown
}

// String реализует интерфейс Stringer (для fmt.Printf и логов).
func (a ActionType) String() string {
	if val, ok := actionCmdToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}

// Action - команда игрока, пришедшая от управляющего слоя.
// Значимость полей зависит от Type: Move использует Dx/Dy (один из
// четырёх единичных кардинальных векторов), Attack - Dir,
// UseItem - ItemIndex. Defend и Wait параметров не несут.
type Action struct {
	Type      ActionType `json:"type"`
	Dx        int        `json:"dx,omitempty"`
	Dy        int        `json:"dy,omitempty"`
	Dir       Direction  `json:"dir,omitempty"`
	ItemIndex int        `json:"itemIndex,omitempty"`
}

// EnergyCost возвращает стоимость действия в энергии.
func (a Action) EnergyCost() int {
	switch a.Type {
	case ActionMove:
		return MoveCost
	case ActionAttack:
		return AttackCost
	case ActionDefend:
		return DefendCost
	case ActionUseItem:
		return UseItemCost
	default:
		// Wait бесплатен: он не тратит, а восстанавливает энергию.
		return 0
	}
}

// Конструкторы для читабельности вызывающего кода.

func MoveAction(dx, dy int) Action {
	return Action{Type: ActionMove, Dx: dx, Dy: dy}
}

func AttackAction(dir Direction) Action {
	return Action{Type: ActionAttack, Dir: dir}
}

func DefendAction() Action {
	return Action{Type: ActionDefend}
}

func UseItemAction(index int) Action {
	return Action{Type: ActionUseItem, ItemIndex: index}
}

func WaitAction() Action {
	return Action{Type: ActionWait}
}
