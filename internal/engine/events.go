package engine

import "github.com/sudokatie/penumbra/internal/domain"

// EventType - внутренний числовой идентификатор игрового события.
type EventType uint8

const (
	EventUnknown EventType = iota
	EventPlayerMoved
	EventPlayerAttacked
	EventPlayerDefending
	EventPlayerUsedItem
	EventPlayerLevelUp
	EventEnemyAttacked
	EventEnemyKilled
	EventEnemySplit
	EventDoorOpened
	EventItemPickedUp
	EventRoomEntered
	EventRoomCleared
	EventGameOver
)

// Маппинг для логов Domain -> String
var eventCmdToString = map[EventType]string{
	EventPlayerMoved:     "PLAYER_MOVED",
	EventPlayerAttacked:  "PLAYER_ATTACKED",
	EventPlayerDefending: "PLAYER_DEFENDING",
	EventPlayerUsedItem:  "PLAYER_USED_ITEM",
	EventPlayerLevelUp:   "PLAYER_LEVEL_UP",
	EventEnemyAttacked:   "ENEMY_ATTACKED",
	EventEnemyKilled:     "ENEMY_KILLED",
	EventEnemySplit:      "ENEMY_SPLIT",
	EventDoorOpened:      "DOOR_OPENED",
	EventItemPickedUp:    "ITEM_PICKED_UP",
	EventRoomEntered:     "ROOM_ENTERED",
	EventRoomCleared:     "ROOM_CLEARED",
	EventGameOver:        "GAME_OVER",
}

// String реализует интерфейс Stringer (для fmt.Printf и логов).
func (e EventType) String() string {
	if val, ok := eventCmdToString[e]; ok {
		return val
	}
	return "UNKNOWN"
}

// GameEvent - событие, возвращаемое движком управляющему слою.
// Значимость полей зависит от Type; неиспользуемые поля остаются нулевыми.
type GameEvent struct {
	Type      EventType        `json:"type"`
	X         int              `json:"x,omitempty"`
	Y         int              `json:"y,omitempty"`
	Damage    int              `json:"damage,omitempty"`
	Killed    bool             `json:"killed,omitempty"`
	Critical  bool             `json:"critical,omitempty"`
	Level     int              `json:"level,omitempty"`
	XP        int              `json:"xp,omitempty"`
	EnemyType domain.EnemyType `json:"enemyType,omitempty"`
	ItemName  string           `json:"itemName,omitempty"`
	RoomID    int              `json:"roomId,omitempty"`
	Victory   bool             `json:"victory,omitempty"`
}
