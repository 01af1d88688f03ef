package storage

import (
	"errors"
	"time"

	"github.com/sudokatie/penumbra/internal/engine"
)

// ErrNoSave возвращается, когда сохранение отсутствует.
var ErrNoSave = errors.New("storage: no saved game")

// RunRecord - итог одной завершённой партии для истории забегов.
type RunRecord struct {
	Seed       uint64    `json:"seed"`
	Class      string    `json:"class"`
	Turns      uint32    `json:"turns"`
	Level      int       `json:"level"`
	Victory    bool      `json:"victory"`
	RoomsSeen  int       `json:"roomsSeen"`
	FinishedAt time.Time `json:"finishedAt"`
}

// GameStore - порт персистентности партий. Движок о нём не знает:
// управляющий слой сам решает, когда сохранять и загружать.
type GameStore interface {
	SaveGame(state *engine.GameState) error
	LoadGame() (*engine.GameState, error)
	SaveExists() bool
	DeleteSave() error
	AppendRun(run RunRecord) error
	LoadHistory() ([]RunRecord, error)
}
