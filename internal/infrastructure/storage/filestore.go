package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sudokatie/penumbra/internal/engine"
	"github.com/sudokatie/penumbra/pkg/logger"
)

const (
	saveFileName    = "save.json"
	historyFileName = "history.json"
	// maxHistory - потолок истории забегов: старейшие вытесняются.
	maxHistory = 100
)

// FileStore хранит сохранение и историю забегов в JSON-файлах каталога.
type FileStore struct {
	Dir string
}

// NewFileStore создаёт хранилище в каталоге (каталог создаётся при
// необходимости).
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("storage: create dir: %w", err)
	}
	return &FileStore{Dir: dir}, nil
}

func (s *FileStore) savePath() string {
	return filepath.Join(s.Dir, saveFileName)
}

func (s *FileStore) historyPath() string {
	return filepath.Join(s.Dir, historyFileName)
}

// SaveGame пишет состояние партии атомарно: во временный файл с переименованием,
// чтобы падение посреди записи не съело предыдущее сохранение.
func (s *FileStore) SaveGame(state *engine.GameState) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("storage: marshal save: %w", err)
	}

	tmp := s.savePath() + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("storage: write save: %w", err)
	}
	if err := os.Rename(tmp, s.savePath()); err != nil {
		return fmt.Errorf("storage: commit save: %w", err)
	}

	logger.Component("storage").WithField("path", s.savePath()).Info("Game saved.")
	return nil
}

// LoadGame читает сохранённую партию. Поле видимости и журнал сообщений
// в сохранение не входят: вызывающая сторона обязана вызвать UpdateFOV.
func (s *FileStore) LoadGame() (*engine.GameState, error) {
	data, err := os.ReadFile(s.savePath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoSave
		}
		return nil, fmt.Errorf("storage: read save: %w", err)
	}

	var state engine.GameState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("storage: unmarshal save: %w", err)
	}

	logger.Component("storage").WithField("path", s.savePath()).Info("Game loaded.")
	return &state, nil
}

// SaveExists сообщает, есть ли сохранённая партия.
func (s *FileStore) SaveExists() bool {
	_, err := os.Stat(s.savePath())
	return err == nil
}

// DeleteSave удаляет сохранение. Отсутствие файла не ошибка.
func (s *FileStore) DeleteSave() error {
	err := os.Remove(s.savePath())
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage: delete save: %w", err)
	}
	return nil
}

// AppendRun добавляет итог партии в историю, вытесняя старейшие записи
// за пределами потолка.
func (s *FileStore) AppendRun(run RunRecord) error {
	history, err := s.LoadHistory()
	if err != nil {
		return err
	}

	history = append(history, run)
	if len(history) > maxHistory {
		history = history[len(history)-maxHistory:]
	}

	data, err := json.MarshalIndent(history, "", "  ")
	if err != nil {
		return fmt.Errorf("storage: marshal history: %w", err)
	}
	if err := os.WriteFile(s.historyPath(), data, 0644); err != nil {
		return fmt.Errorf("storage: write history: %w", err)
	}
	return nil
}

// LoadHistory читает историю забегов. Отсутствие файла - пустая история.
func (s *FileStore) LoadHistory() ([]RunRecord, error) {
	data, err := os.ReadFile(s.historyPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("storage: read history: %w", err)
	}

	var history []RunRecord
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, fmt.Errorf("storage: unmarshal history: %w", err)
	}
	return history, nil
}
