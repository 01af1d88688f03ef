package storage

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sudokatie/penumbra/internal/domain"
)

const (
	MagicHeader string = `PNRP` // 4 байта
	Version1    uint32 = 1
)

// ReplayFileHeader - точное представление заголовка файла в памяти.
// binary.Write пишет его целиком: здесь нет слайсов и строк, только
// массивы и числа фиксированного размера.
type ReplayFileHeader struct {
	Magic       [4]byte // 4 байта
	Version     uint32  // 4 байта
	Seed        uint64  // 8 байт
	CreatedAt   int64   // 8 байт
	Class       uint8   // 1 байт
	ActionCount uint32  // 4 байта
}

// ActionRecord - одна запись действия в файле. Все поля фиксированного
// размера, так что каждая запись укладывается в один binary.Write.
// Смещения хода лежат в [-1, 1], индекс предмета ограничен инвентарём:
// узких типов хватает.
type ActionRecord struct {
	Turn       uint32 // 4
	ActionType uint8  // 1
	Dx         int8   // 1
	Dy         int8   // 1
	Dir        uint8  // 1
	ItemIndex  uint8  // 1
}

// ReplayService пишет и читает записи партий в бинарном формате.
type ReplayService struct {
	SaveDir string
}

func NewReplayService(dir string) *ReplayService {
	// Создаем папку если нет
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		_ = os.MkdirAll(dir, 0755)
	}
	return &ReplayService{SaveDir: dir}
}

// Save пишет запись партии в файл. Имя файла выводится из сида и момента
// записи, так что записи не перетирают друг друга.
func (s *ReplayService) Save(session *domain.ReplaySession) (string, error) {
	filename := fmt.Sprintf("replay_%d_%d.pnrp", session.Seed, session.CreatedAt)
	path := filepath.Join(s.SaveDir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := writeBinary(f, session); err != nil {
		return "", err
	}
	return path, nil
}

func writeBinary(w io.Writer, s *domain.ReplaySession) error {
	// 1. Глобальный заголовок.
	header := ReplayFileHeader{
		Version:     Version1,
		Seed:        s.Seed,
		CreatedAt:   s.CreatedAt,
		Class:       s.Class,
		ActionCount: uint32(len(s.Actions)),
	}
	copy(header.Magic[:], MagicHeader)

	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	// 2. Действия.
	for _, act := range s.Actions {
		if act.Action.ItemIndex < 0 || act.Action.ItemIndex > 255 {
			return fmt.Errorf("item index out of range: %d", act.Action.ItemIndex)
		}

		record := ActionRecord{
			Turn:       act.Turn,
			ActionType: uint8(act.Action.Type),
			Dx:         int8(act.Action.Dx),
			Dy:         int8(act.Action.Dy),
			Dir:        uint8(act.Action.Dir),
			ItemIndex:  uint8(act.Action.ItemIndex),
		}

		if err := binary.Write(w, binary.LittleEndian, &record); err != nil {
			return err
		}
	}

	return nil
}
