package storage

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/sudokatie/penumbra/internal/domain"
)

// Load читает запись партии из файла.
func (s *ReplayService) Load(path string) (*domain.ReplaySession, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return readBinary(f)
}

func readBinary(r io.Reader) (*domain.ReplaySession, error) {
	// 1. Заголовок целиком.
	var header ReplayFileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	// Валидация
	if string(header.Magic[:]) != MagicHeader {
		return nil, fmt.Errorf("invalid magic")
	}
	if header.Version != Version1 {
		return nil, fmt.Errorf("unsupported version: %d (expected %d)", header.Version, Version1)
	}

	session := &domain.ReplaySession{
		Seed:      header.Seed,
		Class:     header.Class,
		CreatedAt: header.CreatedAt,
		Actions:   make([]domain.ReplayAction, header.ActionCount),
	}

	// 2. Действия.
	for i := 0; i < int(header.ActionCount); i++ {
		var record ActionRecord
		if err := binary.Read(r, binary.LittleEndian, &record); err != nil {
			return nil, err
		}

		session.Actions[i] = domain.ReplayAction{
			Turn: record.Turn,
			Action: domain.Action{
				Type:      domain.ActionType(record.ActionType),
				Dx:        int(record.Dx),
				Dy:        int(record.Dy),
				Dir:       domain.Direction(record.Dir),
				ItemIndex: int(record.ItemIndex),
			},
		}
	}

	return session, nil
}
