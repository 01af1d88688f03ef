package domain

// World - упорядоченная последовательность комнат.
// Порядок генерации = хронологический порядок дат.
type World struct {
	Rooms       []*Room `json:"rooms"`
	CurrentRoom int     `json:"currentRoom"`
}

// NewWorld создаёт мир из готовых комнат.
func NewWorld(rooms []*Room) *World {
	return &World{Rooms: rooms}
}

// Current возвращает текущую комнату (nil для пустого мира).
func (w *World) Current() *Room {
	if w.CurrentRoom < 0 || w.CurrentRoom >= len(w.Rooms) {
		return nil
	}
	return w.Rooms[w.CurrentRoom]
}

// NextRoom продвигает мир к следующей комнате.
// Возвращает false, если текущая комната последняя.
func (w *World) NextRoom() bool {
	if w.CurrentRoom+1 >= len(w.Rooms) {
		return false
	}
	w.CurrentRoom++
	return true
}

// IsLastRoom проверяет, является ли текущая комната последней.
func (w *World) IsLastRoom() bool {
	return w.CurrentRoom+1 >= len(w.Rooms)
}
