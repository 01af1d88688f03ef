package domain

import "time"

// RoomType - тип комнаты, выведенный из записей активности дня.
type RoomType uint8

const (
	// RoomNormal - обычная комната.
	RoomNormal RoomType = iota
	// RoomSanctuary - день тестов: безопасная зона, враги не спавнятся.
	RoomSanctuary
	// RoomTreasure - день конфигов: дополнительный лут.
	RoomTreasure
	// RoomBoss - день с merge-коммитом: боссовая комната.
	RoomBoss
)

func (t RoomType) String() string {
	switch t {
	case RoomNormal:
		return "NORMAL"
	case RoomSanctuary:
		return "SANCTUARY"
	case RoomTreasure:
		return "TREASURE"
	default:
		return "BOSS"
	}
}

// Name возвращает отображаемое имя типа комнаты.
func (t RoomType) Name() string {
	switch t {
	case RoomNormal:
		return "Комната"
	case RoomSanctuary:
		return "Святилище"
	case RoomTreasure:
		return "Сокровищница"
	default:
		return "Логово Босса"
	}
}

// Room - одна арена, соответствующая одной календарной дате активности.
// После генерации неизменна, кроме удаления врагов/предметов, переключения
// дверей и флага Cleared.
type Room struct {
	ID         int       `json:"id"`
	Tiles      [][]Tile  `json:"tiles"`
	Width      int       `json:"width"`
	Height     int       `json:"height"`
	Type       RoomType  `json:"type"`
	Enemies    []Enemy   `json:"enemies"`
	Items      []Item    `json:"items"`
	SourceDate time.Time `json:"sourceDate"`
	Cleared    bool      `json:"cleared"`
}

// NewRoom создаёт комнату, полностью замощённую полом.
// Размеры всегда нечётные, диапазон 3..9.
func NewRoom(id, width, height int, roomType RoomType, date time.Time) *Room {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
	}
	return &Room{
		ID:         id,
		Tiles:      tiles,
		Width:      width,
		Height:     height,
		Type:       roomType,
		SourceDate: date,
	}
}

// InBounds проверяет координату против границ комнаты.
func (r *Room) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < r.Width && y < r.Height
}

// TileAt возвращает клетку и признак валидности координаты.
// Выход за границы - не паника, а (zero, false).
func (r *Room) TileAt(x, y int) (Tile, bool) {
	if !r.InBounds(x, y) {
		return Tile{}, false
	}
	return r.Tiles[y][x], true
}

// SetTile записывает клетку; координаты вне границ молча игнорируются.
func (r *Room) SetTile(x, y int, tile Tile) {
	if r.InBounds(x, y) {
		r.Tiles[y][x] = tile
	}
}

// IsWalkable проверяет проходимость клетки. За границами - непроходимо.
func (r *Room) IsWalkable(x, y int) bool {
	t, ok := r.TileAt(x, y)
	return ok && t.Walkable()
}

// EnemyAt находит врага на клетке. Линейный проход: площадь комнаты <= 81.
func (r *Room) EnemyAt(x, y int) *Enemy {
	for i := range r.Enemies {
		if r.Enemies[i].Pos.X == x && r.Enemies[i].Pos.Y == y {
			return &r.Enemies[i]
		}
	}
	return nil
}

// ItemAt находит предмет на клетке.
func (r *Room) ItemAt(x, y int) *Item {
	for i := range r.Items {
		if r.Items[i].Pos.X == x && r.Items[i].Pos.Y == y {
			return &r.Items[i]
		}
	}
	return nil
}

// RemoveEnemy удаляет врага по индексу, сохраняя порядок остальных.
func (r *Room) RemoveEnemy(index int) {
	if index < 0 || index >= len(r.Enemies) {
		return
	}
	r.Enemies = append(r.Enemies[:index], r.Enemies[index+1:]...)
}

// RemoveItemAt удаляет предмет с клетки и возвращает его.
func (r *Room) RemoveItemAt(x, y int) *Item {
	for i := range r.Items {
		if r.Items[i].Pos.X == x && r.Items[i].Pos.Y == y {
			item := r.Items[i]
			r.Items = append(r.Items[:i], r.Items[i+1:]...)
			return &item
		}
	}
	return nil
}

// IsCleared сообщает, зачищена ли комната.
// Инвариант: cleared == enemies пуст ИЛИ флаг выставлен явно.
func (r *Room) IsCleared() bool {
	return len(r.Enemies) == 0 || r.Cleared
}

// FreePositions возвращает проходимые внутренние клетки, не занятые
// врагами и предметами. Используется заселением как общий тающий пул,
// чтобы спавны не накладывались друг на друга.
func (r *Room) FreePositions() []Position {
	var free []Position
	for y := 1; y < r.Height-1; y++ {
		for x := 1; x < r.Width-1; x++ {
			if r.IsWalkable(x, y) && r.EnemyAt(x, y) == nil && r.ItemAt(x, y) == nil {
				free = append(free, Position{X: x, Y: y})
			}
		}
	}
	return free
}
