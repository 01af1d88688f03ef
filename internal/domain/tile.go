package domain

// Direction - направление для дверей и атак.
type Direction uint8

const (
	DirNorth Direction = iota
	DirSouth
	DirWest
	DirEast
)

// Delta возвращает смещение (dx, dy) для направления.
func (d Direction) Delta() (int, int) {
	switch d {
	case DirNorth:
		return 0, -1
	case DirSouth:
		return 0, 1
	case DirWest:
		return -1, 0
	default:
		return 1, 0
	}
}

// Opposite возвращает противоположное направление.
func (d Direction) Opposite() Direction {
	switch d {
	case DirNorth:
		return DirSouth
	case DirSouth:
		return DirNorth
	case DirWest:
		return DirEast
	default:
		return DirWest
	}
}

func (d Direction) String() string {
	switch d {
	case DirNorth:
		return "NORTH"
	case DirSouth:
		return "SOUTH"
	case DirWest:
		return "WEST"
	default:
		return "EAST"
	}
}

// TileKind - вид клетки.
type TileKind uint8

const (
	TileFloor TileKind = iota
	TileWall
	TileDoor
	TileEntrance
	TileExit
	TileHealingZone
)

// Tile - одна клетка комнаты.
// Для TileDoor значимы DoorDir и DoorOpen; остальные виды их игнорируют.
type Tile struct {
	Kind     TileKind  `json:"kind"`
	DoorDir  Direction `json:"doorDir,omitempty"`
	DoorOpen bool      `json:"doorOpen,omitempty"`
}

// Walkable сообщает, можно ли встать на клетку.
// Закрытая дверь непроходима, открытая - проходима.
func (t Tile) Walkable() bool {
	switch t.Kind {
	case TileFloor, TileEntrance, TileExit, TileHealingZone:
		return true
	case TileDoor:
		return t.DoorOpen
	default:
		return false
	}
}

// BlocksSight сообщает, блокирует ли клетка взгляд.
// Закрытая дверь блокирует и проход, и обзор; открытая - ничего.
func (t Tile) BlocksSight() bool {
	switch t.Kind {
	case TileWall:
		return true
	case TileDoor:
		return !t.DoorOpen
	default:
		return false
	}
}

// Symbol возвращает ASCII-символ клетки (для дампов и отладки).
func (t Tile) Symbol() byte {
	switch t.Kind {
	case TileFloor:
		return '.'
	case TileWall:
		return '#'
	case TileDoor:
		if t.DoorOpen {
			return '\''
		}
		return '+'
	case TileEntrance:
		return '<'
	case TileExit:
		return '>'
	default:
		return '~'
	}
}
