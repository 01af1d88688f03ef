package dungeon

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/sudokatie/penumbra/internal/domain"
	"github.com/sudokatie/penumbra/pkg/logger"
	"github.com/sudokatie/penumbra/pkg/utils"
)

// ErrNoRecords возвращается, когда отфильтрованный вход пуст.
// Пустой мир не генерируется молча: вызывающая сторона обязана увидеть ошибку.
var ErrNoRecords = errors.New("dungeon: no eligible activity records")

// Generate строит мир из последовательности записей активности.
// Записи группируются по календарной дате, по комнате на дату, в порядке
// возрастания дат. Одинаковые (записи, сид) дают побитово идентичный мир:
// заселение каждой комнаты потребляет собственный поток генератора,
// ключёванный индексом комнаты.
func Generate(records []domain.ActivityRecord, seed uint64) (*domain.World, error) {
	if len(records) == 0 {
		return nil, ErrNoRecords
	}

	genLogger := logger.Component("dungeon_generator").WithFields(logrus.Fields{
		"records": len(records),
		"seed":    seed,
	})

	groups := domain.GroupByDate(records)

	rooms := make([]*domain.Room, 0, len(groups))
	for index, group := range groups {
		room := generateRoom(index, group)

		// Заселение: враги и предметы тянут позиции из одного тающего пула.
		rng := utils.RoomRNG(seed, index)
		SpawnEnemies(room, group.Records, rng)
		SpawnItems(room, group.Records, rng)

		rooms = append(rooms, room)
	}

	placeConnections(rooms)

	genLogger.WithField("rooms", len(rooms)).Info("Dungeon generated.")
	return domain.NewWorld(rooms), nil
}

// generateRoom строит одну комнату из записей одного дня.
func generateRoom(index int, group domain.DayGroup) *domain.Room {
	width, height := roomSize(group.TotalMagnitude())
	roomType := determineRoomType(group.Records)

	room := domain.NewRoom(index, width, height, roomType, group.Date)
	generateLayout(room)
	return room
}

// roomSize выбирает размер комнаты по суммарному весу дня.
// Каноническая таблица (см. DESIGN.md): потолок 9x9, размеры всегда нечётные.
func roomSize(totalMagnitude int) (int, int) {
	switch {
	case totalMagnitude < 20:
		return 3, 3
	case totalMagnitude < 50:
		return 5, 5
	case totalMagnitude < 200:
		return 7, 7
	default:
		return 9, 9
	}
}

// determineRoomType выводит тип комнаты из записей дня.
// Merge-коммит / all-hands перекрывает все прочие правила. Дальше - строгое
// большинство (>50%) по счётчикам категорий, если они есть хотя бы у одной
// записи; иначе - та же мажоритарная логика по ключевым словам сообщений.
func determineRoomType(records []domain.ActivityRecord) domain.RoomType {
	for _, r := range records {
		if r.IsSpecial {
			return domain.RoomBoss
		}
	}

	var test, config, total int
	for _, r := range records {
		if r.Categories == nil {
			continue
		}
		test += r.Categories.Test
		config += r.Categories.Config
		total += r.Categories.Total()
	}

	if total > 0 {
		if test*2 > total {
			return domain.RoomSanctuary
		}
		if config*2 > total {
			return domain.RoomTreasure
		}
		return domain.RoomNormal
	}

	// Фоллбэк: эвристики по тексту сообщения.
	var testMsgs, configMsgs int
	for _, r := range records {
		if r.MessageContains("test", "spec") {
			testMsgs++
		}
		if r.MessageContains("config", "setting") {
			configMsgs++
		}
	}

	if testMsgs*2 > len(records) {
		return domain.RoomSanctuary
	}
	if configMsgs*2 > len(records) {
		return domain.RoomTreasure
	}
	return domain.RoomNormal
}

// generateLayout замощает комнату: периметр - стены, внутренность - пол.
// Святилище перекрывает внутренний пол лечащей зоной.
func generateLayout(room *domain.Room) {
	for x := 0; x < room.Width; x++ {
		room.SetTile(x, 0, domain.Tile{Kind: domain.TileWall})
		room.SetTile(x, room.Height-1, domain.Tile{Kind: domain.TileWall})
	}
	for y := 0; y < room.Height; y++ {
		room.SetTile(0, y, domain.Tile{Kind: domain.TileWall})
		room.SetTile(room.Width-1, y, domain.Tile{Kind: domain.TileWall})
	}

	if room.Type == domain.RoomSanctuary {
		for y := 1; y < room.Height-1; y++ {
			for x := 1; x < room.Width-1; x++ {
				room.SetTile(x, y, domain.Tile{Kind: domain.TileHealingZone})
			}
		}
	}
}

// placeConnections расставляет входы и выходы на вертикальной середине
// западной/восточной границы. У первой комнаты нет входа, у последней -
// выхода.
func placeConnections(rooms []*domain.Room) {
	for i, room := range rooms {
		midY := room.Height / 2

		if i > 0 {
			room.SetTile(0, midY, domain.Tile{Kind: domain.TileEntrance})
		}
		if i < len(rooms)-1 {
			room.SetTile(room.Width-1, midY, domain.Tile{Kind: domain.TileExit})
		}
	}
}
