package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sudokatie/penumbra/internal/domain"
	"github.com/sudokatie/penumbra/internal/engine"
	"github.com/sudokatie/penumbra/internal/infrastructure/storage"
	"github.com/sudokatie/penumbra/internal/version"
	"github.com/sudokatie/penumbra/pkg/logger"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Парсинг конфигурации
	var seed int64
	var recordsPath, replayPath, className, dataDir string
	var resume bool
	// Читаем флаг -seed. По умолчанию 0 (значит сгенерировать случайно).
	flag.Int64Var(&seed, "seed", 0, "Initial world seed (0 for random)")
	flag.StringVar(&recordsPath, "records", "", "Path to activity records JSON file")
	flag.StringVar(&replayPath, "replay", "", "Path to .pnrp replay file to simulate")
	flag.StringVar(&className, "class", "wanderer", "Player class: code_warrior | meeting_survivor | inbox_knight | wanderer")
	flag.StringVar(&dataDir, "data", ".penumbra", "Directory for saves, history and replays")
	flag.BoolVar(&resume, "resume", false, "Resume the saved game instead of starting a new one")
	flag.Parse()

	logger.Log.Info("Starting Penumbra...")
	logger.Log.Info(version.String())

	if recordsPath == "" {
		logger.Log.Fatal("Flag -records is required.")
	}
	records, err := loadRecords(recordsPath)
	if err != nil {
		logger.Log.Fatal("Failed to load activity records: ", err)
	}

	store, err := storage.NewFileStore(dataDir)
	if err != nil {
		logger.Log.Fatal("Failed to open data dir: ", err)
	}
	replaySvc := storage.NewReplayService(dataDir)

	// РЕЖИМ РЕПЛЕЯ
	if replayPath != "" {
		logger.Log.Info("Mode: Replay Simulation")

		session, err := replaySvc.Load(replayPath)
		if err != nil {
			logger.Log.Fatal("Failed to load replay: ", err)
		}

		game, err := engine.Playback(records, session)
		if err != nil {
			logger.Log.Fatal("Playback failed: ", err)
		}

		fmt.Printf("Реплей завершён: ход %d, победа: %v\n", game.Turn, game.Victory)
		return
	}

	var game *engine.GameState
	if resume {
		game, err = store.LoadGame()
		if err != nil {
			logger.Log.Fatal("Failed to resume: ", err)
		}
		game.UpdateFOV()
	} else {
		cfg := engine.NewConfig()
		if seed != 0 {
			cfg.Seed = uint64(seed)
			logger.Log.Infof("Using explicit Master Seed: %d", cfg.Seed)
		} else {
			logger.Log.Infof("Using random Master Seed: %d", cfg.Seed)
		}
		cfg.Class = uint8(parseClass(className))

		game, err = engine.New(records, cfg)
		if err != nil {
			logger.Log.Fatal("Failed to start game: ", err)
		}

		recorder := engine.NewRecorder(cfg)
		game.AttachRecorder(recorder)
		defer func() {
			if path, err := replaySvc.Save(recorder.Session()); err != nil {
				logger.Log.Warn("Failed to save replay: ", err)
			} else {
				logger.Log.Info("Replay saved: ", path)
			}
		}()
	}

	runLoop(game, store)
}

// runLoop читает команды со стандартного ввода до конца партии.
// Команды: move n|s|w|e, attack n|s|w|e, defend, use <index>, wait,
// inv, save, quit.
func runLoop(game *engine.GameState, store storage.GameStore) {
	scanner := bufio.NewScanner(os.Stdin)

	render(game)
	for !game.GameOver {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		fields := strings.Fields(strings.ToLower(scanner.Text()))
		if len(fields) > 0 && (fields[0] == "quit" || fields[0] == "q") {
			// Выход без завершения партии: сохранение остаётся.
			break
		}

		action, ok := parseCommand(game, store, fields)
		if !ok {
			continue
		}

		game.ProcessAction(action)
		game.ProcessEnemies()
		render(game)
	}

	if game.GameOver {
		finishRun(game, store)
	}
}

// parseCommand переводит команду пользователя в действие движка.
// Второе значение false означает "хода нет" (пустая строка, служебная
// команда или мусор).
func parseCommand(game *engine.GameState, store storage.GameStore, fields []string) (domain.Action, bool) {
	if len(fields) == 0 {
		return domain.Action{}, false
	}

	switch fields[0] {
	case "move", "m":
		if dir, ok := parseDirection(fields); ok {
			dx, dy := dir.Delta()
			return domain.MoveAction(dx, dy), true
		}
	case "attack", "a":
		if dir, ok := parseDirection(fields); ok {
			return domain.AttackAction(dir), true
		}
	case "defend", "d":
		return domain.DefendAction(), true
	case "use", "u":
		if len(fields) > 1 {
			if index, err := strconv.Atoi(fields[1]); err == nil {
				return domain.UseItemAction(index), true
			}
		}
		fmt.Println("Использование: use <номер предмета>")
	case "wait", "w":
		return domain.WaitAction(), true
	case "inv", "i":
		printInventory(game)
	case "save":
		if err := store.SaveGame(game); err != nil {
			logger.Log.Warn("Save failed: ", err)
		}
	default:
		fmt.Println("Команды: move n|s|w|e, attack n|s|w|e, defend, use <n>, wait, inv, save, quit")
	}
	return domain.Action{}, false
}

func parseDirection(fields []string) (domain.Direction, bool) {
	if len(fields) < 2 {
		fmt.Println("Укажите направление: n, s, w или e")
		return 0, false
	}
	switch fields[1] {
	case "n":
		return domain.DirNorth, true
	case "s":
		return domain.DirSouth, true
	case "w":
		return domain.DirWest, true
	case "e":
		return domain.DirEast, true
	}
	fmt.Println("Укажите направление: n, s, w или e")
	return 0, false
}

// render печатает видимую часть текущей комнаты и свежие сообщения.
// Невидимые клетки заливаются пробелом.
func render(game *engine.GameState) {
	room := game.CurrentRoom()

	var sb strings.Builder
	for y := 0; y < room.Height; y++ {
		for x := 0; x < room.Width; x++ {
			pos := domain.Position{X: x, Y: y}
			switch {
			case !game.Visible.Has(pos):
				sb.WriteByte(' ')
			case pos == game.Player.Pos:
				sb.WriteByte('@')
			case room.EnemyAt(x, y) != nil:
				sb.WriteByte(room.EnemyAt(x, y).Type.Symbol())
			case room.ItemAt(x, y) != nil:
				sb.WriteByte('*')
			default:
				tile, _ := room.TileAt(x, y)
				sb.WriteByte(tile.Symbol())
			}
		}
		sb.WriteByte('\n')
	}
	fmt.Print(sb.String())

	fmt.Printf("[%s] HP %d/%d  Энергия %d/%d  Фокус %d  Уровень %d (XP %d)\n",
		room.Type.Name(),
		game.Player.HP, game.Player.MaxHP,
		game.Player.Energy, game.Player.MaxEnergy,
		game.Player.Focus, game.Player.Level, game.Player.XP)

	// Последние сообщения партии.
	tail := game.Messages
	if len(tail) > 3 {
		tail = tail[len(tail)-3:]
	}
	for _, msg := range tail {
		fmt.Println(msg)
	}
}

func printInventory(game *engine.GameState) {
	if len(game.Player.Inventory) == 0 {
		fmt.Println("Инвентарь пуст.")
		return
	}
	for i, item := range game.Player.Inventory {
		fmt.Printf("%d: %s [%s]\n", i, item.Name, item.Rarity.String())
	}
}

// finishRun пишет итог партии в историю и убирает сохранение.
func finishRun(game *engine.GameState, store storage.GameStore) {
	run := storage.RunRecord{
		Seed:       game.Seed,
		Class:      game.Player.Class.String(),
		Turns:      game.Turn,
		Level:      game.Player.Level,
		Victory:    game.Victory,
		RoomsSeen:  game.World.CurrentRoom + 1,
		FinishedAt: time.Now(),
	}
	if err := store.AppendRun(run); err != nil {
		logger.Log.Warn("Failed to record run: ", err)
	}
	if err := store.DeleteSave(); err != nil {
		logger.Log.Warn("Failed to delete save: ", err)
	}

	if game.Victory {
		fmt.Println("Победа! Подземелье пройдено.")
	} else {
		fmt.Println("Партия окончена.")
	}
}

// loadRecords читает записи активности из JSON-файла.
func loadRecords(path string) ([]domain.ActivityRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var records []domain.ActivityRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return records, nil
}

func parseClass(name string) domain.PlayerClass {
	switch strings.ToLower(name) {
	case "code_warrior", "warrior":
		return domain.ClassCodeWarrior
	case "meeting_survivor", "survivor":
		return domain.ClassMeetingSurvivor
	case "inbox_knight", "knight":
		return domain.ClassInboxKnight
	default:
		return domain.ClassWanderer
	}
}
