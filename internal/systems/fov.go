package systems

import (
	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"

	"github.com/sudokatie/penumbra/internal/domain"
	"github.com/sudokatie/penumbra/pkg/logger"
)

// BlockingFunc сообщает, блокирует ли клетка взгляд.
// Вызывающая сторона отвечает за трактовку выхода за границы
// (движок считает его блокирующим).
type BlockingFunc func(x, y int) bool

// Мультипликаторы для трансформации координат в 8 октантов
var octantMultipliers = [4][8]int{
	{1, 0, 0, -1, -1, 0, 0, 1},
	{0, 1, -1, 0, 0, -1, 1, 0},
	{0, 1, 1, 0, 0, -1, -1, 0},
	{1, 0, 0, 1, -1, 0, 0, -1},
}

// ComputeVisibleTiles возвращает множество видимых клеток.
// Рекурсивный shadowcasting по 8 симметричным октантам: если A видит B,
// то B видит A при той же блокирующей геометрии. Центр виден всегда.
// Никакого кэширования между вызовами - результат хранит вызывающий.
func ComputeVisibleTiles(origin domain.Position, radius int, isBlocking BlockingFunc) mapset.Set[domain.Position] {
	fovLogger := logger.Component("fov_system").WithFields(logrus.Fields{
		"origin": origin,
		"radius": radius,
	})

	visible := mapset.New[domain.Position]()
	if radius <= 0 {
		fovLogger.Warn("FOV calculation skipped for blind observer (radius <= 0).")
		return visible
	}

	// Центр всегда виден, даже если сам блокирует.
	visible.Put(origin)

	for i := 0; i < 8; i++ {
		castLight(visible, origin, 1, 1.0, 0.0, radius,
			octantMultipliers[0][i], octantMultipliers[1][i],
			octantMultipliers[2][i], octantMultipliers[3][i], isBlocking)
	}

	fovLogger.WithField("visible_tiles", visible.Size()).Debug("FOV calculation complete.")
	return visible
}

func castLight(visible mapset.Set[domain.Position], origin domain.Position, row int, start, end float64, radius, xx, xy, yx, yy int, isBlocking BlockingFunc) {
	if start < end {
		return
	}

	radiusSq := radius * radius

	for j := row; j <= radius; j++ {
		dx, dy := -j-1, -j
		blocked := false
		newStart := start

		for dx <= 0 {
			dx++
			if dx > 0 {
				break
			}

			// Расчет наклонов (Slopes)
			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			// Трансформация координат октанта в глобальные
			x := origin.X + dx*xx + dy*xy
			y := origin.Y + dx*yx + dy*yy

			// Клетка попадает в результат, только если её квадрат расстояния
			// не превышает radius^2.
			if dx*dx+dy*dy <= radiusSq {
				visible.Put(domain.Position{X: x, Y: y})
			}

			// Логика теней
			if blocked {
				// Идем вдоль стены...
				if isBlocking(x, y) {
					newStart = rSlope
					continue
				}
				// Стена кончилась: возобновляем прерванный интервал.
				blocked = false
				start = newStart
			} else if isBlocking(x, y) && j < radius {
				// Шли по пустоте и наткнулись на стену: сужаем интервал
				// и рекурсивно сканируем следующий ряд на свободном остатке.
				blocked = true
				castLight(visible, origin, j+1, start, lSlope, radius, xx, xy, yx, yy, isBlocking)
				newStart = rSlope
			}
		}
		if blocked {
			break
		}
	}
}
