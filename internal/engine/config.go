package engine

import "github.com/sudokatie/penumbra/pkg/utils"

// Config хранит параметры запуска движка.
type Config struct {
	// Seed - мастер-зерно. От него детерминированно зависят мир,
	// заселение комнат и все боевые броски.
	Seed uint64
	// Class - стартовый класс героя.
	Class uint8
}

// NewConfig создает конфиг по умолчанию (случайный сид).
// Сгенерированный сид обязан попасть в логи: без него партия невоспроизводима.
func NewConfig() Config {
	return Config{
		Seed: utils.NewSeed(),
	}
}
