package utils

import (
	"math/rand"
	"time"
)

// Дисциплина рандома: никакого долгоживущего общего генератора.
// Каждое решение (бой, ход врагов, заселение комнаты) получает СВЕЖИЙ
// генератор, детерминированно выведенный из базового сида. Результат партии -
// чистая функция от (сид, номер хода, порядок вызовов внутри хода).

// NewSeed возвращает сид, выведенный из часов.
// Используется, когда вызывающая сторона не передала явный сид; значение
// обязано вернуться наружу для логирования воспроизводимости.
func NewSeed() uint64 {
	return uint64(time.Now().UnixNano())
}

// TurnRNG возвращает генератор для одной фазы одного хода.
// Повторная обработка того же хода воспроизведёт те же броски.
func TurnRNG(seed uint64, turn uint32) *rand.Rand {
	return rand.New(rand.NewSource(int64(seed) + int64(turn)))
}

// RoomRNG возвращает генератор для заселения одной комнаты.
// Поток отделён от TurnRNG множителем, чтобы комнаты не пересекались
// с бросками первых ходов.
func RoomRNG(seed uint64, roomIndex int) *rand.Rand {
	return rand.New(rand.NewSource(int64(seed) + int64(roomIndex)*31))
}
