package domain

// ReplayAction - одно принятое действие героя с номером хода, на котором
// оно было исполнено. Отклонённые действия (нехватка энергии) в реплей
// не попадают: они не оставляют следа в детерминированном потоке партии.
type ReplayAction struct {
	Turn   uint32
	Action Action
}

// ReplaySession - полная запись партии. Сида, класса и последовательности
// действий достаточно для побитового воспроизведения: мир, заселение и все
// боевые броски выводятся из них детерминированно.
type ReplaySession struct {
	Seed      uint64
	Class     uint8
	CreatedAt int64
	Actions   []ReplayAction
}
