package domain

import (
	"sort"
	"strings"
	"time"
)

// ActivityRecord - одна нормализованная единица внешней активности
// (коммит или событие календаря). Генератор не различает источники:
// оба парсера приводят данные к этой форме.
type ActivityRecord struct {
	ID   string    `json:"id"`
	Date time.Time `json:"date"`
	// Magnitude - скаляр "веса": изменённые строки для коммита,
	// длительность + интенсивность участников для события.
	Magnitude int `json:"magnitude"`
	// IsSpecial - merge-коммит или событие класса all-hands.
	// Любая такая запись делает комнату дня боссовой.
	IsSpecial  bool            `json:"isSpecial"`
	Categories *CategoryCounts `json:"categories,omitempty"`
	Message    string          `json:"message"`
}

// CategoryCounts - счётчики файлов коммита по категориям.
// nil у записи означает "данных о категориях нет" - тогда типизация
// комнаты падает обратно на эвристики по тексту сообщения.
type CategoryCounts struct {
	Test   int `json:"test"`
	Config int `json:"config"`
	Doc    int `json:"doc"`
	Other  int `json:"other"`
}

// Total возвращает сумму по всем категориям.
func (c *CategoryCounts) Total() int {
	if c == nil {
		return 0
	}
	return c.Test + c.Config + c.Doc + c.Other
}

// DateKey возвращает календарную дату записи (без времени).
func (r ActivityRecord) DateKey() string {
	return r.Date.UTC().Format("2006-01-02")
}

// MessageContains проверяет вхождение любого из ключевых слов
// в сообщение без учёта регистра.
func (r ActivityRecord) MessageContains(keywords ...string) bool {
	msg := strings.ToLower(r.Message)
	for _, kw := range keywords {
		if strings.Contains(msg, kw) {
			return true
		}
	}
	return false
}

// DayGroup - записи одной календарной даты в исходном порядке.
type DayGroup struct {
	Date    time.Time
	Records []ActivityRecord
}

// TotalMagnitude возвращает суммарный вес дня. Он определяет размер комнаты.
func (g DayGroup) TotalMagnitude() int {
	total := 0
	for _, r := range g.Records {
		total += r.Magnitude
	}
	return total
}

// GroupByDate группирует записи по календарной дате.
// Группы возвращаются по возрастанию даты; внутри группы сохраняется
// исходный (стабильный хронологический) порядок записей.
func GroupByDate(records []ActivityRecord) []DayGroup {
	byKey := make(map[string]*DayGroup)
	var keys []string

	for _, r := range records {
		key := r.DateKey()
		g, ok := byKey[key]
		if !ok {
			day, _ := time.ParseInLocation("2006-01-02", key, time.UTC)
			g = &DayGroup{Date: day}
			byKey[key] = g
			keys = append(keys, key)
		}
		g.Records = append(g.Records, r)
	}

	sort.Strings(keys)

	groups := make([]DayGroup, 0, len(keys))
	for _, key := range keys {
		groups = append(groups, *byKey[key])
	}
	return groups
}
