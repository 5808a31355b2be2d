package domain

import (
	"strings"
	"time"
)

// DayOther группа для предметов без указанного дня недели
const DayOther = "อื่นๆ"

// thaiDays отображение тайских названий дней недели в time.Weekday
// "พฤ" встречается в расписаниях как сокращение четверга
var thaiDays = map[string]time.Weekday{
	"อาทิตย์":   time.Sunday,
	"จันทร์":    time.Monday,
	"อังคาร":    time.Tuesday,
	"พุธ":       time.Wednesday,
	"พฤ":        time.Thursday,
	"พฤหัสบดี": time.Thursday,
	"ศุกร์":     time.Friday,
	"เสาร์":     time.Saturday,
}

// dayOrder порядок отображения групп по дням (จันทร์..อาทิตย์, затем прочее)
var dayOrder = []string{
	"จันทร์", "อังคาร", "พุธ", "พฤหัสบดี", "พฤ", "ศุกร์", "เสาร์", "อาทิตย์", DayOther,
}

// ThaiDayToWeekday возвращает день недели по тайскому названию
func ThaiDayToWeekday(day string) (time.Weekday, bool) {
	w, ok := thaiDays[strings.TrimSpace(day)]
	return w, ok
}

// DaySortKey возвращает позицию дня в порядке отображения
// Неизвестные значения уходят в конец списка
func DaySortKey(day string) int {
	for i, d := range dayOrder {
		if d == strings.TrimSpace(day) {
			return i
		}
	}
	return 999
}

// StartOfDay обнуляет компонент времени
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// NextWeekdayOccurrence ищет ближайшую дату (включая from), выпадающую на weekday.
// Поиск ограничен maxDays днями вперед; при превышении возвращается ok=false
func NextWeekdayOccurrence(from time.Time, weekday time.Weekday, maxDays int) (time.Time, bool) {
	d := StartOfDay(from)
	for i := 0; i <= maxDays; i++ {
		if d.Weekday() == weekday {
			return d, true
		}
		d = d.AddDate(0, 0, 1)
	}
	return time.Time{}, false
}

// IsYMD проверяет, что строка является корректной датой YYYY-MM-DD
func IsYMD(s string) bool {
	if len(s) != len(DateFormat) {
		return false
	}
	_, err := time.Parse(DateFormat, s)
	return err == nil
}

// ParseYMD парсит дату YYYY-MM-DD в поясе UTC+7
func ParseYMD(s string) (time.Time, error) {
	return time.ParseInLocation(DateFormat, s, ZoneBangkok)
}
