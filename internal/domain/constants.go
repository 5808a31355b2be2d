package domain

import "time"

// Форматы даты и времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ZoneBangkok фиксированный часовой пояс UTC+7
// Все исходящие timestamps формируются строго в этом поясе
var ZoneBangkok = time.FixedZone("UTC+7", 7*60*60)

// Mode режим формы
type Mode string

const (
	// ModeHoliday выходной день (диапазон дат, без привязки к предмету)
	ModeHoliday Mode = "holiday"

	// ModeCancel отмена занятия (один предмет + одна дата, ограниченная днем недели)
	ModeCancel Mode = "cancel"
)

// IsValid возвращает true для известного режима формы
func (m Mode) IsValid() bool {
	return m == ModeHoliday || m == ModeCancel
}

// Значения по умолчанию и ограничения
const (
	// DefaultHolidayTitle заголовок записи по умолчанию для режима holiday
	DefaultHolidayTitle = "วันหยุด"

	// DefaultCancelTitle заголовок для режима cancel, когда у предмета нет кода и названия
	DefaultCancelTitle = "ยกคลาส"

	// MaxAutoAdvanceDays предел поиска ближайшей даты по дню недели
	// При валидном дне недели дата находится максимум за 6 шагов,
	// ограничение защищает от некорректного значения дня
	MaxAutoAdvanceDays = 21

	// MaxReminders максимальное число напоминаний на одну запись
	MaxReminders = 10
)

// AllDayFlag значение поля all_day в исходящей записи
// Workflow на стороне n8n различает только 0/1, форма всегда шлет целодневные записи
const AllDayFlag = 1
