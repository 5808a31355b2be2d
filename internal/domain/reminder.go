package domain

import (
	"fmt"

	"github.com/m04kA/LIFF-HolidayService/pkg/types"
)

// Reminder напоминание, привязанное к записи о выходном/отмене.
// Либо абсолютное (Date + Time), либо относительное (DaysBefore + Time)
// от даты начала события. Заполняется построчно, пустые строки допустимы
// до момента отправки
type Reminder struct {
	Date       string           `json:"date,omitempty"`        // YYYY-MM-DD
	DaysBefore *int             `json:"days_before,omitempty"` // дней до начала события
	Time       types.TimeString `json:"time,omitempty"`        // HH:MM
}

// ReminderPatch частичное обновление строки напоминания
// nil-поля не изменяются
type ReminderPatch struct {
	Date       *string           `json:"date,omitempty"`
	DaysBefore *int              `json:"days_before,omitempty"`
	Time       *types.TimeString `json:"time,omitempty"`
}

// Apply применяет patch к строке напоминания
func (r *Reminder) Apply(p ReminderPatch) {
	if p.Date != nil {
		r.Date = *p.Date
		// абсолютная дата вытесняет относительное смещение
		if *p.Date != "" {
			r.DaysBefore = nil
		}
	}
	if p.DaysBefore != nil {
		r.DaysBefore = p.DaysBefore
		r.Date = ""
	}
	if p.Time != nil {
		r.Time = *p.Time
	}
}

// IsEmpty возвращает true для полностью пустой строки
func (r *Reminder) IsEmpty() bool {
	return r.Date == "" && r.DaysBefore == nil && r.Time.IsZero()
}

// IsComplete возвращает true, когда строка заполнена: указано время
// и либо абсолютная дата, либо относительное смещение
func (r *Reminder) IsComplete() bool {
	if r.Time.IsZero() {
		return false
	}
	if r.Date != "" {
		return IsYMD(r.Date)
	}
	return r.DaysBefore != nil && *r.DaysBefore >= 0
}

// clampInt ограничивает значение диапазоном [min, max]
func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ClampTime приводит часы к [0,23] и минуты к [0,59], возвращая HH:MM
func ClampTime(hour, minute int) types.TimeString {
	h := clampInt(hour, 0, 23)
	m := clampInt(minute, 0, 59)
	return types.TimeString(fmt.Sprintf("%02d:%02d", h, m))
}

// Resolve вычисляет абсолютный timestamp напоминания относительно даты
// начала события (YYYY-MM-DD). Результат: ISO-8601 с фиксированным
// смещением +07:00: "YYYY-MM-DDTHH:MM:00+07:00"
func (r *Reminder) Resolve(eventStart string) (string, error) {
	if !r.IsComplete() {
		return "", ErrIncompleteReminder
	}
	if err := r.Time.Validate(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrIncompleteReminder, err)
	}

	date := r.Date
	if date == "" {
		start, err := ParseYMD(eventStart)
		if err != nil {
			return "", fmt.Errorf("%w: invalid event start %q", ErrIncompleteReminder, eventStart)
		}
		date = start.AddDate(0, 0, -*r.DaysBefore).Format(DateFormat)
	}

	return fmt.Sprintf("%sT%s:00+07:00", date, r.Time), nil
}
