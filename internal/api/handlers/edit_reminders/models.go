package edit_reminders

import (
	"github.com/m04kA/LIFF-HolidayService/internal/domain"
)

// AddReminderRequest - тело запроса на добавление строки напоминания.
// Все поля опциональны: пустое тело добавляет пустую строку
type AddReminderRequest struct {
	Date       string `json:"date,omitempty"`
	DaysBefore *int   `json:"days_before,omitempty"`
	Hour       *int   `json:"hour,omitempty"`
	Minute     *int   `json:"minute,omitempty"`
}

// ToReminder собирает доменную строку напоминания.
// Часы и минуты зажимаются в допустимые диапазоны
func (r *AddReminderRequest) ToReminder() domain.Reminder {
	rem := domain.Reminder{
		Date:       r.Date,
		DaysBefore: r.DaysBefore,
	}
	if r.Hour != nil || r.Minute != nil {
		rem.Time = domain.ClampTime(intOrZero(r.Hour), intOrZero(r.Minute))
	}
	return rem
}

// UpdateReminderRequest - тело запроса на частичное обновление строки.
// nil-поля не изменяются
type UpdateReminderRequest struct {
	Date       *string `json:"date,omitempty"`
	DaysBefore *int    `json:"days_before,omitempty"`
	Hour       *int    `json:"hour,omitempty"`
	Minute     *int    `json:"minute,omitempty"`
}

// ToPatch собирает patch доменной строки напоминания
func (r *UpdateReminderRequest) ToPatch() domain.ReminderPatch {
	patch := domain.ReminderPatch{
		Date:       r.Date,
		DaysBefore: r.DaysBefore,
	}
	if r.Hour != nil || r.Minute != nil {
		t := domain.ClampTime(intOrZero(r.Hour), intOrZero(r.Minute))
		patch.Time = &t
	}
	return patch
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
