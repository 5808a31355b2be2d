package domain

import (
	"fmt"
	"time"
)

// FormState состояние одной сессии формы выходного/отмены занятия.
// Владелец состояния: сервис форм; все изменения идут через его операции
type FormState struct {
	Mode      Mode       `json:"mode"`
	Subject   *Subject   `json:"subject,omitempty"` // только в режиме cancel
	StartDate string     `json:"start_date"`        // YYYY-MM-DD; в cancel: единственная дата
	EndDate   string     `json:"end_date"`          // YYYY-MM-DD; пусто = один день
	Title     string     `json:"title"`
	Note      string     `json:"note"`
	Reminders []Reminder `json:"reminders"`
}

// NewFormState возвращает начальное состояние: режим holiday, все поля пустые
func NewFormState() *FormState {
	return &FormState{
		Mode:      ModeHoliday,
		Reminders: []Reminder{},
	}
}

// AllowedWeekday день недели, разрешенный для даты отмены занятия
func (s *FormState) AllowedWeekday() (time.Weekday, bool) {
	if s.Subject == nil {
		return 0, false
	}
	return s.Subject.Weekday()
}

// Clone возвращает глубокую копию состояния
func (s *FormState) Clone() *FormState {
	c := *s
	if s.Subject != nil {
		subj := *s.Subject
		c.Subject = &subj
	}
	c.Reminders = make([]Reminder, len(s.Reminders))
	copy(c.Reminders, s.Reminders)
	return &c
}

// Validate проверяет готовность состояния к отправке. Чистая функция
// состояния: без побочных эффектов, без обращений к сети.
// Возвращает первую нарушенную проверку.
// Запрет прошедших дат обеспечивается в момент выбора даты
func (s *FormState) Validate() error {
	switch s.Mode {
	case ModeCancel:
		if s.Subject == nil {
			return ErrSubjectRequired
		}
		if s.StartDate == "" {
			return ErrCancelDateRequired
		}
		if !IsYMD(s.StartDate) {
			return fmt.Errorf("%w: %q", ErrInvalidDate, s.StartDate)
		}
		allowed, ok := s.AllowedWeekday()
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownWeekday, s.Subject.Day)
		}
		date, err := ParseYMD(s.StartDate)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidDate, s.StartDate)
		}
		if date.Weekday() != allowed {
			return ErrWrongWeekday
		}

	case ModeHoliday:
		if s.StartDate == "" {
			return ErrStartDateRequired
		}
		if !IsYMD(s.StartDate) {
			return fmt.Errorf("%w: %q", ErrInvalidDate, s.StartDate)
		}
		if s.EndDate != "" && !IsYMD(s.EndDate) {
			return fmt.Errorf("%w: %q", ErrInvalidDate, s.EndDate)
		}

	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidDate, s.Mode)
	}

	// каждая присутствующая строка напоминания обязана быть заполненной
	for i := range s.Reminders {
		if !s.Reminders[i].IsComplete() {
			return fmt.Errorf("%w: row %d", ErrIncompleteReminder, i+1)
		}
	}

	return nil
}

// CanSubmit true, когда состояние проходит все проверки Validate
func (s *FormState) CanSubmit() bool {
	return s.Validate() == nil
}
