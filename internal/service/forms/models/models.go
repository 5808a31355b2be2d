package models

import (
	"github.com/m04kA/LIFF-HolidayService/internal/domain"
	"github.com/m04kA/LIFF-HolidayService/internal/infra/sessions"
)

// FormResponse снимок состояния формы для фронтенда
// CanSubmit вычисляется заново при каждом ответе: фронтенд только
// отражает его на кнопке сохранения
type FormResponse struct {
	FormID      string            `json:"formId"`
	UserID      string            `json:"userId"`
	DisplayName string            `json:"displayName,omitempty"`
	Mode        domain.Mode       `json:"mode"`
	Subject     *domain.Subject   `json:"subject,omitempty"`
	AllowedDay  string            `json:"allowedDay,omitempty"` // тайский день недели выбранного предмета
	StartDate   string            `json:"startDate"`
	EndDate     string            `json:"endDate"`
	Title       string            `json:"title"`
	Note        string            `json:"note"`
	Reminders   []domain.Reminder `json:"reminders"`
	CanSubmit   bool              `json:"canSubmit"`
	Submitting  bool              `json:"submitting"`
}

// FromSession конвертирует сессию в ответ для фронтенда
func FromSession(s *sessions.Session) *FormResponse {
	resp := &FormResponse{
		FormID:      s.ID,
		UserID:      s.UserID,
		DisplayName: s.DisplayName,
		Mode:        s.State.Mode,
		Subject:     s.State.Subject,
		StartDate:   s.State.StartDate,
		EndDate:     s.State.EndDate,
		Title:       s.State.Title,
		Note:        s.State.Note,
		Reminders:   s.State.Reminders,
		CanSubmit:   s.State.CanSubmit(),
		Submitting:  s.Submitting,
	}

	if s.State.Subject != nil {
		resp.AllowedDay = s.State.Subject.Day
	}
	if resp.Reminders == nil {
		resp.Reminders = []domain.Reminder{}
	}
	return resp
}
