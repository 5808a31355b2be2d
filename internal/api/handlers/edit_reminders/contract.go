package edit_reminders

import (
	"github.com/m04kA/LIFF-HolidayService/internal/domain"
	"github.com/m04kA/LIFF-HolidayService/internal/service/forms/models"
)

type FormsService interface {
	AddReminder(formID string, reminder domain.Reminder) (*models.FormResponse, error)
	UpdateReminder(formID string, index int, patch domain.ReminderPatch) (*models.FormResponse, error)
	RemoveReminder(formID string, index int) (*models.FormResponse, error)
}

type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
