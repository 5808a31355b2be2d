package select_subject

import (
	"github.com/m04kA/LIFF-HolidayService/internal/domain"
	"github.com/m04kA/LIFF-HolidayService/internal/service/forms/models"
)

type FormsService interface {
	SelectSubject(formID string, subject domain.Subject) (*models.FormResponse, error)
}

type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
