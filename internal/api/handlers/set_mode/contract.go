package set_mode

import (
	"github.com/m04kA/LIFF-HolidayService/internal/domain"
	"github.com/m04kA/LIFF-HolidayService/internal/service/forms/models"
)

type FormsService interface {
	SetMode(formID string, mode domain.Mode) (*models.FormResponse, error)
}

type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
