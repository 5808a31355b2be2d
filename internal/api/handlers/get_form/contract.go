package get_form

import (
	"github.com/m04kA/LIFF-HolidayService/internal/service/forms/models"
)

type FormsService interface {
	Get(formID string) (*models.FormResponse, error)
}

type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
