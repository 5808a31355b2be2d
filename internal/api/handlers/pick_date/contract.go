package pick_date

import (
	"github.com/m04kA/LIFF-HolidayService/internal/service/forms"
	"github.com/m04kA/LIFF-HolidayService/internal/service/forms/models"
)

type FormsService interface {
	PickDate(formID string, target forms.DateTarget, date string) (*models.FormResponse, error)
}

type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
