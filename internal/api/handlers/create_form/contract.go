package create_form

import (
	"context"

	"github.com/m04kA/LIFF-HolidayService/internal/service/forms/models"
)

type FormsService interface {
	Create(ctx context.Context, idToken string) (*models.FormResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
