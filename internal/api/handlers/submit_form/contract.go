package submit_form

import (
	"context"

	submitHoliday "github.com/m04kA/LIFF-HolidayService/internal/usecase/submit_holiday"
)

type SubmitHolidayUseCase interface {
	Execute(ctx context.Context, req *submitHoliday.Request) (*submitHoliday.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
