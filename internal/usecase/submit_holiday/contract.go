package submit_holiday

import (
	"context"

	"github.com/m04kA/LIFF-HolidayService/internal/domain"
	"github.com/m04kA/LIFF-HolidayService/internal/infra/sessions"
)

// FormStore интерфейс хранилища сессий формы
type FormStore interface {
	Get(id string) (*sessions.Session, error)
	TryBeginSubmit(id string) (bool, error)
	EndSubmit(id string)
}

// HolidayServiceClient интерфейс клиента holiday-webhook
type HolidayServiceClient interface {
	CreateHoliday(ctx context.Context, idToken string, record *domain.HolidayRecord) (*int64, error)
	AttachReminders(ctx context.Context, idToken, userID string, holidayID int64, reminders []string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
