package list_subjects

import (
	"context"

	"github.com/m04kA/LIFF-HolidayService/internal/domain"
	"github.com/m04kA/LIFF-HolidayService/internal/integrations/lineauth"
)

// LineAuthClient интерфейс клиента проверки id token
type LineAuthClient interface {
	VerifyIDToken(ctx context.Context, idToken string) (*lineauth.Profile, error)
}

// SubjectServiceClient интерфейс клиента справочника предметов
type SubjectServiceClient interface {
	GetSubjects(ctx context.Context, idToken string) ([]domain.Subject, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
