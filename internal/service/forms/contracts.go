package forms

import (
	"context"
	"time"

	"github.com/m04kA/LIFF-HolidayService/internal/infra/sessions"
	"github.com/m04kA/LIFF-HolidayService/internal/integrations/lineauth"
)

// SessionStore интерфейс хранилища сессий формы
type SessionStore interface {
	Create(userID, displayName string) *sessions.Session
	Get(id string) (*sessions.Session, error)
	Update(id string, fn func(*sessions.Session) error) (*sessions.Session, error)
}

// LineAuthClient интерфейс клиента проверки id token
type LineAuthClient interface {
	VerifyIDToken(ctx context.Context, idToken string) (*lineauth.Profile, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
