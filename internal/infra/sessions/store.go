package sessions

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/LIFF-HolidayService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Session сессия формы одного пользователя
// Живет только в памяти процесса; записи о выходных хранятся за webhook
type Session struct {
	ID          string
	UserID      string
	DisplayName string
	State       *domain.FormState

	// Submitting флаг выполняющейся отправки: единственный примитив
	// конкурентного контроля формы. Меняется только через
	// TryBeginSubmit/EndSubmit
	Submitting bool

	CreatedAt time.Time
	UpdatedAt time.Time
	ExpiresAt time.Time
}

// snapshot возвращает копию сессии, безопасную для чтения вне блокировки
func (s *Session) snapshot() *Session {
	c := *s
	c.State = s.State.Clone()
	return &c
}

// Store потокобезопасное in-memory хранилище сессий формы с TTL
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	log      Logger
}

// NewStore создает хранилище сессий с заданным временем жизни
func NewStore(ttl time.Duration, log Logger) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		log:      log,
	}
}

// Create создает новую сессию формы для пользователя
func (s *Store) Create(userID, displayName string) *Session {
	now := time.Now()
	session := &Session{
		ID:          uuid.NewString(),
		UserID:      userID,
		DisplayName: displayName,
		State:       domain.NewFormState(),
		CreatedAt:   now,
		UpdatedAt:   now,
		ExpiresAt:   now.Add(s.ttl),
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	s.log.Info("sessions: created form session id=%s for user=%s", session.ID, userID)
	return session.snapshot()
}

// Get возвращает копию сессии
func (s *Store) Get(id string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok || time.Now().After(session.ExpiresAt) {
		return nil, ErrSessionNotFound
	}
	return session.snapshot(), nil
}

// Update применяет fn к сессии под блокировкой и возвращает копию
// обновленной сессии. Ошибка fn отменяет обновление (состояние считается
// неизменным только если fn не мутировала его до ошибки: операции сервиса
// форм проверяют условия до мутаций)
func (s *Store) Update(id string, fn func(*Session) error) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok || time.Now().After(session.ExpiresAt) {
		return nil, ErrSessionNotFound
	}

	if err := fn(session); err != nil {
		return nil, err
	}

	now := time.Now()
	session.UpdatedAt = now
	session.ExpiresAt = now.Add(s.ttl)
	return session.snapshot(), nil
}

// TryBeginSubmit атомарно взводит флаг отправки
// Возвращает false, если отправка уже выполняется
func (s *Store) TryBeginSubmit(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok || time.Now().After(session.ExpiresAt) {
		return false, ErrSessionNotFound
	}

	if session.Submitting {
		return false, nil
	}
	session.Submitting = true
	return true, nil
}

// EndSubmit снимает флаг отправки. Вызывается на всех путях завершения
func (s *Store) EndSubmit(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session, ok := s.sessions[id]; ok {
		session.Submitting = false
	}
}

// Len текущее число сессий (включая истекшие до очистки)
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// StartCleanup запускает фоновую очистку истекших сессий
// Останавливается закрытием stopCh
func (s *Store) StartCleanup(interval time.Duration, stopCh <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.cleanup()
			case <-stopCh:
				return
			}
		}
	}()
}

func (s *Store) cleanup() {
	now := time.Now()

	s.mu.Lock()
	removed := 0
	for id, session := range s.sessions {
		// сессию с выполняющейся отправкой не трогаем
		if session.Submitting {
			continue
		}
		if now.After(session.ExpiresAt) {
			delete(s.sessions, id)
			removed++
		}
	}
	remaining := len(s.sessions)
	s.mu.Unlock()

	if removed > 0 {
		s.log.Info("sessions: cleanup removed %d expired sessions, %d remaining", removed, remaining)
	}
}
