package forms

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/LIFF-HolidayService/internal/domain"
	"github.com/m04kA/LIFF-HolidayService/internal/infra/sessions"
	lineClient "github.com/m04kA/LIFF-HolidayService/internal/integrations/lineauth"
	"github.com/m04kA/LIFF-HolidayService/internal/service/forms/models"
)

// DateTarget поле диапазона дат, изменяемое операцией PickDate
type DateTarget string

const (
	TargetStart DateTarget = "start"
	TargetEnd   DateTarget = "end"
)

// Service сервис состояния формы выходного/отмены занятия.
// Единственный владелец инвариантов формы: ограничение дня недели,
// согласованность режима и готовность к отправке
type Service struct {
	store        SessionStore
	lineClient   LineAuthClient
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса форм
func NewService(store SessionStore, lineAuth LineAuthClient, logger Logger) *Service {
	return &Service{
		store:        store,
		lineClient:   lineAuth,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Create проверяет id token и открывает новую сессию формы
func (s *Service) Create(ctx context.Context, idToken string) (*models.FormResponse, error) {
	profile, err := s.lineClient.VerifyIDToken(ctx, idToken)
	if err != nil {
		if errors.Is(err, lineClient.ErrTokenExpired) || errors.Is(err, lineClient.ErrTokenInvalid) {
			s.logger.Warn("Create: id token rejected: %v", err)
			return nil, ErrTokenExpired
		}
		s.logger.Error("Create: failed to verify id token: %v", err)
		return nil, fmt.Errorf("%w: failed to verify id token: %v", ErrInternal, err)
	}

	session := s.store.Create(profile.UserID, profile.DisplayName)
	s.logger.Info("Create: form session id=%s opened for user=%s", session.ID, profile.UserID)
	return models.FromSession(session), nil
}

// Get возвращает текущее состояние формы
func (s *Service) Get(formID string) (*models.FormResponse, error) {
	session, err := s.store.Get(formID)
	if err != nil {
		return nil, ErrFormNotFound
	}
	return models.FromSession(session), nil
}

// SetMode переключает режим формы и сбрасывает состояние,
// несовместимое с новым режимом
func (s *Service) SetMode(formID string, next domain.Mode) (*models.FormResponse, error) {
	if !next.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMode, next)
	}

	session, err := s.store.Update(formID, func(sess *sessions.Session) error {
		state := sess.State
		if state.Mode == next {
			return nil
		}

		state.Mode = next
		switch next {
		case domain.ModeHoliday:
			// предмет имеет смысл только при отмене занятия
			state.Subject = nil
		case domain.ModeCancel:
			// дата отмены выбирается заново после выбора предмета
			state.StartDate = ""
			state.EndDate = ""
		}
		return nil
	})
	if err != nil {
		return nil, s.mapStoreErr(err)
	}

	s.logger.Info("SetMode: form=%s mode=%s", formID, next)
	return models.FromSession(session), nil
}

// SelectSubject выбирает предмет для отмены занятия. Форма переводится в
// режим cancel, дата, нарушающая день недели предмета, сбрасывается,
// и подбирается ближайшая подходящая дата начиная с сегодняшнего дня
func (s *Service) SelectSubject(formID string, subject domain.Subject) (*models.FormResponse, error) {
	allowed, ok := subject.Weekday()
	if !ok {
		s.logger.Warn("SelectSubject: form=%s subject=%s has unknown weekday %q", formID, subject.Code, subject.Day)
		return nil, fmt.Errorf("%w: %q", ErrUnknownWeekday, subject.Day)
	}

	today := domain.StartOfDay(s.timeProvider.Now().In(domain.ZoneBangkok))

	session, err := s.store.Update(formID, func(sess *sessions.Session) error {
		state := sess.State
		state.Mode = domain.ModeCancel
		subj := subject
		state.Subject = &subj
		state.EndDate = ""

		// ранее выбранная дата, не попадающая на день предмета, сбрасывается
		if state.StartDate != "" {
			if picked, perr := domain.ParseYMD(state.StartDate); perr != nil || picked.Weekday() != allowed {
				state.StartDate = ""
			}
		}

		if state.StartDate == "" {
			if next, found := domain.NextWeekdayOccurrence(today, allowed, domain.MaxAutoAdvanceDays); found {
				state.StartDate = next.Format(domain.DateFormat)
			}
			// не нашли в пределах окна: дату выберет пользователь
		}

		state.EndDate = state.StartDate
		return nil
	})
	if err != nil {
		return nil, s.mapStoreErr(err)
	}

	s.logger.Info("SelectSubject: form=%s subject=%s day=%s date=%s",
		formID, subject.Code, subject.Day, session.State.StartDate)
	return models.FromSession(session), nil
}

// PickDate выбирает дату. В режиме cancel дата обязана попадать на день
// недели предмета и не быть в прошлом; нарушение отклоняется без
// изменения состояния. В режиме holiday конец диапазона раньше начала
// сбрасывается
func (s *Service) PickDate(formID string, target DateTarget, date string) (*models.FormResponse, error) {
	if target != TargetStart && target != TargetEnd {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTarget, target)
	}
	if !domain.IsYMD(date) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}

	picked, err := domain.ParseYMD(date)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}

	today := domain.StartOfDay(s.timeProvider.Now().In(domain.ZoneBangkok))
	if picked.Before(today) {
		return nil, ErrDateInPast
	}

	session, err := s.store.Update(formID, func(sess *sessions.Session) error {
		state := sess.State

		if state.Mode == domain.ModeCancel {
			if state.Subject == nil {
				return ErrSubjectNotSelected
			}
			allowed, ok := state.AllowedWeekday()
			if !ok {
				return fmt.Errorf("%w: %q", ErrUnknownWeekday, state.Subject.Day)
			}
			if picked.Weekday() != allowed {
				return ErrWrongWeekday
			}
			// в режиме cancel диапазон схлопывается в один день
			state.StartDate = date
			state.EndDate = date
			return nil
		}

		switch target {
		case TargetStart:
			state.StartDate = date
			if state.EndDate != "" && state.EndDate < state.StartDate {
				state.EndDate = ""
			}
		case TargetEnd:
			if state.StartDate != "" && date < state.StartDate {
				state.EndDate = ""
				return nil
			}
			state.EndDate = date
		}
		return nil
	})
	if err != nil {
		return nil, s.mapStoreErr(err)
	}

	s.logger.Info("PickDate: form=%s target=%s date=%s", formID, target, date)
	return models.FromSession(session), nil
}

// UpdateDetails обновляет заголовок и примечание
// Пустые значения заменяются значениями по умолчанию при отправке
func (s *Service) UpdateDetails(formID, title, note string) (*models.FormResponse, error) {
	session, err := s.store.Update(formID, func(sess *sessions.Session) error {
		sess.State.Title = title
		sess.State.Note = note
		return nil
	})
	if err != nil {
		return nil, s.mapStoreErr(err)
	}
	return models.FromSession(session), nil
}

// AddReminder добавляет строку напоминания (возможно частично заполненную)
func (s *Service) AddReminder(formID string, reminder domain.Reminder) (*models.FormResponse, error) {
	session, err := s.store.Update(formID, func(sess *sessions.Session) error {
		if len(sess.State.Reminders) >= domain.MaxReminders {
			return ErrTooManyReminders
		}
		sess.State.Reminders = append(sess.State.Reminders, reminder)
		return nil
	})
	if err != nil {
		return nil, s.mapStoreErr(err)
	}

	s.logger.Info("AddReminder: form=%s rows=%d", formID, len(session.State.Reminders))
	return models.FromSession(session), nil
}

// UpdateReminder применяет частичное обновление к строке напоминания
func (s *Service) UpdateReminder(formID string, index int, patch domain.ReminderPatch) (*models.FormResponse, error) {
	session, err := s.store.Update(formID, func(sess *sessions.Session) error {
		if index < 0 || index >= len(sess.State.Reminders) {
			return ErrInvalidReminderIndex
		}
		if patch.Date != nil && *patch.Date != "" && !domain.IsYMD(*patch.Date) {
			return fmt.Errorf("%w: %q", ErrInvalidDate, *patch.Date)
		}
		sess.State.Reminders[index].Apply(patch)
		return nil
	})
	if err != nil {
		return nil, s.mapStoreErr(err)
	}
	return models.FromSession(session), nil
}

// RemoveReminder удаляет строку напоминания
func (s *Service) RemoveReminder(formID string, index int) (*models.FormResponse, error) {
	session, err := s.store.Update(formID, func(sess *sessions.Session) error {
		if index < 0 || index >= len(sess.State.Reminders) {
			return ErrInvalidReminderIndex
		}
		sess.State.Reminders = append(sess.State.Reminders[:index], sess.State.Reminders[index+1:]...)
		return nil
	})
	if err != nil {
		return nil, s.mapStoreErr(err)
	}
	return models.FromSession(session), nil
}

// Reset возвращает форму к начальному состоянию. Идемпотентна
func (s *Service) Reset(formID string) (*models.FormResponse, error) {
	session, err := s.store.Update(formID, func(sess *sessions.Session) error {
		sess.State = domain.NewFormState()
		return nil
	})
	if err != nil {
		return nil, s.mapStoreErr(err)
	}

	s.logger.Info("Reset: form=%s cleared", formID)
	return models.FromSession(session), nil
}

// mapStoreErr транслирует ошибки хранилища и колбэков обновления
// в sentinel errors сервиса
func (s *Service) mapStoreErr(err error) error {
	if errors.Is(err, sessions.ErrSessionNotFound) {
		return ErrFormNotFound
	}
	return err
}
