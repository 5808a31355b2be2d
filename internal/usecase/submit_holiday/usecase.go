package submit_holiday

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/LIFF-HolidayService/internal/domain"
	"github.com/m04kA/LIFF-HolidayService/internal/infra/sessions"
	holidayClient "github.com/m04kA/LIFF-HolidayService/internal/integrations/holidayservice"
)

// UseCase use case двухфазной отправки формы:
// создание записи в holiday-webhook, затем прикрепление напоминаний.
// Шаги строго последовательны и не атомарны: неудача второго шага
// не откатывает первый, а поднимается как частичный успех
type UseCase struct {
	store         FormStore
	holidayClient HolidayServiceClient
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(store FormStore, holiday HolidayServiceClient, logger Logger) *UseCase {
	return &UseCase{
		store:         store,
		holidayClient: holiday,
		logger:        logger,
	}
}

// Execute выполняет отправку формы
// Флаг отправки сессии гарантирует, что на одну форму в любой момент
// выполняется не более одной отправки; повторный вызов завершается
// без сетевых запросов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SubmitHoliday: validation failed: %v", err)
		return nil, err
	}

	// 2. Захватываем флаг отправки
	acquired, err := uc.store.TryBeginSubmit(req.FormID)
	if err != nil {
		if errors.Is(err, sessions.ErrSessionNotFound) {
			uc.logger.Warn("SubmitHoliday: form=%s not found", req.FormID)
			return nil, ErrFormNotFound
		}
		uc.logger.Error("SubmitHoliday: failed to acquire submit flag for form=%s: %v", req.FormID, err)
		return nil, fmt.Errorf("%w: failed to acquire submit flag: %v", ErrInternal, err)
	}
	if !acquired {
		uc.logger.Warn("SubmitHoliday: form=%s submit already in flight", req.FormID)
		return nil, ErrSubmitInFlight
	}
	// флаг снимается на любом пути завершения
	defer uc.store.EndSubmit(req.FormID)

	// 3. Читаем состояние формы
	session, err := uc.store.Get(req.FormID)
	if err != nil {
		return nil, ErrFormNotFound
	}

	uc.logger.Info("SubmitHoliday: form=%s user=%s mode=%s start=%s end=%s reminders=%d",
		req.FormID, session.UserID, session.State.Mode,
		session.State.StartDate, session.State.EndDate, len(session.State.Reminders))

	// 4. Локальная валидация состояния: до сети доходит только готовая форма
	if err := session.State.Validate(); err != nil {
		uc.logger.Warn("SubmitHoliday: form=%s not ready: %v", req.FormID, err)
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	// 5. Собираем каноническую запись
	record, err := domain.BuildHolidayRecord(session.State)
	if err != nil {
		uc.logger.Error("SubmitHoliday: form=%s failed to build record: %v", req.FormID, err)
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	// 6. Создаем запись в webhook
	holidayID, err := uc.holidayClient.CreateHoliday(ctx, req.IDToken, record)
	if err != nil {
		return nil, uc.mapCreateErr(req.FormID, err)
	}

	resp := &Response{
		HolidayID:      holidayID,
		RemindersCount: len(record.Reminders),
	}

	// 7. Напоминаний нет: отправка завершена
	if len(record.Reminders) == 0 {
		uc.logger.Info("SubmitHoliday: form=%s record created, no reminders", req.FormID)
		return resp, nil
	}

	// 8. Без идентификатора записи напоминания прикрепить не к чему.
	// Запись уже существует: это частичный успех, не молчаливый пропуск
	if holidayID == nil {
		uc.logger.Error("SubmitHoliday: form=%s record created without id, %d reminders pending",
			req.FormID, len(record.Reminders))
		return nil, &PartialError{
			Reason: fmt.Errorf("service returned no record id"),
		}
	}

	// 9. Прикрепляем напоминания отдельным запросом
	if err := uc.holidayClient.AttachReminders(ctx, req.IDToken, session.UserID, *holidayID, record.Reminders); err != nil {
		uc.logger.Error("SubmitHoliday: form=%s holiday=%d failed to attach reminders: %v",
			req.FormID, *holidayID, err)
		return nil, &PartialError{
			HolidayID: holidayID,
			Reason:    err,
		}
	}

	resp.RemindersAttached = true
	uc.logger.Info("SubmitHoliday: form=%s holiday=%v created with %d reminders",
		req.FormID, *holidayID, len(record.Reminders))
	return resp, nil
}

// mapCreateErr транслирует ошибки клиента webhook в sentinel errors usecase
func (uc *UseCase) mapCreateErr(formID string, err error) error {
	switch {
	case errors.Is(err, holidayClient.ErrTokenExpired):
		uc.logger.Warn("SubmitHoliday: form=%s id token rejected", formID)
		return ErrTokenExpired

	case errors.Is(err, holidayClient.ErrRejected):
		uc.logger.Warn("SubmitHoliday: form=%s rejected: %v", formID, err)
		var rejection *holidayClient.RejectionError
		if errors.As(err, &rejection) {
			return &RejectedError{Message: rejection.Message}
		}
		return fmt.Errorf("%w: %v", ErrRejected, err)

	default:
		uc.logger.Error("SubmitHoliday: form=%s transport failure: %v", formID, err)
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
}
