package submit_holiday

import (
	"errors"
	"fmt"
)

var (
	// ErrFormNotFound возвращается, когда сессия формы не найдена или истекла
	ErrFormNotFound = errors.New("submit_holiday: form session not found")

	// ErrSubmitInFlight возвращается при повторной отправке во время
	// выполняющейся. Повторный вызов не инициирует сетевых запросов
	ErrSubmitInFlight = errors.New("submit_holiday: submit already in flight")

	// ErrValidation возвращается, когда состояние формы не готово к отправке
	// Локальная ошибка: до сети запрос не доходит
	ErrValidation = errors.New("submit_holiday: validation failed")

	// ErrTokenExpired возвращается, когда backend отклонил id token
	// Пользователя необходимо отправить на повторный логин
	ErrTokenExpired = errors.New("submit_holiday: id token expired")

	// ErrRejected возвращается, когда сервис отклонил запись
	// (структурированная ошибка или non-2xx). Запись не создана
	ErrRejected = errors.New("submit_holiday: request rejected")

	// ErrTransport возвращается при сетевой ошибке или нечитаемом ответе
	// Запись считается не созданной
	ErrTransport = errors.New("submit_holiday: transport error")

	// ErrPartialSuccess возвращается, когда запись создана, но напоминания
	// прикрепить не удалось. Откат не выполняется: запись существует,
	// ошибка восстановима отдельной операцией
	ErrPartialSuccess = errors.New("submit_holiday: record created, reminders not attached")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("submit_holiday: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("submit_holiday: internal error")
)

// RejectedError отказ сервиса с текстом для пользователя: сообщение сервиса,
// либо производное от HTTP-статуса. Совместима с errors.Is(err, ErrRejected)
type RejectedError struct {
	Message string
}

// Error реализует error
func (e *RejectedError) Error() string {
	return ErrRejected.Error() + ": " + e.Message
}

// Is делает RejectedError совместимой с errors.Is(err, ErrRejected)
func (e *RejectedError) Is(target error) bool {
	return target == ErrRejected
}

// PartialError ошибка частичного успеха: запись создана, но напоминания не прикреплены.
// Несет идентификатор созданной записи, чтобы фронтенд мог показать его
// и предложить повторить только шаг напоминаний
type PartialError struct {
	// HolidayID идентификатор созданной записи; nil, если сервис его не вернул
	HolidayID *int64

	// Reason причина, по которой напоминания не прикреплены
	Reason error
}

// Error реализует error
func (e *PartialError) Error() string {
	if e.Reason != nil {
		return fmt.Sprintf("%v: %v", ErrPartialSuccess, e.Reason)
	}
	return ErrPartialSuccess.Error()
}

// Is делает PartialError совместимым с errors.Is(err, ErrPartialSuccess)
func (e *PartialError) Is(target error) bool {
	return target == ErrPartialSuccess
}

// Unwrap возвращает причину для цепочки errors.Is/As
func (e *PartialError) Unwrap() error {
	return e.Reason
}
