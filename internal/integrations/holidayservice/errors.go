package holidayservice

import "errors"

var (
	// ErrTokenExpired возвращается, когда webhook отклонил id token
	ErrTokenExpired = errors.New("holidayservice client: id token rejected")

	// ErrRejected возвращается, когда сервис отклонил запись
	// (non-2xx со структурированной ошибкой или тело {ok:false})
	ErrRejected = errors.New("holidayservice client: request rejected")

	// ErrInternal возвращается при сетевых ошибках клиента
	ErrInternal = errors.New("holidayservice client: internal error")

	// ErrInvalidResponse возвращается при нечитаемом ответе сервиса
	ErrInvalidResponse = errors.New("holidayservice client: invalid response")
)

// RejectionError несет текст отказа для пользователя: сообщение сервиса
// из тела ответа, либо производное от HTTP-статуса, когда тела нет.
// Совместима с errors.Is(err, ErrRejected)
type RejectionError struct {
	Message string
}

// Error реализует error
func (e *RejectionError) Error() string {
	return ErrRejected.Error() + ": " + e.Message
}

// Is делает RejectionError совместимой с errors.Is(err, ErrRejected)
func (e *RejectionError) Is(target error) bool {
	return target == ErrRejected
}
