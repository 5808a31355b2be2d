package subjectservice

import "errors"

var (
	// ErrTokenExpired возвращается, когда webhook отклонил id token
	ErrTokenExpired = errors.New("subjectservice client: id token rejected")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("subjectservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе сервиса
	ErrInvalidResponse = errors.New("subjectservice client: invalid response")
)
