package lineauth

import "errors"

var (
	// ErrTokenExpired возвращается, когда id token просрочен или отозван
	// Сигнал для фронтенда увести пользователя на повторный логин
	ErrTokenExpired = errors.New("lineauth client: id token expired")

	// ErrTokenInvalid возвращается, когда id token отклонен платформой
	ErrTokenInvalid = errors.New("lineauth client: id token rejected")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("lineauth client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе платформы
	ErrInvalidResponse = errors.New("lineauth client: invalid response")
)
