package list_subjects

import "errors"

var (
	// ErrTokenExpired возвращается, когда id token просрочен или отклонен
	// Пользователя необходимо отправить на повторный логин
	ErrTokenExpired = errors.New("list_subjects: id token expired")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("list_subjects: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("list_subjects: internal error")
)
