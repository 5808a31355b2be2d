package sessions

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия формы не найдена или истекла
	ErrSessionNotFound = errors.New("sessions: form session not found")
)
