package domain

import "errors"

// Ошибки валидации состояния формы
// Используются как таргеты errors.Is на всех слоях выше
var (
	// ErrStartDateRequired в режиме holiday не выбрана дата начала
	ErrStartDateRequired = errors.New("domain: start date is required")

	// ErrSubjectRequired в режиме cancel не выбран предмет
	ErrSubjectRequired = errors.New("domain: subject is required")

	// ErrCancelDateRequired в режиме cancel не выбрана дата отмены
	ErrCancelDateRequired = errors.New("domain: cancel date is required")

	// ErrWrongWeekday дата не совпадает с днем недели выбранного предмета
	ErrWrongWeekday = errors.New("domain: date does not match subject weekday")

	// ErrInvalidDate строка даты не соответствует формату YYYY-MM-DD
	ErrInvalidDate = errors.New("domain: invalid date")

	// ErrIncompleteReminder строка напоминания заполнена не полностью
	ErrIncompleteReminder = errors.New("domain: incomplete reminder")

	// ErrUnknownWeekday у предмета указан неизвестный день недели
	ErrUnknownWeekday = errors.New("domain: unknown subject weekday")
)
