package forms

import "errors"

var (
	// ErrFormNotFound возвращается, когда сессия формы не найдена или истекла
	ErrFormNotFound = errors.New("forms: form session not found")

	// ErrTokenExpired возвращается, когда id token просрочен или отклонен
	ErrTokenExpired = errors.New("forms: id token expired")

	// ErrInvalidMode возвращается при неизвестном режиме формы
	ErrInvalidMode = errors.New("forms: invalid form mode")

	// ErrInvalidTarget возвращается при неизвестном поле даты
	ErrInvalidTarget = errors.New("forms: invalid date target")

	// ErrInvalidDate возвращается при некорректном формате даты
	ErrInvalidDate = errors.New("forms: invalid date format")

	// ErrDateInPast возвращается при выборе даты раньше сегодняшнего дня
	ErrDateInPast = errors.New("forms: date is in the past")

	// ErrSubjectNotSelected возвращается при выборе даты отмены без выбранного предмета
	ErrSubjectNotSelected = errors.New("forms: subject is not selected")

	// ErrWrongWeekday возвращается, когда дата не совпадает с днем недели предмета
	ErrWrongWeekday = errors.New("forms: date does not match subject weekday")

	// ErrUnknownWeekday возвращается, когда у предмета неизвестный день недели
	ErrUnknownWeekday = errors.New("forms: subject has unknown weekday")

	// ErrInvalidReminderIndex возвращается при обращении к несуществующей строке напоминания
	ErrInvalidReminderIndex = errors.New("forms: invalid reminder index")

	// ErrTooManyReminders возвращается при превышении лимита напоминаний
	ErrTooManyReminders = errors.New("forms: too many reminders")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("forms: internal error")
)
