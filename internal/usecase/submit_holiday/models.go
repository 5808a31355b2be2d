package submit_holiday

// Request модель запроса на отправку формы
type Request struct {
	FormID  string // идентификатор сессии формы
	IDToken string // bearer id token пользователя
}

// Response модель ответа успешной отправки
type Response struct {
	// HolidayID идентификатор созданной записи; nil, если сервис его не
	// вернул (допустимо только при отсутствии напоминаний)
	HolidayID *int64

	// RemindersAttached true, когда второй шаг (прикрепление напоминаний)
	// выполнен успешно
	RemindersAttached bool

	// RemindersCount число прикрепленных напоминаний
	RemindersCount int
}
