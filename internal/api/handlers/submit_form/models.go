package submit_form

// SubmitResponse - тело ответа успешной отправки формы
type SubmitResponse struct {
	HolidayID         *int64 `json:"holiday_id,omitempty"`
	RemindersAttached bool   `json:"reminders_attached"`
	RemindersCount    int    `json:"reminders_count"`
}

// PartialResponse - тело ответа частичного успеха: запись создана,
// напоминания прикрепить не удалось
type PartialResponse struct {
	Error     string `json:"error"`
	HolidayID *int64 `json:"holiday_id,omitempty"`
}
