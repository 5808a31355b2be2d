package holidayservice

import "encoding/json"

// createResult результат создания записи
// ID может отсутствовать: часть workflow исторически не возвращает id
type createResult struct {
	ID      json.Number `json:"id"`
	OK      *bool       `json:"ok,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// attachRemindersRequest тело запроса прикрепления напоминаний к записи
type attachRemindersRequest struct {
	UserID    string   `json:"userId"`
	HolidayID int64    `json:"holidayId"`
	Reminders []string `json:"reminders"`
}

// serverMessage извлекает человекочитаемое сообщение об ошибке
func (r *createResult) serverMessage() string {
	if r.Error != "" {
		return r.Error
	}
	return r.Message
}
