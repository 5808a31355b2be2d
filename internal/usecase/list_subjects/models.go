package list_subjects

import "github.com/m04kA/LIFF-HolidayService/internal/domain"

// Request модель запроса списка предметов
type Request struct {
	IDToken string // bearer id token пользователя
}

// DayGroup группа занятий одного дня недели
type DayGroup struct {
	Day      string           `json:"day"`
	Subjects []domain.Subject `json:"subjects"`
}

// Response сгруппированный по дням список занятий пользователя
type Response struct {
	UserID      string     `json:"userId"`
	DisplayName string     `json:"displayName,omitempty"`
	Groups      []DayGroup `json:"groups"`
	Total       int        `json:"total"`
}
