package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/LIFF-HolidayService/pkg/types"
)

// Subject занятие из расписания студента
// Данные приходят из subject-справочника только на чтение и не изменяются сервисом
type Subject struct {
	Code       string           `json:"subject_code"`
	Name       string           `json:"subject_name"`
	Section    string           `json:"section,omitempty"`
	Type       string           `json:"type,omitempty"` // ทฤษฎี / ปฏิบัติ и т.п.
	Day        string           `json:"day"`            // тайское название дня недели
	StartTime  types.TimeString `json:"start_time,omitempty"`
	EndTime    types.TimeString `json:"end_time,omitempty"`
	Room       string           `json:"room,omitempty"`
	Instructor string           `json:"instructor,omitempty"`
	Semester   string           `json:"semester,omitempty"`
}

// Key композитный ключ занятия для выбора в форме
// Одна и та же дисциплина может идти несколькими секциями и типами занятий
func (s *Subject) Key() string {
	return fmt.Sprintf("%s|%s|%s|%s|%s", s.Day, s.StartTime, s.Code, s.Section, s.Type)
}

// Weekday возвращает день недели занятия
func (s *Subject) Weekday() (time.Weekday, bool) {
	return ThaiDayToWeekday(s.Day)
}

// DefaultCancelTitle заголовок записи об отмене занятия по умолчанию: "<код> <название>"
func (s *Subject) DefaultCancelTitle() string {
	title := strings.TrimSpace(strings.TrimSpace(s.Code) + " " + strings.TrimSpace(s.Name))
	if title == "" {
		return DefaultCancelTitle
	}
	return title
}
