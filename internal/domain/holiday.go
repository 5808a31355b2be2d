package domain

import (
	"fmt"
	"strings"
)

// HolidayRecord каноническое тело записи, отправляемое в holiday-webhook.
// После принятия записи владельцем данных становится workflow;
// сервис сохраняет только возвращенный идентификатор
type HolidayRecord struct {
	Type      string   `json:"type"` // holiday | cancel
	SubjectID *string  `json:"subject_id"`
	AllDay    int      `json:"all_day"`
	StartAt   string   `json:"start_at"` // YYYY-MM-DDT00:00:00+07:00
	EndAt     string   `json:"end_at"`   // YYYY-MM-DDT23:59:59+07:00
	Title     string   `json:"title"`
	Note      *string  `json:"note"`
	Reminders []string `json:"reminders"`
}

// StartOfDayISO начало дня в формате ISO-8601 с фиксированным смещением +07:00
func StartOfDayISO(ymd string) string {
	return ymd + "T00:00:00+07:00"
}

// EndOfDayISO конец дня в формате ISO-8601 с фиксированным смещением +07:00
func EndOfDayISO(ymd string) string {
	return ymd + "T23:59:59+07:00"
}

// BuildHolidayRecord собирает тело записи из состояния формы.
// Состояние должно быть предварительно проверено через Validate
func BuildHolidayRecord(s *FormState) (*HolidayRecord, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	startYmd := s.StartDate
	endYmd := s.EndDate

	// cancel: всегда один день; в holiday пустой конец означает один день
	if s.Mode == ModeCancel || endYmd == "" {
		endYmd = startYmd
	}

	title := strings.TrimSpace(s.Title)
	var subjectID *string

	switch s.Mode {
	case ModeCancel:
		code := s.Subject.Code
		subjectID = &code
		if title == "" {
			title = s.Subject.DefaultCancelTitle()
		}
	case ModeHoliday:
		if title == "" {
			title = DefaultHolidayTitle
		}
	}

	var note *string
	if trimmed := strings.TrimSpace(s.Note); trimmed != "" {
		note = &trimmed
	}

	reminders := make([]string, 0, len(s.Reminders))
	for i := range s.Reminders {
		ts, err := s.Reminders[i].Resolve(startYmd)
		if err != nil {
			return nil, fmt.Errorf("reminder %d: %w", i+1, err)
		}
		reminders = append(reminders, ts)
	}

	return &HolidayRecord{
		Type:      string(s.Mode),
		SubjectID: subjectID,
		AllDay:    AllDayFlag,
		StartAt:   StartOfDayISO(startYmd),
		EndAt:     EndOfDayISO(endYmd),
		Title:     title,
		Note:      note,
		Reminders: reminders,
	}, nil
}
