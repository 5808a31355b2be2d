package subjectservice

import (
	"encoding/json"

	"github.com/m04kA/LIFF-HolidayService/internal/domain"
)

// envelope обертка ответа webhook: {"ok": true, "items": [...]}
// Часть workflow отдает items, часть: голый массив
type envelope struct {
	OK    *bool           `json:"ok,omitempty"`
	Items json.RawMessage `json:"items,omitempty"`
	Error string          `json:"error,omitempty"`
}

// dayGroup элемент предгруппированного ответа: {"day": "...", "items": [...]}
type dayGroup struct {
	Day   string           `json:"day"`
	Items []domain.Subject `json:"items"`
}

// normalizeSubjects приводит оба поддерживаемых формата массива к плоскому
// списку занятий: либо []Subject, либо [{day, items: []Subject}]
func normalizeSubjects(raw json.RawMessage) ([]domain.Subject, error) {
	if len(raw) == 0 {
		return []domain.Subject{}, nil
	}

	// Сначала пробуем предгруппированный формат. Плоский массив занятий
	// тоже декодируется в []dayGroup (поле day совпадает), но items у всех
	// элементов останутся пустыми: это признак плоского формата
	var groups []dayGroup
	if err := json.Unmarshal(raw, &groups); err == nil {
		grouped := false
		for i := range groups {
			if len(groups[i].Items) > 0 {
				grouped = true
				break
			}
		}
		if grouped {
			var flat []domain.Subject
			for _, g := range groups {
				for _, s := range g.Items {
					if s.Day == "" {
						s.Day = g.Day
					}
					flat = append(flat, s)
				}
			}
			return flat, nil
		}
	}

	var subjects []domain.Subject
	if err := json.Unmarshal(raw, &subjects); err != nil {
		return nil, err
	}
	if subjects == nil {
		subjects = []domain.Subject{}
	}
	return subjects, nil
}
