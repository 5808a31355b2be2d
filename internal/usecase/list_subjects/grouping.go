package list_subjects

import (
	"sort"
	"strings"

	"github.com/m04kA/LIFF-HolidayService/internal/domain"
)

// groupByDay группирует занятия по дню недели в порядке отображения
// (จันทร์..อาทิตย์, затем прочее), внутри дня: по времени начала и коду
func groupByDay(subjects []domain.Subject) []DayGroup {
	grouped := make(map[string][]domain.Subject)
	for _, s := range subjects {
		day := strings.TrimSpace(s.Day)
		if day == "" {
			day = domain.DayOther
		}
		grouped[day] = append(grouped[day], s)
	}

	days := make([]string, 0, len(grouped))
	for day := range grouped {
		days = append(days, day)
	}
	sort.SliceStable(days, func(i, j int) bool {
		ki, kj := domain.DaySortKey(days[i]), domain.DaySortKey(days[j])
		if ki != kj {
			return ki < kj
		}
		return days[i] < days[j]
	})

	groups := make([]DayGroup, 0, len(days))
	for _, day := range days {
		items := grouped[day]
		sort.SliceStable(items, func(i, j int) bool {
			if items[i].StartTime.IsBefore(items[j].StartTime) {
				return true
			}
			if items[j].StartTime.IsBefore(items[i].StartTime) {
				return false
			}
			return items[i].Code < items[j].Code
		})
		groups = append(groups, DayGroup{Day: day, Subjects: items})
	}
	return groups
}
