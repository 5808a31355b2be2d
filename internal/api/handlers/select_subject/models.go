package select_subject

import "github.com/m04kA/LIFF-HolidayService/internal/domain"

// SelectSubjectRequest - тело запроса на выбор предмета
type SelectSubjectRequest struct {
	Subject domain.Subject `json:"subject"`
}
