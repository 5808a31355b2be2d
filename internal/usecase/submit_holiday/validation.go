package submit_holiday

import (
	"fmt"
	"strings"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.FormID) == "" {
		return fmt.Errorf("%w: formID is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.IDToken) == "" {
		return fmt.Errorf("%w: id token is required", ErrInvalidInput)
	}
	return nil
}
