package reset_form

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/LIFF-HolidayService/internal/api/handlers"
	"github.com/m04kA/LIFF-HolidayService/internal/service/forms"
)

const (
	msgFormNotFound = "ไม่พบฟอร์ม กรุณาเปิดฟอร์มใหม่อีกครั้ง"
	msgInternal     = "เกิดข้อผิดพลาดภายในระบบ กรุณาลองใหม่อีกครั้ง"
)

// Handler - обработчик сброса формы к начальному состоянию
type Handler struct {
	service FormsService
	logger  Logger
}

func NewHandler(service FormsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle - POST /api/v1/forms/{formId}/reset
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	formID := mux.Vars(r)["formId"]

	form, err := h.service.Reset(formID)
	if err != nil {
		switch {
		case errors.Is(err, forms.ErrFormNotFound):
			h.logger.Warn("[ResetForm] Form %s not found", formID)
			handlers.RespondNotFound(w, msgFormNotFound)
		default:
			h.logger.Error("[ResetForm] Failed for form %s: %v", formID, err)
			handlers.RespondInternalError(w, msgInternal)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, form)
}
