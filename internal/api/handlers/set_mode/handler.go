package set_mode

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/LIFF-HolidayService/internal/api/handlers"
	"github.com/m04kA/LIFF-HolidayService/internal/domain"
	"github.com/m04kA/LIFF-HolidayService/internal/service/forms"
)

const (
	msgInvalidBody  = "ข้อมูลคำขอไม่ถูกต้อง"
	msgInvalidMode  = "ประเภทฟอร์มไม่ถูกต้อง"
	msgFormNotFound = "ไม่พบฟอร์ม กรุณาเปิดฟอร์มใหม่อีกครั้ง"
	msgInternal     = "เกิดข้อผิดพลาดภายในระบบ กรุณาลองใหม่อีกครั้ง"
)

// Handler - обработчик переключения режима формы
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

// Handle - PUT /api/v1/forms/{formId}/mode
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	formID := mux.Vars(r)["formId"]

	var req SetModeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	form, err := h.service.SetMode(formID, domain.Mode(req.Mode))
	if err != nil {
		switch {
		case errors.Is(err, forms.ErrInvalidMode):
			handlers.RespondBadRequest(w, msgInvalidMode)
		case errors.Is(err, forms.ErrFormNotFound):
			h.logger.Warn("[SetMode] Form %s not found", formID)
			handlers.RespondNotFound(w, msgFormNotFound)
		default:
			h.logger.Error("[SetMode] Failed to set mode for form %s: %v", formID, err)
			handlers.RespondInternalError(w, msgInternal)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, form)
}
