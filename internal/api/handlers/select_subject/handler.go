package select_subject

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/LIFF-HolidayService/internal/api/handlers"
	"github.com/m04kA/LIFF-HolidayService/internal/service/forms"
)

const (
	msgInvalidBody    = "ข้อมูลคำขอไม่ถูกต้อง"
	msgUnknownWeekday = "วิชานี้ไม่ระบุวันเรียน ไม่สามารถเลือกได้"
	msgFormNotFound   = "ไม่พบฟอร์ม กรุณาเปิดฟอร์มใหม่อีกครั้ง"
	msgInternal       = "เกิดข้อผิดพลาดภายในระบบ กรุณาลองใหม่อีกครั้ง"
)

// Handler - обработчик выбора предмета для отмены занятия
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

// Handle - PUT /api/v1/forms/{formId}/subject
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	formID := mux.Vars(r)["formId"]

	var req SelectSubjectRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	form, err := h.service.SelectSubject(formID, req.Subject)
	if err != nil {
		switch {
		case errors.Is(err, forms.ErrUnknownWeekday):
			h.logger.Warn("[SelectSubject] Subject %s has no recognisable study day", req.Subject.Code)
			handlers.RespondBadRequest(w, msgUnknownWeekday)
		case errors.Is(err, forms.ErrFormNotFound):
			h.logger.Warn("[SelectSubject] Form %s not found", formID)
			handlers.RespondNotFound(w, msgFormNotFound)
		default:
			h.logger.Error("[SelectSubject] Failed for form %s: %v", formID, err)
			handlers.RespondInternalError(w, msgInternal)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, form)
}
