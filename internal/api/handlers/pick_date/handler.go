package pick_date

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/LIFF-HolidayService/internal/api/handlers"
	"github.com/m04kA/LIFF-HolidayService/internal/service/forms"
)

const (
	msgInvalidBody     = "ข้อมูลคำขอไม่ถูกต้อง"
	msgInvalidDate     = "รูปแบบวันที่ไม่ถูกต้อง (YYYY-MM-DD)"
	msgDateInPast      = "ไม่สามารถเลือกวันที่ผ่านมาแล้วได้"
	msgSubjectRequired = "กรุณาเลือกวิชาก่อนเลือกวันที่"
	msgWrongWeekday    = "วันที่ไม่ตรงกับวันเรียนของวิชานี้"
	msgFormNotFound    = "ไม่พบฟอร์ม กรุณาเปิดฟอร์มใหม่อีกครั้ง"
	msgInternal        = "เกิดข้อผิดพลาดภายในระบบ กรุณาลองใหม่อีกครั้ง"
)

// Handler - обработчик выбора даты начала и окончания
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

// Handle - PUT /api/v1/forms/{formId}/date
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	formID := mux.Vars(r)["formId"]

	var req PickDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	form, err := h.service.PickDate(formID, forms.DateTarget(req.Target), req.Date)
	if err != nil {
		switch {
		case errors.Is(err, forms.ErrInvalidTarget):
			handlers.RespondBadRequest(w, msgInvalidBody)
		case errors.Is(err, forms.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgInvalidDate)
		case errors.Is(err, forms.ErrDateInPast):
			handlers.RespondBadRequest(w, msgDateInPast)
		case errors.Is(err, forms.ErrSubjectNotSelected):
			handlers.RespondBadRequest(w, msgSubjectRequired)
		case errors.Is(err, forms.ErrWrongWeekday):
			handlers.RespondBadRequest(w, msgWrongWeekday)
		case errors.Is(err, forms.ErrFormNotFound):
			h.logger.Warn("[PickDate] Form %s not found", formID)
			handlers.RespondNotFound(w, msgFormNotFound)
		default:
			h.logger.Error("[PickDate] Failed for form %s: %v", formID, err)
			handlers.RespondInternalError(w, msgInternal)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, form)
}
