package edit_reminders

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/LIFF-HolidayService/internal/api/handlers"
	"github.com/m04kA/LIFF-HolidayService/internal/service/forms"
)

const (
	msgInvalidBody      = "ข้อมูลคำขอไม่ถูกต้อง"
	msgInvalidDate      = "รูปแบบวันที่ไม่ถูกต้อง (YYYY-MM-DD)"
	msgInvalidIndex     = "ไม่พบรายการแจ้งเตือนที่ระบุ"
	msgTooManyReminders = "ตั้งแจ้งเตือนได้สูงสุด 10 รายการ"
	msgFormNotFound     = "ไม่พบฟอร์ม กรุณาเปิดฟอร์มใหม่อีกครั้ง"
	msgInternal         = "เกิดข้อผิดพลาดภายในระบบ กรุณาลองใหม่อีกครั้ง"
)

// Handler - обработчик строк напоминаний формы
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

// HandleAdd - POST /api/v1/forms/{formId}/reminders
func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	formID := mux.Vars(r)["formId"]

	// пустое тело допустимо и означает пустую строку напоминания;
	// длина chunked-запроса неизвестна, поэтому решает io.EOF, а не Content-Length
	req := AddReminderRequest{}
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	form, err := h.service.AddReminder(formID, req.ToReminder())
	if err != nil {
		h.respondErr(w, "AddReminder", formID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, form)
}

// HandleUpdate - PATCH /api/v1/forms/{formId}/reminders/{index}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	formID := vars["formId"]

	index, err := strconv.Atoi(vars["index"])
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidIndex)
		return
	}

	var req UpdateReminderRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	form, err := h.service.UpdateReminder(formID, index, req.ToPatch())
	if err != nil {
		h.respondErr(w, "UpdateReminder", formID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, form)
}

// HandleRemove - DELETE /api/v1/forms/{formId}/reminders/{index}
func (h *Handler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	formID := vars["formId"]

	index, err := strconv.Atoi(vars["index"])
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidIndex)
		return
	}

	form, err := h.service.RemoveReminder(formID, index)
	if err != nil {
		h.respondErr(w, "RemoveReminder", formID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, form)
}

func (h *Handler) respondErr(w http.ResponseWriter, op, formID string, err error) {
	switch {
	case errors.Is(err, forms.ErrInvalidDate):
		handlers.RespondBadRequest(w, msgInvalidDate)
	case errors.Is(err, forms.ErrInvalidReminderIndex):
		handlers.RespondBadRequest(w, msgInvalidIndex)
	case errors.Is(err, forms.ErrTooManyReminders):
		handlers.RespondBadRequest(w, msgTooManyReminders)
	case errors.Is(err, forms.ErrFormNotFound):
		h.logger.Warn("[%s] Form %s not found", op, formID)
		handlers.RespondNotFound(w, msgFormNotFound)
	default:
		h.logger.Error("[%s] Failed for form %s: %v", op, formID, err)
		handlers.RespondInternalError(w, msgInternal)
	}
}
