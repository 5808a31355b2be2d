package submit_form

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/LIFF-HolidayService/internal/api/handlers"
	"github.com/m04kA/LIFF-HolidayService/internal/api/middleware"
	submitHoliday "github.com/m04kA/LIFF-HolidayService/internal/usecase/submit_holiday"
)

const (
	msgTokenExpired   = "เซสชันหมดอายุ กรุณาเข้าสู่ระบบใหม่"
	msgFormNotFound   = "ไม่พบฟอร์ม กรุณาเปิดฟอร์มใหม่อีกครั้ง"
	msgSubmitInFlight = "กำลังบันทึกอยู่ กรุณารอสักครู่"
	msgValidation     = "กรุณากรอกข้อมูลให้ครบก่อนบันทึก"
	msgRejected       = "บันทึกไม่สำเร็จ"
	msgTransport      = "เชื่อมต่อระบบไม่สำเร็จ กรุณาลองใหม่อีกครั้ง"
	msgPartialSuccess = "บันทึกสำเร็จ แต่ตั้งการแจ้งเตือนไม่สำเร็จ"
	msgInternal       = "เกิดข้อผิดพลาดภายในระบบ กรุณาลองใหม่อีกครั้ง"
)

// Handler - обработчик отправки формы
type Handler struct {
	useCase SubmitHolidayUseCase
	logger  Logger
}

func NewHandler(useCase SubmitHolidayUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle - POST /api/v1/forms/{formId}/submit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	formID := mux.Vars(r)["formId"]

	idToken, ok := middleware.GetIDToken(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgTokenExpired)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), &submitHoliday.Request{
		FormID:  formID,
		IDToken: idToken,
	})
	if err != nil {
		h.respondErr(w, formID, err)
		return
	}

	h.logger.Info("[SubmitForm] Form %s submitted, reminders=%d", formID, resp.RemindersCount)
	handlers.RespondJSON(w, http.StatusOK, SubmitResponse{
		HolidayID:         resp.HolidayID,
		RemindersAttached: resp.RemindersAttached,
		RemindersCount:    resp.RemindersCount,
	})
}

func (h *Handler) respondErr(w http.ResponseWriter, formID string, err error) {
	var partial *submitHoliday.PartialError
	var rejected *submitHoliday.RejectedError

	switch {
	case errors.As(err, &partial):
		// запись создана: фронтенд показывает её id и предлагает
		// повторить только шаг напоминаний
		h.logger.Warn("[SubmitForm] Partial success for form %s: %v", formID, err)
		handlers.RespondJSON(w, http.StatusBadGateway, PartialResponse{
			Error:     msgPartialSuccess,
			HolidayID: partial.HolidayID,
		})
	case errors.Is(err, submitHoliday.ErrSubmitInFlight):
		handlers.RespondJSON(w, http.StatusConflict, handlers.ErrorResponse{Error: msgSubmitInFlight})
	case errors.Is(err, submitHoliday.ErrValidation):
		handlers.RespondBadRequest(w, msgValidation)
	case errors.Is(err, submitHoliday.ErrTokenExpired):
		h.logger.Warn("[SubmitForm] Token rejected for form %s", formID)
		handlers.RespondUnauthorized(w, msgTokenExpired)
	case errors.Is(err, submitHoliday.ErrFormNotFound):
		h.logger.Warn("[SubmitForm] Form %s not found", formID)
		handlers.RespondNotFound(w, msgFormNotFound)
	case errors.As(err, &rejected):
		// текст отказа сервиса доходит до пользователя как есть
		h.logger.Warn("[SubmitForm] Record rejected for form %s: %v", formID, err)
		handlers.RespondBadRequest(w, msgRejected+": "+rejected.Message)
	case errors.Is(err, submitHoliday.ErrRejected):
		h.logger.Warn("[SubmitForm] Record rejected for form %s: %v", formID, err)
		handlers.RespondBadRequest(w, msgRejected)
	case errors.Is(err, submitHoliday.ErrTransport):
		h.logger.Error("[SubmitForm] Transport failure for form %s: %v", formID, err)
		handlers.RespondError(w, http.StatusBadGateway, msgTransport+errDetail(err, submitHoliday.ErrTransport))
	default:
		h.logger.Error("[SubmitForm] Failed for form %s: %v", formID, err)
		handlers.RespondInternalError(w, msgInternal)
	}
}

// errDetail возвращает деталь ошибки без sentinel-префикса, с ведущим ": ".
// Пустая строка, если кроме sentinel в ошибке ничего нет
func errDetail(err, sentinel error) string {
	detail := strings.TrimPrefix(err.Error(), sentinel.Error()+": ")
	if detail == "" || detail == err.Error() {
		return ""
	}
	return ": " + detail
}
