package create_form

import (
	"errors"
	"net/http"

	"github.com/m04kA/LIFF-HolidayService/internal/api/handlers"
	"github.com/m04kA/LIFF-HolidayService/internal/api/middleware"
	"github.com/m04kA/LIFF-HolidayService/internal/service/forms"
)

const (
	msgTokenExpired = "เซสชันหมดอายุ กรุณาเข้าสู่ระบบใหม่"
	msgInternal     = "เกิดข้อผิดพลาดภายในระบบ กรุณาลองใหม่อีกครั้ง"
)

// Handler - обработчик создания формы
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

// Handle - POST /api/v1/forms
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	idToken, ok := middleware.GetIDToken(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgTokenExpired)
		return
	}

	form, err := h.service.Create(r.Context(), idToken)
	if err != nil {
		switch {
		case errors.Is(err, forms.ErrTokenExpired):
			h.logger.Warn("[CreateForm] Token rejected: %v", err)
			handlers.RespondUnauthorized(w, msgTokenExpired)
		default:
			h.logger.Error("[CreateForm] Failed to create form: %v", err)
			handlers.RespondInternalError(w, msgInternal)
		}
		return
	}

	h.logger.Info("[CreateForm] Form %s created for user %s", form.FormID, form.UserID)
	handlers.RespondJSON(w, http.StatusCreated, form)
}
