package list_subjects

import (
	"errors"
	"net/http"

	"github.com/m04kA/LIFF-HolidayService/internal/api/handlers"
	"github.com/m04kA/LIFF-HolidayService/internal/api/middleware"
	listSubjects "github.com/m04kA/LIFF-HolidayService/internal/usecase/list_subjects"
)

const (
	msgTokenExpired = "เซสชันหมดอายุ กรุณาเข้าสู่ระบบใหม่"
	msgInternal     = "โหลดรายวิชาไม่สำเร็จ กรุณาลองใหม่อีกครั้ง"
)

// Handler - обработчик получения расписания студента, сгруппированного по дням
type Handler struct {
	useCase ListSubjectsUseCase
	logger  Logger
}

func NewHandler(useCase ListSubjectsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle - GET /api/v1/subjects
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	idToken, ok := middleware.GetIDToken(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgTokenExpired)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), &listSubjects.Request{IDToken: idToken})
	if err != nil {
		switch {
		case errors.Is(err, listSubjects.ErrTokenExpired):
			h.logger.Warn("[ListSubjects] Token rejected: %v", err)
			handlers.RespondUnauthorized(w, msgTokenExpired)
		default:
			h.logger.Error("[ListSubjects] Failed to load subjects: %v", err)
			handlers.RespondInternalError(w, msgInternal)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
