package submit_form_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	submitForm "github.com/m04kA/LIFF-HolidayService/internal/api/handlers/submit_form"
	"github.com/m04kA/LIFF-HolidayService/internal/api/middleware"
	submitHoliday "github.com/m04kA/LIFF-HolidayService/internal/usecase/submit_holiday"
	"github.com/m04kA/LIFF-HolidayService/pkg/ptr"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type fakeUseCase struct {
	resp    *submitHoliday.Response
	err     error
	lastReq *submitHoliday.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *submitHoliday.Request) (*submitHoliday.Response, error) {
	f.lastReq = req
	return f.resp, f.err
}

func serveSubmit(t *testing.T, uc *fakeUseCase) *httptest.ResponseRecorder {
	t.Helper()

	h := submitForm.NewHandler(uc, noopLogger{})
	r := mux.NewRouter()
	r.Handle("/api/v1/forms/{formId}/submit", middleware.Auth(http.HandlerFunc(h.Handle))).Methods(http.MethodPost)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/forms/form-1/submit", nil)
	req.Header.Set("Authorization", "Bearer token-123")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error
}

func TestHandler_Success(t *testing.T) {
	uc := &fakeUseCase{
		resp: &submitHoliday.Response{
			HolidayID:         ptr.Ptr(int64(42)),
			RemindersAttached: true,
			RemindersCount:    2,
		},
	}

	rec := serveSubmit(t, uc)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.lastReq)
	assert.Equal(t, "form-1", uc.lastReq.FormID)
	assert.Equal(t, "token-123", uc.lastReq.IDToken)

	var resp submitForm.SubmitResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.HolidayID)
	assert.Equal(t, int64(42), *resp.HolidayID)
	assert.True(t, resp.RemindersAttached)
	assert.Equal(t, 2, resp.RemindersCount)
}

func TestHandler_RejectedCarriesServiceMessage(t *testing.T) {
	uc := &fakeUseCase{err: &submitHoliday.RejectedError{Message: "duplicate record"}}

	rec := serveSubmit(t, uc)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	msg := decodeError(t, rec)
	assert.Contains(t, msg, "บันทึกไม่สำเร็จ")
	assert.Contains(t, msg, "duplicate record")
}

func TestHandler_RejectedWithoutMessage(t *testing.T) {
	uc := &fakeUseCase{err: submitHoliday.ErrRejected}

	rec := serveSubmit(t, uc)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "บันทึกไม่สำเร็จ", decodeError(t, rec))
}

func TestHandler_TransportCarriesDetail(t *testing.T) {
	uc := &fakeUseCase{
		err: &wrapErr{sentinel: submitHoliday.ErrTransport, detail: "connection refused"},
	}

	rec := serveSubmit(t, uc)

	require.Equal(t, http.StatusBadGateway, rec.Code)
	msg := decodeError(t, rec)
	assert.Contains(t, msg, "เชื่อมต่อระบบไม่สำเร็จ")
	assert.Contains(t, msg, "connection refused")
}

func TestHandler_PartialSuccess(t *testing.T) {
	uc := &fakeUseCase{
		err: &submitHoliday.PartialError{HolidayID: ptr.Ptr(int64(7))},
	}

	rec := serveSubmit(t, uc)

	require.Equal(t, http.StatusBadGateway, rec.Code)

	var resp submitForm.PartialResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "บันทึกสำเร็จ")
	require.NotNil(t, resp.HolidayID)
	assert.Equal(t, int64(7), *resp.HolidayID)
}

func TestHandler_StatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"submit in flight", submitHoliday.ErrSubmitInFlight, http.StatusConflict},
		{"validation", submitHoliday.ErrValidation, http.StatusBadRequest},
		{"token expired", submitHoliday.ErrTokenExpired, http.StatusUnauthorized},
		{"form not found", submitHoliday.ErrFormNotFound, http.StatusNotFound},
		{"internal", submitHoliday.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serveSubmit(t, &fakeUseCase{err: tt.err})
			assert.Equal(t, tt.code, rec.Code)
		})
	}
}

// wrapErr имитирует обернутую sentinel-ошибку usecase
type wrapErr struct {
	sentinel error
	detail   string
}

func (e *wrapErr) Error() string { return e.sentinel.Error() + ": " + e.detail }
func (e *wrapErr) Unwrap() error { return e.sentinel }
