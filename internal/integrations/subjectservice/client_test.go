package subjectservice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func newTestClient(url string) *Client {
	return NewClient(url, 5*time.Second, noopLogger{})
}

func TestClient_GetSubjects(t *testing.T) {
	t.Run("flat array", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer token", r.Header.Get("Authorization"))
			w.Write([]byte(`[
				{"subject_code": "CSE101", "subject_name": "Programming", "day": "จันทร์", "start_time": "09:00"},
				{"subject_code": "PHY201", "subject_name": "Physics", "day": "ศุกร์", "start_time": "13:00"}
			]`))
		}))
		defer srv.Close()

		subjects, err := newTestClient(srv.URL).GetSubjects(context.Background(), "token")
		require.NoError(t, err)
		require.Len(t, subjects, 2)
		assert.Equal(t, "CSE101", subjects[0].Code)
		assert.Equal(t, "จันทร์", subjects[0].Day)
	})

	t.Run("envelope with items", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"ok": true, "items": [
				{"subject_code": "CSE101", "day": "จันทร์"}
			]}`))
		}))
		defer srv.Close()

		subjects, err := newTestClient(srv.URL).GetSubjects(context.Background(), "token")
		require.NoError(t, err)
		require.Len(t, subjects, 1)
		assert.Equal(t, "CSE101", subjects[0].Code)
	})

	t.Run("grouped by day", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[
				{"day": "จันทร์", "items": [{"subject_code": "CSE101"}, {"subject_code": "CSE102"}]},
				{"day": "ศุกร์", "items": [{"subject_code": "PHY201", "day": "ศุกร์"}]}
			]`))
		}))
		defer srv.Close()

		subjects, err := newTestClient(srv.URL).GetSubjects(context.Background(), "token")
		require.NoError(t, err)
		require.Len(t, subjects, 3)
		// день группы проставляется занятиям без собственного дня
		assert.Equal(t, "จันทร์", subjects[0].Day)
		assert.Equal(t, "จันทร์", subjects[1].Day)
		assert.Equal(t, "ศุกร์", subjects[2].Day)
	})

	t.Run("empty body variants", func(t *testing.T) {
		for _, body := range []string{`[]`, `{"ok": true, "items": []}`} {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(body))
			}))

			subjects, err := newTestClient(srv.URL).GetSubjects(context.Background(), "token")
			srv.Close()
			require.NoError(t, err, body)
			assert.Empty(t, subjects, body)
		}
	})

	t.Run("unauthorized", func(t *testing.T) {
		for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(status)
			}))

			_, err := newTestClient(srv.URL).GetSubjects(context.Background(), "token")
			srv.Close()
			assert.ErrorIs(t, err, ErrTokenExpired)
		}
	})

	t.Run("envelope error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"ok": false, "items": [], "error": "workflow disabled"}`))
		}))
		defer srv.Close()

		_, err := newTestClient(srv.URL).GetSubjects(context.Background(), "token")
		require.ErrorIs(t, err, ErrInvalidResponse)
		assert.Contains(t, err.Error(), "workflow disabled")
	})

	t.Run("unexpected status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		_, err := newTestClient(srv.URL).GetSubjects(context.Background(), "token")
		assert.ErrorIs(t, err, ErrInvalidResponse)
	})

	t.Run("malformed body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`not json`))
		}))
		defer srv.Close()

		_, err := newTestClient(srv.URL).GetSubjects(context.Background(), "token")
		assert.ErrorIs(t, err, ErrInvalidResponse)
	})
}
