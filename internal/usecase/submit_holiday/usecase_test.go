package submit_holiday

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/LIFF-HolidayService/internal/domain"
	"github.com/m04kA/LIFF-HolidayService/internal/infra/sessions"
	holidayClient "github.com/m04kA/LIFF-HolidayService/internal/integrations/holidayservice"
	"github.com/m04kA/LIFF-HolidayService/pkg/ptr"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type fakeHolidayClient struct {
	createID      *int64
	createErr     error
	attachErr     error
	createCalls   int
	attachCalls   int
	lastRecord    *domain.HolidayRecord
	lastReminders []string
}

func (f *fakeHolidayClient) CreateHoliday(ctx context.Context, idToken string, record *domain.HolidayRecord) (*int64, error) {
	f.createCalls++
	f.lastRecord = record
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createID, nil
}

func (f *fakeHolidayClient) AttachReminders(ctx context.Context, idToken, userID string, holidayID int64, reminders []string) error {
	f.attachCalls++
	f.lastReminders = reminders
	return f.attachErr
}

func newReadyForm(t *testing.T, store *sessions.Store, reminders ...domain.Reminder) string {
	t.Helper()

	session := store.Create("U123", "Somchai")
	_, err := store.Update(session.ID, func(s *sessions.Session) error {
		s.State.StartDate = "2025-03-10"
		s.State.Reminders = reminders
		return nil
	})
	require.NoError(t, err)
	return session.ID
}

func TestUseCase_Execute(t *testing.T) {
	t.Run("record without reminders", func(t *testing.T) {
		store := sessions.NewStore(time.Minute, noopLogger{})
		client := &fakeHolidayClient{createID: ptr.Ptr(int64(42))}
		uc := NewUseCase(store, client, noopLogger{})
		formID := newReadyForm(t, store)

		resp, err := uc.Execute(context.Background(), &Request{FormID: formID, IDToken: "token"})
		require.NoError(t, err)
		require.NotNil(t, resp.HolidayID)
		assert.Equal(t, int64(42), *resp.HolidayID)
		assert.Equal(t, 0, resp.RemindersCount)
		assert.False(t, resp.RemindersAttached)
		assert.Equal(t, 1, client.createCalls)
		assert.Equal(t, 0, client.attachCalls)
		assert.Equal(t, "holiday", client.lastRecord.Type)
	})

	t.Run("record with reminders attached", func(t *testing.T) {
		store := sessions.NewStore(time.Minute, noopLogger{})
		client := &fakeHolidayClient{createID: ptr.Ptr(int64(42))}
		uc := NewUseCase(store, client, noopLogger{})
		formID := newReadyForm(t, store,
			domain.Reminder{DaysBefore: ptr.Ptr(1), Time: "09:00"},
		)

		resp, err := uc.Execute(context.Background(), &Request{FormID: formID, IDToken: "token"})
		require.NoError(t, err)
		assert.True(t, resp.RemindersAttached)
		assert.Equal(t, 1, resp.RemindersCount)
		assert.Equal(t, []string{"2025-03-09T09:00:00+07:00"}, client.lastReminders)
	})

	t.Run("submit flag released after success", func(t *testing.T) {
		store := sessions.NewStore(time.Minute, noopLogger{})
		client := &fakeHolidayClient{createID: ptr.Ptr(int64(42))}
		uc := NewUseCase(store, client, noopLogger{})
		formID := newReadyForm(t, store)

		_, err := uc.Execute(context.Background(), &Request{FormID: formID, IDToken: "token"})
		require.NoError(t, err)

		acquired, err := store.TryBeginSubmit(formID)
		require.NoError(t, err)
		assert.True(t, acquired)
	})

	t.Run("reentry blocked without network calls", func(t *testing.T) {
		store := sessions.NewStore(time.Minute, noopLogger{})
		client := &fakeHolidayClient{createID: ptr.Ptr(int64(42))}
		uc := NewUseCase(store, client, noopLogger{})
		formID := newReadyForm(t, store)

		acquired, err := store.TryBeginSubmit(formID)
		require.NoError(t, err)
		require.True(t, acquired)

		_, err = uc.Execute(context.Background(), &Request{FormID: formID, IDToken: "token"})
		assert.ErrorIs(t, err, ErrSubmitInFlight)
		assert.Equal(t, 0, client.createCalls)

		// чужой флаг не снимается
		acquired, err = store.TryBeginSubmit(formID)
		require.NoError(t, err)
		assert.False(t, acquired)
	})

	t.Run("form not found", func(t *testing.T) {
		store := sessions.NewStore(time.Minute, noopLogger{})
		uc := NewUseCase(store, &fakeHolidayClient{}, noopLogger{})

		_, err := uc.Execute(context.Background(), &Request{FormID: "missing", IDToken: "token"})
		assert.ErrorIs(t, err, ErrFormNotFound)
	})

	t.Run("incomplete form rejected locally", func(t *testing.T) {
		store := sessions.NewStore(time.Minute, noopLogger{})
		client := &fakeHolidayClient{}
		uc := NewUseCase(store, client, noopLogger{})
		session := store.Create("U123", "")

		_, err := uc.Execute(context.Background(), &Request{FormID: session.ID, IDToken: "token"})
		assert.ErrorIs(t, err, ErrValidation)
		assert.Equal(t, 0, client.createCalls)

		// флаг снят, форма остается редактируемой
		acquired, aerr := store.TryBeginSubmit(session.ID)
		require.NoError(t, aerr)
		assert.True(t, acquired)
	})

	t.Run("rejected create", func(t *testing.T) {
		store := sessions.NewStore(time.Minute, noopLogger{})
		client := &fakeHolidayClient{
			createErr: holidayClient.ErrRejected,
		}
		uc := NewUseCase(store, client, noopLogger{})
		formID := newReadyForm(t, store,
			domain.Reminder{Date: "2025-03-09", Time: "08:00"},
		)

		_, err := uc.Execute(context.Background(), &Request{FormID: formID, IDToken: "token"})
		assert.ErrorIs(t, err, ErrRejected)
		assert.Equal(t, 0, client.attachCalls)
	})

	t.Run("rejected create keeps service message", func(t *testing.T) {
		store := sessions.NewStore(time.Minute, noopLogger{})
		client := &fakeHolidayClient{
			createErr: &holidayClient.RejectionError{Message: "duplicate record"},
		}
		uc := NewUseCase(store, client, noopLogger{})
		formID := newReadyForm(t, store)

		_, err := uc.Execute(context.Background(), &Request{FormID: formID, IDToken: "token"})
		assert.ErrorIs(t, err, ErrRejected)

		var rejected *RejectedError
		require.ErrorAs(t, err, &rejected)
		assert.Equal(t, "duplicate record", rejected.Message)
	})

	t.Run("transport failure on create", func(t *testing.T) {
		store := sessions.NewStore(time.Minute, noopLogger{})
		client := &fakeHolidayClient{createErr: errors.New("connection refused")}
		uc := NewUseCase(store, client, noopLogger{})
		formID := newReadyForm(t, store)

		_, err := uc.Execute(context.Background(), &Request{FormID: formID, IDToken: "token"})
		assert.ErrorIs(t, err, ErrTransport)
	})

	t.Run("expired token on create", func(t *testing.T) {
		store := sessions.NewStore(time.Minute, noopLogger{})
		client := &fakeHolidayClient{createErr: holidayClient.ErrTokenExpired}
		uc := NewUseCase(store, client, noopLogger{})
		formID := newReadyForm(t, store)

		_, err := uc.Execute(context.Background(), &Request{FormID: formID, IDToken: "token"})
		assert.ErrorIs(t, err, ErrTokenExpired)
	})

	t.Run("attach failure is partial success", func(t *testing.T) {
		store := sessions.NewStore(time.Minute, noopLogger{})
		client := &fakeHolidayClient{
			createID:  ptr.Ptr(int64(42)),
			attachErr: errors.New("HTTP 500"),
		}
		uc := NewUseCase(store, client, noopLogger{})
		formID := newReadyForm(t, store,
			domain.Reminder{Date: "2025-03-09", Time: "08:00"},
		)

		_, err := uc.Execute(context.Background(), &Request{FormID: formID, IDToken: "token"})
		assert.ErrorIs(t, err, ErrPartialSuccess)

		var partial *PartialError
		require.ErrorAs(t, err, &partial)
		require.NotNil(t, partial.HolidayID)
		assert.Equal(t, int64(42), *partial.HolidayID)
	})

	t.Run("missing id with pending reminders is partial success", func(t *testing.T) {
		store := sessions.NewStore(time.Minute, noopLogger{})
		client := &fakeHolidayClient{createID: nil}
		uc := NewUseCase(store, client, noopLogger{})
		formID := newReadyForm(t, store,
			domain.Reminder{Date: "2025-03-09", Time: "08:00"},
		)

		_, err := uc.Execute(context.Background(), &Request{FormID: formID, IDToken: "token"})
		assert.ErrorIs(t, err, ErrPartialSuccess)
		assert.Equal(t, 0, client.attachCalls)

		var partial *PartialError
		require.ErrorAs(t, err, &partial)
		assert.Nil(t, partial.HolidayID)
	})

	t.Run("missing id without reminders is success", func(t *testing.T) {
		store := sessions.NewStore(time.Minute, noopLogger{})
		client := &fakeHolidayClient{createID: nil}
		uc := NewUseCase(store, client, noopLogger{})
		formID := newReadyForm(t, store)

		resp, err := uc.Execute(context.Background(), &Request{FormID: formID, IDToken: "token"})
		require.NoError(t, err)
		assert.Nil(t, resp.HolidayID)
	})

	t.Run("invalid input", func(t *testing.T) {
		store := sessions.NewStore(time.Minute, noopLogger{})
		uc := NewUseCase(store, &fakeHolidayClient{}, noopLogger{})

		_, err := uc.Execute(context.Background(), &Request{FormID: "", IDToken: "token"})
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = uc.Execute(context.Background(), &Request{FormID: "f", IDToken: " "})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
