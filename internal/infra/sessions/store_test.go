package sessions

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/LIFF-HolidayService/internal/domain"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func newTestStore(ttl time.Duration) *Store {
	return NewStore(ttl, noopLogger{})
}

func TestStore_CreateAndGet(t *testing.T) {
	store := newTestStore(time.Minute)

	created := store.Create("U123", "Somchai")
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "U123", created.UserID)
	assert.Equal(t, domain.ModeHoliday, created.State.Mode)

	got, err := store.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Somchai", got.DisplayName)
}

func TestStore_GetUnknown(t *testing.T) {
	store := newTestStore(time.Minute)
	_, err := store.Get("missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestStore_GetExpired(t *testing.T) {
	store := newTestStore(-time.Second)
	created := store.Create("U123", "")

	_, err := store.Get(created.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestStore_SnapshotIsolation(t *testing.T) {
	store := newTestStore(time.Minute)
	created := store.Create("U123", "")

	// мутация копии не должна протекать в хранилище
	created.State.StartDate = "2025-03-10"

	got, err := store.Get(created.ID)
	require.NoError(t, err)
	assert.Empty(t, got.State.StartDate)
}

func TestStore_Update(t *testing.T) {
	store := newTestStore(time.Minute)
	created := store.Create("U123", "")

	updated, err := store.Update(created.ID, func(s *Session) error {
		s.State.StartDate = "2025-03-10"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-03-10", updated.State.StartDate)

	got, err := store.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "2025-03-10", got.State.StartDate)
}

func TestStore_UpdateCallbackError(t *testing.T) {
	store := newTestStore(time.Minute)
	created := store.Create("U123", "")
	boom := errors.New("boom")

	_, err := store.Update(created.ID, func(s *Session) error {
		return boom
	})
	assert.ErrorIs(t, err, boom)
}

func TestStore_SubmitFlag(t *testing.T) {
	store := newTestStore(time.Minute)
	created := store.Create("U123", "")

	acquired, err := store.TryBeginSubmit(created.ID)
	require.NoError(t, err)
	assert.True(t, acquired)

	// повторный захват до EndSubmit
	acquired, err = store.TryBeginSubmit(created.ID)
	require.NoError(t, err)
	assert.False(t, acquired)

	store.EndSubmit(created.ID)

	acquired, err = store.TryBeginSubmit(created.ID)
	require.NoError(t, err)
	assert.True(t, acquired)
}

func TestStore_TryBeginSubmitUnknown(t *testing.T) {
	store := newTestStore(time.Minute)
	_, err := store.TryBeginSubmit("missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestStore_Cleanup(t *testing.T) {
	store := newTestStore(time.Minute)
	expired := store.Create("U1", "")
	submitting := store.Create("U2", "")

	acquired, err := store.TryBeginSubmit(submitting.ID)
	require.NoError(t, err)
	require.True(t, acquired)

	past := time.Now().Add(-time.Second)
	store.mu.Lock()
	store.sessions[expired.ID].ExpiresAt = past
	store.sessions[submitting.ID].ExpiresAt = past
	store.mu.Unlock()

	store.cleanup()

	assert.Equal(t, 1, store.Len())
	_, err = store.Get(expired.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
