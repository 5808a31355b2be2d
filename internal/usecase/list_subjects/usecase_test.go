package list_subjects

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/LIFF-HolidayService/internal/domain"
	"github.com/m04kA/LIFF-HolidayService/internal/integrations/lineauth"
	"github.com/m04kA/LIFF-HolidayService/internal/integrations/subjectservice"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type fakeLineAuth struct {
	profile *lineauth.Profile
	err     error
}

func (f *fakeLineAuth) VerifyIDToken(ctx context.Context, idToken string) (*lineauth.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.profile, nil
}

type fakeSubjectClient struct {
	subjects []domain.Subject
	err      error
}

func (f *fakeSubjectClient) GetSubjects(ctx context.Context, idToken string) ([]domain.Subject, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.subjects, nil
}

func TestUseCase_Execute(t *testing.T) {
	auth := &fakeLineAuth{profile: &lineauth.Profile{UserID: "U123", DisplayName: "Somchai"}}

	t.Run("groups by display order of days", func(t *testing.T) {
		subjects := []domain.Subject{
			{Code: "PHY201", Day: "ศุกร์", StartTime: "13:00"},
			{Code: "CSE102", Day: "จันทร์", StartTime: "13:00"},
			{Code: "CSE101", Day: "จันทร์", StartTime: "09:00"},
			{Code: "THU301", Day: "พฤ", StartTime: "09:00"},
			{Code: "MIS999", Day: "", StartTime: "10:00"},
		}
		uc := NewUseCase(auth, &fakeSubjectClient{subjects: subjects}, noopLogger{})

		resp, err := uc.Execute(context.Background(), &Request{IDToken: "token"})
		require.NoError(t, err)
		assert.Equal(t, "U123", resp.UserID)
		assert.Equal(t, 5, resp.Total)

		require.Len(t, resp.Groups, 4)
		assert.Equal(t, "จันทร์", resp.Groups[0].Day)
		assert.Equal(t, "พฤ", resp.Groups[1].Day)
		assert.Equal(t, "ศุกร์", resp.Groups[2].Day)
		assert.Equal(t, domain.DayOther, resp.Groups[3].Day)

		// внутри дня: по времени начала
		assert.Equal(t, "CSE101", resp.Groups[0].Subjects[0].Code)
		assert.Equal(t, "CSE102", resp.Groups[0].Subjects[1].Code)
	})

	t.Run("empty schedule", func(t *testing.T) {
		uc := NewUseCase(auth, &fakeSubjectClient{}, noopLogger{})

		resp, err := uc.Execute(context.Background(), &Request{IDToken: "token"})
		require.NoError(t, err)
		assert.Zero(t, resp.Total)
		assert.Empty(t, resp.Groups)
	})

	t.Run("expired token on verify", func(t *testing.T) {
		uc := NewUseCase(&fakeLineAuth{err: lineauth.ErrTokenExpired}, &fakeSubjectClient{}, noopLogger{})

		_, err := uc.Execute(context.Background(), &Request{IDToken: "stale"})
		assert.ErrorIs(t, err, ErrTokenExpired)
	})

	t.Run("expired token on fetch", func(t *testing.T) {
		uc := NewUseCase(auth, &fakeSubjectClient{err: subjectservice.ErrTokenExpired}, noopLogger{})

		_, err := uc.Execute(context.Background(), &Request{IDToken: "token"})
		assert.ErrorIs(t, err, ErrTokenExpired)
	})

	t.Run("fetch failure", func(t *testing.T) {
		uc := NewUseCase(auth, &fakeSubjectClient{err: errors.New("HTTP 500")}, noopLogger{})

		_, err := uc.Execute(context.Background(), &Request{IDToken: "token"})
		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("missing token", func(t *testing.T) {
		uc := NewUseCase(auth, &fakeSubjectClient{}, noopLogger{})

		_, err := uc.Execute(context.Background(), &Request{IDToken: " "})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
