package list_subjects

import (
	"context"
	"errors"
	"fmt"
	"strings"

	lineClient "github.com/m04kA/LIFF-HolidayService/internal/integrations/lineauth"
	subjectClient "github.com/m04kA/LIFF-HolidayService/internal/integrations/subjectservice"
)

// UseCase use case получения расписания пользователя для выбора в форме
type UseCase struct {
	lineClient    LineAuthClient
	subjectClient SubjectServiceClient
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(lineAuth LineAuthClient, subjects SubjectServiceClient, logger Logger) *UseCase {
	return &UseCase{
		lineClient:    lineAuth,
		subjectClient: subjects,
		logger:        logger,
	}
}

// Execute выполняет use case получения списка предметов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if strings.TrimSpace(req.IDToken) == "" {
		return nil, fmt.Errorf("%w: id token is required", ErrInvalidInput)
	}

	// 2. Проверяем id token и получаем профиль
	profile, err := uc.lineClient.VerifyIDToken(ctx, req.IDToken)
	if err != nil {
		if errors.Is(err, lineClient.ErrTokenExpired) || errors.Is(err, lineClient.ErrTokenInvalid) {
			uc.logger.Warn("ListSubjects: id token rejected: %v", err)
			return nil, ErrTokenExpired
		}
		uc.logger.Error("ListSubjects: failed to verify id token: %v", err)
		return nil, fmt.Errorf("%w: failed to verify id token: %v", ErrInternal, err)
	}

	uc.logger.Info("ListSubjects: user=%s", profile.UserID)

	// 3. Получаем занятия из справочника
	subjects, err := uc.subjectClient.GetSubjects(ctx, req.IDToken)
	if err != nil {
		if errors.Is(err, subjectClient.ErrTokenExpired) {
			uc.logger.Warn("ListSubjects: subject service rejected token for user=%s", profile.UserID)
			return nil, ErrTokenExpired
		}
		uc.logger.Error("ListSubjects: failed to fetch subjects for user=%s: %v", profile.UserID, err)
		return nil, fmt.Errorf("%w: failed to fetch subjects: %v", ErrInternal, err)
	}

	// 4. Группируем по дням в порядке отображения
	groups := groupByDay(subjects)

	uc.logger.Info("ListSubjects: user=%s subjects=%d groups=%d", profile.UserID, len(subjects), len(groups))
	return &Response{
		UserID:      profile.UserID,
		DisplayName: profile.DisplayName,
		Groups:      groups,
		Total:       len(subjects),
	}, nil
}
