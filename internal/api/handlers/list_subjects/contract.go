package list_subjects

import (
	"context"

	listSubjects "github.com/m04kA/LIFF-HolidayService/internal/usecase/list_subjects"
)

type ListSubjectsUseCase interface {
	Execute(ctx context.Context, req *listSubjects.Request) (*listSubjects.Response, error)
}

type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
