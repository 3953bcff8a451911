package service

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"skillbridge_backend/internal/model"
	"skillbridge_backend/internal/repository"
	"skillbridge_backend/internal/util"
	"skillbridge_backend/pkg/logger"
)

// runDerived is the shared shape of every derived-artifact endpoint: load
// the user's document, compute the artifact from it, persist it under its
// own key, return it. A missing document maps to ErrUserNotFound; a failed
// persist does not fail the request, the caller still gets the artifact.
func runDerived[T any](records *repository.RecordRepository, email, column string, compute func(*model.UserRecord) (T, error)) (T, error) {
	var zero T

	rec, err := records.Get(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return zero, util.ErrUserNotFound
		}
		return zero, err
	}

	out, err := compute(rec)
	if err != nil {
		return zero, err
	}

	if err := records.Merge(email, column, out); err != nil {
		logFailedMerge(email, column, err)
	}
	return out, nil
}

func logFailedMerge(email, column string, err error) {
	logger.L().Error("failed to persist derived artifact",
		zap.String("email", email), zap.String("column", column), zap.Error(err))
}
