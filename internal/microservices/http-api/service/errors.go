package service

import (
	"errors"

	"skillswap/internal/apperror"
	"skillswap/internal/microservices/http-api/repository"

	"gorm.io/gorm"
)

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func isDuplicate(err error) bool {
	return errors.Is(err, repository.ErrDuplicate)
}

// internal hides a storage failure behind a generic message; the cause stays
// on the error for logging.
func internal(msg string, err error) error {
	return apperror.Wrap(apperror.KindInternal, msg, err)
}
