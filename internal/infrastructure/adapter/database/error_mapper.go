package database

import (
	"context"
	"errors"
	"fmt"

	errs "github.com/amirhossein-jamali/simple-banking/internal/domain/error"
	"github.com/amirhossein-jamali/simple-banking/internal/infrastructure/adapter/repository"
	"gorm.io/gorm"
)

// ErrorMapper maps database errors to domain errors
type ErrorMapper struct {
	classifier *repository.ErrorClassifier
}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{
		classifier: repository.NewErrorClassifier(),
	}
}

// Classifier returns the classifier used for mapping
func (m *ErrorMapper) Classifier() *repository.ErrorClassifier {
	return m.classifier
}

// MapError maps a database error to a domain error.
// Errors that already carry a domain sentinel pass through unchanged.
func (m *ErrorMapper) MapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	if isDomainError(err) {
		return err
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrCardNotFound
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %s operation timed out: %w", errs.ErrStorage, operation, err)
	}

	switch m.classifier.Classify(err) {
	case repository.DuplicateKeyError:
		return errs.ErrDuplicateCard
	case repository.LockError:
		return fmt.Errorf("%w: %s: database is busy: %w", errs.ErrStorage, operation, err)
	default:
		return fmt.Errorf("%w: %s: %w", errs.ErrStorage, operation, err)
	}
}

// isDomainError reports whether err already carries a domain error code
func isDomainError(err error) bool {
	return errs.ErrorCode(err) != errs.CodeStorage || errors.Is(err, errs.ErrStorage)
}
