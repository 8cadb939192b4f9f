package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestErrorClassifier_Classify(t *testing.T) {
	classifier := NewErrorClassifier()

	testCases := []struct {
		name     string
		err      error
		expected ErrorType
	}{
		{"Nil", nil, ""},
		{"SQLite unique", errors.New("UNIQUE constraint failed: card.number"), DuplicateKeyError},
		{"Postgres unique", errors.New("duplicate key value violates unique constraint"), DuplicateKeyError},
		{"Translated duplicate", gorm.ErrDuplicatedKey, DuplicateKeyError},
		{"SQLite busy", errors.New("database is locked"), LockError},
		{"Deadlock", errors.New("deadlock detected"), LockError},
		{"Reset", errors.New("read: connection reset by peer"), TransientError},
		{"Cannot open", errors.New("unable to open database file: no such file or directory"), ConnectionError},
		{"Not null", errors.New("NOT NULL constraint failed: card.number"), ConstraintError},
		{"Other", errors.New("disk I/O error"), ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, classifier.Classify(tc.err))
		})
	}
}

func TestErrorClassifier_BusyIsTransient(t *testing.T) {
	classifier := NewErrorClassifier()

	assert.True(t, classifier.IsTransientError(errors.New("database is locked")))
	assert.False(t, classifier.IsTransientError(errors.New("UNIQUE constraint failed: card.number")))
}
