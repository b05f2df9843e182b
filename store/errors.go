package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// The store layer reports every failure as one of these kinds so that
// handlers can map them to distinct HTTP outcomes. Anything else is a
// storage failure and is returned wrapped, eligible for caller retry.
var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("already exists")
	ErrValidation = errors.New("invalid input")
)

func notFound(what string, id uint64) error {
	return fmt.Errorf("%s %d: %w", what, id, ErrNotFound)
}

// translate maps gorm errors onto the store taxonomy.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrConflict
	}
	return fmt.Errorf("storage: %w", err)
}
