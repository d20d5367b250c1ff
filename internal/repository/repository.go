package repository

import (
	"errors"

	"gorm.io/gorm"
)

// found maps gorm's not-found into an absent result. Misses are not errors
// for callers of this package.
func found(err error) (bool, error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// getString safely dereferences a string pointer for pagination tokens.
func getString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
