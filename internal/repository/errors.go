package repository

import (
	"errors"

	"gorm.io/gorm"
)

// Storage-level error kinds. The database enforces uniqueness; GORM's error
// translation surfaces violations as gorm.ErrDuplicatedKey, which is mapped
// here so services never touch storage-library error codes.
var (
	ErrConflict = errors.New("unique constraint violated")
	ErrNotFound = errors.New("record not found")
)

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrConflict
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	}
	return err
}
