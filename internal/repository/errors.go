package repository

import (
	"errors"

	"gorm.io/gorm"
)

// Jenis error yang dipakai handler untuk menentukan status HTTP.
// ErrNotFound juga berlaku untuk Job / FinancingRequest yang hilang,
// bukan hanya Application.
var (
	ErrNotFound  = gorm.ErrRecordNotFound
	ErrDuplicate = gorm.ErrDuplicatedKey
)

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsDuplicate(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
