package service

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a requested entity does not exist; handlers
// map it to 404. Everything else a service returns becomes a 400.
var ErrNotFound = errors.New("not found")

// mapNotFound converts GORM's record-not-found into the service-level
// sentinel so handlers never import gorm.
func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
