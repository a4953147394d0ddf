package truck

import "errors"

var (
	ErrTruckTypeNotFound      = errors.New("truck type not found")
	ErrTruckTypeAlreadyExists = errors.New("truck type already exists")
	ErrTruckTypeInactive      = errors.New("truck type is inactive")
)
