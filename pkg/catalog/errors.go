package catalog

import "errors"

var (
	ErrRecordNotFound = errors.New("model record not found")
	ErrInvalidRecord  = errors.New("model record is invalid")
)
