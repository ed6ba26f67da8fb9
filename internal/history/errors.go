package history

import "errors"

var (
	ErrVisitNotFound   = errors.New("visit not found")
	ErrEntryNotFound   = errors.New("chronogram entry not found")
	ErrInvalidPlanning = errors.New("planned end must be after planned start")
)
