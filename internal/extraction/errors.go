package extraction

import "errors"

var (
	ErrEmptyResponse   = errors.New("empty response from extraction model")
	ErrInvalidResponse = errors.New("extraction model returned malformed schedule data")
)
