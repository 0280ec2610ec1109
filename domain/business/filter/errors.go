package filter

import "errors"

var (
	ErrInvalidMonth = errors.New("invalid month, must be between January and June or all")
	ErrInvalidDay   = errors.New("invalid day of week, must be between Monday and Sunday or all")
)
