package stats

import "errors"

var ErrInvalidStatus = errors.New("invalid statistic status")
