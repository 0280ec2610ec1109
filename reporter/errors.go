package reporter

import "errors"

var ErrNoDestination = errors.New("publisher has neither exchange nor queue configured")
