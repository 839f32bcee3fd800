package terminal

import "errors"

var ErrInvalidInput = errors.New("invalid_input")
