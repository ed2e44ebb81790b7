package ihex

import "errors"

var (
	ErrInvalidInput   = errors.New("ihex: invalid input")
	ErrInvalidConfig  = errors.New("ihex: invalid configuration")
	ErrInvalidPayload = errors.New("ihex: invalid payload")
	ErrLimitExceeded  = errors.New("ihex: limit exceeded")
)
