package payroll

import "errors"

var (
	ErrNotNumeric    = errors.New("value is not a number")
	ErrNegativeValue = errors.New("value must not be negative")
)
