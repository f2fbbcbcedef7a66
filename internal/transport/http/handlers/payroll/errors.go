package payrollhandler

import (
	"errors"

	"piecework/internal/domain/payroll"
)

func isValidationError(err error) bool {
	return errors.Is(err, payroll.ErrNotNumeric) || errors.Is(err, payroll.ErrNegativeValue)
}
