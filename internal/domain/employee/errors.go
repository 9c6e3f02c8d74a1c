package employee

import "errors"

var (
	ErrEmployeeNotFound  = errors.New("employee not found")
	ErrShiftNotAssigned  = errors.New("employee has no shift assigned")
	ErrEmployeeCodeEmpty = errors.New("employee code is required")
)
