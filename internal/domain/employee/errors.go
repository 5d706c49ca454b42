package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrDuplicateEmail   = errors.New("an employee with this email already exists")
)
