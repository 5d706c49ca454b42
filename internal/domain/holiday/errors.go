package holiday

import "errors"

var (
	ErrHolidayNotFound  = errors.New("holiday not found")
	ErrDuplicateHoliday = errors.New("holiday with the same name and dates already exists")
)
