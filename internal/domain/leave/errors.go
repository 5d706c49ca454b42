package leave

import "errors"

var (
	ErrLeaveNotFound         = errors.New("leave request not found")
	ErrOverlappingLeave      = errors.New("an overlapping leave request already exists")
	ErrLeaveAlreadyProcessed = errors.New("leave request has already been approved or rejected")
	ErrAttendanceConflict    = errors.New("attendance already recorded within the requested dates")
)
