package leave

import "context"

type LeaveService interface {
	// CreateLeave files a request after checking for overlapping leave and
	// conflicting attendance records.
	CreateLeave(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error)

	ListLeaves(ctx context.Context, filter LeaveFilter) ([]LeaveResponse, error)

	// ApproveLeave and RejectLeave only transition Pending requests.
	ApproveLeave(ctx context.Context, id string) (LeaveResponse, error)
	RejectLeave(ctx context.Context, id string) (LeaveResponse, error)
}
