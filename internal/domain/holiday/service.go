package holiday

import "context"

type HolidayService interface {
	CreateHoliday(ctx context.Context, req UpsertHolidayRequest) (HolidayResponse, error)
	ListHolidays(ctx context.Context) ([]HolidayResponse, error)
	UpdateHoliday(ctx context.Context, id string, req UpsertHolidayRequest) (HolidayResponse, error)
	DeleteHoliday(ctx context.Context, id string) error
}
