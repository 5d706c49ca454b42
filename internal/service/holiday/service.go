package holiday

import (
	"context"

	"github.com/staffhub-erp/staffhub-backend-go/internal/domain/holiday"
	"github.com/staffhub-erp/staffhub-backend-go/internal/pkg/validator"
)

type HolidayServiceImpl struct {
	holidayRepo holiday.HolidayRepository
}

func NewHolidayService(holidayRepo holiday.HolidayRepository) holiday.HolidayService {
	return &HolidayServiceImpl{holidayRepo: holidayRepo}
}

func (s *HolidayServiceImpl) CreateHoliday(ctx context.Context, req holiday.UpsertHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	from, _ := validator.IsValidDate(req.FromDate)
	to, _ := validator.IsValidDate(req.ToDate)

	duplicate, err := s.holidayRepo.ExistsDuplicate(ctx, req.Name, from, to, "")
	if err != nil {
		return holiday.HolidayResponse{}, err
	}
	if duplicate {
		return holiday.HolidayResponse{}, holiday.ErrDuplicateHoliday
	}

	created, err := s.holidayRepo.Create(ctx, holiday.Holiday{
		Name:     req.Name,
		FromDate: from,
		ToDate:   to,
	})
	if err != nil {
		return holiday.HolidayResponse{}, err
	}

	return toResponse(created), nil
}

func (s *HolidayServiceImpl) ListHolidays(ctx context.Context) ([]holiday.HolidayResponse, error) {
	holidays, err := s.holidayRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		responses = append(responses, toResponse(h))
	}
	return responses, nil
}

func (s *HolidayServiceImpl) UpdateHoliday(ctx context.Context, id string, req holiday.UpsertHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	from, _ := validator.IsValidDate(req.FromDate)
	to, _ := validator.IsValidDate(req.ToDate)

	duplicate, err := s.holidayRepo.ExistsDuplicate(ctx, req.Name, from, to, id)
	if err != nil {
		return holiday.HolidayResponse{}, err
	}
	if duplicate {
		return holiday.HolidayResponse{}, holiday.ErrDuplicateHoliday
	}

	updated := holiday.Holiday{
		ID:       id,
		Name:     req.Name,
		FromDate: from,
		ToDate:   to,
		Active:   true,
	}
	if err := s.holidayRepo.Update(ctx, updated); err != nil {
		return holiday.HolidayResponse{}, err
	}

	return toResponse(updated), nil
}

func (s *HolidayServiceImpl) DeleteHoliday(ctx context.Context, id string) error {
	return s.holidayRepo.Delete(ctx, id)
}

func toResponse(h holiday.Holiday) holiday.HolidayResponse {
	return holiday.HolidayResponse{
		ID:       h.ID,
		Name:     h.Name,
		FromDate: h.FromDate.Format("2006-01-02"),
		ToDate:   h.ToDate.Format("2006-01-02"),
		Active:   h.Active,
	}
}
