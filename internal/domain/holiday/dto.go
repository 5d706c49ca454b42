package holiday

import (
	"github.com/staffhub-erp/staffhub-backend-go/internal/pkg/validator"
)

const maxNameLength = 30

type UpsertHolidayRequest struct {
	Name     string `json:"name"`
	FromDate string `json:"from_date"`
	ToDate   string `json:"to_date"`
}

func (r *UpsertHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	} else if !validator.IsValidHolidayName(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "holiday name must not contain digits",
		})
	} else if len(r.Name) > maxNameLength {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "holiday name cannot exceed 30 characters",
		})
	}

	from, fromOK := validator.IsValidDate(r.FromDate)
	if !fromOK {
		errs = append(errs, validator.ValidationError{
			Field:   "from_date",
			Message: "from_date must be in YYYY-MM-DD format",
		})
	}
	to, toOK := validator.IsValidDate(r.ToDate)
	if !toOK {
		errs = append(errs, validator.ValidationError{
			Field:   "to_date",
			Message: "to_date must be in YYYY-MM-DD format",
		})
	}
	if fromOK && toOK && from.After(to) {
		errs = append(errs, validator.ValidationError{
			Field:   "from_date",
			Message: "from_date cannot be after to_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type HolidayResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	FromDate string `json:"from_date"`
	ToDate   string `json:"to_date"`
	Active   bool   `json:"active"`
}
