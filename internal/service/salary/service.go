package salary

import (
	"context"

	"github.com/staffhub-erp/staffhub-backend-go/internal/domain/employee"
	"github.com/staffhub-erp/staffhub-backend-go/internal/domain/salary"
	"github.com/staffhub-erp/staffhub-backend-go/internal/pkg/validator"
)

type ConfigurationServiceImpl struct {
	salaryRepo   salary.ConfigurationRepository
	employeeRepo employee.EmployeeRepository
}

func NewConfigurationService(
	salaryRepo salary.ConfigurationRepository,
	employeeRepo employee.EmployeeRepository,
) salary.ConfigurationService {
	return &ConfigurationServiceImpl{
		salaryRepo:   salaryRepo,
		employeeRepo: employeeRepo,
	}
}

func (s *ConfigurationServiceImpl) CreateConfiguration(ctx context.Context, req salary.UpsertConfigurationRequest) (salary.ConfigurationResponse, error) {
	config, err := s.buildConfiguration(ctx, req, "")
	if err != nil {
		return salary.ConfigurationResponse{}, err
	}

	created, err := s.salaryRepo.Create(ctx, config)
	if err != nil {
		return salary.ConfigurationResponse{}, err
	}

	return toResponse(created), nil
}

func (s *ConfigurationServiceImpl) GetConfiguration(ctx context.Context, id string) (salary.ConfigurationResponse, error) {
	config, err := s.salaryRepo.GetByID(ctx, id)
	if err != nil {
		return salary.ConfigurationResponse{}, err
	}
	return toResponse(config), nil
}

func (s *ConfigurationServiceImpl) ListConfigurations(ctx context.Context) ([]salary.ConfigurationResponse, error) {
	configs, err := s.salaryRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]salary.ConfigurationResponse, 0, len(configs))
	for _, config := range configs {
		responses = append(responses, toResponse(config))
	}
	return responses, nil
}

func (s *ConfigurationServiceImpl) UpdateConfiguration(ctx context.Context, id string, req salary.UpsertConfigurationRequest) (salary.ConfigurationResponse, error) {
	existing, err := s.salaryRepo.GetByID(ctx, id)
	if err != nil {
		return salary.ConfigurationResponse{}, err
	}

	config, err := s.buildConfiguration(ctx, req, id)
	if err != nil {
		return salary.ConfigurationResponse{}, err
	}
	config.ID = existing.ID

	if err := s.salaryRepo.Update(ctx, config); err != nil {
		return salary.ConfigurationResponse{}, err
	}

	return toResponse(config), nil
}

func (s *ConfigurationServiceImpl) DeleteConfiguration(ctx context.Context, id string) error {
	return s.salaryRepo.Deactivate(ctx, id)
}

func (s *ConfigurationServiceImpl) buildConfiguration(ctx context.Context, req salary.UpsertConfigurationRequest, excludeID string) (salary.Configuration, error) {
	if err := req.Validate(); err != nil {
		return salary.Configuration{}, err
	}
	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return salary.Configuration{}, err
	}

	configDate, _ := validator.IsValidDate(req.ConfigDate)
	effectiveFrom, _ := validator.IsValidDate(req.EffectiveFrom)

	exists, err := s.salaryRepo.HasActiveInMonth(ctx, req.EmployeeID, configDate.Year(), int(configDate.Month()), excludeID)
	if err != nil {
		return salary.Configuration{}, err
	}
	if exists {
		return salary.Configuration{}, salary.ErrActiveConfigExists
	}

	total := req.SalaryAmount.
		Add(req.MonthAllowance).
		Add(req.TransportAllowance).
		Add(req.MedicalAllowance)

	return salary.Configuration{
		EmployeeID:         req.EmployeeID,
		SalaryAmount:       req.SalaryAmount,
		MonthAllowance:     req.MonthAllowance,
		TransportAllowance: req.TransportAllowance,
		MedicalAllowance:   req.MedicalAllowance,
		TotalSalary:        total,
		ConfigDate:         configDate,
		EffectiveFrom:      effectiveFrom,
		Status:             salary.StatusActive,
	}, nil
}

func toResponse(config salary.Configuration) salary.ConfigurationResponse {
	resp := salary.ConfigurationResponse{
		ID:                 config.ID,
		EmployeeID:         config.EmployeeID,
		SalaryAmount:       config.SalaryAmount,
		MonthAllowance:     config.MonthAllowance,
		TransportAllowance: config.TransportAllowance,
		MedicalAllowance:   config.MedicalAllowance,
		TotalSalary:        config.TotalSalary,
		ConfigDate:         config.ConfigDate.Format("2006-01-02"),
		EffectiveFrom:      config.EffectiveFrom.Format("2006-01-02"),
		Status:             string(config.Status),
	}
	if config.EmployeeName != nil {
		resp.EmployeeName = *config.EmployeeName
	}
	return resp
}
