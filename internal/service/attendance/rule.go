package attendance

import (
	"context"
	"time"

	"github.com/staffhub-erp/staffhub-backend-go/internal/domain/attendance"
	"github.com/staffhub-erp/staffhub-backend-go/internal/pkg/validator"
)

type RuleServiceImpl struct {
	ruleRepo attendance.RuleRepository
	location *time.Location
	now      func() time.Time
}

func NewRuleService(ruleRepo attendance.RuleRepository, location *time.Location) attendance.RuleService {
	return &RuleServiceImpl{
		ruleRepo: ruleRepo,
		location: location,
		now:      time.Now,
	}
}

func (s *RuleServiceImpl) CreateRule(ctx context.Context, req attendance.UpsertRuleRequest) (attendance.RuleResponse, error) {
	rule, err := s.buildRule(req)
	if err != nil {
		return attendance.RuleResponse{}, err
	}

	created, err := s.ruleRepo.Create(ctx, rule)
	if err != nil {
		return attendance.RuleResponse{}, err
	}

	return toRuleResponse(created), nil
}

func (s *RuleServiceImpl) ListRules(ctx context.Context) ([]attendance.RuleResponse, error) {
	rules, err := s.ruleRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.RuleResponse, 0, len(rules))
	for _, rule := range rules {
		responses = append(responses, toRuleResponse(rule))
	}
	return responses, nil
}

func (s *RuleServiceImpl) UpdateRule(ctx context.Context, id string, req attendance.UpsertRuleRequest) (attendance.RuleResponse, error) {
	rule, err := s.buildRule(req)
	if err != nil {
		return attendance.RuleResponse{}, err
	}
	rule.ID = id

	if err := s.ruleRepo.Update(ctx, rule); err != nil {
		return attendance.RuleResponse{}, err
	}

	return toRuleResponse(rule), nil
}

func (s *RuleServiceImpl) DeleteRule(ctx context.Context, id string) error {
	return s.ruleRepo.Delete(ctx, id)
}

func (s *RuleServiceImpl) buildRule(req attendance.UpsertRuleRequest) (attendance.Rule, error) {
	if err := req.Validate(); err != nil {
		return attendance.Rule{}, err
	}

	startTime, err := attendance.ParseTimeOfDay(req.StartTime)
	if err != nil {
		return attendance.Rule{}, err
	}
	endTime, err := attendance.ParseTimeOfDay(req.EndTime)
	if err != nil {
		return attendance.Rule{}, err
	}
	lateTime, err := attendance.ParseTimeOfDay(req.LateTime)
	if err != nil {
		return attendance.Rule{}, err
	}
	halfLeave, err := attendance.ParseTimeOfDay(req.HalfLeave)
	if err != nil {
		return attendance.Rule{}, err
	}
	offDay, _ := validator.ParseWeekday(req.OffDay)

	effectiveAt := calendarDate(s.now().In(s.location))
	if req.EffectiveAt != nil {
		effectiveAt, _ = validator.IsValidDate(*req.EffectiveAt)
	}

	rule := attendance.Rule{
		StartTime:   startTime,
		EndTime:     endTime,
		OffDay:      offDay,
		LateTime:    lateTime,
		HalfLeave:   halfLeave,
		EffectiveAt: effectiveAt,
	}
	if err := rule.Validate(); err != nil {
		return attendance.Rule{}, err
	}

	return rule, nil
}

func toRuleResponse(rule attendance.Rule) attendance.RuleResponse {
	return attendance.RuleResponse{
		ID:          rule.ID,
		StartTime:   rule.StartTime.String(),
		EndTime:     rule.EndTime.String(),
		OffDay:      rule.OffDay.String(),
		LateTime:    rule.LateTime.String(),
		HalfLeave:   rule.HalfLeave.String(),
		EffectiveAt: rule.EffectiveAt.Format("2006-01-02"),
	}
}
