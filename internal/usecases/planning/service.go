package planning

import (
	"github.com/vfg2006/control-tower-api/internal/domain"
)

// PlanResolver é a interface consumida por handlers e middlewares para
// decisões de gating e consulta de rulebooks
type PlanResolver interface {
	NormalizePlanTier(raw string) domain.PlanTier
	CanAccessSection(plan string, section domain.SectionID) bool
	MinPlanForSection(section domain.SectionID) domain.PlanTier
	MinPlanTable() map[domain.SectionID]domain.PlanTier
	SectionsForPlan(plan string) []domain.SectionID
	GetPlanBusinessRulebook(plan string) domain.BusinessRulebook
	ListRulebooks() []domain.BusinessRulebook
	HasEnterpriseStructuralAlerts(plan string) bool
}

// Service expõe o motor de planos como dependência injetável. O estado é
// totalmente imutável e construído em tempo de carga, então a mesma
// instância serve qualquer número de sessões.
type Service struct{}

func NewService() PlanResolver {
	return &Service{}
}

func (s *Service) NormalizePlanTier(raw string) domain.PlanTier {
	return NormalizePlanTier(raw)
}

func (s *Service) CanAccessSection(plan string, section domain.SectionID) bool {
	return CanAccessSection(plan, section)
}

func (s *Service) MinPlanForSection(section domain.SectionID) domain.PlanTier {
	return MinPlanForSection(section)
}

func (s *Service) MinPlanTable() map[domain.SectionID]domain.PlanTier {
	return MinPlanTable()
}

func (s *Service) SectionsForPlan(plan string) []domain.SectionID {
	return SectionsForPlan(plan)
}

func (s *Service) GetPlanBusinessRulebook(plan string) domain.BusinessRulebook {
	return GetPlanBusinessRulebook(plan)
}

// ListRulebooks retorna os rulebooks compostos dos três planos, do menor
// para o maior
func (s *Service) ListRulebooks() []domain.BusinessRulebook {
	return []domain.BusinessRulebook{
		composeRulebook(domain.PlanEssencial),
		composeRulebook(domain.PlanPro),
		composeRulebook(domain.PlanEnterprise),
	}
}

func (s *Service) HasEnterpriseStructuralAlerts(plan string) bool {
	return HasEnterpriseStructuralAlerts(plan)
}
