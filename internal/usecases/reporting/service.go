// Package reporting decide quais seções e capacidades de exportação o
// relatório executivo de uma clínica recebe, a partir do rulebook do
// plano. A renderização de PDF/CSV em si é do colaborador externo; aqui
// sai apenas o plano de montagem do relatório.
package reporting

import (
	"github.com/pkg/errors"
	"github.com/vfg2006/control-tower-api/infrastructure/repository"
	"github.com/vfg2006/control-tower-api/internal/domain"
	"github.com/vfg2006/control-tower-api/internal/usecases/planning"
)

// ReportPlan descreve o que o exportador deve montar para a clínica
type ReportPlan struct {
	ClinicID                 string          `json:"clinic_id"`
	Tier                     domain.PlanTier `json:"tier"`
	Cadence                  string          `json:"cadence"`
	Sections                 []string        `json:"sections"`
	IncludesInvestorPdf      bool            `json:"includes_investor_pdf"`
	IncludesQbr              bool            `json:"includes_qbr"`
	IncludesStructuralAlerts bool            `json:"includes_structural_alerts"`
}

type Reporter interface {
	BuildExecutiveReportPlan(clinicID string) (*ReportPlan, error)
}

type Service struct {
	clinicRepo repository.ClinicRepository
	plans      planning.PlanResolver
}

func NewService(clinicRepo repository.ClinicRepository, plans planning.PlanResolver) Reporter {
	return &Service{
		clinicRepo: clinicRepo,
		plans:      plans,
	}
}

// BuildExecutiveReportPlan monta o plano do relatório executivo da
// clínica. O rótulo de plano cru da clínica é normalizado pelo rulebook;
// clínica desconhecida resulta em erro, nunca em relatório parcial.
func (s *Service) BuildExecutiveReportPlan(clinicID string) (*ReportPlan, error) {
	clinic, err := s.clinicRepo.GetClinicByID(clinicID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar clínica para o relatório executivo")
	}
	if clinic == nil {
		return nil, errors.New("clínica não encontrada")
	}

	rulebook := s.plans.GetPlanBusinessRulebook(clinic.PlanLabel)

	sections := []string{"resumo_executivo", "kpis_do_mes", "alertas_ativos"}
	for _, module := range rulebook.Modules {
		sections = append(sections, module.Name)
	}

	plan := &ReportPlan{
		ClinicID:                 clinicID,
		Tier:                     rulebook.Tier,
		Cadence:                  rulebook.Exports.ExecutivePdf.Cadence,
		Sections:                 sections,
		IncludesInvestorPdf:      rulebook.Exports.InvestorPdfOneClick,
		IncludesQbr:              rulebook.Exports.QbrQuarterlyAuto,
		IncludesStructuralAlerts: s.plans.HasEnterpriseStructuralAlerts(clinic.PlanLabel),
	}

	return plan, nil
}
