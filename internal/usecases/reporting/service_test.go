package reporting

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/control-tower-api/infrastructure/repository/mocks"
	"github.com/vfg2006/control-tower-api/internal/domain"
	"github.com/vfg2006/control-tower-api/internal/usecases/planning"
	"go.uber.org/mock/gomock"
)

func TestBuildExecutiveReportPlan(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name     string
		clinic   *domain.Clinic
		validate func(t *testing.T, plan *ReportPlan)
	}{
		{
			name: "Clínica essencial recebe relatório mensal sem anexos de rede",
			clinic: &domain.Clinic{
				ID:        "CLI001",
				Name:      "Clínica Aurora",
				PlanLabel: "essencial",
				Status:    domain.ClinicStatusActive,
			},
			validate: func(t *testing.T, plan *ReportPlan) {
				assert.Equal(t, domain.PlanEssencial, plan.Tier)
				assert.Equal(t, "monthly", plan.Cadence)
				assert.False(t, plan.IncludesInvestorPdf)
				assert.False(t, plan.IncludesQbr)
				assert.False(t, plan.IncludesStructuralAlerts)

				// Seções base + os quatro módulos core
				assert.Len(t, plan.Sections, 7)
				assert.Equal(t, "resumo_executivo", plan.Sections[0])
			},
		},
		{
			name: "Clínica pro recebe cadência semanal com módulos de otimização",
			clinic: &domain.Clinic{
				ID:        "CLI002",
				Name:      "Clínica Horizonte",
				PlanLabel: "Profissional",
				Status:    domain.ClinicStatusActive,
			},
			validate: func(t *testing.T, plan *ReportPlan) {
				assert.Equal(t, domain.PlanPro, plan.Tier)
				assert.Equal(t, "weekly", plan.Cadence)
				assert.False(t, plan.IncludesInvestorPdf)
				assert.False(t, plan.IncludesStructuralAlerts)
				assert.Len(t, plan.Sections, 10)
			},
		},
		{
			name: "Clínica enterprise recebe todos os anexos de rede",
			clinic: &domain.Clinic{
				ID:        "CLI003",
				Name:      "Rede Vitalis",
				PlanLabel: "enterprise",
				Status:    domain.ClinicStatusActive,
			},
			validate: func(t *testing.T, plan *ReportPlan) {
				assert.Equal(t, domain.PlanEnterprise, plan.Tier)
				assert.True(t, plan.IncludesInvestorPdf)
				assert.True(t, plan.IncludesQbr)
				assert.True(t, plan.IncludesStructuralAlerts)
				assert.Len(t, plan.Sections, 13)
			},
		},
		{
			name: "Rótulo de plano desconhecido degrada para o relatório do essencial",
			clinic: &domain.Clinic{
				ID:        "CLI004",
				Name:      "Clínica Sem Cadastro",
				PlanLabel: "plano-migrado-2019",
				Status:    domain.ClinicStatusActive,
			},
			validate: func(t *testing.T, plan *ReportPlan) {
				assert.Equal(t, domain.PlanEssencial, plan.Tier)
				assert.False(t, plan.IncludesInvestorPdf)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clinicRepo := mocks.NewMockClinicRepository(ctrl)
			clinicRepo.EXPECT().
				GetClinicByID(tt.clinic.ID).
				Return(tt.clinic, nil)

			service := NewService(clinicRepo, planning.NewService())

			plan, err := service.BuildExecutiveReportPlan(tt.clinic.ID)
			require.NoError(t, err)
			tt.validate(t, plan)
		})
	}
}

func TestBuildExecutiveReportPlan_ClinicaInexistente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clinicRepo := mocks.NewMockClinicRepository(ctrl)
	clinicRepo.EXPECT().
		GetClinicByID("CLI999").
		Return(nil, nil)

	service := NewService(clinicRepo, planning.NewService())

	plan, err := service.BuildExecutiveReportPlan("CLI999")
	assert.Nil(t, plan)
	assert.EqualError(t, err, "clínica não encontrada")
}

func TestBuildExecutiveReportPlan_ErroDeBanco(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clinicRepo := mocks.NewMockClinicRepository(ctrl)
	clinicRepo.EXPECT().
		GetClinicByID("CLI001").
		Return(nil, errors.New("conexão recusada"))

	service := NewService(clinicRepo, planning.NewService())

	plan, err := service.BuildExecutiveReportPlan("CLI001")
	assert.Nil(t, plan)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "relatório executivo")
}
