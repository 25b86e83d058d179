package planning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/control-tower-api/internal/domain"
)

func TestGetPlanBusinessRulebook_Essencial(t *testing.T) {
	rulebook := GetPlanBusinessRulebook("essencial")

	assert.Equal(t, domain.PlanEssencial, rulebook.Tier)
	assert.Nil(t, rulebook.Inherits, "essencial é a raiz, não herda de ninguém")
	assert.Equal(t, "essential_operation", rulebook.DashboardMode)
	assert.Len(t, rulebook.Modules, 4, "essencial deve ter os quatro módulos core")

	assert.True(t, rulebook.HasCapability("kpiAlerts"))
	assert.True(t, rulebook.HasCapability("csvExport"))
	assert.False(t, rulebook.HasCapability("weeklyDigestMail"), "digest semanal só entra no pro")
	assert.False(t, rulebook.HasCapability("forecastBandsP10P50P90"))

	assert.Equal(t, "monthly", rulebook.Exports.ExecutivePdf.Cadence)
	assert.False(t, rulebook.Exports.InvestorPdfOneClick)
	assert.False(t, rulebook.Exports.QbrQuarterlyAuto)
	assert.Equal(t, 4, rulebook.DataGovernance.IntegrationSlaHoursMax)
}

func TestGetPlanBusinessRulebook_Pro(t *testing.T) {
	rulebook := GetPlanBusinessRulebook("pro")

	assert.Equal(t, domain.PlanPro, rulebook.Tier)
	require.NotNil(t, rulebook.Inherits)
	assert.Equal(t, domain.PlanEssencial, *rulebook.Inherits)
	assert.Equal(t, "pro_optimization", rulebook.DashboardMode)

	// Módulos do pai vêm antes dos próprios
	require.Len(t, rulebook.Modules, 7)
	assert.Equal(t, "core", rulebook.Modules[0].Layer)
	assert.Equal(t, "optimization", rulebook.Modules[4].Layer)

	// Capabilities herdadas continuam presentes
	assert.True(t, rulebook.HasCapability("kpiAlerts"))
	assert.True(t, rulebook.HasCapability("csvExport"))

	// Capabilities próprias: o filho vence chave a chave
	assert.True(t, rulebook.HasCapability("forecastBandsP10P50P90"))
	assert.True(t, rulebook.HasCapability("weeklyDigestMail"), "pro sobrescreve o false herdado do essencial")

	simulators, ok := rulebook.Capabilities["simulators"].([]string)
	require.True(t, ok, "pro deve declarar a lista de simuladores")
	assert.Len(t, simulators, 4)

	// Escalares: cadence muda, flags de export não definidas preservam o pai
	assert.Equal(t, "weekly", rulebook.Exports.ExecutivePdf.Cadence)
	assert.False(t, rulebook.Exports.InvestorPdfOneClick)
	assert.Equal(t, 2, rulebook.DataGovernance.IntegrationSlaHoursMax)
}

func TestGetPlanBusinessRulebook_Enterprise(t *testing.T) {
	rulebook := GetPlanBusinessRulebook("enterprise")

	assert.Equal(t, domain.PlanEnterprise, rulebook.Tier)
	require.NotNil(t, rulebook.Inherits)
	assert.Equal(t, domain.PlanPro, *rulebook.Inherits)
	assert.Equal(t, "enterprise_network", rulebook.DashboardMode)

	require.Len(t, rulebook.Modules, 10)
	assert.Equal(t, "network", rulebook.Modules[9].Layer)

	// A cadeia inteira de capabilities está presente
	assert.True(t, rulebook.HasCapability("kpiAlerts"))
	assert.True(t, rulebook.HasCapability("forecastBandsP10P50P90"))
	assert.True(t, rulebook.HasCapability("multiUnitConsolidation"))
	assert.True(t, rulebook.HasCapability("structuralAlerts"))
	assert.True(t, rulebook.HasCapability("apiBiAccess"))

	assert.True(t, rulebook.Exports.InvestorPdfOneClick)
	assert.True(t, rulebook.Exports.QbrQuarterlyAuto)

	// Cadence não definida no enterprise: herda weekly do pro
	assert.Equal(t, "weekly", rulebook.Exports.ExecutivePdf.Cadence)
	assert.Equal(t, 1, rulebook.DataGovernance.IntegrationSlaHoursMax)
}

// O rótulo é normalizado antes da composição: entrada inválida produz o
// rulebook completo do essencial, nunca um rulebook parcial
func TestGetPlanBusinessRulebook_RotuloDesconhecido(t *testing.T) {
	rulebook := GetPlanBusinessRulebook("rótulo inventado")

	assert.Equal(t, domain.PlanEssencial, rulebook.Tier)
	assert.Len(t, rulebook.Modules, 4)
	assert.True(t, rulebook.HasCapability("kpiAlerts"))
}

// Composições repetidas não podem compartilhar estado mutável entre si
func TestGetPlanBusinessRulebook_SemVazamentoEntreChamadas(t *testing.T) {
	first := GetPlanBusinessRulebook("pro")
	first.Capabilities["kpiAlerts"] = false
	first.Modules[0].Name = "alterado"

	second := GetPlanBusinessRulebook("pro")
	assert.True(t, second.HasCapability("kpiAlerts"))
	assert.NotEqual(t, "alterado", second.Modules[0].Name)
}

func TestHasEnterpriseStructuralAlerts(t *testing.T) {
	assert.False(t, HasEnterpriseStructuralAlerts("essencial"))
	assert.False(t, HasEnterpriseStructuralAlerts("pro"))
	assert.True(t, HasEnterpriseStructuralAlerts("enterprise"))
	assert.True(t, HasEnterpriseStructuralAlerts(" ENTREPRISE "))
}
