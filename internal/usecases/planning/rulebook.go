package planning

import (
	"github.com/vfg2006/control-tower-api/internal/domain"
)

// tierOverride é a contribuição própria de um plano ao rulebook: apenas
// dados, sem herança de classes. Campos ponteiro distinguem "não define"
// de "define com valor zero", mantendo o merge raso mecânico.
type tierOverride struct {
	CommercialLabel        string
	DashboardMode          string
	Modules                []domain.RulebookModule
	Capabilities           map[string]interface{}
	ExecutivePdfCadence    *string
	InvestorPdfOneClick    *bool
	QbrQuarterlyAuto       *bool
	IntegrationSlaHoursMax *int
}

// parentOf define a herança de parent único entre planos
var parentOf = map[domain.PlanTier]domain.PlanTier{
	domain.PlanPro:        domain.PlanEssencial,
	domain.PlanEnterprise: domain.PlanPro,
}

// tierOverrides é a fonte única de verdade por capability: o que cada
// plano adiciona (ou sobrescreve) em relação ao plano abaixo
var tierOverrides = map[domain.PlanTier]tierOverride{
	domain.PlanEssencial: {
		CommercialLabel: "Essencial — Operação da Clínica",
		DashboardMode:   "essential_operation",
		Modules: []domain.RulebookModule{
			{Name: "Visão Geral da Clínica", Layer: "core"},
			{Name: "Agenda & No-Show", Layer: "core"},
			{Name: "Funil Comercial", Layer: "core"},
			{Name: "Relatórios Operacionais", Layer: "core"},
		},
		Capabilities: map[string]interface{}{
			"kpiAlerts":        true,
			"monthlyReview":    true,
			"channelTracking":  true,
			"goalTracking":     true,
			"csvExport":        true,
			"singleUnit":       true,
			"alertSoundCues":   true,
			"weeklyDigestMail": false,
		},
		ExecutivePdfCadence:    stringPtr("monthly"),
		InvestorPdfOneClick:    boolPtr(false),
		QbrQuarterlyAuto:       boolPtr(false),
		IntegrationSlaHoursMax: intPtr(4),
	},
	domain.PlanPro: {
		CommercialLabel: "Pro — Otimização e Crescimento",
		DashboardMode:   "pro_optimization",
		Modules: []domain.RulebookModule{
			{Name: "Tempo Real & Equipe", Layer: "optimization"},
			{Name: "Sprints de Crescimento", Layer: "optimization"},
			{Name: "Central de Dados & Integrações", Layer: "optimization"},
		},
		Capabilities: map[string]interface{}{
			"forecastBandsP10P50P90": true,
			"granularByProfessional": true,
			"weeklyDigestMail":       true,
			"simulators": []string{
				"capacidade_agenda",
				"precificacao_ticket",
				"mix_de_canais",
				"contratacao_equipe",
			},
		},
		ExecutivePdfCadence:    stringPtr("weekly"),
		IntegrationSlaHoursMax: intPtr(2),
	},
	domain.PlanEnterprise: {
		CommercialLabel: "Enterprise — Rede e Governança",
		DashboardMode:   "enterprise_network",
		Modules: []domain.RulebookModule{
			{Name: "Consolidação de Rede", Layer: "network"},
			{Name: "Valuation & Investidor", Layer: "network"},
			{Name: "Governança & QBR", Layer: "network"},
		},
		Capabilities: map[string]interface{}{
			"multiUnitConsolidation": true,
			"valuationSuite":         true,
			"structuralAlerts":       true,
			"apiBiAccess":            true,
		},
		InvestorPdfOneClick:    boolPtr(true),
		QbrQuarterlyAuto:       boolPtr(true),
		IntegrationSlaHoursMax: intPtr(1),
	},
}

// GetPlanBusinessRulebook compõe o rulebook completo de um plano a
// partir de um rótulo arbitrário. O rótulo é normalizado antes, então a
// função nunca retorna um rulebook parcial para entrada inválida.
func GetPlanBusinessRulebook(plan string) domain.BusinessRulebook {
	return composeRulebook(NormalizePlanTier(plan))
}

// composeRulebook implementa compose(tier) = merge(compose(parent), own),
// com compose(essencial) = own(essencial). Merge raso: capabilities do
// filho vencem chave a chave, módulos do filho são acrescentados, campos
// escalares só mudam quando o filho os define.
func composeRulebook(tier domain.PlanTier) domain.BusinessRulebook {
	own := tierOverrides[tier]

	parent, hasParent := parentOf[tier]
	if !hasParent {
		rulebook := domain.BusinessRulebook{
			Tier:            tier,
			CommercialLabel: own.CommercialLabel,
			DashboardMode:   own.DashboardMode,
			Modules:         append([]domain.RulebookModule{}, own.Modules...),
			Capabilities:    copyCapabilities(own.Capabilities),
		}
		applyOverride(&rulebook, own)
		return rulebook
	}

	rulebook := composeRulebook(parent)
	rulebook.Tier = tier
	inherits := parent
	rulebook.Inherits = &inherits

	if own.CommercialLabel != "" {
		rulebook.CommercialLabel = own.CommercialLabel
	}
	if own.DashboardMode != "" {
		rulebook.DashboardMode = own.DashboardMode
	}

	rulebook.Modules = append(rulebook.Modules, own.Modules...)

	merged := copyCapabilities(rulebook.Capabilities)
	for key, value := range own.Capabilities {
		merged[key] = value
	}
	rulebook.Capabilities = merged

	applyOverride(&rulebook, own)

	return rulebook
}

func applyOverride(rulebook *domain.BusinessRulebook, own tierOverride) {
	if own.ExecutivePdfCadence != nil {
		rulebook.Exports.ExecutivePdf.Cadence = *own.ExecutivePdfCadence
	}
	if own.InvestorPdfOneClick != nil {
		rulebook.Exports.InvestorPdfOneClick = *own.InvestorPdfOneClick
	}
	if own.QbrQuarterlyAuto != nil {
		rulebook.Exports.QbrQuarterlyAuto = *own.QbrQuarterlyAuto
	}
	if own.IntegrationSlaHoursMax != nil {
		rulebook.DataGovernance.IntegrationSlaHoursMax = *own.IntegrationSlaHoursMax
	}
}

func copyCapabilities(capabilities map[string]interface{}) map[string]interface{} {
	copied := make(map[string]interface{}, len(capabilities))
	for key, value := range capabilities {
		copied[key] = value
	}
	return copied
}

// HasEnterpriseStructuralAlerts indica se o plano dá acesso à tabela de
// alertas estruturais de rede (severidade S1/S2 por unidade). Exige
// agregação multi-unidade, algo que os planos inferiores não possuem.
func HasEnterpriseStructuralAlerts(plan string) bool {
	return NormalizePlanTier(plan) == domain.PlanEnterprise
}

func stringPtr(s string) *string { return &s }
func boolPtr(b bool) *bool       { return &b }
func intPtr(i int) *int          { return &i }
