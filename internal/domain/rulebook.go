package domain

// RulebookModule representa um módulo comercial do plano, marcado com a
// camada a que pertence (core, optimization, network)
type RulebookModule struct {
	Name  string `json:"name"`
	Layer string `json:"layer"`
}

// ExecutivePdfConfig define a cadência do PDF executivo do plano
type ExecutivePdfConfig struct {
	Cadence string `json:"cadence"`
}

// ExportsConfig agrupa as capacidades de exportação do plano
type ExportsConfig struct {
	ExecutivePdf        ExecutivePdfConfig `json:"executive_pdf"`
	InvestorPdfOneClick bool               `json:"investor_pdf_one_click"`
	QbrQuarterlyAuto    bool               `json:"qbr_quarterly_auto"`
}

// DataGovernanceConfig agrupa os SLAs de governança de dados do plano
type DataGovernanceConfig struct {
	IntegrationSlaHoursMax int `json:"integration_sla_hours_max"`
}

// BusinessRulebook é o conjunto completo de regras de negócio de um plano.
// Rulebooks são compostos por herança de dados de parent único
// (pro estende essencial, enterprise estende pro): toda capability de um
// plano inferior permanece visível nos planos superiores.
type BusinessRulebook struct {
	Tier            PlanTier               `json:"tier"`
	CommercialLabel string                 `json:"commercial_label"`
	Inherits        *PlanTier              `json:"inherits,omitempty"`
	DashboardMode   string                 `json:"dashboard_mode"`
	Modules         []RulebookModule       `json:"modules"`
	Capabilities    map[string]interface{} `json:"capabilities"`
	Exports         ExportsConfig          `json:"exports"`
	DataGovernance  DataGovernanceConfig   `json:"data_governance"`
}

// HasCapability verifica se a capability está presente e não é false
func (r BusinessRulebook) HasCapability(key string) bool {
	value, ok := r.Capabilities[key]
	if !ok {
		return false
	}
	if enabled, isBool := value.(bool); isBool {
		return enabled
	}
	return true
}
