// Package planning implementa o motor de regras de plano do Control
// Tower: normalização de rótulos de plano, gating de seções do dashboard
// e composição do rulebook de negócio por plano.
package planning

import (
	"strings"

	"github.com/vfg2006/control-tower-api/internal/domain"
)

// planSynonyms mapeia rótulos legados/variantes para o plano canônico
var planSynonyms = map[string]domain.PlanTier{
	"essencial":    domain.PlanEssencial,
	"essential":    domain.PlanEssencial,
	"start":        domain.PlanEssencial,
	"pro":          domain.PlanPro,
	"profissional": domain.PlanPro,
	"professional": domain.PlanPro,
	"enterprise":   domain.PlanEnterprise,
	"entreprise":   domain.PlanEnterprise,
}

// minPlanBySection é a tabela derivada de plano mínimo por seção,
// construída uma única vez a partir da PlanAccessMatrix. Nunca editar à
// mão: uma segunda tabela independente iria divergir da matriz.
var minPlanBySection = buildMinPlanTable()

func buildMinPlanTable() map[domain.SectionID]domain.PlanTier {
	table := make(map[domain.SectionID]domain.PlanTier)

	// Percorre dos planos mais altos para os mais baixos, de modo que o
	// último a escrever em cada seção seja o menor plano que a contém
	tiers := []domain.PlanTier{domain.PlanEnterprise, domain.PlanPro, domain.PlanEssencial}
	for _, tier := range tiers {
		for _, section := range domain.PlanAccessMatrix[tier] {
			table[section] = tier
		}
	}

	return table
}

// NormalizePlanTier normaliza um rótulo de plano arbitrário para o plano
// canônico. Entrada desconhecida degrada para essencial (fail-open): uma
// conta mal configurada perde capacidades, não o acesso ao dashboard.
// Nunca retorna erro e é idempotente para valores já canônicos.
func NormalizePlanTier(raw string) domain.PlanTier {
	normalized := strings.ToLower(strings.TrimSpace(raw))

	if tier, ok := planSynonyms[normalized]; ok {
		return tier
	}

	return domain.PlanEssencial
}

// MinPlanForSection retorna o menor plano cujo conjunto de seções contém
// a seção. Seções não mapeadas são tratadas como exclusivas do
// enterprise: reter uma capability é mais seguro do que vazá-la.
func MinPlanForSection(section domain.SectionID) domain.PlanTier {
	if tier, ok := minPlanBySection[section]; ok {
		return tier
	}
	return domain.PlanEnterprise
}

// CanAccessSection decide se o plano (rótulo bruto, normalizado aqui)
// alcança a seção: rank(plano) >= rank(plano mínimo da seção)
func CanAccessSection(plan string, section domain.SectionID) bool {
	tier := NormalizePlanTier(plan)
	return tier.Rank() >= MinPlanForSection(section).Rank()
}

// SectionsForPlan retorna o conjunto ordenado de seções desbloqueadas
// pelo plano (rótulo bruto, normalizado aqui)
func SectionsForPlan(plan string) []domain.SectionID {
	tier := NormalizePlanTier(plan)

	sections := make([]domain.SectionID, len(domain.PlanAccessMatrix[tier]))
	copy(sections, domain.PlanAccessMatrix[tier])
	return sections
}

// MinPlanTable retorna uma cópia da tabela derivada seção → plano mínimo
func MinPlanTable() map[domain.SectionID]domain.PlanTier {
	table := make(map[domain.SectionID]domain.PlanTier, len(minPlanBySection))
	for section, tier := range minPlanBySection {
		table[section] = tier
	}
	return table
}
