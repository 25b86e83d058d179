// Package domain contém as estruturas de dados do domínio da aplicação
package domain

// PlanTier representa o nível de assinatura de uma clínica.
// A ordem é estritamente hierárquica: essencial < pro < enterprise.
type PlanTier string

const (
	PlanEssencial  PlanTier = "essencial"
	PlanPro        PlanTier = "pro"
	PlanEnterprise PlanTier = "enterprise"
)

// planRanks define a hierarquia dos planos. Um plano de rank maior
// desbloqueia tudo que os planos de rank menor desbloqueiam.
var planRanks = map[PlanTier]int{
	PlanEssencial:  0,
	PlanPro:        1,
	PlanEnterprise: 2,
}

// Rank retorna a posição do plano na hierarquia. Planos desconhecidos
// retornam o rank do essencial.
func (t PlanTier) Rank() int {
	if rank, ok := planRanks[t]; ok {
		return rank
	}
	return planRanks[PlanEssencial]
}

// Valid indica se o valor já é um plano canônico
func (t PlanTier) Valid() bool {
	_, ok := planRanks[t]
	return ok
}

// SectionID identifica uma seção do dashboard sujeita a gating por plano
type SectionID string

const (
	SectionDashboard     SectionID = "dashboard"
	SectionRealtime      SectionID = "realtime"
	SectionAgenda        SectionID = "agenda"
	SectionEquipe        SectionID = "equipe"
	SectionSprints       SectionID = "sprints"
	SectionFunil         SectionID = "funil"
	SectionCanais        SectionID = "canais"
	SectionIntegracoes   SectionID = "integracoes"
	SectionDados         SectionID = "dados"
	SectionRelatorios    SectionID = "relatorios"
	SectionConfiguracoes SectionID = "configuracoes"
	SectionRede          SectionID = "rede"
	SectionBenchmarkRede SectionID = "benchmark_rede"
	SectionValuation     SectionID = "valuation"
	SectionInvestidor    SectionID = "investidor"
	SectionGovernanca    SectionID = "governanca"
	SectionAPIBI         SectionID = "api_bi"
	SectionQBR           SectionID = "qbr"
)

// PlanAccessMatrix mapeia cada plano para o conjunto ordenado de seções
// que ele desbloqueia. Invariante: cada plano contém todas as seções do
// plano imediatamente inferior (superset estrito, nunca o contrário).
// A tabela de plano mínimo por seção é DERIVADA desta matriz em tempo de
// carga; nunca manter uma segunda tabela editada à mão.
var PlanAccessMatrix = map[PlanTier][]SectionID{
	PlanEssencial: {
		SectionDashboard,
		SectionAgenda,
		SectionFunil,
		SectionCanais,
		SectionRelatorios,
		SectionConfiguracoes,
	},
	PlanPro: {
		SectionDashboard,
		SectionRealtime,
		SectionAgenda,
		SectionEquipe,
		SectionSprints,
		SectionFunil,
		SectionCanais,
		SectionIntegracoes,
		SectionDados,
		SectionRelatorios,
		SectionConfiguracoes,
	},
	PlanEnterprise: {
		SectionDashboard,
		SectionRealtime,
		SectionAgenda,
		SectionEquipe,
		SectionSprints,
		SectionFunil,
		SectionCanais,
		SectionIntegracoes,
		SectionDados,
		SectionRelatorios,
		SectionConfiguracoes,
		SectionRede,
		SectionBenchmarkRede,
		SectionValuation,
		SectionInvestidor,
		SectionGovernanca,
		SectionAPIBI,
		SectionQBR,
	},
}

// AllSections retorna todas as seções conhecidas na ordem de declaração
// do plano enterprise (que, por invariante, contém todas)
func AllSections() []SectionID {
	sections := make([]SectionID, len(PlanAccessMatrix[PlanEnterprise]))
	copy(sections, PlanAccessMatrix[PlanEnterprise])
	return sections
}
