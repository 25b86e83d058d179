// Package alerting implementa o classificador de alertas de KPI do
// Control Tower: transforma um snapshot de indicadores em uma lista
// priorizada de alertas com desvio assinado e impacto financeiro
// estimado, além do ciclo de vida de reconhecimento dos alertas.
package alerting

import (
	"fmt"

	"github.com/vfg2006/control-tower-api/internal/domain"
)

// metricDirection declara a polaridade da métrica em relação à meta
type metricDirection int

const (
	// higherIsWorse: acima da meta é ruim (no-show, churn)
	higherIsWorse metricDirection = iota
	// lowerIsWorse: abaixo da meta é ruim (margem, NPS, ocupação, receita)
	lowerIsWorse
)

// alertRule é uma regra declarativa de classificação. Cada regra possui
// uma chave fixa (que vira o ID estável do alerta), uma meta, e uma
// tabela de três bandas de desvio percentual: saudável até HealthyPct,
// atenção até CriticalPct, crítico a partir de CriticalPct.
type alertRule struct {
	Key       string
	Title     string
	Direction metricDirection

	// Value extrai o valor da métrica; nil pula a regra sem erro
	Value func(s domain.KpiSnapshot) *float64

	// Target extrai a meta; para a maioria das regras é fixa, para
	// receita vem do próprio snapshot. nil pula a regra.
	Target func(s domain.KpiSnapshot) *float64

	// Bandas de desvio percentual (desvio já normalizado: positivo = pior)
	HealthyPct  float64
	WarningPct  float64
	CriticalPct float64

	// Message monta a mensagem do alerta a partir do valor e da meta
	Message func(value, target, deviation float64) string

	// Impact calcula o impacto financeiro estimado quando a regra é
	// monetizável; regras sem fórmula monetizável deixam nil
	Impact func(s domain.KpiSnapshot, value, target float64) *float64
}

// KnownAlertID informa se o ID corresponde a uma regra declarada. IDs de
// alerta são exatamente as chaves da tabela de regras.
func KnownAlertID(alertID string) bool {
	for _, rule := range alertRules {
		if rule.Key == alertID {
			return true
		}
	}
	return false
}

// fixedTarget devolve um extrator de meta constante
func fixedTarget(target float64) func(domain.KpiSnapshot) *float64 {
	return func(domain.KpiSnapshot) *float64 {
		return &target
	}
}

// alertRules é a tabela de regras na ordem de declaração, usada como
// desempate final da ordenação dos alertas. As metas e bandas abaixo são
// os defaults de produto; manter tudo aqui em um único lugar para que a
// revisão de negócio enxergue a tabela inteira.
var alertRules = []alertRule{
	{
		Key:         "no_show_rate",
		Title:       "Taxa de no-show acima da meta",
		Direction:   higherIsWorse,
		Value:       func(s domain.KpiSnapshot) *float64 { return s.NoShowRate },
		Target:      fixedTarget(5.0),
		HealthyPct:  10,
		WarningPct:  50,
		CriticalPct: 100,
		Message: func(value, target, deviation float64) string {
			return fmt.Sprintf("No-show em %.1f%% contra meta de %.1f%%: agenda perdendo horários vendáveis", value, target)
		},
		Impact: func(s domain.KpiSnapshot, value, target float64) *float64 {
			// Horários perdidos × ticket médio, expresso como a fatia da
			// receita correspondente ao excesso de no-show
			if s.Faturamento == nil {
				return nil
			}
			impact := *s.Faturamento * (value - target) / 100
			if impact <= 0 {
				return nil
			}
			return &impact
		},
	},
	{
		Key:         "margem_liquida",
		Title:       "Margem líquida abaixo da meta",
		Direction:   lowerIsWorse,
		Value:       func(s domain.KpiSnapshot) *float64 { return s.MargemLiquida },
		Target:      fixedTarget(20.0),
		HealthyPct:  5,
		WarningPct:  15,
		CriticalPct: 40,
		Message: func(value, target, deviation float64) string {
			return fmt.Sprintf("Margem líquida em %.1f%% contra meta de %.1f%%", value, target)
		},
	},
	{
		Key:         "nps",
		Title:       "NPS abaixo da meta",
		Direction:   lowerIsWorse,
		Value:       func(s domain.KpiSnapshot) *float64 { return s.NPS },
		Target:      fixedTarget(75.0),
		HealthyPct:  5,
		WarningPct:  10,
		CriticalPct: 30,
		Message: func(value, target, deviation float64) string {
			return fmt.Sprintf("NPS em %.1f contra meta de %.1f: risco de detratores e churn", value, target)
		},
	},
	{
		Key:         "revenue_vs_target",
		Title:       "Faturamento abaixo da meta",
		Direction:   lowerIsWorse,
		Value:       func(s domain.KpiSnapshot) *float64 { return s.Faturamento },
		Target:      func(s domain.KpiSnapshot) *float64 { return s.MetaFaturamento },
		HealthyPct:  3,
		WarningPct:  10,
		CriticalPct: 25,
		Message: func(value, target, deviation float64) string {
			return fmt.Sprintf("Faturamento de R$ %.0f contra meta de R$ %.0f (%.1f%% abaixo)", value, target, deviation)
		},
		Impact: func(s domain.KpiSnapshot, value, target float64) *float64 {
			gap := target - value
			if gap <= 0 {
				return nil
			}
			return &gap
		},
	},
	{
		Key:         "churn_rate",
		Title:       "Churn de pacientes acima da meta",
		Direction:   higherIsWorse,
		Value:       func(s domain.KpiSnapshot) *float64 { return s.ChurnRate },
		Target:      fixedTarget(3.0),
		HealthyPct:  10,
		WarningPct:  40,
		CriticalPct: 100,
		Message: func(value, target, deviation float64) string {
			return fmt.Sprintf("Churn em %.1f%% contra meta de %.1f%%", value, target)
		},
	},
	{
		Key:         "occupancy_rate",
		Title:       "Ocupação de agenda abaixo da meta",
		Direction:   lowerIsWorse,
		Value:       func(s domain.KpiSnapshot) *float64 { return s.OccupancyRate },
		Target:      fixedTarget(85.0),
		HealthyPct:  5,
		WarningPct:  12,
		CriticalPct: 25,
		Message: func(value, target, deviation float64) string {
			return fmt.Sprintf("Ocupação em %.1f%% contra meta de %.1f%%", value, target)
		},
	},
	{
		Key:       "ltv_cac",
		Title:     "Relação LTV/CAC abaixo da meta",
		Direction: lowerIsWorse,
		Value: func(s domain.KpiSnapshot) *float64 {
			if s.LTV == nil || s.CAC == nil || *s.CAC <= 0 {
				return nil
			}
			ratio := *s.LTV / *s.CAC
			return &ratio
		},
		Target:      fixedTarget(3.0),
		HealthyPct:  10,
		WarningPct:  25,
		CriticalPct: 50,
		Message: func(value, target, deviation float64) string {
			return fmt.Sprintf("LTV/CAC em %.1fx contra meta de %.1fx: aquisição cara demais para o valor gerado", value, target)
		},
	},
}
