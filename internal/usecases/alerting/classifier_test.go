package alerting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/control-tower-api/internal/domain"
)

// Snapshot de uma clínica em crise: no-show e NPS estourados, margem e
// faturamento em atenção
func crisisSnapshot() domain.KpiSnapshot {
	return domain.KpiSnapshot{
		ID:              "snap-crisis",
		ClinicID:        "CLI001",
		NoShowRate:      domain.Float64Ptr(18.5),
		MargemLiquida:   domain.Float64Ptr(14.2),
		NPS:             domain.Float64Ptr(7.2),
		Faturamento:     domain.Float64Ptr(2_400_000),
		MetaFaturamento: domain.Float64Ptr(2_800_000),
		CollectedAt:     time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC),
	}
}

// Snapshot de uma clínica saudável: todas as métricas dentro da banda
func healthySnapshot() domain.KpiSnapshot {
	return domain.KpiSnapshot{
		ID:              "snap-ok",
		ClinicID:        "CLI001",
		NoShowRate:      domain.Float64Ptr(4),
		MargemLiquida:   domain.Float64Ptr(22),
		NPS:             domain.Float64Ptr(81),
		Faturamento:     domain.Float64Ptr(3_000_000),
		MetaFaturamento: domain.Float64Ptr(2_800_000),
		CollectedAt:     time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC),
	}
}

func TestClassifyAlerts_ClinicaEmCrise(t *testing.T) {
	now := time.Now()
	alerts := ClassifyAlerts(crisisSnapshot(), now)

	require.Len(t, alerts, 4)

	// Ordenação: prioridade decrescente, depois |desvio| decrescente
	assert.Equal(t, "no_show_rate", alerts[0].ID)
	assert.Equal(t, domain.PriorityP1, alerts[0].Priority)
	assert.Equal(t, 270.0, alerts[0].DeviationPercent)

	assert.Equal(t, "nps", alerts[1].ID)
	assert.Equal(t, domain.PriorityP1, alerts[1].Priority)
	assert.Equal(t, 90.4, alerts[1].DeviationPercent)

	assert.Equal(t, "margem_liquida", alerts[2].ID)
	assert.Equal(t, domain.PriorityP2, alerts[2].Priority)
	assert.Equal(t, 29.0, alerts[2].DeviationPercent)

	assert.Equal(t, "revenue_vs_target", alerts[3].ID)
	assert.Equal(t, domain.PriorityP2, alerts[3].Priority)
	assert.Equal(t, 14.29, alerts[3].DeviationPercent)

	// Impactos financeiros: excesso de no-show sobre o faturamento e o
	// gap absoluto de receita
	require.NotNil(t, alerts[0].FinancialImpact)
	assert.InDelta(t, 324_000, *alerts[0].FinancialImpact, 0.01)

	require.NotNil(t, alerts[3].FinancialImpact)
	assert.InDelta(t, 400_000, *alerts[3].FinancialImpact, 0.01)

	// Dois P1 ativos simultâneos escalonam para war room
	aggregate := Aggregate(alerts)
	assert.Equal(t, 2, aggregate.CountP1)
	assert.Equal(t, 2, aggregate.CountP2)
	assert.Equal(t, 0, aggregate.CountP3)
	assert.True(t, aggregate.WarRoom)
}

func TestClassifyAlerts_ClinicaSaudavel(t *testing.T) {
	alerts := ClassifyAlerts(healthySnapshot(), time.Now())

	assert.Empty(t, alerts)
	assert.False(t, Aggregate(alerts).WarRoom)
}

// Mesmo snapshot, mesmo relógio: saída byte a byte idêntica
func TestClassifyAlerts_Deterministico(t *testing.T) {
	now := time.Now()
	snapshot := crisisSnapshot()

	first := ClassifyAlerts(snapshot, now)
	second := ClassifyAlerts(snapshot, now)

	assert.Equal(t, first, second)
}

// Campos ausentes pulam a regra em silêncio, sem erro nem placeholder
func TestClassifyAlerts_CamposAusentes(t *testing.T) {
	snapshot := domain.KpiSnapshot{
		ID:         "snap-parcial",
		ClinicID:   "CLI002",
		NoShowRate: domain.Float64Ptr(18.5),
	}

	alerts := ClassifyAlerts(snapshot, time.Now())

	require.Len(t, alerts, 1)
	assert.Equal(t, "no_show_rate", alerts[0].ID)

	// Sem faturamento não há como estimar o impacto financeiro
	assert.Nil(t, alerts[0].FinancialImpact)
}

// Meta zero é tratada como ausência de meta, nunca divisão por zero
func TestClassifyAlerts_MetaZero(t *testing.T) {
	snapshot := domain.KpiSnapshot{
		ID:              "snap-meta-zero",
		ClinicID:        "CLI002",
		Faturamento:     domain.Float64Ptr(1_000_000),
		MetaFaturamento: domain.Float64Ptr(0),
	}

	assert.Empty(t, ClassifyAlerts(snapshot, time.Now()))
}

// Desvio normalizado pela polaridade: positivo SEMPRE significa pior,
// tanto para métricas onde acima é ruim quanto onde abaixo é ruim
func TestClassifyAlerts_DesvioNormalizado(t *testing.T) {
	tests := []struct {
		name              string
		snapshot          domain.KpiSnapshot
		expectedID        string
		expectedDeviation float64
	}{
		{
			name: "No-show acima da meta gera desvio positivo",
			snapshot: domain.KpiSnapshot{
				NoShowRate: domain.Float64Ptr(10),
			},
			expectedID:        "no_show_rate",
			expectedDeviation: 100.0,
		},
		{
			name: "Margem abaixo da meta também gera desvio positivo",
			snapshot: domain.KpiSnapshot{
				MargemLiquida: domain.Float64Ptr(10),
			},
			expectedID:        "margem_liquida",
			expectedDeviation: 50.0,
		},
		{
			name: "Ocupação abaixo da meta gera desvio positivo",
			snapshot: domain.KpiSnapshot{
				OccupancyRate: domain.Float64Ptr(60),
			},
			expectedID:        "occupancy_rate",
			expectedDeviation: 29.41,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alerts := ClassifyAlerts(tt.snapshot, time.Now())

			require.Len(t, alerts, 1)
			assert.Equal(t, tt.expectedID, alerts[0].ID)
			assert.Equal(t, tt.expectedDeviation, alerts[0].DeviationPercent)
		})
	}
}

// A regra de LTV/CAC opera sobre a razão derivada das duas métricas
func TestClassifyAlerts_RelacaoLtvCac(t *testing.T) {
	snapshot := domain.KpiSnapshot{
		LTV: domain.Float64Ptr(6_000),
		CAC: domain.Float64Ptr(3_000),
	}

	alerts := ClassifyAlerts(snapshot, time.Now())

	require.Len(t, alerts, 1)
	assert.Equal(t, "ltv_cac", alerts[0].ID)
	assert.Equal(t, domain.PriorityP2, alerts[0].Priority)
	assert.Equal(t, 33.33, alerts[0].DeviationPercent)

	// CAC zero ou negativo invalida a razão: regra pulada
	snapshot.CAC = domain.Float64Ptr(0)
	assert.Empty(t, ClassifyAlerts(snapshot, time.Now()))
}

// IDs de alerta são as chaves das regras: a mesma violação mapeia sempre
// para a mesma identidade entre passes
func TestClassifyAlerts_IdentidadeEstavel(t *testing.T) {
	first := ClassifyAlerts(crisisSnapshot(), time.Now())
	second := ClassifyAlerts(crisisSnapshot(), time.Now().Add(30*time.Minute))

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
	}

	assert.True(t, KnownAlertID("no_show_rate"))
	assert.False(t, KnownAlertID("regra_inexistente"))
}

func TestAggregate_LimiarDeWarRoom(t *testing.T) {
	p1 := func(id string) domain.Alert {
		return domain.Alert{ID: id, Priority: domain.PriorityP1}
	}

	tests := []struct {
		name     string
		alerts   []domain.Alert
		expected bool
	}{
		{
			name:     "Nenhum alerta",
			alerts:   nil,
			expected: false,
		},
		{
			name:     "Um P1 ativo não escala",
			alerts:   []domain.Alert{p1("a")},
			expected: false,
		},
		{
			name:     "Dois P1 ativos escalam",
			alerts:   []domain.Alert{p1("a"), p1("b")},
			expected: true,
		},
		{
			name:     "Três P1 ativos permanecem em war room",
			alerts:   []domain.Alert{p1("a"), p1("b"), p1("c")},
			expected: true,
		},
		{
			name: "P1 reconhecido não conta para o limiar",
			alerts: []domain.Alert{
				p1("a"),
				{ID: "b", Priority: domain.PriorityP1, Acknowledged: true},
			},
			expected: false,
		},
		{
			name: "P2 em quantidade não escala",
			alerts: []domain.Alert{
				{ID: "a", Priority: domain.PriorityP2},
				{ID: "b", Priority: domain.PriorityP2},
				{ID: "c", Priority: domain.PriorityP2},
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Aggregate(tt.alerts).WarRoom)
		})
	}
}

func TestGetP1Count(t *testing.T) {
	alerts := []domain.Alert{
		{ID: "a", Priority: domain.PriorityP1},
		{ID: "b", Priority: domain.PriorityP1, Acknowledged: true},
		{ID: "c", Priority: domain.PriorityP2},
	}

	assert.Equal(t, 1, GetP1Count(alerts))
}
