package domain

import "time"

// KpiSnapshot é o contrato de dados de uma foto pontual dos indicadores
// de negócio de uma clínica, produzida por um coletor externo (sync com o
// CRM ou importação de planilha). Qualquer subconjunto de campos pode
// estar ausente; campos ausentes são representados como nil e as regras
// de alerta que dependem deles são simplesmente puladas.
type KpiSnapshot struct {
	ID              string    `json:"id"`
	ClinicID        string    `json:"clinic_id"`
	NoShowRate      *float64  `json:"no_show_rate,omitempty"`
	MargemLiquida   *float64  `json:"margem_liquida,omitempty"`
	NPS             *float64  `json:"nps,omitempty"`
	Faturamento     *float64  `json:"faturamento,omitempty"`
	MetaFaturamento *float64  `json:"meta_faturamento,omitempty"`
	ChurnRate       *float64  `json:"churn_rate,omitempty"`
	FluxoCaixa      *float64  `json:"fluxo_caixa,omitempty"`
	OccupancyRate   *float64  `json:"occupancy_rate,omitempty"`
	CAC             *float64  `json:"cac,omitempty"`
	LTV             *float64  `json:"ltv,omitempty"`
	CollectedAt     time.Time `json:"collected_at"`
	CreatedAt       time.Time `json:"created_at"`
}

// Float64Ptr é um helper para montar snapshots em código e testes
func Float64Ptr(v float64) *float64 {
	return &v
}
