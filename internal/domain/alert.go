package domain

import "time"

// AlertPriority é a banda de severidade de um alerta.
// P1 = crítico, P2 = atenção, P3 = monitoramento.
type AlertPriority string

const (
	PriorityP1 AlertPriority = "P1"
	PriorityP2 AlertPriority = "P2"
	PriorityP3 AlertPriority = "P3"
)

// priorityRanks ordena as prioridades do mais grave para o menos grave
var priorityRanks = map[AlertPriority]int{
	PriorityP1: 0,
	PriorityP2: 1,
	PriorityP3: 2,
}

// Rank retorna a posição da prioridade na ordenação (menor = mais grave)
func (p AlertPriority) Rank() int {
	return priorityRanks[p]
}

// Alert é um alerta de KPI classificado. O ID é derivado da chave da
// regra (nunca aleatório), de modo que a mesma violação mapeia sempre
// para a mesma identidade entre passes de reclassificação.
type Alert struct {
	ID               string        `json:"id"`
	Priority         AlertPriority `json:"priority"`
	Title            string        `json:"title"`
	Message          string        `json:"message"`
	FinancialImpact  *float64      `json:"financial_impact,omitempty"`
	DeviationPercent float64       `json:"deviation_percent"`
	Timestamp        time.Time     `json:"timestamp"`
	Acknowledged     bool          `json:"acknowledged"`
	ResolvedAt       *time.Time    `json:"resolved_at,omitempty"`
}

// AggregateAlertState agrega os alertas ativos (não reconhecidos) por
// prioridade. WarRoom é o estado de escalonamento emergente: dois ou mais
// alertas P1 ativos simultâneos.
type AggregateAlertState struct {
	CountP1 int  `json:"count_p1"`
	CountP2 int  `json:"count_p2"`
	CountP3 int  `json:"count_p3"`
	WarRoom bool `json:"war_room"`
}

// SoundCue é o contrato de disparo de notificação sonora: no máximo um
// cue por alerta de maior prioridade recém-chegado, nunca em re-render
// de estado inalterado. A reprodução em si é do colaborador externo.
type SoundCue struct {
	Priority AlertPriority `json:"priority"`
	AlertID  string        `json:"alert_id"`
}

// AlertEvaluation é o resultado de um passe de classificação para uma
// clínica: alertas ordenados com estado de ciclo de vida aplicado,
// agregado por prioridade e o cue sonoro a disparar (se houver)
type AlertEvaluation struct {
	ClinicID    string              `json:"clinic_id"`
	SnapshotID  string              `json:"snapshot_id,omitempty"`
	CollectedAt *time.Time          `json:"collected_at,omitempty"`
	Alerts      []Alert             `json:"alerts"`
	Aggregate   AggregateAlertState `json:"aggregate"`
	SoundCue    *SoundCue           `json:"sound_cue,omitempty"`
}
