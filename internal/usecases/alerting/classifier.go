package alerting

import (
	"math"
	"sort"
	"time"

	"github.com/vfg2006/control-tower-api/internal/domain"
	"github.com/vfg2006/control-tower-api/pkg/utils"
)

// ClassifyAlerts é uma função pura: snapshot → lista ordenada de
// alertas. Regras com campos ausentes são puladas em silêncio; nunca
// lança erro nem emite alerta placeholder. Determinística para um mesmo
// snapshot, exceto pelo timestamp de relógio de parede recebido.
func ClassifyAlerts(snapshot domain.KpiSnapshot, now time.Time) []domain.Alert {
	alerts := make([]domain.Alert, 0, len(alertRules))
	declarationOrder := make(map[string]int, len(alertRules))

	for index, rule := range alertRules {
		declarationOrder[rule.Key] = index

		value := rule.Value(snapshot)
		target := rule.Target(snapshot)
		if value == nil || target == nil || *target == 0 {
			continue
		}

		deviation := deviationPercent(*value, *target, rule.Direction)

		priority, breached := priorityForDeviation(rule, deviation)
		if !breached {
			continue
		}

		alert := domain.Alert{
			ID:               rule.Key,
			Priority:         priority,
			Title:            rule.Title,
			Message:          rule.Message(*value, *target, deviation),
			DeviationPercent: utils.RoundWithTwoDecimalPlace(deviation),
			Timestamp:        now,
		}

		if rule.Impact != nil {
			alert.FinancialImpact = rule.Impact(snapshot, *value, *target)
		}

		alerts = append(alerts, alert)
	}

	// Prioridade decrescente, depois |desvio| decrescente, depois ordem
	// de declaração das regras como desempate estável
	sort.SliceStable(alerts, func(i, j int) bool {
		if alerts[i].Priority != alerts[j].Priority {
			return alerts[i].Priority.Rank() < alerts[j].Priority.Rank()
		}

		absI := math.Abs(alerts[i].DeviationPercent)
		absJ := math.Abs(alerts[j].DeviationPercent)
		if absI != absJ {
			return absI > absJ
		}

		return declarationOrder[alerts[i].ID] < declarationOrder[alerts[j].ID]
	})

	return alerts
}

// deviationPercent normaliza o desvio pela polaridade da métrica:
// positivo SEMPRE significa "pior que a meta", independente da direção
func deviationPercent(value, target float64, direction metricDirection) float64 {
	deviation := (value - target) / target * 100
	if direction == lowerIsWorse {
		deviation = -deviation
	}
	return deviation
}

// priorityForDeviation resolve a banda em que o desvio caiu.
// P1 = além da banda crítica, P2 = além da banda de atenção,
// P3 = além da banda saudável mas aquém da de atenção.
func priorityForDeviation(rule alertRule, deviation float64) (domain.AlertPriority, bool) {
	switch {
	case deviation >= rule.CriticalPct:
		return domain.PriorityP1, true
	case deviation >= rule.WarningPct:
		return domain.PriorityP2, true
	case deviation > rule.HealthyPct:
		return domain.PriorityP3, true
	default:
		return "", false
	}
}

// GetP1Count conta os alertas P1 ativos (não reconhecidos)
func GetP1Count(alerts []domain.Alert) int {
	count := 0
	for _, alert := range alerts {
		if alert.Priority == domain.PriorityP1 && !alert.Acknowledged {
			count++
		}
	}
	return count
}

// warRoomThreshold: dois ou mais P1 ativos simultâneos escalonam para
// estado de war room
const warRoomThreshold = 2

// Aggregate deriva o estado agregado dos alertas ativos por prioridade
func Aggregate(alerts []domain.Alert) domain.AggregateAlertState {
	state := domain.AggregateAlertState{}

	for _, alert := range alerts {
		if alert.Acknowledged {
			continue
		}

		switch alert.Priority {
		case domain.PriorityP1:
			state.CountP1++
		case domain.PriorityP2:
			state.CountP2++
		case domain.PriorityP3:
			state.CountP3++
		}
	}

	state.WarRoom = state.CountP1 >= warRoomThreshold
	return state
}
