package alerting

import (
	"github.com/vfg2006/control-tower-api/internal/domain"
)

// CueTracker implementa o contrato de disparo sonoro: no máximo um cue
// por alerta de maior prioridade RECÉM-chegado, nunca em re-render de
// estado inalterado. O debounce compara o conjunto de alertas ativos do
// passe anterior com o atual. Pertence à sessão, como o LifecycleStore.
type CueTracker struct {
	previous map[string]domain.AlertPriority
}

func NewCueTracker() *CueTracker {
	return &CueTracker{
		previous: make(map[string]domain.AlertPriority),
	}
}

// Update recebe os alertas do passe atual (já com o estado de
// reconhecimento aplicado) e retorna o cue a disparar, ou nil quando
// nenhum alerta chegou nem escalou desde o passe anterior. Um id é
// recém-chegado se não existia no passe anterior ou existia com
// prioridade mais branda; entre os recém-chegados, o cue é o mais
// grave (os alertas já vêm ordenados por prioridade e desvio).
func (t *CueTracker) Update(alerts []domain.Alert) *domain.SoundCue {
	current := make(map[string]domain.AlertPriority, len(alerts))

	var newcomer *domain.Alert
	for i, alert := range alerts {
		if alert.Acknowledged {
			continue
		}
		current[alert.ID] = alert.Priority

		previousPriority, seen := t.previous[alert.ID]
		if seen && previousPriority.Rank() <= alert.Priority.Rank() {
			continue
		}

		if newcomer == nil {
			newcomer = &alerts[i]
		}
	}

	t.previous = current

	if newcomer == nil {
		return nil
	}

	return &domain.SoundCue{
		Priority: newcomer.Priority,
		AlertID:  newcomer.ID,
	}
}
