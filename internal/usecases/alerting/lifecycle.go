package alerting

import (
	"sync"
	"time"

	"github.com/vfg2006/control-tower-api/internal/domain"
)

// ackEntry é o estado terminal de exibição de um alerta reconhecido.
// ResolvedAt preenchido distingue "resolve" (terminal auditável) de
// "dismiss" (terminal silencioso).
type ackEntry struct {
	ResolvedAt *time.Time
}

// LifecycleStore guarda o estado de reconhecimento por identidade de
// alerta entre passes de reclassificação. É a única entidade mutável do
// núcleo: pertence à sessão consumidora e é sempre injetado
// explicitamente, nunca um singleton de módulo, para que sessões e
// testes não vazem estado entre si.
//
// Máquina de estados por id: Ativo → Reconhecido (via resolve ou
// dismiss). Transições são compare-and-set sob mutex: se resolve e
// dismiss chegam quase simultâneos para o mesmo id, resolve vence por
// ser o estado terminal mais forte.
type LifecycleStore struct {
	mu      sync.Mutex
	entries map[string]ackEntry
}

func NewLifecycleStore() *LifecycleStore {
	return &LifecycleStore{
		entries: make(map[string]ackEntry),
	}
}

// Resolve reconhece o alerta registrando o instante de resolução.
// Sobrepõe um dismiss anterior; um resolve anterior é preservado.
// Retorna false se o id já estava resolvido.
func (s *LifecycleStore) Resolve(alertID string, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, exists := s.entries[alertID]
	if exists && entry.ResolvedAt != nil {
		return false
	}

	s.entries[alertID] = ackEntry{ResolvedAt: &now}
	return true
}

// Dismiss reconhece o alerta sem marca de resolução. Não rebaixa um
// resolve já registrado (resolve vence). Retorna false se o id já
// estava reconhecido.
func (s *LifecycleStore) Dismiss(alertID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entries[alertID]; exists {
		return false
	}

	s.entries[alertID] = ackEntry{}
	return true
}

// Rearm remove o reconhecimento do id, permitindo que a mesma violação
// volte a aparecer como ativa no próximo passe
func (s *LifecycleStore) Rearm(alertID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, alertID)
}

// Apply projeta o estado persistido de reconhecimento sobre os alertas
// recém-classificados: um id reconhecido permanece reconhecido enquanto
// continuar reaparecendo
func (s *LifecycleStore) Apply(alerts []domain.Alert) []domain.Alert {
	s.mu.Lock()
	defer s.mu.Unlock()

	applied := make([]domain.Alert, len(alerts))
	for i, alert := range alerts {
		if entry, ok := s.entries[alert.ID]; ok {
			alert.Acknowledged = true
			alert.ResolvedAt = entry.ResolvedAt
		}
		applied[i] = alert
	}

	return applied
}

// Prune descarta entradas órfãs: ids reconhecidos cuja violação deixou
// de ser emitida. Seguro porque ids nunca são reutilizados por outra
// regra, então a entrada jamais ressuscitaria um alerta diferente.
// Retorna os ids descartados para que o chamador remova também o
// registro persistido; sem isso uma reidratação futura ressuscitaria o
// reconhecimento sobre uma ocorrência nova da mesma violação.
func (s *LifecycleStore) Prune(current []domain.Alert) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	active := make(map[string]struct{}, len(current))
	for _, alert := range current {
		active[alert.ID] = struct{}{}
	}

	var orphans []string
	for alertID := range s.entries {
		if _, stillEmitted := active[alertID]; !stillEmitted {
			delete(s.entries, alertID)
			orphans = append(orphans, alertID)
		}
	}

	return orphans
}

// Snapshot exporta o estado de reconhecimento para o colaborador de
// persistência
func (s *LifecycleStore) Snapshot() map[string]*time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make(map[string]*time.Time, len(s.entries))
	for alertID, entry := range s.entries {
		snapshot[alertID] = entry.ResolvedAt
	}

	return snapshot
}

// Restore recarrega o estado de reconhecimento persistido
func (s *LifecycleStore) Restore(entries map[string]*time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = make(map[string]ackEntry, len(entries))
	for alertID, resolvedAt := range entries {
		s.entries[alertID] = ackEntry{ResolvedAt: resolvedAt}
	}
}
