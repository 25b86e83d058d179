package alerting

import (
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/control-tower-api/infrastructure/repository"
	"github.com/vfg2006/control-tower-api/internal/domain"
)

// Alerter é a interface consumida por handlers e pelo agendador de
// sincronização de KPIs
type Alerter interface {
	// EvaluateClinic classifica o snapshot mais recente da clínica e
	// aplica o estado de ciclo de vida persistido
	EvaluateClinic(clinicID string) (*domain.AlertEvaluation, error)

	// Summary retorna apenas o agregado de alertas ativos da clínica
	Summary(clinicID string) (domain.AggregateAlertState, error)

	Resolve(clinicID, alertID string) error
	Dismiss(clinicID, alertID string) error
	Rearm(clinicID, alertID string) error
}

// Service mantém um LifecycleStore e um CueTracker por clínica,
// hidratados do repositório de estado na primeira avaliação. A
// classificação em si é pura; todo estado mutável fica confinado aqui.
type Service struct {
	snapshotRepo repository.KpiSnapshotRepository
	stateRepo    repository.AlertStateRepository

	mu       sync.Mutex
	stores   map[string]*LifecycleStore
	cues     map[string]*CueTracker
	hydrated map[string]bool
}

func NewService(
	snapshotRepo repository.KpiSnapshotRepository,
	stateRepo repository.AlertStateRepository,
) Alerter {
	return &Service{
		snapshotRepo: snapshotRepo,
		stateRepo:    stateRepo,
		stores:       make(map[string]*LifecycleStore),
		cues:         make(map[string]*CueTracker),
		hydrated:     make(map[string]bool),
	}
}

func (s *Service) EvaluateClinic(clinicID string) (*domain.AlertEvaluation, error) {
	snapshot, err := s.snapshotRepo.GetLatestByClinic(clinicID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar snapshot de KPIs da clínica")
	}

	evaluation := &domain.AlertEvaluation{
		ClinicID: clinicID,
		Alerts:   []domain.Alert{},
	}

	// Sem snapshot não há o que classificar: resposta vazia bem formada,
	// nunca erro
	if snapshot == nil {
		return evaluation, nil
	}

	store, err := s.storeFor(clinicID)
	if err != nil {
		return nil, err
	}

	alerts := ClassifyAlerts(*snapshot, time.Now())

	// Entradas de reconhecimento cuja violação deixou de ser emitida
	// são descartadas antes da projeção, da memória e do repositório —
	// uma linha persistida órfã nasceria reconhecida na próxima
	// reidratação se a violação voltasse
	for _, orphanID := range store.Prune(alerts) {
		if err := s.stateRepo.Delete(clinicID, orphanID); err != nil {
			logrus.WithFields(logrus.Fields{
				"clinic_id": clinicID,
				"alert_id":  orphanID,
			}).WithError(err).Warn("Falha ao remover reconhecimento órfão persistido")
		}
	}
	alerts = store.Apply(alerts)

	evaluation.SnapshotID = snapshot.ID
	collectedAt := snapshot.CollectedAt
	evaluation.CollectedAt = &collectedAt
	evaluation.Alerts = alerts
	evaluation.Aggregate = Aggregate(alerts)
	evaluation.SoundCue = s.cueFor(clinicID).Update(alerts)

	if evaluation.Aggregate.WarRoom {
		logrus.WithFields(logrus.Fields{
			"clinic_id": clinicID,
			"count_p1":  evaluation.Aggregate.CountP1,
		}).Warn("Clínica em estado de war room")
	}

	return evaluation, nil
}

func (s *Service) Summary(clinicID string) (domain.AggregateAlertState, error) {
	evaluation, err := s.EvaluateClinic(clinicID)
	if err != nil {
		return domain.AggregateAlertState{}, err
	}
	return evaluation.Aggregate, nil
}

func (s *Service) Resolve(clinicID, alertID string) error {
	store, err := s.storeFor(clinicID)
	if err != nil {
		return err
	}

	now := time.Now()
	if !store.Resolve(alertID, now) {
		return nil
	}

	if err := s.stateRepo.Save(clinicID, alertID, &now); err != nil {
		return errors.Wrap(err, "erro ao persistir resolução do alerta")
	}

	return nil
}

func (s *Service) Dismiss(clinicID, alertID string) error {
	store, err := s.storeFor(clinicID)
	if err != nil {
		return err
	}

	if !store.Dismiss(alertID) {
		return nil
	}

	if err := s.stateRepo.Save(clinicID, alertID, nil); err != nil {
		return errors.Wrap(err, "erro ao persistir descarte do alerta")
	}

	return nil
}

func (s *Service) Rearm(clinicID, alertID string) error {
	store, err := s.storeFor(clinicID)
	if err != nil {
		return err
	}

	store.Rearm(alertID)

	if err := s.stateRepo.Delete(clinicID, alertID); err != nil {
		return errors.Wrap(err, "erro ao remover reconhecimento persistido do alerta")
	}

	return nil
}

// storeFor retorna o LifecycleStore da clínica, hidratando-o do
// repositório de estado na primeira vez
func (s *Service) storeFor(clinicID string) (*LifecycleStore, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	store, ok := s.stores[clinicID]
	if !ok {
		store = NewLifecycleStore()
		s.stores[clinicID] = store
	}

	if !s.hydrated[clinicID] {
		persisted, err := s.stateRepo.ListByClinic(clinicID)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao carregar estado de reconhecimento de alertas")
		}
		store.Restore(persisted)
		s.hydrated[clinicID] = true
	}

	return store, nil
}

func (s *Service) cueFor(clinicID string) *CueTracker {
	s.mu.Lock()
	defer s.mu.Unlock()

	cue, ok := s.cues[clinicID]
	if !ok {
		cue = NewCueTracker()
		s.cues[clinicID] = cue
	}

	return cue
}
