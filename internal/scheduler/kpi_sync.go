// Package scheduler contém os serviços de agendamento para reclassificação de alertas
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/control-tower-api/infrastructure/repository"
	"github.com/vfg2006/control-tower-api/internal/config"
	"github.com/vfg2006/control-tower-api/internal/domain"
	"github.com/vfg2006/control-tower-api/internal/usecases/alerting"
)

// KpiSyncConfig representa a configuração do agendador de reclassificação
type KpiSyncConfig struct {
	CronSchedule        string
	RequestDelaySeconds int
	SyncEnabled         bool
}

// KpiSyncService percorre as clínicas ativas em um cron e reclassifica
// os alertas sobre o snapshot mais recente de cada uma. É o "refresh
// agendado" dono do passe de classificação; a classificação em si é
// computação pura do pacote de alerting.
type KpiSyncService struct {
	scheduler           *gocron.Scheduler
	config              KpiSyncConfig
	clinicRepo          repository.ClinicRepository
	alertService        alerting.Alerter
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewKpiSyncService(
	clinicRepo repository.ClinicRepository,
	alertService alerting.Alerter,
	cfg *config.Config,
) *KpiSyncService {
	syncConfig := KpiSyncConfig{
		CronSchedule:        cfg.KpiSync.CronSchedule,
		RequestDelaySeconds: cfg.KpiSync.RequestDelaySeconds,
		SyncEnabled:         cfg.KpiSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de reclassificação de KPIs carregada")

	return &KpiSyncService{
		scheduler:    scheduler,
		config:       syncConfig,
		clinicRepo:   clinicRepo,
		alertService: alertService,
		syncRunning:  false,
	}
}

// Start inicia o agendador
func (s *KpiSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Reclassificação agendada de alertas de KPI desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de reclassificação de alertas de KPI")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllClinics()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar reclassificação de alertas de KPI: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de reclassificação de alertas de KPI")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync inicia manualmente um passe de reclassificação
func (s *KpiSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Reclassificação de alertas já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando reclassificação manual de alertas de KPI")
	go s.syncAllClinics()
}

// GetStatus retorna o estado atual do agendador para o endpoint de cron
func (s *KpiSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"enabled":                s.config.SyncEnabled,
		"cron_schedule":          s.config.CronSchedule,
		"running":                s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}

func (s *KpiSyncService) syncAllClinics() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Reclassificação de alertas já está em execução")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando passe de reclassificação de alertas de KPI")

	processed, warRooms, err := s.processActiveClinics()
	if err != nil {
		logrus.WithError(err).Error("Erro no passe de reclassificação de alertas de KPI")
		return
	}

	logrus.WithFields(logrus.Fields{
		"clinics_processed": processed,
		"clinics_war_room":  warRooms,
	}).Info("Passe de reclassificação de alertas de KPI concluído")
}

// processActiveClinics reclassifica cada clínica ativa e retorna quantas
// foram processadas e quantas terminaram em estado de war room
func (s *KpiSyncService) processActiveClinics() (int, int, error) {
	clinics, err := s.clinicRepo.ListClinics([]domain.ClinicStatus{domain.ClinicStatusActive})
	if err != nil {
		return 0, 0, fmt.Errorf("erro ao listar clínicas ativas: %w", err)
	}

	processed := 0
	warRooms := 0

	for i, clinic := range clinics {
		if i > 0 && s.config.RequestDelaySeconds > 0 {
			time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
		}

		evaluation, err := s.alertService.EvaluateClinic(clinic.ID)
		if err != nil {
			logrus.WithError(err).WithField("clinic_id", clinic.ID).Error("Erro ao reclassificar alertas da clínica")
			continue
		}

		processed++
		if evaluation.Aggregate.WarRoom {
			warRooms++
		}
	}

	return processed, warRooms, nil
}
