package alerting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/control-tower-api/infrastructure/repository/mocks"
	"github.com/vfg2006/control-tower-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestService(ctrl *gomock.Controller) (*Service, *mocks.MockKpiSnapshotRepository, *mocks.MockAlertStateRepository) {
	snapshotRepo := mocks.NewMockKpiSnapshotRepository(ctrl)
	stateRepo := mocks.NewMockAlertStateRepository(ctrl)

	service := NewService(snapshotRepo, stateRepo).(*Service)
	return service, snapshotRepo, stateRepo
}

func TestService_EvaluateClinic(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name     string
		setup    func(snapshotRepo *mocks.MockKpiSnapshotRepository, stateRepo *mocks.MockAlertStateRepository)
		validate func(t *testing.T, evaluation *domain.AlertEvaluation, err error)
	}{
		{
			name: "Clínica sem snapshot responde avaliação vazia bem formada",
			setup: func(snapshotRepo *mocks.MockKpiSnapshotRepository, stateRepo *mocks.MockAlertStateRepository) {
				snapshotRepo.EXPECT().
					GetLatestByClinic("CLI001").
					Return(nil, nil)
			},
			validate: func(t *testing.T, evaluation *domain.AlertEvaluation, err error) {
				require.NoError(t, err)
				assert.Equal(t, "CLI001", evaluation.ClinicID)
				assert.Empty(t, evaluation.Alerts)
				assert.False(t, evaluation.Aggregate.WarRoom)
				assert.Nil(t, evaluation.SoundCue)
				assert.Nil(t, evaluation.CollectedAt)
			},
		},
		{
			name: "Clínica em crise entra em war room com cue do alerta mais grave",
			setup: func(snapshotRepo *mocks.MockKpiSnapshotRepository, stateRepo *mocks.MockAlertStateRepository) {
				snapshot := crisisSnapshot()
				snapshotRepo.EXPECT().
					GetLatestByClinic("CLI001").
					Return(&snapshot, nil)

				// Primeira avaliação hidrata o estado persistido
				stateRepo.EXPECT().
					ListByClinic("CLI001").
					Return(map[string]*time.Time{}, nil)
			},
			validate: func(t *testing.T, evaluation *domain.AlertEvaluation, err error) {
				require.NoError(t, err)
				assert.Equal(t, "snap-crisis", evaluation.SnapshotID)
				require.Len(t, evaluation.Alerts, 4)
				assert.True(t, evaluation.Aggregate.WarRoom)

				require.NotNil(t, evaluation.SoundCue)
				assert.Equal(t, "no_show_rate", evaluation.SoundCue.AlertID)
				assert.Equal(t, domain.PriorityP1, evaluation.SoundCue.Priority)
			},
		},
		{
			name: "Reconhecimentos persistidos continuam valendo após reinício",
			setup: func(snapshotRepo *mocks.MockKpiSnapshotRepository, stateRepo *mocks.MockAlertStateRepository) {
				snapshot := crisisSnapshot()
				snapshotRepo.EXPECT().
					GetLatestByClinic("CLI001").
					Return(&snapshot, nil)

				resolvedAt := time.Now().Add(-time.Hour)
				stateRepo.EXPECT().
					ListByClinic("CLI001").
					Return(map[string]*time.Time{"no_show_rate": &resolvedAt}, nil)
			},
			validate: func(t *testing.T, evaluation *domain.AlertEvaluation, err error) {
				require.NoError(t, err)
				assert.Equal(t, 1, evaluation.Aggregate.CountP1)
				assert.False(t, evaluation.Aggregate.WarRoom, "P1 resolvido não conta para o war room")

				require.Len(t, evaluation.Alerts, 4)
				assert.True(t, evaluation.Alerts[0].Acknowledged)
				assert.NotNil(t, evaluation.Alerts[0].ResolvedAt)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, snapshotRepo, stateRepo := newTestService(ctrl)
			tt.setup(snapshotRepo, stateRepo)

			evaluation, err := service.EvaluateClinic("CLI001")
			tt.validate(t, evaluation, err)
		})
	}
}

// O debounce do cue vale entre avaliações consecutivas da mesma clínica
func TestService_EvaluateClinic_CueNaoRepete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, snapshotRepo, stateRepo := newTestService(ctrl)

	snapshot := crisisSnapshot()
	snapshotRepo.EXPECT().
		GetLatestByClinic("CLI001").
		Return(&snapshot, nil).
		Times(2)

	stateRepo.EXPECT().
		ListByClinic("CLI001").
		Return(map[string]*time.Time{}, nil)

	first, err := service.EvaluateClinic("CLI001")
	require.NoError(t, err)
	assert.NotNil(t, first.SoundCue)

	second, err := service.EvaluateClinic("CLI001")
	require.NoError(t, err)
	assert.Nil(t, second.SoundCue, "re-render do mesmo estado não dispara cue")
}

// Quando a violação reconhecida deixa de ser emitida, o reconhecimento
// órfão sai também do repositório; sem isso uma reidratação futura
// faria a ocorrência nova da mesma violação nascer reconhecida
func TestService_EvaluateClinic_RemoveReconhecimentoOrfaoPersistido(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, snapshotRepo, stateRepo := newTestService(ctrl)

	// A clínica saiu da crise: o snapshot saudável não emite alerta algum,
	// mas há um reconhecimento persistido de no_show_rate de ontem
	snapshot := healthySnapshot()
	snapshotRepo.EXPECT().
		GetLatestByClinic("CLI001").
		Return(&snapshot, nil)

	resolvedAt := time.Now().Add(-24 * time.Hour)
	stateRepo.EXPECT().
		ListByClinic("CLI001").
		Return(map[string]*time.Time{"no_show_rate": &resolvedAt}, nil)

	stateRepo.EXPECT().
		Delete("CLI001", "no_show_rate").
		Return(nil)

	evaluation, err := service.EvaluateClinic("CLI001")
	require.NoError(t, err)
	assert.Empty(t, evaluation.Alerts)

	// Um processo novo hidrata do repositório já limpo: a recidiva da
	// mesma violação surge ativa, não reconhecida
	freshService, freshSnapshotRepo, freshStateRepo := newTestService(ctrl)

	crisis := crisisSnapshot()
	freshSnapshotRepo.EXPECT().
		GetLatestByClinic("CLI001").
		Return(&crisis, nil)

	freshStateRepo.EXPECT().
		ListByClinic("CLI001").
		Return(map[string]*time.Time{}, nil)

	relapse, err := freshService.EvaluateClinic("CLI001")
	require.NoError(t, err)
	require.NotEmpty(t, relapse.Alerts)
	assert.Equal(t, "no_show_rate", relapse.Alerts[0].ID)
	assert.False(t, relapse.Alerts[0].Acknowledged)
	assert.Nil(t, relapse.Alerts[0].ResolvedAt)
}

func TestService_Resolve(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, stateRepo := newTestService(ctrl)

	stateRepo.EXPECT().
		ListByClinic("CLI001").
		Return(map[string]*time.Time{}, nil)

	stateRepo.EXPECT().
		Save("CLI001", "no_show_rate", gomock.Not(gomock.Nil())).
		Return(nil)

	require.NoError(t, service.Resolve("CLI001", "no_show_rate"))

	// Segundo resolve é no-op: nada persiste de novo
	require.NoError(t, service.Resolve("CLI001", "no_show_rate"))
}

func TestService_Dismiss(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, stateRepo := newTestService(ctrl)

	stateRepo.EXPECT().
		ListByClinic("CLI001").
		Return(map[string]*time.Time{}, nil)

	stateRepo.EXPECT().
		Save("CLI001", "margem_liquida", gomock.Nil()).
		Return(nil)

	require.NoError(t, service.Dismiss("CLI001", "margem_liquida"))
}

func TestService_Rearm(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, stateRepo := newTestService(ctrl)

	resolvedAt := time.Now()
	stateRepo.EXPECT().
		ListByClinic("CLI001").
		Return(map[string]*time.Time{"no_show_rate": &resolvedAt}, nil)

	stateRepo.EXPECT().
		Delete("CLI001", "no_show_rate").
		Return(nil)

	require.NoError(t, service.Rearm("CLI001", "no_show_rate"))
}

// Estado de clínicas diferentes nunca se mistura
func TestService_EstadoIsoladoPorClinica(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, snapshotRepo, stateRepo := newTestService(ctrl)

	stateRepo.EXPECT().
		ListByClinic("CLI001").
		Return(map[string]*time.Time{}, nil)
	stateRepo.EXPECT().
		Save("CLI001", "no_show_rate", gomock.Any()).
		Return(nil)

	require.NoError(t, service.Resolve("CLI001", "no_show_rate"))

	// A outra clínica continua com o alerta ativo
	snapshot := crisisSnapshot()
	snapshot.ClinicID = "CLI002"
	snapshotRepo.EXPECT().
		GetLatestByClinic("CLI002").
		Return(&snapshot, nil)
	stateRepo.EXPECT().
		ListByClinic("CLI002").
		Return(map[string]*time.Time{}, nil)

	evaluation, err := service.EvaluateClinic("CLI002")
	require.NoError(t, err)
	assert.Equal(t, 2, evaluation.Aggregate.CountP1)
	assert.True(t, evaluation.Aggregate.WarRoom)
}
