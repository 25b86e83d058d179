package scheduler

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/control-tower-api/infrastructure/repository/mocks"
	"github.com/vfg2006/control-tower-api/internal/domain"
	"github.com/vfg2006/control-tower-api/internal/usecases/alerting"
	"go.uber.org/mock/gomock"
)

func TestKpiSyncService_processActiveClinics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClinicRepo := mocks.NewMockClinicRepository(ctrl)
	mockSnapshotRepo := mocks.NewMockKpiSnapshotRepository(ctrl)
	mockStateRepo := mocks.NewMockAlertStateRepository(ctrl)

	service := &KpiSyncService{
		config:       KpiSyncConfig{RequestDelaySeconds: 0},
		clinicRepo:   mockClinicRepo,
		alertService: alerting.NewService(mockSnapshotRepo, mockStateRepo),
	}

	clinics := []*domain.Clinic{
		{ID: "CLI001", Name: "Clínica Aurora", PlanLabel: "pro", Status: domain.ClinicStatusActive},
		{ID: "CLI002", Name: "Clínica Horizonte", PlanLabel: "essencial", Status: domain.ClinicStatusActive},
	}

	mockClinicRepo.EXPECT().
		ListClinics([]domain.ClinicStatus{domain.ClinicStatusActive}).
		Return(clinics, nil)

	// CLI001 em crise: dois P1 simultâneos
	crisis := &domain.KpiSnapshot{
		ID:          "snap-1",
		ClinicID:    "CLI001",
		NoShowRate:  domain.Float64Ptr(18.5),
		NPS:         domain.Float64Ptr(7.2),
		CollectedAt: time.Now(),
	}
	mockSnapshotRepo.EXPECT().GetLatestByClinic("CLI001").Return(crisis, nil)
	mockStateRepo.EXPECT().ListByClinic("CLI001").Return(map[string]*time.Time{}, nil)

	// CLI002 saudável
	healthy := &domain.KpiSnapshot{
		ID:          "snap-2",
		ClinicID:    "CLI002",
		NoShowRate:  domain.Float64Ptr(4),
		CollectedAt: time.Now(),
	}
	mockSnapshotRepo.EXPECT().GetLatestByClinic("CLI002").Return(healthy, nil)
	mockStateRepo.EXPECT().ListByClinic("CLI002").Return(map[string]*time.Time{}, nil)

	processed, warRooms, err := service.processActiveClinics()

	require.NoError(t, err)
	assert.Equal(t, 2, processed)
	assert.Equal(t, 1, warRooms)
}

// Falha em uma clínica não interrompe o passe das demais
func TestKpiSyncService_processActiveClinics_ErroParcial(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClinicRepo := mocks.NewMockClinicRepository(ctrl)
	mockSnapshotRepo := mocks.NewMockKpiSnapshotRepository(ctrl)
	mockStateRepo := mocks.NewMockAlertStateRepository(ctrl)

	service := &KpiSyncService{
		config:       KpiSyncConfig{RequestDelaySeconds: 0},
		clinicRepo:   mockClinicRepo,
		alertService: alerting.NewService(mockSnapshotRepo, mockStateRepo),
	}

	clinics := []*domain.Clinic{
		{ID: "CLI001", Status: domain.ClinicStatusActive},
		{ID: "CLI002", Status: domain.ClinicStatusActive},
	}

	mockClinicRepo.EXPECT().
		ListClinics([]domain.ClinicStatus{domain.ClinicStatusActive}).
		Return(clinics, nil)

	mockSnapshotRepo.EXPECT().
		GetLatestByClinic("CLI001").
		Return(nil, errors.New("timeout no banco"))

	mockSnapshotRepo.EXPECT().
		GetLatestByClinic("CLI002").
		Return(nil, nil)

	processed, warRooms, err := service.processActiveClinics()

	require.NoError(t, err)
	assert.Equal(t, 1, processed)
	assert.Equal(t, 0, warRooms)
}

func TestKpiSyncService_processActiveClinics_ErroAoListar(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClinicRepo := mocks.NewMockClinicRepository(ctrl)

	service := &KpiSyncService{
		config:     KpiSyncConfig{},
		clinicRepo: mockClinicRepo,
	}

	mockClinicRepo.EXPECT().
		ListClinics(gomock.Any()).
		Return(nil, errors.New("conexão recusada"))

	processed, warRooms, err := service.processActiveClinics()

	assert.Error(t, err)
	assert.Equal(t, 0, processed)
	assert.Equal(t, 0, warRooms)
}

func TestKpiSyncService_GetStatus(t *testing.T) {
	service := &KpiSyncService{
		config: KpiSyncConfig{
			CronSchedule: "*/30 * * * *",
			SyncEnabled:  true,
		},
	}

	status := service.GetStatus()

	assert.Equal(t, false, status["running"])
	assert.Equal(t, "*/30 * * * *", status["cron_schedule"])
	assert.Equal(t, true, status["enabled"])
}
