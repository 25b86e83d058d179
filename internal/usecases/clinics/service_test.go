package clinics

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/control-tower-api/infrastructure/repository/mocks"
	"github.com/vfg2006/control-tower-api/internal/domain"
	"github.com/vfg2006/control-tower-api/internal/usecases/planning"
	"go.uber.org/mock/gomock"
)

func TestListClinics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clinicRepo := mocks.NewMockClinicRepository(ctrl)
	service := NewService(clinicRepo, planning.NewService())

	clinicRepo.EXPECT().
		ListClinics([]domain.ClinicStatus{domain.ClinicStatusActive}).
		Return([]*domain.Clinic{
			{ID: "CLI001", Name: "Clínica Aurora", PlanLabel: "Profissional", Status: domain.ClinicStatusActive},
			{ID: "CLI002", Name: "Rede Vitalis", PlanLabel: "entreprise", Status: domain.ClinicStatusActive},
		}, nil)

	response, err := service.ListClinics([]domain.ClinicStatus{domain.ClinicStatusActive})

	require.NoError(t, err)
	require.Len(t, response, 2)

	// O rótulo comercial cru é preservado, o tier é derivado
	assert.Equal(t, "Profissional", response[0].PlanLabel)
	assert.Equal(t, domain.PlanPro, response[0].Tier)
	assert.Equal(t, domain.PlanEnterprise, response[1].Tier)
}

func TestGetClinic_NaoEncontrada(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clinicRepo := mocks.NewMockClinicRepository(ctrl)
	service := NewService(clinicRepo, planning.NewService())

	clinicRepo.EXPECT().
		GetClinicByID("CLI999").
		Return(nil, nil)

	clinic, err := service.GetClinic("CLI999")

	assert.Nil(t, clinic)
	assert.ErrorIs(t, err, ErrClinicNotFound)
}

func TestUpdateClinic(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clinicRepo := mocks.NewMockClinicRepository(ctrl)
	service := NewService(clinicRepo, planning.NewService())

	newLabel := "enterprise"
	request := &domain.UpdateClinicRequest{ID: "CLI001", PlanLabel: &newLabel}

	clinicRepo.EXPECT().
		GetClinicByID("CLI001").
		Return(&domain.Clinic{ID: "CLI001", PlanLabel: "pro"}, nil)

	clinicRepo.EXPECT().
		UpdateClinic(request).
		Return(nil)

	require.NoError(t, service.UpdateClinic(request))
}

func TestUpdateClinic_ErroDeBanco(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clinicRepo := mocks.NewMockClinicRepository(ctrl)
	service := NewService(clinicRepo, planning.NewService())

	clinicRepo.EXPECT().
		GetClinicByID("CLI001").
		Return(nil, errors.New("conexão recusada"))

	err := service.UpdateClinic(&domain.UpdateClinicRequest{ID: "CLI001"})

	var clinicErr *ClinicError
	require.ErrorAs(t, err, &clinicErr)
	assert.ErrorIs(t, err, ErrFetchClinics)
}
