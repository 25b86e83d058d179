package clinics

import (
	"github.com/vfg2006/control-tower-api/infrastructure/repository"
	"github.com/vfg2006/control-tower-api/internal/domain"
	"github.com/vfg2006/control-tower-api/internal/usecases/planning"
	"github.com/vfg2006/control-tower-api/pkg/apiErrors"
)

// ClinicResponse é a projeção de clínica devolvida pela API. Tier é o
// plano já normalizado a partir do rótulo comercial do cadastro.
type ClinicResponse struct {
	ID        string              `json:"id"`
	Name      string              `json:"name"`
	CNPJ      *string             `json:"cnpj"`
	PlanLabel string              `json:"plan_label"`
	Tier      domain.PlanTier     `json:"tier"`
	Status    domain.ClinicStatus `json:"status"`
}

type ClinicService interface {
	ListClinics(availableStatus []domain.ClinicStatus) ([]*ClinicResponse, error)
	GetClinic(clinicID string) (*ClinicResponse, error)
	UpdateClinic(request *domain.UpdateClinicRequest) error
}

type Service struct {
	clinicRepository repository.ClinicRepository
	plans            planning.PlanResolver
}

func NewService(clinicRepository repository.ClinicRepository, plans planning.PlanResolver) ClinicService {
	return &Service{
		clinicRepository: clinicRepository,
		plans:            plans,
	}
}

func (s *Service) ListClinics(availableStatus []domain.ClinicStatus) ([]*ClinicResponse, error) {
	clinicList, err := s.clinicRepository.ListClinics(availableStatus)
	if err != nil {
		return nil, NewClinicError(ErrFetchClinics, apiErrors.ErrDatabaseOperation, "Falha ao listar clínicas no banco de dados")
	}

	response := make([]*ClinicResponse, 0, len(clinicList))
	for _, clinic := range clinicList {
		response = append(response, s.toResponse(clinic))
	}

	return response, nil
}

func (s *Service) GetClinic(clinicID string) (*ClinicResponse, error) {
	clinic, err := s.clinicRepository.GetClinicByID(clinicID)
	if err != nil {
		return nil, NewClinicError(ErrFetchClinics, apiErrors.ErrDatabaseOperation, "Falha ao buscar clínica no banco de dados")
	}
	if clinic == nil {
		return nil, ErrClinicNotFound
	}

	return s.toResponse(clinic), nil
}

func (s *Service) UpdateClinic(request *domain.UpdateClinicRequest) error {
	clinic, err := s.clinicRepository.GetClinicByID(request.ID)
	if err != nil {
		return NewClinicError(ErrFetchClinics, apiErrors.ErrDatabaseOperation, "Falha ao buscar clínica no banco de dados")
	}
	if clinic == nil {
		return ErrClinicNotFound
	}

	if err := s.clinicRepository.UpdateClinic(request); err != nil {
		return NewClinicError(ErrUpdateClinic, apiErrors.ErrDatabaseOperation, "Falha ao atualizar clínica no banco de dados")
	}

	return nil
}

func (s *Service) toResponse(clinic *domain.Clinic) *ClinicResponse {
	return &ClinicResponse{
		ID:        clinic.ID,
		Name:      clinic.Name,
		CNPJ:      clinic.CNPJ,
		PlanLabel: clinic.PlanLabel,
		Tier:      s.plans.NormalizePlanTier(clinic.PlanLabel),
		Status:    clinic.Status,
	}
}
