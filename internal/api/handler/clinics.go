package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/control-tower-api/internal/domain"
	"github.com/vfg2006/control-tower-api/internal/usecases/clinics"
	"github.com/vfg2006/control-tower-api/pkg/apiErrors"
)

func ClinicList(service clinics.ClinicService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filterStatus := r.URL.Query().Get("status")

		availableStatus := make([]domain.ClinicStatus, 0)
		if filterStatus != "" {
			for _, status := range strings.Split(filterStatus, ",") {
				availableStatus = append(availableStatus, domain.ClinicStatus(status))
			}
		}

		clinicList, err := service.ListClinics(availableStatus)
		if err != nil {
			logrus.Error("Erro ao listar clínicas:", err)

			var clinicErr *clinics.ClinicError
			if errors.As(err, &clinicErr) {
				apiErrors.WriteError(w, clinicErr.Code, clinicErr.Error(), nil)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao listar clínicas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(clinicList); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func GetClinic(service clinics.ClinicService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clinicID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if clinicID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da clínica não fornecido", nil)
			return
		}

		clinic, err := service.GetClinic(clinicID)
		if err != nil {
			logrus.Error("Erro ao buscar clínica:", err)

			if errors.Is(err, clinics.ErrClinicNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Clínica não encontrada", map[string]any{
					"clinic_id": clinicID,
				})
				return
			}

			var clinicErr *clinics.ClinicError
			if errors.As(err, &clinicErr) {
				apiErrors.WriteError(w, clinicErr.Code, clinicErr.Error(), nil)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao buscar clínica", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(clinic); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// UpdateClinic atualiza cadastro e rótulo de plano de uma clínica. A
// troca de rótulo de plano passa a valer imediatamente no gating, pois o
// plano canônico nunca é persistido, só derivado.
func UpdateClinic(service clinics.ClinicService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clinicID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if clinicID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da clínica não fornecido", nil)
			return
		}

		var req domain.UpdateClinicRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}
		req.ID = clinicID

		if err := service.UpdateClinic(&req); err != nil {
			logrus.Error("Erro ao atualizar clínica:", err)

			if errors.Is(err, clinics.ErrClinicNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Clínica não encontrada", map[string]any{
					"clinic_id": clinicID,
				})
				return
			}

			var clinicErr *clinics.ClinicError
			if errors.As(err, &clinicErr) {
				apiErrors.WriteError(w, clinicErr.Code, clinicErr.Error(), nil)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao atualizar clínica", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]any{
			"message":   "Clínica atualizada com sucesso",
			"clinic_id": clinicID,
		}); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}
