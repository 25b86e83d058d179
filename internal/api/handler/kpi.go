package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/control-tower-api/infrastructure/repository"
	"github.com/vfg2006/control-tower-api/internal/domain"
	"github.com/vfg2006/control-tower-api/pkg/apiErrors"
	"github.com/vfg2006/control-tower-api/pkg/log"
	"github.com/vfg2006/control-tower-api/pkg/utils"
)

// KpiSnapshotRequest é o payload de ingestão de uma foto de KPIs.
// Qualquer subconjunto de campos pode vir preenchido; campos ausentes
// ficam nil no snapshot e as regras que dependem deles são puladas.
type KpiSnapshotRequest struct {
	NoShowRate      *float64   `json:"no_show_rate"`
	MargemLiquida   *float64   `json:"margem_liquida"`
	NPS             *float64   `json:"nps"`
	Faturamento     *float64   `json:"faturamento"`
	MetaFaturamento *float64   `json:"meta_faturamento"`
	ChurnRate       *float64   `json:"churn_rate"`
	FluxoCaixa      *float64   `json:"fluxo_caixa"`
	OccupancyRate   *float64   `json:"occupancy_rate"`
	CAC             *float64   `json:"cac"`
	LTV             *float64   `json:"ltv"`
	CollectedAt     *time.Time `json:"collected_at"`
}

// IngestKpiSnapshot recebe uma foto de KPIs de uma clínica, vinda do
// coletor externo ou de importação manual
func IngestKpiSnapshot(snapshotRepo repository.KpiSnapshotRepository, clinicRepo repository.ClinicRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		clinicID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if clinicID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da clínica não fornecido", nil)
			return
		}

		clinic, err := clinicRepo.GetClinicByID(clinicID)
		if err != nil {
			logger.WithField("clinic_id", clinicID).Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar clínica", nil)
			return
		}
		if clinic == nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Clínica não encontrada", map[string]any{
				"clinic_id": clinicID,
			})
			return
		}

		var req KpiSnapshotRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.WithError(err).Warn("kpi: payload de snapshot inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		id, err := utils.GenerateID()
		if err != nil {
			logger.WithError(err).Error("kpi: falha ao gerar ID do snapshot")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar identificador do snapshot", nil)
			return
		}

		collectedAt := time.Now()
		if req.CollectedAt != nil {
			collectedAt = *req.CollectedAt
		}

		snapshot := &domain.KpiSnapshot{
			ID:              id,
			ClinicID:        clinicID,
			NoShowRate:      req.NoShowRate,
			MargemLiquida:   req.MargemLiquida,
			NPS:             req.NPS,
			Faturamento:     req.Faturamento,
			MetaFaturamento: req.MetaFaturamento,
			ChurnRate:       req.ChurnRate,
			FluxoCaixa:      req.FluxoCaixa,
			OccupancyRate:   req.OccupancyRate,
			CAC:             req.CAC,
			LTV:             req.LTV,
			CollectedAt:     collectedAt,
		}

		if err := snapshotRepo.SaveSnapshot(snapshot); err != nil {
			logger.WithFields(log.Fields{
				"clinic_id":   clinicID,
				"snapshot_id": id,
			}).Error(err)

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao salvar snapshot de KPIs", nil)
			return
		}

		logger.WithFields(log.Fields{
			"clinic_id":   clinicID,
			"snapshot_id": id,
		}).Info("kpi: snapshot ingerido")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(snapshot); err != nil {
			logger.WithError(err).Error("kpi: falha ao codificar resposta")
		}
	})
}

// GetLatestKpiSnapshot retorna a foto de KPIs mais recente da clínica
func GetLatestKpiSnapshot(snapshotRepo repository.KpiSnapshotRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		clinicID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if clinicID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da clínica não fornecido", nil)
			return
		}

		snapshot, err := snapshotRepo.GetLatestByClinic(clinicID)
		if err != nil {
			logger.WithField("clinic_id", clinicID).Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar snapshot de KPIs", nil)
			return
		}
		if snapshot == nil {
			apiErrors.WriteError(w, apiErrors.ErrSnapshotNotFound, "Clínica ainda não possui snapshot de KPIs", map[string]any{
				"clinic_id": clinicID,
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(snapshot); err != nil {
			logger.WithError(err).Error("kpi: falha ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}
