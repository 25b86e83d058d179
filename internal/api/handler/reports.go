package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/control-tower-api/internal/usecases/reporting"
	"github.com/vfg2006/control-tower-api/pkg/apiErrors"
)

// GetExecutiveReportPlan retorna o plano de montagem do relatório
// executivo da clínica, derivado do rulebook do plano dela
func GetExecutiveReportPlan(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clinicID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if clinicID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da clínica não fornecido", nil)
			return
		}

		plan, err := service.BuildExecutiveReportPlan(clinicID)
		if err != nil {
			logrus.WithField("clinic_id", clinicID).Error(err)

			if strings.Contains(err.Error(), "não encontrada") {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Clínica não encontrada", map[string]any{
					"clinic_id": clinicID,
				})
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao montar plano do relatório executivo", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(plan); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}
