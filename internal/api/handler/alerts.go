package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/control-tower-api/internal/usecases/alerting"
	"github.com/vfg2006/control-tower-api/pkg/apiErrors"
	"github.com/vfg2006/control-tower-api/pkg/log"
)

// GetClinicAlerts classifica o snapshot mais recente da clínica e
// retorna os alertas ordenados, o agregado e o cue sonoro (quando houver
// alerta inédito). Clínica sem snapshot responde avaliação vazia, não
// erro.
func GetClinicAlerts(service alerting.Alerter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		clinicID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if clinicID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da clínica não fornecido", nil)
			return
		}

		evaluation, err := service.EvaluateClinic(clinicID)
		if err != nil {
			logger.WithFields(log.Fields{
				"clinic_id": clinicID,
				"error":     err.Error(),
			}).Error("alerts: falha ao avaliar alertas da clínica")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao avaliar alertas da clínica", nil)
			return
		}

		logger.WithFields(log.Fields{
			"clinic_id": clinicID,
			"alerts":    len(evaluation.Alerts),
			"war_room":  evaluation.Aggregate.WarRoom,
		}).Info("alerts: avaliação concluída")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(evaluation); err != nil {
			logger.WithError(err).Error("alerts: falha ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// GetAlertSummary retorna apenas os contadores por prioridade e o flag
// de war room da clínica
func GetAlertSummary(service alerting.Alerter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clinicID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if clinicID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da clínica não fornecido", nil)
			return
		}

		summary, err := service.Summary(clinicID)
		if err != nil {
			logrus.WithField("clinic_id", clinicID).Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao calcular resumo de alertas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summary); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// ResolveAlert marca o alerta como resolvido pela equipe. Resolução
// prevalece sobre descarte e sobrevive a reinício.
func ResolveAlert(service alerting.Alerter) http.Handler {
	return alertLifecycleHandler("resolvido", service.Resolve)
}

// DismissAlert silencia o alerta sem marcá-lo como tratado
func DismissAlert(service alerting.Alerter) http.Handler {
	return alertLifecycleHandler("descartado", service.Dismiss)
}

// RearmAlert remove o reconhecimento do alerta, fazendo a violação
// voltar a contar como ativa na próxima avaliação
func RearmAlert(service alerting.Alerter) http.Handler {
	return alertLifecycleHandler("rearmado", service.Rearm)
}

func alertLifecycleHandler(action string, apply func(clinicID, alertID string) error) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())
		clinicID := params.ByName("id")
		alertID := params.ByName("alert_id")

		if clinicID == "" || alertID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da clínica e ID do alerta são obrigatórios", nil)
			return
		}

		if !alerting.KnownAlertID(alertID) {
			apiErrors.WriteError(w, apiErrors.ErrAlertNotFound, "Alerta desconhecido", map[string]any{
				"alert_id": alertID,
			})
			return
		}

		if err := apply(clinicID, alertID); err != nil {
			logrus.WithFields(logrus.Fields{
				"clinic_id": clinicID,
				"alert_id":  alertID,
				"action":    action,
			}).Error(err)

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao atualizar estado do alerta", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]any{
			"message":   "Alerta " + action + " com sucesso",
			"clinic_id": clinicID,
			"alert_id":  alertID,
		}); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}
