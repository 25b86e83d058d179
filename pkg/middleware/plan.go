package middleware

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/control-tower-api/internal/domain"
	"github.com/vfg2006/control-tower-api/internal/usecases/planning"
	"github.com/vfg2006/control-tower-api/pkg/apiErrors"
)

// RequirePlanSection cria um middleware de guarda de rota por seção do
// dashboard: o rótulo de plano do token é normalizado e a rota só segue
// se o plano desbloqueia a seção. A normalização em si é fail-open
// (plano desconhecido vira essencial); a guarda é fail-closed para a
// seção pedida.
func RequirePlanSection(resolver planning.PlanResolver, section domain.SectionID) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userClaims, ok := r.Context().Value(ContextKeyUser).(*domain.Claims)
			if !ok {
				logrus.Warning("Tentativa de acesso a seção sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			if !resolver.CanAccessSection(userClaims.UserPlanLabel, section) {
				logrus.WithFields(logrus.Fields{
					"user_id": userClaims.UserID,
					"section": section,
					"plan":    userClaims.UserPlanLabel,
				}).Warning("Acesso negado por plano à seção")

				apiErrors.WriteError(w, apiErrors.ErrPlanSectionForbidden, "Seu plano não desbloqueia esta seção", map[string]any{
					"section":  section,
					"min_plan": resolver.MinPlanForSection(section),
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
