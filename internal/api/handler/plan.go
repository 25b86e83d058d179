package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/control-tower-api/internal/domain"
	"github.com/vfg2006/control-tower-api/internal/usecases/planning"
	"github.com/vfg2006/control-tower-api/pkg/apiErrors"
	"github.com/vfg2006/control-tower-api/pkg/middleware"
)

// SectionAccessResponse é a decisão de gating para uma seção, calculada
// a partir do plano presente no token do usuário
type SectionAccessResponse struct {
	Section SectionInfo     `json:"section"`
	Plan    domain.PlanTier `json:"plan"`
	Allowed bool            `json:"allowed"`
}

type SectionInfo struct {
	ID      domain.SectionID `json:"id"`
	MinPlan domain.PlanTier  `json:"min_plan"`
}

// ListPlanRulebooks retorna os três rulebooks compostos, do essencial ao
// enterprise
func ListPlanRulebooks(service planning.PlanResolver) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rulebooks := service.ListRulebooks()

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(rulebooks); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// GetPlanRulebook retorna o rulebook composto de um plano. O tier da URL
// é um rótulo livre: é normalizado antes da composição, então qualquer
// valor desconhecido resolve para o rulebook do essencial.
func GetPlanRulebook(service planning.PlanResolver) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tier := httprouter.ParamsFromContext(r.Context()).ByName("tier")

		rulebook := service.GetPlanBusinessRulebook(tier)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(rulebook); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// GetPlanSections retorna as seções desbloqueadas por um plano, na ordem
// canônica do dashboard
func GetPlanSections(service planning.PlanResolver) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tier := httprouter.ParamsFromContext(r.Context()).ByName("tier")

		sections := service.SectionsForPlan(tier)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]any{
			"plan":     service.NormalizePlanTier(tier),
			"sections": sections,
		}); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// GetMinPlanTable retorna a tabela derivada seção -> plano mínimo,
// consumida pelo front para montar badges de upgrade
func GetMinPlanTable(service planning.PlanResolver) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(service.MinPlanTable()); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// CheckMySectionAccess responde se o plano do usuário logado desbloqueia
// a seção pedida. Seções fora do catálogo do dashboard retornam 404; a
// decisão em si nunca erra para aberto.
func CheckMySectionAccess(service planning.PlanResolver) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		section := domain.SectionID(httprouter.ParamsFromContext(r.Context()).ByName("section"))
		if !knownSection(section) {
			apiErrors.WriteError(w, apiErrors.ErrUnknownSection, "Seção desconhecida", map[string]any{
				"section": section,
			})
			return
		}

		response := SectionAccessResponse{
			Section: SectionInfo{
				ID:      section,
				MinPlan: service.MinPlanForSection(section),
			},
			Plan:    service.NormalizePlanTier(userClaims.UserPlanLabel),
			Allowed: service.CanAccessSection(userClaims.UserPlanLabel, section),
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

func knownSection(section domain.SectionID) bool {
	for _, known := range domain.AllSections() {
		if known == section {
			return true
		}
	}
	return false
}
