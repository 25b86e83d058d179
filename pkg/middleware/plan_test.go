package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/control-tower-api/internal/domain"
	"github.com/vfg2006/control-tower-api/internal/usecases/planning"
)

func TestRequirePlanSection(t *testing.T) {
	resolver := planning.NewService()

	tests := []struct {
		name           string
		planLabel      string
		section        domain.SectionID
		withClaims     bool
		expectedStatus int
		expectNext     bool
	}{
		{
			name:           "Plano pro acessa seção de equipe",
			planLabel:      "pro",
			section:        domain.SectionEquipe,
			withClaims:     true,
			expectedStatus: http.StatusOK,
			expectNext:     true,
		},
		{
			name:           "Plano essencial é barrado na seção de equipe",
			planLabel:      "essencial",
			section:        domain.SectionEquipe,
			withClaims:     true,
			expectedStatus: http.StatusForbidden,
			expectNext:     false,
		},
		{
			name:           "Rótulo desconhecido degrada para essencial e é barrado em seção pro",
			planLabel:      "plano-fantasma",
			section:        domain.SectionRealtime,
			withClaims:     true,
			expectedStatus: http.StatusForbidden,
			expectNext:     false,
		},
		{
			name:           "Rótulo desconhecido ainda acessa seções do essencial",
			planLabel:      "plano-fantasma",
			section:        domain.SectionDashboard,
			withClaims:     true,
			expectedStatus: http.StatusOK,
			expectNext:     true,
		},
		{
			name:           "Requisição sem claims é rejeitada",
			withClaims:     false,
			section:        domain.SectionDashboard,
			expectedStatus: http.StatusUnauthorized,
			expectNext:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/v1/clinics/CLI001/alerts", nil)
			if tt.withClaims {
				claims := &domain.Claims{
					UserID:        1,
					UserPlanLabel: tt.planLabel,
				}
				req = req.WithContext(context.WithValue(req.Context(), ContextKeyUser, claims))
			}

			recorder := httptest.NewRecorder()
			RequirePlanSection(resolver, tt.section)(next).ServeHTTP(recorder, req)

			assert.Equal(t, tt.expectedStatus, recorder.Code)
			assert.Equal(t, tt.expectNext, nextCalled)
		})
	}
}
