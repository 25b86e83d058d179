package alerting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/control-tower-api/internal/domain"
)

func TestCueTracker_DisparaNaPrimeiraAparicao(t *testing.T) {
	tracker := NewCueTracker()

	cue := tracker.Update([]domain.Alert{
		{ID: "no_show_rate", Priority: domain.PriorityP1},
		{ID: "margem_liquida", Priority: domain.PriorityP2},
	})

	require.NotNil(t, cue)
	assert.Equal(t, domain.PriorityP1, cue.Priority)
	assert.Equal(t, "no_show_rate", cue.AlertID)
}

// Re-render do mesmo estado não dispara cue de novo
func TestCueTracker_DebounceEmEstadoInalterado(t *testing.T) {
	tracker := NewCueTracker()
	alerts := []domain.Alert{{ID: "no_show_rate", Priority: domain.PriorityP1}}

	require.NotNil(t, tracker.Update(alerts))
	assert.Nil(t, tracker.Update(alerts))
	assert.Nil(t, tracker.Update(alerts))
}

// Escalonamento de prioridade do mesmo id conta como chegada nova
func TestCueTracker_DisparaEmEscalonamento(t *testing.T) {
	tracker := NewCueTracker()

	require.NotNil(t, tracker.Update([]domain.Alert{
		{ID: "margem_liquida", Priority: domain.PriorityP2},
	}))

	cue := tracker.Update([]domain.Alert{
		{ID: "margem_liquida", Priority: domain.PriorityP1},
	})

	require.NotNil(t, cue)
	assert.Equal(t, domain.PriorityP1, cue.Priority)
}

// Um segundo P1 chegando enquanto o primeiro persiste dispara cue para
// o recém-chegado, mesmo que o P1 antigo tenha desvio maior e continue
// ordenado à frente — é exatamente esse segundo P1 que leva a clínica
// ao war room
func TestCueTracker_DisparaParaSegundoP1RecemChegado(t *testing.T) {
	tracker := NewCueTracker()

	require.NotNil(t, tracker.Update([]domain.Alert{
		{ID: "no_show_rate", Priority: domain.PriorityP1, DeviationPercent: 270.0},
	}))

	cue := tracker.Update([]domain.Alert{
		{ID: "no_show_rate", Priority: domain.PriorityP1, DeviationPercent: 270.0},
		{ID: "nps", Priority: domain.PriorityP1, DeviationPercent: 90.4},
	})

	require.NotNil(t, cue)
	assert.Equal(t, "nps", cue.AlertID)
	assert.Equal(t, domain.PriorityP1, cue.Priority)

	// Re-render do mesmo par não dispara de novo
	assert.Nil(t, tracker.Update([]domain.Alert{
		{ID: "no_show_rate", Priority: domain.PriorityP1, DeviationPercent: 270.0},
		{ID: "nps", Priority: domain.PriorityP1, DeviationPercent: 90.4},
	}))
}

// Chegada simultânea de P1 novo e P2 novo escolhe o mais grave
func TestCueTracker_RecemChegadoMaisGraveVence(t *testing.T) {
	tracker := NewCueTracker()

	require.NotNil(t, tracker.Update([]domain.Alert{
		{ID: "margem_liquida", Priority: domain.PriorityP2},
	}))

	cue := tracker.Update([]domain.Alert{
		{ID: "no_show_rate", Priority: domain.PriorityP1},
		{ID: "margem_liquida", Priority: domain.PriorityP2},
		{ID: "revenue_vs_target", Priority: domain.PriorityP2},
	})

	require.NotNil(t, cue)
	assert.Equal(t, "no_show_rate", cue.AlertID)
	assert.Equal(t, domain.PriorityP1, cue.Priority)
}

// Alertas reconhecidos não participam do cálculo do cue
func TestCueTracker_IgnoraReconhecidos(t *testing.T) {
	tracker := NewCueTracker()

	cue := tracker.Update([]domain.Alert{
		{ID: "no_show_rate", Priority: domain.PriorityP1, Acknowledged: true},
		{ID: "margem_liquida", Priority: domain.PriorityP2},
	})

	require.NotNil(t, cue)
	assert.Equal(t, "margem_liquida", cue.AlertID)
}

// Estado vazio limpa o histórico: a mesma violação voltando depois de
// um passe limpo dispara de novo
func TestCueTracker_ReaparicaoAposLimpeza(t *testing.T) {
	tracker := NewCueTracker()
	alerts := []domain.Alert{{ID: "no_show_rate", Priority: domain.PriorityP1}}

	require.NotNil(t, tracker.Update(alerts))
	assert.Nil(t, tracker.Update(nil))
	assert.NotNil(t, tracker.Update(alerts))
}
