package alerting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/control-tower-api/internal/domain"
)

func TestLifecycleStore_ResolveVenceDismiss(t *testing.T) {
	store := NewLifecycleStore()
	now := time.Now()

	// Dismiss primeiro, resolve depois: resolve sobrepõe
	assert.True(t, store.Dismiss("no_show_rate"))
	assert.True(t, store.Resolve("no_show_rate", now))

	applied := store.Apply([]domain.Alert{{ID: "no_show_rate", Priority: domain.PriorityP1}})
	require.Len(t, applied, 1)
	assert.True(t, applied[0].Acknowledged)
	require.NotNil(t, applied[0].ResolvedAt)
	assert.Equal(t, now, *applied[0].ResolvedAt)

	// Resolve primeiro, dismiss depois: dismiss não rebaixa
	store2 := NewLifecycleStore()
	assert.True(t, store2.Resolve("nps", now))
	assert.False(t, store2.Dismiss("nps"))

	applied = store2.Apply([]domain.Alert{{ID: "nps", Priority: domain.PriorityP1}})
	require.NotNil(t, applied[0].ResolvedAt)
}

func TestLifecycleStore_ResolveIdempotente(t *testing.T) {
	store := NewLifecycleStore()
	first := time.Now()

	assert.True(t, store.Resolve("churn_rate", first))

	// Segundo resolve não reescreve o instante original
	assert.False(t, store.Resolve("churn_rate", first.Add(time.Hour)))

	applied := store.Apply([]domain.Alert{{ID: "churn_rate"}})
	require.NotNil(t, applied[0].ResolvedAt)
	assert.Equal(t, first, *applied[0].ResolvedAt)
}

// Cenário de reincidência: alerta reconhecido continua suprimido
// enquanto a mesma violação persistir em snapshots novos; só o rearm
// explícito o faz voltar a contar como ativo
func TestLifecycleStore_ReincidenciaAposReconhecimento(t *testing.T) {
	store := NewLifecycleStore()

	firstPass := ClassifyAlerts(crisisSnapshot(), time.Now())
	require.NotEmpty(t, firstPass)
	assert.Equal(t, 2, GetP1Count(firstPass))

	// Equipe resolve o no-show
	store.Resolve("no_show_rate", time.Now())
	acknowledged := store.Apply(firstPass)
	assert.Equal(t, 1, GetP1Count(acknowledged))
	assert.False(t, Aggregate(acknowledged).WarRoom)

	// Snapshot novo com a mesma violação: a identidade é a mesma, o
	// reconhecimento persiste
	secondPass := ClassifyAlerts(crisisSnapshot(), time.Now().Add(time.Hour))
	store.Prune(secondPass)
	stillAcknowledged := store.Apply(secondPass)
	assert.Equal(t, 1, GetP1Count(stillAcknowledged))

	// Rearm devolve o alerta ao estado ativo
	store.Rearm("no_show_rate")
	rearmed := store.Apply(secondPass)
	assert.Equal(t, 2, GetP1Count(rearmed))
	assert.True(t, Aggregate(rearmed).WarRoom)
}

// Entradas órfãs (violação deixou de ser emitida) são descartadas para
// o estado não crescer sem limite
func TestLifecycleStore_PruneDescartaOrfaos(t *testing.T) {
	store := NewLifecycleStore()
	store.Resolve("no_show_rate", time.Now())
	store.Dismiss("nps")

	// A clínica saudável não emite mais nenhuma das violações; os ids
	// descartados voltam para o chamador limpar a persistência
	current := ClassifyAlerts(healthySnapshot(), time.Now())
	require.Empty(t, current)
	orphans := store.Prune(current)

	assert.ElementsMatch(t, []string{"no_show_rate", "nps"}, orphans)
	assert.Empty(t, store.Snapshot())

	// Depois do prune, a violação reaparecendo volta ativa
	relapse := ClassifyAlerts(crisisSnapshot(), time.Now())
	applied := store.Apply(relapse)
	assert.Equal(t, 2, GetP1Count(applied))
}

func TestLifecycleStore_SnapshotRestore(t *testing.T) {
	store := NewLifecycleStore()
	resolvedAt := time.Now()
	store.Resolve("no_show_rate", resolvedAt)
	store.Dismiss("margem_liquida")

	// Reinício do processo: estado recarregado da persistência
	restored := NewLifecycleStore()
	restored.Restore(store.Snapshot())

	applied := restored.Apply([]domain.Alert{
		{ID: "no_show_rate"},
		{ID: "margem_liquida"},
	})

	require.Len(t, applied, 2)
	assert.True(t, applied[0].Acknowledged)
	require.NotNil(t, applied[0].ResolvedAt)
	assert.True(t, applied[0].ResolvedAt.Equal(resolvedAt))

	assert.True(t, applied[1].Acknowledged)
	assert.Nil(t, applied[1].ResolvedAt, "dismiss não carrega marca de resolução")
}

// Sessões distintas recebem stores distintos: nada de singleton de módulo
func TestLifecycleStore_IsoladoPorInstancia(t *testing.T) {
	sessionA := NewLifecycleStore()
	sessionB := NewLifecycleStore()

	sessionA.Resolve("no_show_rate", time.Now())

	applied := sessionB.Apply([]domain.Alert{{ID: "no_show_rate"}})
	assert.False(t, applied[0].Acknowledged)
}
