package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/control-tower-api/infrastructure/database/postgres"
)

const (
	alertStatesTable = "alert_states ast"
)

// AlertStateRepository é o colaborador de persistência do ciclo de vida
// de alertas: guarda o reconhecimento por (clínica, id de alerta) para
// que ele sobreviva a reinícios de sessão. resolved_at nulo representa
// um dismiss; preenchido, um resolve.
type AlertStateRepository interface {
	ListByClinic(clinicID string) (map[string]*time.Time, error)
	Save(clinicID, alertID string, resolvedAt *time.Time) error
	Delete(clinicID, alertID string) error
}

type alertStateRepository struct {
	conn *postgres.Connection
}

func NewAlertStateRepository(conn *postgres.Connection) AlertStateRepository {
	return &alertStateRepository{
		conn: conn,
	}
}

func (r *alertStateRepository) ListByClinic(clinicID string) (map[string]*time.Time, error) {
	statesSQL, statesArgs, err := squirrel.
		Select("ast.alert_id", "ast.resolved_at").
		From(alertStatesTable).
		Where(squirrel.Eq{"ast.clinic_id": clinicID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(statesSQL, statesArgs...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	states := make(map[string]*time.Time)
	for rows.Next() {
		var alertID string
		var resolvedAt *time.Time

		if err := rows.Scan(&alertID, &resolvedAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear estado de alerta: %w", err)
		}

		states[alertID] = resolvedAt
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return states, nil
}

func (r *alertStateRepository) Save(clinicID, alertID string, resolvedAt *time.Time) error {
	queryBuilder := squirrel.
		Insert("alert_states").
		Columns("clinic_id", "alert_id", "resolved_at", "updated_at").
		Values(clinicID, alertID, resolvedAt, time.Now()).
		Suffix("ON CONFLICT (clinic_id, alert_id) DO UPDATE SET resolved_at = EXCLUDED.resolved_at, updated_at = EXCLUDED.updated_at").
		PlaceholderFormat(squirrel.Dollar)

	stateSQL, stateArgs, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(stateSQL, stateArgs...); err != nil {
		return fmt.Errorf("erro ao salvar estado de alerta: %w", err)
	}

	return nil
}

func (r *alertStateRepository) Delete(clinicID, alertID string) error {
	stateSQL, stateArgs, err := squirrel.
		Delete("alert_states").
		Where(squirrel.Eq{"clinic_id": clinicID, "alert_id": alertID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(stateSQL, stateArgs...); err != nil {
		return fmt.Errorf("erro ao remover estado de alerta: %w", err)
	}

	return nil
}
