// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/vfg2006/control-tower-api/infrastructure/database/postgres"
	"github.com/vfg2006/control-tower-api/internal/domain"
)

const (
	clinicsTable = "clinics c"
)

type ClinicRepository interface {
	GetClinicByID(clinicID string) (*domain.Clinic, error)
	ListClinics(availableStatus []domain.ClinicStatus) ([]*domain.Clinic, error)
	UpdateClinic(clinic *domain.UpdateClinicRequest) error
}

type clinicRepository struct {
	conn *postgres.Connection
}

func NewClinicRepository(conn *postgres.Connection) ClinicRepository {
	return &clinicRepository{
		conn: conn,
	}
}

func (r *clinicRepository) GetClinicByID(clinicID string) (*domain.Clinic, error) {
	clinicsSQL, clinicsArgs, err := squirrel.
		Select("c.id, c.name, c.cnpj, c.plan_label, c.status, c.created_at, c.updated_at").
		From(clinicsTable).
		Where(squirrel.Eq{"c.id": clinicID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(clinicsSQL, clinicsArgs...)

	clinic := &domain.Clinic{}
	if err := row.Scan(
		&clinic.ID,
		&clinic.Name,
		&clinic.CNPJ,
		&clinic.PlanLabel,
		&clinic.Status,
		&clinic.CreatedAt,
		&clinic.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear clínica: %w", err)
	}

	return clinic, nil
}

func (r *clinicRepository) ListClinics(availableStatus []domain.ClinicStatus) ([]*domain.Clinic, error) {
	queryBuilder := squirrel.
		Select("c.id, c.name, c.cnpj, c.plan_label, c.status, c.created_at, c.updated_at").
		From(clinicsTable).
		OrderBy("c.name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(availableStatus) > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"c.status": availableStatus})
	}

	clinicsSQL, clinicsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(clinicsSQL, clinicsArgs...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	clinics := make([]*domain.Clinic, 0)
	for rows.Next() {
		clinic := &domain.Clinic{}
		if err := rows.Scan(
			&clinic.ID,
			&clinic.Name,
			&clinic.CNPJ,
			&clinic.PlanLabel,
			&clinic.Status,
			&clinic.CreatedAt,
			&clinic.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear clínica: %w", err)
		}

		clinics = append(clinics, clinic)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return clinics, nil
}

func (r *clinicRepository) UpdateClinic(clinic *domain.UpdateClinicRequest) error {
	queryBuilder := squirrel.
		Update("clinics").
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": clinic.ID})

	if clinic.Name != nil {
		queryBuilder = queryBuilder.Set("name", *clinic.Name)
	}

	// O rótulo de plano é gravado cru; a normalização acontece sempre no
	// caminho de leitura, nunca na escrita
	if clinic.PlanLabel != nil {
		queryBuilder = queryBuilder.Set("plan_label", *clinic.PlanLabel)
	}

	if clinic.Active != nil {
		status := domain.ClinicStatusDisabled
		if *clinic.Active {
			status = domain.ClinicStatusActive
		}
		queryBuilder = queryBuilder.Set("status", status)
	}

	clinicsSQL, clinicsArgs, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(clinicsSQL, clinicsArgs...); err != nil {
		return fmt.Errorf("erro ao atualizar clínica: %w", err)
	}

	return nil
}
