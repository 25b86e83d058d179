package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/control-tower-api/infrastructure/database/postgres"
	"github.com/vfg2006/control-tower-api/internal/domain"
)

const (
	kpiSnapshotsTable = "kpi_snapshots ks"
)

type KpiSnapshotRepository interface {
	SaveSnapshot(snapshot *domain.KpiSnapshot) error
	GetLatestByClinic(clinicID string) (*domain.KpiSnapshot, error)
}

type kpiSnapshotRepository struct {
	conn *postgres.Connection
}

func NewKpiSnapshotRepository(conn *postgres.Connection) KpiSnapshotRepository {
	return &kpiSnapshotRepository{
		conn: conn,
	}
}

func (r *kpiSnapshotRepository) SaveSnapshot(snapshot *domain.KpiSnapshot) error {
	queryBuilder := squirrel.
		Insert("kpi_snapshots").
		Columns(
			"id",
			"clinic_id",
			"no_show_rate",
			"margem_liquida",
			"nps",
			"faturamento",
			"meta_faturamento",
			"churn_rate",
			"fluxo_caixa",
			"occupancy_rate",
			"cac",
			"ltv",
			"collected_at",
			"created_at",
		).
		Values(
			snapshot.ID,
			snapshot.ClinicID,
			snapshot.NoShowRate,
			snapshot.MargemLiquida,
			snapshot.NPS,
			snapshot.Faturamento,
			snapshot.MetaFaturamento,
			snapshot.ChurnRate,
			snapshot.FluxoCaixa,
			snapshot.OccupancyRate,
			snapshot.CAC,
			snapshot.LTV,
			snapshot.CollectedAt,
			time.Now(),
		).
		PlaceholderFormat(squirrel.Dollar)

	snapshotSQL, snapshotArgs, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(snapshotSQL, snapshotArgs...); err != nil {
		return fmt.Errorf("erro ao salvar snapshot de KPIs: %w", err)
	}

	return nil
}

func (r *kpiSnapshotRepository) GetLatestByClinic(clinicID string) (*domain.KpiSnapshot, error) {
	snapshotSQL, snapshotArgs, err := squirrel.
		Select(
			"ks.id",
			"ks.clinic_id",
			"ks.no_show_rate",
			"ks.margem_liquida",
			"ks.nps",
			"ks.faturamento",
			"ks.meta_faturamento",
			"ks.churn_rate",
			"ks.fluxo_caixa",
			"ks.occupancy_rate",
			"ks.cac",
			"ks.ltv",
			"ks.collected_at",
			"ks.created_at",
		).
		From(kpiSnapshotsTable).
		Where(squirrel.Eq{"ks.clinic_id": clinicID}).
		OrderBy("ks.collected_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(snapshotSQL, snapshotArgs...)

	snapshot := &domain.KpiSnapshot{}
	if err := row.Scan(
		&snapshot.ID,
		&snapshot.ClinicID,
		&snapshot.NoShowRate,
		&snapshot.MargemLiquida,
		&snapshot.NPS,
		&snapshot.Faturamento,
		&snapshot.MetaFaturamento,
		&snapshot.ChurnRate,
		&snapshot.FluxoCaixa,
		&snapshot.OccupancyRate,
		&snapshot.CAC,
		&snapshot.LTV,
		&snapshot.CollectedAt,
		&snapshot.CreatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear snapshot de KPIs: %w", err)
	}

	return snapshot, nil
}
