// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-bi-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-bi-api/internal/domain"
)

const (
	kpiSnapshotTable = "kpi_snapshot ks"
)

const kpiSnapshotSchema = `
CREATE TABLE IF NOT EXISTS kpi_snapshot (
	id               SERIAL PRIMARY KEY,
	month            VARCHAR(6)       NOT NULL,
	scope_level      VARCHAR(16)      NOT NULL,
	scope_id         VARCHAR(128)     NOT NULL,
	scope_name       VARCHAR(256)     NOT NULL,
	metric           VARCHAR(16)      NOT NULL,
	actual           DOUBLE PRECISION NOT NULL DEFAULT 0,
	target           DOUBLE PRECISION NOT NULL DEFAULT 0,
	achievement_rate DOUBLE PRECISION NOT NULL DEFAULT 0,
	progress_rate    DOUBLE PRECISION NOT NULL DEFAULT 0,
	forecast         DOUBLE PRECISION NOT NULL DEFAULT 0,
	created_at       TIMESTAMP        NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at       TIMESTAMP        NOT NULL DEFAULT CURRENT_TIMESTAMP,
	UNIQUE (month, scope_level, scope_id, metric)
)`

type KPISnapshotRepository interface {
	EnsureSchema(ctx context.Context) error
	GetByMonth(ctx context.Context, month string) (*domain.KPISnapshotResponse, error)
	SaveOrUpdateSnapshots(ctx context.Context, snapshots []*domain.KPISnapshot) error
}

type kpiSnapshotRepository struct {
	conn postgres.Queryer
}

func NewKPISnapshotRepository(conn postgres.Queryer) KPISnapshotRepository {
	return &kpiSnapshotRepository{
		conn: conn,
	}
}

// EnsureSchema cria a tabela de histórico caso ainda não exista
func (r *kpiSnapshotRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.conn.ExecContext(ctx, kpiSnapshotSchema); err != nil {
		return fmt.Errorf("erro ao criar tabela kpi_snapshot: %w", err)
	}
	return nil
}

func (r *kpiSnapshotRepository) GetByMonth(ctx context.Context, month string) (*domain.KPISnapshotResponse, error) {
	sqlQuery, args, err := squirrel.
		Select(
			"ks.id",
			"ks.month",
			"ks.scope_level",
			"ks.scope_id",
			"ks.scope_name",
			"ks.metric",
			"ks.actual",
			"ks.target",
			"ks.achievement_rate",
			"ks.progress_rate",
			"ks.forecast",
			"ks.created_at",
			"ks.updated_at",
		).
		From(kpiSnapshotTable).
		Where(squirrel.Eq{"ks.month": month}).
		OrderBy("ks.metric ASC", "ks.scope_level ASC", "ks.actual DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return &domain.KPISnapshotResponse{Month: month, Snapshots: []domain.KPISnapshot{}}, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	snapshots := make([]domain.KPISnapshot, 0)
	var lastUpdate time.Time

	for rows.Next() {
		item, err := r.scanKPISnapshot(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
		}

		snapshots = append(snapshots, *item)

		if item.UpdatedAt.After(lastUpdate) {
			lastUpdate = item.UpdatedAt
		}
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return &domain.KPISnapshotResponse{
		Month:      month,
		Snapshots:  snapshots,
		LastUpdate: lastUpdate,
	}, nil
}

func (r *kpiSnapshotRepository) SaveOrUpdateSnapshots(ctx context.Context, snapshots []*domain.KPISnapshot) error {
	if len(snapshots) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert("kpi_snapshot").
		Columns(
			"month",
			"scope_level",
			"scope_id",
			"scope_name",
			"metric",
			"actual",
			"target",
			"achievement_rate",
			"progress_rate",
			"forecast",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, s := range snapshots {
		query = query.Values(
			s.Month,
			string(s.ScopeLevel),
			s.ScopeID,
			s.ScopeName,
			string(s.Metric),
			s.Actual,
			s.Target,
			s.AchievementRate,
			s.ProgressRate,
			s.Forecast,
		)
	}

	// upsert pela chave natural do snapshot
	query = query.Suffix(`
		ON CONFLICT (month, scope_level, scope_id, metric) DO UPDATE SET
			scope_name = EXCLUDED.scope_name,
			actual = EXCLUDED.actual,
			target = EXCLUDED.target,
			achievement_rate = EXCLUDED.achievement_rate,
			progress_rate = EXCLUDED.progress_rate,
			forecast = EXCLUDED.forecast,
			updated_at = CURRENT_TIMESTAMP
	`)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if _, err = r.conn.ExecContext(ctx, sqlQuery, args...); err != nil {
		return fmt.Errorf("erro ao executar query de inserção: %w", err)
	}

	return nil
}

func (r *kpiSnapshotRepository) scanKPISnapshot(rows *sql.Rows) (*domain.KPISnapshot, error) {
	item := &domain.KPISnapshot{}
	var level, metric string

	err := rows.Scan(
		&item.ID,
		&item.Month,
		&level,
		&item.ScopeID,
		&item.ScopeName,
		&metric,
		&item.Actual,
		&item.Target,
		&item.AchievementRate,
		&item.ProgressRate,
		&item.Forecast,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	item.ScopeLevel = domain.Level(level)
	item.Metric = domain.MetricType(metric)

	return item, nil
}
