// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

//go:generate mockgen -source=snapshot.go -destination=mocks/snapshot.go -package=mocks

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/serp-tracker-api/infrastructure/database/postgres"
	"github.com/vfg2006/serp-tracker-api/internal/domain"
	"github.com/vfg2006/serp-tracker-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	snapshotTable = "serp_snapshot ss"
)

var snapshotColumns = []string{
	"ss.id",
	"ss.keyword",
	"ss.captured_at",
	"ss.item_count",
	"ss.items",
}

type SnapshotRepository interface {
	ListByKeyword(ctx context.Context, keyword string, filters *domain.SnapshotFilters) ([]domain.Snapshot, error)
	GetLatest(ctx context.Context, keyword string, limit int) ([]domain.Snapshot, error)
	SaveSnapshots(ctx context.Context, keyword string, snapshots []domain.Snapshot) (int64, error)
}

type snapshotRepository struct {
	conn postgres.Conn
}

func NewSnapshotRepository(conn postgres.Conn) SnapshotRepository {
	return &snapshotRepository{
		conn: conn,
	}
}

// ListByKeyword retorna os snapshots da palavra-chave em ordem cronológica
func (r *snapshotRepository) ListByKeyword(ctx context.Context, keyword string, filters *domain.SnapshotFilters) ([]domain.Snapshot, error) {
	sqlQuery, args, err := listSnapshotsQuery(keyword, filters).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.querySnapshots(ctx, sqlQuery, args...)
}

// GetLatest retorna os últimos `limit` snapshots, do mais antigo para o mais recente
func (r *snapshotRepository) GetLatest(ctx context.Context, keyword string, limit int) ([]domain.Snapshot, error) {
	sqlQuery, args, err := latestSnapshotsQuery(keyword, limit).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	snapshots, err := r.querySnapshots(ctx, sqlQuery, args...)
	if err != nil {
		return nil, err
	}

	for i, j := 0, len(snapshots)-1; i < j; i, j = i+1, j-1 {
		snapshots[i], snapshots[j] = snapshots[j], snapshots[i]
	}

	return snapshots, nil
}

// SaveSnapshots insere os snapshots ignorando os já existentes para a mesma data.
// Retorna a quantidade de snapshots novos.
func (r *snapshotRepository) SaveSnapshots(ctx context.Context, keyword string, snapshots []domain.Snapshot) (int64, error) {
	if len(snapshots) == 0 {
		return 0, nil
	}

	query, err := insertSnapshotsQuery(keyword, snapshots)
	if err != nil {
		return 0, err
	}

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	var inserted int64
	err = r.conn.RunInTransaction(ctx, func(q postgres.Queryer) error {
		result, err := q.ExecContext(ctx, sqlQuery, args...)
		if err != nil {
			return fmt.Errorf("erro ao executar query de inserção: %w", err)
		}

		inserted, err = result.RowsAffected()
		return err
	})
	if err != nil {
		return 0, err
	}

	return inserted, nil
}

func listSnapshotsQuery(keyword string, filters *domain.SnapshotFilters) squirrel.SelectBuilder {
	queryBuilder := squirrel.
		Select(snapshotColumns...).
		From(snapshotTable).
		Where(squirrel.Eq{"ss.keyword": keyword}).
		OrderBy("ss.captured_at ASC").
		PlaceholderFormat(squirrel.Dollar)

	if filters != nil && filters.StartDate != nil {
		queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"ss.captured_at": *filters.StartDate})
	}

	if filters != nil && filters.EndDate != nil {
		queryBuilder = queryBuilder.Where(squirrel.LtOrEq{"ss.captured_at": *filters.EndDate})
	}

	return queryBuilder
}

func latestSnapshotsQuery(keyword string, limit int) squirrel.SelectBuilder {
	if limit <= 0 {
		limit = 1
	}

	return squirrel.
		Select(snapshotColumns...).
		From(snapshotTable).
		Where(squirrel.Eq{"ss.keyword": keyword}).
		OrderBy("ss.captured_at DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)
}

func insertSnapshotsQuery(keyword string, snapshots []domain.Snapshot) (squirrel.InsertBuilder, error) {
	query := squirrel.StatementBuilder.
		Insert("serp_snapshot").
		Columns(
			"id",
			"keyword",
			"captured_at",
			"item_count",
			"items",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, snapshot := range snapshots {
		id := snapshot.ID
		if id == "" {
			generated, err := utils.GenerateID()
			if err != nil {
				return query, fmt.Errorf("erro ao gerar id do snapshot: %w", err)
			}
			id = generated
		}

		items, err := json.Marshal(snapshot.Items)
		if err != nil {
			return query, fmt.Errorf("erro ao serializar itens do snapshot: %w", err)
		}

		query = query.Values(
			id,
			keyword,
			snapshot.Timestamp.UTC(),
			snapshot.ItemCount,
			items,
		)
	}

	// Snapshots são imutáveis: uma data já capturada não é sobrescrita
	return query.Suffix("ON CONFLICT (keyword, captured_at) DO NOTHING"), nil
}

func (r *snapshotRepository) querySnapshots(ctx context.Context, sqlQuery string, args ...any) ([]domain.Snapshot, error) {
	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return []domain.Snapshot{}, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	snapshots := make([]domain.Snapshot, 0)
	for rows.Next() {
		snapshot, err := r.scanSnapshot(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
		}
		snapshots = append(snapshots, *snapshot)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return snapshots, nil
}

func (r *snapshotRepository) scanSnapshot(rows *sql.Rows) (*domain.Snapshot, error) {
	snapshot := &domain.Snapshot{}

	var (
		capturedAt time.Time
		items      []byte
	)

	err := rows.Scan(
		&snapshot.ID,
		&snapshot.Keyword,
		&capturedAt,
		&snapshot.ItemCount,
		&items,
	)
	if err != nil {
		return nil, err
	}

	snapshot.Timestamp = capturedAt.UTC()
	if len(items) > 0 {
		if err := json.Unmarshal(items, &snapshot.Items); err != nil {
			return nil, fmt.Errorf("erro ao decodificar itens do snapshot %s: %w", snapshot.ID, err)
		}
	}

	return snapshot, nil
}
