package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/taxi-analytics-microservice/internal/domain"
	"github.com/taxi-analytics-microservice/internal/domain/repository"
	pkgerrors "github.com/taxi-analytics-microservice/internal/pkg/errors"
)

// coverageTables таблицы с зонами посадки, по которым строится покрытие
var coverageTables = []string{TableDemandHeatmap, TableTipTrends, TableFareAnomalies}

type debugRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewDebugRepository создает репозиторий живой интроспекции хранилища
func NewDebugRepository(db *DB, logger *zap.Logger) repository.DebugRepository {
	return &debugRepository{
		db:     db,
		logger: logger,
	}
}

func (r *debugRepository) GetTableColumns(ctx context.Context, table string) ([]domain.TableColumn, error) {
	if _, ok := LookupTable(table); !ok {
		return nil, pkgerrors.ErrUnknownTable
	}

	query := `
		SELECT column_name, data_type
		FROM information_schema.columns
		WHERE table_schema = 'public' AND table_name = $1
		ORDER BY ordinal_position`

	var columns []domain.TableColumn
	err := r.db.WithSession(ctx, func(conn *sqlx.Conn) error {
		rows, err := conn.QueryxContext(ctx, query, table)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var col domain.TableColumn
			if err := rows.StructScan(&col); err != nil {
				return err
			}
			columns = append(columns, col)
		}
		return rows.Err()
	})
	if err != nil {
		r.logger.Error("failed to inspect table", zap.String("table", table), zap.Error(err))
		return nil, pkgerrors.Database(err)
	}

	return columns, nil
}

func (r *debugRepository) GetZoneCoverage(ctx context.Context) (map[string][]int, error) {
	coverage := make(map[string][]int, len(coverageTables))

	// Все таблицы читаются в одной сессии
	err := r.db.WithSession(ctx, func(conn *sqlx.Conn) error {
		for _, table := range coverageTables {
			query := fmt.Sprintf(
				`SELECT DISTINCT %s FROM %s ORDER BY %s`,
				quoteIdent("PULocationID"), table, quoteIdent("PULocationID"),
			)

			rows, err := conn.QueryxContext(ctx, query)
			if err != nil {
				return err
			}

			zones := []int{}
			for rows.Next() {
				var zone int
				if err := rows.Scan(&zone); err != nil {
					rows.Close()
					return err
				}
				zones = append(zones, zone)
			}
			if err := rows.Err(); err != nil {
				rows.Close()
				return err
			}
			rows.Close()

			coverage[table] = zones
		}
		return nil
	})
	if err != nil {
		r.logger.Error("failed to get zone coverage", zap.Error(err))
		return nil, pkgerrors.Database(err)
	}

	return coverage, nil
}

func (r *debugRepository) CountAllRows(ctx context.Context) (map[string]int64, error) {
	counts := make(map[string]int64, len(tables))

	err := r.db.WithSession(ctx, func(conn *sqlx.Conn) error {
		for _, t := range tables {
			var n int64
			query := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, t.Name)
			if err := conn.QueryRowxContext(ctx, query).Scan(&n); err != nil {
				return err
			}
			counts[t.Name] = n
		}
		return nil
	})
	if err != nil {
		r.logger.Error("failed to count rows", zap.Error(err))
		return nil, pkgerrors.Database(err)
	}

	return counts, nil
}
