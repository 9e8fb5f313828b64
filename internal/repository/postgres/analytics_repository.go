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

const (
	// LimitAnomalies фиксированный потолок выдачи аномалий
	LimitAnomalies = 100

	// DefaultRouteLimit выдача направлений по умолчанию
	DefaultRouteLimit = 10

	// LimitRoutes потолок выдачи направлений
	LimitRoutes = 100
)

type analyticsRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewAnalyticsRepository создает репозиторий чтения агрегатов поездок
func NewAnalyticsRepository(db *DB, logger *zap.Logger) repository.AnalyticsRepository {
	return &analyticsRepository{
		db:     db,
		logger: logger,
	}
}

func (r *analyticsRepository) GetDemandByHour(ctx context.Context, hour int) ([]domain.DemandCell, error) {
	query := `
		SELECT "PULocationID", n_trips
		FROM demand_heatmap
		WHERE pickup_hour = $1
		ORDER BY "PULocationID"`

	var cells []domain.DemandCell
	err := r.db.WithSession(ctx, func(conn *sqlx.Conn) error {
		rows, err := conn.QueryxContext(ctx, query, hour)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var cell domain.DemandCell
			if err := rows.StructScan(&cell); err != nil {
				return err
			}
			cells = append(cells, cell)
		}
		return rows.Err()
	})
	if err != nil {
		r.logger.Error("failed to get demand heatmap", zap.Int("hour", hour), zap.Error(err))
		return nil, pkgerrors.Database(err)
	}

	return cells, nil
}

func (r *analyticsRepository) GetTipTrends(ctx context.Context) ([]domain.TipTrend, error) {
	query := `
		SELECT "PULocationID", payment_type, avg_tip_pct, n_trips
		FROM tip_trends
		ORDER BY "PULocationID", payment_type`

	var trends []domain.TipTrend
	err := r.db.WithSession(ctx, func(conn *sqlx.Conn) error {
		rows, err := conn.QueryxContext(ctx, query)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var trend domain.TipTrend
			if err := rows.StructScan(&trend); err != nil {
				return err
			}
			trends = append(trends, trend)
		}
		return rows.Err()
	})
	if err != nil {
		r.logger.Error("failed to get tip trends", zap.Error(err))
		return nil, pkgerrors.Database(err)
	}

	return trends, nil
}

func (r *analyticsRepository) GetZoneTipValues(ctx context.Context, zoneID int) ([]float64, error) {
	query := `SELECT avg_tip_pct FROM tip_trends WHERE "PULocationID" = $1`

	var values []float64
	err := r.db.WithSession(ctx, func(conn *sqlx.Conn) error {
		rows, err := conn.QueryxContext(ctx, query, zoneID)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var v float64
			if err := rows.Scan(&v); err != nil {
				return err
			}
			values = append(values, v)
		}
		return rows.Err()
	})
	if err != nil {
		r.logger.Error("failed to get zone tip values", zap.Int("zone_id", zoneID), zap.Error(err))
		return nil, pkgerrors.Database(err)
	}

	return values, nil
}

func (r *analyticsRepository) GetFareAnomalies(ctx context.Context) ([]domain.FareAnomaly, error) {
	query := `
		SELECT "VendorID", tpep_pickup_datetime, "PULocationID", "DOLocationID",
		       fare_amount, tip_amount, trip_distance
		FROM fare_anomalies
		ORDER BY fare_amount DESC
		LIMIT $1`

	var anomalies []domain.FareAnomaly
	err := r.db.WithSession(ctx, func(conn *sqlx.Conn) error {
		rows, err := conn.QueryxContext(ctx, query, LimitAnomalies)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var a domain.FareAnomaly
			if err := rows.StructScan(&a); err != nil {
				return err
			}
			anomalies = append(anomalies, a)
		}
		return rows.Err()
	})
	if err != nil {
		r.logger.Error("failed to get fare anomalies", zap.Error(err))
		return nil, pkgerrors.Database(err)
	}

	return anomalies, nil
}

func (r *analyticsRepository) GetTripPerformance(ctx context.Context, zoneID int, filter domain.PerformanceFilter) ([]domain.TripPerformance, error) {
	query := `
		SELECT avg_duration, avg_speed, avg_fare, avg_distance, avg_tip,
		       total_revenue, n_trips, is_weekend
		FROM trip_performance
		WHERE "PULocationID" = $1`

	args := []interface{}{zoneID}
	argIdx := 2

	if filter.Hour != nil {
		query += fmt.Sprintf(" AND pickup_hour = $%d", argIdx)
		args = append(args, *filter.Hour)
		argIdx++
	}
	if filter.IsWeekend != nil {
		query += fmt.Sprintf(" AND is_weekend = $%d", argIdx)
		args = append(args, *filter.IsWeekend)
		argIdx++
	}

	query += " ORDER BY pickup_hour"

	var perf []domain.TripPerformance
	err := r.db.WithSession(ctx, func(conn *sqlx.Conn) error {
		rows, err := conn.QueryxContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var p domain.TripPerformance
			if err := rows.StructScan(&p); err != nil {
				return err
			}
			perf = append(perf, p)
		}
		return rows.Err()
	})
	if err != nil {
		r.logger.Error("failed to get trip performance", zap.Int("zone_id", zoneID), zap.Error(err))
		return nil, pkgerrors.Database(err)
	}

	return perf, nil
}

func (r *analyticsRepository) GetPopularRoutes(ctx context.Context, zoneID int, filter domain.RouteFilter) ([]domain.PopularRoute, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = DefaultRouteLimit
	}
	if limit > LimitRoutes {
		limit = LimitRoutes
	}

	query := `
		SELECT "DOLocationID", pickup_hour, n_trips, avg_duration,
		       avg_fare, avg_distance, avg_tip
		FROM popular_routes
		WHERE "PULocationID" = $1`

	args := []interface{}{zoneID}
	argIdx := 2

	if filter.Hour != nil {
		query += fmt.Sprintf(" AND pickup_hour = $%d", argIdx)
		args = append(args, *filter.Hour)
		argIdx++
	}

	query += fmt.Sprintf(" ORDER BY n_trips DESC LIMIT $%d", argIdx)
	args = append(args, limit)

	var routes []domain.PopularRoute
	err := r.db.WithSession(ctx, func(conn *sqlx.Conn) error {
		rows, err := conn.QueryxContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var route domain.PopularRoute
			if err := rows.StructScan(&route); err != nil {
				return err
			}
			routes = append(routes, route)
		}
		return rows.Err()
	})
	if err != nil {
		r.logger.Error("failed to get popular routes", zap.Int("zone_id", zoneID), zap.Error(err))
		return nil, pkgerrors.Database(err)
	}

	return routes, nil
}

func (r *analyticsRepository) GetPaymentAnalysis(ctx context.Context, zoneID int, filter domain.PaymentFilter) ([]domain.PaymentBreakdown, error) {
	query := `
		SELECT payment_method, n_trips, avg_fare, avg_tip,
		       avg_tip_percentage, total_revenue
		FROM payment_analysis
		WHERE "PULocationID" = $1`

	args := []interface{}{zoneID}
	argIdx := 2

	if filter.Hour != nil {
		query += fmt.Sprintf(" AND pickup_hour = $%d", argIdx)
		args = append(args, *filter.Hour)
		argIdx++
	}

	query += " ORDER BY n_trips DESC"

	var breakdown []domain.PaymentBreakdown
	err := r.db.WithSession(ctx, func(conn *sqlx.Conn) error {
		rows, err := conn.QueryxContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var b domain.PaymentBreakdown
			if err := rows.StructScan(&b); err != nil {
				return err
			}
			breakdown = append(breakdown, b)
		}
		return rows.Err()
	})
	if err != nil {
		r.logger.Error("failed to get payment analysis", zap.Int("zone_id", zoneID), zap.Error(err))
		return nil, pkgerrors.Database(err)
	}

	return breakdown, nil
}
