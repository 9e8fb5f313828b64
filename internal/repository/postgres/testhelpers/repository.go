package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/taxi-analytics-microservice/internal/domain/repository"
	"github.com/taxi-analytics-microservice/internal/repository/postgres"
)

// NewDBForTest creates a postgres.DB with test database and logger
func NewDBForTest(db *sqlx.DB, logger *zap.Logger) *postgres.DB {
	return postgres.NewDBForTest(db, logger)
}

// NewAnalyticsRepositoryForTest creates an analytics repository with test database and logger
func NewAnalyticsRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.AnalyticsRepository {
	pgDB := NewDBForTest(db, logger)
	return postgres.NewAnalyticsRepository(pgDB, logger)
}

// NewDebugRepositoryForTest creates a debug repository with test database and logger
func NewDebugRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.DebugRepository {
	pgDB := NewDBForTest(db, logger)
	return postgres.NewDebugRepository(pgDB, logger)
}
