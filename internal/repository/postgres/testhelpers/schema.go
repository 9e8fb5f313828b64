package testhelpers

import (
	"context"
	"fmt"

	"github.com/taxi-analytics-microservice/internal/repository/postgres"
)

// EnsureSchema creates the aggregate tables in the test database using the
// same registry the service applies at startup
func EnsureSchema(ctx context.Context, tdb *TestDB) error {
	db := postgres.NewDBForTest(tdb.DB, tdb.Logger)
	if err := postgres.EnsureSchema(ctx, db); err != nil {
		return fmt.Errorf("ensure test schema: %w", err)
	}
	return nil
}
