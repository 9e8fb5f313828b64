package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/taxi-analytics-microservice/internal/domain"
	"github.com/taxi-analytics-microservice/internal/domain/repository"
	"github.com/taxi-analytics-microservice/internal/repository/postgres"
	"github.com/taxi-analytics-microservice/internal/repository/postgres/testhelpers"
)

// AnalyticsRepositorySuite тестирует контракты выборок по реальной БД
type AnalyticsRepositorySuite struct {
	suite.Suite
	testDB *testhelpers.TestDB
	repo   repository.AnalyticsRepository
	ctx    context.Context
}

// SetupSuite выполняется один раз перед всеми тестами
func (s *AnalyticsRepositorySuite) SetupSuite() {
	s.testDB = testhelpers.SetupTestDB(s.T())

	// Таблицы создаются тем же реестром, что и на старте сервиса
	err := testhelpers.EnsureSchema(context.Background(), s.testDB)
	s.Require().NoError(err, "Failed to ensure test schema")

	err = s.testDB.Cleanup(context.Background())
	s.Require().NoError(err, "Failed to cleanup test database")

	err = testhelpers.LoadFixtures(s.testDB.DB.DB, "testdata", []string{"analytics.sql"})
	s.Require().NoError(err, "Failed to load fixtures")

	s.repo = testhelpers.NewAnalyticsRepositoryForTest(s.testDB.DB, s.testDB.Logger)
}

// TearDownSuite выполняется один раз после всех тестов
func (s *AnalyticsRepositorySuite) TearDownSuite() {
	if s.testDB != nil {
		s.testDB.Close()
	}
}

// SetupTest выполняется перед каждым тестом
func (s *AnalyticsRepositorySuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *AnalyticsRepositorySuite) TestGetDemandByHour() {
	cells, err := s.repo.GetDemandByHour(s.ctx, 8)

	s.NoError(err)
	s.Require().Len(cells, 3)

	// Ordered by pickup zone
	s.Equal(132, cells[0].PULocationID)
	s.Equal(int64(420), cells[0].NTrips)
	s.Equal(138, cells[1].PULocationID)
	s.Equal(161, cells[2].PULocationID)
}

func (s *AnalyticsRepositorySuite) TestGetDemandByHour_NoRows() {
	cells, err := s.repo.GetDemandByHour(s.ctx, 3)

	s.NoError(err)
	s.Empty(cells)
}

func (s *AnalyticsRepositorySuite) TestGetTipTrends() {
	trends, err := s.repo.GetTipTrends(s.ctx)

	s.NoError(err)
	s.Require().Len(trends, 3)

	// Ordered by zone, then payment type
	s.Equal(132, trends[0].PULocationID)
	s.Equal(int64(1), trends[0].PaymentType)
	s.InDelta(18.5, trends[0].AvgTipPct, 1e-9)
	s.Equal(132, trends[1].PULocationID)
	s.Equal(int64(2), trends[1].PaymentType)
	s.Equal(138, trends[2].PULocationID)
}

func (s *AnalyticsRepositorySuite) TestGetZoneTipValues() {
	values, err := s.repo.GetZoneTipValues(s.ctx, 132)

	s.NoError(err)
	s.ElementsMatch([]float64{18.5, 0.0}, values)
}

func (s *AnalyticsRepositorySuite) TestGetZoneTipValues_UnknownZone() {
	values, err := s.repo.GetZoneTipValues(s.ctx, 999)

	s.NoError(err)
	s.Empty(values)
}

func (s *AnalyticsRepositorySuite) TestGetFareAnomalies() {
	anomalies, err := s.repo.GetFareAnomalies(s.ctx)

	s.NoError(err)
	s.Require().Len(anomalies, 3)
	s.LessOrEqual(len(anomalies), postgres.LimitAnomalies)

	// Fares are non-increasing
	for i := 1; i < len(anomalies); i++ {
		s.GreaterOrEqual(anomalies[i-1].FareAmount, anomalies[i].FareAmount)
	}
	s.InDelta(890.50, anomalies[0].FareAmount, 1e-9)
	s.Equal("2024-01-15T08:24:00", anomalies[0].PickupDatetime.Format("2006-01-02T15:04:05"))
}

func (s *AnalyticsRepositorySuite) TestGetTripPerformance_NoFilter() {
	perf, err := s.repo.GetTripPerformance(s.ctx, 132, domain.PerformanceFilter{})

	s.NoError(err)
	s.Len(perf, 3)
}

func (s *AnalyticsRepositorySuite) TestGetTripPerformance_HourFilter() {
	hour := 8
	perf, err := s.repo.GetTripPerformance(s.ctx, 132, domain.PerformanceFilter{Hour: &hour})

	s.NoError(err)
	s.Len(perf, 2)
}

func (s *AnalyticsRepositorySuite) TestGetTripPerformance_ConjunctiveFilters() {
	hour := 8
	weekend := false
	perf, err := s.repo.GetTripPerformance(s.ctx, 132, domain.PerformanceFilter{
		Hour:      &hour,
		IsWeekend: &weekend,
	})

	s.NoError(err)
	s.Require().Len(perf, 1)
	s.False(perf[0].IsWeekend)
	s.Equal(int64(420), perf[0].NTrips)
}

func (s *AnalyticsRepositorySuite) TestGetPopularRoutes_DefaultLimit() {
	routes, err := s.repo.GetPopularRoutes(s.ctx, 132, domain.RouteFilter{})

	s.NoError(err)
	s.Require().Len(routes, 4)

	// Ordered by trip count descending
	s.Equal(230, routes[0].DOLocationID)
	s.Equal(int64(180), routes[0].NTrips)
	for i := 1; i < len(routes); i++ {
		s.GreaterOrEqual(routes[i-1].NTrips, routes[i].NTrips)
	}
}

func (s *AnalyticsRepositorySuite) TestGetPopularRoutes_ExplicitLimit() {
	routes, err := s.repo.GetPopularRoutes(s.ctx, 132, domain.RouteFilter{Limit: 2})

	s.NoError(err)
	s.Require().Len(routes, 2)
	s.Equal(int64(180), routes[0].NTrips)
	s.Equal(int64(140), routes[1].NTrips)
}

func (s *AnalyticsRepositorySuite) TestGetPopularRoutes_HourFilter() {
	hour := 8
	routes, err := s.repo.GetPopularRoutes(s.ctx, 132, domain.RouteFilter{Hour: &hour})

	s.NoError(err)
	s.Len(routes, 3)
	for _, r := range routes {
		s.Equal(8, r.PickupHour)
	}
}

func (s *AnalyticsRepositorySuite) TestGetPaymentAnalysis() {
	breakdown, err := s.repo.GetPaymentAnalysis(s.ctx, 132, domain.PaymentFilter{})

	s.NoError(err)
	s.Len(breakdown, 3)
}

func (s *AnalyticsRepositorySuite) TestGetPaymentAnalysis_HourFilter() {
	hour := 8
	breakdown, err := s.repo.GetPaymentAnalysis(s.ctx, 132, domain.PaymentFilter{Hour: &hour})

	s.NoError(err)
	s.Require().Len(breakdown, 2)

	// Ordered by trip count descending
	s.Equal("Credit card", breakdown[0].PaymentMethod)
	s.Equal(int64(300), breakdown[0].NTrips)
	s.Equal("Cash", breakdown[1].PaymentMethod)
}

func TestAnalyticsRepositorySuite(t *testing.T) {
	suite.Run(t, new(AnalyticsRepositorySuite))
}
