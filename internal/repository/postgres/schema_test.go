package postgres

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTables(t *testing.T) {
	got := Tables()

	require.Len(t, got, 6)
	names := make([]string, len(got))
	for i, tbl := range got {
		names[i] = tbl.Name
	}
	assert.Equal(t, []string{
		TableDemandHeatmap,
		TableTipTrends,
		TableFareAnomalies,
		TableTripPerformance,
		TablePopularRoutes,
		TablePaymentAnalysis,
	}, names)
}

func TestLookupTable(t *testing.T) {
	for _, tbl := range Tables() {
		found, ok := LookupTable(tbl.Name)
		assert.True(t, ok)
		assert.Equal(t, tbl.Name, found.Name)
	}

	_, ok := LookupTable("planet_osm_polygon")
	assert.False(t, ok)
}

func TestTableHasColumn(t *testing.T) {
	tbl, ok := LookupTable(TableTipTrends)
	require.True(t, ok)

	assert.True(t, tbl.HasColumn("PULocationID"))
	assert.True(t, tbl.HasColumn("avg_tip_pct"))
	assert.False(t, tbl.HasColumn("pulocationid"))
	assert.False(t, tbl.HasColumn("fare_amount"))
}

func TestCreateStatement(t *testing.T) {
	t.Run("demand heatmap renders quoted mixed-case identifiers", func(t *testing.T) {
		tbl, ok := LookupTable(TableDemandHeatmap)
		require.True(t, ok)

		assert.Equal(t,
			`CREATE TABLE IF NOT EXISTS demand_heatmap ("PULocationID" integer, "pickup_hour" integer, "n_trips" bigint)`,
			tbl.CreateStatement(),
		)
	})

	t.Run("every statement is idempotent and constraint-free", func(t *testing.T) {
		// Логические ключи намеренно не транслируются в DDL: фактическая
		// гранулярность данных шире объявленных ключей
		for _, tbl := range Tables() {
			stmt := tbl.CreateStatement()

			assert.True(t, strings.HasPrefix(stmt, "CREATE TABLE IF NOT EXISTS "+tbl.Name+" ("), stmt)
			assert.NotContains(t, stmt, "PRIMARY KEY")
			assert.NotContains(t, stmt, "NOT NULL")
			assert.NotContains(t, stmt, "UNIQUE")
			assert.NotContains(t, stmt, "REFERENCES")
		}
	})

	t.Run("statements cover every declared column", func(t *testing.T) {
		for _, tbl := range Tables() {
			stmt := tbl.CreateStatement()
			for _, col := range tbl.Columns {
				assert.Contains(t, stmt, `"`+col.Name+`" `+col.Type)
			}
		}
	})
}

func TestQuoteIdent(t *testing.T) {
	assert.Equal(t, `"PULocationID"`, quoteIdent("PULocationID"))
	assert.Equal(t, `"n_trips"`, quoteIdent("n_trips"))
	assert.Equal(t, `"we""ird"`, quoteIdent(`we"ird`))
}
