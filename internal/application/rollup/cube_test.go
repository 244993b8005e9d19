package rollup

import (
	"testing"

	"github.com/moztelemetry/topline-dashboard-go/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testAggregates = []string{"actives", "hours"}

func record(geo, channel, os, date string, actives, hours float64) entity.SummaryRecord {
	return entity.SummaryRecord{
		Geo:     geo,
		Channel: channel,
		OS:      os,
		Date:    date,
		Aggregates: map[string]float64{
			"actives": actives,
			"hours":   hours,
		},
	}
}

func findRow(t *testing.T, rows []entity.CubeRow, key entity.CubeKey) entity.CubeRow {
	t.Helper()
	for _, row := range rows {
		if row.Key == key {
			return row
		}
	}
	t.Fatalf("cube row not found for key %+v", key)
	return entity.CubeRow{}
}

func TestCubeSingleRecordProducesAllSubsets(t *testing.T) {
	rows := Cube([]entity.SummaryRecord{
		record("FR", "release", "Windows", "2019-01-01", 5, 10),
	}, testAggregates, 1)

	// Um registro gera uma célula para cada um dos 2^4 subconjuntos.
	assert.Len(t, rows, 16)

	for _, row := range rows {
		assert.Equal(t, 5.0, row.Sums["actives"])
		assert.Equal(t, 10.0, row.Sums["hours"])
	}
}

func TestCubeGroupsAndSums(t *testing.T) {
	rows := Cube([]entity.SummaryRecord{
		record("FR", "release", "Windows", "2019-01-01", 5, 10),
		record("FR", "beta", "Windows", "2019-01-01", 3, 4),
	}, testAggregates, 1)

	// Wildcard sobre channel: os dois canais somados.
	channelAll := findRow(t, rows, entity.CubeKey{
		Geo:     entity.Concrete("FR"),
		Channel: entity.Wildcard(),
		OS:      entity.Concrete("Windows"),
		Date:    entity.Concrete("2019-01-01"),
	})
	assert.Equal(t, 8.0, channelAll.Sums["actives"])
	assert.Equal(t, 14.0, channelAll.Sums["hours"])

	// Célula totalmente concreta: apenas o canal release.
	concrete := findRow(t, rows, entity.CubeKey{
		Geo:     entity.Concrete("FR"),
		Channel: entity.Concrete("release"),
		OS:      entity.Concrete("Windows"),
		Date:    entity.Concrete("2019-01-01"),
	})
	assert.Equal(t, 5.0, concrete.Sums["actives"])

	// Totalmente wildcard: o lote inteiro.
	grandTotal := findRow(t, rows, entity.CubeKey{
		Geo:     entity.Wildcard(),
		Channel: entity.Wildcard(),
		OS:      entity.Wildcard(),
		Date:    entity.Wildcard(),
	})
	assert.Equal(t, 8.0, grandTotal.Sums["actives"])
	assert.Equal(t, 14.0, grandTotal.Sums["hours"])
}

func TestCubeExcludesRecordsWithoutDate(t *testing.T) {
	rows := Cube([]entity.SummaryRecord{
		record("FR", "release", "Windows", "2019-01-01", 5, 10),
		record("DE", "release", "Linux", "", 100, 100),
	}, testAggregates, 2)

	// O registro sem data não contribui para nenhum agrupamento, nem mesmo
	// para o total geral.
	grandTotal := findRow(t, rows, entity.CubeKey{
		Geo:     entity.Wildcard(),
		Channel: entity.Wildcard(),
		OS:      entity.Wildcard(),
		Date:    entity.Wildcard(),
	})
	assert.Equal(t, 5.0, grandTotal.Sums["actives"])

	for _, row := range rows {
		if !row.Key.Geo.IsWildcard() {
			assert.NotEqual(t, "DE", row.Key.Geo.Value())
		}
	}
}

func TestCubeEmptyBatch(t *testing.T) {
	assert.Empty(t, Cube(nil, testAggregates, 4))
	assert.Empty(t, Cube([]entity.SummaryRecord{
		record("FR", "release", "Windows", "", 1, 1),
	}, testAggregates, 4))
}

func TestCubeMissingAggregateFieldSumsAsZero(t *testing.T) {
	rec := record("FR", "release", "Windows", "2019-01-01", 5, 10)
	delete(rec.Aggregates, "hours")

	rows := Cube([]entity.SummaryRecord{rec}, testAggregates, 1)
	require.NotEmpty(t, rows)
	assert.Equal(t, 0.0, rows[0].Sums["hours"])
}

func TestCubeResultIndependentOfWorkerCount(t *testing.T) {
	records := []entity.SummaryRecord{
		record("FR", "release", "Windows", "2019-01-01", 5, 10),
		record("FR", "beta", "Windows", "2019-01-01", 3, 4),
		record("DE", "release", "Linux", "2019-01-01", 7, 2),
		record("DE", "release", "Linux", "2019-01-08", 1, 1),
		record("Other", "nightly", "Darwin", "2019-01-08", 2, 6),
	}

	toMap := func(rows []entity.CubeRow) map[entity.CubeKey]map[string]float64 {
		m := make(map[entity.CubeKey]map[string]float64, len(rows))
		for _, row := range rows {
			m[row.Key] = row.Sums
		}
		return m
	}

	sequential := toMap(Cube(records, testAggregates, 1))
	for _, workers := range []int{2, 3, 8, 64} {
		assert.Equal(t, sequential, toMap(Cube(records, testAggregates, workers)),
			"workers=%d must not change the cube", workers)
	}
}
