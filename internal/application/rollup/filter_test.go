package rollup

import (
	"testing"

	"github.com/moztelemetry/topline-dashboard-go/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func TestFilterDropsWildcardDates(t *testing.T) {
	rows := []entity.CubeRow{
		{
			Key: entity.CubeKey{
				Geo: entity.Concrete("FR"), Channel: entity.Wildcard(),
				OS: entity.Wildcard(), Date: entity.Wildcard(),
			},
			Sums: map[string]float64{"actives": 10},
		},
		{
			Key: entity.CubeKey{
				Geo: entity.Concrete("FR"), Channel: entity.Wildcard(),
				OS: entity.Wildcard(), Date: entity.Concrete("2019-01-01"),
			},
			Sums: map[string]float64{"actives": 10},
		},
	}

	filtered := Filter(rows)

	assert.Len(t, filtered, 1)
	assert.False(t, filtered[0].Key.Date.IsWildcard())
}

func TestFilterDropsAllZeroRows(t *testing.T) {
	dated := entity.CubeKey{
		Geo: entity.Concrete("FR"), Channel: entity.Concrete("release"),
		OS: entity.Concrete("Windows"), Date: entity.Concrete("2019-01-01"),
	}
	rows := []entity.CubeRow{
		{Key: dated, Sums: map[string]float64{"actives": 0, "hours": 0}},
	}

	assert.Empty(t, Filter(rows))
}

func TestFilterKeepsRowsWithAnyPositiveField(t *testing.T) {
	dated := entity.CubeKey{
		Geo: entity.Concrete("FR"), Channel: entity.Concrete("release"),
		OS: entity.Concrete("Windows"), Date: entity.Concrete("2019-01-01"),
	}
	rows := []entity.CubeRow{
		{Key: dated, Sums: map[string]float64{"actives": 0, "hours": 0.5}},
	}

	filtered := Filter(rows)
	assert.Len(t, filtered, 1)
}
