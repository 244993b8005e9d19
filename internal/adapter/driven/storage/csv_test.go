package storage

import (
	"testing"

	"github.com/moztelemetry/topline-dashboard-go/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeCSV(t *testing.T) {
	dataset := entity.ReportDataset{
		Columns: []string{"date", "geo", "channel", "os", "actives"},
		Rows: [][]string{
			{"2019-01-01", "FR", "all", "Windows", "8"},
			{"2019-01-01", "all", "all", "all", "8"},
		},
	}

	body, err := encodeCSV(dataset)
	require.NoError(t, err)

	want := "date,geo,channel,os,actives\n" +
		"2019-01-01,FR,all,Windows,8\n" +
		"2019-01-01,all,all,all,8\n"
	assert.Equal(t, want, string(body))
}

func TestEncodeCSVHeaderOnly(t *testing.T) {
	dataset := entity.ReportDataset{Columns: entity.HistoricalColumns}

	body, err := encodeCSV(dataset)
	require.NoError(t, err)

	// Mesmo sem linhas retidas o arquivo carrega o layout histórico completo.
	assert.Equal(t, "date,geo,channel,os,actives,hours,inactives,new_records,"+
		"five_of_seven,total_records,crashes,default,google,bing,yahoo,other,searches\n",
		string(body))
}
