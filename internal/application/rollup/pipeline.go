package rollup

import (
	"runtime"

	"github.com/moztelemetry/topline-dashboard-go/internal/domain/entity"
)

// Pipeline é o motor de reformatação: normalização categórica, agregação em
// cubo sobre todas as combinações de dimensões, poda de agregados zerados e
// reconciliação com o schema histórico. Sem estado entre execuções e sem I/O;
// recebe um lote completo e devolve um lote completo.
type Pipeline struct {
	countries  map[string]struct{}
	aggregates []string
	columns    []string
	workers    int
}

// Stats carries per-stage row counts of one run, for the summary display.
type Stats struct {
	Input        int
	DroppedDates int
	CubeRows     int
	Output       int
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithCountries substitui a allow-list de países padrão.
func WithCountries(countries []string) Option {
	return func(p *Pipeline) {
		set := make(map[string]struct{}, len(countries))
		for _, c := range countries {
			set[c] = struct{}{}
		}
		p.countries = set
	}
}

// WithWorkers define o número de partições do reduce paralelo.
func WithWorkers(workers int) Option {
	return func(p *Pipeline) {
		if workers > 0 {
			p.workers = workers
		}
	}
}

// New creates a Pipeline bound to the topline input schema and the historical
// output schema.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		countries:  entity.Countries,
		aggregates: entity.ToplineAggregates,
		columns:    entity.HistoricalColumns,
		workers:    runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Reformat runs the full transform over one batch. The result is a function
// of the input multiset only: row order, partitioning and scheduling do not
// change the output (up to float accumulation order, see Cube).
func (p *Pipeline) Reformat(records []entity.SummaryRecord) (entity.ReportDataset, Stats) {
	stats := Stats{Input: len(records)}

	normalized, droppedDates := Normalize(records, p.countries)
	stats.DroppedDates = droppedDates

	cube := Cube(normalized, p.aggregates, p.workers)
	stats.CubeRows = len(cube)

	filtered := Filter(cube)

	dataset := Reconcile(filtered, p.columns)
	stats.Output = len(dataset.Rows)

	return dataset, stats
}
