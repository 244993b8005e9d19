package rollup

import (
	"sync"

	"github.com/moztelemetry/topline-dashboard-go/internal/domain/entity"
)

// Máscaras de bits sobre o conjunto de dimensões {geo, channel, os, date}.
// Cada uma das 2^4 máscaras é um subconjunto: bit ligado mantém o valor
// concreto da dimensão, bit desligado colapsa a dimensão no wildcard.
const (
	maskGeo = 1 << iota
	maskChannel
	maskOS
	maskDate

	maskCount = 1 << 4
)

// partialSums acumula somas por chave de grupo para uma partição do lote.
// Os valores são indexados pela ordem do slice de campos agregados, o que
// torna a mesclagem entre partições uma soma posição a posição.
type partialSums map[entity.CubeKey][]float64

// Cube computes the full cube over the normalized batch: for every subset of
// {geo, channel, os, date} it groups the records by the subset's concrete
// values (all other dimensions wildcarded) and sums every aggregate field
// within the group. Records without a concrete date are excluded from every
// grouping. Empty groups do not produce rows.
//
// The reduce is partitioned across `workers` goroutines; per-partition partial
// sums are merged by key. Addition over float64 is commutative but not exactly
// associative, so merge order may perturb the last ulp of a sum. The cube is
// returned as an unordered set of rows.
func Cube(records []entity.SummaryRecord, aggregates []string, workers int) []entity.CubeRow {
	// Linhas sem data concreta não contribuem para nenhuma linha de saída;
	// excluí-las aqui evita carregar o invariante pelos estágios seguintes.
	dated := make([]entity.SummaryRecord, 0, len(records))
	for _, rec := range records {
		if rec.Date != "" {
			dated = append(dated, rec)
		}
	}

	if workers < 1 {
		workers = 1
	}
	if workers > len(dated) {
		workers = len(dated)
	}
	if len(dated) == 0 {
		return nil
	}

	// Reduce paralelo: cada worker soma sua partição em um mapa próprio,
	// sem estado compartilhado além do slice de resultados.
	partials := make([]partialSums, workers)
	var wg sync.WaitGroup
	chunk := (len(dated) + workers - 1) / workers
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := start + chunk
		if end > len(dated) {
			end = len(dated)
		}
		wg.Add(1)
		go func(w int, part []entity.SummaryRecord) {
			defer wg.Done()
			partials[w] = cubePartition(part, aggregates)
		}(w, dated[start:end])
	}
	wg.Wait()

	// Mesclagem por chave: soma é comutativa e associativa (módulo a ordem de
	// acumulação em ponto flutuante), então o número de partições não altera
	// o resultado.
	merged := make(partialSums)
	for _, partial := range partials {
		for key, sums := range partial {
			acc, ok := merged[key]
			if !ok {
				acc = make([]float64, len(aggregates))
				merged[key] = acc
			}
			for i, v := range sums {
				acc[i] += v
			}
		}
	}

	rows := make([]entity.CubeRow, 0, len(merged))
	for key, sums := range merged {
		fields := make(map[string]float64, len(aggregates))
		for i, name := range aggregates {
			fields[name] = sums[i]
		}
		rows = append(rows, entity.CubeRow{Key: key, Sums: fields})
	}
	return rows
}

// cubePartition computes the partial sums of one partition: every record
// contributes once to each of the 16 subset groupings.
func cubePartition(records []entity.SummaryRecord, aggregates []string) partialSums {
	partial := make(partialSums)
	for _, rec := range records {
		for mask := 0; mask < maskCount; mask++ {
			key := cubeKey(rec, mask)
			acc, ok := partial[key]
			if !ok {
				acc = make([]float64, len(aggregates))
				partial[key] = acc
			}
			for i, name := range aggregates {
				acc[i] += rec.Aggregates[name]
			}
		}
	}
	return partial
}

// cubeKey projeta um registro na chave de grupo do subconjunto `mask`.
func cubeKey(rec entity.SummaryRecord, mask int) entity.CubeKey {
	key := entity.CubeKey{
		Geo:     entity.Wildcard(),
		Channel: entity.Wildcard(),
		OS:      entity.Wildcard(),
		Date:    entity.Wildcard(),
	}
	if mask&maskGeo != 0 {
		key.Geo = entity.Concrete(rec.Geo)
	}
	if mask&maskChannel != 0 {
		key.Channel = entity.Concrete(rec.Channel)
	}
	if mask&maskOS != 0 {
		key.OS = entity.Concrete(rec.OS)
	}
	if mask&maskDate != 0 {
		key.Date = entity.Concrete(rec.Date)
	}
	return key
}
