package entity

// CubeKey is one assignment of {concrete value | wildcard} to every dimension
// of the cube. It is a comparable value type so the aggregator can use it
// directly as a map key during the grouped reduce.
type CubeKey struct {
	Geo     DimensionValue
	Channel DimensionValue
	OS      DimensionValue
	Date    DimensionValue
}

// CubeRow is one cell of the cube: a key plus the summed value of every
// aggregate field within that group.
type CubeRow struct {
	Key  CubeKey
	Sums map[string]float64
}

// Total devolve a soma de todos os campos agregados da linha. Linhas com
// total zero não carregam informação e são descartadas pelo filtro.
func (r CubeRow) Total() float64 {
	var total float64
	for _, v := range r.Sums {
		total += v
	}
	return total
}
