package entity

// WildcardToken is the legacy serialization of the wildcard marker in the
// historical dashboard dataset.
const WildcardToken = "all"

// Countries é a allow-list fixa de códigos de país do relatório: resultados
// são limitados a estes 16 países e todo o resto vira o balde "Other".
var Countries = map[string]struct{}{
	"US": {}, "CA": {}, "BR": {}, "MX": {},
	"FR": {}, "ES": {}, "IT": {}, "PL": {},
	"TR": {}, "RU": {}, "DE": {}, "IN": {},
	"ID": {}, "CN": {}, "JP": {}, "GB": {},
}

// OtherBucket is the catch-all region for countries outside the allow-list.
const OtherBucket = "Other"

// ToplineAttributes are the categorical fields of the input schema. Together
// with the normalized date they form the dimension set of the cube.
var ToplineAttributes = []string{"geo", "channel", "os"}

// ToplineAggregates are the numeric aggregate fields of the topline summary
// dataset, in schema order. Every field is summed independently by the cube.
var ToplineAggregates = []string{
	"hours",
	"crashes",
	"google",
	"bing",
	"yahoo",
	"other",
	"actives",
	"new_records",
	"default",
	"five_of_seven",
	"total_records",
	"inactives",
}

// HistoricalColumns is the fixed column layout of the historical dashboard
// dataset (v4-weekly.csv / v4-monthly.csv). The output reproduces exactly this
// set and order. `searches` survives from an earlier dashboard version but has no
// counterpart in the topline summary, so it is zero-filled for every row.
var HistoricalColumns = []string{
	"date",
	"geo",
	"channel",
	"os",
	"actives",
	"hours",
	"inactives",
	"new_records",
	"five_of_seven",
	"total_records",
	"crashes",
	"default",
	"google",
	"bing",
	"yahoo",
	"other",
	"searches",
}

// IsAttribute reports whether the given historical column is one of the
// categorical dimension columns (as opposed to a numeric aggregate).
func IsAttribute(column string) bool {
	switch column {
	case "date", "geo", "channel", "os":
		return true
	}
	return false
}
