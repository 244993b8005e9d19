package entity

// DimensionValue é o valor de uma dimensão categórica em uma linha do cubo:
// ou um valor concreto, ou o marcador de wildcard ("agregado sobre todos os
// valores desta dimensão"). O wildcard é um valor próprio do tipo, nunca a
// string "all" — um país ou canal literalmente chamado "all" não colide com ele.
// A serialização para o token legado acontece apenas na borda de saída.
type DimensionValue struct {
	value    string
	wildcard bool
}

// Concrete creates a dimension value holding a concrete category.
func Concrete(value string) DimensionValue {
	return DimensionValue{value: value}
}

// Wildcard creates the marker meaning "aggregated over all values".
func Wildcard() DimensionValue {
	return DimensionValue{wildcard: true}
}

// IsWildcard reports whether the value is the wildcard marker.
func (d DimensionValue) IsWildcard() bool {
	return d.wildcard
}

// Value returns the concrete category. It is only meaningful when
// IsWildcard reports false; for a wildcard it returns the empty string.
func (d DimensionValue) Value() string {
	if d.wildcard {
		return ""
	}
	return d.value
}

// Render serializes the value for the output boundary, substituting the
// given token for the wildcard marker.
func (d DimensionValue) Render(wildcardToken string) string {
	if d.wildcard {
		return wildcardToken
	}
	return d.value
}
