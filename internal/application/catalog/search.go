package catalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold baja a minúsculas y quita diacríticos, para que "Café" matchee
// con "cafe" al buscar artículos o clientes.
func Fold(s string) string {
	out, _, err := transform.String(foldTransformer, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}
	return out
}

// MatchesSearch indica si alguno de los campos contiene el término,
// ignorando mayúsculas y acentos.
func MatchesSearch(term string, fields ...string) bool {
	term = Fold(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	for _, f := range fields {
		if f == "" {
			continue
		}
		if strings.Contains(Fold(f), term) {
			return true
		}
	}
	return false
}
