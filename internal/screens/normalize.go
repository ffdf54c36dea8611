package screens

import (
	"strings"
	"unicode"

	"github.com/gdg-garage/hotel-admin/internal/models"
	"github.com/samber/lo"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeNationality maps a stored nationality onto the catalog: the exact
// value, then the upper-cased value with spaces as underscores, then a label
// match ignoring case and accents. Unmatched values are returned unchanged.
func NormalizeNationality(incoming string) string {
	if incoming == "" {
		return ""
	}
	if models.Nationalities.Has(incoming) {
		return incoming
	}

	underscored := strings.Join(strings.Fields(strings.ToUpper(incoming)), "_")
	if models.Nationalities.Has(underscored) {
		return underscored
	}

	key := foldKey(incoming)
	code, ok := lo.Find(models.Nationalities.Codes(), func(c models.Code) bool {
		return foldKey(c.Label) == key || foldKey(c.Name) == foldKey(underscored)
	})
	if ok {
		return code.Name
	}
	return incoming
}

// foldKey upper-cases s and strips its diacritics.
func foldKey(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, strings.TrimSpace(s))
	if err != nil {
		folded = s
	}
	return strings.ToUpper(folded)
}
