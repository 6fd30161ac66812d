package validation

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// SanitizeText удаляет HTML разметку из свободного текста и обрезает пробелы по краям.
// bluemonday экранирует спецсимволы, поэтому сущности раскодируются обратно:
// в хранилище лежит обычный текст, а не HTML.
func SanitizeText(input string) string {
	cleaned := strictPolicy.Sanitize(input)
	return strings.TrimSpace(html.UnescapeString(cleaned))
}
