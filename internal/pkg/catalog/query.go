package catalog

import (
	"net/url"
	"strings"

	"github.com/endeavored/classwatch/internal/pkg/apperrors"
	"github.com/endeavored/classwatch/internal/pkg/models"
)

// ParseClassQuery splits "cse 476" into subject CSE and catalog number 476.
func ParseClassQuery(identifier, term string) (models.ClassQuery, error) {
	parts := strings.Fields(strings.ToUpper(identifier))
	if len(parts) < 2 {
		return models.ClassQuery{}, apperrors.FormatError(identifier)
	}
	return models.ClassQuery{Subject: parts[0], CatalogNumber: parts[1], Term: term}, nil
}

// DetailParams is the search used for the class detail lookup.
func DetailParams(q models.ClassQuery) url.Values {
	return url.Values{
		"refine":     {"Y"},
		"searchType": {"all"},
		"subject":    {q.Subject},
		"catalogNbr": {q.CatalogNumber},
		"term":       {q.Term},
	}
}

// AlertParams is the search used by the alert checker. It asks for every
// campus and excludes honors and pro-mod sections.
func AlertParams(q models.ClassQuery) url.Values {
	return url.Values{
		"refine":                  {"Y"},
		"campusOrOnlineSelection": {"A"},
		"catalogNbr":              {q.CatalogNumber},
		"honors":                  {"F"},
		"promod":                  {"F"},
		"searchType":              {"all"},
		"subject":                 {q.Subject},
		"term":                    {q.Term},
	}
}

func BuildURL(base string, params url.Values) string {
	if len(params) == 0 {
		return base
	}
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return base + sep + params.Encode()
}
