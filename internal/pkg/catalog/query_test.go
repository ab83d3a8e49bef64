package catalog

import (
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/endeavored/classwatch/internal/pkg/apperrors"
	"github.com/endeavored/classwatch/internal/pkg/models"
)

func TestParseClassQuery(t *testing.T) {
	q, err := ParseClassQuery("  cse   476 ", "2257")
	require.NoError(t, err)
	assert.Equal(t, models.ClassQuery{Subject: "CSE", CatalogNumber: "476", Term: "2257"}, q)
	assert.Equal(t, "CSE 476", q.ClassName())
}

func TestParseClassQueryFormatError(t *testing.T) {
	for _, identifier := range []string{"CSE476", "", "   "} {
		_, err := ParseClassQuery(identifier, "2257")
		require.Error(t, err, identifier)
		assert.True(t, errors.Is(err, apperrors.ErrInvalidFormat))
	}

	_, err := ParseClassQuery("CSE476", "2257")
	assert.EqualError(t, err, "Invalid format for 'CSE476'. Use 'SUBJECT NUMBER'.")
}

func TestDetailParams(t *testing.T) {
	q := models.ClassQuery{Subject: "CSE", CatalogNumber: "476", Term: "2257"}
	assert.Equal(t, "catalogNbr=476&refine=Y&searchType=all&subject=CSE&term=2257", DetailParams(q).Encode())
}

func TestAlertParams(t *testing.T) {
	q := models.ClassQuery{Subject: "CSE", CatalogNumber: "476", Term: "2257"}
	p := AlertParams(q)
	assert.Equal(t, "A", p.Get("campusOrOnlineSelection"))
	assert.Equal(t, "F", p.Get("honors"))
	assert.Equal(t, "F", p.Get("promod"))
	assert.Equal(t, "Y", p.Get("refine"))
	assert.Equal(t, "all", p.Get("searchType"))
	assert.Len(t, p, 8)
}

func TestBuildURL(t *testing.T) {
	params := url.Values{"subject": {"C&S"}}
	assert.Equal(t, "https://x/search?subject=C%26S", BuildURL("https://x/search", params))
	assert.Equal(t, "https://x/search?a=1&subject=C%26S", BuildURL("https://x/search?a=1", params))
	assert.Equal(t, "https://x/search", BuildURL("https://x/search", nil))
}

func TestTermName(t *testing.T) {
	assert.Equal(t, "Fall 2025", TermName("2257"))
	assert.Equal(t, "Spring 2026", TermName("2261"))
	assert.Equal(t, "Summer 2026", TermName("2264"))
	assert.Equal(t, "Term 2259", TermName("2259"))
	assert.Equal(t, "Term abc", TermName("abc"))
}
