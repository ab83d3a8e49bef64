package helpers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/endeavored/classwatch/internal/pkg/apperrors"
	"github.com/endeavored/classwatch/internal/pkg/catalog"
	"github.com/endeavored/classwatch/internal/pkg/models"
)

const defaultInstructor = "Staff"

// ClassSearcher runs one catalog search. *catalog.Client implements it.
type ClassSearcher interface {
	SearchClasses(ctx context.Context, params url.Values) ([]models.RawClassRecord, error)
}

// FetchClassDetails looks up every section of identifier ("CSE 476") in term.
// A bad identifier or a failed request comes back as an *apperrors.Error; an
// unknown class and a class with no sections both give an empty slice.
func FetchClassDetails(ctx context.Context, s ClassSearcher, identifier, term string) ([]models.ClassSummary, error) {
	q, err := catalog.ParseClassQuery(identifier, term)
	if err != nil {
		return nil, err
	}
	return FetchQueryDetails(ctx, s, q, identifier)
}

// FetchQueryDetails is FetchClassDetails for an already parsed query. label
// names the class in error messages.
func FetchQueryDetails(ctx context.Context, s ClassSearcher, q models.ClassQuery, label string) ([]models.ClassSummary, error) {
	records, err := s.SearchClasses(ctx, catalog.DetailParams(q))
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCatalogUnavailable.Code, http.StatusBadGateway,
			fmt.Sprintf("API Error for %s", label))
	}

	summaries := make([]models.ClassSummary, 0, len(records))
	for _, rec := range records {
		summaries = append(summaries, BuildSummary(q, rec))
	}
	return summaries, nil
}

// BuildSummary derives the display fields for one section.
func BuildSummary(q models.ClassQuery, rec models.RawClassRecord) models.ClassSummary {
	return models.ClassSummary{
		ClassName:            q.ClassName(),
		ClassNumber:          rec.String("CLASSNBR"),
		Title:                rec.String("TITLE"),
		Status:               SeatStatus(rec),
		Seats:                fmt.Sprintf("%s / %s", rec.StringOr("ENRLTOT", "0"), rec.StringOr("ENRLCAP", "0")),
		Instructor:           instructors(rec),
		Schedule:             FullSchedule(rec),
		ScheduleAbbreviation: ScheduleAbbreviation(rec),
	}
}

// SeatStatus is OPEN iff enrolled < capacity; non-numeric counts read as 0.
func SeatStatus(rec models.RawClassRecord) models.Status {
	if rec.Int("ENRLTOT") < rec.Int("ENRLCAP") {
		return models.StatusOpen
	}
	return models.StatusFull
}

func instructors(rec models.RawClassRecord) string {
	names := rec.Strings("INSTRUCTORSLIST")
	if len(names) == 0 {
		return defaultInstructor
	}
	return strings.Join(names, ", ")
}
