package helpers

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/endeavored/classwatch/internal/pkg/models"
)

func record(t *testing.T, raw string) models.RawClassRecord {
	t.Helper()
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	var rec models.RawClassRecord
	require.NoError(t, dec.Decode(&rec))
	return rec
}

type searcherStub struct {
	records []models.RawClassRecord
	err     error
	params  []url.Values
}

func (s *searcherStub) SearchClasses(ctx context.Context, params url.Values) ([]models.RawClassRecord, error) {
	s.params = append(s.params, params)
	if s.err != nil {
		return nil, s.err
	}
	return s.records, nil
}
