package detail

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "freshgo/pkg/domain-errors"
)

func TestParseFilters(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		f, err := ParseFilters(url.Values{})
		require.NoError(t, err)
		assert.Equal(t, Filters{Limit: DefaultLimit, Page: DefaultPage}, f)
	})

	t.Run("english names", func(t *testing.T) {
		f, err := ParseFilters(url.Values{
			"sensorId": {"S1"}, "foodType": {"frozen"}, "status": {"alerta"},
			"from": {"2025-01-01T00:00:00Z"}, "to": {"2025-01-02T00:00:00Z"},
			"limit": {"20"}, "page": {"3"},
		})
		require.NoError(t, err)
		assert.Equal(t, Filters{
			SensorID: "S1", FoodType: "frozen", Status: "alerta",
			From: "2025-01-01T00:00:00Z", To: "2025-01-02T00:00:00Z",
			Limit: 20, Page: 3,
		}, f)
	})

	t.Run("spanish names", func(t *testing.T) {
		f, err := ParseFilters(url.Values{"tipoAlimento": {"congelado"}, "estado": {"critico"}})
		require.NoError(t, err)
		assert.Equal(t, "congelado", f.FoodType)
		assert.Equal(t, "critico", f.Status)
	})

	t.Run("clamps", func(t *testing.T) {
		cases := []struct {
			query     url.Values
			wantLimit int
			wantPage  int
		}{
			{url.Values{"limit": {"1000"}}, MaxLimit, 1},
			{url.Values{"pageSize": {"1000"}}, MaxLimit, 1},
			{url.Values{"limit": {"abc"}, "page": {"xyz"}}, DefaultLimit, DefaultPage},
			{url.Values{"limit": {"0"}, "page": {"0"}}, DefaultLimit, DefaultPage},
			{url.Values{"limit": {"-5"}, "page": {"-1"}}, DefaultLimit, DefaultPage},
			{url.Values{"limit": {"100"}, "page": {"2"}}, 100, 2},
		}
		for _, tc := range cases {
			f, err := ParseFilters(tc.query)
			require.NoError(t, err)
			assert.Equal(t, tc.wantLimit, f.Limit, "query %v", tc.query)
			assert.Equal(t, tc.wantPage, f.Page, "query %v", tc.query)
		}
	})

	t.Run("zone-less and date-only forms are accepted", func(t *testing.T) {
		_, err := ParseFilters(url.Values{"from": {"2025-01-01"}, "to": {"2025-01-01T12:30:00"}})
		assert.NoError(t, err)
	})

	t.Run("malformed date is a bad request", func(t *testing.T) {
		_, err := ParseFilters(url.Values{"from": {"yesterday"}})
		assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))

		_, err = ParseFilters(url.Values{"to": {"2025-13-40"}})
		assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))
	})

	t.Run("inverted range is a bad request", func(t *testing.T) {
		_, err := ParseFilters(url.Values{"from": {"2025-02-01"}, "to": {"2025-01-01"}})
		assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))
	})
}

func TestFiltersNormalized(t *testing.T) {
	f := Filters{Limit: 500, Page: -2}.Normalized()
	assert.Equal(t, MaxLimit, f.Limit)
	assert.Equal(t, DefaultPage, f.Page)
}
