package upstream

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalarDecoding(t *testing.T) {
	var row struct {
		ID     Text   `json:"id"`
		Null   Text   `json:"nulo"`
		Min    Number `json:"rango_min"`
		Max    Number `json:"rango_max"`
		Bad    Number `json:"malo"`
		Alerta Flag   `json:"alerta"`
		Rota   Flag   `json:"rota"`
		Absent Flag   `json:"ausente"`
	}
	body := `{"id": 42, "nulo": null, "rango_min": "-18.50", "rango_max": 4, "malo": "abc", "alerta": "true", "rota": 0}`
	require.NoError(t, json.Unmarshal([]byte(body), &row))

	assert.Equal(t, Text("42"), row.ID)
	assert.Equal(t, Text(""), row.Null)
	assert.Equal(t, Number{Value: -18.5, Valid: true}, row.Min)
	assert.Equal(t, 4.0, row.Max.Or(0))
	assert.False(t, row.Bad.Valid)
	assert.Equal(t, 9.0, row.Bad.Or(9))
	assert.True(t, row.Alerta.Value)
	assert.Equal(t, Flag{Value: false, Valid: true}, row.Rota)
	assert.False(t, row.Absent.Valid)
}

func TestScalarEncoding(t *testing.T) {
	out, err := json.Marshal(struct {
		Temp   Number `json:"temp"`
		Gone   Number `json:"gone"`
		Alerta Flag   `json:"alerta"`
		Absent Flag   `json:"absent"`
	}{
		Temp:   Number{Value: -3.5, Valid: true},
		Alerta: Flag{Value: true, Valid: true},
	})

	require.NoError(t, err)
	assert.JSONEq(t, `{"temp": -3.5, "gone": null, "alerta": true, "absent": null}`, string(out))
}
