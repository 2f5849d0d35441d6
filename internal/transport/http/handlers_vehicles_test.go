package httptransport

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"freshgo/internal/transport/http/mocks"
	"freshgo/internal/upstream"
	"freshgo/internal/upstream/telemetry"
)

//go:generate mockgen -source=handlers_vehicles.go -destination=mocks/vehicle-mocks.go -package=mocks ChainStatusReader

func newVehicleRouter(t *testing.T) (*mocks.MockChainStatusReader, chi.Router) {
	ctrl := gomock.NewController(t)
	reader := mocks.NewMockChainStatusReader(ctrl)
	r := chi.NewRouter()
	NewVehicleHandler(reader, slog.New(slog.NewTextHandler(io.Discard, nil))).Register(r)
	return reader, r
}

func TestChainStatusEndpoint(t *testing.T) {
	t.Run("returns the telemetry view - 200", func(t *testing.T) {
		reader, r := newVehicleRouter(t)
		reader.EXPECT().VehicleChainStatus(gomock.Any(), "V1").Return(upstream.Entity[telemetry.ChainStatusRecord]{
			Data: telemetry.ChainStatusRecord{
				VehiculoID:    upstream.Text("V1"),
				Matricula:     "1234-BCD",
				EstadoGeneral: "alerta",
				TotalZonas:    2,
				ZonasAlerta:   1,
				Zonas:         []telemetry.ZoneRecord{},
			},
		}, nil)

		status, body := getJSON(t, r, "/vehiculos/V1/estado-cadena")

		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "1234-BCD", body["matricula"])
		assert.Equal(t, "alerta", body["estado_general"])
		assert.EqualValues(t, 2, body["total_zonas"])
	})

	t.Run("unknown vehicle is a tagged 404 on the english alias", func(t *testing.T) {
		reader, r := newVehicleRouter(t)
		reader.EXPECT().VehicleChainStatus(gomock.Any(), "V9").Return(upstream.Entity[telemetry.ChainStatusRecord]{}, &upstream.Error{
			Service: "IoT",
			Op:      "estado-cadena",
			Status:  http.StatusNotFound,
			Code:    upstream.ErrorNotFound,
			Message: "Vehículo no encontrado",
		})

		status, body := getJSON(t, r, "/vehicles/V9/chain-status")

		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "IoT", body["servicio"])
		assert.Equal(t, "not_found", body["error"])
	})
}
