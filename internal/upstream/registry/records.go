package registry

import (
	"encoding/json"

	"freshgo/internal/upstream"
)

// ClientRecord is a registry client row.
type ClientRecord struct {
	ID        upstream.Text `json:"id"`
	Nombre    string        `json:"nombre"`
	Email     string        `json:"email"`
	Direccion string        `json:"direccion"`
	Telefono  string        `json:"telefono"`
}

// OrderRecord is a registry order as it arrives on the wire. Older rows use
// snake_case ids, newer ones camelCase; both are decoded.
type OrderRecord struct {
	ID                upstream.Text    `json:"id"`
	ClienteID         upstream.Text    `json:"clienteId"`
	ClienteIDSnake    upstream.Text    `json:"cliente_id"`
	ProveedorID       upstream.Text    `json:"proveedorId"`
	ProveedorIDSnake  upstream.Text    `json:"proveedor_id"`
	Estado            string           `json:"estado"`
	FechaPedido       upstream.Text    `json:"fechaPedido"`
	FechaPedidoSnake  upstream.Text    `json:"fecha_pedido"`
	FechaEntrega      upstream.Text    `json:"fechaEntrega"`
	FechaEntregaSnake upstream.Text    `json:"fecha_entrega"`
	Productos         []LineItemRecord `json:"productos"`
}

// LineItemRecord is one product line of an order. Cantidad is kept raw since
// it may be a number, a numeric string or absent.
type LineItemRecord struct {
	ID         upstream.Text   `json:"id"`
	ProductoID upstream.Text   `json:"productoId"`
	Nombre     string          `json:"nombre"`
	Cantidad   json.RawMessage `json:"cantidad"`
}

// SupplierRecord is a registry supplier row.
type SupplierRecord struct {
	ID     upstream.Text `json:"id"`
	Nombre string        `json:"nombre"`
}

// DriverRecord is a registry driver row.
type DriverRecord struct {
	ID             upstream.Text `json:"id"`
	Nombre         string        `json:"nombre"`
	Disponibilidad upstream.Flag `json:"disponibilidad"`
}
