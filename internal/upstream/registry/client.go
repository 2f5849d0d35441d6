// Package registry is the client for the customer/order registry (CRM).
// Client, order, supplier and driver lookups are cached; free-text client
// listings are not.
package registry

import (
	"context"
	"net/url"
	"strconv"

	"freshgo/internal/cache"
	"freshgo/internal/upstream"
)

const (
	// ServiceName tags errors raised by this client.
	ServiceName = "CRM"
	namespace   = "crm"

	// MaxPageSize is the largest page the registry will serve.
	MaxPageSize = 100
	// maxOrderPages bounds ListAllOrders against a registry that misreports total.
	maxOrderPages = 500
)

// ClientFilters narrows ListClients.
type ClientFilters struct {
	Query    string
	Page     int
	PageSize int
}

// OrderFilters narrows ListOrders.
type OrderFilters struct {
	ClientID string
	Status   string
	Page     int
	PageSize int
}

// DriverFilters narrows ListDrivers.
type DriverFilters struct {
	Available *bool
}

// Client reads from the registry.
type Client struct {
	core *upstream.Client
}

// New creates a registry client against baseURL.
func New(cfg upstream.Config, store cache.Store, opts ...upstream.Option) *Client {
	cfg.Service = ServiceName
	cfg.Namespace = namespace
	return &Client{core: upstream.New(cfg, store, opts...)}
}

// GetClient fetches one client by id.
func (c *Client) GetClient(ctx context.Context, id string) (upstream.Entity[ClientRecord], error) {
	return upstream.FetchEntity[ClientRecord](ctx, c.core, "cliente:"+id, "/clientes/"+url.PathEscape(id), true)
}

// ListClients searches clients. Not cached since q is free text.
func (c *Client) ListClients(ctx context.Context, f ClientFilters) (upstream.Page[ClientRecord], error) {
	q := url.Values{}
	q.Set("q", f.Query)
	setInt(q, "page", f.Page)
	setInt(q, "pageSize", f.PageSize)
	return upstream.FetchPage[ClientRecord](ctx, c.core, "clientes", "/clientes", q, false)
}

// ListOrders fetches one page of orders.
func (c *Client) ListOrders(ctx context.Context, f OrderFilters) (upstream.Page[OrderRecord], error) {
	q := url.Values{}
	q.Set("clienteId", f.ClientID)
	q.Set("estado", f.Status)
	setInt(q, "page", f.Page)
	setInt(q, "pageSize", f.PageSize)
	return upstream.FetchPage[OrderRecord](ctx, c.core, "pedidos", "/pedidos", q, true)
}

// ListAllOrders walks every registry page of a client's orders. The registry
// caps page size, so a single call is not enough for large clients.
func (c *Client) ListAllOrders(ctx context.Context, clientID string) (upstream.Page[OrderRecord], error) {
	all := upstream.Page[OrderRecord]{Data: []OrderRecord{}, FromCache: true}
	for page := 1; page <= maxOrderPages; page++ {
		res, err := c.ListOrders(ctx, OrderFilters{ClientID: clientID, Page: page, PageSize: MaxPageSize})
		if err != nil {
			return upstream.Page[OrderRecord]{}, err
		}
		all.Data = append(all.Data, res.Data...)
		all.Total = res.Total
		all.FromCache = all.FromCache && res.FromCache
		if len(res.Data) == 0 || len(all.Data) >= res.Total {
			break
		}
	}
	all.Total = len(all.Data)
	return all, nil
}

// GetOrder fetches one order by id.
func (c *Client) GetOrder(ctx context.Context, id string) (upstream.Entity[OrderRecord], error) {
	return upstream.FetchEntity[OrderRecord](ctx, c.core, "pedido:"+id, "/pedidos/"+url.PathEscape(id), true)
}

// ListSuppliers fetches every supplier.
func (c *Client) ListSuppliers(ctx context.Context) (upstream.Page[SupplierRecord], error) {
	return upstream.FetchPage[SupplierRecord](ctx, c.core, "proveedores", "/proveedores", nil, true)
}

// GetSupplier fetches one supplier by id.
func (c *Client) GetSupplier(ctx context.Context, id string) (upstream.Entity[SupplierRecord], error) {
	return upstream.FetchEntity[SupplierRecord](ctx, c.core, "proveedor:"+id, "/proveedores/"+url.PathEscape(id), true)
}

// ListDrivers fetches drivers, optionally by availability.
func (c *Client) ListDrivers(ctx context.Context, f DriverFilters) (upstream.Page[DriverRecord], error) {
	q := url.Values{}
	if f.Available != nil {
		q.Set("disponibilidad", strconv.FormatBool(*f.Available))
	}
	return upstream.FetchPage[DriverRecord](ctx, c.core, "conductores", "/conductores", q, true)
}

// GetDriver fetches one driver by id.
func (c *Client) GetDriver(ctx context.Context, id string) (upstream.Entity[DriverRecord], error) {
	return upstream.FetchEntity[DriverRecord](ctx, c.core, "conductor:"+id, "/conductores/"+url.PathEscape(id), true)
}

// Health probes the registry.
func (c *Client) Health(ctx context.Context) (upstream.HealthStatus, error) {
	return c.core.Health(ctx)
}

// Invalidate drops cached registry entries whose key starts with
// "crm:<prefix>".
func (c *Client) Invalidate(ctx context.Context, prefix string) (int, error) {
	return c.core.Invalidate(ctx, prefix)
}

// Namespace returns the cache key namespace of this client.
func (c *Client) Namespace() string {
	return c.core.Namespace()
}

// Service returns "CRM".
func (c *Client) Service() string {
	return ServiceName
}

func setInt(q url.Values, key string, v int) {
	if v > 0 {
		q.Set(key, strconv.Itoa(v))
	}
}
