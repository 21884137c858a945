package client

import "github.com/kochabx/formkit/core/listing"

// Producto is a catalog item as returned by the backend.
type Producto struct {
	ID            int64   `json:"id"`
	Nombre        string  `json:"nombre"`
	Descripcion   string  `json:"descripcion"`
	PrecioCompra  float64 `json:"precioCompra"`
	PrecioVenta   float64 `json:"precioVenta"`
	Stock         int     `json:"stock"`
	Categoria     string  `json:"categoria"`
	FechaRegistro string  `json:"fechaRegistro"`
	Estado        bool    `json:"estado"`
}

// ProductoRequest creates or replaces a product.
type ProductoRequest struct {
	Nombre       string   `json:"nombre" validate:"required"`
	Descripcion  string   `json:"descripcion"`
	PrecioCompra *float64 `json:"precioCompra" validate:"required,gt=0"`
	PrecioVenta  *float64 `json:"precioVenta" validate:"required,gt=0"`
	Stock        *int     `json:"stock" validate:"required,gte=0"`
	Categoria    string   `json:"categoria" validate:"required"`
}

// EntradaRequest adds stock to one product.
type EntradaRequest struct {
	Cantidad    *int    `json:"cantidad" validate:"required,gt=0"`
	Observacion *string `json:"observacion,omitempty"`
}

// EntradaProductoRequest is one line of a bulk stock entry.
type EntradaProductoRequest struct {
	ProductoID  *int64  `json:"productoId" validate:"required"`
	Cantidad    *int    `json:"cantidad" validate:"required,gt=0"`
	Observacion *string `json:"observacion,omitempty"`
}

// EntradaMasivaRequest adds stock to several products at once.
type EntradaMasivaRequest struct {
	Movimientos []EntradaProductoRequest `json:"movimientos" validate:"required,min=1,dive"`
}

// MovimientoTipo is the direction of a stock movement.
type MovimientoTipo string

const (
	MovimientoIngreso MovimientoTipo = "INGRESO"
	MovimientoSalida  MovimientoTipo = "SALIDA"
)

// Movimiento is a stock movement.
type Movimiento struct {
	ID              int64          `json:"id"`
	ProductoID      int64          `json:"productoId"`
	ProductoNombre  string         `json:"productoNombre"`
	Cantidad        int            `json:"cantidad"`
	Tipo            MovimientoTipo `json:"tipo"`
	FechaMovimiento string         `json:"fechaMovimiento"`
	Observacion     *string        `json:"observacion"`
}

// MovimientoUpdateRequest corrects a movement.
type MovimientoUpdateRequest struct {
	Cantidad    *int    `json:"cantidad" validate:"required"`
	Observacion *string `json:"observacion,omitempty" validate:"omitempty,max=500"`
}

// DetalleVentaRequest is one sale line.
type DetalleVentaRequest struct {
	ProductoID *int64 `json:"productoId" validate:"required"`
	Cantidad   *int   `json:"cantidad" validate:"required,gt=0"`
}

// VentaRequest creates or replaces a sale.
type VentaRequest struct {
	MetodoPago string                `json:"metodoPago" validate:"required"`
	Detalles   []DetalleVentaRequest `json:"detalles" validate:"required,min=1,dive"`
}

// DetalleVenta is a recorded sale line.
type DetalleVenta struct {
	ID             int64   `json:"id"`
	ProductoID     int64   `json:"productoId"`
	ProductoNombre string  `json:"productoNombre"`
	Cantidad       int     `json:"cantidad"`
	PrecioUnitario float64 `json:"precioUnitario"`
	Subtotal       float64 `json:"subtotal"`
	Fecha          string  `json:"fecha"`
}

// Venta is a recorded sale.
type Venta struct {
	ID         int64          `json:"id"`
	Fecha      string         `json:"fecha"`
	MetodoPago string         `json:"metodoPago"`
	Total      float64        `json:"total"`
	Detalles   []DetalleVenta `json:"detalles,omitempty"`
}

// SalesPage is a page of sales plus the grand total of the filtered set.
type SalesPage struct {
	Ventas       listing.Page[Venta] `json:"ventas"`
	TotalGeneral float64             `json:"totalGeneral"`
}

// Gasto is an expense.
type Gasto struct {
	ID          int64   `json:"id"`
	Monto       float64 `json:"monto"`
	Descripcion string  `json:"descripcion"`
	Fecha       string  `json:"fecha"`
}

// GastoRequest creates or replaces an expense.
type GastoRequest struct {
	Monto       *float64 `json:"monto" validate:"required,gt=0"`
	Descripcion string   `json:"descripcion" validate:"required,max=500"`
}

// ProductoNombre is an id/name pair offered in filter pickers.
type ProductoNombre struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
}

// Filtros are the options for the listing filters.
type Filtros struct {
	NombresProductos    []ProductoNombre `json:"nombresProductos"`
	CategoriasProductos []string         `json:"categoriasProductos"`
}
