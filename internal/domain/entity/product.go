package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de la distribuidora.
// El catálogo se administra fuera del motor de inventario; el ledger solo lo
// referencia por ID y usa UnitPrice y LowStockThreshold para valoración y alertas.
type Product struct {
	ID                int64
	Code              string // código único del producto
	Name              string
	UnitPrice         decimal.Decimal
	LowStockThreshold int64
	Active            bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
