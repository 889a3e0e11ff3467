package entity

import "time"

// Tipos de ubicación física de stock.
const (
	LocationKindStore = "STORE" // bodega principal (única en el sistema)
	LocationKindVan   = "VAN"   // vehículo de reparto
)

// Location representa una ubicación física donde vive stock: la bodega
// principal o un vehículo de reparto. Se crea administrativamente y nunca se
// elimina; el resto del sistema solo la referencia.
// Invariante: existe exactamente una ubicación STORE (índice único parcial).
type Location struct {
	ID        int64
	Kind      string // STORE | VAN
	Name      string
	VanCode   string // código del vehículo; vacío para STORE
	CreatedAt time.Time
}

// IsStore indica si la ubicación es la bodega principal.
func (l *Location) IsStore() bool { return l.Kind == LocationKindStore }

// IsVan indica si la ubicación es un vehículo de reparto.
func (l *Location) IsVan() bool { return l.Kind == LocationKindVan }
