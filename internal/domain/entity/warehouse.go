package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Warehouse representa una bodega o almacén perteneciente a un negocio.
type Warehouse struct {
	ID              int
	Name            string
	Address         string
	BusinessID      int
	Capacity        int    // m²
	LocationType    string // Urbano o Industrial
	ManagerName     string
	OperationalCost decimal.Decimal // costo mensual estimado en COP
	CreatedAt       time.Time
}
