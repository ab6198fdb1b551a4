package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo demo.
// Precio y costo en pesos colombianos, sin centavos.
type Product struct {
	ID           int
	Name         string
	Category     string // Electrónicos, Ropa, Alimentos, Hogar, Salud, Construcción, Oficina
	Price        decimal.Decimal
	CostPrice    decimal.Decimal
	ProfitMargin float64 // porcentaje con 1 decimal
	Supplier     string
	Description  string
	CreatedAt    time.Time
}
