package entity

import "time"

// Tipos de movimiento de inventario.
const (
	TransactionEntrada = "ENTRADA" // reposición / compra
	TransactionSalida  = "SALIDA"  // venta / despacho
)

// Transaction es un movimiento de inventario inmutable una vez emitido.
// Incluye nombres denormalizados para reportes sin joins.
type Transaction struct {
	ID              int
	Type            string // ENTRADA o SALIDA
	Quantity        int    // siempre > 0
	Description     string
	CreatedAt       time.Time // día simulado + hora de jornada aleatoria
	UserID          int
	ProductID       int
	WarehouseID     int
	ProductName     string
	ProductCategory string
	WarehouseName   string
	BusinessID      int
	UserName        string
}
