package entity

import (
	"sort"
	"time"
)

// StockKey identifica un registro de stock por el par (producto, almacén).
type StockKey struct {
	ProductID   int
	WarehouseID int
}

// StockRecord es el stock vivo de un producto en un almacén.
// Invariantes: Stock >= 0 y MinStock < MaxStock (garantizados en la generación).
// El stock puede superar MaxStock tras entradas: el tope es un umbral de
// reorden, no una restricción física.
type StockRecord struct {
	ProductID   int
	WarehouseID int
	Stock       int
	MinStock    int // piso de reorden
	MaxStock    int // techo de capacidad
	LastUpdated time.Time
}

// Key devuelve la clave compuesta del registro.
func (r StockRecord) Key() StockKey {
	return StockKey{ProductID: r.ProductID, WarehouseID: r.WarehouseID}
}

// StockTable es la tabla de stock indexada por clave compuesta.
// Su membresía es fija durante una simulación; solo cambia el campo Stock.
type StockTable map[StockKey]*StockRecord

// NewStockTable indexa una lista de registros por su clave.
func NewStockTable(records []StockRecord) StockTable {
	t := make(StockTable, len(records))
	for i := range records {
		rec := records[i]
		t[rec.Key()] = &rec
	}
	return t
}

// Clone devuelve una copia profunda de la tabla; los punteros no se comparten.
func (t StockTable) Clone() StockTable {
	out := make(StockTable, len(t))
	for k, rec := range t {
		cp := *rec
		out[k] = &cp
	}
	return out
}

// Records devuelve los registros ordenados por (product_id, warehouse_id),
// para salidas estables independientes del orden de iteración del map.
func (t StockTable) Records() []StockRecord {
	out := make([]StockRecord, 0, len(t))
	for _, rec := range t {
		out = append(out, *rec)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ProductID != out[j].ProductID {
			return out[i].ProductID < out[j].ProductID
		}
		return out[i].WarehouseID < out[j].WarehouseID
	})
	return out
}
