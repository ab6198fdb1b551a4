package generator

import (
	"math/rand"
	"time"

	"github.com/gestock/mockdata/internal/domain/entity"
)

// StockGenerator asigna productos a almacenes con stock inicial según la
// afinidad entre el tipo de negocio y la categoría del producto.
type StockGenerator struct {
	rng *rand.Rand
	now time.Time
}

// NewStockGenerator construye el generador. now ancla el campo last_updated;
// el valor cero usa time.Now().
func NewStockGenerator(rng *rand.Rand, now time.Time) *StockGenerator {
	if now.IsZero() {
		now = time.Now()
	}
	return &StockGenerator{rng: rng, now: now}
}

// Generate decide producto por producto si existe en cada almacén y con qué
// stock inicial. Garantiza min_stock < max_stock y stock inicial dentro del
// rango configurado ajustado por el tamaño del negocio.
func (g *StockGenerator) Generate(businesses []entity.Business, warehouses []entity.Warehouse, products []entity.Product) []entity.StockRecord {
	warehousesByBusiness := make(map[int][]entity.Warehouse)
	for _, w := range warehouses {
		warehousesByBusiness[w.BusinessID] = append(warehousesByBusiness[w.BusinessID], w)
	}

	var records []entity.StockRecord
	for _, business := range businesses {
		config, ok := stockConfig[business.BusinessType]
		if !ok {
			config = defaultStockConfig
		}

		for _, warehouse := range warehousesByBusiness[business.ID] {
			for _, product := range products {
				rangeCfg, ok := config[product.Category]
				if !ok {
					rangeCfg, ok = config["default"]
					if !ok {
						rangeCfg = stockRange{Min: 5, Max: 50, Probability: 0.3}
					}
				}

				if g.rng.Float64() > rangeCfg.Probability {
					continue
				}

				minStock, maxStock := adjustForSize(business.Size, rangeCfg.Min, rangeCfg.Max)

				records = append(records, entity.StockRecord{
					ProductID:   product.ID,
					WarehouseID: warehouse.ID,
					Stock:       randBetween(g.rng, minStock, maxStock),
					MinStock:    max(1, minStock/4),
					MaxStock:    maxStock,
					LastUpdated: g.now.AddDate(0, 0, -randBetween(g.rng, 1, 30)),
				})
			}
		}
	}
	return records
}

// adjustForSize escala el rango de stock por tamaño de negocio y normaliza
// para que min >= 1 y max > min.
func adjustForSize(size string, minStock, maxStock int) (int, int) {
	switch size {
	case entity.SizeLarge:
		minStock = int(float64(minStock) * 1.5)
		maxStock = int(float64(maxStock) * 1.8)
	case entity.SizeSmall:
		minStock = int(float64(minStock) * 0.6)
		maxStock = int(float64(maxStock) * 0.7)
	}

	minStock = max(1, minStock)
	maxStock = max(minStock+1, maxStock)
	return minStock, maxStock
}
