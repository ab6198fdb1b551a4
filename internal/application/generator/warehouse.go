package generator

import (
	"fmt"
	"math/rand"

	"github.com/shopspring/decimal"

	"github.com/gestock/mockdata/internal/domain/entity"
)

// WarehouseGenerator produce almacenes para cada negocio, con direcciones
// colombianas plausibles y capacidades según el tipo de negocio.
type WarehouseGenerator struct {
	rng *rand.Rand
}

// NewWarehouseGenerator construye el generador con un RNG inyectado.
func NewWarehouseGenerator(rng *rand.Rand) *WarehouseGenerator {
	return &WarehouseGenerator{rng: rng}
}

// Generate crea entre min y max almacenes por negocio (negocios grandes
// reciben más). IDs secuenciales desde 1 en el orden de los negocios.
func (g *WarehouseGenerator) Generate(businesses []entity.Business, minPerBusiness, maxPerBusiness int) []entity.Warehouse {
	var warehouses []entity.Warehouse
	id := 1

	for _, business := range businesses {
		var count int
		switch business.Size {
		case entity.SizeLarge:
			count = randBetween(g.rng, maxPerBusiness, maxPerBusiness+1)
		case entity.SizeMedium:
			count = randBetween(g.rng, minPerBusiness+1, maxPerBusiness)
		default:
			count = randBetween(g.rng, minPerBusiness, minPerBusiness+1)
		}

		types, ok := warehouseTypesByBusiness[business.BusinessType]
		if !ok {
			types = []string{"Almacén Principal", "Bodega General"}
		}
		capRange, ok := capacityRanges[business.BusinessType]
		if !ok {
			capRange = [2]int{100, 500}
		}

		for i := 0; i < count; i++ {
			name := fmt.Sprintf("Almacén %d", i+1)
			if i < len(types) {
				name = types[i]
			}

			capacity := randBetween(g.rng, capRange[0], capRange[1])

			locationType := "Urbano"
			if g.rng.Float64() <= 0.15 {
				locationType = "Industrial"
			}

			warehouses = append(warehouses, entity.Warehouse{
				ID:              id,
				Name:            name,
				Address:         g.address(business.City),
				BusinessID:      business.ID,
				Capacity:        capacity,
				LocationType:    locationType,
				ManagerName:     pick(g.rng, managerNames),
				OperationalCost: g.operationalCost(business.City, capacity),
				CreatedAt:       business.CreatedAt.AddDate(0, 0, randBetween(g.rng, 1, 90)),
			})
			id++
		}
	}
	return warehouses
}

// address arma una dirección tipo "Carrera 45 #102-34, El Poblado, Medellín".
func (g *WarehouseGenerator) address(city string) string {
	kinds, ok := streetKinds[city]
	if !ok {
		kinds = []string{"Carrera"}
	}
	barrios, ok := neighborhoods[city]
	if !ok {
		barrios = []string{"Centro", "Norte", "Sur"}
	}

	street := fmt.Sprintf("%s %d #%d-%d",
		pick(g.rng, kinds),
		randBetween(g.rng, 1, 80),
		randBetween(g.rng, 10, 150),
		randBetween(g.rng, 10, 99),
	)
	return fmt.Sprintf("%s, %s, %s", street, pick(g.rng, barrios), city)
}

// operationalCost estima el costo mensual: capacidad × costo por m² de la
// ciudad más un ajuste aleatorio.
func (g *WarehouseGenerator) operationalCost(city string, capacity int) decimal.Decimal {
	base, ok := costPerSquareMeter[city]
	if !ok {
		base = 18_000
	}
	cost := int64(capacity)*base + int64(randBetween(g.rng, -500_000, 1_000_000))
	return decimal.NewFromInt(cost)
}
