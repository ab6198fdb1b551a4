package generator

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestock/mockdata/internal/domain/entity"
)

// ProductGenerator produce el catálogo de productos demo repartido entre las
// categorías disponibles, con precios y márgenes por categoría.
type ProductGenerator struct {
	rng *rand.Rand
}

// NewProductGenerator construye el generador con un RNG inyectado.
func NewProductGenerator(rng *rand.Rand) *ProductGenerator {
	return &ProductGenerator{rng: rng}
}

// Generate crea n productos con IDs secuenciales desde 1, distribuidos lo más
// parejo posible entre categorías (el resto de la división se asigna a las
// primeras categorías del orden fijo).
func (g *ProductGenerator) Generate(n int) []entity.Product {
	startDate := time.Date(2022, time.June, 1, 0, 0, 0, 0, time.UTC)

	perCategory := n / len(categoryOrder)
	remainder := n % len(categoryOrder)

	products := make([]entity.Product, 0, n)
	id := 1
	for _, category := range categoryOrder {
		count := perCategory
		if remainder > 0 {
			count++
			remainder--
		}

		data := productCategories[category]
		for i := 0; i < count; i++ {
			name := data.Products[i%len(data.Products)]
			if i >= len(data.Products) {
				// Catálogo agotado: repetir con variación de línea
				name = fmt.Sprintf("%s %s", name, pick(g.rng, productVariations))
			}

			price := data.PriceMin + g.rng.Int63n(data.PriceMax-data.PriceMin+1)
			costMargin := uniform(g.rng, data.CostMin, data.CostMax)
			costPrice := int64(math.Round(float64(price) * costMargin))
			profitMargin := math.Round(float64(price-costPrice)/float64(price)*1000) / 10

			products = append(products, entity.Product{
				ID:           id,
				Name:         name,
				Category:     category,
				Price:        decimal.NewFromInt(price),
				CostPrice:    decimal.NewFromInt(costPrice),
				ProfitMargin: profitMargin,
				Supplier:     pick(g.rng, data.Suppliers),
				Description:  fmt.Sprintf("%s - %s", name, category),
				CreatedAt:    startDate.AddDate(0, 0, g.rng.Intn(501)),
			})
			id++
		}
	}
	return products
}
