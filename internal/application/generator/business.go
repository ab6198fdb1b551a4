package generator

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/gestock/mockdata/internal/domain/entity"
)

// BusinessGenerator produce negocios demo muestreando los catálogos estáticos.
type BusinessGenerator struct {
	rng *rand.Rand
}

// NewBusinessGenerator construye el generador con un RNG inyectado.
func NewBusinessGenerator(rng *rand.Rand) *BusinessGenerator {
	return &BusinessGenerator{rng: rng}
}

// Generate crea n negocios con IDs secuenciales desde 1. Los primeros toman
// tipo/industria/ciudad en el orden de los catálogos para cubrir variedad;
// el resto se muestrea al azar.
func (g *BusinessGenerator) Generate(n int) []entity.Business {
	startDate := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)

	businesses := make([]entity.Business, 0, n)
	for i := 0; i < n; i++ {
		businessType := pickOrdered(g.rng, businessTypes, i)
		industry := pickOrdered(g.rng, industries, i)
		city := pickOrdered(g.rng, cities, i)
		region := pickOrdered(g.rng, regions, i)

		names, ok := companyNamesByType[businessType]
		if !ok {
			names = genericCompanyNames
		}

		businesses = append(businesses, entity.Business{
			ID:           i + 1,
			Name:         fmt.Sprintf("%s %s", pick(g.rng, names), city),
			Industry:     industry,
			BusinessType: businessType,
			Size:         pick(g.rng, companySizes),
			City:         city,
			Region:       region,
			CreatedAt:    startDate.AddDate(0, 0, g.rng.Intn(601)),
		})
	}
	return businesses
}

// pickOrdered devuelve items[i] mientras alcance el catálogo y muestrea al
// azar a partir de ahí.
func pickOrdered(rng *rand.Rand, items []string, i int) string {
	if i < len(items) {
		return items[i]
	}
	return pick(rng, items)
}
