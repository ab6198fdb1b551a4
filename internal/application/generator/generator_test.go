package generator_test

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestock/mockdata/internal/application/generator"
	"github.com/gestock/mockdata/internal/domain/entity"
)

func newRng() *rand.Rand {
	return rand.New(rand.NewSource(99))
}

func TestBusinessGenerator(t *testing.T) {
	businesses := generator.NewBusinessGenerator(newRng()).Generate(8)
	require.Len(t, businesses, 8)

	seen := make(map[int]bool)
	for i, b := range businesses {
		assert.Equal(t, i+1, b.ID, "IDs secuenciales")
		assert.False(t, seen[b.ID])
		seen[b.ID] = true

		assert.NotEmpty(t, b.Name)
		assert.NotEmpty(t, b.BusinessType)
		assert.Contains(t, []string{entity.SizeSmall, entity.SizeMedium, entity.SizeLarge}, b.Size)
		assert.True(t, strings.HasSuffix(b.Name, b.City), "el nombre comercial termina en la ciudad")
	}
}

func TestProductGenerator(t *testing.T) {
	products := generator.NewProductGenerator(newRng()).Generate(85)
	require.Len(t, products, 85)

	byCategory := make(map[string]int)
	for i, p := range products {
		assert.Equal(t, i+1, p.ID)
		assert.True(t, p.Price.IsPositive())
		assert.True(t, p.CostPrice.IsPositive())
		assert.True(t, p.CostPrice.LessThan(p.Price), "el costo siempre queda bajo el precio")
		assert.InDelta(t, p.ProfitMargin, 100*(1-costRatio(p)), 0.2)
		assert.NotEmpty(t, p.Supplier)
		byCategory[p.Category]++
	}

	// 85 productos entre 7 categorías: reparto parejo con resto al frente
	assert.Len(t, byCategory, 7)
	for category, count := range byCategory {
		assert.InDelta(t, 85.0/7.0, float64(count), 1.0, category)
	}
}

func costRatio(p entity.Product) float64 {
	ratio, _ := p.CostPrice.Div(p.Price).Float64()
	return ratio
}

func TestWarehouseGenerator(t *testing.T) {
	rng := newRng()
	businesses := generator.NewBusinessGenerator(rng).Generate(8)
	warehouses := generator.NewWarehouseGenerator(rng).Generate(businesses, 2, 4)
	require.NotEmpty(t, warehouses)

	businessIDs := make(map[int]bool)
	perBusiness := make(map[int]int)
	for _, b := range businesses {
		businessIDs[b.ID] = true
	}
	for i, w := range warehouses {
		assert.Equal(t, i+1, w.ID)
		assert.True(t, businessIDs[w.BusinessID], "cada almacén pertenece a un negocio existente")
		assert.Positive(t, w.Capacity)
		assert.Contains(t, []string{"Urbano", "Industrial"}, w.LocationType)
		assert.True(t, w.CreatedAt.After(time.Time{}))
		perBusiness[w.BusinessID]++
	}
	for id, count := range perBusiness {
		assert.GreaterOrEqual(t, count, 2, "negocio %d", id)
		assert.LessOrEqual(t, count, 5, "negocio %d", id)
	}
}

func TestUserGenerator(t *testing.T) {
	rng := newRng()
	businesses := generator.NewBusinessGenerator(rng).Generate(8)

	gen, err := generator.NewUserGenerator(rng, "gestock2024")
	require.NoError(t, err)
	users := gen.Generate(businesses, 2, 5)
	require.NotEmpty(t, users)

	emails := make(map[string]bool)
	adminsPerBusiness := make(map[int]int)
	for i, u := range users {
		assert.Equal(t, i+1, u.ID)
		assert.False(t, emails[u.Email], "emails únicos")
		emails[u.Email] = true

		// Sin tildes ni mayúsculas en el email
		local := strings.SplitN(u.Email, "@", 2)[0]
		assert.Equal(t, strings.ToLower(local), local)
		for _, r := range local {
			assert.Less(t, r, rune(128), "email ASCII: %s", u.Email)
		}

		assert.True(t, strings.HasPrefix(u.PasswordHash, "$2a$"), "hash bcrypt real")
		assert.Contains(t, []string{entity.RoleAdmin, entity.RoleUser}, u.Role)
		if u.Role == entity.RoleAdmin {
			adminsPerBusiness[u.BusinessID]++
		}
		if u.IsActive {
			require.NotNil(t, u.LastLogin)
		} else {
			assert.Nil(t, u.LastLogin)
		}
	}
	for _, b := range businesses {
		assert.GreaterOrEqual(t, adminsPerBusiness[b.ID], 1, "al menos un ADMIN por negocio")
	}
}

func TestStockGenerator(t *testing.T) {
	rng := newRng()
	businesses := generator.NewBusinessGenerator(rng).Generate(8)
	warehouses := generator.NewWarehouseGenerator(rng).Generate(businesses, 2, 4)
	products := generator.NewProductGenerator(rng).Generate(40)

	now := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	records := generator.NewStockGenerator(rng, now).Generate(businesses, warehouses, products)
	require.NotEmpty(t, records)

	warehouseIDs := make(map[int]bool)
	for _, w := range warehouses {
		warehouseIDs[w.ID] = true
	}
	productIDs := make(map[int]bool)
	for _, p := range products {
		productIDs[p.ID] = true
	}

	seen := make(map[entity.StockKey]bool)
	for _, rec := range records {
		assert.False(t, seen[rec.Key()], "clave compuesta única")
		seen[rec.Key()] = true

		assert.True(t, warehouseIDs[rec.WarehouseID])
		assert.True(t, productIDs[rec.ProductID])
		assert.GreaterOrEqual(t, rec.Stock, 1)
		assert.GreaterOrEqual(t, rec.MinStock, 1)
		assert.Greater(t, rec.MaxStock, rec.MinStock, "min_stock < max_stock")
		assert.LessOrEqual(t, rec.Stock, rec.MaxStock, "el stock inicial no supera el techo")
		assert.True(t, rec.LastUpdated.Before(now))
	}
}
