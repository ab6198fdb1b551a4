package csvstore_test

import (
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestock/mockdata/internal/domain/entity"
	"github.com/gestock/mockdata/internal/infrastructure/csvstore"
)

func newStore(t *testing.T) *csvstore.Store {
	t.Helper()
	store, err := csvstore.New(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestStore_RoundTripBusinesses(t *testing.T) {
	store := newStore(t)
	in := []entity.Business{
		{
			ID: 1, Name: "MercaFresh Medellín", Industry: "Retail",
			BusinessType: "Supermercado", Size: entity.SizeMedium,
			City: "Medellín", Region: "Antioquia",
			CreatedAt: time.Date(2023, time.March, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			ID: 2, Name: "FarmaVida Bogotá", Industry: "Farmacéutico",
			BusinessType: "Farmacia", Size: entity.SizeSmall,
			City: "Bogotá", Region: "Cundinamarca",
			CreatedAt: time.Date(2023, time.May, 2, 0, 0, 0, 0, time.UTC),
		},
	}

	require.NoError(t, store.SaveBusinesses(in))
	out, err := store.LoadBusinesses()
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestStore_RoundTripProducts(t *testing.T) {
	store := newStore(t)
	in := []entity.Product{
		{
			ID: 1, Name: "Arroz Premium 1kg", Category: "Alimentos",
			Price: decimal.NewFromInt(8_500), CostPrice: decimal.NewFromInt(6_200),
			ProfitMargin: 27.1, Supplier: "AlimentosDist",
			Description: "Arroz Premium 1kg - Alimentos",
			CreatedAt:   time.Date(2022, time.August, 20, 0, 0, 0, 0, time.UTC),
		},
	}

	require.NoError(t, store.SaveProducts(in))
	out, err := store.LoadProducts()
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, in[0].ID, out[0].ID)
	assert.True(t, in[0].Price.Equal(out[0].Price))
	assert.True(t, in[0].CostPrice.Equal(out[0].CostPrice))
	assert.Equal(t, in[0].ProfitMargin, out[0].ProfitMargin)
	assert.Equal(t, in[0].CreatedAt, out[0].CreatedAt)
}

func TestStore_RoundTripUsers(t *testing.T) {
	store := newStore(t)
	lastLogin := time.Date(2024, time.January, 5, 14, 30, 0, 0, time.UTC)
	in := []entity.User{
		{
			ID: 1, Email: "carlos.garcia@gmail.com", PasswordHash: "$2a$10$abc",
			FullName: "Carlos García", FirstName: "Carlos", LastName: "García",
			BusinessID: 1, Role: entity.RoleAdmin, IsActive: true,
			PhoneNumber: "3151234567",
			CreatedAt:   time.Date(2023, time.June, 1, 9, 0, 0, 0, time.UTC),
			LastLogin:   &lastLogin,
		},
		{
			ID: 2, Email: "ana.lopez@hotmail.com", PasswordHash: "$2a$10$xyz",
			FullName: "Ana López", FirstName: "Ana", LastName: "López",
			BusinessID: 1, Role: entity.RoleUser, IsActive: false,
			PhoneNumber: "3209876543",
			CreatedAt:   time.Date(2023, time.July, 15, 11, 0, 0, 0, time.UTC),
		},
	}

	require.NoError(t, store.SaveUsers(in))
	out, err := store.LoadUsers()
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestStore_RoundTripStock(t *testing.T) {
	store := newStore(t)
	in := entity.NewStockTable([]entity.StockRecord{
		{ProductID: 1, WarehouseID: 1, Stock: 120, MinStock: 20, MaxStock: 300,
			LastUpdated: time.Date(2024, time.June, 1, 16, 45, 0, 0, time.UTC)},
		{ProductID: 2, WarehouseID: 1, Stock: 0, MinStock: 5, MaxStock: 60,
			LastUpdated: time.Date(2024, time.June, 3, 10, 15, 0, 0, time.UTC)},
	})

	require.NoError(t, store.SaveStock(in))
	out, err := store.LoadStock()
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestStore_TransactionsEscribeTodasLasColumnas(t *testing.T) {
	store := newStore(t)
	in := []entity.Transaction{
		{
			ID: 1, Type: entity.TransactionSalida, Quantity: 3,
			Description: "Venta al cliente - Pedido #4821",
			CreatedAt:   time.Date(2024, time.June, 10, 15, 22, 0, 0, time.UTC),
			UserID:      4, ProductID: 7, WarehouseID: 2,
			ProductName: "Camiseta Polo", ProductCategory: "Ropa",
			WarehouseName: "Almacén Ropa", BusinessID: 3, UserName: "María González",
		},
	}

	require.NoError(t, store.SaveTransactions(in))

	raw, err := os.ReadFile(store.Path(csvstore.FileTransactions))
	require.NoError(t, err)
	content := string(raw)
	assert.Contains(t, content, "id,type,quantity,description,created_at,user_id,product_id,warehouse_id,product_name,product_category,warehouse_name,business_id,user_name")
	assert.Contains(t, content, "1,SALIDA,3,Venta al cliente - Pedido #4821,2024-06-10 15:22:00,4,7,2,Camiseta Polo,Ropa,Almacén Ropa,3,María González")
}

func TestStore_LoadArchivoInexistente(t *testing.T) {
	store := newStore(t)
	_, err := store.LoadBusinesses()
	require.Error(t, err)
}

func TestStore_LoadFilaCorrupta(t *testing.T) {
	store := newStore(t)
	path := store.Path(csvstore.FileStock)
	require.NoError(t, os.WriteFile(path, []byte("product_id,warehouse_id,stock,min_stock,max_stock,last_updated\n1,2,no-numérico,5,50,\n"), 0o644))

	_, err := store.LoadStock()
	require.ErrorContains(t, err, "stock")
}
