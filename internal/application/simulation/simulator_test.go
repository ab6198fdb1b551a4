package simulation_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestock/mockdata/internal/application/simulation"
	"github.com/gestock/mockdata/internal/domain"
	"github.com/gestock/mockdata/internal/domain/entity"
)

var testNow = time.Date(2024, time.June, 15, 10, 30, 0, 0, time.UTC)

// fixture arma un dataset chico: dos negocios, tres almacenes, cuatro
// productos y usuarios activos en ambos negocios.
func fixture() (entity.StockTable, []entity.User, []entity.Warehouse, []entity.Product, []entity.Business) {
	businesses := []entity.Business{
		{ID: 1, Name: "MercaFresh Medellín", BusinessType: "Supermercado"},
		{ID: 2, Name: "FarmaVida Bogotá", BusinessType: "Farmacia"},
	}
	warehouses := []entity.Warehouse{
		{ID: 1, Name: "Almacén Principal", BusinessID: 1},
		{ID: 2, Name: "Bodega Refrigerados", BusinessID: 1},
		{ID: 3, Name: "Almacén Medicamentos", BusinessID: 2},
	}
	products := []entity.Product{
		{ID: 1, Name: "Arroz Premium 1kg", Category: "Alimentos", Supplier: "AlimentosDist"},
		{ID: 2, Name: "Camiseta Polo", Category: "Ropa", Supplier: "ModaImport"},
		{ID: 3, Name: "Acetaminofén 500mg", Category: "Salud", Supplier: "FarmaDistributor"},
		{ID: 4, Name: "Auriculares Bluetooth", Category: "Electrónicos", Supplier: "TechDistributor"},
	}
	users := []entity.User{
		{ID: 1, FullName: "Carlos Rodríguez", BusinessID: 1, IsActive: true},
		{ID: 2, FullName: "María González", BusinessID: 1, IsActive: true},
		{ID: 3, FullName: "Juan Pérez", BusinessID: 2, IsActive: true},
		{ID: 4, FullName: "Ana López", BusinessID: 2, IsActive: false},
	}
	stock := entity.NewStockTable([]entity.StockRecord{
		{ProductID: 1, WarehouseID: 1, Stock: 120, MinStock: 20, MaxStock: 300},
		{ProductID: 1, WarehouseID: 2, Stock: 15, MinStock: 20, MaxStock: 200},
		{ProductID: 2, WarehouseID: 1, Stock: 60, MinStock: 10, MaxStock: 80},
		{ProductID: 3, WarehouseID: 3, Stock: 90, MinStock: 15, MaxStock: 150},
		{ProductID: 4, WarehouseID: 3, Stock: 8, MinStock: 5, MaxStock: 40},
	})
	return stock, users, warehouses, products, businesses
}

func newSimulator(seed int64) *simulation.Simulator {
	return simulation.NewSimulator(rand.New(rand.NewSource(seed)), zerolog.Nop())
}

func TestSimulate_PropiedadesDelLog(t *testing.T) {
	stock, users, warehouses, products, businesses := fixture()

	transactions, updated, err := newSimulator(42).Simulate(stock, users, warehouses, products, businesses, simulation.Params{
		PeriodDays:  90,
		TargetCount: 600,
		Now:         testNow,
	})
	require.NoError(t, err)
	require.NotEmpty(t, transactions)

	productIDs := map[int]bool{1: true, 2: true, 3: true, 4: true}
	warehouseBusiness := map[int]int{1: 1, 2: 1, 3: 2}
	userBusiness := map[int]int{1: 1, 2: 1, 3: 2, 4: 2}

	// Replay: aplicar el log sobre una copia del stock inicial reproduce el
	// estado final y verifica que cada SALIDA cabía en el stock del momento.
	replay := stock.Clone()
	lastDay := time.Time{}
	for i, tx := range transactions {
		assert.Equal(t, i+1, tx.ID, "IDs secuenciales en orden de emisión")
		assert.Positive(t, tx.Quantity)
		assert.Contains(t, []string{entity.TransactionEntrada, entity.TransactionSalida}, tx.Type)

		assert.True(t, productIDs[tx.ProductID], "producto existente")
		whBusiness, ok := warehouseBusiness[tx.WarehouseID]
		require.True(t, ok, "almacén existente")
		assert.Equal(t, whBusiness, tx.BusinessID)
		assert.Equal(t, whBusiness, userBusiness[tx.UserID], "usuario del mismo negocio que el almacén")

		day := tx.CreatedAt.Truncate(24 * time.Hour)
		assert.False(t, day.Before(lastDay), "los días nunca retroceden")
		lastDay = day

		rec := replay[entity.StockKey{ProductID: tx.ProductID, WarehouseID: tx.WarehouseID}]
		require.NotNil(t, rec)
		switch tx.Type {
		case entity.TransactionEntrada:
			rec.Stock += tx.Quantity
		case entity.TransactionSalida:
			assert.LessOrEqual(t, tx.Quantity, rec.Stock, "una SALIDA nunca supera el stock previo")
			rec.Stock -= tx.Quantity
			if rec.Stock < 0 {
				rec.Stock = 0
			}
		}
	}

	for key, rec := range updated {
		assert.GreaterOrEqual(t, rec.Stock, 0, "stock final no negativo")
		assert.Equal(t, replay[key].Stock, rec.Stock, "el replay del log reproduce el stock final")
	}

	// La tabla de entrada no se toca
	assert.Equal(t, 120, stock[entity.StockKey{ProductID: 1, WarehouseID: 1}].Stock)
}

func TestSimulate_MismaSemillaMismaCorrida(t *testing.T) {
	stock, users, warehouses, products, businesses := fixture()
	params := simulation.Params{PeriodDays: 30, TargetCount: 200, Now: testNow}

	first, firstStock, err := newSimulator(7).Simulate(stock, users, warehouses, products, businesses, params)
	require.NoError(t, err)
	second, secondStock, err := newSimulator(7).Simulate(stock, users, warehouses, products, businesses, params)
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.Equal(t, firstStock, secondStock)
}

func TestSimulate_StockAgotadoNoGeneraSalidas(t *testing.T) {
	// Única clave con stock 0: no hay candidatos elegibles, así que no puede
	// emitirse ninguna SALIDA.
	stock := entity.NewStockTable([]entity.StockRecord{
		{ProductID: 1, WarehouseID: 1, Stock: 0, MinStock: 5, MaxStock: 50},
	})
	users := []entity.User{{ID: 1, FullName: "Carlos Rodríguez", BusinessID: 1, IsActive: true}}
	warehouses := []entity.Warehouse{{ID: 1, Name: "Almacén Principal", BusinessID: 1}}
	products := []entity.Product{{ID: 1, Name: "Arroz Premium 1kg", Category: "Alimentos"}}
	businesses := []entity.Business{{ID: 1}}

	transactions, updated, err := newSimulator(3).Simulate(stock, users, warehouses, products, businesses, simulation.Params{
		PeriodDays:  1,
		TargetCount: 50,
		Now:         testNow,
	})
	require.NoError(t, err)

	for _, tx := range transactions {
		assert.NotEqual(t, entity.TransactionSalida, tx.Type)
	}
	assert.GreaterOrEqual(t, updated[entity.StockKey{ProductID: 1, WarehouseID: 1}].Stock, 0)
}

func TestSimulate_ObjetivoCeroEmiteElMinimoDiario(t *testing.T) {
	stock, users, warehouses, products, businesses := fixture()

	transactions, _, err := newSimulator(11).Simulate(stock, users, warehouses, products, businesses, simulation.Params{
		PeriodDays:  1,
		TargetCount: 0,
		Now:         testNow,
	})
	require.NoError(t, err)
	// El objetivo diario se eleva a mínimo 1 evento por día
	assert.NotEmpty(t, transactions)
}

func TestSimulate_BandaEstrechaAcotaLaEntrada(t *testing.T) {
	// min_stock = max_stock - 1: la cantidad de ENTRADA queda acotada por
	// max(min+1, (min+max)/2) escalado a lo sumo por jitter 1.2 (categoría sin
	// patrón estacional => multiplicador 1.0).
	stock := entity.NewStockTable([]entity.StockRecord{
		{ProductID: 1, WarehouseID: 1, Stock: 3, MinStock: 9, MaxStock: 10},
	})
	users := []entity.User{{ID: 1, FullName: "Carlos Rodríguez", BusinessID: 1, IsActive: true}}
	warehouses := []entity.Warehouse{{ID: 1, Name: "Bodega General", BusinessID: 1}}
	products := []entity.Product{{ID: 1, Name: "Producto Genérico", Category: "General"}}
	businesses := []entity.Business{{ID: 1}}

	transactions, _, err := newSimulator(19).Simulate(stock, users, warehouses, products, businesses, simulation.Params{
		PeriodDays:  30,
		TargetCount: 300,
		Now:         testNow,
	})
	require.NoError(t, err)

	for _, tx := range transactions {
		if tx.Type == entity.TransactionEntrada {
			// round(10 * 1.0 * 1.2) = 12
			assert.LessOrEqual(t, tx.Quantity, 12)
		}
	}
}

func TestSimulate_SinUsuariosActivosOmiteEventos(t *testing.T) {
	stock := entity.NewStockTable([]entity.StockRecord{
		{ProductID: 1, WarehouseID: 1, Stock: 50, MinStock: 5, MaxStock: 100},
	})
	users := []entity.User{{ID: 1, FullName: "Ana López", BusinessID: 1, IsActive: false}}
	warehouses := []entity.Warehouse{{ID: 1, Name: "Almacén Principal", BusinessID: 1}}
	products := []entity.Product{{ID: 1, Name: "Arroz Premium 1kg", Category: "Alimentos"}}
	businesses := []entity.Business{{ID: 1}}

	transactions, updated, err := newSimulator(23).Simulate(stock, users, warehouses, products, businesses, simulation.Params{
		PeriodDays:  5,
		TargetCount: 100,
		Now:         testNow,
	})
	require.NoError(t, err)
	assert.Empty(t, transactions)
	assert.Equal(t, 50, updated[entity.StockKey{ProductID: 1, WarehouseID: 1}].Stock, "sin eventos no hay mutaciones")
}

func TestSimulate_TablaVacia(t *testing.T) {
	_, users, warehouses, products, businesses := fixture()

	transactions, updated, err := newSimulator(1).Simulate(entity.StockTable{}, users, warehouses, products, businesses, simulation.Params{
		PeriodDays:  10,
		TargetCount: 100,
		Now:         testNow,
	})
	require.NoError(t, err)
	assert.Empty(t, transactions)
	assert.Empty(t, updated)
}

func TestSimulate_ParametrosInvalidos(t *testing.T) {
	stock, users, warehouses, products, businesses := fixture()

	_, _, err := newSimulator(1).Simulate(stock, users, warehouses, products, businesses, simulation.Params{
		PeriodDays: 0, TargetCount: 100, Now: testNow,
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	_, _, err = newSimulator(1).Simulate(stock, users, warehouses, products, businesses, simulation.Params{
		PeriodDays: 10, TargetCount: -1, Now: testNow,
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}
