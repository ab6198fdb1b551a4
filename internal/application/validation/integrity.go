package validation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/gestock/mockdata/internal/domain/entity"
)

// Report acumula los hallazgos de una pasada de validación. Los errores
// invalidan el dataset; los warnings solo se reportan.
type Report struct {
	Errors   []string
	Warnings []string
}

// OK indica que no se encontraron errores (puede haber warnings).
func (r *Report) OK() bool { return len(r.Errors) == 0 }

func (r *Report) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Report) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// ValidateBaseData revisa los datos maestros: unicidad de IDs, precios
// coherentes y que cada almacén pertenezca a un negocio existente.
func ValidateBaseData(businesses []entity.Business, products []entity.Product, warehouses []entity.Warehouse) *Report {
	r := &Report{}

	businessIDs := make(map[int]bool, len(businesses))
	businessNames := make(map[string]bool, len(businesses))
	for _, b := range businesses {
		if businessIDs[b.ID] {
			r.errorf("id de negocio duplicado: %d", b.ID)
		}
		businessIDs[b.ID] = true
		if businessNames[b.Name] {
			r.warnf("nombre de negocio duplicado: %q", b.Name)
		}
		businessNames[b.Name] = true
	}

	if len(products) == 0 {
		r.errorf("no se generaron productos")
	}
	productIDs := make(map[int]bool, len(products))
	for _, p := range products {
		if productIDs[p.ID] {
			r.errorf("id de producto duplicado: %d", p.ID)
		}
		productIDs[p.ID] = true

		if !p.Price.IsPositive() {
			r.errorf("producto %d con precio no positivo: %s", p.ID, p.Price)
		}
		if !p.CostPrice.IsPositive() {
			r.errorf("producto %d con costo no positivo: %s", p.ID, p.CostPrice)
		}
		if p.CostPrice.GreaterThanOrEqual(p.Price) && p.Price.GreaterThan(decimal.Zero) {
			r.warnf("producto %d con costo >= precio de venta", p.ID)
		}
	}

	warehouseIDs := make(map[int]bool, len(warehouses))
	businessesWithWarehouse := make(map[int]bool)
	for _, w := range warehouses {
		if warehouseIDs[w.ID] {
			r.errorf("id de almacén duplicado: %d", w.ID)
		}
		warehouseIDs[w.ID] = true

		if !businessIDs[w.BusinessID] {
			r.errorf("almacén %d referencia negocio inexistente %d", w.ID, w.BusinessID)
		}
		businessesWithWarehouse[w.BusinessID] = true
	}

	for id := range businessIDs {
		if !businessesWithWarehouse[id] {
			r.warnf("negocio %d sin almacenes", id)
		}
	}

	return r
}

// ValidateTransactionalData revisa usuarios, stock y transacciones: unicidad,
// claves foráneas, tipos/cantidades válidos y la regla de negocio de que el
// usuario de cada transacción pertenezca al mismo negocio que el almacén.
func ValidateTransactionalData(
	users []entity.User,
	stock entity.StockTable,
	transactions []entity.Transaction,
	businesses []entity.Business,
	warehouses []entity.Warehouse,
	products []entity.Product,
) *Report {
	r := &Report{}

	businessIDs := make(map[int]bool, len(businesses))
	for _, b := range businesses {
		businessIDs[b.ID] = true
	}
	warehouseBusiness := make(map[int]int, len(warehouses))
	for _, w := range warehouses {
		warehouseBusiness[w.ID] = w.BusinessID
	}
	productIDs := make(map[int]bool, len(products))
	for _, p := range products {
		productIDs[p.ID] = true
	}

	userIDs := make(map[int]bool, len(users))
	userEmails := make(map[string]bool, len(users))
	userBusiness := make(map[int]int, len(users))
	activeByBusiness := make(map[int]int)
	for _, u := range users {
		if userIDs[u.ID] {
			r.errorf("id de usuario duplicado: %d", u.ID)
		}
		userIDs[u.ID] = true
		if userEmails[u.Email] {
			r.errorf("email de usuario duplicado: %s", u.Email)
		}
		userEmails[u.Email] = true
		userBusiness[u.ID] = u.BusinessID
		if u.IsActive {
			activeByBusiness[u.BusinessID]++
		}
	}
	for id := range businessIDs {
		if activeByBusiness[id] == 0 {
			r.warnf("negocio %d sin usuarios activos", id)
		}
	}

	for key, rec := range stock {
		if rec.Stock < 0 {
			r.errorf("stock negativo en (producto %d, almacén %d)", key.ProductID, key.WarehouseID)
		}
		if rec.MinStock >= rec.MaxStock {
			r.errorf("min_stock >= max_stock en (producto %d, almacén %d)", key.ProductID, key.WarehouseID)
		}
		if _, ok := warehouseBusiness[key.WarehouseID]; !ok {
			r.errorf("stock referencia almacén inexistente %d", key.WarehouseID)
		}
		if !productIDs[key.ProductID] {
			r.errorf("stock referencia producto inexistente %d", key.ProductID)
		}
	}

	if len(transactions) == 0 {
		r.errorf("no se generaron transacciones")
	}
	txIDs := make(map[int]bool, len(transactions))
	for _, tx := range transactions {
		if txIDs[tx.ID] {
			r.errorf("id de transacción duplicado: %d", tx.ID)
		}
		txIDs[tx.ID] = true

		if tx.Type != entity.TransactionEntrada && tx.Type != entity.TransactionSalida {
			r.errorf("transacción %d con tipo inválido %q", tx.ID, tx.Type)
		}
		if tx.Quantity <= 0 {
			r.errorf("transacción %d con cantidad no positiva: %d", tx.ID, tx.Quantity)
		}
		if tx.CreatedAt.IsZero() {
			r.errorf("transacción %d sin fecha", tx.ID)
		}

		if !userIDs[tx.UserID] {
			r.errorf("transacción %d referencia usuario inexistente %d", tx.ID, tx.UserID)
		}
		if !productIDs[tx.ProductID] {
			r.errorf("transacción %d referencia producto inexistente %d", tx.ID, tx.ProductID)
		}
		whBusiness, whExists := warehouseBusiness[tx.WarehouseID]
		if !whExists {
			r.errorf("transacción %d referencia almacén inexistente %d", tx.ID, tx.WarehouseID)
			continue
		}

		// El usuario debe operar sobre almacenes de su propio negocio
		if ub, ok := userBusiness[tx.UserID]; ok && ub != whBusiness {
			r.errorf("transacción %d: usuario del negocio %d opera almacén del negocio %d", tx.ID, ub, whBusiness)
		}
	}

	return r
}
