package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gestock/mockdata/internal/domain"
	"github.com/gestock/mockdata/internal/domain/entity"
)

// Dataset agrupa las seis tablas generadas listas para cargar.
type Dataset struct {
	Businesses   []entity.Business
	Products     []entity.Product
	Warehouses   []entity.Warehouse
	Users        []entity.User
	Stock        entity.StockTable
	Transactions []entity.Transaction
}

// Loader siembra el dataset demo en PostgreSQL por bulk copy.
type Loader struct {
	pool *pgxpool.Pool
}

// NewLoader construye el cargador.
func NewLoader(pool *pgxpool.Pool) *Loader {
	return &Loader{pool: pool}
}

// EnsureSchema crea las tablas demo si no existen.
func (l *Loader) EnsureSchema(ctx context.Context) error {
	if _, err := l.pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("crear esquema: %w", err)
	}
	return nil
}

// Load trunca las tablas y carga el dataset completo en orden de dependencias
// (padres antes que hijos) usando COPY.
func (l *Loader) Load(ctx context.Context, ds Dataset) error {
	// No truncar tablas para cargar nada encima
	if len(ds.Businesses) == 0 {
		return domain.ErrEmptyDataset
	}

	_, err := l.pool.Exec(ctx, `TRUNCATE transactions, warehouse_products, users, warehouses, products, businesses CASCADE`)
	if err != nil {
		return fmt.Errorf("truncar tablas: %w", err)
	}

	if err := l.copyBusinesses(ctx, ds.Businesses); err != nil {
		return err
	}
	if err := l.copyProducts(ctx, ds.Products); err != nil {
		return err
	}
	if err := l.copyWarehouses(ctx, ds.Warehouses); err != nil {
		return err
	}
	if err := l.copyUsers(ctx, ds.Users); err != nil {
		return err
	}
	if err := l.copyStock(ctx, ds.Stock); err != nil {
		return err
	}
	return l.copyTransactions(ctx, ds.Transactions)
}

func (l *Loader) copyBusinesses(ctx context.Context, businesses []entity.Business) error {
	cols := []string{"id", "name", "industry", "business_type", "size", "city", "region", "created_at"}
	_, err := l.pool.CopyFrom(ctx, pgx.Identifier{"businesses"}, cols,
		pgx.CopyFromSlice(len(businesses), func(i int) ([]any, error) {
			b := businesses[i]
			return []any{b.ID, b.Name, b.Industry, b.BusinessType, b.Size, b.City, b.Region, b.CreatedAt}, nil
		}))
	if err != nil {
		return fmt.Errorf("copy businesses: %w", err)
	}
	return nil
}

func (l *Loader) copyProducts(ctx context.Context, products []entity.Product) error {
	cols := []string{"id", "name", "category", "price", "cost_price", "profit_margin", "supplier", "description", "created_at"}
	_, err := l.pool.CopyFrom(ctx, pgx.Identifier{"products"}, cols,
		pgx.CopyFromSlice(len(products), func(i int) ([]any, error) {
			p := products[i]
			return []any{p.ID, p.Name, p.Category, p.Price, p.CostPrice, p.ProfitMargin, p.Supplier, p.Description, p.CreatedAt}, nil
		}))
	if err != nil {
		return fmt.Errorf("copy products: %w", err)
	}
	return nil
}

func (l *Loader) copyWarehouses(ctx context.Context, warehouses []entity.Warehouse) error {
	cols := []string{"id", "name", "address", "business_id", "capacity", "location_type", "manager_name", "operational_cost", "created_at"}
	_, err := l.pool.CopyFrom(ctx, pgx.Identifier{"warehouses"}, cols,
		pgx.CopyFromSlice(len(warehouses), func(i int) ([]any, error) {
			w := warehouses[i]
			return []any{w.ID, w.Name, w.Address, w.BusinessID, w.Capacity, w.LocationType, w.ManagerName, w.OperationalCost, w.CreatedAt}, nil
		}))
	if err != nil {
		return fmt.Errorf("copy warehouses: %w", err)
	}
	return nil
}

func (l *Loader) copyUsers(ctx context.Context, users []entity.User) error {
	cols := []string{"id", "email", "password_hash", "full_name", "first_name", "last_name", "business_id", "role", "is_active", "phone_number", "created_at", "last_login"}
	_, err := l.pool.CopyFrom(ctx, pgx.Identifier{"users"}, cols,
		pgx.CopyFromSlice(len(users), func(i int) ([]any, error) {
			u := users[i]
			return []any{u.ID, u.Email, u.PasswordHash, u.FullName, u.FirstName, u.LastName, u.BusinessID, u.Role, u.IsActive, u.PhoneNumber, u.CreatedAt, u.LastLogin}, nil
		}))
	if err != nil {
		return fmt.Errorf("copy users: %w", err)
	}
	return nil
}

func (l *Loader) copyStock(ctx context.Context, stock entity.StockTable) error {
	cols := []string{"product_id", "warehouse_id", "stock", "min_stock", "max_stock", "last_updated"}
	records := stock.Records()
	_, err := l.pool.CopyFrom(ctx, pgx.Identifier{"warehouse_products"}, cols,
		pgx.CopyFromSlice(len(records), func(i int) ([]any, error) {
			r := records[i]
			return []any{r.ProductID, r.WarehouseID, r.Stock, r.MinStock, r.MaxStock, r.LastUpdated}, nil
		}))
	if err != nil {
		return fmt.Errorf("copy warehouse_products: %w", err)
	}
	return nil
}

func (l *Loader) copyTransactions(ctx context.Context, transactions []entity.Transaction) error {
	cols := []string{"id", "type", "quantity", "description", "created_at", "user_id", "product_id", "warehouse_id", "product_name", "product_category", "warehouse_name", "business_id", "user_name"}
	_, err := l.pool.CopyFrom(ctx, pgx.Identifier{"transactions"}, cols,
		pgx.CopyFromSlice(len(transactions), func(i int) ([]any, error) {
			t := transactions[i]
			return []any{t.ID, t.Type, t.Quantity, t.Description, t.CreatedAt, t.UserID, t.ProductID, t.WarehouseID, t.ProductName, t.ProductCategory, t.WarehouseName, t.BusinessID, t.UserName}, nil
		}))
	if err != nil {
		return fmt.Errorf("copy transactions: %w", err)
	}
	return nil
}
