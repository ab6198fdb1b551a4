package csvstore

import (
	"fmt"
	"strconv"

	"github.com/gestock/mockdata/internal/domain/entity"
)

// Nombres de archivo de cada tabla.
const (
	FileBusinesses   = "businesses.csv"
	FileProducts     = "products.csv"
	FileWarehouses   = "warehouses.csv"
	FileUsers        = "users.csv"
	FileStock        = "warehouse_products.csv"
	FileTransactions = "transactions.csv"
)

// SaveBusinesses escribe businesses.csv.
func (s *Store) SaveBusinesses(businesses []entity.Business) error {
	header := []string{"id", "name", "industry", "business_type", "size", "city", "region", "created_at"}
	rows := make([][]string, 0, len(businesses))
	for _, b := range businesses {
		rows = append(rows, []string{
			strconv.Itoa(b.ID), b.Name, b.Industry, b.BusinessType,
			b.Size, b.City, b.Region, formatTime(b.CreatedAt),
		})
	}
	return s.write(FileBusinesses, header, rows)
}

// LoadBusinesses lee businesses.csv.
func (s *Store) LoadBusinesses() ([]entity.Business, error) {
	rows, err := s.read(FileBusinesses)
	if err != nil {
		return nil, err
	}
	businesses := make([]entity.Business, 0, len(rows))
	for i, row := range rows {
		if len(row) != 8 {
			return nil, fmt.Errorf("%s fila %d: %d columnas, se esperaban 8", FileBusinesses, i+2, len(row))
		}
		id, err := atoi(row[0])
		if err != nil {
			return nil, fmt.Errorf("%s fila %d: id: %w", FileBusinesses, i+2, err)
		}
		createdAt, err := parseTime(row[7])
		if err != nil {
			return nil, fmt.Errorf("%s fila %d: created_at: %w", FileBusinesses, i+2, err)
		}
		businesses = append(businesses, entity.Business{
			ID: id, Name: row[1], Industry: row[2], BusinessType: row[3],
			Size: row[4], City: row[5], Region: row[6], CreatedAt: createdAt,
		})
	}
	return businesses, nil
}

// SaveProducts escribe products.csv.
func (s *Store) SaveProducts(products []entity.Product) error {
	header := []string{"id", "name", "category", "price", "cost_price", "profit_margin", "supplier", "description", "created_at"}
	rows := make([][]string, 0, len(products))
	for _, p := range products {
		rows = append(rows, []string{
			strconv.Itoa(p.ID), p.Name, p.Category,
			p.Price.String(), p.CostPrice.String(),
			strconv.FormatFloat(p.ProfitMargin, 'f', 1, 64),
			p.Supplier, p.Description, formatTime(p.CreatedAt),
		})
	}
	return s.write(FileProducts, header, rows)
}

// LoadProducts lee products.csv.
func (s *Store) LoadProducts() ([]entity.Product, error) {
	rows, err := s.read(FileProducts)
	if err != nil {
		return nil, err
	}
	products := make([]entity.Product, 0, len(rows))
	for i, row := range rows {
		if len(row) != 9 {
			return nil, fmt.Errorf("%s fila %d: %d columnas, se esperaban 9", FileProducts, i+2, len(row))
		}
		id, err := atoi(row[0])
		if err != nil {
			return nil, fmt.Errorf("%s fila %d: id: %w", FileProducts, i+2, err)
		}
		price, err := parseDecimal(row[3])
		if err != nil {
			return nil, fmt.Errorf("%s fila %d: price: %w", FileProducts, i+2, err)
		}
		costPrice, err := parseDecimal(row[4])
		if err != nil {
			return nil, fmt.Errorf("%s fila %d: cost_price: %w", FileProducts, i+2, err)
		}
		margin, err := parseFloat(row[5])
		if err != nil {
			return nil, fmt.Errorf("%s fila %d: profit_margin: %w", FileProducts, i+2, err)
		}
		createdAt, err := parseTime(row[8])
		if err != nil {
			return nil, fmt.Errorf("%s fila %d: created_at: %w", FileProducts, i+2, err)
		}
		products = append(products, entity.Product{
			ID: id, Name: row[1], Category: row[2],
			Price: price, CostPrice: costPrice, ProfitMargin: margin,
			Supplier: row[6], Description: row[7], CreatedAt: createdAt,
		})
	}
	return products, nil
}

// SaveWarehouses escribe warehouses.csv.
func (s *Store) SaveWarehouses(warehouses []entity.Warehouse) error {
	header := []string{"id", "name", "address", "business_id", "capacity", "location_type", "manager_name", "operational_cost", "created_at"}
	rows := make([][]string, 0, len(warehouses))
	for _, w := range warehouses {
		rows = append(rows, []string{
			strconv.Itoa(w.ID), w.Name, w.Address, strconv.Itoa(w.BusinessID),
			strconv.Itoa(w.Capacity), w.LocationType, w.ManagerName,
			w.OperationalCost.String(), formatTime(w.CreatedAt),
		})
	}
	return s.write(FileWarehouses, header, rows)
}

// LoadWarehouses lee warehouses.csv.
func (s *Store) LoadWarehouses() ([]entity.Warehouse, error) {
	rows, err := s.read(FileWarehouses)
	if err != nil {
		return nil, err
	}
	warehouses := make([]entity.Warehouse, 0, len(rows))
	for i, row := range rows {
		if len(row) != 9 {
			return nil, fmt.Errorf("%s fila %d: %d columnas, se esperaban 9", FileWarehouses, i+2, len(row))
		}
		id, err := atoi(row[0])
		if err != nil {
			return nil, fmt.Errorf("%s fila %d: id: %w", FileWarehouses, i+2, err)
		}
		businessID, err := atoi(row[3])
		if err != nil {
			return nil, fmt.Errorf("%s fila %d: business_id: %w", FileWarehouses, i+2, err)
		}
		capacity, err := atoi(row[4])
		if err != nil {
			return nil, fmt.Errorf("%s fila %d: capacity: %w", FileWarehouses, i+2, err)
		}
		cost, err := parseDecimal(row[7])
		if err != nil {
			return nil, fmt.Errorf("%s fila %d: operational_cost: %w", FileWarehouses, i+2, err)
		}
		createdAt, err := parseTime(row[8])
		if err != nil {
			return nil, fmt.Errorf("%s fila %d: created_at: %w", FileWarehouses, i+2, err)
		}
		warehouses = append(warehouses, entity.Warehouse{
			ID: id, Name: row[1], Address: row[2], BusinessID: businessID,
			Capacity: capacity, LocationType: row[5], ManagerName: row[6],
			OperationalCost: cost, CreatedAt: createdAt,
		})
	}
	return warehouses, nil
}

// SaveUsers escribe users.csv.
func (s *Store) SaveUsers(users []entity.User) error {
	header := []string{"id", "email", "password_hash", "full_name", "first_name", "last_name", "business_id", "role", "is_active", "phone_number", "created_at", "last_login"}
	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{
			strconv.Itoa(u.ID), u.Email, u.PasswordHash, u.FullName,
			u.FirstName, u.LastName, strconv.Itoa(u.BusinessID), u.Role,
			strconv.FormatBool(u.IsActive), u.PhoneNumber,
			formatTime(u.CreatedAt), formatTimePtr(u.LastLogin),
		})
	}
	return s.write(FileUsers, header, rows)
}

// LoadUsers lee users.csv.
func (s *Store) LoadUsers() ([]entity.User, error) {
	rows, err := s.read(FileUsers)
	if err != nil {
		return nil, err
	}
	users := make([]entity.User, 0, len(rows))
	for i, row := range rows {
		if len(row) != 12 {
			return nil, fmt.Errorf("%s fila %d: %d columnas, se esperaban 12", FileUsers, i+2, len(row))
		}
		id, err := atoi(row[0])
		if err != nil {
			return nil, fmt.Errorf("%s fila %d: id: %w", FileUsers, i+2, err)
		}
		businessID, err := atoi(row[6])
		if err != nil {
			return nil, fmt.Errorf("%s fila %d: business_id: %w", FileUsers, i+2, err)
		}
		isActive, err := parseBool(row[8])
		if err != nil {
			return nil, fmt.Errorf("%s fila %d: is_active: %w", FileUsers, i+2, err)
		}
		createdAt, err := parseTime(row[10])
		if err != nil {
			return nil, fmt.Errorf("%s fila %d: created_at: %w", FileUsers, i+2, err)
		}
		user := entity.User{
			ID: id, Email: row[1], PasswordHash: row[2], FullName: row[3],
			FirstName: row[4], LastName: row[5], BusinessID: businessID,
			Role: row[7], IsActive: isActive, PhoneNumber: row[9], CreatedAt: createdAt,
		}
		if row[11] != "" {
			lastLogin, err := parseTime(row[11])
			if err != nil {
				return nil, fmt.Errorf("%s fila %d: last_login: %w", FileUsers, i+2, err)
			}
			user.LastLogin = &lastLogin
		}
		users = append(users, user)
	}
	return users, nil
}

// SaveStock escribe warehouse_products.csv en orden de clave compuesta.
func (s *Store) SaveStock(stock entity.StockTable) error {
	header := []string{"product_id", "warehouse_id", "stock", "min_stock", "max_stock", "last_updated"}
	records := stock.Records()
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []string{
			strconv.Itoa(rec.ProductID), strconv.Itoa(rec.WarehouseID),
			strconv.Itoa(rec.Stock), strconv.Itoa(rec.MinStock),
			strconv.Itoa(rec.MaxStock), formatTime(rec.LastUpdated),
		})
	}
	return s.write(FileStock, header, rows)
}

// LoadStock lee warehouse_products.csv y la indexa por clave compuesta.
func (s *Store) LoadStock() (entity.StockTable, error) {
	rows, err := s.read(FileStock)
	if err != nil {
		return nil, err
	}
	records := make([]entity.StockRecord, 0, len(rows))
	for i, row := range rows {
		if len(row) != 6 {
			return nil, fmt.Errorf("%s fila %d: %d columnas, se esperaban 6", FileStock, i+2, len(row))
		}
		vals := make([]int, 5)
		names := []string{"product_id", "warehouse_id", "stock", "min_stock", "max_stock"}
		for j := 0; j < 5; j++ {
			vals[j], err = atoi(row[j])
			if err != nil {
				return nil, fmt.Errorf("%s fila %d: %s: %w", FileStock, i+2, names[j], err)
			}
		}
		lastUpdated, err := parseTime(row[5])
		if err != nil {
			return nil, fmt.Errorf("%s fila %d: last_updated: %w", FileStock, i+2, err)
		}
		records = append(records, entity.StockRecord{
			ProductID: vals[0], WarehouseID: vals[1], Stock: vals[2],
			MinStock: vals[3], MaxStock: vals[4], LastUpdated: lastUpdated,
		})
	}
	return entity.NewStockTable(records), nil
}

// SaveTransactions escribe transactions.csv.
func (s *Store) SaveTransactions(transactions []entity.Transaction) error {
	header := []string{"id", "type", "quantity", "description", "created_at", "user_id", "product_id", "warehouse_id", "product_name", "product_category", "warehouse_name", "business_id", "user_name"}
	rows := make([][]string, 0, len(transactions))
	for _, tx := range transactions {
		rows = append(rows, []string{
			strconv.Itoa(tx.ID), tx.Type, strconv.Itoa(tx.Quantity),
			tx.Description, formatTime(tx.CreatedAt),
			strconv.Itoa(tx.UserID), strconv.Itoa(tx.ProductID), strconv.Itoa(tx.WarehouseID),
			tx.ProductName, tx.ProductCategory, tx.WarehouseName,
			strconv.Itoa(tx.BusinessID), tx.UserName,
		})
	}
	return s.write(FileTransactions, header, rows)
}
