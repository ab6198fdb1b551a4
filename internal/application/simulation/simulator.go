package simulation

import (
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/gestock/mockdata/internal/domain"
	"github.com/gestock/mockdata/internal/domain/entity"
)

// Probabilidades de tipo de transacción según el nivel de stock.
const (
	probEntradaLowStock = 0.8 // stock <= min_stock: reposición urgente
	probSalidaHighStock = 0.7 // stock >= 80% de max_stock: presión de venta
	probSalidaBaseline  = 0.6 // resto: sesgo de venta sobre compra
	highStockThreshold  = 0.8
)

// Params controla una corrida del simulador.
type Params struct {
	PeriodDays  int       // días de historia, > 0
	TargetCount int       // transacciones objetivo del período, >= 0
	Now         time.Time // ancla del fin de ventana; cero = time.Now()
}

// Simulator genera un flujo cronológico de transacciones de inventario
// recorriendo la ventana día a día y mutando una copia de la tabla de stock.
// Todo el azar sale del RNG inyectado: misma semilla, misma corrida.
type Simulator struct {
	rng *rand.Rand
	log zerolog.Logger
}

// NewSimulator construye el simulador. log puede ser zerolog.Nop().
func NewSimulator(rng *rand.Rand, log zerolog.Logger) *Simulator {
	return &Simulator{rng: rng, log: log}
}

// Simulate recorre la ventana [Now-PeriodDays, Now] generando transacciones
// ENTRADA/SALIDA contra el stock vivo. Devuelve el log en orden de emisión
// (IDs secuenciales desde 1) y una copia actualizada de la tabla de stock; la
// tabla de entrada no se modifica.
//
// El total emitido es un objetivo, no una garantía: el redondeo diario, el
// jitter y los eventos omitidos (sin stock disponible, sin usuario activo del
// negocio) lo desvían. Ninguna condición aborta la corrida.
func (s *Simulator) Simulate(
	stock entity.StockTable,
	users []entity.User,
	warehouses []entity.Warehouse,
	products []entity.Product,
	businesses []entity.Business,
	p Params,
) ([]entity.Transaction, entity.StockTable, error) {
	if p.PeriodDays <= 0 || p.TargetCount < 0 {
		return nil, nil, domain.ErrInvalidInput
	}

	updated := stock.Clone()
	if len(updated) == 0 {
		return nil, updated, nil
	}

	productsByID := make(map[int]entity.Product, len(products))
	for _, pr := range products {
		productsByID[pr.ID] = pr
	}
	warehousesByID := make(map[int]entity.Warehouse, len(warehouses))
	for _, w := range warehouses {
		warehousesByID[w.ID] = w
	}
	businessExists := make(map[int]bool, len(businesses))
	for _, b := range businesses {
		businessExists[b.ID] = true
	}
	activeUsersByBusiness := make(map[int][]entity.User)
	for _, u := range users {
		if u.IsActive {
			activeUsersByBusiness[u.BusinessID] = append(activeUsersByBusiness[u.BusinessID], u)
		}
	}

	// Orden fijo de claves: la iteración de un map no es determinista y
	// rompería la reproducibilidad por semilla.
	allKeys := make([]entity.StockKey, 0, len(updated))
	for k := range updated {
		allKeys = append(allKeys, k)
	}
	sort.Slice(allKeys, func(i, j int) bool {
		if allKeys[i].ProductID != allKeys[j].ProductID {
			return allKeys[i].ProductID < allKeys[j].ProductID
		}
		return allKeys[i].WarehouseID < allKeys[j].WarehouseID
	})

	now := p.Now
	if now.IsZero() {
		now = time.Now()
	}
	endDay := truncateToDay(now)
	startDay := endDay.AddDate(0, 0, -p.PeriodDays)

	s.log.Info().
		Time("desde", startDay).
		Time("hasta", endDay).
		Int("objetivo", p.TargetCount).
		Msg("simulando transacciones")

	dailyTarget := float64(p.TargetCount) / float64(p.PeriodDays)

	var transactions []entity.Transaction
	nextID := 1
	eligible := make([]entity.StockKey, 0, len(allKeys))

	for day := startDay; !day.After(endDay); day = day.AddDate(0, 0, 1) {
		dayCount := int(dailyTarget * WeekdayMultiplier(day.Weekday()) * uniform(s.rng, 0.7, 1.3))
		if dayCount < 1 {
			dayCount = 1
		}

		for i := 0; i < dayCount; i++ {
			eligible = eligible[:0]
			for _, k := range allKeys {
				if updated[k].Stock > 0 {
					eligible = append(eligible, k)
				}
			}
			if len(eligible) == 0 {
				continue
			}

			key := eligible[s.rng.Intn(len(eligible))]
			rec := updated[key]

			product, ok := productsByID[key.ProductID]
			if !ok {
				continue
			}
			warehouse, ok := warehousesByID[key.WarehouseID]
			if !ok || !businessExists[warehouse.BusinessID] {
				continue
			}

			seasonal := SeasonalMultiplier(product.Category, day.Month())
			txType := s.decideType(rec)
			quantity := s.decideQuantity(txType, rec, seasonal)

			if txType == entity.TransactionSalida {
				if rec.Stock <= 0 {
					continue
				}
				if quantity > rec.Stock {
					quantity = rec.Stock
				}
			}

			candidates := activeUsersByBusiness[warehouse.BusinessID]
			if len(candidates) == 0 {
				continue
			}
			user := candidates[s.rng.Intn(len(candidates))]

			createdAt := day.
				Add(time.Duration(randBetween(s.rng, 8, 18)) * time.Hour).
				Add(time.Duration(s.rng.Intn(60)) * time.Minute)

			transactions = append(transactions, entity.Transaction{
				ID:              nextID,
				Type:            txType,
				Quantity:        quantity,
				Description:     s.description(txType, product, warehouse),
				CreatedAt:       createdAt,
				UserID:          user.ID,
				ProductID:       key.ProductID,
				WarehouseID:     key.WarehouseID,
				ProductName:     product.Name,
				ProductCategory: product.Category,
				WarehouseName:   warehouse.Name,
				BusinessID:      warehouse.BusinessID,
				UserName:        user.FullName,
			})
			nextID++

			switch txType {
			case entity.TransactionEntrada:
				rec.Stock += quantity
			case entity.TransactionSalida:
				rec.Stock -= quantity
				if rec.Stock < 0 {
					rec.Stock = 0
				}
			}
			rec.LastUpdated = createdAt
		}

		if elapsed := int(day.Sub(startDay).Hours() / 24); elapsed > 0 && elapsed%10 == 0 {
			s.log.Debug().
				Int("día", elapsed).
				Int("transacciones", len(transactions)).
				Msg("progreso de simulación")
		}
	}

	s.log.Info().Int("transacciones", len(transactions)).Msg("simulación terminada")
	return transactions, updated, nil
}

// decideType elige ENTRADA o SALIDA según la posición del stock frente a sus
// umbrales: bajo mínimo empuja reposición, cerca del tope empuja venta.
func (s *Simulator) decideType(rec *entity.StockRecord) string {
	switch {
	case rec.Stock <= rec.MinStock:
		if s.rng.Float64() < probEntradaLowStock {
			return entity.TransactionEntrada
		}
		return entity.TransactionSalida
	case float64(rec.Stock) >= highStockThreshold*float64(rec.MaxStock):
		if s.rng.Float64() < probSalidaHighStock {
			return entity.TransactionSalida
		}
		return entity.TransactionEntrada
	default:
		if s.rng.Float64() < probSalidaBaseline {
			return entity.TransactionSalida
		}
		return entity.TransactionEntrada
	}
}

// decideQuantity calcula la cantidad base por tipo y la escala por el factor
// estacional con jitter. Siempre >= 1; el tope por stock de las SALIDA se
// aplica después, en el llamador.
func (s *Simulator) decideQuantity(txType string, rec *entity.StockRecord, seasonal float64) int {
	var quantity int
	if txType == entity.TransactionEntrada {
		// Reposición hacia el punto medio entre mínimo y máximo
		ideal := (rec.MinStock + rec.MaxStock) / 2
		quantity = randBetween(s.rng, max(1, rec.MinStock), max(rec.MinStock+1, ideal))
	} else {
		// Venta acotada a un tercio del stock actual
		maxSale := min(rec.Stock, max(1, rec.Stock/3))
		quantity = randBetween(s.rng, 1, max(1, maxSale))
	}

	scaled := int(math.Round(float64(quantity) * seasonal * uniform(s.rng, 0.8, 1.2)))
	return max(1, scaled)
}

// uniform devuelve un float uniforme en [lo, hi).
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// randBetween devuelve un entero uniforme en [lo, hi], ambos inclusive.
func randBetween(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
