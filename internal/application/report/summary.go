package report

import (
	"fmt"
	"sort"

	"github.com/gestock/mockdata/internal/domain/entity"
	"github.com/gestock/mockdata/pkg/logger"
)

// BaseSummary registra totales y distribuciones de los datos maestros.
func BaseSummary(log *logger.Logger, businesses []entity.Business, products []entity.Product, warehouses []entity.Warehouse) {
	log.Info().
		Int("negocios", len(businesses)).
		Int("productos", len(products)).
		Int("almacenes", len(warehouses)).
		Msg("datos base generados")

	byIndustry := make(map[string]int)
	for _, b := range businesses {
		byIndustry[b.Industry]++
	}
	logCounts(log, "negocios por industria", byIndustry)

	byCategory := make(map[string]int)
	for _, p := range products {
		byCategory[p.Category]++
	}
	logCounts(log, "productos por categoría", byCategory)
}

// StockSummary registra totales de unidades y asignaciones de stock inicial.
func StockSummary(log *logger.Logger, stock entity.StockTable, products []entity.Product) {
	categoryByProduct := make(map[int]string, len(products))
	for _, p := range products {
		categoryByProduct[p.ID] = p.Category
	}

	totalUnits := 0
	unitsByCategory := make(map[string]int)
	for _, rec := range stock.Records() {
		totalUnits += rec.Stock
		unitsByCategory[categoryByProduct[rec.ProductID]] += rec.Stock
	}

	log.Info().
		Int("registros", len(stock)).
		Int("unidades", totalUnits).
		Msg("stock inicial generado")
	logCounts(log, "unidades por categoría", unitsByCategory)
}

// TransactionSummary registra la distribución de las transacciones emitidas
// por tipo, mes, categoría y negocio.
func TransactionSummary(log *logger.Logger, transactions []entity.Transaction) {
	byType := make(map[string]int)
	byMonth := make(map[string]int)
	byCategory := make(map[string]int)
	byBusiness := make(map[string]int)

	for _, tx := range transactions {
		byType[tx.Type]++
		byMonth[tx.CreatedAt.Format("2006-01")]++
		byCategory[tx.ProductCategory]++
		byBusiness[fmt.Sprintf("negocio %d", tx.BusinessID)]++
	}

	log.Info().Int("total", len(transactions)).Msg("transacciones generadas")
	logCounts(log, "transacciones por tipo", byType)
	logCounts(log, "transacciones por mes", byMonth)
	logCounts(log, "transacciones por categoría", byCategory)
	logCounts(log, "transacciones por negocio", byBusiness)
}

// logCounts emite un evento con cada clave como campo, en orden estable.
func logCounts(log *logger.Logger, msg string, counts map[string]int) {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	ev := log.Info()
	for _, k := range keys {
		ev = ev.Int(k, counts[k])
	}
	ev.Msg(msg)
}
