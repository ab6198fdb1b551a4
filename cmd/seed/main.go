// seed genera el dataset demo completo de GESTOCK: datos maestros, stock
// inicial y seis meses de transacciones simuladas. Valida integridad, escribe
// los CSV en SEED_OUTPUT_DIR y, si DATABASE_URL está definido, carga todo en
// PostgreSQL.
//
// Uso: go run ./cmd/seed
// La corrida es reproducible fijando SEED_RANDOM_SEED.
package main

import (
	"context"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/gestock/mockdata/internal/application/generator"
	"github.com/gestock/mockdata/internal/application/report"
	"github.com/gestock/mockdata/internal/application/simulation"
	"github.com/gestock/mockdata/internal/application/validation"
	"github.com/gestock/mockdata/internal/domain"
	"github.com/gestock/mockdata/internal/domain/entity"
	"github.com/gestock/mockdata/internal/infrastructure/csvstore"
	"github.com/gestock/mockdata/internal/infrastructure/postgres"
	"github.com/gestock/mockdata/pkg/config"
	"github.com/gestock/mockdata/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "debug",
	})
	log = log.Sub(log.With().Str("run_id", uuid.NewString()))

	seed := cfg.Seed.RandomSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	log.Info().
		Str("app", cfg.App.Name).
		Str("env", cfg.App.Env).
		Int64("semilla", seed).
		Msg("iniciando generación de datos demo")

	// Datos maestros
	businesses := generator.NewBusinessGenerator(rng).Generate(cfg.Seed.Businesses)
	products := generator.NewProductGenerator(rng).Generate(cfg.Seed.Products)
	warehouses := generator.NewWarehouseGenerator(rng).Generate(businesses, 2, 4)

	if !logReport(log, "datos base", validation.ValidateBaseData(businesses, products, warehouses)) {
		os.Exit(1)
	}
	report.BaseSummary(log, businesses, products, warehouses)

	// Datos transaccionales
	userGen, err := generator.NewUserGenerator(rng, cfg.Seed.DemoPassword)
	if err != nil {
		log.Fatal().Err(err).Msg("preparar generador de usuarios")
	}
	users := userGen.Generate(businesses, 2, 5)

	now := time.Now()
	stock := entity.NewStockTable(generator.NewStockGenerator(rng, now).Generate(businesses, warehouses, products))
	report.StockSummary(log, stock, products)

	sim := simulation.NewSimulator(rng, log.Zerolog())
	transactions, updatedStock, err := sim.Simulate(stock, users, warehouses, products, businesses, simulation.Params{
		PeriodDays:  cfg.Seed.MonthsBack * 30,
		TargetCount: cfg.Seed.TargetTransactions,
		Now:         now,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("simular transacciones")
	}

	if !logReport(log, "datos transaccionales", validation.ValidateTransactionalData(users, updatedStock, transactions, businesses, warehouses, products)) {
		os.Exit(1)
	}
	report.TransactionSummary(log, transactions)

	// Persistencia CSV
	store, err := csvstore.New(cfg.Seed.OutputDir)
	if err != nil {
		log.Fatal().Err(err).Msg("preparar directorio de salida")
	}
	saves := []struct {
		name string
		fn   func() error
	}{
		{csvstore.FileBusinesses, func() error { return store.SaveBusinesses(businesses) }},
		{csvstore.FileProducts, func() error { return store.SaveProducts(products) }},
		{csvstore.FileWarehouses, func() error { return store.SaveWarehouses(warehouses) }},
		{csvstore.FileUsers, func() error { return store.SaveUsers(users) }},
		{csvstore.FileStock, func() error { return store.SaveStock(updatedStock) }},
		{csvstore.FileTransactions, func() error { return store.SaveTransactions(transactions) }},
	}
	for _, s := range saves {
		if err := s.fn(); err != nil {
			log.Fatal().Err(err).Str("archivo", s.name).Msg("escribir CSV")
		}
		log.Info().Str("archivo", store.Path(s.name)).Msg("CSV escrito")
	}

	// Carga opcional en PostgreSQL
	if cfg.DB.DatabaseURL != "" {
		ctx := context.Background()
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()

		loader := postgres.NewLoader(pool)
		if err := loader.EnsureSchema(ctx); err != nil {
			log.Fatal().Err(err).Msg("crear esquema")
		}
		if err := loader.Load(ctx, postgres.Dataset{
			Businesses:   businesses,
			Products:     products,
			Warehouses:   warehouses,
			Users:        users,
			Stock:        updatedStock,
			Transactions: transactions,
		}); err != nil {
			log.Fatal().Err(err).Msg("cargar dataset en PostgreSQL")
		}
		log.Info().Msg("dataset cargado en PostgreSQL")
	}

	log.Info().Msg("generación completada")
}

// logReport vuelca errores y warnings de una validación; devuelve true si el
// dataset es válido.
func logReport(log *logger.Logger, stage string, r *validation.Report) bool {
	for _, w := range r.Warnings {
		log.Warn().Str("etapa", stage).Msg(w)
	}
	for _, e := range r.Errors {
		log.Error().Str("etapa", stage).Msg(e)
	}
	if !r.OK() {
		log.Error().Err(domain.ErrIntegrityCheck).Str("etapa", stage).Int("errores", len(r.Errors)).Msg("validación fallida")
		return false
	}
	log.Info().Str("etapa", stage).Int("advertencias", len(r.Warnings)).Msg("validación superada")
	return true
}
