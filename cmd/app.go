package main

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/hospital/turns-service/internal/availability"
	"github.com/hospital/turns-service/internal/config"
	slotConfigRepo "github.com/hospital/turns-service/internal/infra/storage/slotconfig"
	catalogClient "github.com/hospital/turns-service/internal/integrations/schedulecatalog"
	slotConfigService "github.com/hospital/turns-service/internal/service/slotconfig"
	"github.com/hospital/turns-service/pkg/dbmetrics"
	"github.com/hospital/turns-service/pkg/logger"
	"github.com/hospital/turns-service/pkg/metrics"
)

// app общие зависимости команд
type app struct {
	cfg      *config.Config
	log      *logger.Logger
	metrics  *metrics.Metrics
	location *time.Location

	db          *sql.DB
	stopStatsCh chan struct{}
}

func newApp(configPath string) (*app, error) {
	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loc, err := cfg.Availability.Location()
	if err != nil {
		log.Close()
		return nil, fmt.Errorf("failed to load timezone %q: %w", cfg.Availability.Timezone, err)
	}

	a := &app{
		cfg:         cfg,
		log:         log,
		location:    loc,
		stopStatsCh: make(chan struct{}),
	}

	// Коллекторы создаются всегда, наружу отдаются только при включенных метриках
	a.metrics = metrics.New(cfg.Metrics.ServiceName)

	log.Info("Configuration loaded from %s (timezone=%s, locale=%s)", configPath, cfg.Availability.Timezone, cfg.Availability.Locale)
	return a, nil
}

// openDB подключается к базе настроек слотов и возвращает исполнитель запросов
func (a *app) openDB() (slotConfigRepo.DBExecutor, error) {
	db, err := sql.Open("postgres", a.cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Настраиваем connection pool
	db.SetMaxOpenConns(a.cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(a.cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(a.cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	a.db = db
	a.log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		a.cfg.Database.Host, a.cfg.Database.Port, a.cfg.Database.DBName)

	if a.cfg.Metrics.Enabled {
		a.log.Info("Database metrics collection started")
		return dbmetrics.WrapWithDefault(db, a.metrics, a.stopStatsCh), nil
	}
	return db, nil
}

func (a *app) newCatalogClient() *catalogClient.Client {
	return catalogClient.NewClient(
		a.cfg.ScheduleCatalog.URL,
		a.cfg.ScheduleCatalog.APIKey,
		a.cfg.ScheduleCatalog.TimeoutDuration(),
		a.log,
	)
}

func (a *app) newSlotConfigService(db slotConfigRepo.DBExecutor) *slotConfigService.Service {
	return slotConfigService.NewService(slotConfigRepo.NewRepository(db), a.log)
}

// resolverFactory резолвер на сессию; configs может быть nil, тогда шаг сетки берется из конфигурации
func (a *app) resolverFactory(catalog availability.Catalog, configs availability.SlotConfigSource) func() *availability.Resolver {
	opts := availability.Options{
		DefaultIntervalMinutes: a.cfg.Availability.DefaultIntervalMinutes,
		Location:               a.location,
	}
	return func() *availability.Resolver {
		return availability.NewResolver(catalog, configs, a.metrics, a.log, opts)
	}
}

func (a *app) Close() {
	close(a.stopStatsCh)
	if a.db != nil {
		a.db.Close()
	}
	a.log.Close()
}
