package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/emergency_dispatch_system/internal/config"
)

const applicationName = "emergency_dispatch_system"

// NewPostgresDB открывает пул соединений для истории выездов
func NewPostgresDB(ctx context.Context, appCfg *config.Config) (*pgxpool.Pool, error) {
	cfgPool, err := pgxpool.ParseConfig(appCfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("postgres: invalid DATABASE_URL: %w", err)
	}
	if _, ok := cfgPool.ConnConfig.RuntimeParams["application_name"]; !ok {
		cfgPool.ConnConfig.RuntimeParams["application_name"] = applicationName
	}
	// записи идут только из обработчика событий симуляции
	if appCfg.DatabaseMaxConns > 0 {
		cfgPool.MaxConns = appCfg.DatabaseMaxConns
	}

	dbpool, err := pgxpool.NewWithConfig(ctx, cfgPool)
	if err != nil {
		return nil, fmt.Errorf("postgres: could not create pool: %w", err)
	}

	if err := dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return nil, fmt.Errorf("postgres: ping failed: %w", err)
	}

	return dbpool, nil
}
