package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/cityfix_backend/internal/config"
)

// NewPostgresDB создает пул соединений PostgreSQL для профилей пользователей
func NewPostgresDB(ctx context.Context, appCfg *config.Config) (*pgxpool.Pool, error) {
	cfgPool, err := poolConfig(appCfg)
	if err != nil {
		return nil, err
	}

	dbpool, err := pgxpool.NewWithConfig(ctx, cfgPool)
	if err != nil {
		return nil, fmt.Errorf("не удалось создать пул соединений: %w", err)
	}

	pingTimeout := appCfg.PostgresPingTimeout
	if pingTimeout <= 0 {
		pingTimeout = 10 * time.Second
	}
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := dbpool.Ping(pingCtx); err != nil {
		dbpool.Close()
		return nil, fmt.Errorf("не удалось выполнить ping к postgres: %w", err)
	}

	return dbpool, nil
}

// poolConfig переносит настройки пула из конфигурации. Нулевые значения оставляют умолчания pgx.
func poolConfig(appCfg *config.Config) (*pgxpool.Config, error) {
	cfgPool, err := pgxpool.ParseConfig(appCfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("ошибка при разборе конфигурации postgres: %w", err)
	}
	if appCfg.PostgresMaxConns > 0 {
		cfgPool.MaxConns = int32(appCfg.PostgresMaxConns)
	}
	if appCfg.PostgresMinConns > 0 {
		cfgPool.MinConns = int32(appCfg.PostgresMinConns)
	}
	if appCfg.PostgresMaxConnIdleTime > 0 {
		cfgPool.MaxConnIdleTime = appCfg.PostgresMaxConnIdleTime
	}
	if appCfg.PostgresMaxConnLifetime > 0 {
		cfgPool.MaxConnLifetime = appCfg.PostgresMaxConnLifetime
	}
	return cfgPool, nil
}
