// Package cache implementa el caché de reportes sobre Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/Ventas-api/internal/application/report"
	"github.com/jhoicas/Ventas-api/internal/application/sales"
	"github.com/jhoicas/Ventas-api/pkg/config"
	"github.com/redis/go-redis/v9"
)

// Ensure RedisReportCache implements report.Cache and sales.ReportInvalidator.
var _ report.Cache = (*RedisReportCache)(nil)
var _ sales.ReportInvalidator = (*RedisReportCache)(nil)

// RedisReportCache caché de reportes con TTL. Las claves llevan el prefijo
// reports:<companyID>: para poder invalidar todo un comercio con SCAN.
type RedisReportCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisReportCache conecta a Redis y verifica con un ping.
func NewRedisReportCache(ctx context.Context, cfg config.RedisConfig) (*RedisReportCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &RedisReportCache{
		client: client,
		ttl:    time.Duration(cfg.TTL) * time.Second,
	}, nil
}

// Get lee y deserializa la clave. Devuelve false si no existe.
func (c *RedisReportCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("redis get: %w", err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("unmarshal cached report: %w", err)
	}
	return true, nil
}

// Set serializa y guarda el valor con el TTL configurado.
func (c *RedisReportCache) Set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// InvalidateCompany borra todas las claves de reportes del comercio.
func (c *RedisReportCache) InvalidateCompany(ctx context.Context, companyID string) error {
	pattern := fmt.Sprintf("reports:%s:*", companyID)
	var cursor uint64
	for {
		keys, next, err := c.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return fmt.Errorf("redis scan: %w", err)
		}
		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("redis del: %w", err)
			}
		}
		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}

// Close cierra la conexión.
func (c *RedisReportCache) Close() error {
	return c.client.Close()
}
