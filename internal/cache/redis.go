// Package cache кеширует готовые месячные календари в Redis.
// Кеш строго вспомогательный: любая ошибка Redis трактуется как промах,
// расчет всегда может быть выполнен заново по хранилищу.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/premiermedia/AdBookingService/internal/domain"
)

// calendarKeyPattern покрывает все ключи календарей для инвалидации
const calendarKeyPattern = "calendar:*"

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RedisCalendarCache кеш календарей поверх Redis
type RedisCalendarCache struct {
	client *redis.Client
	ttl    time.Duration
	logger Logger
}

// NewRedisCalendarCache создает кеш календарей
func NewRedisCalendarCache(client *redis.Client, ttl time.Duration, logger Logger) *RedisCalendarCache {
	return &RedisCalendarCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// GetCalendar читает календарь из кеша. Любая ошибка - промах.
func (c *RedisCalendarCache) GetCalendar(ctx context.Context, key string) (domain.MonthlyCalendar, bool) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		c.logger.Warn("cache: get %s failed: %v", key, err)
		return nil, false
	}

	var calendar domain.MonthlyCalendar
	if err := json.Unmarshal(data, &calendar); err != nil {
		c.logger.Warn("cache: corrupt entry %s: %v", key, err)
		return nil, false
	}
	return calendar, true
}

// SetCalendar записывает календарь в кеш. Ошибки записи только логируются.
func (c *RedisCalendarCache) SetCalendar(ctx context.Context, key string, calendar domain.MonthlyCalendar) {
	data, err := json.Marshal(calendar)
	if err != nil {
		c.logger.Error("cache: marshal %s failed: %v", key, err)
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.Warn("cache: set %s failed: %v", key, err)
	}
}

// InvalidateCalendars удаляет все закешированные календари. Вызывается после
// каждой записи бронирования или изменения инвентаря - занятость могла
// измениться в любом месяце.
func (c *RedisCalendarCache) InvalidateCalendars(ctx context.Context) {
	var cursor uint64
	for {
		keys, next, err := c.client.Scan(ctx, cursor, calendarKeyPattern, 100).Result()
		if err != nil {
			c.logger.Warn("cache: scan failed during invalidation: %v", err)
			return
		}
		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				c.logger.Warn("cache: delete failed during invalidation: %v", err)
				return
			}
		}
		cursor = next
		if cursor == 0 {
			return
		}
	}
}
