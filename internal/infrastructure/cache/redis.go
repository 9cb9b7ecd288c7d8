// Package cache kritik stok raporu gibi kısa ömürlü sonuçlar için Redis
// önbelleğini sağlar. Redis yapılandırılmamışsa no-op istemci kullanılır;
// uygulama önbelleksiz de aynı şekilde çalışır.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/santiyepro/santiye-api/internal/application/usecase"
)

var _ usecase.Cache = (*RedisClient)(nil)
var _ usecase.Cache = (*NopClient)(nil)

// RedisClient usecase.Cache portunun Redis uygulaması.
type RedisClient struct {
	rdb *redis.Client
}

// NewRedisClient Redis istemcisini kurar ve bağlantıyı PING ile doğrular.
func NewRedisClient(ctx context.Context, addr string) (*RedisClient, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &RedisClient{rdb: rdb}, nil
}

// Get anahtarın değerini döner; ikinci dönüş anahtarın bulunup bulunmadığıdır.
func (c *RedisClient) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := c.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

// Set değeri TTL ile yazar.
func (c *RedisClient) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	return c.rdb.Set(ctx, key, value, ttl).Err()
}

// Del anahtarları siler; olmayan anahtar hata değildir.
func (c *RedisClient) Del(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return c.rdb.Del(ctx, keys...).Err()
}

// Close bağlantıyı kapatır.
func (c *RedisClient) Close() error {
	return c.rdb.Close()
}

// NopClient önbellek kapalıyken kullanılan boş uygulama: hiçbir şey saklamaz,
// her okuma ıskalar.
type NopClient struct{}

// NewNopClient no-op istemciyi döner.
func NewNopClient() *NopClient { return &NopClient{} }

func (*NopClient) Get(context.Context, string) (string, bool, error) { return "", false, nil }

func (*NopClient) Set(context.Context, string, string, time.Duration) error { return nil }

func (*NopClient) Del(context.Context, ...string) error { return nil }
