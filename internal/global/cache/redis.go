package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"team-checkin-system/config"

	"github.com/redis/go-redis/v9"
)

var client *redis.Client

// Init 初始化 Redis 客户端，未配置 host 时整个缓存层退化为空操作
func Init() {
	cfg := config.Get()
	if cfg.Redis.Host == "" {
		return
	}
	client = redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Host + ":" + cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}

// Enabled 缓存是否启用
func Enabled() bool {
	return client != nil
}

// GetJSON 读取缓存并反序列化到 target，未命中返回 false
func GetJSON(ctx context.Context, key string, target any) (bool, error) {
	if client == nil {
		return false, nil
	}
	cached, err := client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(cached), target); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON 序列化后写入缓存
func SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	if client == nil {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return client.Set(ctx, key, data, ttl).Err()
}

// Delete 删除缓存键
func Delete(ctx context.Context, keys ...string) error {
	if client == nil || len(keys) == 0 {
		return nil
	}
	return client.Del(ctx, keys...).Err()
}
