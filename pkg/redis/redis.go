package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"JobTracker/pkg/util"

	"github.com/redis/go-redis/v9"
)

var client *redis.Client

// ErrNil key 不存在
var ErrNil = redis.Nil

// SetClient 设置 Redis 客户端（由 internal/initial 调用）
func SetClient(c *redis.Client) {
	client = c
}

// Close 关闭 Redis 连接
func Close() error {
	if client == nil {
		return nil
	}
	return client.Close()
}

// IsConnected 检查 Redis 是否已连接
func IsConnected() bool {
	return client != nil
}

// checkClient 检查客户端是否可用
func checkClient() error {
	if client == nil {
		return fmt.Errorf("redis not connected")
	}
	return nil
}

// ==================== String 操作 ====================

// Get 获取字符串值
func Get(ctx context.Context, key string) (string, error) {
	if err := checkClient(); err != nil {
		return "", err
	}
	return client.Get(ctx, key).Result()
}

// Set 设置字符串值
func Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	if err := checkClient(); err != nil {
		return err
	}
	return client.Set(ctx, key, value, expiration).Err()
}

// SetNX 仅在 key 不存在时设置值
func SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) (bool, error) {
	if err := checkClient(); err != nil {
		return false, err
	}
	return client.SetNX(ctx, key, value, expiration).Result()
}

// Del 删除 key
func Del(ctx context.Context, keys ...string) (int64, error) {
	if err := checkClient(); err != nil {
		return 0, err
	}
	return client.Del(ctx, keys...).Result()
}

// ==================== 分布式锁 ====================

// 只删除自己持有的锁，避免锁过期后被别的实例重新获取时误删
var unlockScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// ErrLockHeld 锁已被其他持有者占用
var ErrLockHeld = errors.New("lock is held by another owner")

// Locker 基于 SETNX 的互斥锁，提醒扫描用它保证同一时间只有一个扫描在跑
type Locker struct{}

// TryLock 获取锁，成功时返回释放函数；锁被占用返回 ErrLockHeld
func (Locker) TryLock(ctx context.Context, key string, ttl time.Duration) (func(), error) {
	token := util.GenerateShortUUID()
	ok, err := SetNX(ctx, key, token, ttl)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrLockHeld
	}
	return func() {
		if client == nil {
			return
		}
		// 释放时不沿用调用方 ctx，调用方可能已超时
		releaseCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = unlockScript.Run(releaseCtx, client, []string{key}, token).Err()
	}, nil
}
