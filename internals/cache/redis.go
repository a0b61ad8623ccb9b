// internals/cache/redis.go
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	client *redis.Client
	ctx    = context.Background()
)

// InitRedis menyiapkan koneksi Redis untuk cache leaderboard.
// Kalau REDIS_ADDR kosong atau ping gagal, cache dimatikan dan semua
// operasi menjadi no-op.
func InitRedis() error {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return fmt.Errorf("REDIS_ADDR tidak diset")
	}

	client = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client = nil
		return err
	}

	log.Println("✅ Redis connected:", addr)
	return nil
}

func Enabled() bool {
	return client != nil
}

// GetJSON mengambil value cache dan unmarshal ke dest. false = cache miss.
func GetJSON(key string, dest interface{}) bool {
	if client == nil {
		return false
	}
	raw, err := client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		log.Printf("[WARN] cache %s corrupt, dibuang: %v", key, err)
		client.Del(ctx, key)
		return false
	}
	return true
}

// SetJSON menyimpan value sebagai JSON dengan TTL. Gagal simpan hanya dilog.
func SetJSON(key string, value interface{}, ttl time.Duration) {
	if client == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		log.Printf("[WARN] cache %s marshal err: %v", key, err)
		return
	}
	if err := client.Set(ctx, key, raw, ttl).Err(); err != nil {
		log.Printf("[WARN] cache %s set err: %v", key, err)
	}
}

func Close() {
	if client != nil {
		_ = client.Close()
	}
}
