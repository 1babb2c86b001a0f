package config

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

var RedisClient *redis.Client
var ctx = context.Background()

// Durasi blokir setelah percobaan login gagal berkali-kali
const LoginAttemptTTL = 15 * time.Minute

func ConnectRedis() {
	addr := GetEnv("REDIS_ADDR", "")
	if addr == "" {
		// Redis opsional: tanpa Redis, pembatasan percobaan login dimatikan
		fmt.Println("Redis tidak dikonfigurasi, rate limit login nonaktif.")
		return
	}

	RedisClient = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: GetEnv("REDIS_PASSWORD", ""),
		DB:       GetEnvAsInt("REDIS_DB", 0),
	})

	if _, err := RedisClient.Ping(ctx).Result(); err != nil {
		panic("Gagal koneksi ke Redis: " + err.Error())
	}

	fmt.Println("Koneksi Redis Berhasil!")
}

// Hitung percobaan login gagal untuk sebuah akun
func CheckLoginAttempts(identifier string) (int, error) {
	if RedisClient == nil {
		return 0, nil
	}

	key := fmt.Sprintf("login_attempts:%s", identifier)
	attempts, err := RedisClient.Get(ctx, key).Int()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return attempts, nil
}

func IncrementLoginAttempts(identifier string) error {
	if RedisClient == nil {
		return nil
	}

	key := fmt.Sprintf("login_attempts:%s", identifier)
	attempts, err := RedisClient.Incr(ctx, key).Result()
	if err != nil {
		return err
	}
	if attempts == 1 {
		// TTL hanya di-set saat counter pertama kali dibuat
		return RedisClient.Expire(ctx, key, LoginAttemptTTL).Err()
	}
	return nil
}

func ResetLoginAttempts(identifier string) error {
	if RedisClient == nil {
		return nil
	}
	return RedisClient.Del(ctx, fmt.Sprintf("login_attempts:%s", identifier)).Err()
}
