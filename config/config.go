package config

import (
	"os"
	"strconv"
)

// Ambil environment variable, pakai fallback kalau kosong atau tidak di-set
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

// Sama seperti GetEnv tapi hasilnya integer
func GetEnvAsInt(key string, fallback int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

// Secret JWT dibaca setiap kali dipakai, jangan disimpan di variabel package
// karena .env baru di-load di main()
func JWTSecret() []byte {
	return []byte(GetEnv("JWT_SECRET", "rahasia-negara-sangat-kuat"))
}
