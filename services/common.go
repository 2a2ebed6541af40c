package services

import (
	"os"
	"strconv"
)

func GetEnv(key, fallback string) string {
	value := os.Getenv(key)
	if len(value) == 0 {
		return fallback
	}
	return value
}

func GetEnvInt(key string, fallback int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return value
}

func StrPointer(str string) *string {
	if str == "" {
		return nil
	}
	return &str
}

func StrValue(str *string) string {
	if str == nil {
		return ""
	}
	return *str
}
