package config

import (
	"fmt"
	"log"
	"os"
	"time"
)

// Env представляет окружение приложения
type Env string

const (
	// EnvLocal - локальное окружение (для разработки на хосте)
	EnvLocal Env = "local"
	// EnvDocker - Docker окружение (для запуска в контейнерах)
	EnvDocker Env = "docker"
)

// Config содержит конфигурацию платёжного шлюза
type Config struct {
	AppEnv             Env
	HTTPAddr           string
	BankBaseURL        string
	BankRequestTimeout time.Duration
	ShutdownTimeout    time.Duration
}

// Load загружает конфигурацию из переменных окружения
// Читает APP_ENV и устанавливает дефолты в зависимости от окружения
func Load() (Config, error) {
	cfg := Config{}

	// Читаем APP_ENV
	appEnvStr := getString("APP_ENV", string(EnvLocal))
	appEnv := Env(appEnvStr)
	if appEnv != EnvLocal && appEnv != EnvDocker {
		return Config{}, fmt.Errorf("invalid APP_ENV: %s (must be 'local' or 'docker')", appEnvStr)
	}
	cfg.AppEnv = appEnv

	// HTTP_ADDR
	if cfg.AppEnv == EnvLocal {
		cfg.HTTPAddr = getString("HTTP_ADDR", "127.0.0.1:8080")
	} else {
		cfg.HTTPAddr = getString("HTTP_ADDR", "0.0.0.0:8080")
	}

	// BANK_API_BASE_URL - единственная внешняя настройка адреса банка-эквайера
	if cfg.AppEnv == EnvLocal {
		cfg.BankBaseURL = getString("BANK_API_BASE_URL", "http://127.0.0.1:8090")
	} else {
		cfg.BankBaseURL = getString("BANK_API_BASE_URL", "http://bank-simulator:8080")
	}

	// BANK_REQUEST_TIMEOUT
	bankTimeout, err := getDuration("BANK_REQUEST_TIMEOUT", "10s")
	if err != nil {
		return Config{}, fmt.Errorf("invalid BANK_REQUEST_TIMEOUT: %w", err)
	}
	cfg.BankRequestTimeout = bankTimeout

	// SHUTDOWN_TIMEOUT
	shutdownTimeout, err := getDuration("SHUTDOWN_TIMEOUT", "5s")
	if err != nil {
		return Config{}, fmt.Errorf("invalid SHUTDOWN_TIMEOUT: %w", err)
	}
	cfg.ShutdownTimeout = shutdownTimeout

	// Валидация
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate проверяет корректность конфигурации
func (c Config) Validate() error {
	if c.HTTPAddr == "" {
		return fmt.Errorf("HTTP_ADDR is required")
	}
	if c.BankBaseURL == "" {
		return fmt.Errorf("BANK_API_BASE_URL is required")
	}
	if c.BankRequestTimeout <= 0 {
		return fmt.Errorf("BANK_REQUEST_TIMEOUT must be positive")
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}

// Log выводит конфигурацию в лог
func (c Config) Log() {
	log.Printf("Config loaded:")
	log.Printf("  APP_ENV: %s", c.AppEnv)
	log.Printf("  HTTP_ADDR: %s", c.HTTPAddr)
	log.Printf("  BANK_API_BASE_URL: %s", c.BankBaseURL)
	log.Printf("  BANK_REQUEST_TIMEOUT: %s", c.BankRequestTimeout)
	log.Printf("  SHUTDOWN_TIMEOUT: %s", c.ShutdownTimeout)
}

// getString читает переменную окружения или возвращает дефолт
func getString(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getDuration читает duration из переменной окружения или возвращает дефолт
func getDuration(key, defaultValue string) (time.Duration, error) {
	return time.ParseDuration(getString(key, defaultValue))
}
