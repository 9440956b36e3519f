package kafka

import (
	"github.com/caarlos0/env/v10"
)

// Config содержит конфигурацию для подключения к Kafka
type Config struct {
	// Enabled включает публикацию событий; при false используется NoOpPublisher
	Enabled bool `env:"KAFKA_ENABLED" envDefault:"false"`
	// Brokers — список брокеров Kafka.
	// Значение зависит от среды выполнения:
	//   - локальная разработка (go run): localhost:19092
	//   - запуск в Docker: kafka:9092
	// Можно указать несколько брокеров через запятую: "broker1:9092,broker2:9092"
	Brokers []string `env:"KAFKA_BROKERS" envSeparator:","`
	// Topic — топик для событий платежей
	Topic string `env:"KAFKA_TOPIC" envDefault:"payment.processed"`
}

// LoadEnv загружает конфигурацию из переменных окружения
// Использует пакет caarlos0/env/v10 для парсинга env-тегов
func LoadEnv(cfg *Config) error {
	return env.Parse(cfg)
}

// DefaultConfig возвращает конфигурацию с дефолтными значениями для локальной разработки
func DefaultConfig() Config {
	return Config{
		Enabled: false,
		Brokers: []string{"localhost:19092"},
		Topic:   "payment.processed",
	}
}
