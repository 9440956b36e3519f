package observability

import (
	"github.com/caarlos0/env/v10"
)

// Config конфигурация OpenTelemetry (traces + propagator)
type Config struct {
	// Enabled включить экспорт в OTLP collector
	Enabled bool `env:"OTEL_ENABLED" envDefault:"false"`
	// OTLPEndpoint адрес OTLP gRPC, например "127.0.0.1:4317" или "otel-collector:4317"
	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:"127.0.0.1:4317"`
	// SamplingRatio доля трасс для семплирования (0..1), 1.0 = все
	SamplingRatio float64 `env:"OTEL_SAMPLING_RATIO" envDefault:"1.0"`
	// ServiceName имя сервиса
	ServiceName string
	// DeploymentEnvironment окружение (local, docker)
	DeploymentEnvironment string
	// ServiceVersion опционально, например из build
	ServiceVersion string
}

// LoadEnv загружает OTEL_* переменные окружения в конфигурацию
func LoadEnv(cfg *Config) error {
	return env.Parse(cfg)
}
