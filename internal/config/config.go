package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/stpnv0/HotelDesk/internal/domain"
	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Logger  LoggerConfig  `yaml:"logger"  validate:"required"`
	Storage StorageConfig `yaml:"storage" validate:"required"`
	Hotel   HotelConfig   `yaml:"hotel"   validate:"required"`
	Payment PaymentConfig `yaml:"payment" validate:"required"`
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"    validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"    validate:"required,oneof=debug info warn error"`
	Mode   string `yaml:"mode"   env:"LOG_MODE"   env-default:"release" validate:"required,oneof=debug release test"`
}

// LogLevel преобразует строковый уровень в logger.Level из wbf.
func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

// LogEngine преобразует строковый движок в logger.Engine из wbf.
func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type StorageConfig struct {
	Path string `yaml:"path" env:"STORAGE_PATH" env-default:"bookings.txt" validate:"required"`
}

type HotelConfig struct {
	StandardCapacity int     `yaml:"standard_capacity" env:"HOTEL_STANDARD_CAPACITY" env-default:"10"   validate:"min=0"`
	StandardPrice    float64 `yaml:"standard_price"    env:"HOTEL_STANDARD_PRICE"    env-default:"1500" validate:"min=0"`
	DeluxeCapacity   int     `yaml:"deluxe_capacity"   env:"HOTEL_DELUXE_CAPACITY"   env-default:"6"    validate:"min=0"`
	DeluxePrice      float64 `yaml:"deluxe_price"      env:"HOTEL_DELUXE_PRICE"      env-default:"3000" validate:"min=0"`
	SuiteCapacity    int     `yaml:"suite_capacity"    env:"HOTEL_SUITE_CAPACITY"    env-default:"3"    validate:"min=0"`
	SuitePrice       float64 `yaml:"suite_price"       env:"HOTEL_SUITE_PRICE"       env-default:"6000" validate:"min=0"`
}

// Classes maps the configured room classes by category.
func (h HotelConfig) Classes() map[domain.Category]domain.RoomClass {
	return map[domain.Category]domain.RoomClass{
		domain.CategoryStandard: {Capacity: h.StandardCapacity, PricePerNight: h.StandardPrice},
		domain.CategoryDeluxe:   {Capacity: h.DeluxeCapacity, PricePerNight: h.DeluxePrice},
		domain.CategorySuite:    {Capacity: h.SuiteCapacity, PricePerNight: h.SuitePrice},
	}
}

type PaymentConfig struct {
	ProcessingDelay time.Duration `yaml:"processing_delay" env:"PAYMENT_PROCESSING_DELAY" env-default:"700ms" validate:"gte=0"`
}

func MustLoad() *Config {
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
