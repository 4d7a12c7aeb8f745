package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

var (
	// ErrReadConfig возвращается, если файл конфигурации не удалось прочитать
	ErrReadConfig = errors.New("config: failed to read config file")

	// ErrInvalidConfig возвращается при некорректных значениях конфигурации
	ErrInvalidConfig = errors.New("config: invalid config")
)

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Redis     RedisConfig     `toml:"redis"`
	Notifier  NotifierConfig  `toml:"notifier"`
	Contracts ContractsConfig `toml:"contracts"`
	Landlord  LandlordConfig  `toml:"landlord"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN возвращает строку подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File   string `toml:"file"`
	Level  string `toml:"level"`
	Format string `toml:"format"` // json или console
}

// MetricsConfig настройки prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// RedisConfig настройки Redis для флагов скрытия подсказок интерфейса
type RedisConfig struct {
	Enabled     bool   `toml:"enabled"`
	Addr        string `toml:"addr"`
	Password    string `toml:"password"`
	DB          int    `toml:"db"`
	DismissTTL  int    `toml:"dismiss_ttl"` // секунды, 0 - без срока
	DialTimeout int    `toml:"dial_timeout"`
}

// NotifierConfig настройки внешнего сервиса отправки напоминаний (SMS/Zalo шлюз)
type NotifierConfig struct {
	Enabled    bool   `toml:"enabled"`
	URL        string `toml:"url"`
	Token      string `toml:"token"`
	Timeout    int    `toml:"timeout"` // секунды
	RetryCount int    `toml:"retry_count"`
	Workers    int    `toml:"workers"`
}

// ContractsConfig бизнес-настройки договоров
type ContractsConfig struct {
	// ExtensionPolicy rollover (как в исходной системе) или clamp
	ExtensionPolicy string `toml:"extension_policy"`
	// Location часовой пояс для вычисления "сегодня"
	Location   string `toml:"location"`
	PaymentDay int    `toml:"payment_day"`
}

// Policy возвращает политику продления договора
func (c ContractsConfig) Policy() domain.ExtensionPolicy {
	return domain.ExtensionPolicy(c.ExtensionPolicy)
}

// LandlordConfig данные арендодателя для печатной формы договора
type LandlordConfig struct {
	FullName string `toml:"full_name"`
	Phone    string `toml:"phone"`
	IDCard   string `toml:"id_card"`
	Address  string `toml:"address"`
	Bank     string `toml:"bank"`
}

// Load читает конфигурацию из TOML файла, применяет значения по умолчанию
// и переопределения из окружения (включая необязательный .env)
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}

	// .env необязателен
	_ = godotenv.Load()
	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "rental",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level:  "info",
			Format: "json",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "rental_service",
		},
		Redis: RedisConfig{
			Addr:        "localhost:6379",
			DismissTTL:  0,
			DialTimeout: 5,
		},
		Notifier: NotifierConfig{
			Timeout:    10,
			RetryCount: 2,
			Workers:    4,
		},
		Contracts: ContractsConfig{
			ExtensionPolicy: string(domain.MonthRollover),
			Location:        "Asia/Ho_Chi_Minh",
			PaymentDay:      5,
		},
	}
}

// Validate проверяет корректность конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535", ErrInvalidConfig)
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("%w: database.host and database.dbname are required", ErrInvalidConfig)
	}
	if !c.Contracts.Policy().IsValid() {
		return fmt.Errorf("%w: contracts.extension_policy must be rollover or clamp", ErrInvalidConfig)
	}
	if c.Contracts.PaymentDay < 1 || c.Contracts.PaymentDay > 28 {
		return fmt.Errorf("%w: contracts.payment_day must be in 1..28", ErrInvalidConfig)
	}
	if c.Notifier.Enabled {
		if c.Notifier.URL == "" {
			return fmt.Errorf("%w: notifier.url is required when notifier is enabled", ErrInvalidConfig)
		}
		if c.Notifier.Workers <= 0 {
			return fmt.Errorf("%w: notifier.workers must be positive", ErrInvalidConfig)
		}
	}
	if c.Redis.Enabled && c.Redis.Addr == "" {
		return fmt.Errorf("%w: redis.addr is required when redis is enabled", ErrInvalidConfig)
	}
	return nil
}

// applyEnv переопределяет секреты и адреса из переменных окружения
func applyEnv(cfg *Config) {
	if v := os.Getenv("RENTAL_DB_HOST"); v != "" {
		cfg.Database.Host = v
	}
	if v := os.Getenv("RENTAL_DB_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Database.Port = port
		}
	}
	if v := os.Getenv("RENTAL_DB_USER"); v != "" {
		cfg.Database.User = v
	}
	if v := os.Getenv("RENTAL_DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("RENTAL_REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("RENTAL_REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("RENTAL_NOTIFIER_TOKEN"); v != "" {
		cfg.Notifier.Token = v
	}
}
