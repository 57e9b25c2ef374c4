package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	HTTPAddr       string        `mapstructure:"http_addr"`
	LogLevel       string        `mapstructure:"log_level"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`

	CartAPIURL   string `mapstructure:"cart_api_url"`
	CartAPIToken string `mapstructure:"cart_api_token"`

	RedisAddr     string        `mapstructure:"redis_addr"`
	HoursCacheTTL time.Duration `mapstructure:"hours_cache_ttl"`

	KafkaBroker string `mapstructure:"kafka_broker"`
	EventsTopic string `mapstructure:"events_topic"`

	PromoFlatDiscount float64 `mapstructure:"promo_flat_discount"`
	HoursStrictWindow bool    `mapstructure:"hours_strict_window"`
	HoursTimezone     string  `mapstructure:"hours_timezone"`
	PickupBaseURL     string  `mapstructure:"pickup_base_url"`

	SessionTTL           time.Duration `mapstructure:"session_ttl"`
	SessionSweepInterval time.Duration `mapstructure:"session_sweep_interval"`

	DBConfig `mapstructure:",squash"`

	CartSvcURL     string `mapstructure:"cart_svc_url"`
	CheckoutSvcURL string `mapstructure:"checkout_svc_url"`
}

type DBConfig struct {
	Host     string `mapstructure:"db_host"`
	Port     string `mapstructure:"db_port"`
	Name     string `mapstructure:"db_name"`
	User     string `mapstructure:"db_user"`
	Password string `mapstructure:"db_password"`
}

func (c DBConfig) DSN() string {
	return "host=" + c.Host + " port=" + c.Port + " user=" + c.User +
		" password=" + c.Password + " dbname=" + c.Name + " sslmode=disable"
}

// Location resolves HoursTimezone, falling back to the process zone.
func (c *Config) Location() (*time.Location, error) {
	if c.HoursTimezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(c.HoursTimezone)
}

const (
	ServiceGateway  = "api-gateway"
	ServiceCart     = "cart-svc"
	ServiceCheckout = "checkout-svc"
)

// listenAddrs keeps the binaries off each other's ports and in line with
// cart_svc_url and checkout_svc_url.
var listenAddrs = map[string]string{
	ServiceGateway:  ":8080",
	ServiceCart:     ":8081",
	ServiceCheckout: ":8082",
}

var defaults = map[string]interface{}{
	"http_addr":           ":8080",
	"log_level":           "info",
	"request_timeout":     "10s",
	"cart_api_url":        "http://localhost:8081",
	"redis_addr":          "",
	"hours_cache_ttl":     "5m",
	"kafka_broker":        "",
	"events_topic":        "checkout-events",
	"promo_flat_discount": 5.0,
	"hours_strict_window": false,
	"hours_timezone":      "",
	"pickup_base_url":     "http://localhost:8080",

	"session_ttl":            "30m",
	"session_sweep_interval": "1m",

	"db_host":          "localhost",
	"db_port":          "5432",
	"db_name":          "overcooked",
	"db_user":          "postgres",
	"db_password":      "",
	"cart_svc_url":     "http://localhost:8081",
	"checkout_svc_url": "http://localhost:8082",
}

// New returns a viper instance with defaults for service set and environment
// lookup on. HTTP_ADDR, CART_API_URL and friends override the matching keys.
func New(service string) *viper.Viper {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	if addr, ok := listenAddrs[service]; ok {
		v.SetDefault("http_addr", addr)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads .env when present, then cfgFile when given, and decodes v.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env: %w", err)
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}
	if cfg.PromoFlatDiscount <= 0 {
		return nil, fmt.Errorf("promo_flat_discount must be positive, got %v", cfg.PromoFlatDiscount)
	}
	return &cfg, nil
}
