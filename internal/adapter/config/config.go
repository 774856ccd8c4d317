package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	Database *Database
	HTTP     *HTTP
	App      *App
	Order    *Order
	Operator *Operator
}

const AppModeProduction = "PROD"
const AppModeDevelop = "DEV"

type App struct {
	LogLevel string `env:"LOG_LEVEL"`
	Mode     string `env:"APP_MODE"`
}

type Database struct {
	DSN string `env:"DATABASE_URI"`
}

type HTTP struct {
	HostString     string   `env:"RUN_ADDRESS"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

type Order struct {
	MenuFile         string        `env:"MENU_FILE"`
	TimeZone         string        `env:"TIME_ZONE"`
	TickInterval     time.Duration `env:"TICK_INTERVAL"`
	MessagingBaseURL string        `env:"MESSAGING_BASE_URL"`
	DefaultPhone     string        `env:"DEFAULT_PHONE"`
}

type Operator struct {
	PasswordHash string        `env:"OPERATOR_PASSWORD_HASH"`
	TokenTTL     time.Duration `env:"OPERATOR_TOKEN_TTL"`
}

func NewConfig() (*Config, error) {
	return newConfig(flag.CommandLine, os.Args[1:])
}

func newConfig(fs *flag.FlagSet, args []string) (*Config, error) {
	// .env is optional, real environment wins
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading .env: %w", err)
	}

	var db Database
	var http HTTP
	var app App
	var order Order
	var operator Operator

	fs.StringVar(&db.DSN, "d", "", "Database string, in-memory settings when empty")
	fs.StringVar(&http.HostString, "a", `localhost:8080`, "HTTP server endpoint")
	fs.StringVar(&app.LogLevel, "l", `info`, "Log level")
	fs.StringVar(&app.Mode, "m", AppModeDevelop, "PROD / DEV")
	fs.StringVar(&order.MenuFile, "menu", "", "Menu JSON file, embedded menu when empty")
	fs.StringVar(&order.TimeZone, "tz", "America/Guayaquil", "Business time zone")
	fs.DurationVar(&order.TickInterval, "tick", time.Minute, "Re-evaluation interval")
	fs.StringVar(&order.MessagingBaseURL, "wa", "https://wa.me", "Messaging service base URL")
	fs.StringVar(&order.DefaultPhone, "phone", "", "Phone number used until one is configured")
	fs.StringVar(&operator.PasswordHash, "op", "", "Operator password bcrypt hash")
	fs.DurationVar(&operator.TokenTTL, "ttl", 12*time.Hour, "Operator token lifetime")
	err = fs.Parse(args)
	if err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	err = env.Parse(&db)
	if err != nil {
		return nil, fmt.Errorf("error parsing env database config: %w", err)
	}
	err = env.Parse(&http)
	if err != nil {
		return nil, fmt.Errorf("error parsing http config: %w", err)
	}
	err = env.Parse(&app)
	if err != nil {
		return nil, fmt.Errorf("error parsing app config: %w", err)
	}
	err = env.Parse(&order)
	if err != nil {
		return nil, fmt.Errorf("error parsing order config: %w", err)
	}
	err = env.Parse(&operator)
	if err != nil {
		return nil, fmt.Errorf("error parsing operator config: %w", err)
	}

	config := Config{
		Database: &db,
		HTTP:     &http,
		App:      &app,
		Order:    &order,
		Operator: &operator,
	}

	return &config, nil
}
