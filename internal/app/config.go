package app

import (
	"flag"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is read from the environment first; command-line flags override it.
type Config struct {
	Port             int    `env:"PORT" env-default:"3000"`
	Env              string `env:"ENVIRONMENT" env-default:"dev"`
	BasePath         string `env:"BASE_PATH" env-default:"/theater"`
	OtelCollectorUrl string `env:"OTEL_COLLECTOR_URL"`
	DB               DBConfig
}

type DBConfig struct {
	DSN          string        `env:"DB_DSN"`
	MaxOpenConns int           `env:"DB_MAX_OPEN_CONNS" env-default:"25"`
	MaxIdleTime  time.Duration `env:"DB_MAX_IDLE_TIME" env-default:"15m"`
	AutoMigrate  bool          `env:"DB_AUTO_MIGRATE" env-default:"false"`
}

// LoadConfig builds the configuration from the environment and args. The
// returned bool reports whether -version was requested.
func LoadConfig(args []string) (Config, bool, error) {
	var cfg Config

	err := cleanenv.ReadEnv(&cfg)
	if err != nil {
		return Config{}, false, err
	}

	fs := flag.NewFlagSet("api", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "port", cfg.Port, "server port")
	fs.StringVar(&cfg.Env, "env", cfg.Env, "Environment (dev|staging|prod)")
	fs.StringVar(&cfg.BasePath, "base-path", cfg.BasePath, "URL prefix of every API route")
	fs.StringVar(&cfg.OtelCollectorUrl, "otel-collector-url", cfg.OtelCollectorUrl, "OpenTelemetry collector gRPC endpoint")

	fs.StringVar(&cfg.DB.DSN, "db-dsn", cfg.DB.DSN, "PostgreSQL DSN")
	fs.IntVar(&cfg.DB.MaxOpenConns, "db-max-open-conns", cfg.DB.MaxOpenConns, "PostgreSQL max open connections")
	fs.DurationVar(&cfg.DB.MaxIdleTime, "db-max-idle-time", cfg.DB.MaxIdleTime, "PostgreSQL max idle time for connections")
	fs.BoolVar(&cfg.DB.AutoMigrate, "db-migrate", cfg.DB.AutoMigrate, "Apply database migrations on startup")

	displayVersion := fs.Bool("version", false, "Display version and exit")

	err = fs.Parse(args)
	if err != nil {
		return Config{}, false, err
	}

	cfg.BasePath = strings.TrimRight(cfg.BasePath, "/")

	return cfg, *displayVersion, nil
}
