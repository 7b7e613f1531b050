package config

import (
	"WooMasterKit/pkg/logging"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/gcfg.v1"
)

const DefaultPath = "./config/config.ini"

type (
	Config struct {
		SERVICE struct {
			PORT int
			// BaseURL is prepended to redirect locations, empty means relative.
			BaseURL string
		}
		LOG struct {
			Debug int
			Path  string
		}
		WOOCOMMERCE struct {
			URL             string
			Key             string
			Secret          string
			RPS             int
			Currency        string
			QueryStringAuth int
			Timeout         int
		}
		NONCE struct {
			Secret string
			// Lifetime in hours, WordPress uses a day.
			Lifetime int
		}
		ADMIN struct {
			User string
		}
		DBSQLITE struct {
			DB string
		}
		REPORT struct {
			// Driver is sqlite, redis or memory.
			Driver string
			// TTL in minutes, used by redis and memory.
			TTL int
		}
		REDIS struct {
			Addr     string
			Password string
			DB       int
		}
		TELEGRAM struct {
			BotToken string
			ChatID   int64
			Report   int
			Debug    int
		}
	}
)

var cfg *Config
var once sync.Once

// GetConfig reads ./config/config.ini once and exits the process if it can't.
func GetConfig() *Config {
	once.Do(func() {
		logger := logging.GetLogger()
		logger.Info("Config:>Read application configurations")

		c, err := Load(DefaultPath)
		if err != nil {
			logger.Fatalf("Config:>Failed to parse gcfg data: %v", err)
		}
		logger.Info("Config:>Config is read")
		cfg = c
	})

	return cfg
}

// Load reads an ini file, applies defaults and the .env overrides.
func Load(path string) (*Config, error) {
	c := new(Config)
	if err := gcfg.ReadFileInto(c, path); err != nil {
		return nil, errors.Wrapf(err, "failed gcfg.ReadFileInto(%s)", path)
	}

	// .env is optional, a missing file is not an error
	if err := godotenv.Load(); err != nil && !os.IsNotExist(errors.Cause(err)) {
		logging.GetLogger().Debugf("Config:>.env not loaded: %v", err)
	}
	applyEnv(c)
	applyDefaults(c)

	return c, nil
}

func applyEnv(c *Config) {
	if v := os.Getenv("WOO_KEY"); v != "" {
		c.WOOCOMMERCE.Key = v
	}
	if v := os.Getenv("WOO_SECRET"); v != "" {
		c.WOOCOMMERCE.Secret = v
	}
	if v := os.Getenv("NONCE_SECRET"); v != "" {
		c.NONCE.Secret = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		c.TELEGRAM.BotToken = v
	}
}

func applyDefaults(c *Config) {
	if c.SERVICE.PORT == 0 {
		c.SERVICE.PORT = 8080
	}
	if c.WOOCOMMERCE.RPS <= 0 {
		c.WOOCOMMERCE.RPS = 5
	}
	if c.WOOCOMMERCE.Currency == "" {
		c.WOOCOMMERCE.Currency = "$"
	}
	if c.WOOCOMMERCE.Timeout <= 0 {
		c.WOOCOMMERCE.Timeout = 30
	}
	if c.NONCE.Lifetime <= 0 {
		c.NONCE.Lifetime = 24
	}
	if c.ADMIN.User == "" {
		c.ADMIN.User = "admin"
	}
	if c.DBSQLITE.DB == "" {
		c.DBSQLITE.DB = "db.db"
	}
	if c.REPORT.Driver == "" {
		c.REPORT.Driver = "sqlite"
	}
	if c.REPORT.TTL <= 0 {
		c.REPORT.TTL = 60
	}
}
