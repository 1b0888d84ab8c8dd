package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/bdpublic/updates-api/models"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App struct {
		Name   string `mapstructure:"name"`
		Port   string `mapstructure:"port"`
		Server string `mapstructure:"server"`
		Author string `mapstructure:"author"`
		Debug  bool   `mapstructure:"debug"`
	} `mapstructure:"app"`
	Database struct {
		Driver       string `mapstructure:"driver"`
		DSN          string `mapstructure:"dsn"`
		Host         string `mapstructure:"host"`
		Port         string `mapstructure:"port"`
		User         string `mapstructure:"user"`
		Password     string `mapstructure:"password"`
		Name         string `mapstructure:"name"`
		Sslmode      string `mapstructure:"sslmode"`
		Timezone     string `mapstructure:"timezone"`
		MaxIdleConns int    `mapstructure:"max_idle_conns"`
		MaxOpenConns int    `mapstructure:"max_open_conns"`
	} `mapstructure:"database"`
	Redis struct {
		Addr     string `mapstructure:"addr"`
		Password string `mapstructure:"password"`
		DB       int    `mapstructure:"db"`
	} `mapstructure:"redis"`
	Scraper struct {
		Timeout  time.Duration   `mapstructure:"timeout"`
		MaxItems int             `mapstructure:"max_items"`
		Sources  []models.Source `mapstructure:"sources"`
	} `mapstructure:"scraper"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "bangladesh-updates")
	v.SetDefault("app.port", "3000")
	v.SetDefault("app.server", "Railway.app")
	v.SetDefault("app.author", "Bangladesh Public Updates")
	v.SetDefault("app.debug", false)

	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", ":memory:")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.user", "")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "updates")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.timezone", "Asia/Dhaka")
	v.SetDefault("database.max_idle_conns", 2)
	v.SetDefault("database.max_open_conns", 10)

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("scraper.timeout", 10*time.Second)
	v.SetDefault("scraper.max_items", 10)
	v.SetDefault("scraper.sources", defaultSources)
}

// defaultSources mirrors the government sites the feed was built around.
var defaultSources = []map[string]any{
	{"key": "bpsc", "name": "বিসিএস কমিশন", "url": "https://www.bpsc.gov.bd/", "category": "job", "kind": models.SourceKindHTML, "selector": "a[href*='notices']"},
	{"key": "mopa", "name": "জনপ্রশাসন মন্ত্রণালয়", "url": "https://www.mopa.gov.bd/", "category": "job", "kind": models.SourceKindHTML, "selector": "a[href*='notices']"},
	{"key": "education", "name": "শিক্ষা বোর্ড", "url": "http://www.educationboardresults.gov.bd/", "category": "education", "kind": models.SourceKindHTML, "selector": "a[href*='notice']"},
	{"key": "cabinet", "name": "মন্ত্রিপরিষদ বিভাগ", "url": "https://cabinet.gov.bd/", "category": "government", "kind": models.SourceKindHTML, "selector": "a[href*='notices']"},
	{"key": "btrc", "name": "বিটিআরসি", "url": "https://www.btrc.gov.bd/", "category": "hot", "kind": models.SourceKindHTML, "selector": "a[href*='notices']"},
}

// Load reads configuration from defaults, the yaml file, a .env file and the
// environment, in increasing order of precedence. An empty path searches
// ./config/config.yaml; a missing file is not an error.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix("UPDATES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("app.port", "UPDATES_APP_PORT", "PORT"); err != nil {
		return nil, fmt.Errorf("bind env: %w", err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

// Addr is the listen address for the configured port.
func (c *Config) Addr() string {
	if strings.HasPrefix(c.App.Port, ":") {
		return c.App.Port
	}
	return ":" + c.App.Port
}
