package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sells-group/standards-cli/internal/advisor"
	"github.com/sells-group/standards-cli/internal/tabular"
)

// Config holds the full application configuration.
type Config struct {
	Catalog CatalogConfig        `yaml:"catalog" mapstructure:"catalog"`
	Store   StoreConfig          `yaml:"store" mapstructure:"store"`
	Advisor advisor.Config       `yaml:"advisor" mapstructure:"advisor"`
	Filter  tabular.FilterConfig `yaml:"filter" mapstructure:"filter"`
	Server  ServerConfig         `yaml:"server" mapstructure:"server"`
	Log     LogConfig            `yaml:"log" mapstructure:"log"`
}

// CatalogConfig locates the static catalog files.
type CatalogConfig struct {
	Dir string `yaml:"dir" mapstructure:"dir"`
}

// StoreConfig configures the uploaded-table repository.
type StoreConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// ServerConfig configures the webhook server.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("STANDARDS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("catalog.dir", "catalog")
	v.SetDefault("store.path", "standards.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("server.port", 8080)
	v.SetDefault("advisor.enabled", true)
	v.SetDefault("advisor.model", "claude-haiku-4-5-20251001")
	v.SetDefault("advisor.max_tokens", 1024)
	v.SetDefault("advisor.min_rule_matches", 5)
	v.SetDefault("advisor.timeout_secs", 60)

	defaults := tabular.DefaultFilterConfig()
	v.SetDefault("filter.industry_keywords", defaults.IndustryKeywords)
	v.SetDefault("filter.project_type_keywords", defaults.ProjectTypeKeywords)
	v.SetDefault("filter.universal_markers", defaults.UniversalMarkers)
	v.SetDefault("filter.similarity_threshold", defaults.SimilarityThreshold)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
