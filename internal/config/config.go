package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Research   ResearchConfig   `yaml:"research" mapstructure:"research"`
	Stats      StatsConfig      `yaml:"stats" mapstructure:"stats"`
	RiskRatios RiskRatiosConfig `yaml:"risk_ratios" mapstructure:"risk_ratios"`
	Mapping    MappingConfig    `yaml:"mapping" mapstructure:"mapping"`
	Runner     RunnerConfig     `yaml:"runner" mapstructure:"runner"`
	Export     ExportConfig     `yaml:"export" mapstructure:"export"`
	Log        LogConfig        `yaml:"log" mapstructure:"log"`
}

// ResearchConfig configures the primary fund-research site.
type ResearchConfig struct {
	BaseURL     string `yaml:"base_url" mapstructure:"base_url"`
	TimeoutSecs int    `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	UserAgent   string `yaml:"user_agent" mapstructure:"user_agent"`
}

// StatsConfig configures the per-scheme financial-ratios API.
type StatsConfig struct {
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
}

// RiskRatiosConfig configures the risk-metrics spreadsheet source.
type RiskRatiosConfig struct {
	Path            string `yaml:"path" mapstructure:"path"`
	DownloadTimeout int    `yaml:"download_timeout_secs" mapstructure:"download_timeout_secs"`
}

// MappingConfig configures the identifier mapping and seed documents.
type MappingConfig struct {
	Path     string `yaml:"path" mapstructure:"path"`
	SeedPath string `yaml:"seed_path" mapstructure:"seed_path"`
}

// RunnerConfig configures the extraction fan-out.
type RunnerConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers"`
}

// ExportConfig configures the categorized export.
type ExportConfig struct {
	Dir string `yaml:"dir" mapstructure:"dir"`
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
	v.SetEnvPrefix("FUNDSCOPE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("research.base_url", "https://www.advisorkhoj.com/mutual-funds-research/")
	v.SetDefault("research.timeout_secs", 20)
	v.SetDefault("research.user_agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/143.0.0.0 Safari/537.36")
	v.SetDefault("stats.base_url", "https://groww.in/v1/api/data/mf/web/v1/scheme/portfolio")
	v.SetDefault("risk_ratios.path", "risk-ratios.xls")
	v.SetDefault("risk_ratios.download_timeout_secs", 120)
	v.SetDefault("mapping.path", "funds_and_categories_with_mftools.json")
	v.SetDefault("mapping.seed_path", "fundslist.yaml")
	v.SetDefault("runner.workers", 16)
	v.SetDefault("export.dir", ".")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

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
