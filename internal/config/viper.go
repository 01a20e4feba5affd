package config

import (
	"fmt"
	"strings"

	"dguaman/sri-facturas/internal/models"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Import struct {
		User       string `mapstructure:"user" yaml:"user"`
		Query      string `mapstructure:"query" yaml:"query"`
		MaxResults int64  `mapstructure:"max_results" yaml:"max_results"`
		SourceTag  string `mapstructure:"source_tag" yaml:"source_tag"`
	} `mapstructure:"import" yaml:"import"`

	Classifier struct {
		RulesFile string `mapstructure:"rules_file" yaml:"rules_file"`
		AI        struct {
			Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
			Model   string `mapstructure:"model" yaml:"model"`
			APIKey  string `mapstructure:"api_key" yaml:"-"` // Never serialize API key
		} `mapstructure:"ai" yaml:"ai"`
	} `mapstructure:"classifier" yaml:"classifier"`

	// Mora carries partial rate overrides. Unset fields keep the engine
	// defaults, so every field is a pointer.
	Mora MoraOverrides `mapstructure:"mora" yaml:"mora"`
}

// MoraOverrides is the optional, partial rate configuration. Values are
// merged over mora.DefaultRates() by ApplyTo.
type MoraOverrides struct {
	InterestVoluntaryPct *float64 `mapstructure:"interest_voluntary_pct" yaml:"interest_voluntary_pct"`
	InterestNotifiedPct  *float64 `mapstructure:"interest_notified_pct" yaml:"interest_notified_pct"`
	VATWithSalesRate     *float64 `mapstructure:"vat_with_sales_rate" yaml:"vat_with_sales_rate"`
	VATWithoutSalesFine  *float64 `mapstructure:"vat_without_sales_fine" yaml:"vat_without_sales_fine"`
	IncomeWithDueRate    *float64 `mapstructure:"income_with_due_rate" yaml:"income_with_due_rate"`
	IncomeWithoutDueRate *float64 `mapstructure:"income_without_due_rate" yaml:"income_without_due_rate"`
	AdminFineVoluntary   *float64 `mapstructure:"admin_fine_voluntary" yaml:"admin_fine_voluntary"`
	AdminFineNotified    *float64 `mapstructure:"admin_fine_notified" yaml:"admin_fine_notified"`
}

// ApplyTo merges the supplied overrides over a base rate table and returns
// the result. Absent overrides leave the base value untouched.
func (o MoraOverrides) ApplyTo(base models.RateConfig) models.RateConfig {
	set := func(target *decimal.Decimal, override *float64) {
		if override != nil {
			*target = decimal.NewFromFloat(*override)
		}
	}
	set(&base.InterestVoluntaryPct, o.InterestVoluntaryPct)
	set(&base.InterestNotifiedPct, o.InterestNotifiedPct)
	set(&base.VATWithSalesRate, o.VATWithSalesRate)
	set(&base.VATWithoutSalesFine, o.VATWithoutSalesFine)
	set(&base.IncomeWithDueRate, o.IncomeWithDueRate)
	set(&base.IncomeWithoutDueRate, o.IncomeWithoutDueRate)
	set(&base.AdminFineVoluntary, o.AdminFineVoluntary)
	set(&base.AdminFineNotified, o.AdminFineNotified)
	return base
}

// InitializeConfig initializes Viper configuration with hierarchical loading:
// defaults, then an optional YAML config file, then environment variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.sri-facturas")
	v.AddConfigPath(".sri-facturas")
	v.AddConfigPath(".")

	v.SetEnvPrefix("SRIF")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Continue with defaults and env vars.
			Logger.Warnf("Error reading config file %s: %v", v.ConfigFileUsed(), err)
		}
	}

	// The API key always comes from env, unprefixed.
	if err := v.BindEnv("classifier.ai.api_key", "GEMINI_API_KEY"); err != nil {
		Logger.Warnf("Failed to bind GEMINI_API_KEY environment variable: %v", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("import.user", "me")
	v.SetDefault("import.query", "has:attachment filename:xml")
	v.SetDefault("import.max_results", 100)
	v.SetDefault("import.source_tag", models.SourceGmail)

	v.SetDefault("classifier.rules_file", "reglas.yaml")
	v.SetDefault("classifier.ai.enabled", false)
	v.SetDefault("classifier.ai.model", "gemini-2.0-flash")
}

// validateConfig validates the configuration values.
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if config.Import.MaxResults < 1 || config.Import.MaxResults > 500 {
		return fmt.Errorf("import.max_results must be between 1 and 500, got: %d", config.Import.MaxResults)
	}

	if config.Classifier.AI.Enabled && config.Classifier.AI.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY required when AI classification is enabled")
	}

	if config.Mora.InterestVoluntaryPct != nil && config.Mora.InterestNotifiedPct != nil &&
		*config.Mora.InterestNotifiedPct < *config.Mora.InterestVoluntaryPct {
		return fmt.Errorf("mora.interest_notified_pct must not be lower than mora.interest_voluntary_pct")
	}

	for name, value := range map[string]*float64{
		"mora.interest_voluntary_pct":  config.Mora.InterestVoluntaryPct,
		"mora.interest_notified_pct":   config.Mora.InterestNotifiedPct,
		"mora.vat_with_sales_rate":     config.Mora.VATWithSalesRate,
		"mora.vat_without_sales_fine":  config.Mora.VATWithoutSalesFine,
		"mora.income_with_due_rate":    config.Mora.IncomeWithDueRate,
		"mora.income_without_due_rate": config.Mora.IncomeWithoutDueRate,
		"mora.admin_fine_voluntary":    config.Mora.AdminFineVoluntary,
		"mora.admin_fine_notified":     config.Mora.AdminFineNotified,
	} {
		if value != nil && *value < 0 {
			return fmt.Errorf("%s must not be negative, got: %f", name, *value)
		}
	}

	return nil
}
