package config

import (
	"bytes"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"regsift/registrant"
)

const (
	KeyLegacyIftarCategory       = "legacy.iftar_category"
	KeyLegacyProgrammingCategory = "legacy.programming_category"
	KeyOrdersIftarKeyword        = "orders.iftar_keyword"
	KeyProcessWorkers            = "process.workers"
	KeyLogLevel                  = "log.level"
)

type Config struct {
	Legacy  LegacyConfig  `mapstructure:"legacy"`
	Orders  OrdersConfig  `mapstructure:"orders"`
	Process ProcessConfig `mapstructure:"process"`
	Log     LogConfig     `mapstructure:"log"`
}

// LegacyConfig holds the Category column values of the older items export.
// They are compared verbatim.
type LegacyConfig struct {
	IftarCategory       string `mapstructure:"iftar_category" validate:"required"`
	ProgrammingCategory string `mapstructure:"programming_category" validate:"required,nefield=IftarCategory"`
}

type OrdersConfig struct {
	IftarKeyword string `mapstructure:"iftar_keyword" validate:"required"`
}

type ProcessConfig struct {
	Workers int `mapstructure:"workers" validate:"min=1,max=64"`
}

type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
}

// Labels returns the category routing strings for the classifier.
func (c Config) Labels() registrant.Labels {
	return registrant.Labels{
		LegacyIftarCategory:       c.Legacy.IftarCategory,
		LegacyProgrammingCategory: c.Legacy.ProgrammingCategory,
		IftarKeyword:              c.Orders.IftarKeyword,
	}
}

// SetDefaults sets default values if not provided
func SetDefaults() {
	setDefaults(viper.GetViper())
}

// LoadAndValidate loads config from Viper and validates it
func LoadAndValidate() (*Config, error) {
	return loadAndValidateFromViper(viper.GetViper())
}

// ValidateYAMLContent validates configuration from raw YAML content.
func ValidateYAMLContent(content []byte) (*Config, error) {
	local := viper.New()
	setDefaults(local)
	local.SetConfigType("yaml")
	if err := local.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("read config content: %w", err)
	}
	return loadAndValidateFromViper(local)
}

// Default returns the configuration used when no file is present.
func Default() Config {
	local := viper.New()
	setDefaults(local)
	cfg, err := loadAndValidateFromViper(local)
	if err != nil {
		panic(fmt.Sprintf("default config is invalid: %v", err))
	}
	return *cfg
}

// ExampleYAML returns the default configuration template.
func ExampleYAML() string {
	return fmt.Sprintf(`# regsift configuration
legacy:
  # Category column values of the older "items" export (exact match).
  iftar_category: %q
  programming_category: %q

orders:
  # Item Name containing this keyword (any case) is an iftar registration.
  iftar_keyword: %q

process:
  workers: %d

log:
  level: "info"
`,
		registrant.DefaultLegacyIftarCategory,
		registrant.DefaultLegacyProgrammingCategory,
		registrant.DefaultIftarKeyword,
		registrant.DefaultWorkers,
	)
}

func loadAndValidateFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyLegacyIftarCategory, registrant.DefaultLegacyIftarCategory)
	v.SetDefault(KeyLegacyProgrammingCategory, registrant.DefaultLegacyProgrammingCategory)
	v.SetDefault(KeyOrdersIftarKeyword, registrant.DefaultIftarKeyword)
	v.SetDefault(KeyProcessWorkers, registrant.DefaultWorkers)
	v.SetDefault(KeyLogLevel, "info")
}
