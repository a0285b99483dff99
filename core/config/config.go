package config

import (
	"reflect"
	"strings"

	"fleet-ledger/core/capture"
	"fleet-ledger/core/logger"
	"fleet-ledger/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Storage holds configuration for the report filesystem.
	Storage storage.Config `mapstructure:"storage"`
	// Capture holds the sentinel prefixes used to find payloads in HAR archives.
	Capture capture.Prefixes `mapstructure:"capture"`
	// Report holds report generation settings.
	Report ReportConfig `mapstructure:"report"`
}

// ReportConfig holds settings shared by the report commands.
type ReportConfig struct {
	// GrandFleetName labels the merged roster of the promotion report.
	GrandFleetName string `mapstructure:"grand_fleet_name" default:"Grand Fleet"`
	// DuplicateSeparator joins a colliding character name and its source fleet.
	DuplicateSeparator string `mapstructure:"duplicate_separator" default:"|"`
	// ActivityDays is the default window for the activity report.
	ActivityDays int `mapstructure:"activity_days" default:"30"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env file if it exists
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist
	_ = godotenv.Overload(envPath)

	v := viper.New()

	registerDefaults(v, Config{}, "")

	// Map environment variables to nested keys (e.g. REPORT_ACTIVITY_DAYS -> report.activity_days)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// registerDefaults walks the mapstructure-tagged fields of iface and registers
// each leaf key with its `default` tag. Every key is registered, even without
// a default, so AutomaticEnv can see it. Unexported fields and fields tagged
// "-" are skipped.
func registerDefaults(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	for _, field := range reflect.VisibleFields(t) {
		tag, _, _ := strings.Cut(field.Tag.Get("mapstructure"), ",")
		if !field.IsExported() || tag == "" || tag == "-" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			registerDefaults(v, reflect.New(field.Type).Interface(), key)
			continue
		}
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
