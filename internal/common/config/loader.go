// internal/common/config/loader.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "CATALOG"

// Load reads config.yaml from the usual locations (or path, when given),
// merges config.<APP_ENVIRONMENT>.yaml, and applies CATALOG_* environment
// overrides. A missing config file is not an error.
func Load(path string) (*Config, error) {
	loadEnvFile()

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")

		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("error reading base config: %w", err)
			}
		}

		env := os.Getenv("APP_ENVIRONMENT")
		if env == "" {
			env = "development"
		}
		v.SetConfigName(fmt.Sprintf("config.%s", env))
		_ = v.MergeInConfig() // optional overlay
	}

	expandEnvVars(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Default returns the configuration used when no file or environment is set.
func Default() *Config {
	var cfg Config
	applyDefaults(&cfg)
	return &cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "catalog-validator")
	v.SetDefault("app.version", "dev")
	v.SetDefault("app.environment", "development")

	v.SetDefault("validator.data_dir", "")
	v.SetDefault("validator.services_file", "services.json")
	v.SetDefault("validator.schema_file", "schema.json")
	v.SetDefault("validator.format", "text")

	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.output", "stderr")

	v.SetDefault("metrics.textfile_path", "")

	v.SetDefault("redis.address", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.key_prefix", "catalog:validation")
	v.SetDefault("redis.ttl_seconds", 0)
	v.SetDefault("redis.timeout_ms", 3000)
}

// loadEnvFile loads .env from the working directory or the nearest ancestor
// holding one. Existing environment variables win.
func loadEnvFile() {
	possiblePaths := []string{".env", "../.env"}
	if rootDir := findAncestorWith(".env"); rootDir != "" {
		possiblePaths = append(possiblePaths, filepath.Join(rootDir, ".env"))
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return
			}
		}
	}
}

// findAncestorWith walks up from the working directory looking for name.
func findAncestorWith(name string) string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

// ResolveDataDir fills Validator.DataDir when unset: the directory of an
// absolute services file, else the nearest ancestor of the working directory
// containing the services file, else the working directory.
func ResolveDataDir(cfg *Config) {
	if cfg.Validator.DataDir != "" {
		return
	}
	if filepath.IsAbs(cfg.Validator.ServicesFile) {
		cfg.Validator.DataDir = filepath.Dir(cfg.Validator.ServicesFile)
		return
	}
	if dir := findAncestorWith(cfg.Validator.ServicesFile); dir != "" {
		cfg.Validator.DataDir = dir
		return
	}
	cfg.Validator.DataDir = "."
}

func expandEnvVars(v *viper.Viper) {
	for _, key := range v.AllKeys() {
		val := v.Get(key)

		if strVal, ok := val.(string); ok {
			if strings.Contains(strVal, "${") || (strings.HasPrefix(strVal, "$") && len(strVal) > 1) {
				expanded := os.ExpandEnv(strVal)
				if expanded != strVal && expanded != "" {
					v.Set(key, expanded)
				}
			}
		}
	}
}

// applyDefaults sets default values for optional configuration fields
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "catalog-validator"
	}

	if cfg.Validator.ServicesFile == "" {
		cfg.Validator.ServicesFile = "services.json"
	}
	if cfg.Validator.SchemaFile == "" {
		cfg.Validator.SchemaFile = "schema.json"
	}
	if cfg.Validator.Format == "" {
		cfg.Validator.Format = "text"
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "warn"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "console"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stderr"
	}

	if cfg.Redis.KeyPrefix == "" {
		cfg.Redis.KeyPrefix = "catalog:validation"
	}
	if cfg.Redis.TimeoutMs == 0 {
		cfg.Redis.TimeoutMs = 3000
	}
}

// validateConfig validates critical configuration fields
func validateConfig(cfg *Config) error {
	switch cfg.Validator.Format {
	case "text", "json":
	default:
		return fmt.Errorf("validator.format must be text or json, got %q", cfg.Validator.Format)
	}

	switch cfg.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", cfg.Logging.Format)
	}

	if cfg.Redis.TTLSeconds < 0 {
		return fmt.Errorf("redis.ttl_seconds must not be negative")
	}
	if cfg.Redis.TimeoutMs < 0 {
		return fmt.Errorf("redis.timeout_ms must not be negative")
	}

	return nil
}

// Validate re-checks cfg after command-line overrides.
func Validate(cfg *Config) error {
	return validateConfig(cfg)
}

// GetDuration converts milliseconds from config to time.Duration
func GetDuration(milliseconds int) time.Duration {
	return time.Duration(milliseconds) * time.Millisecond
}
