// internal/common/config/config.go
package config

import (
	"fmt"
	"path/filepath"
	"time"
)

// Config is the main application configuration struct.
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Validator ValidatorConfig `mapstructure:"validator"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
	Redis     RedisConfig     `mapstructure:"redis"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// ValidatorConfig locates the catalog files and selects the report format.
type ValidatorConfig struct {
	DataDir      string `mapstructure:"data_dir"`
	ServicesFile string `mapstructure:"services_file"`
	SchemaFile   string `mapstructure:"schema_file"`
	Format       string `mapstructure:"format"` // text or json
}

// ServicesPath returns the services file path, resolved against DataDir
// unless already absolute.
func (v ValidatorConfig) ServicesPath() string {
	return resolve(v.DataDir, v.ServicesFile)
}

// SchemaPath returns the schema file path, resolved like ServicesPath.
func (v ValidatorConfig) SchemaPath() string {
	return resolve(v.DataDir, v.SchemaFile)
}

func resolve(dir, file string) string {
	if filepath.IsAbs(file) || dir == "" {
		return file
	}
	return filepath.Join(dir, file)
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// MetricsConfig controls the Prometheus textfile export. Empty path disables it.
type MetricsConfig struct {
	TextfilePath string `mapstructure:"textfile_path"`
}

// RedisConfig controls publishing of run summaries. Empty address disables it.
type RedisConfig struct {
	Address    string `mapstructure:"address"`
	Password   string `mapstructure:"password"`
	DB         int    `mapstructure:"db"`
	KeyPrefix  string `mapstructure:"key_prefix"`
	TTLSeconds int    `mapstructure:"ttl_seconds"`
	TimeoutMs  int    `mapstructure:"timeout_ms"`
}

// Enabled reports whether a Redis address is configured.
func (r RedisConfig) Enabled() bool {
	return r.Address != ""
}

// TTL returns the key expiration; zero means no expiration.
func (r RedisConfig) TTL() time.Duration {
	return time.Duration(r.TTLSeconds) * time.Second
}

// Timeout returns the publish deadline.
func (r RedisConfig) Timeout() time.Duration {
	return GetDuration(r.TimeoutMs)
}

// LatestKey is the key holding the most recent run summary.
func (r RedisConfig) LatestKey() string {
	return fmt.Sprintf("%s:latest", r.KeyPrefix)
}

// RunKey is the key holding the summary of a given run.
func (r RedisConfig) RunKey(runID string) string {
	return fmt.Sprintf("%s:runs:%s", r.KeyPrefix, runID)
}
