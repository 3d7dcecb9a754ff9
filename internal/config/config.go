package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rzbill/seisproxy/pkg/log"
)

// Config is the top-level configuration for the proxy, mirroring the
// frontend/backend/proxy/duplicate_detector/general option groups of the
// original standalone service.
type Config struct {
	Frontend          FrontendConfig          `json:"frontend" yaml:"frontend"`
	Backend           BackendConfig           `json:"backend" yaml:"backend"`
	Proxy             ProxyConfig             `json:"proxy" yaml:"proxy"`
	DuplicateDetector DuplicateDetectorConfig `json:"duplicate_detector" yaml:"duplicate_detector"`
	General           GeneralConfig           `json:"general" yaml:"general"`
}

// FrontendConfig configures the publisher-facing gRPC listener (C4).
type FrontendConfig struct {
	Host                                       string `json:"host" yaml:"host"`
	Port                                       int    `json:"port" yaml:"port"`
	ServerKeyPath                              string `json:"server_key_path" yaml:"server_key_path"`
	ServerCertificatePath                      string `json:"server_certificate_path" yaml:"server_certificate_path"`
	AccessToken                                string `json:"access_token" yaml:"access_token"`
	MaximumMessageSizeBytes                    int    `json:"maximum_message_size_bytes" yaml:"maximum_message_size_bytes"`
	MaximumNumberOfPublishers                  int    `json:"maximum_number_of_publishers" yaml:"maximum_number_of_publishers"`
	MaximumNumberOfConsecutiveInvalidMessages  int    `json:"maximum_number_of_consecutive_invalid_messages" yaml:"maximum_number_of_consecutive_invalid_messages"`
}

// Addr returns the host:port the frontend listener binds to.
func (f FrontendConfig) Addr() string {
	return fmt.Sprintf("%s:%d", f.Host, f.Port)
}

// TLSEnabled reports whether a server key/certificate pair was configured.
func (f FrontendConfig) TLSEnabled() bool {
	return f.ServerKeyPath != "" && f.ServerCertificatePath != ""
}

// BackendConfig configures the subscriber-facing gRPC listener (C5).
type BackendConfig struct {
	Host                       string `json:"host" yaml:"host"`
	Port                       int    `json:"port" yaml:"port"`
	ServerKeyPath              string `json:"server_key_path" yaml:"server_key_path"`
	ServerCertificatePath      string `json:"server_certificate_path" yaml:"server_certificate_path"`
	AccessToken                string `json:"access_token" yaml:"access_token"`
	MaximumNumberOfSubscribers int    `json:"maximum_number_of_subscribers" yaml:"maximum_number_of_subscribers"`
	QueueCapacity              int    `json:"queue_capacity" yaml:"queue_capacity"`
	SendTimeoutMillis          int    `json:"send_timeout_millis" yaml:"send_timeout_millis"`
}

// Addr returns the host:port the backend listener binds to.
func (b BackendConfig) Addr() string {
	return fmt.Sprintf("%s:%d", b.Host, b.Port)
}

// TLSEnabled reports whether a server key/certificate pair was configured.
func (b BackendConfig) TLSEnabled() bool {
	return b.ServerKeyPath != "" && b.ServerCertificatePath != ""
}

// ProxyConfig configures the ingress queue and pump loop (C6).
type ProxyConfig struct {
	QueueCapacity      int `json:"queue_capacity" yaml:"queue_capacity"`
	PumpIntervalMillis int `json:"pump_interval_millis" yaml:"pump_interval_millis"`
	StopDrainMillis    int `json:"stop_drain_millis" yaml:"stop_drain_millis"`
	StopSettleMillis   int `json:"stop_settle_millis" yaml:"stop_settle_millis"`
}

// DuplicateDetectorConfig configures the fingerprint cache (C3).
type DuplicateDetectorConfig struct {
	CircularBufferSize           int `json:"circular_buffer_size" yaml:"circular_buffer_size"`
	CircularBufferDurationMillis int `json:"circular_buffer_duration_millis" yaml:"circular_buffer_duration_millis"`
}

// GeneralConfig configures process identity and logging verbosity.
type GeneralConfig struct {
	ApplicationName string `json:"application_name" yaml:"application_name"`
	// Verbosity accepts either a named level ("debug", "info", "warn",
	// "error") or an integer 1-4+, matching the original tool's
	// verbosity-to-log-level convention (1=critical/error .. 4+=debug).
	Verbosity string `json:"verbosity" yaml:"verbosity"`
}

// LogLevel resolves Verbosity to a log.Level, accepting either form.
func (g GeneralConfig) LogLevel() log.Level {
	v := strings.TrimSpace(g.Verbosity)
	if v == "" {
		return log.InfoLevel
	}
	if n, err := strconv.Atoi(v); err == nil {
		switch {
		case n <= 1:
			return log.ErrorLevel
		case n == 2:
			return log.WarnLevel
		case n == 3:
			return log.InfoLevel
		default:
			return log.DebugLevel
		}
	}
	return log.ParseLevel(v)
}

// Default returns the built-in configuration baseline. Every value named in
// a loaded file overrides the corresponding default field; unset fields
// keep these values.
func Default() Config {
	return Config{
		Frontend: FrontendConfig{
			Host:                                      "0.0.0.0",
			Port:                                       50051,
			MaximumMessageSizeBytes:                    8192,
			MaximumNumberOfPublishers:                  64,
			MaximumNumberOfConsecutiveInvalidMessages:  5,
		},
		Backend: BackendConfig{
			Host:                       "0.0.0.0",
			Port:                       50052,
			MaximumNumberOfSubscribers: 256,
			QueueCapacity:              1024,
			SendTimeoutMillis:          20,
		},
		Proxy: ProxyConfig{
			QueueCapacity:      4096,
			PumpIntervalMillis: 15,
			StopDrainMillis:    10,
			StopSettleMillis:   25,
		},
		DuplicateDetector: DuplicateDetectorConfig{
			CircularBufferSize:           10000,
			CircularBufferDurationMillis: 60000,
		},
		General: GeneralConfig{
			ApplicationName: "seisproxy",
			Verbosity:       "3",
		},
	}
}

// Load reads configuration from a JSON or YAML file (selected by
// extension), overlaying it onto Default(). An empty path returns
// Default() unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse yaml %s: %w", path, err)
		}
	case ".json", "":
		if err := json.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse json %s: %w", path, err)
		}
	default:
		return Config{}, fmt.Errorf("config: unrecognized config extension %q", ext)
	}
	return cfg, nil
}

// Validate checks the configuration for internally-inconsistent or
// unusable settings, the way the original tool validated its parsed INI
// file before opening any socket.
func (c Config) Validate() error {
	var errs []string

	if c.Frontend.Port <= 0 || c.Frontend.Port > 65535 {
		errs = append(errs, "frontend.port must be between 1 and 65535")
	}
	if c.Backend.Port <= 0 || c.Backend.Port > 65535 {
		errs = append(errs, "backend.port must be between 1 and 65535")
	}
	if c.Frontend.Host == c.Backend.Host && c.Frontend.Port == c.Backend.Port {
		errs = append(errs, "frontend and backend cannot bind the same host:port")
	}
	if c.Frontend.ServerKeyPath != "" && c.Frontend.ServerCertificatePath == "" {
		errs = append(errs, "frontend.server_certificate_path is required when frontend.server_key_path is set")
	}
	if c.Frontend.ServerCertificatePath != "" && c.Frontend.ServerKeyPath == "" {
		errs = append(errs, "frontend.server_key_path is required when frontend.server_certificate_path is set")
	}
	if c.Backend.ServerKeyPath != "" && c.Backend.ServerCertificatePath == "" {
		errs = append(errs, "backend.server_certificate_path is required when backend.server_key_path is set")
	}
	if c.Backend.ServerCertificatePath != "" && c.Backend.ServerKeyPath == "" {
		errs = append(errs, "backend.server_key_path is required when backend.server_certificate_path is set")
	}
	if c.Frontend.MaximumMessageSizeBytes <= 0 {
		errs = append(errs, "frontend.maximum_message_size_bytes must be positive")
	}
	if c.Frontend.MaximumNumberOfPublishers <= 0 {
		errs = append(errs, "frontend.maximum_number_of_publishers must be positive")
	}
	if c.Frontend.MaximumNumberOfConsecutiveInvalidMessages <= 0 {
		errs = append(errs, "frontend.maximum_number_of_consecutive_invalid_messages must be positive")
	}
	if c.Backend.MaximumNumberOfSubscribers <= 0 {
		errs = append(errs, "backend.maximum_number_of_subscribers must be positive")
	}
	if c.Backend.QueueCapacity <= 0 {
		errs = append(errs, "backend.queue_capacity must be positive")
	}
	if c.Backend.SendTimeoutMillis <= 0 {
		errs = append(errs, "backend.send_timeout_millis must be positive")
	}
	if c.Proxy.QueueCapacity <= 0 {
		errs = append(errs, "proxy.queue_capacity must be positive")
	}
	if c.Proxy.PumpIntervalMillis <= 0 {
		errs = append(errs, "proxy.pump_interval_millis must be positive")
	}
	if c.General.ApplicationName == "" {
		errs = append(errs, "general.application_name must not be empty")
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(errs, "; "))
	}
	return nil
}
