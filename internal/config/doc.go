// Package config provides loading and environment overlay for the proxy's
// runtime configuration: frontend, backend, proxy, duplicate_detector, and
// general option groups. It exposes a Default() baseline, file loading
// (JSON or YAML, by extension), and a FromEnv overlay.
//
// Example:
//
//	cfg := config.Default()
//	if fileCfg, err := config.Load("/etc/seisproxy.yaml"); err == nil {
//	    cfg = fileCfg
//	}
//	config.FromEnv(&cfg)
//	if err := cfg.Validate(); err != nil {
//	    log.Fatalf("invalid configuration: %v", err)
//	}
package config
