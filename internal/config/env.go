package config

import (
	"os"
	"strconv"
)

func envString(key string, dst *string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func envInt(key string, dst *int) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

// FromEnv overlays SEISPROXY_* environment variables onto cfg.
func FromEnv(cfg *Config) {
	envString("SEISPROXY_FRONTEND_HOST", &cfg.Frontend.Host)
	envInt("SEISPROXY_FRONTEND_PORT", &cfg.Frontend.Port)
	envString("SEISPROXY_FRONTEND_SERVER_KEY_PATH", &cfg.Frontend.ServerKeyPath)
	envString("SEISPROXY_FRONTEND_SERVER_CERTIFICATE_PATH", &cfg.Frontend.ServerCertificatePath)
	envString("SEISPROXY_FRONTEND_ACCESS_TOKEN", &cfg.Frontend.AccessToken)
	envInt("SEISPROXY_FRONTEND_MAXIMUM_MESSAGE_SIZE_BYTES", &cfg.Frontend.MaximumMessageSizeBytes)
	envInt("SEISPROXY_FRONTEND_MAXIMUM_NUMBER_OF_PUBLISHERS", &cfg.Frontend.MaximumNumberOfPublishers)
	envInt("SEISPROXY_FRONTEND_MAXIMUM_NUMBER_OF_CONSECUTIVE_INVALID_MESSAGES", &cfg.Frontend.MaximumNumberOfConsecutiveInvalidMessages)

	envString("SEISPROXY_BACKEND_HOST", &cfg.Backend.Host)
	envInt("SEISPROXY_BACKEND_PORT", &cfg.Backend.Port)
	envString("SEISPROXY_BACKEND_SERVER_KEY_PATH", &cfg.Backend.ServerKeyPath)
	envString("SEISPROXY_BACKEND_SERVER_CERTIFICATE_PATH", &cfg.Backend.ServerCertificatePath)
	envString("SEISPROXY_BACKEND_ACCESS_TOKEN", &cfg.Backend.AccessToken)
	envInt("SEISPROXY_BACKEND_MAXIMUM_NUMBER_OF_SUBSCRIBERS", &cfg.Backend.MaximumNumberOfSubscribers)
	envInt("SEISPROXY_BACKEND_QUEUE_CAPACITY", &cfg.Backend.QueueCapacity)
	envInt("SEISPROXY_BACKEND_SEND_TIMEOUT_MILLIS", &cfg.Backend.SendTimeoutMillis)

	envInt("SEISPROXY_PROXY_QUEUE_CAPACITY", &cfg.Proxy.QueueCapacity)
	envInt("SEISPROXY_PROXY_PUMP_INTERVAL_MILLIS", &cfg.Proxy.PumpIntervalMillis)
	envInt("SEISPROXY_PROXY_STOP_DRAIN_MILLIS", &cfg.Proxy.StopDrainMillis)
	envInt("SEISPROXY_PROXY_STOP_SETTLE_MILLIS", &cfg.Proxy.StopSettleMillis)

	envInt("SEISPROXY_DUPLICATE_DETECTOR_CIRCULAR_BUFFER_SIZE", &cfg.DuplicateDetector.CircularBufferSize)
	envInt("SEISPROXY_DUPLICATE_DETECTOR_CIRCULAR_BUFFER_DURATION_MILLIS", &cfg.DuplicateDetector.CircularBufferDurationMillis)

	envString("SEISPROXY_GENERAL_APPLICATION_NAME", &cfg.General.ApplicationName)
	envString("SEISPROXY_GENERAL_VERBOSITY", &cfg.General.Verbosity)
}
