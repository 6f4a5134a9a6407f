package toasthttp

import (
	"time"

	"github.com/toastkit/toastkit/toast"
)

type Config struct {
	Heartbeat time.Duration `env:"TOAST_STREAM_HEARTBEAT" envDefault:"25s"` // Heartbeat is the SSE keep-alive comment interval.
}

// NewServiceFromConfig creates a Service from the provided Config.
// Only non-zero values from the config are applied.
func NewServiceFromConfig(cfg Config, center *toast.Center, opts ...Option) *Service {
	configOpts := make([]Option, 0, 1)

	if cfg.Heartbeat > 0 {
		configOpts = append(configOpts, WithHeartbeat(cfg.Heartbeat))
	}

	configOpts = append(configOpts, opts...)

	return NewService(center, configOpts...)
}
