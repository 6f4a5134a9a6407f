package toast

// Config carries the display configuration of a Center, loadable from the
// environment via pkg/config.
type Config struct {
	Position   Position       `env:"TOAST_POSITION" envDefault:"top-right"`   // Position is where the renderer places the toast stack.
	MaxVisible int            `env:"TOAST_MAX_VISIBLE" envDefault:"5"`        // MaxVisible caps simultaneously visible toasts.
	Overflow   OverflowPolicy `env:"TOAST_OVERFLOW" envDefault:"hide-newest"` // Overflow selects which toasts the renderer hides beyond MaxVisible.
	FeedBuffer int            `env:"TOAST_FEED_BUFFER" envDefault:"32"`       // FeedBuffer is the per-subscription event buffer size.
}

// NewCenterFromConfig creates a Center from the provided Config.
// Invalid or zero values fall back to package defaults.
func NewCenterFromConfig(cfg Config, opts ...Option) *Center {
	configOpts := make([]Option, 0, 4)

	if cfg.Position.Valid() {
		configOpts = append(configOpts, WithPosition(cfg.Position))
	}
	if cfg.MaxVisible > 0 {
		configOpts = append(configOpts, WithMaxVisible(cfg.MaxVisible))
	}
	if cfg.Overflow == OverflowHideNewest || cfg.Overflow == OverflowHideOldest {
		configOpts = append(configOpts, WithOverflowPolicy(cfg.Overflow))
	}
	if cfg.FeedBuffer > 0 {
		configOpts = append(configOpts, WithFeedBuffer(cfg.FeedBuffer))
	}

	configOpts = append(configOpts, opts...)

	return NewCenter(configOpts...)
}
