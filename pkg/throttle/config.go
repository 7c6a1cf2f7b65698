package throttle

import "time"

// Config is the environment-driven throttle configuration. It feeds the
// default policy; per-class overrides are declared in code via WithPolicy.
type Config struct {
	Limit        int           `env:"THROTTLE_LIMIT" envDefault:"5"`            // Limit is the number of admitted attempts per window.
	Window       time.Duration `env:"THROTTLE_WINDOW" envDefault:"60s"`         // Window is the fixed window length.
	StoreTimeout time.Duration `env:"THROTTLE_STORE_TIMEOUT" envDefault:"500ms"` // StoreTimeout bounds each counter store call.
}

// NewFromConfig creates a Throttle whose default policy comes from cfg.
// The policy fails closed; classes that can afford to fail open must opt in
// explicitly via WithPolicy.
func NewFromConfig(store Store, cfg Config, opts ...Option) (*Throttle, error) {
	configOpts := []Option{
		WithDefaultPolicy(Policy{
			Limit:    cfg.Limit,
			Window:   cfg.Window,
			FailMode: FailClosed,
		}),
	}
	if cfg.StoreTimeout > 0 {
		configOpts = append(configOpts, WithStoreTimeout(cfg.StoreTimeout))
	}

	configOpts = append(configOpts, opts...)

	return New(store, configOpts...)
}
