package clockface

import (
	"log/slog"
	"time"
)

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithClock sets the wall-clock source sampled at the start of each frame.
// The default is time.Now.
func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) {
		if now != nil {
			p.now = now
		}
	}
}

// WithLogger sets the pipeline logger. The default is Logger().
func WithLogger(l *slog.Logger) Option {
	return func(p *Pipeline) {
		if l != nil {
			p.log = l
		}
	}
}

// WithMipmaps toggles mipmap generation after each texture upload.
// Enabled by default.
func WithMipmaps(enabled bool) Option {
	return func(p *Pipeline) { p.mipmaps = enabled }
}

// WithConfig applies the rendering settings of cfg.
func WithConfig(cfg Config) Option {
	return func(p *Pipeline) { p.mipmaps = cfg.Mipmaps }
}
