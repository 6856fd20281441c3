package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/physkit/pkg/logger"
)

// Storage is a byte store addressed by slash-separated paths. Files only
// grow through Append; Read returns the whole content.
type Storage interface {
	// Append adds data to the end of path, creating it if needed.
	Append(ctx context.Context, path string, data []byte) error
	// Read returns the full content of path.
	Read(ctx context.Context, path string) ([]byte, error)
	// Exists reports whether path exists.
	Exists(ctx context.Context, path string) bool
	// Delete removes path.
	Delete(ctx context.Context, path string) error
}

// Driver selects a Storage implementation.
type Driver string

const (
	DriverLocal Driver = "local"
	DriverS3    Driver = "s3"
)

// Config selects and configures a backend. The env tags are read by
// config.Load.
type Config struct {
	Driver Driver      `env:"PHYSKIT_STORE_DRIVER" envDefault:"local"`
	Local  LocalConfig `envPrefix:"PHYSKIT_STORE_LOCAL_"`
	S3     S3Config    `envPrefix:"PHYSKIT_STORE_S3_"`
}

// LocalConfig configures LocalStorage.
type LocalConfig struct {
	BaseDir string `env:"BASE_DIR" envDefault:"./data"`
}

// Option configures New.
type Option func(*options)

type options struct {
	logger *slog.Logger
	s3     []S3Option
}

// WithLogger sets the logger handed to the selected backend.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithS3Options passes options through to NewS3Storage.
func WithS3Options(opts ...S3Option) Option {
	return func(o *options) {
		o.s3 = append(o.s3, opts...)
	}
}

// New builds the backend named by cfg.Driver.
func New(ctx context.Context, cfg Config, opts ...Option) (Storage, error) {
	o := &options{logger: logger.Discard()}
	for _, opt := range opts {
		opt(o)
	}
	log := o.logger.With(logger.Component("store"), logger.Driver(string(cfg.Driver)))

	switch cfg.Driver {
	case DriverLocal, "":
		return NewLocalStorage(cfg.Local.BaseDir, WithLocalLogger(log))
	case DriverS3:
		return NewS3Storage(ctx, cfg.S3, append([]S3Option{WithS3Logger(log)}, o.s3...)...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}
