// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv for .env files and
// github.com/caarlos0/env/v11 for struct parsing. Each configuration type is
// parsed once and cached for the life of the process:
//
//	if err := config.LoadEnv("physkit.env"); err != nil {
//	    return err
//	}
//	var cfg store.Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//	s, err := store.New(ctx, cfg)
//
// LoadEnv never overrides variables already present in the process. Among the
// files passed to one call, later files override earlier ones.
//
// Errors are sentinels matched with errors.Is: ErrParsingConfig,
// ErrConfigNotLoaded, ErrNilPointer and ErrLoadingEnvFile.
//
// ResetCache and ForceReloadConfig exist for tests that change the
// environment between loads.
package config
