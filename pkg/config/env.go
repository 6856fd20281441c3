package config

import (
	"fmt"
	"os"
)

func setMissing(values map[string]string) error {
	for k, v := range values {
		if _, ok := os.LookupEnv(k); ok {
			continue
		}
		if err := os.Setenv(k, v); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrLoadingEnvFile, k, err)
		}
	}
	return nil
}
