package store

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/dmitrymomot/physkit/pkg/logger"
)

// LocalStorage implements Storage on the local filesystem.
// All paths are confined to baseDir. Appends are serialized, so concurrent
// writers never interleave within one Append call.
type LocalStorage struct {
	baseDir string
	logger  *slog.Logger
	mu      sync.Mutex
}

// LocalOption configures LocalStorage.
type LocalOption func(*LocalStorage)

// WithLocalLogger sets the logger. Nil is ignored.
func WithLocalLogger(l *slog.Logger) LocalOption {
	return func(s *LocalStorage) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewLocalStorage creates a filesystem store rooted at baseDir, creating
// the directory if it does not exist.
func NewLocalStorage(baseDir string, opts ...LocalOption) (*LocalStorage, error) {
	if baseDir == "" {
		return nil, fmt.Errorf("%w: empty base directory", ErrInvalidConfig)
	}

	absBaseDir, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToGetAbsolutePath, err)
	}
	if err := os.MkdirAll(absBaseDir, 0755); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToCreateDirectory, err)
	}

	s := &LocalStorage{baseDir: absBaseDir, logger: logger.Discard()}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Append writes data at the end of path, creating parent directories and
// the file (mode 0644) as needed.
func (s *LocalStorage) Append(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	absPath, err := s.resolvePath(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(absPath), 0755); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToCreateDirectory, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(absPath, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		if info, statErr := os.Stat(absPath); statErr == nil && info.IsDir() {
			return fmt.Errorf("%w: %s", ErrIsDirectory, path)
		}
		return fmt.Errorf("%w: %v", ErrFailedToOpenFile, err)
	}
	defer func() { _ = f.Close() }()

	if _, err := f.Write(data); err != nil {
		s.logger.ErrorContext(ctx, "append failed", logger.Path(path), logger.Error(err))
		return fmt.Errorf("%w: %v", ErrFailedToWriteFile, err)
	}

	s.logger.DebugContext(ctx, "appended", logger.Path(path), logger.Bytes(len(data)))
	return nil
}

// Read returns the content of path.
func (s *LocalStorage) Read(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	absPath, err := s.resolvePath(path)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrFailedToStatPath, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToReadFile, err)
	}
	s.logger.DebugContext(ctx, "read", logger.Path(path), logger.Bytes(len(data)))
	return data, nil
}

// Exists reports whether path exists. Invalid paths and a done context
// report false.
func (s *LocalStorage) Exists(ctx context.Context, path string) bool {
	if ctx.Err() != nil {
		return false
	}
	absPath, err := s.resolvePath(path)
	if err != nil {
		return false
	}
	_, err = os.Stat(absPath)
	return err == nil
}

// Delete removes a single file. Directories are refused.
func (s *LocalStorage) Delete(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	absPath, err := s.resolvePath(path)
	if err != nil {
		return err
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return fmt.Errorf("%w: %v", ErrFailedToStatPath, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(absPath); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToDeleteFile, err)
	}
	s.logger.DebugContext(ctx, "deleted", logger.Path(path))
	return nil
}

// resolvePath joins path to baseDir and rejects results outside it.
func (s *LocalStorage) resolvePath(path string) (string, error) {
	absPath, err := filepath.Abs(filepath.Join(s.baseDir, filepath.Clean(path)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFailedToGetAbsolutePath, err)
	}
	if !strings.HasPrefix(absPath, s.baseDir+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", ErrInvalidPath, path)
	}
	return absPath, nil
}
