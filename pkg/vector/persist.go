package vector

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/dmitrymomot/physkit/pkg/logger"
	"github.com/dmitrymomot/physkit/pkg/quantity"
)

// Appender appends raw bytes to a named resource.
// store.LocalStorage and store.S3Storage satisfy it.
type Appender interface {
	Append(ctx context.Context, path string, data []byte) error
}

// Reader reads a named resource in full.
type Reader interface {
	Read(ctx context.Context, path string) ([]byte, error)
}

// PersistOption configures Save and Load.
type PersistOption func(*persistOptions)

type persistOptions struct {
	logger *slog.Logger
}

// WithLogger sets the logger for Save and Load. Nil is ignored.
func WithLogger(l *slog.Logger) PersistOption {
	return func(o *persistOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

func newPersistOptions(opts []PersistOption) *persistOptions {
	o := &persistOptions{logger: logger.Discard()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// MarshalLine renders the component values in u, separated by single spaces.
// Uncertainties are not written.
func MarshalLine[T Element[T]](v Vector[T], u quantity.Unit) (string, error) {
	values, err := v.ValuesAs(u)
	if err != nil {
		return "", err
	}
	parts := make([]string, len(values))
	for i, f := range values {
		parts[i] = strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strings.Join(parts, " "), nil
}

// ParseLine reads a line written by MarshalLine back into a measurement vector.
func ParseLine(line string, u quantity.Unit) (Vector[quantity.Measurement], error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Vector[quantity.Measurement]{}, fmt.Errorf("%w: blank line", ErrInvalidLine)
	}
	values := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return Vector[quantity.Measurement]{}, fmt.Errorf("%w: field %d %q", ErrInvalidLine, i, f)
		}
		values[i] = v
	}
	return Of(u, values...)
}

// Save appends v to path as one line. Nothing else is written: no header
// and no version marker.
func Save[T Element[T]](ctx context.Context, a Appender, path string, v Vector[T], u quantity.Unit, opts ...PersistOption) error {
	o := newPersistOptions(opts)
	attrs := []any{logger.Path(path), logger.Dimension(v.Dimension()), logger.Unit(u.Symbol())}

	line, err := MarshalLine(v, u)
	if err != nil {
		o.logger.ErrorContext(ctx, "encode vector", append(attrs, logger.Error(err))...)
		return err
	}
	if err := a.Append(ctx, path, []byte(line+"\n")); err != nil {
		o.logger.ErrorContext(ctx, "save vector", append(attrs, logger.Error(err))...)
		return err
	}
	o.logger.DebugContext(ctx, "vector saved", append(attrs, slog.Int("components", v.Len()))...)
	return nil
}

// Load reads every vector saved to path, in the order they were appended.
// Blank lines are skipped.
func Load(ctx context.Context, r Reader, path string, u quantity.Unit, opts ...PersistOption) ([]Vector[quantity.Measurement], error) {
	o := newPersistOptions(opts)
	attrs := []any{logger.Path(path), logger.Dimension(u.Dimension()), logger.Unit(u.Symbol())}

	data, err := r.Read(ctx, path)
	if err != nil {
		o.logger.ErrorContext(ctx, "load vectors", append(attrs, logger.Error(err))...)
		return nil, err
	}
	var out []Vector[quantity.Measurement]
	for n, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		v, err := ParseLine(line, u)
		if err != nil {
			err = fmt.Errorf("line %d: %w", n+1, err)
			o.logger.ErrorContext(ctx, "decode vector", append(attrs, logger.Error(err))...)
			return nil, err
		}
		out = append(out, v)
	}
	o.logger.DebugContext(ctx, "vectors loaded", append(attrs, slog.Int("count", len(out)))...)
	return out, nil
}
