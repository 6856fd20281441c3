package logger

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups the non-nil errors under "errors", keyed by argument index.
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error records err under "error". If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Driver records the storage driver under "driver".
func Driver(name string) slog.Attr {
	return slog.String("driver", name)
}

// Path records a file path or object key under "path".
func Path(p string) slog.Attr {
	return slog.String("path", p)
}

// Bytes records a byte count under "bytes".
func Bytes(n int) slog.Attr {
	return slog.Int("bytes", n)
}

// Dimension records a dimension under "dimension" using its String form.
func Dimension(d fmt.Stringer) slog.Attr {
	return slog.String("dimension", d.String())
}

// Unit records a unit symbol under "unit".
func Unit(symbol string) slog.Attr {
	return slog.String("unit", symbol)
}

// Duration records an elapsed time under "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
