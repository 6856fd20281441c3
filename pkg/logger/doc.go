// Package logger builds *slog.Logger values for physkit components.
//
// New takes functional options for the output format (text or json), level,
// destination, static attributes and context extractors. WithConfig applies
// a Config loaded from the environment:
//
//	var cfg logger.Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//	log := logger.New(logger.WithConfig(cfg), logger.WithAttr(logger.Component("store")))
//
// The attribute helpers in attr.go keep key names consistent across
// packages: Error, Errors, Component, Driver, Path, Bytes, Dimension, Unit and
// Duration. Error and Errors return an empty Attr for nil errors, so they can
// be passed unconditionally.
//
// Components that accept a logger treat nil as Discard().
package logger
