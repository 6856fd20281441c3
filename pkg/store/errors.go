package store

import "errors"

var (
	ErrInvalidPath = errors.New("store: invalid path") // escapes the base directory or bucket prefix
	ErrNotFound    = errors.New("store: file not found")
	ErrIsDirectory = errors.New("store: path is a directory")

	// Local filesystem failures, wrapped with the OS error.
	ErrFailedToOpenFile        = errors.New("store: failed to open file")
	ErrFailedToReadFile        = errors.New("store: failed to read file")
	ErrFailedToWriteFile       = errors.New("store: failed to write file")
	ErrFailedToDeleteFile      = errors.New("store: failed to delete file")
	ErrFailedToCreateDirectory = errors.New("store: failed to create directory")
	ErrFailedToStatPath        = errors.New("store: failed to stat path")
	ErrFailedToGetAbsolutePath = errors.New("store: failed to get absolute path")

	// S3 error classes.
	ErrBucketNotFound     = errors.New("store: bucket not found")
	ErrAccessDenied       = errors.New("store: access denied")
	ErrRequestTimeout     = errors.New("store: request timed out")
	ErrServiceUnavailable = errors.New("store: service temporarily unavailable")

	ErrOperationTimeout  = errors.New("store: operation timed out")
	ErrOperationCanceled = errors.New("store: operation canceled")

	ErrInvalidConfig      = errors.New("store: invalid configuration")
	ErrUnknownDriver      = errors.New("store: unknown driver")
	ErrFailedToLoadConfig = errors.New("store: failed to load AWS config")
)
