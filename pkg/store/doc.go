// Package store persists byte streams for physkit, most notably the
// append-only vector files written by vector.Save.
//
// Two backends implement Storage:
//
//   - LocalStorage keeps files under a base directory. Paths that resolve
//     outside it are rejected with ErrInvalidPath.
//   - S3Storage keeps objects in an S3 bucket using aws-sdk-go-v2. Because S3
//     objects are immutable, Append rewrites the whole object.
//
// New picks a backend from Config, which carries env tags for config.Load:
//
//	var cfg store.Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//	s, err := store.New(ctx, cfg, store.WithLogger(log))
//	if err != nil {
//	    return err
//	}
//	err = vector.Save(ctx, s, "runs/track.dat", position, quantity.Metre)
//
// Recognised variables are PHYSKIT_STORE_DRIVER (local or s3),
// PHYSKIT_STORE_LOCAL_BASE_DIR and PHYSKIT_STORE_S3_{BUCKET, REGION,
// ACCESS_KEY_ID, SECRET_KEY, ENDPOINT, PREFIX, FORCE_PATH_STYLE}.
//
// S3 failures are classified into the package sentinels (ErrNotFound,
// ErrAccessDenied, ErrServiceUnavailable, ...) so callers can use errors.Is
// without importing the SDK.
package store
