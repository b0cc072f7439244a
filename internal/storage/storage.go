// Package storage persists a single record per file: it resolves the file
// path, bootstraps default data when nothing exists, and loads and saves the
// record with the configured codec.
package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jacksmith/keep/internal/codec"
	"github.com/jacksmith/keep/internal/model"
)

// KeyPolicy controls how an empty storage key is handled.
type KeyPolicy int

const (
	// KeyFallback substitutes the store name, then the record type name,
	// for an empty key.
	KeyFallback KeyPolicy = iota
	// KeyStrict rejects an empty key with a ConfigurationError.
	KeyStrict
)

func (p KeyPolicy) String() string {
	if p == KeyStrict {
		return "strict"
	}
	return "fallback"
}

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

var validate = validator.New()

// Config configures a Store.
type Config struct {
	// Dir is the directory holding the data file. Empty means DefaultDir(App).
	Dir string
	// App names the per-user application directory used when Dir is empty.
	App string
	// Key is the file name of the record within Dir.
	Key string
	// Name is used as the key when Key is empty under KeyFallback.
	Name string

	Format    codec.Format
	KeyPolicy KeyPolicy

	// Log receives store events. Nil disables logging.
	Log LogFunc
	// Validate runs struct validation on every save and load.
	Validate bool
	// Lock holds an advisory lock on <path>.lock during Save and Load.
	// The lock file is created next to the data file and left in place, so
	// a locked store owns two files in Dir.
	Lock bool
}

// DefaultDir returns the per-user data directory for app.
func DefaultDir(app string) (string, error) {
	if app == "" {
		return "", &ConfigurationError{Field: "App", Message: "app name is required when Dir is empty"}
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", &ConfigurationError{Field: "Dir", Message: err.Error()}
	}
	return filepath.Join(base, app), nil
}

// Store owns one in-memory record of type T and its backing file.
//
// A Store is not safe for concurrent use; callers serialize access.
type Store[T any, PT model.DataModel[T]] struct {
	cfg           Config
	codec         codec.Codec[T]
	current       T
	loadCompleted bool
}

var _ Persister = (*Store[model.Profile, *model.Profile])(nil)

// New returns a Store for cfg. No filesystem access happens until Save,
// Load, Exists or Delete is called. An unknown Format is treated as
// FormatText.
func New[T any, PT model.DataModel[T]](cfg Config) *Store[T, PT] {
	if cfg.Format != codec.FormatBinary {
		cfg.Format = codec.FormatText
	}
	return &Store[T, PT]{
		cfg:     cfg,
		codec:   codec.New[T](cfg.Format),
		current: model.Default[T](),
	}
}

// Key returns the configured storage key, which may be empty.
func (s *Store[T, PT]) Key() string { return s.cfg.Key }

// Format returns the codec format used for reads and writes.
func (s *Store[T, PT]) Format() codec.Format { return s.cfg.Format }

// Value returns a copy of the current record.
func (s *Store[T, PT]) Value() T { return s.current }

// Set replaces the current record. It is not persisted until Save.
func (s *Store[T, PT]) Set(v T) { s.current = v }

// Update applies fn to the current record in place.
func (s *Store[T, PT]) Update(fn func(*T)) { fn(&s.current) }

// IsLoadComplete reports whether a Load has finished, successfully or not.
func (s *Store[T, PT]) IsLoadComplete() bool { return s.loadCompleted }

// Exists reports whether the backing file exists right now. A path that
// cannot be checked reports false.
func (s *Store[T, PT]) Exists() bool {
	path, err := s.ResolvePath()
	if err != nil {
		return false
	}
	ok, err := fileExists(path)
	return ok && err == nil
}

// ResolvePath returns the backing file path.
func (s *Store[T, PT]) ResolvePath() (string, error) {
	key := s.cfg.Key
	if key == "" {
		if s.cfg.KeyPolicy == KeyStrict {
			return "", &ConfigurationError{Field: "Key", Message: "storage key is empty"}
		}
		key = s.fallbackKey()
	}
	if key == "." || key == ".." || strings.ContainsAny(key, `/\`) {
		return "", &ConfigurationError{Field: "Key", Message: fmt.Sprintf("%q is not a plain file name", key)}
	}

	dir := s.cfg.Dir
	if dir == "" {
		var err error
		if dir, err = DefaultDir(s.cfg.App); err != nil {
			return "", err
		}
	}
	return filepath.Join(dir, key), nil
}

func (s *Store[T, PT]) fallbackKey() string {
	if s.cfg.Name != "" {
		return s.cfg.Name
	}
	if name := reflect.TypeOf((*T)(nil)).Elem().Name(); name != "" {
		return name
	}
	return "data"
}

// Save writes the current record to the backing file. If no file exists
// yet, the current record is first reset to defaults.
//
// Only a ConfigurationError is returned without touching the filesystem.
// Encode and write failures are logged and returned as
// *SerializationError or *IOError; the previous file stays intact.
func (s *Store[T, PT]) Save() (err error) {
	path, err := s.ResolvePath()
	if err != nil {
		return err
	}

	lock, err := s.lock(path)
	if err != nil {
		s.cfg.Log.logf(SeverityError, "save data error: %v", err)
		return err
	}
	defer func() {
		if uerr := lock.release(); uerr != nil && err == nil {
			err = uerr
		}
	}()

	return s.save(path)
}

func (s *Store[T, PT]) save(path string) error {
	exists, err := fileExists(path)
	if err != nil {
		s.cfg.Log.logf(SeverityError, "save data error: %v", err)
		return err
	}
	if !exists {
		s.cfg.Log.logf(SeverityInfo, "create new file %s", path)
		s.current = model.NewDefault[T, PT]()
	}
	s.cfg.Log.logf(SeverityDebug, "save data to %s (%s)", path, s.codec.Name())

	if err := s.write(path); err != nil {
		s.cfg.Log.logf(SeverityError, "save data error: %v", err)
		return err
	}
	return nil
}

func (s *Store[T, PT]) write(path string) error {
	if s.cfg.Validate {
		if err := validate.Struct(&s.current); err != nil {
			return &SerializationError{Path: path, Codec: s.codec.Name(), Err: err}
		}
	}

	data, err := s.codec.Marshal(s.current)
	if err != nil {
		return &SerializationError{Path: path, Codec: s.codec.Name(), Err: err}
	}

	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return &IOError{Op: "mkdir", Path: filepath.Dir(path), Err: err}
	}
	if err := atomicWriteFile(path, data, filePerm); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}

// Load replaces the current record with the contents of the backing file.
// If no file exists, defaults are created and saved instead.
//
// On a read or decode failure the current record is left unchanged and the
// error is logged and returned. IsLoadComplete reports true after Load
// returns, whatever the outcome.
func (s *Store[T, PT]) Load() (err error) {
	defer func() { s.loadCompleted = true }()

	path, err := s.ResolvePath()
	if err != nil {
		return err
	}
	s.cfg.Log.logf(SeverityInfo, "load data from %s", path)

	lock, err := s.lock(path)
	if err != nil {
		s.cfg.Log.logf(SeverityError, "load data error: %v", err)
		return err
	}
	defer func() {
		if uerr := lock.release(); uerr != nil && err == nil {
			err = uerr
		}
	}()

	exists, err := fileExists(path)
	if err != nil {
		s.cfg.Log.logf(SeverityError, "load data error: %v", err)
		return err
	}
	if !exists {
		return s.save(path)
	}

	v, err := s.read(path)
	if err != nil {
		s.cfg.Log.logf(SeverityError, "load data error: %v", err)
		return err
	}
	s.current = v
	return nil
}

func (s *Store[T, PT]) read(path string) (T, error) {
	var zero T

	data, err := os.ReadFile(path)
	if err != nil {
		return zero, &IOError{Op: "read", Path: path, Err: err}
	}

	v, err := s.codec.Unmarshal(data)
	if err != nil {
		return zero, &DeserializationError{Path: path, Codec: s.codec.Name(), Err: err}
	}
	if s.cfg.Validate {
		if err := validate.Struct(&v); err != nil {
			return zero, &DeserializationError{Path: path, Codec: s.codec.Name(), Err: err}
		}
	}
	return v, nil
}

// Delete removes the backing file. A missing file is not an error.
// The in-memory record and the load-complete flag are unchanged.
func (s *Store[T, PT]) Delete() error {
	path, err := s.ResolvePath()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		s.cfg.Log.logf(SeverityError, "delete data error: %v", err)
		return &IOError{Op: "remove", Path: path, Err: err}
	}
	s.cfg.Log.logf(SeverityInfo, "deleted %s", path)
	return nil
}

// lock creates the data directory and takes the advisory lock when
// Config.Lock is set.
func (s *Store[T, PT]) lock(path string) (*fileLock, error) {
	if !s.cfg.Lock {
		return &fileLock{}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return nil, &IOError{Op: "mkdir", Path: filepath.Dir(path), Err: err}
	}
	return acquireLock(path)
}

// fileExists reports whether path exists. Only a not-exist error counts as
// missing; any other stat failure is returned as *IOError.
func fileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, &IOError{Op: "stat", Path: path, Err: err}
	}
}
