package storage

import "errors"

// Persister is the type-independent view of a Store.
type Persister interface {
	IsLoadComplete() bool
	Exists() bool
	Save() error
	Load() error
}

// LoadAll loads every persister in order. A failing Load does not stop the
// remaining ones; all failures are joined into the returned error.
func LoadAll(ps ...Persister) error {
	var errs []error
	for _, p := range ps {
		if err := p.Load(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
