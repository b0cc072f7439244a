package main

import (
	"github.com/jacksmith/keep/internal/cli"
	"github.com/jacksmith/keep/internal/codec"
	"github.com/jacksmith/keep/internal/logging"
	"github.com/jacksmith/keep/internal/model"
	"github.com/jacksmith/keep/internal/storage"
	"github.com/spf13/cobra"
)

// recordKinds lists the record types keep manages, in display order.
var recordKinds = []string{"profile", "prefs"}

// fieldModel is a record that can list and set its fields by name.
type fieldModel[T any] interface {
	model.DataModel[T]
	Fields() []model.Field
	SetField(name, value string) error
}

// record is a type-erased handle on one store, so commands can work on any
// record kind.
type record struct {
	kind   string
	format codec.Format
	store  storage.Persister

	path     func() (string, error)
	fields   func() []model.Field
	setField func(name, value string) error
	edit     func() error
	convert  func(to codec.Format) error
	remove   func() error
}

func bind[T any, PT fieldModel[T]](kind string, cfg storage.Config) *record {
	s := storage.New[T, PT](cfg)
	return &record{
		kind:   kind,
		format: cfg.Format,
		store:  s,
		path:   s.ResolvePath,
		fields: func() []model.Field {
			v := s.Value()
			return PT(&v).Fields()
		},
		setField: func(name, value string) error {
			v := s.Value()
			if err := PT(&v).SetField(name, value); err != nil {
				return err
			}
			s.Set(v)
			return nil
		},
		edit: func() error {
			v, err := cli.EditRecord(s.Value())
			if err != nil {
				return err
			}
			s.Set(v)
			return nil
		},
		convert: func(to codec.Format) error {
			target := cfg
			target.Format = to
			out := storage.New[T, PT](target)
			out.Set(s.Value())
			return out.Save()
		},
		remove: s.Delete,
	}
}

// open returns the record for a (possibly abbreviated) kind.
func (a *app) open(kind string) (*record, error) {
	name, err := cli.MatchName("record", kind, recordKinds)
	if err != nil {
		return nil, err
	}

	key := name
	if a.opts.keySet {
		key = a.opts.key
	}
	cfg := a.settings.Config(a.dir, key, logging.Hook(a.logger, name))
	cfg.Name = name

	switch name {
	case "prefs":
		return bind[model.Preferences](name, cfg), nil
	default:
		return bind[model.Profile](name, cfg), nil
	}
}

// openAll returns every record kind, or only those named in kinds.
// An explicit --key names one file, so it is only allowed for one kind.
func (a *app) openAll(kinds []string) ([]*record, error) {
	if len(kinds) == 0 {
		kinds = recordKinds
	}
	if a.opts.keySet && len(kinds) > 1 {
		return nil, &cli.ValidationError{Field: "key", Message: "--key names a single file; select one record"}
	}
	var recs []*record
	for _, k := range kinds {
		r, err := a.open(k)
		if err != nil {
			return nil, err
		}
		recs = append(recs, r)
	}
	return recs, nil
}

// fieldNames returns the field names of r in display order.
func (r *record) fieldNames() []string {
	var names []string
	for _, f := range r.fields() {
		names = append(names, f.Name)
	}
	return names
}

// completeKinds provides shell completion for record kinds.
func completeKinds(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return recordKinds, cobra.ShellCompDirectiveNoFileComp
}
