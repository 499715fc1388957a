package marketplace

import (
	"fmt"
	"strings"
)

// Field names one write-once leaf of a request's parameter tree.
// IDs must be unique per request type and below 64.
type Field struct {
	ID   uint
	Path string
}

// Name returns the last segment of the field path.
func (f Field) Name() string {
	if i := strings.LastIndexByte(f.Path, '.'); i >= 0 {
		return f.Path[i+1:]
	}
	return f.Path
}

func (f Field) bit() uint64 {
	if f.ID >= 64 {
		panic(fmt.Sprintf("marketplace: field %s has id %d out of range", f.Path, f.ID))
	}
	return 1 << f.ID
}

// Requirement names a field that must be present when a request is
// finalized, and the section it must appear under ("" for top level).
type Requirement struct {
	Name    string
	Section string
}

func (r Requirement) path() string {
	if r.Section == "" {
		return r.Name
	}
	return r.Section + "." + r.Name
}

// Builder accumulates a parameter tree with at-most-once assignment per
// field. The first failure is sticky: it is recorded at the offending
// call and every later Put becomes a no-op.
//
// A Builder is not safe for concurrent use.
type Builder struct {
	params Params
	set    uint64
	err    error
}

// NewBuilder creates an empty builder.
func NewBuilder() Builder {
	return Builder{params: Params{}}
}

// Preset writes a constant value that is not guarded by a setter.
func (b *Builder) Preset(path string, v any) {
	b.params.Set(path, v)
}

// Claimed reports whether f has been set.
func (b *Builder) Claimed(f Field) bool {
	return b.set&f.bit() != 0
}

// Claim marks f as set. It records ErrFieldAlreadySet and returns false
// when f was set before, and returns false without recording anything
// when an earlier call already failed.
func (b *Builder) Claim(f Field) bool {
	if b.err != nil {
		return false
	}
	if b.Claimed(f) {
		b.err = &FieldError{Field: f.Name(), Err: ErrFieldAlreadySet}
		return false
	}
	b.set |= f.bit()
	return true
}

// Put claims f and stores v at its path.
func (b *Builder) Put(f Field, v any) {
	if !b.Claim(f) {
		return
	}
	b.params.Set(f.Path, v)
}

// PutValid behaves like Put when valid is true and records
// ErrInvalidArgument for f otherwise. A repeated set is reported in
// preference to an invalid value.
func (b *Builder) PutValid(f Field, v any, valid bool) {
	if b.err == nil && !b.Claimed(f) && !valid {
		b.Fail(f, ErrInvalidArgument)
		return
	}
	b.Put(f, v)
}

// Fail records err against f unless an earlier call already failed.
func (b *Builder) Fail(f Field, err error) {
	if b.err != nil {
		return
	}
	b.err = &FieldError{Field: f.Name(), Err: err}
}

// Err returns the first failure recorded by a setter, if any.
func (b *Builder) Err() error {
	return b.err
}

// Finalize validates reqs in order and returns a copy of the tree.
// It does not modify builder state and may be called repeatedly.
func (b *Builder) Finalize(reqs []Requirement) (Params, error) {
	if b.err != nil {
		return nil, b.err
	}
	for _, r := range reqs {
		if _, ok := b.params.Lookup(r.path()); !ok {
			return nil, &FieldError{Field: r.Name, Err: ErrInvalidRequest}
		}
	}
	return b.params.Clone(), nil
}
