package profile

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds. Match them with errors.Is.
var (
	ErrIO            = errors.New("profile store i/o failure")
	ErrCorrupt       = errors.New("profile store is corrupt")
	ErrDuplicateName = errors.New("profile already exists")
	ErrNotFound      = errors.New("profile not found")
	ErrInvalidName   = errors.New("invalid profile name")
)

// Error describes a failed store operation.
type Error struct {
	Op   string // init, load, save, create, update, append
	Name string // profile name, empty for whole-store operations
	Path string // backing file
	Kind error  // one of the Err* kinds above
	Err  error  // underlying cause, may be nil
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Op)
	switch {
	case e.Name != "":
		fmt.Fprintf(&b, " %q", e.Name)
	case e.Path != "":
		b.WriteString(" " + e.Path)
	}
	b.WriteString(": ")
	b.WriteString(e.Kind.Error())
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func ioError(op, path string, err error) error {
	return &Error{Op: op, Path: path, Kind: ErrIO, Err: err}
}

func corruptError(path string, err error) error {
	return &Error{Op: "load", Path: path, Kind: ErrCorrupt, Err: err}
}

func nameError(op, name string, kind error) error {
	return &Error{Op: op, Name: name, Kind: kind}
}

func invalidName(op, raw, reason string) error {
	return &Error{Op: op, Name: strings.TrimSpace(raw), Kind: ErrInvalidName, Err: errors.New(reason)}
}
