package lint

import (
	"github.com/input-output-hk/jsxlint/errors"
	"github.com/input-output-hk/jsxlint/estree"
	"github.com/input-output-hk/jsxlint/scope"
)

// File is one parsed source file: its linked tree, source text and scope
// table. Rules only read it, so one File may be shared by concurrent runs.
type File struct {
	// Name is the file's path as the host knows it.
	Name    string
	Program *estree.Program
	Source  *estree.SourceCode
	// Scopes may be nil; runs then analyze the tree themselves.
	Scopes *scope.Table
}

// NewFile links prog, validates it and returns the file. A nil table is
// replaced by a lexical analysis of the tree.
func NewFile(name string, prog *estree.Program, source string, table *scope.Table) (*File, error) {
	if prog == nil {
		return nil, errors.New(errors.CodeInvalidInput, "file has no program")
	}
	if err := estree.Link(prog); err != nil {
		return nil, err
	}
	if table == nil {
		var err error
		if table, err = scope.Analyze(prog); err != nil {
			return nil, err
		}
	}
	return &File{Name: name, Program: prog, Source: estree.NewSourceCode(source), Scopes: table}, nil
}

func (f *File) check() error {
	if f == nil || f.Program == nil {
		return errors.New(errors.CodeInvalidInput, "file has no program")
	}
	return estree.Validate(f.Program)
}

func (f *File) source() *estree.SourceCode {
	if f.Source == nil {
		return estree.NewSourceCode("")
	}
	return f.Source
}

func (f *File) scopes() (*scope.Table, error) {
	if f.Scopes != nil {
		return f.Scopes, nil
	}
	return scope.Analyze(f.Program)
}
