package runner

import (
	"os"
	"path"
	"slices"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	"github.com/input-output-hk/jsxlint/errors"
	"github.com/input-output-hk/jsxlint/estree"
	"github.com/input-output-hk/jsxlint/lint"
	"github.com/input-output-hk/jsxlint/scope"
)

// BundleExt is the extension LoadDir looks for.
const BundleExt = ".estree.json"

// Bundle is one parsed file as a JavaScript front end hands it over: the
// source text, its ESTree document and, optionally, its scope table.
type Bundle struct {
	Filename string         `json:"filename"`
	Source   string         `json:"source"`
	AST      jsontext.Value `json:"ast"`
	Scopes   jsontext.Value `json:"scopes,omitempty"`
}

// File decodes the bundle into a lint.File. Without a scope table the tree
// is analyzed lexically.
func (b *Bundle) File() (*lint.File, error) {
	if b.Filename == "" {
		return nil, errors.New(errors.CodeInvalidInput, "bundle has no filename")
	}
	if len(b.AST) == 0 {
		return nil, errors.Newf(errors.CodeInvalidInput, "bundle %s has no ast", b.Filename)
	}

	prog, err := estree.Decode(b.AST, estree.WithSource(b.Source))
	if err != nil {
		return nil, errors.WrapWithContext(err, errors.CodeInvalidInput, "failed to decode ast",
			map[string]interface{}{"filename": b.Filename})
	}

	var table *scope.Table
	if len(b.Scopes) > 0 && b.Scopes.Kind() != 'n' {
		if table, err = scope.Decode(b.Scopes, prog); err != nil {
			return nil, errors.WrapWithContext(err, errors.CodeInvalidInput, "failed to decode scopes",
				map[string]interface{}{"filename": b.Filename})
		}
	}

	return lint.NewFile(b.Filename, prog, b.Source, table)
}

// LoadBundle reads the bundle at name from fs.
func LoadBundle(fs billy.Filesystem, name string) (*lint.File, error) {
	data, err := util.ReadFile(fs, name)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(err, errors.CodeNotFound, "bundle "+name+" does not exist")
		}
		return nil, errors.Wrap(err, errors.CodeInternal, "failed to read bundle "+name)
	}

	var b Bundle
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, errors.WrapWithContext(err, errors.CodeInvalidInput, "failed to decode bundle",
			map[string]interface{}{"path": name})
	}
	if b.Filename == "" {
		b.Filename = strings.TrimSuffix(name, BundleExt)
	}
	return b.File()
}

// LoadDir loads every bundle under root, in lexical path order.
func LoadDir(fs billy.Filesystem, root string) ([]*lint.File, error) {
	var paths []string
	err := util.Walk(fs, root, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && strings.HasSuffix(info.Name(), BundleExt) {
			paths = append(paths, p)
		}
		return nil
	})
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(err, errors.CodeNotFound, "directory "+root+" does not exist")
		}
		return nil, errors.Wrap(err, errors.CodeInternal, "failed to walk "+root)
	}

	slices.Sort(paths)
	files := make([]*lint.File, 0, len(paths))
	for _, p := range paths {
		file, err := LoadBundle(fs, path.Clean(p))
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}
	return files, nil
}
