// Package generator builds C headers and sources from parsed Go types.
package generator

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"cgen/internal/cgen"
	"cgen/internal/config"
	"cgen/internal/model"
)

// Generator turns parsed Go types into a header/source pair.
type Generator struct {
	config *config.Config
	logf   func(format string, args ...any)
}

// New creates a new Generator.
func New(cfg *config.Config) *Generator {
	return &Generator{
		config: cfg,
		logf:   func(string, ...any) {},
	}
}

// SetLogger sets the function receiving warnings about skipped types and
// fields.
func (g *Generator) SetLogger(logf func(format string, args ...any)) {
	if logf == nil {
		logf = func(string, ...any) {}
	}
	g.logf = logf
}

// Output is a generated header and its source file.
type Output struct {
	Header *cgen.HFile
	Source *cgen.CFile
}

// Files returns the header and source in writing order.
func (o *Output) Files() []cgen.File {
	return []cgen.File{o.Header, o.Source}
}

// BaseName returns the file name stem used for the outputs of file.
func (g *Generator) BaseName(file *model.File) string {
	if g.config.Options.BaseName != "" {
		return g.config.Options.BaseName
	}
	base := filepath.Base(file.Path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Generate builds the header and source for file.
func (g *Generator) Generate(file *model.File) (*Output, error) {
	base := g.BaseName(file)
	dir := g.config.Options.OutputDir

	b := &build{
		gen:    g,
		file:   file,
		header: cgen.NewHFile(filepath.Join(dir, base+".h")),
		source: cgen.NewCFile(filepath.Join(dir, base+".c")),
		local:  make(map[string]string),
	}

	guard, err := g.guard(b.header.Path(), base)
	if err != nil {
		return nil, err
	}
	b.header.SetGuard(guard)

	if err := b.run(); err != nil {
		return nil, err
	}
	return &Output{Header: b.header, Source: b.source}, nil
}

// Write generates the files for file and writes them to disk, returning
// the written paths.
func (g *Generator) Write(file *model.File) ([]string, error) {
	out, err := g.Generate(file)
	if err != nil {
		return nil, err
	}

	if dir := g.config.Options.OutputDir; dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating output directory: %w", err)
		}
	}

	var paths []string
	for _, f := range out.Files() {
		if err := f.Generate(); err != nil {
			return paths, err
		}
		paths = append(paths, f.Path())
	}
	return paths, nil
}

// Render generates the files for file and writes both to w, header first.
func (g *Generator) Render(file *model.File, w io.Writer) error {
	out, err := g.Generate(file)
	if err != nil {
		return err
	}
	for i, f := range out.Files() {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return fmt.Errorf("writing output: %w", err)
			}
		}
		if _, err := f.WriteTo(w); err != nil {
			return fmt.Errorf("writing %s: %w", f.Path(), err)
		}
	}
	return nil
}

// guard picks the include guard: an explicit one, or the default derived
// from the header path, optionally made unique with a UUID suffix.
func (g *Generator) guard(path, base string) (string, error) {
	opts := g.config.Options
	if opts.Guard != "" {
		return opts.Guard, nil
	}

	guard := cgen.GuardName(path)
	if !opts.UniqueGuard {
		return guard, nil
	}

	id := uuid.New()
	if opts.GuardNamespace != "" {
		ns, err := uuid.Parse(opts.GuardNamespace)
		if err != nil {
			return "", fmt.Errorf("guard namespace: %w", err)
		}
		id = uuid.NewSHA1(ns, []byte(base))
	}
	suffix := strings.ToUpper(strings.ReplaceAll(id.String(), "-", ""))
	return strings.TrimSuffix(guard, "__") + "_" + suffix + "__", nil
}

// filterTypes filters types based on configuration.
func (g *Generator) filterTypes(types []model.Type) []model.Type {
	var result []model.Type
	for _, t := range types {
		if g.config.ShouldIncludeType(t.Name, t.IsExported) {
			result = append(result, t)
		}
	}
	return result
}

// flattenFields recursively replaces embedded struct fields with the
// fields of the embedded type.
func (g *Generator) flattenFields(fields []model.Field, file *model.File, seen map[string]bool) []model.Field {
	var result []model.Field

	for _, f := range fields {
		if !f.IsEmbedded {
			result = append(result, f)
			continue
		}

		// Prevent infinite recursion
		if seen[f.Name] {
			continue
		}

		embedded, ok := file.Lookup(f.Name)
		if !ok || embedded.Kind != model.KindStruct || f.Type.Kind == model.KindPointer {
			g.logf("skipping embedded field %s: not a local struct value", f.Name)
			continue
		}

		seen[f.Name] = true
		result = append(result, g.flattenFields(embedded.Fields, file, seen)...)
		delete(seen, f.Name)
	}

	return result
}
