package cgen

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// File is a generated C file.
type File interface {
	Node
	io.WriterTo
	Path() string
	Code() *Code
	Generate() error
}

type file struct {
	path string
	code *Code
}

// Path returns the output path.
func (f *file) Path() string { return f.path }

// Code returns the file's top-level container.
func (f *file) Code() *Code { return f.code }

// AddInclude appends an include directive.
func (f *file) AddInclude(inc *Include) { f.code.Append(inc) }

// CFile is a C source file rendered from its Code container as is.
type CFile struct {
	file
}

// NewCFile creates an empty source file at path.
func NewCFile(path string) *CFile {
	return &CFile{file{path: path, code: NewCode()}}
}

func (f *CFile) String() string { return f.code.String() }

func (f *CFile) Lines() []string { return f.code.Lines() }

// WriteTo writes the rendered file to w.
func (f *CFile) WriteTo(w io.Writer) (int64, error) { return writeNode(w, f) }

// Generate writes the rendered file to its path.
func (f *CFile) Generate() error { return writeFile(f.path, f) }

// HFile is a header file wrapped in an include guard.
type HFile struct {
	file
	guard string
}

// NewHFile creates an empty header at path. The guard is derived from the
// base name: "dir/my_header.h" is guarded by "__MY_HEADER_H__".
func NewHFile(path string) *HFile {
	return &HFile{
		file:  file{path: path, code: NewCode()},
		guard: GuardName(path),
	}
}

// GuardName derives the include guard macro for path. Characters that
// cannot appear in a macro name become underscores.
func GuardName(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		}
		return '_'
	}, base)
	return "__" + strings.ToUpper(base) + "_H__"
}

// SetGuard overrides the include guard macro.
func (f *HFile) SetGuard(guard string) { f.guard = guard }

// Guard returns the include guard macro.
func (f *HFile) Guard() string { return f.guard }

func (f *HFile) String() string {
	return NewIfndef(f.guard).String() + "\n" +
		NewDefine(f.guard).String() + "\n" +
		f.code.String() +
		NewEndif().String()
}

func (f *HFile) Lines() []string {
	lines := []string{NewIfndef(f.guard).String(), NewDefine(f.guard).String(), ""}
	return spliceLines(lines, f.code.Lines(), NewEndif().Lines())
}

// WriteTo writes the rendered header to w.
func (f *HFile) WriteTo(w io.Writer) (int64, error) { return writeNode(w, f) }

// Generate writes the rendered header to its path.
func (f *HFile) Generate() error { return writeFile(f.path, f) }

func writeNode(w io.Writer, n Node) (int64, error) {
	written, err := io.WriteString(w, n.String())
	return int64(written), err
}

func writeFile(path string, n Node) (err error) {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()

	if _, err := writeNode(out, n); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
