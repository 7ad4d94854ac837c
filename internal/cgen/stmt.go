package cgen

import (
	"strings"
)

// Statement terminates a node with ";".
type Statement struct {
	node Node
}

// NewStatement wraps n in a statement.
func NewStatement(n Node) *Statement {
	return &Statement{node: n}
}

// Stmt is shorthand for NewStatement(Text(expr)).
func Stmt(expr string) *Statement {
	return NewStatement(Text(expr))
}

func (s *Statement) String() string { return nodeText(s.node) + ";" }

func (s *Statement) Lines() []string {
	return spliceLines(nodeLines(s.node), []string{";"})
}

// FuncCall is a function invocation expression.
type FuncCall struct {
	name string
	args []string
}

// NewFuncCall creates a call of name with args.
func NewFuncCall(name string, args ...string) *FuncCall {
	return &FuncCall{name: name, args: append([]string(nil), args...)}
}

// AddArgument appends call arguments.
func (f *FuncCall) AddArgument(args ...string) {
	f.args = append(f.args, args...)
}

func (f *FuncCall) String() string {
	return f.name + "(" + strings.Join(f.args, ", ") + ")"
}

func (f *FuncCall) Lines() []string { return splitLines(f.String()) }

// Include is an #include directive.
type Include struct {
	header string
	system bool
}

// NewInclude creates an include of header. System headers use angle
// brackets, others quotes.
func NewInclude(header string, system bool) *Include {
	return &Include{header: header, system: system}
}

func (i *Include) String() string {
	if i.system {
		return "#include <" + i.header + ">"
	}
	return `#include "` + i.header + `"`
}

func (i *Include) Lines() []string { return splitLines(i.String()) }

// Ifndef opens a conditional block on an undefined macro.
type Ifndef struct {
	macro string
}

// NewIfndef creates "#ifndef <macro>".
func NewIfndef(macro string) *Ifndef { return &Ifndef{macro: macro} }

func (d *Ifndef) String() string { return "#ifndef " + d.macro }

func (d *Ifndef) Lines() []string { return splitLines(d.String()) }

// Define is a #define directive with an optional replacement.
type Define struct {
	macro string
	value string
}

// NewDefine creates "#define <macro>".
func NewDefine(macro string) *Define { return &Define{macro: macro} }

// DefineValue creates "#define <macro> <value>".
func DefineValue(macro, value string) *Define {
	return &Define{macro: macro, value: value}
}

func (d *Define) String() string {
	if d.value == "" {
		return "#define " + d.macro
	}
	return "#define " + d.macro + " " + d.value
}

func (d *Define) Lines() []string { return splitLines(d.String()) }

// Endif closes a conditional block.
type Endif struct{}

// NewEndif creates "#endif".
func NewEndif() *Endif { return &Endif{} }

func (*Endif) String() string { return "#endif" }

func (e *Endif) Lines() []string { return []string{e.String()} }

// Blank is a run of empty lines. Inside a Code container it adds exactly
// n empty lines and no separator.
type Blank struct {
	n int
}

// NewBlank creates n empty lines. Negative counts are treated as zero.
func NewBlank(n int) *Blank {
	if n < 0 {
		n = 0
	}
	return &Blank{n: n}
}

// Count returns the number of empty lines.
func (b *Blank) Count() int { return b.n }

func (b *Blank) String() string { return strings.Repeat("\n", b.n) }

// Lines returns n+1 empty strings: n terminated lines and the open
// line that follows them.
func (b *Blank) Lines() []string { return make([]string, b.n+1) }
