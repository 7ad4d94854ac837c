package cgen

import (
	"fmt"
	"strings"
)

// Function is a C function definition.
type Function struct {
	name     string
	retType  string
	params   []string
	block    *Block
	isStatic bool
}

// NewFunction creates a function with an empty body. Parameters are raw
// declarations such as "int a".
func NewFunction(name, retType string, params ...string) *Function {
	return &Function{
		name:    name,
		retType: retType,
		params:  append([]string(nil), params...),
		block:   NewBlock(),
	}
}

// Name returns the function name.
func (f *Function) Name() string { return f.name }

// AddParameter appends parameters after the existing ones.
func (f *Function) AddParameter(params ...string) {
	f.params = append(f.params, params...)
}

// Parameters returns the parameter list.
func (f *Function) Parameters() []string {
	return append([]string(nil), f.params...)
}

// SetStatic sets whether the function has internal linkage.
func (f *Function) SetStatic(static bool) { f.isStatic = static }

// Static reports whether the function is static.
func (f *Function) Static() bool { return f.isStatic }

// SetBlock replaces the function body.
func (f *Function) SetBlock(block *Block) error {
	if block == nil {
		return fmt.Errorf("function %s body: %w", f.name, ErrInvalidProperty)
	}
	f.block = block
	return nil
}

// Block returns the function body.
func (f *Function) Block() *Block { return f.block }

// Append adds nodes to the function body.
func (f *Function) Append(nodes ...Node) { f.block.Append(nodes...) }

func (f *Function) signature() string {
	sig := f.retType + " " + f.name + "(" + strings.Join(f.params, ", ") + ")"
	if f.isStatic {
		return "static " + sig
	}
	return sig
}

// Prototype returns the declaration of the function, e.g. for a header.
func (f *Function) Prototype() *Statement {
	return Stmt(f.signature())
}

func (f *Function) String() string {
	return f.signature() + " \n" + f.block.String()
}

func (f *Function) Lines() []string {
	return append([]string{f.signature() + " "}, f.block.Lines()...)
}
