package cgen

import (
	"strconv"
	"strings"
)

// primitiveTypes lists the C type spellings a declaration may use.
var primitiveTypes = map[string]struct{}{
	"char":                   {},
	"signed char":            {},
	"unsigned char":          {},
	"short":                  {},
	"short int":              {},
	"signed short":           {},
	"signed short int":       {},
	"unsigned short":         {},
	"unsigned short int":     {},
	"int":                    {},
	"signed":                 {},
	"signed int":             {},
	"unsigned":               {},
	"unsigned int":           {},
	"long":                   {},
	"long int":               {},
	"signed long":            {},
	"signed long int":        {},
	"unsigned long":          {},
	"unsigned long int":      {},
	"long long":              {},
	"long long int":          {},
	"signed long long":       {},
	"signed long long int":   {},
	"unsigned long long":     {},
	"unsigned long long int": {},
	"float":                  {},
	"double":                 {},
	"long double":            {},
}

// ValidType reports whether typ is one of the C primitive type spellings.
func ValidType(typ string) bool {
	_, ok := primitiveTypes[typ]
	return ok
}

func checkType(typ string) error {
	if !ValidType(typ) {
		return &InvalidTypeError{Type: typ}
	}
	return nil
}

// Decl holds the fields shared by every declaration.
type Decl struct {
	Type string
	Name string
	Init string // empty when there is no initializer
}

// Declaration is implemented by Variable, Array and Pointer.
type Declaration interface {
	Node
	Decl() Decl
}

type declBase struct {
	typ  string
	name string
}

// SetPrefix prepends a qualifier such as "const" or "static" to the type.
func (d *declBase) SetPrefix(qualifier string) {
	d.typ = qualifier + " " + d.typ
}

// Type returns the (possibly qualified) base type.
func (d *declBase) Type() string { return d.typ }

// Name returns the declared name.
func (d *declBase) Name() string { return d.name }

// Variable declares a name of a primitive type, optionally initialized.
type Variable struct {
	declBase
	init string
}

// NewVariable creates a variable declaration. It fails with an
// *InvalidTypeError if typ is not a primitive type.
func NewVariable(typ, name string) (*Variable, error) {
	if err := checkType(typ); err != nil {
		return nil, err
	}
	return &Variable{declBase: declBase{typ: typ, name: name}}, nil
}

// SetInit sets the initializer expression. An empty expression removes it.
func (v *Variable) SetInit(expr string) { v.init = expr }

// Decl returns the declaration fields.
func (v *Variable) Decl() Decl {
	return Decl{Type: v.typ, Name: v.name, Init: v.init}
}

func (v *Variable) String() string {
	return withInit(v.typ+" "+v.name, v.init)
}

// Lines splits the rendered declaration on newlines.
func (v *Variable) Lines() []string { return splitLines(v.String()) }

// Array declares a sized array initialized from its elements.
type Array struct {
	declBase
	elems []string
}

// NewArray creates an array declaration holding elems.
func NewArray(typ, name string, elems ...string) (*Array, error) {
	if err := checkType(typ); err != nil {
		return nil, err
	}
	return &Array{
		declBase: declBase{typ: typ, name: name},
		elems:    append([]string(nil), elems...),
	}, nil
}

// Add appends an initializer element.
func (a *Array) Add(elem string) {
	a.elems = append(a.elems, elem)
}

// Len returns the number of elements, which is also the array size.
func (a *Array) Len() int { return len(a.elems) }

// Decl returns the declaration fields. Init is the braced element list.
func (a *Array) Decl() Decl {
	return Decl{Type: a.typ, Name: a.name, Init: a.initList()}
}

func (a *Array) initList() string {
	return "{" + strings.Join(a.elems, ",") + "}"
}

func (a *Array) String() string {
	return a.typ + " " + a.name + "[" + strconv.Itoa(len(a.elems)) + "] = " + a.initList()
}

// Lines splits the rendered declaration on newlines.
func (a *Array) Lines() []string { return splitLines(a.String()) }

// Pointer declares a pointer to a primitive type.
type Pointer struct {
	declBase
	init string
}

// NewPointer creates a pointer declaration.
func NewPointer(typ, name string) (*Pointer, error) {
	if err := checkType(typ); err != nil {
		return nil, err
	}
	return &Pointer{declBase: declBase{typ: typ, name: name}}, nil
}

// SetInit sets the initializer expression. An empty expression removes it.
func (p *Pointer) SetInit(expr string) { p.init = expr }

// Decl returns the declaration fields.
func (p *Pointer) Decl() Decl {
	return Decl{Type: p.typ, Name: p.name, Init: p.init}
}

func (p *Pointer) String() string {
	return withInit(p.typ+"* "+p.name, p.init)
}

// Lines splits the rendered declaration on newlines.
func (p *Pointer) Lines() []string { return splitLines(p.String()) }

func withInit(decl, init string) string {
	if init == "" {
		return decl
	}
	return decl + "=" + init
}
