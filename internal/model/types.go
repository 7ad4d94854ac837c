// Package model defines the intermediate representation for parsed Go types.
package model

// TypeKind represents the category of a Go type.
type TypeKind string

const (
	KindStruct    TypeKind = "struct"
	KindAlias     TypeKind = "alias"
	KindNamed     TypeKind = "named"
	KindEnum      TypeKind = "enum"
	KindBasic     TypeKind = "basic"
	KindSlice     TypeKind = "slice"
	KindArray     TypeKind = "array"
	KindMap       TypeKind = "map"
	KindPointer   TypeKind = "pointer"
	KindInterface TypeKind = "interface"
)

// File represents a parsed Go source file.
type File struct {
	Package string // Package name
	Path    string // File path
	Types   []Type // All type definitions, in source order
}

// Type represents a Go type definition.
type Type struct {
	Name       string      // Type name (e.g., "User")
	Kind       TypeKind    // Type category
	Doc        string      // Documentation comment
	Fields     []Field     // Fields (for structs)
	Values     []EnumValue // Constants (for enums)
	Underlying *TypeRef    // Underlying type (for aliases/named types/enums)
	IsExported bool        // Whether the type is exported
}

// Field represents a struct field.
type Field struct {
	Name       string  // Field name (type name for embedded fields)
	Type       TypeRef // Field type reference
	Doc        string  // Documentation comment
	IsExported bool    // Whether the field is exported
	IsEmbedded bool    // Whether this is an embedded field
}

// EnumValue is a typed constant declared for a named integer type.
type EnumValue struct {
	Name  string // Constant name
	Value string // Constant value, as evaluated by the type checker
}

// TypeRef represents a reference to a type.
type TypeRef struct {
	Kind    TypeKind // Type category
	Name    string   // Type name (for named/basic types)
	Package string   // Package name (for imported types, e.g., "time" for time.Time)
	Elem    *TypeRef // Element type (for slice, array, pointer)
	Len     string   // Length expression (for arrays)
	Raw     string   // Raw Go type string representation
}

// FullName returns the full qualified name of a TypeRef (e.g., "time.Time").
func (t *TypeRef) FullName() string {
	if t.Package != "" {
		return t.Package + "." + t.Name
	}
	return t.Name
}

// Lookup returns the type named name.
func (f *File) Lookup(name string) (Type, bool) {
	for _, t := range f.Types {
		if t.Name == name {
			return t, true
		}
	}
	return Type{}, false
}
