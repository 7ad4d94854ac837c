// Package parser provides Go source file parsing functionality.
package parser

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"strings"

	"cgen/internal/model"
)

// Parser parses Go source files and extracts type definitions.
type Parser struct {
	fset *token.FileSet
}

// New creates a new Parser.
func New() *Parser {
	return &Parser{
		fset: token.NewFileSet(),
	}
}

// ParseFile parses a single Go source file and returns its type definitions.
func (p *Parser) ParseFile(path string) (*model.File, error) {
	return p.ParseSource(path, nil)
}

// ParseSource parses Go source held in src (any form accepted by
// go/parser). A nil src reads the file at path.
func (p *Parser) ParseSource(path string, src any) (*model.File, error) {
	file, err := parser.ParseFile(p.fset, path, src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	result := &model.File{
		Package: file.Name.Name,
		Path:    path,
	}

	for _, decl := range file.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.TYPE {
			continue
		}
		for _, spec := range genDecl.Specs {
			typeSpec, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}
			doc := typeSpec.Doc
			if doc == nil && len(genDecl.Specs) == 1 {
				doc = genDecl.Doc
			}
			result.Types = append(result.Types, p.extractType(typeSpec, doc))
		}
	}

	values := p.extractEnumValues(file)
	for i := range result.Types {
		t := &result.Types[i]
		if t.Kind != model.KindNamed || len(values[t.Name]) == 0 {
			continue
		}
		t.Kind = model.KindEnum
		t.Values = values[t.Name]
	}

	return result, nil
}

// extractType extracts type information from an ast.TypeSpec.
func (p *Parser) extractType(spec *ast.TypeSpec, doc *ast.CommentGroup) model.Type {
	t := model.Type{
		Name:       spec.Name.Name,
		IsExported: ast.IsExported(spec.Name.Name),
		Doc:        commentText(doc),
	}

	switch typeExpr := spec.Type.(type) {
	case *ast.StructType:
		t.Kind = model.KindStruct
		t.Fields = p.extractFields(typeExpr.Fields)

	case *ast.InterfaceType:
		t.Kind = model.KindInterface

	default:
		if spec.Assign.IsValid() {
			t.Kind = model.KindAlias
		} else {
			t.Kind = model.KindNamed
		}
		t.Underlying = p.typeRefFromExpr(typeExpr)
	}

	return t
}

// extractFields extracts fields from a struct.
func (p *Parser) extractFields(fieldList *ast.FieldList) []model.Field {
	if fieldList == nil {
		return nil
	}

	var fields []model.Field
	for _, f := range fieldList.List {
		typeRef := p.typeRefFromExpr(f.Type)
		doc := commentText(f.Doc)
		if doc == "" {
			doc = commentText(f.Comment)
		}

		if len(f.Names) == 0 {
			name := typeRef.Name
			if typeRef.Kind == model.KindPointer {
				name = typeRef.Elem.Name
			}
			fields = append(fields, model.Field{
				Name:       name,
				Type:       *typeRef,
				Doc:        doc,
				IsEmbedded: true,
				IsExported: ast.IsExported(name),
			})
			continue
		}
		for _, name := range f.Names {
			fields = append(fields, model.Field{
				Name:       name.Name,
				Type:       *typeRef,
				Doc:        doc,
				IsExported: ast.IsExported(name.Name),
			})
		}
	}
	return fields
}

// typeRefFromExpr converts an ast.Expr to a TypeRef.
func (p *Parser) typeRefFromExpr(expr ast.Expr) *model.TypeRef {
	switch t := expr.(type) {
	case *ast.Ident:
		return &model.TypeRef{
			Kind: model.KindBasic,
			Name: t.Name,
			Raw:  t.Name,
		}

	case *ast.SelectorExpr:
		// Package-qualified type (e.g., time.Time)
		pkg := ""
		if ident, ok := t.X.(*ast.Ident); ok {
			pkg = ident.Name
		}
		return &model.TypeRef{
			Kind:    model.KindNamed,
			Name:    t.Sel.Name,
			Package: pkg,
			Raw:     fmt.Sprintf("%s.%s", pkg, t.Sel.Name),
		}

	case *ast.StarExpr:
		elem := p.typeRefFromExpr(t.X)
		return &model.TypeRef{
			Kind: model.KindPointer,
			Elem: elem,
			Raw:  "*" + elem.Raw,
		}

	case *ast.ArrayType:
		elem := p.typeRefFromExpr(t.Elt)
		if t.Len == nil {
			return &model.TypeRef{
				Kind: model.KindSlice,
				Elem: elem,
				Raw:  "[]" + elem.Raw,
			}
		}
		length := p.exprText(t.Len)
		return &model.TypeRef{
			Kind: model.KindArray,
			Elem: elem,
			Len:  length,
			Raw:  fmt.Sprintf("[%s]%s", length, elem.Raw),
		}

	case *ast.MapType:
		key := p.typeRefFromExpr(t.Key)
		value := p.typeRefFromExpr(t.Value)
		return &model.TypeRef{
			Kind: model.KindMap,
			Elem: value,
			Raw:  fmt.Sprintf("map[%s]%s", key.Raw, value.Raw),
		}

	case *ast.InterfaceType:
		return &model.TypeRef{
			Kind: model.KindInterface,
			Name: "interface{}",
			Raw:  "interface{}",
		}

	default:
		return &model.TypeRef{
			Kind: model.KindBasic,
			Name: "unknown",
			Raw:  "unknown",
		}
	}
}

// exprText returns the source text of a simple expression.
func (p *Parser) exprText(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.BasicLit:
		return e.Value
	case *ast.Ident:
		return e.Name
	case *ast.Ellipsis:
		return "..."
	default:
		return "?"
	}
}

// extractEnumValues type-checks the file and collects the constants
// declared for each named integer type, in source order. Imports are not
// resolved; errors they cause are ignored since only local constants
// matter here.
func (p *Parser) extractEnumValues(file *ast.File) map[string][]model.EnumValue {
	info := &types.Info{Defs: make(map[*ast.Ident]types.Object)}
	conf := types.Config{Error: func(error) {}}
	_, _ = conf.Check(file.Name.Name, p.fset, []*ast.File{file}, info)

	values := make(map[string][]model.EnumValue)
	for _, decl := range file.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.CONST {
			continue
		}
		for _, spec := range genDecl.Specs {
			valueSpec, ok := spec.(*ast.ValueSpec)
			if !ok {
				continue
			}
			for _, name := range valueSpec.Names {
				c, ok := info.Defs[name].(*types.Const)
				if !ok || name.Name == "_" {
					continue
				}
				named, ok := c.Type().(*types.Named)
				if !ok || named.Obj().Pkg() != c.Pkg() || !isInteger(named) {
					continue
				}
				typeName := named.Obj().Name()
				values[typeName] = append(values[typeName], model.EnumValue{
					Name:  name.Name,
					Value: c.Val().ExactString(),
				})
			}
		}
	}
	return values
}

// isInteger reports whether a named type has an integer underlying type.
// Only such types map onto C enums.
func isInteger(named *types.Named) bool {
	basic, ok := named.Underlying().(*types.Basic)
	return ok && basic.Info()&types.IsInteger != 0
}

// commentText extracts text from a comment group.
func commentText(cg *ast.CommentGroup) string {
	if cg == nil {
		return ""
	}
	return strings.TrimSpace(cg.Text())
}
