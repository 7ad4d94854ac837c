package generator

import (
	"fmt"
	"path/filepath"
	"strconv"

	"cgen/internal/cgen"
	"cgen/internal/config"
	"cgen/internal/model"
)

// build holds the state of one Generate call.
type build struct {
	gen    *Generator
	file   *model.File
	header *cgen.HFile
	source *cgen.CFile

	// local maps generated Go type names to their C spelling.
	local map[string]string

	named   []model.Type
	enums   []model.Type
	structs []model.Type

	// prototypes collects header declarations of the source helpers.
	prototypes []cgen.Node
}

func (b *build) opts() config.Options { return b.gen.config.Options }

func (b *build) run() error {
	b.classify(b.gen.filterTypes(b.file.Types))

	hcode := b.header.Code()
	for _, inc := range b.opts().Includes {
		hcode.Append(cgen.NewInclude(inc, true))
	}

	b.source.AddInclude(cgen.NewInclude(filepath.Base(b.header.Path()), false))

	if err := b.emitNamed(); err != nil {
		return err
	}
	for _, t := range b.enums {
		if err := b.emitEnum(t); err != nil {
			return err
		}
	}
	for _, t := range b.orderStructs() {
		if err := b.emitStruct(t); err != nil {
			return err
		}
	}

	if len(b.prototypes) > 0 {
		b.section(hcode, b.prototypes...)
	}
	return nil
}

// classify sorts types by kind and registers their C spellings. Structs
// and enums are registered first so any field may refer to them. Named
// types and structs are then resolved together until nothing changes, so
// declaration order does not matter.
func (b *build) classify(types []model.Type) {
	var pending []model.Type
	for _, t := range types {
		switch t.Kind {
		case model.KindStruct:
			t.Fields = b.gen.flattenFields(t.Fields, b.file, map[string]bool{t.Name: true})
			b.structs = append(b.structs, t)
			b.local[t.Name] = "struct " + t.Name
		case model.KindEnum:
			b.enums = append(b.enums, t)
			b.local[t.Name] = "enum " + t.Name
		case model.KindNamed, model.KindAlias:
			pending = append(pending, t)
		case model.KindInterface:
			b.gen.logf("skipping type %s: interfaces have no C representation", t.Name)
		}
	}

	var unresolved []model.Type
	for {
		unresolved = b.resolveNamed(pending)
		if !b.pruneEmptyStructs() {
			break
		}
	}

	for _, t := range unresolved {
		_, _, err := b.cType(*t.Underlying)
		b.gen.logf("skipping type %s: %v", t.Name, err)
	}
}

// resolveNamed registers every named type whose underlying type has a C
// spelling, in dependency order, and returns the rest. Earlier
// registrations of named types are discarded first.
func (b *build) resolveNamed(pending []model.Type) []model.Type {
	for _, t := range b.named {
		delete(b.local, t.Name)
	}
	b.named = nil

	for len(pending) > 0 {
		var rest []model.Type
		for _, t := range pending {
			if _, _, err := b.cType(*t.Underlying); err != nil {
				rest = append(rest, t)
				continue
			}
			b.named = append(b.named, t)
			b.local[t.Name] = t.Name
		}
		if len(rest) == len(pending) {
			return rest
		}
		pending = rest
	}
	return nil
}

// pruneEmptyStructs drops structs without a single representable field,
// since C has no empty structs. It reports whether anything was dropped.
func (b *build) pruneEmptyStructs() bool {
	kept := b.structs[:0]
	pruned := false
	for _, t := range b.structs {
		if b.hasMember(t) {
			kept = append(kept, t)
			continue
		}
		b.gen.logf("skipping struct %s: no field has a C representation", t.Name)
		delete(b.local, t.Name)
		pruned = true
	}
	b.structs = kept
	return pruned
}

func (b *build) hasMember(t model.Type) bool {
	for _, f := range t.Fields {
		if _, _, err := b.cType(f.Type); err == nil {
			return true
		}
	}
	return false
}

// section appends nodes to code, separated from earlier content by the
// configured number of blank lines.
func (b *build) section(code *cgen.Code, nodes ...cgen.Node) {
	if code.Len() > 0 && b.opts().BlankLines > 0 {
		code.Append(cgen.NewBlank(b.opts().BlankLines))
	}
	code.Append(nodes...)
}

func (b *build) emitNamed() error {
	if len(b.named) == 0 {
		return nil
	}

	var defs []cgen.Node
	for _, t := range b.named {
		typ, suffix, err := b.cType(*t.Underlying)
		if err != nil {
			return fmt.Errorf("type %s: %w", t.Name, err)
		}
		defs = append(defs, cgen.NewStatement(cgen.NewTypedef(cgen.Text(typ), t.Name+suffix)))
	}
	b.section(b.header.Code(), defs...)
	return nil
}

func (b *build) emitEnum(t model.Type) error {
	enum := cgen.NewEnum(t.Name)
	enum.Block().SetTail(";")
	for _, v := range t.Values {
		enum.AppendWithInit(v.Name, v.Value+",")
	}
	b.section(b.header.Code(), b.withDoc(t, enum)...)

	if b.opts().Typedefs {
		b.header.Code().Append(cgen.NewStatement(cgen.NewTypedef(cgen.Text("enum "+t.Name), t.Name)))
	}

	return b.enumHelpers(t)
}

func (b *build) emitStruct(t model.Type) error {
	st := cgen.NewStruct(t.Name)
	st.Block().SetTail(";")
	for _, f := range t.Fields {
		typ, suffix, err := b.cType(f.Type)
		if err != nil {
			b.gen.logf("skipping field %s.%s: %v", t.Name, f.Name, err)
			continue
		}
		st.AppendNode(cgen.Stmt(typ + " " + f.Name + suffix))
	}
	b.section(b.header.Code(), b.withDoc(t, st)...)

	if b.opts().Typedefs {
		b.header.Code().Append(cgen.NewStatement(cgen.NewTypedef(cgen.Text("struct "+t.Name), t.Name)))
	}

	return b.structHelpers(t)
}

func (b *build) withDoc(t model.Type, n cgen.Node) []cgen.Node {
	if doc := formatDocComment(t.Doc); doc != "" {
		return []cgen.Node{cgen.Text(doc), n}
	}
	return []cgen.Node{n}
}

// orderStructs returns structs so that every struct follows the structs
// it contains by value.
func (b *build) orderStructs() []model.Type {
	byName := make(map[string]model.Type, len(b.structs))
	for _, t := range b.structs {
		byName[t.Name] = t
	}

	visited := make(map[string]bool, len(b.structs))
	ordered := make([]model.Type, 0, len(b.structs))

	var visit func(t model.Type)
	visit = func(t model.Type) {
		if visited[t.Name] {
			return
		}
		visited[t.Name] = true
		for _, f := range t.Fields {
			if dep, ok := byName[valueDependency(f.Type)]; ok {
				visit(dep)
			}
		}
		ordered = append(ordered, t)
	}

	for _, t := range b.structs {
		visit(t)
	}
	return ordered
}

// valueDependency returns the local type a field embeds by value.
func valueDependency(ref model.TypeRef) string {
	switch ref.Kind {
	case model.KindBasic:
		return ref.Name
	case model.KindArray:
		return valueDependency(*ref.Elem)
	}
	return ""
}

// cType returns the C spelling of ref as a base type and an array suffix
// to write after the declared name.
func (b *build) cType(ref model.TypeRef) (string, string, error) {
	if mapped, ok := mapType(b.gen.config, ref); ok {
		typ, suffix := splitArray(mapped)
		return typ, suffix, nil
	}

	switch ref.Kind {
	case model.KindBasic:
		if local, ok := b.local[ref.Name]; ok {
			return local, "", nil
		}
	case model.KindPointer:
		typ, suffix, err := b.cType(*ref.Elem)
		if err != nil {
			return "", "", err
		}
		if suffix == "" {
			return typ + "*", "", nil
		}
	case model.KindArray:
		typ, suffix, err := b.cType(*ref.Elem)
		if err != nil {
			return "", "", err
		}
		if _, err := strconv.Atoi(ref.Len); err == nil {
			return typ, "[" + ref.Len + "]" + suffix, nil
		}
	}
	return "", "", fmt.Errorf("%w: %s", errUnsupported, ref.Raw)
}

// structHelpers adds "<T>_init", which zeroes a struct byte by byte.
func (b *build) structHelpers(t model.Type) error {
	raw, err := cgen.NewPointer("unsigned char", "raw")
	if err != nil {
		return err
	}
	raw.SetInit("(unsigned char *)p")

	loop := cgen.NewFor("i = 0", "i < sizeof(*p)", "i++")
	loop.Append(cgen.Stmt("raw[i] = 0"))

	fn := cgen.NewFunction(helperName(b.opts(), t.Name, "init"), "void", "struct "+t.Name+" *p")
	fn.Append(cgen.NewStatement(raw))
	if err := b.appendIndex(fn); err != nil {
		return err
	}
	fn.Append(loop)

	b.addFunction(fn)
	return nil
}

// enumHelpers adds the "<E>_values" table, "<E>_valid" and "<E>_name".
func (b *build) enumHelpers(t model.Type) error {
	names := make([]string, 0, len(t.Values))
	for _, v := range t.Values {
		names = append(names, v.Name)
	}

	tableName := helperName(b.opts(), t.Name, "values")
	table, err := cgen.NewArray("int", tableName, names...)
	if err != nil {
		return err
	}
	table.SetPrefix("const")
	if b.opts().StaticHelpers {
		table.SetPrefix("static")
	} else {
		b.prototypes = append(b.prototypes,
			cgen.Stmt("extern const int "+tableName+"["+strconv.Itoa(table.Len())+"]"))
	}
	b.section(b.source.Code(), cgen.NewStatement(table))

	valid := cgen.NewFunction(helperName(b.opts(), t.Name, "valid"), "int", "int v")
	if err := b.appendIndex(valid); err != nil {
		return err
	}
	loop := cgen.NewFor("i = 0", "i < "+strconv.Itoa(table.Len()), "i++")
	loop.Append(cgen.NewIf(tableName+"[i] == v", cgen.NewBlock(cgen.Stmt("return 1"))))
	valid.Append(loop, cgen.Stmt("return 0"))
	b.addFunction(valid)

	name := cgen.NewFunction(helperName(b.opts(), t.Name, "name"), "const char*", "int v")
	check := cgen.NewFuncCall(valid.Name(), "v")
	name.Append(cgen.NewIf("!"+check.String(), cgen.NewBlock(cgen.Stmt(`return ""`))))

	var chain *cgen.IfStatement
	for _, v := range t.Values {
		cond := "v == " + v.Name
		body := cgen.NewBlock(cgen.Stmt("return " + strconv.Quote(v.Name)))
		if chain == nil {
			chain = cgen.NewIf(cond, body)
		} else {
			chain.AppendElif(cond, body)
		}
	}
	chain.SetElse(cgen.NewBlock(cgen.Stmt(`return ""`)))
	name.Append(chain)
	b.addFunction(name)

	return nil
}

// appendIndex declares the loop index used by the helpers.
func (b *build) appendIndex(fn *cgen.Function) error {
	i, err := cgen.NewVariable("unsigned long", "i")
	if err != nil {
		return err
	}
	fn.Append(cgen.NewStatement(i))
	return nil
}

func (b *build) addFunction(fn *cgen.Function) {
	if b.opts().StaticHelpers {
		fn.SetStatic(true)
	} else {
		b.prototypes = append(b.prototypes, fn.Prototype())
	}
	b.section(b.source.Code(), fn)
}
